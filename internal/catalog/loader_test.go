package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hudspal/tracker/internal/catalog"
)

const nutritionCSV = `name,brand,group,serving_size,calories,units,total_fat_g,sat_fat,chol,sodium_mg,total_carbs_g,fiber,sugars_g,protein_g
Apple,,,1 medium,95,,0.3,,,2,25,,19,0.5
,,,1 cup,100,,1,,,10,20,,5,2
Scrambled Eggs,,,2 large,abc,,10,,,180,1.2,,0.8,12
Plain Rice`

const exerciseCSV = `category,exercise,progress_metric
Strength,Bench Press,weight
Cardio,Running,distance
,,
Mobility,  ,time`

func csvServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestLoadFoodsParsesFixedColumns(t *testing.T) {
	t.Parallel()

	ts := csvServer(t, nutritionCSV)
	foods, err := catalog.LoadFoods(context.Background(), ts.Client(), ts.URL)
	require.NoError(t, err)

	// The blank-name row is dropped; everything else survives.
	require.Len(t, foods, 3)

	apple := foods[0]
	assert.Equal(t, "food-0", apple.ID)
	assert.Equal(t, "Apple", apple.Name)
	assert.Equal(t, "1 medium", apple.ServingSize)
	assert.Equal(t, 95.0, apple.Calories)
	assert.Equal(t, 0.5, apple.ProteinG)
	assert.Equal(t, 25.0, apple.CarbsG)
	assert.Equal(t, 0.3, apple.FatG)
	assert.Equal(t, 2.0, apple.SodiumMg)
	assert.Equal(t, 19.0, apple.SugarsG)
}

func TestLoadFoodsDefaultsBadNumericsToZero(t *testing.T) {
	t.Parallel()

	ts := csvServer(t, nutritionCSV)
	foods, err := catalog.LoadFoods(context.Background(), ts.Client(), ts.URL)
	require.NoError(t, err)

	eggs := foods[1]
	assert.Equal(t, "Scrambled Eggs", eggs.Name)
	assert.Zero(t, eggs.Calories, "unparseable calories should fall back to 0")
	assert.Equal(t, 12.0, eggs.ProteinG)
}

func TestLoadFoodsRetainsShortRowsWithName(t *testing.T) {
	t.Parallel()

	ts := csvServer(t, nutritionCSV)
	foods, err := catalog.LoadFoods(context.Background(), ts.Client(), ts.URL)
	require.NoError(t, err)

	rice := foods[2]
	assert.Equal(t, "Plain Rice", rice.Name)
	// Columns beyond the row's range read as absent.
	assert.Zero(t, rice.Calories)
	assert.Zero(t, rice.ProteinG)
	assert.Empty(t, rice.ServingSize)
}

func TestLoadFoodsSyntheticIdentitiesFollowRowOrder(t *testing.T) {
	t.Parallel()

	ts := csvServer(t, nutritionCSV)
	foods, err := catalog.LoadFoods(context.Background(), ts.Client(), ts.URL)
	require.NoError(t, err)

	// Identities are per-row, so dropped rows leave gaps.
	assert.Equal(t, "food-0", foods[0].ID)
	assert.Equal(t, "food-2", foods[1].ID)
	assert.Equal(t, "food-3", foods[2].ID)
}

func TestLoadExercisesDropsBlankNames(t *testing.T) {
	t.Parallel()

	ts := csvServer(t, exerciseCSV)
	exercises, err := catalog.LoadExercises(context.Background(), ts.Client(), ts.URL)
	require.NoError(t, err)

	require.Len(t, exercises, 2)
	assert.Equal(t, "Bench Press", exercises[0].Exercise)
	assert.Equal(t, "Strength", exercises[0].Category)
	assert.Equal(t, "weight", exercises[0].ProgressMetric)
	assert.Equal(t, "Running", exercises[1].Exercise)
}

func TestLoadFailsOnTransportError(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	_, err := catalog.LoadFoods(context.Background(), ts.Client(), ts.URL)
	assert.Error(t, err)
}

func TestLoadHeaderOnlyYieldsEmptyCatalog(t *testing.T) {
	t.Parallel()

	ts := csvServer(t, "category,exercise,progress_metric")
	exercises, err := catalog.LoadExercises(context.Background(), ts.Client(), ts.URL)
	require.NoError(t, err)
	assert.Empty(t, exercises)
}
