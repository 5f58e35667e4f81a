package catalog_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hudspal/tracker/internal/catalog"
	"hudspal/tracker/internal/domain"
)

func foodName(f domain.FoodCatalogItem) string { return f.Name }

func makeFoods(names ...string) []domain.FoodCatalogItem {
	foods := make([]domain.FoodCatalogItem, len(names))
	for i, name := range names {
		foods[i] = domain.FoodCatalogItem{ID: fmt.Sprintf("food-%d", i), Name: name}
	}
	return foods
}

func TestSearchEmptyQueryReturnsFirstLimitInOrder(t *testing.T) {
	t.Parallel()

	names := make([]string, 25)
	for i := range names {
		names[i] = fmt.Sprintf("Food %d", i)
	}
	foods := makeFoods(names...)

	got := catalog.Search(foods, foodName, "", 20)
	require.Len(t, got, 20)
	assert.Equal(t, "Food 0", got[0].Name)
	assert.Equal(t, "Food 19", got[19].Name)
}

func TestSearchWhitespaceQueryIsTreatedAsEmpty(t *testing.T) {
	t.Parallel()

	foods := makeFoods("Apple", "Banana")
	got := catalog.Search(foods, foodName, "   ", 20)
	assert.Len(t, got, 2)
}

func TestSearchMatchesCaseInsensitiveSubstring(t *testing.T) {
	t.Parallel()

	foods := makeFoods("Grilled Chicken", "Chickpea Salad", "Beef Stew", "CHICKEN SOUP")

	got := catalog.Search(foods, foodName, "chick", 20)
	require.Len(t, got, 3)
	// Catalog order is preserved.
	assert.Equal(t, "Grilled Chicken", got[0].Name)
	assert.Equal(t, "Chickpea Salad", got[1].Name)
	assert.Equal(t, "CHICKEN SOUP", got[2].Name)
}

func TestSearchCapsMatchesAtLimit(t *testing.T) {
	t.Parallel()

	names := make([]string, 30)
	for i := range names {
		names[i] = fmt.Sprintf("Oatmeal %d", i)
	}

	got := catalog.Search(makeFoods(names...), foodName, "oat", 20)
	assert.Len(t, got, 20)
}

func TestSearchEmptyCatalogReturnsEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, catalog.Search(nil, foodName, "", 20))
	assert.Empty(t, catalog.Search([]domain.FoodCatalogItem{}, foodName, "apple", 20))
}

func TestSearchNoMatches(t *testing.T) {
	t.Parallel()

	foods := makeFoods("Apple", "Banana")
	assert.Empty(t, catalog.Search(foods, foodName, "zucchini", 20))
}
