package catalog

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"hudspal/tracker/internal/domain"
)

// Fixed column positions in the nutrition facts dataset.
const (
	foodColName     = 0
	foodColServing  = 3
	foodColCalories = 4
	foodColFat      = 6
	foodColSodium   = 9
	foodColCarbs    = 10
	foodColSugars   = 12
	foodColProtein  = 13
)

// ParseFoodRow maps one nutrition facts row into a FoodCatalogItem. Rows with
// a blank name are dropped.
func ParseFoodRow(index int, cols []string) (domain.FoodCatalogItem, bool) {
	name := col(cols, foodColName)
	if strings.TrimSpace(name) == "" {
		return domain.FoodCatalogItem{}, false
	}
	return domain.FoodCatalogItem{
		ID:          fmt.Sprintf("food-%d", index),
		Name:        name,
		ServingSize: col(cols, foodColServing),
		Calories:    numCol(cols, foodColCalories),
		ProteinG:    numCol(cols, foodColProtein),
		CarbsG:      numCol(cols, foodColCarbs),
		FatG:        numCol(cols, foodColFat),
		SodiumMg:    numCol(cols, foodColSodium),
		SugarsG:     numCol(cols, foodColSugars),
	}, true
}

// LoadFoods fetches and parses the nutrition facts dataset.
func LoadFoods(ctx context.Context, client *http.Client, url string) ([]domain.FoodCatalogItem, error) {
	return Load(ctx, client, url, ParseFoodRow)
}
