package domain

// FoodCatalogItem is one row of the nutrition facts dataset.
// All nutrient values are per one serving. Loaded once at startup; read-only.
type FoodCatalogItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	ServingSize string  `json:"serving_size"`
	Calories    float64 `json:"calories"`
	ProteinG    float64 `json:"protein_g"`
	CarbsG      float64 `json:"total_carbs_g"`
	FatG        float64 `json:"total_fat_g"`
	SodiumMg    float64 `json:"sodium_mg"`
	SugarsG     float64 `json:"sugars_g"`
}

// ExerciseCatalogItem is one row of the exercise catalog dataset. Read-only.
type ExerciseCatalogItem struct {
	ID             string `json:"id"`
	Category       string `json:"category"`
	Exercise       string `json:"exercise"`
	ProgressMetric string `json:"progress_metric"`
}
