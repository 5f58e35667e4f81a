package domain

// Calendar dates throughout the engine are plain "YYYY-MM-DD" strings,
// formatted from the local clock at entry creation. The string is the sole
// grouping key for daily aggregation; no timezone normalization happens later.
const DateLayout = "2006-01-02"

// FoodEntry logs servings of a catalog food for one date. The catalog item is
// shared by reference, never copied. Quantity is the only mutable field; an
// entry whose quantity drops to zero is removed from the store entirely.
type FoodEntry struct {
	ID       string           `json:"id"`
	Food     *FoodCatalogItem `json:"food"`
	Quantity float64          `json:"quantity"`
	MealType string           `json:"meal_type"`
	Date     string           `json:"date"`
}

// WaterEntry logs one water intake. Append-only.
type WaterEntry struct {
	ID     string  `json:"id"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
	Time   string  `json:"time"`
}

// WorkoutEntry logs one exercise session. Append-only; sets/reps/weight are
// optional and omitted when not supplied.
type WorkoutEntry struct {
	ID             string               `json:"id"`
	Exercise       *ExerciseCatalogItem `json:"exercise"`
	Duration       float64              `json:"duration"`
	CaloriesBurned float64              `json:"calories_burned"`
	Sets           *int                 `json:"sets,omitempty"`
	Reps           *int                 `json:"reps,omitempty"`
	Weight         *float64             `json:"weight,omitempty"`
	Date           string               `json:"date"`
}

// SleepEntry logs one night of sleep. At most one entry exists per calendar
// date; logging again for the same date overwrites hours and quality in place.
type SleepEntry struct {
	ID      string  `json:"id"`
	Hours   float64 `json:"hours"`
	Quality int     `json:"quality"`
	Date    string  `json:"date"`
}

// WeightEntry logs one body-weight measurement. Append-only, no dedup by date.
type WeightEntry struct {
	ID     string  `json:"id"`
	Weight float64 `json:"weight"`
	Unit   string  `json:"unit"`
	Date   string  `json:"date"`
}
