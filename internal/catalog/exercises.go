package catalog

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"hudspal/tracker/internal/domain"
)

// Fixed column positions in the exercise catalog dataset.
const (
	exerciseColCategory = 0
	exerciseColName     = 1
	exerciseColMetric   = 2
)

// ParseExerciseRow maps one exercise catalog row into an ExerciseCatalogItem.
// Rows with a blank exercise name are dropped.
func ParseExerciseRow(index int, cols []string) (domain.ExerciseCatalogItem, bool) {
	name := col(cols, exerciseColName)
	if strings.TrimSpace(name) == "" {
		return domain.ExerciseCatalogItem{}, false
	}
	return domain.ExerciseCatalogItem{
		ID:             fmt.Sprintf("exercise-%d", index),
		Category:       col(cols, exerciseColCategory),
		Exercise:       name,
		ProgressMetric: col(cols, exerciseColMetric),
	}, true
}

// LoadExercises fetches and parses the exercise catalog dataset.
func LoadExercises(ctx context.Context, client *http.Client, url string) ([]domain.ExerciseCatalogItem, error) {
	return Load(ctx, client, url, ParseExerciseRow)
}
