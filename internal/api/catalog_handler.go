package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hudspal/tracker/internal/catalog"
)

// CatalogHandler exposes search over the two reference datasets.
type CatalogHandler struct {
	catalogs *catalog.Manager
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogs *catalog.Manager) *CatalogHandler {
	return &CatalogHandler{catalogs: catalogs}
}

// SearchFoods returns up to 20 catalog foods matching the q parameter, in
// load order. An empty q lists the first 20. The loading flag lets the UI
// show its pending indicator while the fetch is in flight.
func (h *CatalogHandler) SearchFoods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"loading": h.catalogs.FoodsLoading(),
		"items":   h.catalogs.SearchFoods(c.Query("q")),
	})
}

// SearchExercises returns up to 20 catalog exercises matching the q
// parameter, in load order.
func (h *CatalogHandler) SearchExercises(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"items": h.catalogs.SearchExercises(c.Query("q")),
	})
}

// Reload refetches both datasets. A failed load leaves the affected catalog
// as it was and reports the error; loads are never retried automatically.
func (h *CatalogHandler) Reload(c *gin.Context) {
	ctx := c.Request.Context()
	result := gin.H{}

	if err := h.catalogs.LoadFoods(ctx); err != nil {
		log.Printf("ERROR: Reloading food catalog failed: %v", err)
		result["foods_error"] = err.Error()
	} else {
		result["foods"] = h.catalogs.FoodCount()
	}

	if err := h.catalogs.LoadExercises(ctx); err != nil {
		log.Printf("ERROR: Reloading exercise catalog failed: %v", err)
		result["exercises_error"] = err.Error()
	} else {
		result["exercises"] = h.catalogs.ExerciseCount()
	}

	c.JSON(http.StatusOK, result)
}
