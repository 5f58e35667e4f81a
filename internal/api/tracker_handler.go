package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"hudspal/tracker/internal/catalog"
	"hudspal/tracker/internal/domain"
	"hudspal/tracker/internal/service"
)

// TrackerHandler exposes the daily tracking engine to the dashboard.
type TrackerHandler struct {
	trackerService service.TrackerService
	authService    service.AuthService
}

// NewTrackerHandler creates a new TrackerHandler.
func NewTrackerHandler(trackerService service.TrackerService, authService service.AuthService) *TrackerHandler {
	return &TrackerHandler{trackerService: trackerService, authService: authService}
}

// --- DTOs for API (Data Transfer Objects) ---

type SetDateRequest struct {
	Date string `json:"date" binding:"required"`
}

type LogFoodRequest struct {
	FoodID   string  `json:"food_id" binding:"required"`
	Quantity float64 `json:"quantity"`
	MealType string  `json:"meal_type"`
}

type AdjustFoodRequest struct {
	Delta float64 `json:"delta" binding:"required"`
}

type LogWaterRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

type LogWorkoutRequest struct {
	ExerciseID string   `json:"exercise_id" binding:"required"`
	Duration   float64  `json:"duration" binding:"required"`
	Calories   float64  `json:"calories" binding:"required"`
	Sets       *int     `json:"sets"`
	Reps       *int     `json:"reps"`
	Weight     *float64 `json:"weight"`
}

type LogSleepRequest struct {
	Hours   float64 `json:"hours" binding:"required"`
	Quality int     `json:"quality" binding:"required,min=1,max=10"`
}

type LogWeightRequest struct {
	Weight float64 `json:"weight" binding:"required"`
	Unit   string  `json:"unit" binding:"required,oneof=lbs kg"`
}

// --- Handler Methods ---

// GetDate returns the selected calendar date.
func (h *TrackerHandler) GetDate(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"date": h.trackerService.SelectedDate(c.Request.Context())})
}

// SetDate switches the selected calendar date; new entries and daily
// aggregates follow it.
func (h *TrackerHandler) SetDate(c *gin.Context) {
	var req SetDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	if err := h.trackerService.SetSelectedDate(c.Request.Context(), req.Date); err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": req.Date})
}

// LogFood appends a food entry for the selected date.
func (h *TrackerHandler) LogFood(c *gin.Context) {
	var req LogFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	entry, err := h.trackerService.LogFood(c.Request.Context(), req.FoodID, req.Quantity, req.MealType)
	if err != nil {
		if errors.Is(err, catalog.ErrFoodNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to log food")
		}
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// AdjustFood changes a food entry's quantity; at or below zero the entry is
// removed.
func (h *TrackerHandler) AdjustFood(c *gin.Context) {
	var req AdjustFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	entry, removed, err := h.trackerService.AdjustFood(c.Request.Context(), c.Param("id"), req.Delta)
	if err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to adjust food entry")
		}
		return
	}
	if removed {
		c.JSON(http.StatusOK, gin.H{"removed": true})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// RemoveFood deletes a food entry outright.
func (h *TrackerHandler) RemoveFood(c *gin.Context) {
	if err := h.trackerService.RemoveFood(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to remove food entry")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": true})
}

// GetFoods lists the food entries for the selected date.
func (h *TrackerHandler) GetFoods(c *gin.Context) {
	ctx := c.Request.Context()
	date := c.DefaultQuery("date", h.trackerService.SelectedDate(ctx))
	entries := h.trackerService.FoodsForDate(ctx, date)
	c.JSON(http.StatusOK, gin.H{"date": date, "entries": entries})
}

// LogWater appends a water entry.
func (h *TrackerHandler) LogWater(c *gin.Context) {
	var req LogWaterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	c.JSON(http.StatusCreated, h.trackerService.LogWater(c.Request.Context(), req.Amount))
}

// LogWorkout appends a workout entry.
func (h *TrackerHandler) LogWorkout(c *gin.Context) {
	var req LogWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	entry, err := h.trackerService.LogWorkout(c.Request.Context(), req.ExerciseID, req.Duration, req.Calories, req.Sets, req.Reps, req.Weight)
	if err != nil {
		if errors.Is(err, catalog.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to log workout")
		}
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GetWorkouts lists the workout entries for the selected date.
func (h *TrackerHandler) GetWorkouts(c *gin.Context) {
	ctx := c.Request.Context()
	date := c.DefaultQuery("date", h.trackerService.SelectedDate(ctx))
	entries := h.trackerService.WorkoutsForDate(ctx, date)
	c.JSON(http.StatusOK, gin.H{"date": date, "entries": entries})
}

// LogSleep upserts the sleep entry for the selected date.
func (h *TrackerHandler) LogSleep(c *gin.Context) {
	var req LogSleepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	c.JSON(http.StatusCreated, h.trackerService.LogSleep(c.Request.Context(), req.Hours, req.Quality))
}

// LogWeight appends a weight entry.
func (h *TrackerHandler) LogWeight(c *gin.Context) {
	var req LogWeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	c.JSON(http.StatusCreated, h.trackerService.LogWeight(c.Request.Context(), req.Weight, req.Unit))
}

// GetSummary returns every daily aggregate for the selected date, measured
// against the active user's goals.
func (h *TrackerHandler) GetSummary(c *gin.Context) {
	user, ok := h.activeUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.trackerService.DailySummary(c.Request.Context(), user.Goals))
}

// GetWorkoutChart returns the 7-day workout series ending at the selected
// date.
func (h *TrackerHandler) GetWorkoutChart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"points": h.trackerService.WorkoutChart(c.Request.Context())})
}

// GetWeightChart returns the last-30 weight series against the user's target.
func (h *TrackerHandler) GetWeightChart(c *gin.Context) {
	user, ok := h.activeUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"points": h.trackerService.WeightChart(c.Request.Context(), user.Goals.WeightTarget)})
}

// GetWeightStats returns weight progress against the user's target.
func (h *TrackerHandler) GetWeightStats(c *gin.Context) {
	user, ok := h.activeUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.trackerService.WeightStats(c.Request.Context(), user.Goals.WeightTarget))
}

func (h *TrackerHandler) activeUser(c *gin.Context) (*domain.User, bool) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return nil, false
	}
	u, err := h.authService.GetUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to load user")
		}
		return nil, false
	}
	return u, true
}
