package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hudspal/tracker/internal/catalog"
	"hudspal/tracker/internal/service"
)

// SetupRoutes wires every dashboard endpoint onto the router. The API layer
// is presentation glue: handlers only call engine interfaces.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	trackerService service.TrackerService,
	catalogs *catalog.Manager,
	rotator *service.AffirmationRotator,
) {
	authHandler := NewAuthHandler(authService, trackerService)
	trackerHandler := NewTrackerHandler(trackerService, authService)
	catalogHandler := NewCatalogHandler(catalogs)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", authHandler.Me)
		protected.PUT("/me/goals", authHandler.UpdateGoals)
		protected.POST("/auth/logout", authHandler.Logout)

		// --- Catalog Routes ---
		catalogGroup := protected.Group("/catalogs")
		{
			catalogGroup.GET("/foods", catalogHandler.SearchFoods)
			catalogGroup.GET("/exercises", catalogHandler.SearchExercises)
			catalogGroup.POST("/reload", catalogHandler.Reload)
		}

		// --- Tracker Routes ---
		protected.GET("/date", trackerHandler.GetDate)
		protected.PUT("/date", trackerHandler.SetDate)
		protected.GET("/summary", trackerHandler.GetSummary)

		foodGroup := protected.Group("/foods")
		{
			foodGroup.GET("", trackerHandler.GetFoods)
			foodGroup.POST("", trackerHandler.LogFood)
			foodGroup.PATCH("/:id", trackerHandler.AdjustFood)
			foodGroup.DELETE("/:id", trackerHandler.RemoveFood)
		}

		protected.POST("/water", trackerHandler.LogWater)

		workoutGroup := protected.Group("/workouts")
		{
			workoutGroup.GET("", trackerHandler.GetWorkouts)
			workoutGroup.POST("", trackerHandler.LogWorkout)
		}

		protected.POST("/sleep", trackerHandler.LogSleep)
		protected.POST("/weights", trackerHandler.LogWeight)
		protected.GET("/weights/stats", trackerHandler.GetWeightStats)

		chartGroup := protected.Group("/charts")
		{
			chartGroup.GET("/workouts", trackerHandler.GetWorkoutChart)
			chartGroup.GET("/weight", trackerHandler.GetWeightChart)
		}

		protected.GET("/motivation", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"affirmation": rotator.Current()})
		})
	}
}
