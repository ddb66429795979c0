package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/wastewise-v1/backend/internal/api"
	"github.com/pageza/wastewise-v1/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	ingredientHandler *api.IngredientHandler,
	wasteHandler *api.FoodWasteHandler,
	householdHandler *api.HouseholdHandler,
	recipeHandler *api.RecipeHandler,
	validator middleware.TokenValidator,
	generationLimiter *middleware.RateLimiter,
) *gin.Engine {
	router := gin.Default()

	// CORS middleware
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(validator))
	{
		ingredients := protected.Group("/ingredients")
		{
			ingredients.GET("", ingredientHandler.List)
			ingredients.POST("", ingredientHandler.Add)
			ingredients.DELETE("", ingredientHandler.Delete)
		}

		waste := protected.Group("/food-waste")
		{
			waste.GET("", wasteHandler.GetMonthlyStats)
			waste.POST("", wasteHandler.Record)
		}

		household := protected.Group("/household")
		{
			household.GET("", householdHandler.Get)
			household.POST("/create", householdHandler.Create)
			household.POST("/join", householdHandler.Join)
		}

		recipes := protected.Group("/recipes")
		{
			recipes.GET("", recipeHandler.List)
			recipes.GET("/:id", recipeHandler.Get)
			if generationLimiter != nil {
				recipes.POST("/generate", generationLimiter.RateLimitMiddleware(), recipeHandler.Generate)
			} else {
				recipes.POST("/generate", recipeHandler.Generate)
			}
		}
	}

	return router
}
