package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pageza/wastewise-v1/backend/internal/service"
)

type RecipeHandler struct {
	recipes *service.RecipeService
}

func NewRecipeHandler(recipes *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

func (h *RecipeHandler) Generate(c *gin.Context) {
	var req struct {
		Ingredients         []string `json:"ingredients"`
		PrepTime            int      `json:"prepTime"`
		Servings            int      `json:"servings"`
		DietaryRestrictions []string `json:"dietaryRestrictions"`
		Cuisine             string   `json:"cuisine"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(req.Ingredients) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one ingredient is required"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	recipe, err := h.recipes.Generate(c.Request.Context(), userID, service.GenerateParams{
		Ingredients:         req.Ingredients,
		PrepTime:            req.PrepTime,
		Servings:            req.Servings,
		DietaryRestrictions: req.DietaryRestrictions,
		Cuisine:             req.Cuisine,
	})
	if err != nil {
		// Model failures and store failures look the same to the caller;
		// details stay in the log.
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate recipe"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"recipe": recipe})
}

func (h *RecipeHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	recipes, err := h.recipes.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe, err := h.recipes.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipe"})
		return
	}

	c.JSON(http.StatusOK, recipe)
}
