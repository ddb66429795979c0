package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pageza/wastewise-v1/backend/internal/service"
)

type IngredientHandler struct {
	ingredients *service.IngredientService
}

func NewIngredientHandler(ingredients *service.IngredientService) *IngredientHandler {
	return &IngredientHandler{ingredients: ingredients}
}

func (h *IngredientHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	ingredients, err := h.ingredients.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch ingredients"})
		return
	}

	resp := make([]IngredientResponse, 0, len(ingredients))
	for i := range ingredients {
		resp = append(resp, toIngredientResponse(&ingredients[i]))
	}

	c.JSON(http.StatusOK, gin.H{"ingredients": resp})
}

func (h *IngredientHandler) Add(c *gin.Context) {
	var req struct {
		Name       string `json:"name" binding:"required"`
		Quantity   string `json:"quantity" binding:"required"`
		Unit       string `json:"unit" binding:"required"`
		Category   string `json:"category" binding:"required"`
		ExpiryDate string `json:"expiryDate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, quantity, unit, and category are required"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	quantity, err := strconv.ParseFloat(req.Quantity, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be a number"})
		return
	}

	var expiry *time.Time
	if req.ExpiryDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "expiryDate must be a date (YYYY-MM-DD)"})
			return
		}
		expiry = &parsed
	}

	ingredient, err := h.ingredients.Add(c.Request.Context(), userID, req.Name, quantity, req.Unit, req.Category, expiry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create ingredient"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ingredient": toIngredientResponse(ingredient)})
}

func (h *IngredientHandler) Delete(c *gin.Context) {
	idStr := c.Query("id")
	if idStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ingredient ID is required"})
		return
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ingredient id"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.ingredients.Remove(c.Request.Context(), userID, id); err != nil {
		if err == service.ErrIngredientNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Ingredient not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete ingredient"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Ingredient deleted successfully"})
}
