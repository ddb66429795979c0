package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pageza/wastewise-v1/backend/internal/service"
)

type FoodWasteHandler struct {
	waste *service.FoodWasteService
}

func NewFoodWasteHandler(waste *service.FoodWasteService) *FoodWasteHandler {
	return &FoodWasteHandler{waste: waste}
}

func (h *FoodWasteHandler) GetMonthlyStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	records, stats, err := h.waste.MonthlyStats(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch food waste data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"records": records,
		"stats":   stats,
	})
}

func (h *FoodWasteHandler) Record(c *gin.Context) {
	var req struct {
		IngredientName string `json:"ingredientName" binding:"required"`
		Quantity       string `json:"quantity" binding:"required"`
		Unit           string `json:"unit" binding:"required"`
		Reason         string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ingredient name, quantity, and unit are required"})
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

	record, err := h.waste.Record(c.Request.Context(), userID, req.IngredientName, quantity, req.Unit, req.Reason)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create food waste record"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"wasteRecord": record})
}
