package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/wastewise-v1/backend/internal/service"
)

type HouseholdHandler struct {
	households *service.HouseholdService
}

func NewHouseholdHandler(households *service.HouseholdService) *HouseholdHandler {
	return &HouseholdHandler{households: households}
}

func (h *HouseholdHandler) Create(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
		// The UI sends the goal as a string; json.Number takes either.
		WasteGoal json.Number `json:"wasteGoal"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Household name is required"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var wasteGoal *float64
	if req.WasteGoal != "" {
		goal, err := req.WasteGoal.Float64()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "wasteGoal must be a number"})
			return
		}
		wasteGoal = &goal
	}

	household, err := h.households.Create(c.Request.Context(), userID, req.Name, wasteGoal)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyMember) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "You are already part of a household"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create household"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"household": toHouseholdResponse(household)})
}

func (h *HouseholdHandler) Join(c *gin.Context) {
	var req struct {
		JoinCode string `json:"joinCode" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Join code is required"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	household, err := h.households.Join(c.Request.Context(), userID, req.JoinCode)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyMember):
			c.JSON(http.StatusBadRequest, gin.H{"error": "You are already part of a household"})
		case errors.Is(err, service.ErrHouseholdNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Invalid join code"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join household"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"household": toHouseholdResponse(household)})
}

func (h *HouseholdHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	household, err := h.households.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch household"})
		return
	}

	if household == nil {
		c.JSON(http.StatusOK, gin.H{"household": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"household": toHouseholdResponse(household)})
}
