package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/pageza/wastewise-v1/backend/internal/model"
)

// UserSummary is the only view of a user the API exposes to other members.
type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

func toUserSummary(u *model.User) *UserSummary {
	if u == nil {
		return nil
	}
	return &UserSummary{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

// HouseholdResponse is a household with its members reduced to summaries.
type HouseholdResponse struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	JoinCode  string        `json:"joinCode"`
	WasteGoal float64       `json:"wasteGoal"`
	CreatedAt time.Time     `json:"createdAt"`
	Members   []UserSummary `json:"members"`
}

func toHouseholdResponse(h *model.Household) *HouseholdResponse {
	if h == nil {
		return nil
	}
	resp := &HouseholdResponse{
		ID:        h.ID,
		Name:      h.Name,
		JoinCode:  h.JoinCode,
		WasteGoal: h.WasteGoal,
		CreatedAt: h.CreatedAt,
		Members:   make([]UserSummary, 0, len(h.Members)),
	}
	for i := range h.Members {
		resp.Members = append(resp.Members, *toUserSummary(&h.Members[i]))
	}
	return resp
}

// IngredientResponse annotates an ingredient with its owner's summary so
// household members can see whose item it is.
type IngredientResponse struct {
	ID         uuid.UUID    `json:"id"`
	Name       string       `json:"name"`
	Quantity   float64      `json:"quantity"`
	Unit       string       `json:"unit"`
	Category   string       `json:"category"`
	ExpiryDate *time.Time   `json:"expiryDate"`
	CreatedAt  time.Time    `json:"createdAt"`
	UserID     uuid.UUID    `json:"userId"`
	User       *UserSummary `json:"user,omitempty"`
}

func toIngredientResponse(i *model.Ingredient) IngredientResponse {
	return IngredientResponse{
		ID:         i.ID,
		Name:       i.Name,
		Quantity:   i.Quantity,
		Unit:       i.Unit,
		Category:   i.Category,
		ExpiryDate: i.ExpiryDate,
		CreatedAt:  i.CreatedAt,
		UserID:     i.UserID,
		User:       toUserSummary(i.User),
	}
}
