package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/wastewise-v1/backend/internal/api"
	"github.com/pageza/wastewise-v1/backend/internal/service"
	"github.com/pageza/wastewise-v1/backend/internal/testhelpers"
)

type staticLLM struct{}

func (staticLLM) Complete(ctx context.Context, prompt string) (string, error) {
	return "{}", nil
}

func TestSetupRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testhelpers.SetupTestDB(t)
	authService := service.NewAuthService("test-secret")

	router := SetupRouter(
		api.NewIngredientHandler(service.NewIngredientService(db)),
		api.NewFoodWasteHandler(service.NewFoodWasteService(db)),
		api.NewHouseholdHandler(service.NewHouseholdService(db)),
		api.NewRecipeHandler(service.NewRecipeService(db, staticLLM{})),
		authService,
		nil,
	)

	// Health endpoint is open.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	// Everything under /api/v1 is behind the auth gate.
	for _, path := range []string{
		"/api/v1/ingredients",
		"/api/v1/food-waste",
		"/api/v1/household",
		"/api/v1/recipes",
	} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}
