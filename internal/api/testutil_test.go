package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pageza/wastewise-v1/backend/internal/middleware"
	"github.com/pageza/wastewise-v1/backend/internal/model"
	"github.com/pageza/wastewise-v1/backend/internal/service"
	"github.com/pageza/wastewise-v1/backend/internal/testhelpers"
)

type fakeLLM struct {
	resp string
	err  error
}

func (f *fakeLLM) Complete(ctx context.Context, prompt string) (string, error) {
	return f.resp, f.err
}

const sampleRecipeResponse = `Here you go!
{
  "title": "Waste-Not Frittata",
  "description": "A quick frittata.",
  "ingredients": [{"name": "egg", "quantity": "4", "unit": "pieces"}],
  "instructions": ["Whisk.", "Cook."],
  "prepTime": 20,
  "cookTime": 15,
  "servings": 2,
  "difficulty": "Easy",
  "cuisine": "Italian"
}`

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB, *service.AuthService, *fakeLLM) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDB(t)
	authService := service.NewAuthService("test-secret")
	llm := &fakeLLM{resp: sampleRecipeResponse}

	ingredientHandler := NewIngredientHandler(service.NewIngredientService(db))
	wasteHandler := NewFoodWasteHandler(service.NewFoodWasteService(db))
	householdHandler := NewHouseholdHandler(service.NewHouseholdService(db))
	recipeHandler := NewRecipeHandler(service.NewRecipeService(db, llm))

	router := gin.New()
	v1 := router.Group("/api/v1")
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	{
		protected.GET("/ingredients", ingredientHandler.List)
		protected.POST("/ingredients", ingredientHandler.Add)
		protected.DELETE("/ingredients", ingredientHandler.Delete)
		protected.GET("/food-waste", wasteHandler.GetMonthlyStats)
		protected.POST("/food-waste", wasteHandler.Record)
		protected.GET("/household", householdHandler.Get)
		protected.POST("/household/create", householdHandler.Create)
		protected.POST("/household/join", householdHandler.Join)
		protected.GET("/recipes", recipeHandler.List)
		protected.GET("/recipes/:id", recipeHandler.Get)
		protected.POST("/recipes/generate", recipeHandler.Generate)
	}

	return router, db, authService, llm
}

// createUserWithToken creates a user and signs a token for it.
func createUserWithToken(t *testing.T, db *gorm.DB, authService *service.AuthService, name, email string) (*model.User, string) {
	t.Helper()

	user := testhelpers.CreateTestUser(t, db, name, email)
	token, err := authService.IssueToken(user.ID, user.Email)
	require.NoError(t, err)
	return user, token
}

// doJSON performs a request with an optional bearer token and JSON body.
func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
