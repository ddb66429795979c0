package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/wastewise-v1/backend/internal/model"
)

func TestGenerateRecipe(t *testing.T) {
	router, db, auth, _ := setupTestRouter(t)
	_, token := createUserWithToken(t, db, auth, "Alice", "alice@example.com")

	w := doJSON(t, router, http.MethodPost, "/api/v1/recipes/generate", token, map[string]interface{}{
		"ingredients": []string{"eggs", "spinach"},
		"servings":    2,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	recipe, ok := decodeBody(t, w)["recipe"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Waste-Not Frittata", recipe["title"])
	assert.Equal(t, []interface{}{"eggs", "spinach"}, recipe["savedIngredients"])
	assert.Equal(t, float64(2), recipe["servings"])

	var count int64
	require.NoError(t, db.Model(&model.Recipe{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGenerateRecipeRequiresIngredients(t *testing.T) {
	router, db, auth, _ := setupTestRouter(t)
	_, token := createUserWithToken(t, db, auth, "Alice", "alice@example.com")

	w := doJSON(t, router, http.MethodPost, "/api/v1/recipes/generate", token, map[string]interface{}{
		"ingredients": []string{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "At least one ingredient is required", decodeBody(t, w)["error"])
}

func TestGenerateRecipeModelFailure(t *testing.T) {
	router, db, auth, llm := setupTestRouter(t)
	_, token := createUserWithToken(t, db, auth, "Alice", "alice@example.com")

	llm.resp = ""
	llm.err = errors.New("upstream timeout")

	w := doJSON(t, router, http.MethodPost, "/api/v1/recipes/generate", token, map[string]interface{}{
		"ingredients": []string{"eggs"},
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to generate recipe", decodeBody(t, w)["error"])

	// The caller sees the same generic error when the model answers
	// without any JSON in it.
	llm.err = nil
	llm.resp = "Sorry, I cannot help with that."

	w = doJSON(t, router, http.MethodPost, "/api/v1/recipes/generate", token, map[string]interface{}{
		"ingredients": []string{"eggs"},
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var count int64
	require.NoError(t, db.Model(&model.Recipe{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestListAndGetRecipes(t *testing.T) {
	router, db, auth, _ := setupTestRouter(t)
	_, token := createUserWithToken(t, db, auth, "Alice", "alice@example.com")

	w := doJSON(t, router, http.MethodPost, "/api/v1/recipes/generate", token, map[string]interface{}{
		"ingredients": []string{"eggs"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id := decodeBody(t, w)["recipe"].(map[string]interface{})["id"].(string)

	w = doJSON(t, router, http.MethodGet, "/api/v1/recipes", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	recipes, ok := decodeBody(t, w)["recipes"].([]interface{})
	require.True(t, ok)
	assert.Len(t, recipes, 1)

	w = doJSON(t, router, http.MethodGet, "/api/v1/recipes/"+id, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Waste-Not Frittata", decodeBody(t, w)["title"])

	w = doJSON(t, router, http.MethodGet, "/api/v1/recipes/00000000-0000-0000-0000-000000000000", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
