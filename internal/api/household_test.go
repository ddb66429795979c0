package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateHousehold(t *testing.T) {
	router, db, auth, _ := setupTestRouter(t)
	_, token := createUserWithToken(t, db, auth, "Alice", "alice@example.com")

	w := doJSON(t, router, http.MethodPost, "/api/v1/household/create", token, map[string]interface{}{
		"name":      "Green Street",
		"wasteGoal": "7.5",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	household, ok := body["household"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Green Street", household["name"])
	assert.Equal(t, 7.5, household["wasteGoal"])
	assert.Len(t, household["joinCode"], 8)

	members, ok := household["members"].([]interface{})
	require.True(t, ok)
	require.Len(t, members, 1)
	member := members[0].(map[string]interface{})
	assert.Equal(t, "alice@example.com", member["email"])
	// Member projection never carries credentials.
	assert.NotContains(t, member, "passwordHash")

	// Creating a second household for the same user is rejected.
	w = doJSON(t, router, http.MethodPost, "/api/v1/household/create", token, map[string]interface{}{
		"name": "Another",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "You are already part of a household", decodeBody(t, w)["error"])
}

func TestCreateHouseholdRequiresName(t *testing.T) {
	router, db, auth, _ := setupTestRouter(t)
	_, token := createUserWithToken(t, db, auth, "Alice", "alice@example.com")

	w := doJSON(t, router, http.MethodPost, "/api/v1/household/create", token, map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestJoinHousehold(t *testing.T) {
	router, db, auth, _ := setupTestRouter(t)
	_, ownerToken := createUserWithToken(t, db, auth, "Alice", "alice@example.com")
	_, joinerToken := createUserWithToken(t, db, auth, "Bob", "bob@example.com")

	w := doJSON(t, router, http.MethodPost, "/api/v1/household/create", ownerToken, map[string]interface{}{
		"name": "Green Street",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	code := decodeBody(t, w)["household"].(map[string]interface{})["joinCode"].(string)

	// Codes are matched case-insensitively and tolerate copy/paste whitespace.
	w = doJSON(t, router, http.MethodPost, "/api/v1/household/join", joinerToken, map[string]interface{}{
		"joinCode": " " + strings.ToLower(code) + " ",
	})
	require.Equal(t, http.StatusOK, w.Code)

	household := decodeBody(t, w)["household"].(map[string]interface{})
	members := household["members"].([]interface{})
	assert.Len(t, members, 2)
}

func TestJoinHouseholdUnknownCode(t *testing.T) {
	router, db, auth, _ := setupTestRouter(t)
	_, token := createUserWithToken(t, db, auth, "Alice", "alice@example.com")

	w := doJSON(t, router, http.MethodPost, "/api/v1/household/join", token, map[string]interface{}{
		"joinCode": "ZZZZZZZZ",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Invalid join code", decodeBody(t, w)["error"])
}

func TestGetHousehold(t *testing.T) {
	router, db, auth, _ := setupTestRouter(t)
	_, token := createUserWithToken(t, db, auth, "Alice", "alice@example.com")

	// No household yet.
	w := doJSON(t, router, http.MethodGet, "/api/v1/household", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, decodeBody(t, w)["household"])

	w = doJSON(t, router, http.MethodPost, "/api/v1/household/create", token, map[string]interface{}{
		"name": "Green Street",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/household", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	household, ok := decodeBody(t, w)["household"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Green Street", household["name"])
}
