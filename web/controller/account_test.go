package controller

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

type accountResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Active   bool   `json:"active"`
}

func TestAccountList(t *testing.T) {
	engine := setupRouter(t)

	w := doRequest(t, engine, http.MethodGet, "/accounts", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var accounts []accountResponse
	decodeBody(t, w, &accounts)
	assert.Len(t, accounts, 2)
	assert.Equal(t, "affan", accounts[0].Username)
	assert.Equal(t, "mod", accounts[1].Username)
	// the password hash never leaves the store
	assert.NotContains(t, w.Body.String(), "password")
}

func TestAccountGet(t *testing.T) {
	engine := setupRouter(t)

	w := doRequest(t, engine, http.MethodGet, "/accounts/affan", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var account accountResponse
	decodeBody(t, w, &account)
	assert.Equal(t, "admin", account.Role)
	assert.True(t, account.Active)

	w = doRequest(t, engine, http.MethodGet, "/accounts/nobody", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAccountUpdate(t *testing.T) {
	engine := setupRouter(t)

	w := doRequest(t, engine, http.MethodPut, "/accounts/mod", map[string]any{
		"role": "moderator", "active": false,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, engine, http.MethodGet, "/accounts/mod", nil)
	var account accountResponse
	decodeBody(t, w, &account)
	assert.False(t, account.Active)

	// password rotation through the update endpoint
	w = doRequest(t, engine, http.MethodPut, "/accounts/mod", map[string]any{
		"password": "rotated", "role": "moderator", "active": true,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, engine, http.MethodPost, "/login", map[string]string{
		"username": "mod", "password": "rotated",
	})
	var resp loginResponse
	decodeBody(t, w, &resp)
	assert.True(t, resp.Success)

	// a username with no row still answers success
	w = doRequest(t, engine, http.MethodPut, "/accounts/nobody", map[string]any{
		"role": "user", "active": true,
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAccountSoftDelete(t *testing.T) {
	engine := setupRouter(t)

	w := doRequest(t, engine, http.MethodDelete, "/accounts/mod", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, engine, http.MethodGet, "/accounts/mod", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// a soft-deleted account can no longer log in
	w = doRequest(t, engine, http.MethodPost, "/login", map[string]string{
		"username": "mod", "password": "mod123",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	var resp loginResponse
	decodeBody(t, w, &resp)
	assert.False(t, resp.Success)

	// deleting again still answers success
	w = doRequest(t, engine, http.MethodDelete, "/accounts/mod", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
