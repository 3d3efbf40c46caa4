package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adilaksono/lembaga-cms/internal/core/domain"
)

func TestAdminGuard(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	_, userToken := app.createUser(t, domain.RoleUser)
	_, adminToken := app.createUser(t, domain.RoleAdmin)

	// Anonymous callers get 401, authenticated non-admins get 403.
	cases := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{"anonymous", "", http.StatusUnauthorized},
		{"regular user", userToken, http.StatusForbidden},
		{"admin", adminToken, http.StatusOK},
	}

	for _, tc := range cases {
		resp := app.request(t, "GET", "/api/admin/users/", tc.token, nil)
		defer resp.Body.Close()
		assert.Equal(t, tc.wantStatus, resp.StatusCode, tc.name)
	}
}

func TestUserRoleChange(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	target, _ := app.createUser(t, domain.RoleUser)
	_, adminToken := app.createUser(t, domain.RoleAdmin)

	body := strings.NewReader(`{"role":"ADMIN"}`)
	resp := app.request(t, "PATCH", fmt.Sprintf("/api/admin/users/%s/role", target.ID), adminToken, body)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var role string
	require.NoError(t, app.DB.QueryRow("SELECT role FROM users WHERE id = $1", target.ID).Scan(&role))
	assert.Equal(t, "ADMIN", role)

	// Invalid role value is rejected
	resp = app.request(t, "PATCH", fmt.Sprintf("/api/admin/users/%s/role", target.ID), adminToken, strings.NewReader(`{"role":"ROOT"}`))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUserListPagination(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	_, adminToken := app.createUser(t, domain.RoleAdmin)
	for i := 0; i < 12; i++ {
		app.createUser(t, domain.RoleUser)
	}

	resp := app.request(t, "GET", "/api/admin/users/?page=2&page_size=5", adminToken, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Items      []json.RawMessage `json:"items"`
			Page       int               `json:"page"`
			PageSize   int               `json:"page_size"`
			TotalItems int               `json:"total_items"`
			TotalPages int               `json:"total_pages"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, 2, body.Data.Page)
	assert.Equal(t, 5, body.Data.PageSize)
	assert.Equal(t, 13, body.Data.TotalItems)
	assert.Equal(t, 3, body.Data.TotalPages)
	assert.Len(t, body.Data.Items, 5)
}
