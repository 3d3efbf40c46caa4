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

func createTask(t *testing.T, app *TestApp, token, title string) string {
	t.Helper()

	payload := fmt.Sprintf(`{"title":%q}`, title)
	resp := app.request(t, "POST", "/api/tasks/", token, strings.NewReader(payload))
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		Data struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "TODO", body.Data.Status)
	return body.Data.ID
}

func TestTaskOwnership(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	_, ownerToken := app.createUser(t, domain.RoleUser)
	_, otherToken := app.createUser(t, domain.RoleUser)
	_, adminToken := app.createUser(t, domain.RoleAdmin)

	taskID := createTask(t, app, ownerToken, "Write grant report")

	// 1. The owner can read and update their task
	resp := app.request(t, "GET", "/api/tasks/"+taskID, ownerToken, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	update := strings.NewReader(`{"title":"Write grant report","status":"IN_PROGRESS"}`)
	resp = app.request(t, "PUT", "/api/tasks/"+taskID, ownerToken, update)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// 2. Another user is forbidden, even though they are logged in
	for _, method := range []string{"GET", "PUT", "DELETE"} {
		body := strings.NewReader(`{"title":"hijack"}`)
		resp := app.request(t, method, "/api/tasks/"+taskID, otherToken, body)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode, method)
	}

	// 3. Admins can always read
	resp = app.request(t, "GET", "/api/tasks/"+taskID, adminToken, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// 4. Anonymous access to the tasks subtree is rejected outright
	resp = app.request(t, "GET", "/api/tasks/", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestTaskListMineIncludesAssigned(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	assignee, assigneeToken := app.createUser(t, domain.RoleUser)
	_, creatorToken := app.createUser(t, domain.RoleUser)

	createTask(t, app, creatorToken, "Creator-only task")

	payload := fmt.Sprintf(`{"title":"Shared task","assignee_id":%q}`, assignee.ID)
	resp := app.request(t, "POST", "/api/tasks/", creatorToken, strings.NewReader(payload))
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = app.request(t, "GET", "/api/tasks/", assigneeToken, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data []struct {
			Title string `json:"title"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	require.Len(t, body.Data, 1)
	assert.Equal(t, "Shared task", body.Data[0].Title)
}
