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

type mailResponse struct {
	Success bool `json:"success"`
	Data    struct {
		ID         string `json:"id"`
		MailNumber string `json:"mail_number"`
		Subject    string `json:"subject"`
		Type       string `json:"type"`
		Status     string `json:"status"`
	} `json:"data"`
	Error string `json:"error"`
}

func createMail(t *testing.T, app *TestApp, adminToken, subject, mailType, categoryID, date string) mailResponse {
	t.Helper()

	payload := fmt.Sprintf(`{"subject":%q,"type":%q,"category_id":%q,"date":%q}`,
		subject, mailType, categoryID, date)
	resp := app.request(t, "POST", "/api/admin/mails/", adminToken, strings.NewReader(payload))
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body mailResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestMailNumbering(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	_, adminToken := app.createUser(t, domain.RoleAdmin)
	skID := app.createMailCategory(t, "Surat Keputusan", "SK")
	umID := app.createMailCategory(t, "Surat Umum", "UM")

	// 1. Numbers are sequential within a year, zero-padded, with the
	// category code and Roman month of the mail date.
	first := createMail(t, app, adminToken, "Board decision", "OUTGOING", skID.String(), "2025-03-14")
	assert.Equal(t, "0001/SK/III/2025", first.Data.MailNumber)
	assert.Equal(t, "DRAFT", first.Data.Status)

	second := createMail(t, app, adminToken, "Follow-up", "OUTGOING", umID.String(), "2025-11-02")
	assert.Equal(t, "0002/UM/XI/2025", second.Data.MailNumber)

	// 2. A different year starts its own counter
	other := createMail(t, app, adminToken, "Old record", "INCOMING", skID.String(), "2024-01-05")
	assert.Equal(t, "0001/SK/I/2024", other.Data.MailNumber)

	// 3. Updates never touch the assigned number
	update := strings.NewReader(`{"subject":"Board decision (rev)","status":"PUBLISHED"}`)
	resp := app.request(t, "PUT", "/api/admin/mails/"+first.Data.ID, adminToken, update)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated mailResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	assert.Equal(t, "0001/SK/III/2025", updated.Data.MailNumber)
	assert.Equal(t, "PUBLISHED", updated.Data.Status)

	// 4. Unknown category is a 404, not a crash
	payload := fmt.Sprintf(`{"subject":"x","type":"INCOMING","category_id":%q}`, "2f1a3d34-0000-0000-0000-000000000000")
	resp = app.request(t, "POST", "/api/admin/mails/", adminToken, strings.NewReader(payload))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMailListFilters(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	_, adminToken := app.createUser(t, domain.RoleAdmin)
	skID := app.createMailCategory(t, "Surat Keputusan", "SK")

	createMail(t, app, adminToken, "Annual budget approval", "OUTGOING", skID.String(), "2025-02-01")
	createMail(t, app, adminToken, "Donation receipt", "INCOMING", skID.String(), "2025-02-02")
	createMail(t, app, adminToken, "Budget revision", "OUTGOING", skID.String(), "2025-02-03")

	list := func(query string) (int, []string) {
		resp := app.request(t, "GET", "/api/admin/mails/"+query, adminToken, nil)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Data struct {
				Items []struct {
					Subject string `json:"subject"`
				} `json:"items"`
				TotalItems int `json:"total_items"`
			} `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

		subjects := make([]string, 0, len(body.Data.Items))
		for _, item := range body.Data.Items {
			subjects = append(subjects, item.Subject)
		}
		return body.Data.TotalItems, subjects
	}

	total, _ := list("")
	assert.Equal(t, 3, total)

	total, subjects := list("?type=INCOMING")
	assert.Equal(t, 1, total)
	assert.Equal(t, []string{"Donation receipt"}, subjects)

	total, subjects = list("?search=budget")
	assert.Equal(t, 2, total)
	assert.Contains(t, subjects, "Annual budget approval")
	assert.Contains(t, subjects, "Budget revision")
}
