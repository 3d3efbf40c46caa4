package integration

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"

	handler "github.com/adilaksono/lembaga-cms/internal/adapters/handler/http"
	repo "github.com/adilaksono/lembaga-cms/internal/adapters/repository/postgres"
	"github.com/adilaksono/lembaga-cms/internal/core/domain"
	"github.com/adilaksono/lembaga-cms/internal/core/services"
	"github.com/adilaksono/lembaga-cms/internal/core/token"
	"github.com/adilaksono/lembaga-cms/internal/logging"
)

const (
	testSecret = "test-secret"
	testTTL    = time.Hour
)

type TestApp struct {
	DB          *sql.DB
	Server      *httptest.Server
	Client      *http.Client
	Codec       *token.Codec
	DBContainer testcontainers.Container
}

func setupPostgresContainer(ctx context.Context) (testcontainers.Container, string, error) {
	pgContainer, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", err
	}

	return pgContainer, connStr, nil
}

func applyMigrations(db *sql.DB) error {
	dirPath := "../../internal/adapters/repository/postgres/migrations"

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), "up.sql") {
			continue
		}

		content, err := os.ReadFile(filepath.Join(dirPath, entry.Name()))
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", entry.Name(), err)
		}

		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", entry.Name(), err)
		}
	}

	return nil
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()
	ctx := context.Background()

	dbContainer, dbURL, err := setupPostgresContainer(ctx)
	require.NoError(t, err)

	db, err := sql.Open("postgres", dbURL)
	require.NoError(t, err)
	require.NoError(t, applyMigrations(db))

	codec := token.NewCodec([]byte(testSecret), testTTL)
	logger := logging.Discard()

	userRepo := repo.NewUserRepository(db)
	revocationRepo := repo.NewRevocationRepository(db)
	authSvc := services.NewAuthService(userRepo, revocationRepo, codec, logger)

	session := handler.NewSessionMiddleware(authSvc, handler.CookieConfig{}, int(testTTL.Seconds()))

	router := handler.NewHandler(session, handler.Handlers{
		Auth:    handler.NewAuthHandler(authSvc, session),
		User:    handler.NewUserHandler(services.NewUserService(userRepo)),
		Author:  handler.NewAuthorHandler(services.NewAuthorService(repo.NewAuthorRepository(db))),
		Mail:    handler.NewMailHandler(services.NewMailService(repo.NewMailRepository(db), repo.NewMailCategoryRepository(db))),
		Project: handler.NewProjectHandler(services.NewProjectService(repo.NewProjectRepository(db))),
		Task:    handler.NewTaskHandler(services.NewTaskService(repo.NewTaskRepository(db))),
		Page:    handler.NewPageHandler(services.NewPageService(repo.NewPageRepository(db))),
	})

	server := httptest.NewServer(router)

	return &TestApp{
		DB:          db,
		Server:      server,
		Client:      server.Client(),
		Codec:       codec,
		DBContainer: dbContainer,
	}
}

func (app *TestApp) Teardown(t *testing.T) {
	t.Helper()
	app.Server.Close()
	require.NoError(t, app.DB.Close())
	require.NoError(t, app.DBContainer.Terminate(context.Background()))
}

// createUser inserts a user directly and returns its identity plus a
// valid session token.
func (app *TestApp) createUser(t *testing.T, role domain.Role) (domain.Identity, string) {
	t.Helper()

	email := fmt.Sprintf("user-%s@example.com", uuid.NewString())
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	var id uuid.UUID
	err = app.DB.QueryRow(
		"INSERT INTO users (email, password_hash, role, first_name) VALUES ($1, $2, $3, 'Test') RETURNING id",
		email, string(hash), string(role),
	).Scan(&id)
	require.NoError(t, err)

	identity := domain.Identity{ID: id, Email: email, Role: role}
	signed, err := app.Codec.Issue(identity)
	require.NoError(t, err)
	return identity, signed
}

func (app *TestApp) createMailCategory(t *testing.T, name, code string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := app.DB.QueryRow(
		"INSERT INTO mail_categories (name, code) VALUES ($1, $2) RETURNING id",
		name, code,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

// request performs an HTTP call with an optional session cookie and JSON
// body.
func (app *TestApp) request(t *testing.T, method, path, tokenString string, body *strings.Reader) *http.Response {
	t.Helper()

	if body == nil {
		body = strings.NewReader("")
	}
	req, err := http.NewRequest(method, app.Server.URL+path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if tokenString != "" {
		req.AddCookie(&http.Cookie{Name: "token", Value: tokenString})
	}

	resp, err := app.Client.Do(req)
	require.NoError(t, err)
	return resp
}
