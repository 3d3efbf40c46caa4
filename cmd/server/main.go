package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/adilaksono/lembaga-cms/internal/adapters/handler/http"
	"github.com/adilaksono/lembaga-cms/internal/adapters/repository/postgres"
	"github.com/adilaksono/lembaga-cms/internal/core/services"
	"github.com/adilaksono/lembaga-cms/internal/core/token"
	"github.com/adilaksono/lembaga-cms/internal/logging"
)

const defaultTokenTTL = 24 * time.Hour

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	env := os.Getenv("ENV")
	production := env == "production"

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		// Never boot on a guessable default outside local development.
		if production {
			log.Fatal("JWT_SECRET must be set in production")
		}
		log.Println("Warning: JWT_SECRET not set, using development secret")
		secret = "development-only-secret"
	}

	ttl := defaultTokenTTL
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			log.Fatalf("invalid TOKEN_TTL: %v", err)
		}
		ttl = parsed
	}

	db, err := sql.Open("postgres", dbConnString())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	logger := logging.Default()
	codec := token.NewCodec([]byte(secret), ttl)

	userRepo := postgres.NewUserRepository(db)
	revocationRepo := postgres.NewRevocationRepository(db)
	authorRepo := postgres.NewAuthorRepository(db)
	mailRepo := postgres.NewMailRepository(db)
	mailCategoryRepo := postgres.NewMailCategoryRepository(db)
	projectRepo := postgres.NewProjectRepository(db)
	taskRepo := postgres.NewTaskRepository(db)
	pageRepo := postgres.NewPageRepository(db)

	authSvc := services.NewAuthService(userRepo, revocationRepo, codec, logger)

	session := http.NewSessionMiddleware(authSvc, http.CookieConfig{
		Domain: os.Getenv("COOKIE_DOMAIN"),
		Secure: production,
	}, int(ttl.Seconds()))

	handler := http.NewHandler(session, http.Handlers{
		Auth:    http.NewAuthHandler(authSvc, session),
		User:    http.NewUserHandler(services.NewUserService(userRepo)),
		Author:  http.NewAuthorHandler(services.NewAuthorService(authorRepo)),
		Mail:    http.NewMailHandler(services.NewMailService(mailRepo, mailCategoryRepo)),
		Project: http.NewProjectHandler(services.NewProjectService(projectRepo)),
		Task:    http.NewTaskHandler(services.NewTaskService(taskRepo)),
		Page:    http.NewPageHandler(services.NewPageService(pageRepo)),
	})

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = "0.0.0.0:8080"
	}
	server := &stdhttp.Server{Addr: addr, Handler: handler}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Gracefully shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
}

func dbConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		os.Getenv("POSTGRES_USER"),
		os.Getenv("POSTGRES_PASSWORD"),
		os.Getenv("POSTGRES_HOST"),
		os.Getenv("POSTGRES_PORT"),
		os.Getenv("POSTGRES_DB"),
	)
}
