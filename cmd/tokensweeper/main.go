// Periodically deletes revocation records whose covered tokens have all
// expired on their own, keeping the revocation table small.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"

	"github.com/adilaksono/lembaga-cms/internal/adapters/repository/postgres"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	schedule := os.Getenv("SWEEP_SCHEDULE")
	if schedule == "" {
		schedule = "@hourly"
	}

	db, err := sql.Open("postgres", dbConnString())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	repo := postgres.NewRevocationRepository(db)

	c := cron.New()
	_, err = c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		n, err := repo.PurgeExpired(ctx, time.Now())
		if err != nil {
			log.Printf("sweep failed: %v", err)
			return
		}
		if n > 0 {
			log.Printf("purged %d expired revocation records", n)
		}
	})
	if err != nil {
		log.Fatalf("invalid SWEEP_SCHEDULE: %v", err)
	}

	c.Start()
	defer c.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	fmt.Println("Shutting down sweeper...")
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
