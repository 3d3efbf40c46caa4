// Seeds the admin account, the standard mail categories and the homepage
// sections. Safe to run repeatedly; every statement is an upsert.
package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db, err := sql.Open("postgres", dbConnString())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	adminEmail := os.Getenv("SEED_ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@example.com"
	}
	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminPassword == "" {
		log.Fatal("SEED_ADMIN_PASSWORD must be set")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), 12)
	if err != nil {
		log.Fatal(err)
	}

	_, err = db.Exec(`
		INSERT INTO users (email, password_hash, role, first_name, last_name)
		VALUES ($1, $2, 'ADMIN', 'Admin', 'User')
		ON CONFLICT DO NOTHING
	`, adminEmail, string(hash))
	if err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}

	categories := []struct {
		name, code, description string
	}{
		{"Surat Keterangan", "SK", "Surat yang berisi keterangan resmi dari instansi"},
		{"Undangan Meeting", "UM", "Surat undangan untuk rapat atau pertemuan"},
		{"Surat Pemberitahuan", "SP", "Surat pemberitahuan resmi"},
	}
	for _, c := range categories {
		_, err := db.Exec(`
			INSERT INTO mail_categories (name, code, description)
			VALUES ($1, $2, $3)
			ON CONFLICT (code) DO NOTHING
		`, c.name, c.code, c.description)
		if err != nil {
			log.Fatalf("failed to seed mail category %s: %v", c.code, err)
		}
	}

	sections := []struct {
		pageSlug, sectionKey, title, body string
		sortOrder                         int
	}{
		{"home", "hero", "Selamat Datang", "Bersama membangun masyarakat yang berdaya.", 0},
		{"home", "about", "Tentang Kami", "Lembaga nirlaba yang bergerak di bidang pemberdayaan masyarakat.", 1},
		{"about", "mission", "Misi", "Meningkatkan kesejahteraan melalui pendidikan dan pendampingan.", 0},
	}
	for _, s := range sections {
		_, err := db.Exec(`
			INSERT INTO page_sections (page_slug, section_key, title, body, sort_order, updated_by)
			SELECT $1, $2, $3, $4, $5, id FROM users WHERE email = $6
			ON CONFLICT (page_slug, section_key) DO NOTHING
		`, s.pageSlug, s.sectionKey, s.title, s.body, s.sortOrder, adminEmail)
		if err != nil {
			log.Fatalf("failed to seed page section %s/%s: %v", s.pageSlug, s.sectionKey, err)
		}
	}

	fmt.Println("Database has been seeded.")
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
