package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/brightroof/solar-leads/config"
	"github.com/brightroof/solar-leads/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	username := "demoUser"
	email := "demo@brightroof.example"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	// DO NOTHING so a rerun cannot trip the unique email index; RETURNING
	// is empty on conflict, so look the row up afterwards.
	if _, err := db.Exec(`
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (username) DO NOTHING
	`, username, email, hash); err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	var id string
	if err := db.QueryRow(`SELECT id FROM users WHERE username = $1`, username).Scan(&id); err != nil {
		log.Fatalf("failed to read seeded user: %v", err)
	}
	fmt.Printf("seeded user: id=%s username=%s password=%s\n", id, username, password)

	// A few notifications so the bell icon has something to show
	notifications := []string{
		"Welcome to the solar leads dashboard.",
		"New service request received from the contact page.",
		"Calculator submissions are now deduplicated automatically.",
	}
	for _, msg := range notifications {
		if _, err := db.Exec(`
			INSERT INTO notifications (message)
			SELECT $1
			WHERE NOT EXISTS (SELECT 1 FROM notifications WHERE message = $1)
		`, msg); err != nil {
			log.Fatalf("failed to seed notification: %v", err)
		}
	}
	fmt.Printf("seeded %d notifications (if not already present)\n", len(notifications))
}
