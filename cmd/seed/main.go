package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/dailyforge/dailyforge-api/config"
	"github.com/dailyforge/dailyforge-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@dailyforge.dev"
	password := "password123"
	username := "demoUser"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var userID string
	err = db.QueryRow(`
		INSERT INTO users (email, username, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET username = EXCLUDED.username
		RETURNING id
	`, email, username, hash).Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", userID, email, password)

	today := time.Now().Format("2006-01-02")

	if _, err := db.Exec(`
		INSERT INTO tasks (user_id, title, description, deadline, category)
		VALUES
			($1, 'Write weekly review', 'Summarize wins and blockers', $2, 'work'),
			($1, 'Buy groceries', NULL, $2, 'errands'),
			($1, 'Book dentist appointment', NULL, NULL, 'health')
	`, userID, today); err != nil {
		log.Fatalf("failed to seed tasks: %v", err)
	}

	if _, err := db.Exec(`
		INSERT INTO expenses (user_id, description, amount, category, date)
		VALUES
			($1, 'Lunch with team', 18.50, 'food', $2),
			($1, 'Monthly transit pass', 75.00, 'transport', $2),
			($1, 'Coffee beans', 12.25, 'food', $2)
	`, userID, today); err != nil {
		log.Fatalf("failed to seed expenses: %v", err)
	}

	var habitID string
	if err := db.QueryRow(`
		INSERT INTO habits (user_id, name, description, frequency, goal)
		VALUES ($1, 'Morning run', '20 minutes before breakfast', 'daily', '5 times a week')
		RETURNING id
	`, userID).Scan(&habitID); err != nil {
		log.Fatalf("failed to seed habit: %v", err)
	}
	if _, err := db.Exec(`
		INSERT INTO habit_completions (habit_id, user_id, date)
		VALUES ($1, $2, $3)
		ON CONFLICT (habit_id, date) DO NOTHING
	`, habitID, userID, today); err != nil {
		log.Fatalf("failed to seed habit completion: %v", err)
	}

	fmt.Println("seeded sample tasks, expenses and one habit with a completion")
}
