// seed inserts the default admin account into the local dev database.
// Run: go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/meli-labs/seller-dashboard/internal/infrastructure/postgres"
	"github.com/meli-labs/seller-dashboard/internal/password"
	"golang.org/x/crypto/bcrypt"
)

const (
	adminName  = "Administrador MELI"
	adminEmail = "admin@meli.com"
)

func main() {
	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set — run: direnv allow")
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin123"
	}

	if err := postgres.RunMigrations(ctx, dbURL); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	pool, err := postgres.NewPool(ctx, dbURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	hash, err := password.NewHasher(bcrypt.DefaultCost).Hash(adminPassword)
	if err != nil {
		log.Fatalf("hash admin password: %v", err)
	}

	// Idempotent: on re-runs the existing admin row is left untouched.
	var userID int64
	err = pool.QueryRow(ctx, `
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO NOTHING
		RETURNING id`,
		adminName, adminEmail, hash,
	).Scan(&userID)
	if errors.Is(err, pgx.ErrNoRows) {
		fmt.Println("Admin account already exists, nothing to do")
		return
	}
	if err != nil {
		log.Fatalf("insert admin: %v", err)
	}

	fmt.Println("Seed complete")
	fmt.Println()
	fmt.Printf("  User:    %s\n", adminEmail)
	fmt.Printf("  User ID: %d\n", userID)
	fmt.Println()
	fmt.Println("How to test:")
	fmt.Println()
	fmt.Println("  Step 1 — log in:")
	fmt.Println()
	fmt.Println("    curl -s -X POST http://localhost:8080/api/auth/login \\")
	fmt.Println("      -H 'Content-Type: application/json' \\")
	fmt.Printf("      -d '{\"email\":\"%s\",\"password\":\"%s\"}'\n", adminEmail, adminPassword)
	fmt.Println("    # → {\"token\":\"eyJ...\", \"user\":{...}}")
	fmt.Println()
	fmt.Println("  Step 2 — call a protected endpoint:")
	fmt.Println()
	fmt.Println("    export JWT=eyJ...")
	fmt.Println("    curl -s http://localhost:8080/api/mercadolivre/metrics -H \"Authorization: Bearer $JWT\"")
}
