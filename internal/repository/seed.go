package repository

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	demoUsername = "Sid"
	demoPassword = "sid123"
	demoBalance  = 500000
)

// SeedDemoUser inserts the demo bidder used by the sample frontend.
// The catalog itself is seeded by the migrations; the demo user cannot
// be, because the bcrypt hash has to be computed at runtime.
func SeedDemoUser(ctx context.Context, db *Database) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	_, err = db.db.ExecContext(ctx,
		`INSERT INTO users (username, password_hash, balance)
         VALUES ($1, $2, $3)
         ON CONFLICT (username) DO NOTHING`,
		demoUsername, string(hash), demoBalance)
	if err != nil {
		return fmt.Errorf("failed to seed demo user: %w", err)
	}
	return nil
}
