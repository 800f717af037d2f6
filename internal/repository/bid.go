package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mkuznetsov/car-auction/internal/auctionerrors"
	"github.com/mkuznetsov/car-auction/internal/model"
)

type BidRepository interface {
	PlaceBid(ctx context.Context, userID, carID, amount int64) (int64, error)
	HistoryByUser(ctx context.Context, userID int64) ([]model.BidHistoryEntry, error)
}

type bidRepository struct {
	db *Database
}

func NewBidRepository(db *Database) BidRepository {
	return &bidRepository{db: db}
}

// PlaceBid runs the whole bid placement as one transaction. Both the car
// and the user row are locked before the checks, so concurrent bids on
// the same car serialize and either effect applies fully or not at all.
func (r *bidRepository) PlaceBid(ctx context.Context, userID, carID, amount int64) (int64, error) {
	tx, err := r.db.BeginTx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var currentBid int64
	err = tx.QueryRowContext(ctx, `SELECT current_bid FROM cars WHERE id = $1 FOR UPDATE`, carID).Scan(&currentBid)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, auctionerrors.ErrCarNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to lock car: %w", err)
	}

	var balance int64
	err = tx.QueryRowContext(ctx, `SELECT balance FROM users WHERE id = $1 FOR UPDATE`, userID).Scan(&balance)
	if err != nil {
		return 0, fmt.Errorf("failed to lock user: %w", err)
	}

	if amount > balance {
		return 0, auctionerrors.ErrInsufficientFunds
	}
	if amount <= currentBid {
		return 0, auctionerrors.ErrBidTooLow
	}

	if _, err := tx.ExecContext(ctx, `UPDATE cars SET current_bid = $1 WHERE id = $2`, amount, carID); err != nil {
		return 0, fmt.Errorf("failed to update current bid: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE users SET balance = balance - $1 WHERE id = $2`, amount, userID); err != nil {
		return 0, fmt.Errorf("failed to decrement balance: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO bids (user_id, car_id, amount) VALUES ($1, $2, $3)`, userID, carID, amount); err != nil {
		return 0, fmt.Errorf("failed to record bid: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit bid: %w", err)
	}

	return balance - amount, nil
}

func (r *bidRepository) HistoryByUser(ctx context.Context, userID int64) ([]model.BidHistoryEntry, error) {
	query := `SELECT cars.name, bids.amount
              FROM bids
              JOIN cars ON bids.car_id = cars.id
              WHERE bids.user_id = $1
              ORDER BY bids.created_at DESC, bids.id DESC`
	rows, err := r.db.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bid history: %w", err)
	}
	defer rows.Close()

	entries := make([]model.BidHistoryEntry, 0)
	for rows.Next() {
		var e model.BidHistoryEntry
		if err := rows.Scan(&e.Name, &e.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan bid history row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
