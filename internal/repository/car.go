package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mkuznetsov/car-auction/internal/model"
)

type CarRepository interface {
	List(ctx context.Context) ([]model.Car, error)
	GetByID(ctx context.Context, id int64) (*model.Car, error)
}

type carRepository struct {
	db *Database
}

func NewCarRepository(db *Database) CarRepository {
	return &carRepository{db: db}
}

func (r *carRepository) List(ctx context.Context) ([]model.Car, error) {
	query := `SELECT id, name, location, image_url, current_bid, end_time FROM cars ORDER BY id`
	rows, err := r.db.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}
	defer rows.Close()

	cars := make([]model.Car, 0)
	for rows.Next() {
		var car model.Car
		if err := rows.Scan(&car.ID, &car.Name, &car.Location, &car.ImageURL, &car.CurrentBid, &car.EndTime); err != nil {
			return nil, fmt.Errorf("failed to scan car: %w", err)
		}
		cars = append(cars, car)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return cars, nil
}

func (r *carRepository) GetByID(ctx context.Context, id int64) (*model.Car, error) {
	car := &model.Car{}
	query := `SELECT id, name, location, image_url, current_bid, end_time FROM cars WHERE id = $1`
	err := r.db.db.QueryRowContext(ctx, query, id).Scan(&car.ID, &car.Name, &car.Location, &car.ImageURL, &car.CurrentBid, &car.EndTime)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return car, nil
}
