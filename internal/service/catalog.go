package service

import (
	"context"
	"fmt"

	"github.com/mkuznetsov/car-auction/internal/auctionerrors"
	"github.com/mkuznetsov/car-auction/internal/core"
	"github.com/mkuznetsov/car-auction/internal/model"
	"github.com/mkuznetsov/car-auction/internal/repository"
)

type catalogService struct {
	userRepo repository.UserRepository
	carRepo  repository.CarRepository
	bidRepo  repository.BidRepository
}

func NewCatalogService(
	userRepo repository.UserRepository,
	carRepo repository.CarRepository,
	bidRepo repository.BidRepository,
) core.CatalogService {
	return &catalogService{
		userRepo: userRepo,
		carRepo:  carRepo,
		bidRepo:  bidRepo,
	}
}

// Overview returns the profile aggregate for one user: balance, the
// whole catalog and the user's bid history, newest first.
func (s *catalogService) Overview(ctx context.Context, userID int64) (*model.Overview, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, auctionerrors.ErrUnauthenticated
	}

	cars, err := s.carRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	bids, err := s.bidRepo.HistoryByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bid history: %w", err)
	}

	return &model.Overview{
		Username: user.Username,
		Balance:  user.Balance,
		Cars:     cars,
		Bids:     bids,
	}, nil
}
