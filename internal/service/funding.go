package service

import (
	"context"
	"fmt"

	"github.com/mkuznetsov/car-auction/internal/auctionerrors"
	"github.com/mkuznetsov/car-auction/internal/core"
	"github.com/mkuznetsov/car-auction/internal/repository"
)

type fundingService struct {
	userRepo repository.UserRepository
}

func NewFundingService(userRepo repository.UserRepository) core.FundingService {
	return &fundingService{userRepo: userRepo}
}

// AddFunds increments the user's balance and returns the new value.
// There is no upper limit on deposits.
func (s *fundingService) AddFunds(ctx context.Context, userID, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, auctionerrors.ErrInvalidAmount
	}

	newBalance, err := s.userRepo.AddFunds(ctx, userID, amount)
	if err != nil {
		return 0, fmt.Errorf("failed to add funds: %w", err)
	}

	return newBalance, nil
}
