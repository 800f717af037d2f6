package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mkuznetsov/car-auction/internal/auctionerrors"
	"github.com/mkuznetsov/car-auction/internal/core"
	"github.com/mkuznetsov/car-auction/internal/model"
	"github.com/mkuznetsov/car-auction/internal/repository"
)

type biddingService struct {
	bidRepo repository.BidRepository
	logger  *zap.Logger
}

func NewBiddingService(bidRepo repository.BidRepository, logger *zap.Logger) core.BiddingService {
	return &biddingService{
		bidRepo: bidRepo,
		logger:  logger,
	}
}

// PlaceBid commits the bid and returns the user's new balance together
// with their full bid history, newest first. Funds are reserved the
// moment the bid is accepted and are never returned on outbid.
func (s *biddingService) PlaceBid(ctx context.Context, userID, carID, amount int64) (int64, []model.BidHistoryEntry, error) {
	if amount <= 0 {
		return 0, nil, auctionerrors.ErrBidTooLow
	}

	newBalance, err := s.bidRepo.PlaceBid(ctx, userID, carID, amount)
	if err != nil {
		return 0, nil, err
	}

	s.logger.Info("Bid accepted",
		zap.Int64("user_id", userID),
		zap.Int64("car_id", carID),
		zap.Int64("amount", amount),
		zap.Int64("new_balance", newBalance))

	history, err := s.bidRepo.HistoryByUser(ctx, userID)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to load bid history: %w", err)
	}

	return newBalance, history, nil
}
