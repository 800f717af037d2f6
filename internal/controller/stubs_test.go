package controller

import (
	"context"

	"github.com/mkuznetsov/car-auction/internal/model"
)

// Function-backed stubs for the service interfaces the controllers
// consume. Only the functions a test sets are expected to be called.

type stubAuthService struct {
	registerFn func(ctx context.Context, username, password string) (*model.User, error)
	loginFn    func(ctx context.Context, username, password string) (*model.User, string, error)
	validateFn func(tokenString string) (int64, error)
}

func (s *stubAuthService) Register(ctx context.Context, username, password string) (*model.User, error) {
	return s.registerFn(ctx, username, password)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) ValidateToken(tokenString string) (int64, error) {
	return s.validateFn(tokenString)
}

type stubFundingService struct {
	addFundsFn func(ctx context.Context, userID, amount int64) (int64, error)
}

func (s *stubFundingService) AddFunds(ctx context.Context, userID, amount int64) (int64, error) {
	return s.addFundsFn(ctx, userID, amount)
}

type stubBiddingService struct {
	placeBidFn func(ctx context.Context, userID, carID, amount int64) (int64, []model.BidHistoryEntry, error)
}

func (s *stubBiddingService) PlaceBid(ctx context.Context, userID, carID, amount int64) (int64, []model.BidHistoryEntry, error) {
	return s.placeBidFn(ctx, userID, carID, amount)
}

type stubCatalogService struct {
	overviewFn func(ctx context.Context, userID int64) (*model.Overview, error)
}

func (s *stubCatalogService) Overview(ctx context.Context, userID int64) (*model.Overview, error) {
	return s.overviewFn(ctx, userID)
}
