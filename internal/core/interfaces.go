package core

import (
	"context"

	"github.com/mkuznetsov/car-auction/internal/model"
)

type (
	AuthService interface {
		Register(ctx context.Context, username, password string) (*model.User, error)
		Login(ctx context.Context, username, password string) (*model.User, string, error)
		ValidateToken(tokenString string) (int64, error)
	}

	FundingService interface {
		AddFunds(ctx context.Context, userID, amount int64) (int64, error)
	}

	BiddingService interface {
		PlaceBid(ctx context.Context, userID, carID, amount int64) (int64, []model.BidHistoryEntry, error)
	}

	CatalogService interface {
		Overview(ctx context.Context, userID int64) (*model.Overview, error)
	}
)
