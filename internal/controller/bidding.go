package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/mkuznetsov/car-auction/internal/auctionerrors"
	"github.com/mkuznetsov/car-auction/internal/core"
	"github.com/mkuznetsov/car-auction/internal/middlewareinternal"
	"github.com/mkuznetsov/car-auction/internal/model"
)

type BiddingController struct {
	biddingService core.BiddingService
	logger         *zap.Logger
}

func NewBiddingController(biddingService core.BiddingService, logger *zap.Logger) *BiddingController {
	return &BiddingController{
		biddingService: biddingService,
		logger:         logger,
	}
}

type placeBidResponse struct {
	Success    bool                    `json:"success"`
	NewBalance int64                   `json:"new_balance"`
	Bids       []model.BidHistoryEntry `json:"bids"`
}

func (c *BiddingController) PlaceBid(w http.ResponseWriter, r *http.Request) {
	userID, ok := middlewareinternal.GetUserIDFromContext(r.Context())
	if !ok {
		writeFailure(w, r, http.StatusUnauthorized, "Not logged in")
		return
	}

	carID, err := strconv.ParseInt(r.PostFormValue("car_id"), 10, 64)
	if err != nil {
		writeFailure(w, r, http.StatusBadRequest, "Invalid input")
		return
	}
	amount, err := strconv.ParseInt(r.PostFormValue("amount"), 10, 64)
	if err != nil {
		writeFailure(w, r, http.StatusBadRequest, "Invalid input")
		return
	}

	newBalance, history, err := c.biddingService.PlaceBid(r.Context(), userID, carID, amount)
	if err != nil {
		switch {
		case errors.Is(err, auctionerrors.ErrCarNotFound):
			writeFailure(w, r, http.StatusNotFound, "Car not found")
		case errors.Is(err, auctionerrors.ErrInsufficientFunds):
			writeFailure(w, r, http.StatusBadRequest, "Insufficient funds")
		case errors.Is(err, auctionerrors.ErrBidTooLow):
			writeFailure(w, r, http.StatusBadRequest, "Bid must be higher than current bid")
		default:
			c.logger.Error("Bid placement failed",
				zap.Int64("user_id", userID),
				zap.Int64("car_id", carID),
				zap.Error(err))
			writeFailure(w, r, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	render.JSON(w, r, placeBidResponse{
		Success:    true,
		NewBalance: newBalance,
		Bids:       history,
	})
}
