package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/render"

	"github.com/mkuznetsov/car-auction/internal/auctionerrors"
	"github.com/mkuznetsov/car-auction/internal/core"
	"github.com/mkuznetsov/car-auction/internal/middlewareinternal"
)

type FundingController struct {
	fundingService core.FundingService
}

func NewFundingController(fundingService core.FundingService) *FundingController {
	return &FundingController{fundingService: fundingService}
}

type addFundsResponse struct {
	Success    bool  `json:"success"`
	NewBalance int64 `json:"new_balance"`
}

func (c *FundingController) AddFunds(w http.ResponseWriter, r *http.Request) {
	userID, ok := middlewareinternal.GetUserIDFromContext(r.Context())
	if !ok {
		writeFailure(w, r, http.StatusUnauthorized, "Not logged in")
		return
	}

	amount, err := strconv.ParseInt(r.PostFormValue("amount"), 10, 64)
	if err != nil {
		writeFailure(w, r, http.StatusBadRequest, "Invalid amount")
		return
	}

	newBalance, err := c.fundingService.AddFunds(r.Context(), userID, amount)
	if err != nil {
		switch {
		case errors.Is(err, auctionerrors.ErrInvalidAmount):
			writeFailure(w, r, http.StatusBadRequest, "Invalid amount")
		default:
			writeFailure(w, r, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	render.JSON(w, r, addFundsResponse{Success: true, NewBalance: newBalance})
}
