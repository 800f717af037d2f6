package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkuznetsov/car-auction/internal/auctionerrors"
)

func TestFundingController_AddFunds(t *testing.T) {
	funding := &stubFundingService{
		addFundsFn: func(_ context.Context, _, amount int64) (int64, error) {
			if amount <= 0 {
				return 0, auctionerrors.ErrInvalidAmount
			}
			return 100 + amount, nil
		},
	}
	ctrl := NewFundingController(funding)

	t.Run("no_session", func(t *testing.T) {
		req := newFormRequest(t, "/add_funds", url.Values{"amount": {"50"}})
		rec := httptest.NewRecorder()
		ctrl.AddFunds(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decodeBody(t, rec)
		require.Equal(t, false, body["success"])
		require.Equal(t, "Not logged in", body["message"])
	})

	tests := []struct {
		name           string
		amount         string
		expectedStatus int
	}{
		{name: "non_numeric_amount", amount: "abc", expectedStatus: http.StatusBadRequest},
		{name: "empty_amount", amount: "", expectedStatus: http.StatusBadRequest},
		{name: "negative_amount", amount: "-5", expectedStatus: http.StatusBadRequest},
		{name: "zero_amount", amount: "0", expectedStatus: http.StatusBadRequest},
		{name: "valid_amount", amount: "400", expectedStatus: http.StatusOK},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := withUserID(newFormRequest(t, "/add_funds", url.Values{"amount": {tc.amount}}), 7)
			rec := httptest.NewRecorder()
			ctrl.AddFunds(rec, req)

			require.Equal(t, tc.expectedStatus, rec.Code)
			body := decodeBody(t, rec)
			if tc.expectedStatus != http.StatusOK {
				require.Equal(t, false, body["success"])
				require.Equal(t, "Invalid amount", body["message"])
				return
			}
			require.Equal(t, true, body["success"])
			require.Equal(t, float64(500), body["new_balance"])
		})
	}
}
