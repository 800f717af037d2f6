package controller

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/mkuznetsov/car-auction/internal/auctionerrors"
	"github.com/mkuznetsov/car-auction/internal/core"
	"github.com/mkuznetsov/car-auction/internal/middlewareinternal"
	"github.com/mkuznetsov/car-auction/internal/model"
)

type ViewController struct {
	catalogService core.CatalogService
}

func NewViewController(catalogService core.CatalogService) *ViewController {
	return &ViewController{catalogService: catalogService}
}

type anonymousView struct {
	LoggedIn bool `json:"logged_in"`
}

type profileView struct {
	LoggedIn bool                    `json:"logged_in"`
	Username string                  `json:"username"`
	Balance  int64                   `json:"balance"`
	Cars     []model.Car             `json:"cars"`
	Bids     []model.BidHistoryEntry `json:"bids"`
}

// Index serves the catalog/profile aggregate. Anonymous callers only
// learn that they are not logged in.
func (c *ViewController) Index(w http.ResponseWriter, r *http.Request) {
	userID, ok := middlewareinternal.GetUserIDFromContext(r.Context())
	if !ok {
		render.JSON(w, r, anonymousView{LoggedIn: false})
		return
	}

	overview, err := c.catalogService.Overview(r.Context(), userID)
	if err != nil {
		// A stale token for a user that no longer exists falls back
		// to the anonymous view rather than erroring.
		if errors.Is(err, auctionerrors.ErrUnauthenticated) {
			render.JSON(w, r, anonymousView{LoggedIn: false})
			return
		}
		writeFailure(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}

	render.JSON(w, r, profileView{
		LoggedIn: true,
		Username: overview.Username,
		Balance:  overview.Balance,
		Cars:     overview.Cars,
		Bids:     overview.Bids,
	})
}
