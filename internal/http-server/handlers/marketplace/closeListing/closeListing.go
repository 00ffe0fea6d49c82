package closeListing

import (
	"context"
	"log/slog"
	"net/http"

	"communityHub/internal/http-server/middleware/auth"
	"communityHub/internal/lib/api/response"
	"communityHub/internal/lib/logger/sl"
	"communityHub/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Data *models.MarketListing `json:"data,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ListingCloser
type ListingCloser interface {
	CloseListing(ctx context.Context, actor models.User, id string) (*models.MarketListing, error)
}

// New godoc
// @Summary      Close a listing
// @Description  Soft delete: the listing status becomes CLOSED.
// @Tags         marketplace
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Listing ID"
// @Success      200  {object}  Response
// @Failure      401,403,404  {object}  response.Response
// @Router       /marketplace/{id} [delete]
func New(log *slog.Logger, closer ListingCloser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.marketplace.closeListing.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		listingID := chi.URLParam(r, "id")

		listing, err := closer.CloseListing(r.Context(), user, listingID)
		if err != nil {
			log.Error("failed to close listing", sl.Err(err), slog.String("listing_id", listingID))
			render.Status(r, response.StatusCode(err))
			render.JSON(w, r, response.Error(response.ErrorMessage(err, "failed to close listing")))
			return
		}

		log.Info("listing closed", slog.String("listing_id", listingID))

		render.JSON(w, r, Response{
			Response: response.OK("listing closed"),
			Data:     listing,
		})
	}
}
