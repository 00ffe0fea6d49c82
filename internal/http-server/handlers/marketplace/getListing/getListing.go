package getListing

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ListingGetter
type ListingGetter interface {
	GetListing(ctx context.Context, id, viewerID string) (*models.MarketListing, error)
}

// New godoc
// @Summary      Get a listing
// @Tags         marketplace
// @Produce      json
// @Param        id  path  string  true  "Listing ID"
// @Success      200  {object}  Response
// @Failure      404  {object}  response.Response
// @Router       /marketplace/{id} [get]
func New(log *slog.Logger, getter ListingGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.marketplace.getListing.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		listingID := chi.URLParam(r, "id")
		viewer, _ := auth.UserFromContext(r.Context())

		listing, err := getter.GetListing(r.Context(), listingID, viewer.ID)
		if err != nil {
			log.Error("failed to get listing", sl.Err(err), slog.String("listing_id", listingID))
			render.Status(r, response.StatusCode(err))
			render.JSON(w, r, response.Error(response.ErrorMessage(err, "failed to get listing")))
			return
		}

		render.JSON(w, r, Response{
			Response: response.OK(""),
			Data:     listing,
		})
	}
}
