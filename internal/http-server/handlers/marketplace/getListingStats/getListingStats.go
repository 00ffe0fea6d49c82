package getListingStats

import (
	"context"
	"log/slog"
	"net/http"

	"communityHub/internal/lib/api/response"
	"communityHub/internal/lib/logger/sl"
	"communityHub/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Data *models.ListingStats `json:"data,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StatsGetter
type StatsGetter interface {
	Stats(ctx context.Context, listingID string) (*models.ListingStats, error)
}

// New godoc
// @Summary      Listing statistics
// @Tags         marketplace
// @Produce      json
// @Param        id  path  string  true  "Listing ID"
// @Success      200  {object}  Response
// @Failure      404  {object}  response.Response
// @Router       /marketplace/{id}/stats [get]
func New(log *slog.Logger, getter StatsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.marketplace.getListingStats.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		listingID := chi.URLParam(r, "id")

		stats, err := getter.Stats(r.Context(), listingID)
		if err != nil {
			log.Error("failed to get listing stats", sl.Err(err))
			render.Status(r, response.StatusCode(err))
			render.JSON(w, r, response.Error(response.ErrorMessage(err, "failed to get listing stats")))
			return
		}

		render.JSON(w, r, Response{
			Response: response.OK(""),
			Data:     stats,
		})
	}
}
