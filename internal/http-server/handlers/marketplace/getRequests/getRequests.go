package getRequests

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
	Data []models.MarketRequest `json:"data"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RequestsLister
type RequestsLister interface {
	ListRequests(ctx context.Context, actor models.User, listingID string) ([]models.MarketRequest, error)
}

// New godoc
// @Summary      List requests for a listing
// @Description  Seller or administrator only.
// @Tags         marketplace
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Listing ID"
// @Success      200  {object}  Response
// @Failure      401,403,404  {object}  response.Response
// @Router       /marketplace/{id}/requests [get]
func New(log *slog.Logger, lister RequestsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.marketplace.getRequests.New"

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

		reqs, err := lister.ListRequests(r.Context(), user, listingID)
		if err != nil {
			log.Error("failed to list requests", sl.Err(err), slog.String("listing_id", listingID))
			render.Status(r, response.StatusCode(err))
			render.JSON(w, r, response.Error(response.ErrorMessage(err, "failed to get requests")))
			return
		}

		if reqs == nil {
			reqs = []models.MarketRequest{}
		}

		render.JSON(w, r, Response{
			Response: response.OK(""),
			Data:     reqs,
		})
	}
}
