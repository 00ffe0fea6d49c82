package updateListing

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"communityHub/internal/http-server/middleware/auth"
	"communityHub/internal/lib/api/response"
	"communityHub/internal/lib/logger/sl"
	"communityHub/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	Title       *string  `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=5000"`
	Category    *string  `json:"category,omitempty" validate:"omitempty,max=100"`
	IsFree      *bool    `json:"isFree,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
}

type Response struct {
	response.Response
	Data *models.MarketListing `json:"data,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ListingUpdater
type ListingUpdater interface {
	UpdateListing(ctx context.Context, actor models.User, id string, patch models.ListingPatch) (*models.MarketListing, error)
}

// New godoc
// @Summary      Update a listing
// @Description  Seller or administrator only. SOLD and CLOSED listings cannot be edited.
// @Tags         marketplace
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string   true  "Listing ID"
// @Param        body  body  Request  true  "Fields to change"
// @Success      200  {object}  Response
// @Failure      400,401,403,404  {object}  response.Response
// @Router       /marketplace/{id} [put]
func New(log *slog.Logger, updater ListingUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.marketplace.updateListing.New"

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

		log = log.With(slog.String("listing_id", listingID))

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		listing, err := updater.UpdateListing(r.Context(), user, listingID, models.ListingPatch{
			Title:       req.Title,
			Description: req.Description,
			Category:    req.Category,
			IsFree:      req.IsFree,
			Price:       req.Price,
		})
		if err != nil {
			log.Error("failed to update listing", sl.Err(err))
			render.Status(r, response.StatusCode(err))
			render.JSON(w, r, response.Error(response.ErrorMessage(err, "failed to update listing")))
			return
		}

		log.Info("listing updated")

		render.JSON(w, r, Response{
			Response: response.OK("listing updated"),
			Data:     listing,
		})
	}
}
