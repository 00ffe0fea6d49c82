package createListing

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"communityHub/internal/http-server/middleware/auth"
	"communityHub/internal/lib/api/response"
	"communityHub/internal/lib/logger/sl"
	"communityHub/internal/models"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Description string   `json:"description,omitempty" validate:"max=5000"`
	Category    string   `json:"category,omitempty" validate:"max=100"`
	IsFree      bool     `json:"isFree"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
}

type Response struct {
	response.Response
	Data *models.MarketListing `json:"data,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ListingCreator
type ListingCreator interface {
	CreateListing(ctx context.Context, seller models.User, in models.ListingInput) (*models.MarketListing, error)
}

// New godoc
// @Summary      Create a listing
// @Description  A price is required unless the item is free.
// @Tags         marketplace
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  Request  true  "Listing"
// @Success      201  {object}  Response
// @Failure      400,401  {object}  response.Response
// @Router       /marketplace [post]
func New(log *slog.Logger, creator ListingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.marketplace.createListing.New"

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

		listing, err := creator.CreateListing(r.Context(), user, models.ListingInput{
			Title:       req.Title,
			Description: req.Description,
			Category:    req.Category,
			IsFree:      req.IsFree,
			Price:       req.Price,
		})
		if err != nil {
			log.Error("failed to create listing", sl.Err(err))
			render.Status(r, response.StatusCode(err))
			render.JSON(w, r, response.Error(response.ErrorMessage(err, "failed to create listing")))
			return
		}

		log.Info("listing created", slog.String("id", listing.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{
			Response: response.OK("listing created"),
			Data:     listing,
		})
	}
}
