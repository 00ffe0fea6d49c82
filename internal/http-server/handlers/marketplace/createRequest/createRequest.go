package createRequest

import (
	"context"
	"errors"
	"io"
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
	Message *string `json:"message,omitempty" validate:"omitempty,max=1000"`
}

type Response struct {
	response.Response
	Data *models.MarketRequest `json:"data,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RequestCreator
type RequestCreator interface {
	CreateRequest(ctx context.Context, listingID, buyerID string, message *string) (*models.MarketRequest, error)
}

// New godoc
// @Summary      Request a listing
// @Description  Creates a PENDING purchase request. Sellers cannot request their own listing.
// @Tags         marketplace
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string   true   "Listing ID"
// @Param        body  body  Request  false  "Message to the seller"
// @Success      201  {object}  Response
// @Failure      400,401,404,409  {object}  response.Response
// @Router       /marketplace/{id}/request [post]
func New(log *slog.Logger, creator RequestCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.marketplace.createRequest.New"

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
		if listingID == "" {
			log.Error("listing id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("listing id is required"))
			return
		}

		log = log.With(slog.String("listing_id", listingID), slog.String("buyer_id", user.ID))

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil && !errors.Is(err, io.EOF) {
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

		created, err := creator.CreateRequest(r.Context(), listingID, user.ID, req.Message)
		if err != nil {
			log.Error("failed to create request", sl.Err(err))
			render.Status(r, response.StatusCode(err))
			render.JSON(w, r, response.Error(response.ErrorMessage(err, "failed to create request")))
			return
		}

		log.Info("request created", slog.String("id", created.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{
			Response: response.OK("request sent to the seller"),
			Data:     created,
		})
	}
}
