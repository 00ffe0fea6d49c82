package updateRequest

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
	Status string `json:"status" validate:"required,oneof=ACCEPTED REJECTED COMPLETED"`
}

type Response struct {
	response.Response
	Data *models.MarketRequest `json:"data,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RequestStatusUpdater
type RequestStatusUpdater interface {
	UpdateRequestStatus(ctx context.Context, listingID, requestID string, status models.RequestStatus, actingUserID string) (*models.MarketRequest, error)
}

// New godoc
// @Summary      Answer a request
// @Description  Seller only. ACCEPTED reserves the listing and COMPLETED marks it sold.
// @Tags         marketplace
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id         path  string   true  "Listing ID"
// @Param        requestId  path  string   true  "Request ID"
// @Param        body       body  Request  true  "New status"
// @Success      200  {object}  Response
// @Failure      400,401,403,404  {object}  response.Response
// @Router       /marketplace/{id}/request/{requestId} [put]
func New(log *slog.Logger, updater RequestStatusUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.marketplace.updateRequest.New"

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
		requestID := chi.URLParam(r, "requestId")

		log = log.With(slog.String("listing_id", listingID), slog.String("market_request_id", requestID))

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

		updated, err := updater.UpdateRequestStatus(r.Context(), listingID, requestID, models.RequestStatus(req.Status), user.ID)
		if err != nil {
			log.Error("failed to update request", sl.Err(err))
			render.Status(r, response.StatusCode(err))
			render.JSON(w, r, response.Error(response.ErrorMessage(err, "failed to update request")))
			return
		}

		log.Info("request updated", slog.String("status", req.Status))

		render.JSON(w, r, Response{
			Response: response.OK("request updated"),
			Data:     updated,
		})
	}
}
