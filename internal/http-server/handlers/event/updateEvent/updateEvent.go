package updateEvent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"communityHub/internal/http-server/middleware/auth"
	"communityHub/internal/lib/api/response"
	"communityHub/internal/lib/logger/sl"
	"communityHub/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

// Request carries the fields to change. Omitted fields keep their value.
type Request struct {
	Title         *string    `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description   *string    `json:"description,omitempty" validate:"omitempty,max=5000"`
	Location      *string    `json:"location,omitempty" validate:"omitempty,max=300"`
	StartsAt      *time.Time `json:"startsAt,omitempty"`
	EndsAt        *time.Time `json:"endsAt,omitempty"`
	Capacity      *int       `json:"capacity,omitempty" validate:"omitempty,gt=0"`
	ClearCapacity bool       `json:"clearCapacity,omitempty" validate:"excluded_with=Capacity"`
	Status        *string    `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE DRAFT COMPLETED"`
}

type Response struct {
	response.Response
	Data *models.Event `json:"data,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventUpdater
type EventUpdater interface {
	UpdateEvent(ctx context.Context, actor models.User, id string, patch models.EventPatch) (*models.Event, error)
}

// New godoc
// @Summary      Update an event
// @Description  Event creator or administrator only. Raising or clearing the capacity promotes waitlisted registrations.
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string   true  "Event ID"
// @Param        body  body  Request  true  "Fields to change"
// @Success      200  {object}  Response
// @Failure      400,401,403,404  {object}  response.Response
// @Router       /events/{id} [put]
func New(log *slog.Logger, updater EventUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.updateEvent.New"

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

		eventID := chi.URLParam(r, "id")

		log = log.With(slog.String("event_id", eventID))

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

		patch := models.EventPatch{
			Title:         req.Title,
			Description:   req.Description,
			Location:      req.Location,
			StartsAt:      req.StartsAt,
			EndsAt:        req.EndsAt,
			Capacity:      req.Capacity,
			ClearCapacity: req.ClearCapacity,
		}
		if req.Status != nil {
			status := models.EventStatus(*req.Status)
			patch.Status = &status
		}

		event, err := updater.UpdateEvent(r.Context(), user, eventID, patch)
		if err != nil {
			log.Error("failed to update event", sl.Err(err))
			render.Status(r, response.StatusCode(err))
			render.JSON(w, r, response.Error(response.ErrorMessage(err, "failed to update event")))
			return
		}

		log.Info("event updated")

		render.JSON(w, r, Response{
			Response: response.OK("event updated"),
			Data:     event,
		})
	}
}
