package register

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
	Notes *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

type Response struct {
	response.Response
	Data *models.Registration `json:"data,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Registrar
type Registrar interface {
	Register(ctx context.Context, eventID, userID string, notes *string) (*models.Registration, error)
}

// New godoc
// @Summary      Register for an event
// @Description  Registers the caller, or puts them on the waitlist when the event is full.
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string   true   "Event ID"
// @Param        body  body  Request  false  "Registration notes"
// @Success      201  {object}  Response
// @Failure      400,401,404,409  {object}  response.Response
// @Router       /events/{id}/register [post]
func New(log *slog.Logger, registrar Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.register.New"

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
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(slog.String("event_id", eventID), slog.String("user_id", user.ID))

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

		reg, err := registrar.Register(r.Context(), eventID, user.ID, req.Notes)
		if err != nil {
			log.Error("failed to register", sl.Err(err))
			render.Status(r, response.StatusCode(err))
			render.JSON(w, r, response.Error(response.ErrorMessage(err, "failed to register for event")))
			return
		}

		log.Info("registration created", slog.String("status", string(reg.Status)))

		message := "registered for event"
		if reg.Status == models.RegistrationWaitlist {
			message = "event is full, added to waitlist"
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{
			Response: response.OK(message),
			Data:     reg,
		})
	}
}
