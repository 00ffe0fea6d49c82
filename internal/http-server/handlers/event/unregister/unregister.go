package unregister

import (
	"context"
	"log/slog"
	"net/http"

	"communityHub/internal/http-server/middleware/auth"
	"communityHub/internal/lib/api/response"
	"communityHub/internal/lib/logger/sl"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Unregistrar
type Unregistrar interface {
	Unregister(ctx context.Context, eventID, userID string) error
}

// New godoc
// @Summary      Cancel a registration
// @Description  Deletes the caller's registration. A freed seat goes to the oldest waitlisted registration.
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Event ID"
// @Success      200  {object}  response.Response
// @Failure      401,404  {object}  response.Response
// @Router       /events/{id}/register [delete]
func New(log *slog.Logger, unregistrar Unregistrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.unregister.New"

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

		if err := unregistrar.Unregister(r.Context(), eventID, user.ID); err != nil {
			log.Error("failed to unregister", sl.Err(err))
			render.Status(r, response.StatusCode(err))
			render.JSON(w, r, response.Error(response.ErrorMessage(err, "failed to cancel registration")))
			return
		}

		log.Info("registration cancelled")

		render.JSON(w, r, response.OK("registration cancelled"))
	}
}
