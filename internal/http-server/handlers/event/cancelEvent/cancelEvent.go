package cancelEvent

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
	Data *models.Event `json:"data,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCanceller
type EventCanceller interface {
	CancelEvent(ctx context.Context, actor models.User, id string) (*models.Event, error)
}

// New godoc
// @Summary      Cancel an event
// @Description  Soft delete: the event status becomes CANCELLED.
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Event ID"
// @Success      200  {object}  Response
// @Failure      401,403,404  {object}  response.Response
// @Router       /events/{id} [delete]
func New(log *slog.Logger, canceller EventCanceller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.cancelEvent.New"

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

		event, err := canceller.CancelEvent(r.Context(), user, eventID)
		if err != nil {
			log.Error("failed to cancel event", sl.Err(err), slog.String("event_id", eventID))
			render.Status(r, response.StatusCode(err))
			render.JSON(w, r, response.Error(response.ErrorMessage(err, "failed to cancel event")))
			return
		}

		log.Info("event cancelled", slog.String("event_id", eventID))

		render.JSON(w, r, Response{
			Response: response.OK("event cancelled"),
			Data:     event,
		})
	}
}
