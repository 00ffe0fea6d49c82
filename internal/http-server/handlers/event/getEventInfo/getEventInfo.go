package getEventInfo

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

type EventInfoResponse struct {
	response.Response
	Data *models.Event `json:"data,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventGetter
type EventGetter interface {
	GetEvent(ctx context.Context, id, viewerID string) (*models.Event, error)
}

// New godoc
// @Summary      Get an event
// @Tags         events
// @Produce      json
// @Param        id  path  string  true  "Event ID"
// @Success      200  {object}  EventInfoResponse
// @Failure      404  {object}  response.Response
// @Router       /events/{id} [get]
func New(log *slog.Logger, info EventGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getEventInfo.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(slog.String("event_id", eventID))

		// anonymous views are recorded with an empty viewer
		viewer, _ := auth.UserFromContext(r.Context())

		event, err := info.GetEvent(r.Context(), eventID, viewer.ID)
		if err != nil {
			log.Error("failed to get event information", sl.Err(err))
			render.Status(r, response.StatusCode(err))
			render.JSON(w, r, response.Error(response.ErrorMessage(err, "failed to get event information")))
			return
		}

		log.Info("event info successfully received")

		render.JSON(w, r, EventInfoResponse{
			Response: response.OK(""),
			Data:     event,
		})
	}
}
