package getEventStats

import (
	"context"
	"log/slog"
	"net/http"

	"communityHub/internal/lib/api/response"
	"communityHub/internal/lib/logger/sl"
	"communityHub/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Data *models.EventStats `json:"data,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StatsGetter
type StatsGetter interface {
	Stats(ctx context.Context, eventID string) (*models.EventStats, error)
}

// New godoc
// @Summary      Event statistics
// @Description  Live registration counts and activity counters.
// @Tags         events
// @Produce      json
// @Param        id  path  string  true  "Event ID"
// @Success      200  {object}  Response
// @Failure      404  {object}  response.Response
// @Router       /events/{id}/stats [get]
func New(log *slog.Logger, getter StatsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getEventStats.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		eventID := chi.URLParam(r, "id")

		stats, err := getter.Stats(r.Context(), eventID)
		if err != nil {
			log.Error("failed to get event stats", sl.Err(err))
			render.Status(r, response.StatusCode(err))
			render.JSON(w, r, response.Error(response.ErrorMessage(err, "failed to get event stats")))
			return
		}

		render.JSON(w, r, Response{
			Response: response.OK(""),
			Data:     stats,
		})
	}
}
