package getAllEvents

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"communityHub/internal/lib/api/response"
	"communityHub/internal/lib/logger/sl"
	"communityHub/internal/models"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type EventsResponse struct {
	response.Response
	Data []models.Event `json:"data"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsGetter
type EventsGetter interface {
	ListEvents(ctx context.Context, filter models.EventFilter) ([]models.Event, error)
}

// New godoc
// @Summary      List events
// @Tags         events
// @Produce      json
// @Param        status  query  string  false  "Status filter"  Enums(ACTIVE, CANCELLED, COMPLETED, DRAFT)
// @Param        limit   query  int     false  "Page size, at most 100"
// @Param        offset  query  int     false  "Offset"
// @Success      200  {object}  EventsResponse
// @Failure      400  {object}  response.Response
// @Router       /events [get]
func New(log *slog.Logger, eventsGetter EventsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getAllEvents.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		q := r.URL.Query()

		filter := models.EventFilter{Status: models.EventStatus(q.Get("status"))}

		switch filter.Status {
		case "", models.EventActive, models.EventCancelled, models.EventCompleted, models.EventDraft:
		default:
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("status must be one of [ACTIVE CANCELLED COMPLETED DRAFT]"))
			return
		}

		var err error

		if filter.Limit, err = intParam(q.Get("limit")); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("limit must be a non-negative integer"))
			return
		}
		if filter.Offset, err = intParam(q.Get("offset")); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("offset must be a non-negative integer"))
			return
		}

		events, err := eventsGetter.ListEvents(r.Context(), filter)
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get events"))
			return
		}

		if events == nil {
			events = []models.Event{}
		}

		log.Info("events retrieved successfully", slog.Int("count", len(events)))

		render.JSON(w, r, EventsResponse{
			Response: response.OK(""),
			Data:     events,
		})
	}
}

func intParam(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, strconv.ErrRange
	}
	return n, nil
}
