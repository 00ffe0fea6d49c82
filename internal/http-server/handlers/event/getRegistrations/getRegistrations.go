package getRegistrations

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
	Data []models.Registration `json:"data"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RegistrationsLister
type RegistrationsLister interface {
	ListRegistrations(ctx context.Context, actor models.User, eventID string) ([]models.Registration, error)
}

// New godoc
// @Summary      List event registrations
// @Description  Registrations ordered by registration time. Event creator or administrator only.
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Event ID"
// @Success      200  {object}  Response
// @Failure      401,403,404  {object}  response.Response
// @Router       /events/{id}/registrations [get]
func New(log *slog.Logger, lister RegistrationsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getRegistrations.New"

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

		regs, err := lister.ListRegistrations(r.Context(), user, eventID)
		if err != nil {
			log.Error("failed to list registrations", sl.Err(err))
			render.Status(r, response.StatusCode(err))
			render.JSON(w, r, response.Error(response.ErrorMessage(err, "failed to get registrations")))
			return
		}

		if regs == nil {
			regs = []models.Registration{}
		}

		log.Info("registrations retrieved", slog.String("event_id", eventID), slog.Int("count", len(regs)))

		render.JSON(w, r, Response{
			Response: response.OK(""),
			Data:     regs,
		})
	}
}
