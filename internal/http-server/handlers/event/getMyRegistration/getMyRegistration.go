package getMyRegistration

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
	Data *models.Registration `json:"data,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RegistrationGetter
type RegistrationGetter interface {
	GetRegistration(ctx context.Context, eventID, userID string) (*models.Registration, error)
}

// New godoc
// @Summary      Get own registration
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Event ID"
// @Success      200  {object}  Response
// @Failure      401,404  {object}  response.Response
// @Router       /events/{id}/registration [get]
func New(log *slog.Logger, getter RegistrationGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getMyRegistration.New"

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

		reg, err := getter.GetRegistration(r.Context(), eventID, user.ID)
		if err != nil {
			log.Error("failed to get registration", sl.Err(err))
			render.Status(r, response.StatusCode(err))
			render.JSON(w, r, response.Error(response.ErrorMessage(err, "failed to get registration")))
			return
		}

		render.JSON(w, r, Response{
			Response: response.OK(""),
			Data:     reg,
		})
	}
}
