package cancelRequest

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RequestCanceller
type RequestCanceller interface {
	CancelRequest(ctx context.Context, requestID, buyerID string) error
}

// New godoc
// @Summary      Withdraw a request
// @Description  Buyer only, while the request is still PENDING.
// @Tags         marketplace
// @Produce      json
// @Security     BearerAuth
// @Param        requestId  path  string  true  "Request ID"
// @Success      200  {object}  response.Response
// @Failure      400,401,403,404  {object}  response.Response
// @Router       /marketplace/request/{requestId}/cancel [delete]
func New(log *slog.Logger, canceller RequestCanceller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.marketplace.cancelRequest.New"

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

		requestID := chi.URLParam(r, "requestId")

		log = log.With(slog.String("market_request_id", requestID))

		if err := canceller.CancelRequest(r.Context(), requestID, user.ID); err != nil {
			log.Error("failed to cancel request", sl.Err(err))
			render.Status(r, response.StatusCode(err))
			render.JSON(w, r, response.Error(response.ErrorMessage(err, "failed to cancel request")))
			return
		}

		log.Info("request cancelled")

		render.JSON(w, r, response.OK("request cancelled"))
	}
}
