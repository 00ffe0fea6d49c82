package getAllListings

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

type Response struct {
	response.Response
	Data []models.MarketListing `json:"data"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ListingsGetter
type ListingsGetter interface {
	ListListings(ctx context.Context, filter models.ListingFilter) ([]models.MarketListing, error)
}

// New godoc
// @Summary      List listings
// @Description  Newest first.
// @Tags         marketplace
// @Produce      json
// @Param        status    query  string  false  "Status filter"  Enums(ACTIVE, RESERVED, SOLD, CLOSED)
// @Param        category  query  string  false  "Category"
// @Param        seller    query  string  false  "Seller ID"
// @Param        limit     query  int     false  "Page size, at most 100"
// @Param        offset    query  int     false  "Offset"
// @Success      200  {object}  Response
// @Failure      400  {object}  response.Response
// @Router       /marketplace [get]
func New(log *slog.Logger, getter ListingsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.marketplace.getAllListings.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		q := r.URL.Query()

		filter := models.ListingFilter{
			Status:   models.ListingStatus(q.Get("status")),
			Category: q.Get("category"),
			SellerID: q.Get("seller"),
		}

		switch filter.Status {
		case "", models.ListingActive, models.ListingReserved, models.ListingSold, models.ListingClosed:
		default:
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("status must be one of [ACTIVE RESERVED SOLD CLOSED]"))
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

		listings, err := getter.ListListings(r.Context(), filter)
		if err != nil {
			log.Error("failed to get listings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get listings"))
			return
		}

		if listings == nil {
			listings = []models.MarketListing{}
		}

		log.Info("listings retrieved", slog.Int("count", len(listings)))

		render.JSON(w, r, Response{
			Response: response.OK(""),
			Data:     listings,
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
