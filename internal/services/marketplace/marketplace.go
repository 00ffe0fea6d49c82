// Package marketplace manages listings and the buyer request lifecycle.
package marketplace

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"communityHub/internal/activity"
	"communityHub/internal/models"
	"communityHub/internal/storage"

	"github.com/google/uuid"
)

type StatsReader interface {
	Stats(ctx context.Context, subject, id string) (map[string]int64, error)
}

type Service struct {
	log       *slog.Logger
	store     storage.Store
	publisher activity.Publisher
	stats     StatsReader
	now       func() time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func New(log *slog.Logger, store storage.Store, publisher activity.Publisher, stats StatsReader, opts ...Option) *Service {
	s := &Service{
		log:       log,
		store:     store,
		publisher: publisher,
		stats:     stats,
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) emit(ctx context.Context, kind activity.Kind, listingID, actorID string) {
	activity.Emit(ctx, s.log, s.publisher, activity.Activity{
		Kind:      kind,
		Subject:   activity.SubjectListing,
		SubjectID: listingID,
		ActorID:   actorID,
		At:        s.now(),
	})
}

// CreateRequest records a PENDING purchase request from buyerID.
func (s *Service) CreateRequest(ctx context.Context, listingID, buyerID string, message *string) (*models.MarketRequest, error) {
	const op = "services.marketplace.CreateRequest"

	var req *models.MarketRequest

	err := s.store.WithinTx(ctx, func(tx storage.Tx) error {
		listing, err := lockListing(ctx, tx, listingID)
		if err != nil {
			return err
		}

		if listing.SellerID == buyerID {
			return models.ErrOwnListing
		}
		if listing.Status != models.ListingActive {
			return models.ErrListingNotActive
		}

		_, err = tx.GetRequestByBuyer(ctx, listingID, buyerID)
		switch {
		case err == nil:
			return models.ErrAlreadyRequested
		case !errors.Is(err, storage.ErrRequestNotFound):
			return err
		}

		now := s.now()
		req = &models.MarketRequest{
			ID:        uuid.NewString(),
			ListingID: listingID,
			BuyerID:   buyerID,
			Status:    models.RequestPending,
			Message:   trimmed(message),
			CreatedAt: now,
			UpdatedAt: now,
		}

		err = tx.CreateRequest(ctx, req)
		if errors.Is(err, storage.ErrRequestExists) {
			return models.ErrAlreadyRequested
		}
		return err
	})
	if err != nil {
		return nil, wrap(op, err)
	}

	s.emit(ctx, activity.RequestCreated, listingID, buyerID)

	return req, nil
}

// UpdateRequestStatus lets the seller accept, reject or complete a request.
// ACCEPTED reserves the listing and COMPLETED marks it sold, in the same
// transaction as the request update. COMPLETED is accepted straight from
// PENDING; REJECTED and COMPLETED requests are final.
func (s *Service) UpdateRequestStatus(ctx context.Context, listingID, requestID string, status models.RequestStatus, actingUserID string) (*models.MarketRequest, error) {
	const op = "services.marketplace.UpdateRequestStatus"

	if !status.SellerSettable() {
		return nil, models.ErrInvalidRequestState
	}

	var req *models.MarketRequest

	err := s.store.WithinTx(ctx, func(tx storage.Tx) error {
		listing, err := lockListing(ctx, tx, listingID)
		if err != nil {
			return err
		}

		req, err = tx.GetRequest(ctx, requestID)
		if err != nil {
			if errors.Is(err, storage.ErrRequestNotFound) {
				return models.ErrRequestNotFound
			}
			return err
		}
		if req.ListingID != listingID {
			return models.ErrRequestNotFound
		}

		if listing.SellerID != actingUserID {
			return models.ErrNotListingSeller
		}

		if req.Status.Final() {
			return models.ErrRequestFinal
		}
		if !req.Status.CanMoveTo(status) {
			return models.ErrRequestTransition
		}

		listingStatus, hasEffect := status.ListingEffect()
		if hasEffect && listing.Status.Final() {
			return models.ErrListingFinal
		}

		if err = tx.SetRequestStatus(ctx, requestID, status); err != nil {
			return err
		}

		if hasEffect {
			if err = tx.SetListingStatus(ctx, listingID, listingStatus); err != nil {
				return err
			}
		}

		req.Status = status
		req.UpdatedAt = s.now()
		return nil
	})
	if err != nil {
		return nil, wrap(op, err)
	}

	s.emit(ctx, requestKind(status), listingID, actingUserID)

	return req, nil
}

// CancelRequest deletes a PENDING request on behalf of its buyer.
func (s *Service) CancelRequest(ctx context.Context, requestID, buyerID string) error {
	const op = "services.marketplace.CancelRequest"

	var listingID string

	err := s.store.WithinTx(ctx, func(tx storage.Tx) error {
		req, err := tx.GetRequest(ctx, requestID)
		if err != nil {
			if errors.Is(err, storage.ErrRequestNotFound) {
				return models.ErrRequestNotFound
			}
			return err
		}

		if req.BuyerID != buyerID {
			return models.ErrNotRequestBuyer
		}
		if req.Status != models.RequestPending {
			return models.ErrRequestProcessed
		}

		listingID = req.ListingID
		return tx.DeleteRequest(ctx, requestID)
	})
	if err != nil {
		return wrap(op, err)
	}

	s.emit(ctx, activity.RequestCancelled, listingID, buyerID)

	return nil
}

// ListRequests returns the requests for a listing to its seller or an administrator.
func (s *Service) ListRequests(ctx context.Context, actor models.User, listingID string) ([]models.MarketRequest, error) {
	const op = "services.marketplace.ListRequests"

	listing, err := s.store.GetListing(ctx, listingID)
	if err != nil {
		return nil, wrap(op, notFound(err))
	}

	if !actor.CanManage(listing.SellerID) {
		return nil, models.ErrNotListingOwner
	}

	reqs, err := s.store.ListRequests(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return reqs, nil
}

func requestKind(status models.RequestStatus) activity.Kind {
	switch status {
	case models.RequestAccepted:
		return activity.RequestAccepted
	case models.RequestRejected:
		return activity.RequestRejected
	default:
		return activity.RequestCompleted
	}
}

func lockListing(ctx context.Context, tx storage.Tx, id string) (*models.MarketListing, error) {
	listing, err := tx.GetListingForUpdate(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return listing, nil
}

func notFound(err error) error {
	if errors.Is(err, storage.ErrListingNotFound) {
		return models.ErrListingNotFound
	}
	return err
}

func wrap(op string, err error) error {
	var domainErr *models.Error
	if errors.As(err, &domainErr) {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
