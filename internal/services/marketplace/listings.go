package marketplace

import (
	"context"
	"fmt"
	"strings"

	"communityHub/internal/activity"
	"communityHub/internal/models"
	"communityHub/internal/storage"

	"github.com/google/uuid"
)

func (s *Service) CreateListing(ctx context.Context, seller models.User, in models.ListingInput) (*models.MarketListing, error) {
	const op = "services.marketplace.CreateListing"

	now := s.now()
	listing := &models.MarketListing{
		ID:          uuid.NewString(),
		SellerID:    seller.ID,
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Category:    strings.TrimSpace(in.Category),
		IsFree:      in.IsFree,
		Price:       in.Price,
		Status:      models.ListingActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := validateListing(listing); err != nil {
		return nil, err
	}

	if err := s.store.CreateListing(ctx, listing); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.emit(ctx, activity.ListingCreated, listing.ID, seller.ID)

	return listing, nil
}

// GetListing returns the listing and records a view by viewerID.
func (s *Service) GetListing(ctx context.Context, id, viewerID string) (*models.MarketListing, error) {
	const op = "services.marketplace.GetListing"

	listing, err := s.store.GetListing(ctx, id)
	if err != nil {
		return nil, wrap(op, notFound(err))
	}

	s.emit(ctx, activity.ListingViewed, id, viewerID)

	return listing, nil
}

func (s *Service) ListListings(ctx context.Context, filter models.ListingFilter) ([]models.MarketListing, error) {
	const op = "services.marketplace.ListListings"

	listings, err := s.store.ListListings(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return listings, nil
}

// UpdateListing edits an ACTIVE or RESERVED listing on behalf of its seller
// or an administrator.
func (s *Service) UpdateListing(ctx context.Context, actor models.User, id string, patch models.ListingPatch) (*models.MarketListing, error) {
	const op = "services.marketplace.UpdateListing"

	var listing *models.MarketListing

	err := s.store.WithinTx(ctx, func(tx storage.Tx) error {
		var err error

		listing, err = lockListing(ctx, tx, id)
		if err != nil {
			return err
		}

		if !actor.CanManage(listing.SellerID) {
			return models.ErrNotListingOwner
		}
		if listing.Status == models.ListingSold || listing.Status == models.ListingClosed {
			return models.ErrListingNotEditable
		}

		applyListingPatch(listing, patch)
		listing.UpdatedAt = s.now()

		if err = validateListing(listing); err != nil {
			return err
		}

		return tx.UpdateListing(ctx, listing)
	})
	if err != nil {
		return nil, wrap(op, err)
	}

	s.emit(ctx, activity.ListingUpdated, id, actor.ID)

	return listing, nil
}

// CloseListing is the soft delete of a listing: its status becomes CLOSED.
func (s *Service) CloseListing(ctx context.Context, actor models.User, id string) (*models.MarketListing, error) {
	const op = "services.marketplace.CloseListing"

	var listing *models.MarketListing

	err := s.store.WithinTx(ctx, func(tx storage.Tx) error {
		var err error

		listing, err = lockListing(ctx, tx, id)
		if err != nil {
			return err
		}

		if !actor.CanManage(listing.SellerID) {
			return models.ErrNotListingOwner
		}
		if listing.Status == models.ListingClosed {
			return nil
		}

		listing.Status = models.ListingClosed
		listing.UpdatedAt = s.now()

		return tx.SetListingStatus(ctx, id, models.ListingClosed)
	})
	if err != nil {
		return nil, wrap(op, err)
	}

	s.emit(ctx, activity.ListingClosed, id, actor.ID)

	return listing, nil
}

func (s *Service) Stats(ctx context.Context, listingID string) (*models.ListingStats, error) {
	const op = "services.marketplace.Stats"

	if _, err := s.store.GetListing(ctx, listingID); err != nil {
		return nil, wrap(op, notFound(err))
	}

	reqs, err := s.store.ListRequests(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	stats := &models.ListingStats{ListingID: listingID, Requests: len(reqs), Activity: map[string]int64{}}

	if s.stats != nil {
		counters, err := s.stats.Stats(ctx, activity.SubjectListing, listingID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		stats.Activity = counters
	}

	return stats, nil
}

func applyListingPatch(listing *models.MarketListing, patch models.ListingPatch) {
	if patch.Title != nil {
		listing.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		listing.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Category != nil {
		listing.Category = strings.TrimSpace(*patch.Category)
	}
	if patch.IsFree != nil {
		listing.IsFree = *patch.IsFree
		if listing.IsFree && patch.Price == nil {
			listing.Price = nil
		}
	}
	if patch.Price != nil {
		listing.Price = patch.Price
	}
}

func validateListing(listing *models.MarketListing) error {
	if listing.Title == "" {
		return models.NewError(models.ErrValidation, "title is required")
	}
	return models.ValidatePrice(listing.IsFree, listing.Price)
}
