package memory

import (
	"context"

	"communityHub/internal/models"
)

func (s *Store) CreateEvent(ctx context.Context, event *models.Event) error {
	return s.view(func(tx *txn) error { return tx.CreateEvent(ctx, event) })
}

func (s *Store) GetEvent(ctx context.Context, id string) (e *models.Event, err error) {
	err = s.view(func(tx *txn) error { e, err = tx.GetEvent(ctx, id); return err })
	return e, err
}

func (s *Store) GetEventForUpdate(ctx context.Context, id string) (*models.Event, error) {
	return s.GetEvent(ctx, id)
}

func (s *Store) ListEvents(ctx context.Context, filter models.EventFilter) (events []models.Event, err error) {
	err = s.view(func(tx *txn) error { events, err = tx.ListEvents(ctx, filter); return err })
	return events, err
}

func (s *Store) UpdateEvent(ctx context.Context, event *models.Event) error {
	return s.view(func(tx *txn) error { return tx.UpdateEvent(ctx, event) })
}

func (s *Store) CreateRegistration(ctx context.Context, reg *models.Registration) error {
	return s.view(func(tx *txn) error { return tx.CreateRegistration(ctx, reg) })
}

func (s *Store) GetRegistration(ctx context.Context, eventID, userID string) (r *models.Registration, err error) {
	err = s.view(func(tx *txn) error { r, err = tx.GetRegistration(ctx, eventID, userID); return err })
	return r, err
}

func (s *Store) CountRegistrations(ctx context.Context, eventID string, status models.RegistrationStatus) (n int, err error) {
	err = s.view(func(tx *txn) error { n, err = tx.CountRegistrations(ctx, eventID, status); return err })
	return n, err
}

func (s *Store) OldestWaitlisted(ctx context.Context, eventID string) (r *models.Registration, err error) {
	err = s.view(func(tx *txn) error { r, err = tx.OldestWaitlisted(ctx, eventID); return err })
	return r, err
}

func (s *Store) SetRegistrationStatus(ctx context.Context, id string, status models.RegistrationStatus) error {
	return s.view(func(tx *txn) error { return tx.SetRegistrationStatus(ctx, id, status) })
}

func (s *Store) DeleteRegistration(ctx context.Context, id string) error {
	return s.view(func(tx *txn) error { return tx.DeleteRegistration(ctx, id) })
}

func (s *Store) ListRegistrations(ctx context.Context, eventID string) (regs []models.Registration, err error) {
	err = s.view(func(tx *txn) error { regs, err = tx.ListRegistrations(ctx, eventID); return err })
	return regs, err
}

func (s *Store) CreateListing(ctx context.Context, listing *models.MarketListing) error {
	return s.view(func(tx *txn) error { return tx.CreateListing(ctx, listing) })
}

func (s *Store) GetListing(ctx context.Context, id string) (l *models.MarketListing, err error) {
	err = s.view(func(tx *txn) error { l, err = tx.GetListing(ctx, id); return err })
	return l, err
}

func (s *Store) GetListingForUpdate(ctx context.Context, id string) (*models.MarketListing, error) {
	return s.GetListing(ctx, id)
}

func (s *Store) ListListings(ctx context.Context, filter models.ListingFilter) (listings []models.MarketListing, err error) {
	err = s.view(func(tx *txn) error { listings, err = tx.ListListings(ctx, filter); return err })
	return listings, err
}

func (s *Store) UpdateListing(ctx context.Context, listing *models.MarketListing) error {
	return s.view(func(tx *txn) error { return tx.UpdateListing(ctx, listing) })
}

func (s *Store) SetListingStatus(ctx context.Context, id string, status models.ListingStatus) error {
	return s.view(func(tx *txn) error { return tx.SetListingStatus(ctx, id, status) })
}

func (s *Store) CreateRequest(ctx context.Context, req *models.MarketRequest) error {
	return s.view(func(tx *txn) error { return tx.CreateRequest(ctx, req) })
}

func (s *Store) GetRequest(ctx context.Context, id string) (r *models.MarketRequest, err error) {
	err = s.view(func(tx *txn) error { r, err = tx.GetRequest(ctx, id); return err })
	return r, err
}

func (s *Store) GetRequestByBuyer(ctx context.Context, listingID, buyerID string) (r *models.MarketRequest, err error) {
	err = s.view(func(tx *txn) error { r, err = tx.GetRequestByBuyer(ctx, listingID, buyerID); return err })
	return r, err
}

func (s *Store) ListRequests(ctx context.Context, listingID string) (reqs []models.MarketRequest, err error) {
	err = s.view(func(tx *txn) error { reqs, err = tx.ListRequests(ctx, listingID); return err })
	return reqs, err
}

func (s *Store) SetRequestStatus(ctx context.Context, id string, status models.RequestStatus) error {
	return s.view(func(tx *txn) error { return tx.SetRequestStatus(ctx, id, status) })
}

func (s *Store) DeleteRequest(ctx context.Context, id string) error {
	return s.view(func(tx *txn) error { return tx.DeleteRequest(ctx, id) })
}
