package memory

import (
	"context"
	"time"

	"communityHub/internal/models"
	"communityHub/internal/storage"
)

type txn struct {
	d *dataset
}

func (t *txn) CreateEvent(_ context.Context, event *models.Event) error {
	t.d.events[event.ID] = *event
	t.d.insert(event.ID)
	return nil
}

func (t *txn) GetEvent(_ context.Context, id string) (*models.Event, error) {
	e, ok := t.d.events[id]
	if !ok {
		return nil, storage.ErrEventNotFound
	}
	return &e, nil
}

func (t *txn) GetEventForUpdate(ctx context.Context, id string) (*models.Event, error) {
	return t.GetEvent(ctx, id)
}

func (t *txn) ListEvents(_ context.Context, filter models.EventFilter) ([]models.Event, error) {
	var events []models.Event
	for _, e := range t.d.events {
		if filter.Status != "" && e.Status != filter.Status {
			continue
		}
		events = append(events, e)
	}

	sortByOrder(t.d, events, func(e models.Event) string { return e.ID }, func(a, b models.Event) (bool, bool) {
		if a.StartsAt.Equal(b.StartsAt) {
			return false, false
		}
		return a.StartsAt.Before(b.StartsAt), true
	})

	return window(events, filter.Limit, filter.Offset), nil
}

func (t *txn) UpdateEvent(_ context.Context, event *models.Event) error {
	if _, ok := t.d.events[event.ID]; !ok {
		return storage.ErrEventNotFound
	}
	t.d.events[event.ID] = *event
	return nil
}

func (t *txn) CreateRegistration(_ context.Context, reg *models.Registration) error {
	for _, r := range t.d.registrations {
		if r.EventID == reg.EventID && r.UserID == reg.UserID {
			return storage.ErrRegistrationExists
		}
	}
	t.d.registrations[reg.ID] = *reg
	t.d.insert(reg.ID)
	return nil
}

func (t *txn) GetRegistration(_ context.Context, eventID, userID string) (*models.Registration, error) {
	for _, r := range t.d.registrations {
		if r.EventID == eventID && r.UserID == userID {
			return &r, nil
		}
	}
	return nil, storage.ErrRegistrationNotFound
}

func (t *txn) CountRegistrations(_ context.Context, eventID string, status models.RegistrationStatus) (int, error) {
	n := 0
	for _, r := range t.d.registrations {
		if r.EventID == eventID && r.Status == status {
			n++
		}
	}
	return n, nil
}

func (t *txn) OldestWaitlisted(ctx context.Context, eventID string) (*models.Registration, error) {
	regs, err := t.ListRegistrations(ctx, eventID)
	if err != nil {
		return nil, err
	}
	for _, r := range regs {
		if r.Status == models.RegistrationWaitlist {
			return &r, nil
		}
	}
	return nil, storage.ErrRegistrationNotFound
}

func (t *txn) SetRegistrationStatus(_ context.Context, id string, status models.RegistrationStatus) error {
	r, ok := t.d.registrations[id]
	if !ok {
		return storage.ErrRegistrationNotFound
	}
	r.Status = status
	t.d.registrations[id] = r
	return nil
}

func (t *txn) DeleteRegistration(_ context.Context, id string) error {
	if _, ok := t.d.registrations[id]; !ok {
		return storage.ErrRegistrationNotFound
	}
	delete(t.d.registrations, id)
	delete(t.d.order, id)
	return nil
}

func (t *txn) ListRegistrations(_ context.Context, eventID string) ([]models.Registration, error) {
	var regs []models.Registration
	for _, r := range t.d.registrations {
		if r.EventID == eventID {
			regs = append(regs, r)
		}
	}

	sortByOrder(t.d, regs, func(r models.Registration) string { return r.ID }, func(a, b models.Registration) (bool, bool) {
		if a.RegisteredAt.Equal(b.RegisteredAt) {
			return false, false
		}
		return a.RegisteredAt.Before(b.RegisteredAt), true
	})

	return regs, nil
}

func (t *txn) CreateListing(_ context.Context, listing *models.MarketListing) error {
	t.d.listings[listing.ID] = *listing
	t.d.insert(listing.ID)
	return nil
}

func (t *txn) GetListing(_ context.Context, id string) (*models.MarketListing, error) {
	l, ok := t.d.listings[id]
	if !ok {
		return nil, storage.ErrListingNotFound
	}
	return &l, nil
}

func (t *txn) GetListingForUpdate(ctx context.Context, id string) (*models.MarketListing, error) {
	return t.GetListing(ctx, id)
}

func (t *txn) ListListings(_ context.Context, filter models.ListingFilter) ([]models.MarketListing, error) {
	var listings []models.MarketListing
	for _, l := range t.d.listings {
		if filter.Status != "" && l.Status != filter.Status {
			continue
		}
		if filter.Category != "" && l.Category != filter.Category {
			continue
		}
		if filter.SellerID != "" && l.SellerID != filter.SellerID {
			continue
		}
		listings = append(listings, l)
	}

	// Newest first.
	sortByOrder(t.d, listings, func(l models.MarketListing) string { return l.ID }, func(a, b models.MarketListing) (bool, bool) {
		if a.CreatedAt.Equal(b.CreatedAt) {
			return t.d.order[a.ID] > t.d.order[b.ID], true
		}
		return a.CreatedAt.After(b.CreatedAt), true
	})

	return window(listings, filter.Limit, filter.Offset), nil
}

func (t *txn) UpdateListing(_ context.Context, listing *models.MarketListing) error {
	if _, ok := t.d.listings[listing.ID]; !ok {
		return storage.ErrListingNotFound
	}
	t.d.listings[listing.ID] = *listing
	return nil
}

func (t *txn) SetListingStatus(_ context.Context, id string, status models.ListingStatus) error {
	l, ok := t.d.listings[id]
	if !ok {
		return storage.ErrListingNotFound
	}
	l.Status = status
	l.UpdatedAt = time.Now().UTC()
	t.d.listings[id] = l
	return nil
}

func (t *txn) CreateRequest(_ context.Context, req *models.MarketRequest) error {
	for _, r := range t.d.requests {
		if r.ListingID == req.ListingID && r.BuyerID == req.BuyerID {
			return storage.ErrRequestExists
		}
	}
	t.d.requests[req.ID] = *req
	t.d.insert(req.ID)
	return nil
}

func (t *txn) GetRequest(_ context.Context, id string) (*models.MarketRequest, error) {
	r, ok := t.d.requests[id]
	if !ok {
		return nil, storage.ErrRequestNotFound
	}
	return &r, nil
}

func (t *txn) GetRequestByBuyer(_ context.Context, listingID, buyerID string) (*models.MarketRequest, error) {
	for _, r := range t.d.requests {
		if r.ListingID == listingID && r.BuyerID == buyerID {
			return &r, nil
		}
	}
	return nil, storage.ErrRequestNotFound
}

func (t *txn) ListRequests(_ context.Context, listingID string) ([]models.MarketRequest, error) {
	var reqs []models.MarketRequest
	for _, r := range t.d.requests {
		if r.ListingID == listingID {
			reqs = append(reqs, r)
		}
	}

	sortByOrder(t.d, reqs, func(r models.MarketRequest) string { return r.ID }, func(a, b models.MarketRequest) (bool, bool) {
		if a.CreatedAt.Equal(b.CreatedAt) {
			return false, false
		}
		return a.CreatedAt.Before(b.CreatedAt), true
	})

	return reqs, nil
}

func (t *txn) SetRequestStatus(_ context.Context, id string, status models.RequestStatus) error {
	r, ok := t.d.requests[id]
	if !ok {
		return storage.ErrRequestNotFound
	}
	r.Status = status
	r.UpdatedAt = time.Now().UTC()
	t.d.requests[id] = r
	return nil
}

func (t *txn) DeleteRequest(_ context.Context, id string) error {
	if _, ok := t.d.requests[id]; !ok {
		return storage.ErrRequestNotFound
	}
	delete(t.d.requests, id)
	delete(t.d.order, id)
	return nil
}
