// Package storage defines the data store contract shared by the registration
// and marketplace managers.
package storage

import (
	"context"
	"errors"

	"communityHub/internal/models"
)

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrRegistrationExists   = errors.New("registration exists")
	ErrListingNotFound      = errors.New("listing not found")
	ErrRequestNotFound      = errors.New("request not found")
	ErrRequestExists        = errors.New("request exists")
)

type Events interface {
	CreateEvent(ctx context.Context, event *models.Event) error
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	// GetEventForUpdate reads the event and holds it until the enclosing
	// transaction ends.
	GetEventForUpdate(ctx context.Context, id string) (*models.Event, error)
	ListEvents(ctx context.Context, filter models.EventFilter) ([]models.Event, error)
	UpdateEvent(ctx context.Context, event *models.Event) error
}

type Registrations interface {
	CreateRegistration(ctx context.Context, reg *models.Registration) error
	GetRegistration(ctx context.Context, eventID, userID string) (*models.Registration, error)
	CountRegistrations(ctx context.Context, eventID string, status models.RegistrationStatus) (int, error)
	// OldestWaitlisted returns the WAITLIST registration with the earliest
	// registeredAt, or ErrRegistrationNotFound.
	OldestWaitlisted(ctx context.Context, eventID string) (*models.Registration, error)
	SetRegistrationStatus(ctx context.Context, id string, status models.RegistrationStatus) error
	DeleteRegistration(ctx context.Context, id string) error
	ListRegistrations(ctx context.Context, eventID string) ([]models.Registration, error)
}

type Listings interface {
	CreateListing(ctx context.Context, listing *models.MarketListing) error
	GetListing(ctx context.Context, id string) (*models.MarketListing, error)
	GetListingForUpdate(ctx context.Context, id string) (*models.MarketListing, error)
	ListListings(ctx context.Context, filter models.ListingFilter) ([]models.MarketListing, error)
	UpdateListing(ctx context.Context, listing *models.MarketListing) error
	SetListingStatus(ctx context.Context, id string, status models.ListingStatus) error
}

type Requests interface {
	CreateRequest(ctx context.Context, req *models.MarketRequest) error
	GetRequest(ctx context.Context, id string) (*models.MarketRequest, error)
	GetRequestByBuyer(ctx context.Context, listingID, buyerID string) (*models.MarketRequest, error)
	ListRequests(ctx context.Context, listingID string) ([]models.MarketRequest, error)
	SetRequestStatus(ctx context.Context, id string, status models.RequestStatus) error
	DeleteRequest(ctx context.Context, id string) error
}

// Tx is the set of operations available both on the store and inside a transaction.
type Tx interface {
	Events
	Registrations
	Listings
	Requests
}

type Store interface {
	Tx
	// WithinTx runs fn in a transaction. The transaction commits when fn
	// returns nil and rolls back otherwise.
	WithinTx(ctx context.Context, fn func(tx Tx) error) error
}

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Page normalises a limit/offset pair.
func Page(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
