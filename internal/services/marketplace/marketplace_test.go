package marketplace

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"communityHub/internal/activity"
	"communityHub/internal/lib/logger/handlers/slogdiscard"
	"communityHub/internal/models"
	"communityHub/internal/storage"
	"communityHub/internal/storage/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu   sync.Mutex
	seen []activity.Activity
}

func (r *recorder) Publish(_ context.Context, a activity.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, a)
	return nil
}

func (r *recorder) kinds() []activity.Kind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]activity.Kind, 0, len(r.seen))
	for _, a := range r.seen {
		out = append(out, a.Kind)
	}
	return out
}

var seller = models.User{ID: "S"}

func newService(t *testing.T) (*Service, *memory.Store, *recorder) {
	t.Helper()
	store := memory.New()
	rec := &recorder{}
	clock := func() time.Time { return time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC) }
	return New(slogdiscard.NewDiscardLogger(), store, rec, nil, WithClock(clock)), store, rec
}

func createListing(t *testing.T, s *Service) *models.MarketListing {
	t.Helper()
	listing, err := s.CreateListing(context.Background(), seller, models.ListingInput{
		Title:    "Bike",
		Category: "sports",
		Price:    floatPtr(120),
	})
	require.NoError(t, err)
	return listing
}

func floatPtr(v float64) *float64 { return &v }

func strPtr(v string) *string { return &v }

func listingStatus(t *testing.T, store storage.Store, id string) models.ListingStatus {
	t.Helper()
	listing, err := store.GetListing(context.Background(), id)
	require.NoError(t, err)
	return listing.Status
}

func requestStatus(t *testing.T, store storage.Store, id string) models.RequestStatus {
	t.Helper()
	req, err := store.GetRequest(context.Background(), id)
	require.NoError(t, err)
	return req.Status
}

// settledRequest creates a request from buyer and moves it to status.
func settledRequest(t *testing.T, s *Service, listingID, buyer string, status models.RequestStatus) *models.MarketRequest {
	t.Helper()
	ctx := context.Background()
	req, err := s.CreateRequest(ctx, listingID, buyer, nil)
	require.NoError(t, err)
	req, err = s.UpdateRequestStatus(ctx, listingID, req.ID, status, seller.ID)
	require.NoError(t, err)
	return req
}

func TestRequestLifecycle(t *testing.T) {
	ctx := context.Background()
	s, store, rec := newService(t)
	listing := createListing(t, s)

	req, err := s.CreateRequest(ctx, listing.ID, "B", strPtr("  still available?  "))
	require.NoError(t, err)
	assert.Equal(t, models.RequestPending, req.Status)
	require.NotNil(t, req.Message)
	assert.Equal(t, "still available?", *req.Message)

	req, err = s.UpdateRequestStatus(ctx, listing.ID, req.ID, models.RequestAccepted, "S")
	require.NoError(t, err)
	assert.Equal(t, models.RequestAccepted, req.Status)
	assert.Equal(t, models.ListingReserved, listingStatus(t, store, listing.ID))

	req, err = s.UpdateRequestStatus(ctx, listing.ID, req.ID, models.RequestCompleted, "S")
	require.NoError(t, err)
	assert.Equal(t, models.RequestCompleted, req.Status)
	assert.Equal(t, models.ListingSold, listingStatus(t, store, listing.ID))

	assert.Equal(t, []activity.Kind{
		activity.ListingCreated,
		activity.RequestCreated,
		activity.RequestAccepted,
		activity.RequestCompleted,
	}, rec.kinds())
}

func TestRejectLeavesListingActive(t *testing.T) {
	ctx := context.Background()
	s, store, _ := newService(t)
	listing := createListing(t, s)

	req, err := s.CreateRequest(ctx, listing.ID, "B", nil)
	require.NoError(t, err)

	req, err = s.UpdateRequestStatus(ctx, listing.ID, req.ID, models.RequestRejected, "S")
	require.NoError(t, err)
	assert.Equal(t, models.RequestRejected, req.Status)
	assert.Equal(t, models.ListingActive, listingStatus(t, store, listing.ID))
}

func TestCompleteWithoutAccept(t *testing.T) {
	ctx := context.Background()
	s, store, _ := newService(t)
	listing := createListing(t, s)

	req, err := s.CreateRequest(ctx, listing.ID, "B", nil)
	require.NoError(t, err)

	_, err = s.UpdateRequestStatus(ctx, listing.ID, req.ID, models.RequestCompleted, "S")
	require.NoError(t, err)
	assert.Equal(t, models.ListingSold, listingStatus(t, store, listing.ID))
}

func TestCreateRequestErrors(t *testing.T) {
	ctx := context.Background()
	s, store, _ := newService(t)
	listing := createListing(t, s)

	reserved := createListing(t, s)
	require.NoError(t, store.SetListingStatus(ctx, reserved.ID, models.ListingReserved))

	_, err := s.CreateRequest(ctx, listing.ID, "B", nil)
	require.NoError(t, err)

	cases := []struct {
		name      string
		listingID string
		buyerID   string
		wantErr   error
		wantKind  error
	}{
		{name: "missing listing", listingID: "nope", buyerID: "B", wantErr: models.ErrListingNotFound, wantKind: models.ErrNotFound},
		{name: "own listing", listingID: listing.ID, buyerID: "S", wantErr: models.ErrOwnListing, wantKind: models.ErrInvalidState},
		{name: "not active", listingID: reserved.ID, buyerID: "B", wantErr: models.ErrListingNotActive, wantKind: models.ErrInvalidState},
		{name: "duplicate", listingID: listing.ID, buyerID: "B", wantErr: models.ErrAlreadyRequested, wantKind: models.ErrConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.CreateRequest(ctx, tc.listingID, tc.buyerID, nil)
			require.ErrorIs(t, err, tc.wantErr)
			assert.ErrorIs(t, err, tc.wantKind)
		})
	}

	reqs, err := store.ListRequests(ctx, listing.ID)
	require.NoError(t, err)
	assert.Len(t, reqs, 1)
}

func TestUpdateRequestStatusErrors(t *testing.T) {
	ctx := context.Background()
	s, store, _ := newService(t)
	listing := createListing(t, s)
	other := createListing(t, s)

	req, err := s.CreateRequest(ctx, listing.ID, "B", nil)
	require.NoError(t, err)

	sold := createListing(t, s)
	completed := settledRequest(t, s, sold.ID, "B", models.RequestCompleted)

	closed := createListing(t, s)
	rejected := settledRequest(t, s, closed.ID, "B", models.RequestRejected)
	stillPending, err := s.CreateRequest(ctx, closed.ID, "C", nil)
	require.NoError(t, err)
	_, err = s.CloseListing(ctx, seller, closed.ID)
	require.NoError(t, err)

	reserved := createListing(t, s)
	accepted := settledRequest(t, s, reserved.ID, "B", models.RequestAccepted)

	cases := []struct {
		name      string
		listingID string
		requestID string
		status    models.RequestStatus
		actor     string
		wantErr   error
	}{
		{name: "pending is not settable", listingID: listing.ID, requestID: req.ID, status: models.RequestPending, actor: "S", wantErr: models.ErrInvalidRequestState},
		{name: "unknown status", listingID: listing.ID, requestID: req.ID, status: "SHIPPED", actor: "S", wantErr: models.ErrInvalidRequestState},
		{name: "missing request", listingID: listing.ID, requestID: "nope", status: models.RequestAccepted, actor: "S", wantErr: models.ErrRequestNotFound},
		{name: "request of another listing", listingID: other.ID, requestID: req.ID, status: models.RequestAccepted, actor: "S", wantErr: models.ErrRequestNotFound},
		{name: "missing listing", listingID: "nope", requestID: req.ID, status: models.RequestAccepted, actor: "S", wantErr: models.ErrListingNotFound},
		{name: "not the seller", listingID: listing.ID, requestID: req.ID, status: models.RequestAccepted, actor: "B", wantErr: models.ErrNotListingSeller},
		{name: "accept a completed request", listingID: sold.ID, requestID: completed.ID, status: models.RequestAccepted, actor: "S", wantErr: models.ErrRequestFinal},
		{name: "reject a completed request", listingID: sold.ID, requestID: completed.ID, status: models.RequestRejected, actor: "S", wantErr: models.ErrRequestFinal},
		{name: "accept a rejected request", listingID: closed.ID, requestID: rejected.ID, status: models.RequestAccepted, actor: "S", wantErr: models.ErrRequestFinal},
		{name: "complete a rejected request", listingID: closed.ID, requestID: rejected.ID, status: models.RequestCompleted, actor: "S", wantErr: models.ErrRequestFinal},
		{name: "accept twice", listingID: reserved.ID, requestID: accepted.ID, status: models.RequestAccepted, actor: "S", wantErr: models.ErrRequestTransition},
		{name: "accept on a closed listing", listingID: closed.ID, requestID: stillPending.ID, status: models.RequestAccepted, actor: "S", wantErr: models.ErrListingFinal},
		{name: "complete on a closed listing", listingID: closed.ID, requestID: stillPending.ID, status: models.RequestCompleted, actor: "S", wantErr: models.ErrListingFinal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.UpdateRequestStatus(ctx, tc.listingID, tc.requestID, tc.status, tc.actor)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}

	assert.Equal(t, models.ListingSold, listingStatus(t, store, sold.ID))
	assert.Equal(t, models.ListingClosed, listingStatus(t, store, closed.ID))
	assert.Equal(t, models.ListingReserved, listingStatus(t, store, reserved.ID))
	assert.Equal(t, models.RequestCompleted, requestStatus(t, store, completed.ID))
	assert.Equal(t, models.RequestRejected, requestStatus(t, store, rejected.ID))
	assert.Equal(t, models.RequestPending, requestStatus(t, store, stillPending.ID))
}

func TestRejectAfterAccept(t *testing.T) {
	ctx := context.Background()
	s, store, _ := newService(t)
	listing := createListing(t, s)

	req := settledRequest(t, s, listing.ID, "B", models.RequestAccepted)

	_, err := s.UpdateRequestStatus(ctx, listing.ID, req.ID, models.RequestRejected, "S")
	require.NoError(t, err)
	assert.Equal(t, models.RequestRejected, requestStatus(t, store, req.ID))
}

// failingStore breaks SetListingStatus inside transactions.
type failingStore struct {
	storage.Store
}

type failingTx struct {
	storage.Tx
}

func (f failingStore) WithinTx(ctx context.Context, fn func(tx storage.Tx) error) error {
	return f.Store.WithinTx(ctx, func(tx storage.Tx) error {
		return fn(failingTx{Tx: tx})
	})
}

func (f failingTx) SetListingStatus(context.Context, string, models.ListingStatus) error {
	return errors.New("connection lost")
}

func TestAcceptRollsBackWhenListingUpdateFails(t *testing.T) {
	ctx := context.Background()
	s, store, _ := newService(t)
	listing := createListing(t, s)

	req, err := s.CreateRequest(ctx, listing.ID, "B", nil)
	require.NoError(t, err)

	broken := New(slogdiscard.NewDiscardLogger(), failingStore{Store: store}, nil, nil)

	_, err = broken.UpdateRequestStatus(ctx, listing.ID, req.ID, models.RequestAccepted, "S")
	require.Error(t, err)

	stored, err := store.GetRequest(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RequestPending, stored.Status)
	assert.Equal(t, models.ListingActive, listingStatus(t, store, listing.ID))
}

func TestCancelRequest(t *testing.T) {
	ctx := context.Background()
	s, store, _ := newService(t)
	listing := createListing(t, s)

	pending, err := s.CreateRequest(ctx, listing.ID, "B", nil)
	require.NoError(t, err)

	require.ErrorIs(t, s.CancelRequest(ctx, "nope", "B"), models.ErrRequestNotFound)
	require.ErrorIs(t, s.CancelRequest(ctx, pending.ID, "C"), models.ErrNotRequestBuyer)

	require.NoError(t, s.CancelRequest(ctx, pending.ID, "B"))

	_, err = store.GetRequest(ctx, pending.ID)
	assert.ErrorIs(t, err, storage.ErrRequestNotFound)

	// the buyer may ask again once the pending request is gone
	_, err = s.CreateRequest(ctx, listing.ID, "B", nil)
	assert.NoError(t, err)
}

func TestCancelProcessedRequest(t *testing.T) {
	for _, status := range []models.RequestStatus{models.RequestAccepted, models.RequestRejected, models.RequestCompleted} {
		t.Run(string(status), func(t *testing.T) {
			ctx := context.Background()
			s, store, _ := newService(t)
			listing := createListing(t, s)

			req := settledRequest(t, s, listing.ID, "B", status)
			before, err := store.GetRequest(ctx, req.ID)
			require.NoError(t, err)

			require.ErrorIs(t, s.CancelRequest(ctx, req.ID, "B"), models.ErrRequestProcessed)

			stored, err := store.GetRequest(ctx, req.ID)
			require.NoError(t, err)
			assert.Equal(t, status, stored.Status)
			assert.Equal(t, before, stored)
		})
	}
}

func TestListRequestsRequiresSeller(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newService(t)
	listing := createListing(t, s)

	for _, buyer := range []string{"B", "C"} {
		_, err := s.CreateRequest(ctx, listing.ID, buyer, nil)
		require.NoError(t, err)
	}

	reqs, err := s.ListRequests(ctx, seller, listing.ID)
	require.NoError(t, err)
	assert.Len(t, reqs, 2)

	reqs, err = s.ListRequests(ctx, models.User{ID: "admin", IsAdmin: true}, listing.ID)
	require.NoError(t, err)
	assert.Len(t, reqs, 2)

	_, err = s.ListRequests(ctx, models.User{ID: "B"}, listing.ID)
	assert.ErrorIs(t, err, models.ErrNotListingOwner)

	_, err = s.ListRequests(ctx, seller, "nope")
	assert.ErrorIs(t, err, models.ErrListingNotFound)
}
