package registration

import (
	"context"
	"errors"
	"fmt"
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

// tickingClock returns strictly increasing timestamps.
func tickingClock() func() time.Time {
	var mu sync.Mutex
	t := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t = t.Add(time.Second)
		return t
	}
}

var creator = models.User{ID: "creator"}

func newService(t *testing.T) (*Service, *memory.Store, *recorder) {
	t.Helper()
	store := memory.New()
	rec := &recorder{}
	return New(slogdiscard.NewDiscardLogger(), store, rec, nil, WithClock(tickingClock())), store, rec
}

func createEvent(t *testing.T, s *Service, capacity *int) *models.Event {
	t.Helper()
	event, err := s.CreateEvent(context.Background(), creator, models.EventInput{
		Title:    "Board games night",
		StartsAt: time.Date(2025, 7, 1, 18, 0, 0, 0, time.UTC),
		Capacity: capacity,
	})
	require.NoError(t, err)
	return event
}

func intPtr(v int) *int { return &v }

func registrationOf(t *testing.T, store storage.Store, eventID, userID string) *models.Registration {
	t.Helper()
	reg, err := store.GetRegistration(context.Background(), eventID, userID)
	require.NoError(t, err)
	return reg
}

func TestCapacityOneWaitlistScenario(t *testing.T) {
	ctx := context.Background()
	s, store, rec := newService(t)
	event := createEvent(t, s, intPtr(1))

	a, err := s.Register(ctx, event.ID, "A", nil)
	require.NoError(t, err)
	assert.Equal(t, models.RegistrationRegistered, a.Status)

	b, err := s.Register(ctx, event.ID, "B", nil)
	require.NoError(t, err)
	assert.Equal(t, models.RegistrationWaitlist, b.Status)

	require.NoError(t, s.Unregister(ctx, event.ID, "A"))
	assert.Equal(t, models.RegistrationRegistered, registrationOf(t, store, event.ID, "B").Status)

	require.NoError(t, s.Unregister(ctx, event.ID, "B"))

	registered, err := store.CountRegistrations(ctx, event.ID, models.RegistrationRegistered)
	require.NoError(t, err)
	assert.Zero(t, registered)

	assert.Equal(t, []activity.Kind{
		activity.EventCreated,
		activity.Registered,
		activity.Waitlisted,
		activity.Unregistered,
		activity.Promoted,
		activity.Unregistered,
	}, rec.kinds())
}

func TestRegisterUnlimitedCapacity(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newService(t)
	event := createEvent(t, s, nil)

	for i := 0; i < 50; i++ {
		reg, err := s.Register(ctx, event.ID, fmt.Sprintf("user-%d", i), nil)
		require.NoError(t, err)
		assert.Equal(t, models.RegistrationRegistered, reg.Status)
	}
}

func TestRegisterTwiceConflicts(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newService(t)
	event := createEvent(t, s, intPtr(1))

	_, err := s.Register(ctx, event.ID, "A", nil)
	require.NoError(t, err)

	_, err = s.Register(ctx, event.ID, "A", nil)
	assert.ErrorIs(t, err, models.ErrConflict)

	// A waitlisted user is also held to one registration.
	_, err = s.Register(ctx, event.ID, "B", nil)
	require.NoError(t, err)
	_, err = s.Register(ctx, event.ID, "B", nil)
	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestRegisterErrors(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newService(t)

	_, err := s.Register(ctx, "missing", "A", nil)
	assert.ErrorIs(t, err, models.ErrNotFound)

	draft, err := s.CreateEvent(ctx, creator, models.EventInput{
		Title:    "Draft",
		StartsAt: time.Date(2025, 7, 1, 18, 0, 0, 0, time.UTC),
		Status:   models.EventDraft,
	})
	require.NoError(t, err)

	_, err = s.Register(ctx, draft.ID, "A", nil)
	assert.ErrorIs(t, err, models.ErrInvalidState)

	cancelled := createEvent(t, s, nil)
	_, err = s.CancelEvent(ctx, creator, cancelled.ID)
	require.NoError(t, err)

	_, err = s.Register(ctx, cancelled.ID, "A", nil)
	assert.ErrorIs(t, err, models.ErrInvalidState)
}

func TestRegisterKeepsNotes(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newService(t)
	event := createEvent(t, s, nil)

	notes := "  vegetarian  "
	reg, err := s.Register(ctx, event.ID, "A", &notes)
	require.NoError(t, err)
	require.NotNil(t, reg.Notes)
	assert.Equal(t, "vegetarian", *reg.Notes)

	blank := "   "
	reg, err = s.Register(ctx, event.ID, "B", &blank)
	require.NoError(t, err)
	assert.Nil(t, reg.Notes)
}

func TestUnregisterPromotesOnlyOldestWaitlisted(t *testing.T) {
	ctx := context.Background()
	s, store, _ := newService(t)
	event := createEvent(t, s, intPtr(1))

	for _, u := range []string{"A", "B", "C", "D"} {
		_, err := s.Register(ctx, event.ID, u, nil)
		require.NoError(t, err)
	}

	require.NoError(t, s.Unregister(ctx, event.ID, "A"))

	assert.Equal(t, models.RegistrationRegistered, registrationOf(t, store, event.ID, "B").Status)
	assert.Equal(t, models.RegistrationWaitlist, registrationOf(t, store, event.ID, "C").Status)
	assert.Equal(t, models.RegistrationWaitlist, registrationOf(t, store, event.ID, "D").Status)
}

func TestUnregisterWaitlistedDoesNotPromote(t *testing.T) {
	ctx := context.Background()
	s, store, _ := newService(t)
	event := createEvent(t, s, intPtr(1))

	for _, u := range []string{"A", "B", "C"} {
		_, err := s.Register(ctx, event.ID, u, nil)
		require.NoError(t, err)
	}

	require.NoError(t, s.Unregister(ctx, event.ID, "B"))

	assert.Equal(t, models.RegistrationRegistered, registrationOf(t, store, event.ID, "A").Status)
	assert.Equal(t, models.RegistrationWaitlist, registrationOf(t, store, event.ID, "C").Status)
}

func TestUnregisterNotFound(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newService(t)
	event := createEvent(t, s, intPtr(1))

	assert.ErrorIs(t, s.Unregister(ctx, event.ID, "nobody"), models.ErrNotFound)
	assert.ErrorIs(t, s.Unregister(ctx, "missing", "nobody"), models.ErrNotFound)
}

func TestConcurrentRegistrationsNeverExceedCapacity(t *testing.T) {
	ctx := context.Background()
	s, store, _ := newService(t)

	const capacity = 5
	event := createEvent(t, s, intPtr(capacity))

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.Register(ctx, event.ID, fmt.Sprintf("user-%d", i), nil)
			assert.NoError(t, err)

			registered, err := store.CountRegistrations(ctx, event.ID, models.RegistrationRegistered)
			assert.NoError(t, err)
			assert.LessOrEqual(t, registered, capacity)
		}(i)
	}
	wg.Wait()

	registered, err := store.CountRegistrations(ctx, event.ID, models.RegistrationRegistered)
	require.NoError(t, err)
	assert.Equal(t, capacity, registered)

	waitlisted, err := store.CountRegistrations(ctx, event.ID, models.RegistrationWaitlist)
	require.NoError(t, err)
	assert.Equal(t, 35, waitlisted)
}

// failingStore breaks SetRegistrationStatus inside transactions.
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

func (f failingTx) SetRegistrationStatus(context.Context, string, models.RegistrationStatus) error {
	return errors.New("connection lost")
}

func TestUnregisterRollsBackWhenPromotionFails(t *testing.T) {
	ctx := context.Background()
	s, store, _ := newService(t)
	event := createEvent(t, s, intPtr(1))

	for _, u := range []string{"A", "B"} {
		_, err := s.Register(ctx, event.ID, u, nil)
		require.NoError(t, err)
	}

	broken := New(slogdiscard.NewDiscardLogger(), failingStore{Store: store}, nil, nil)

	err := broken.Unregister(ctx, event.ID, "A")
	require.Error(t, err)

	var domainErr *models.Error
	assert.False(t, errors.As(err, &domainErr))

	assert.Equal(t, models.RegistrationRegistered, registrationOf(t, store, event.ID, "A").Status)
	assert.Equal(t, models.RegistrationWaitlist, registrationOf(t, store, event.ID, "B").Status)
}

func TestListRegistrationsRequiresOwner(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newService(t)
	event := createEvent(t, s, intPtr(1))

	for _, u := range []string{"A", "B"} {
		_, err := s.Register(ctx, event.ID, u, nil)
		require.NoError(t, err)
	}

	_, err := s.ListRegistrations(ctx, models.User{ID: "A"}, event.ID)
	assert.ErrorIs(t, err, models.ErrForbidden)

	regs, err := s.ListRegistrations(ctx, models.User{ID: "someone", IsAdmin: true}, event.ID)
	require.NoError(t, err)
	require.Len(t, regs, 2)
	assert.Equal(t, "A", regs[0].UserID)
	assert.Equal(t, "B", regs[1].UserID)
}
