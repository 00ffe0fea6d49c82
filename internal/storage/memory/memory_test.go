package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"communityHub/internal/models"
	"communityHub/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithinTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.NoError(t, s.CreateListing(ctx, &models.MarketListing{ID: "l1", Status: models.ListingActive}))

	boom := errors.New("boom")
	err := s.WithinTx(ctx, func(tx storage.Tx) error {
		require.NoError(t, tx.SetListingStatus(ctx, "l1", models.ListingReserved))
		require.NoError(t, tx.CreateRequest(ctx, &models.MarketRequest{ID: "r1", ListingID: "l1", BuyerID: "b"}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	l, err := s.GetListing(ctx, "l1")
	require.NoError(t, err)
	assert.Equal(t, models.ListingActive, l.Status)

	_, err = s.GetRequest(ctx, "r1")
	assert.ErrorIs(t, err, storage.ErrRequestNotFound)
}

func TestWithinTxCommits(t *testing.T) {
	ctx := context.Background()
	s := New()

	err := s.WithinTx(ctx, func(tx storage.Tx) error {
		return tx.CreateEvent(ctx, &models.Event{ID: "e1", Status: models.EventActive})
	})
	require.NoError(t, err)

	e, err := s.GetEvent(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, models.EventActive, e.Status)
}

func TestUniquePairs(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.NoError(t, s.CreateRegistration(ctx, &models.Registration{ID: "r1", EventID: "e", UserID: "u"}))
	assert.ErrorIs(t, s.CreateRegistration(ctx, &models.Registration{ID: "r2", EventID: "e", UserID: "u"}), storage.ErrRegistrationExists)

	require.NoError(t, s.CreateRequest(ctx, &models.MarketRequest{ID: "q1", ListingID: "l", BuyerID: "b"}))
	assert.ErrorIs(t, s.CreateRequest(ctx, &models.MarketRequest{ID: "q2", ListingID: "l", BuyerID: "b"}), storage.ErrRequestExists)
}

func TestOldestWaitlisted(t *testing.T) {
	ctx := context.Background()
	s := New()
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, s.CreateRegistration(ctx, &models.Registration{ID: "late", EventID: "e", UserID: "u1", Status: models.RegistrationWaitlist, RegisteredAt: base.Add(time.Minute)}))
	require.NoError(t, s.CreateRegistration(ctx, &models.Registration{ID: "reg", EventID: "e", UserID: "u2", Status: models.RegistrationRegistered, RegisteredAt: base.Add(-time.Minute)}))
	require.NoError(t, s.CreateRegistration(ctx, &models.Registration{ID: "early", EventID: "e", UserID: "u3", Status: models.RegistrationWaitlist, RegisteredAt: base}))

	r, err := s.OldestWaitlisted(ctx, "e")
	require.NoError(t, err)
	assert.Equal(t, "early", r.ID)

	_, err = s.OldestWaitlisted(ctx, "other")
	assert.ErrorIs(t, err, storage.ErrRegistrationNotFound)
}

func TestListEventsFilterAndPaging(t *testing.T) {
	ctx := context.Background()
	s := New()
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	for i, id := range []string{"c", "a", "b"} {
		status := models.EventActive
		if id == "b" {
			status = models.EventDraft
		}
		require.NoError(t, s.CreateEvent(ctx, &models.Event{ID: id, Status: status, StartsAt: base.Add(time.Duration(len(id)+i) * time.Hour)}))
	}

	all, err := s.ListEvents(ctx, models.EventFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"c", "a", "b"}, []string{all[0].ID, all[1].ID, all[2].ID})

	active, err := s.ListEvents(ctx, models.EventFilter{Status: models.EventActive})
	require.NoError(t, err)
	assert.Len(t, active, 2)

	page, err := s.ListEvents(ctx, models.EventFilter{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "a", page[0].ID)
}
