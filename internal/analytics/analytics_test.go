package analytics

import (
	"context"
	"os"
	"testing"

	"communityHub/internal/activity"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectorCountsPerSubject(t *testing.T) {
	ctx := context.Background()
	p := NewProjector(NewMemoryCounters())

	for _, a := range []activity.Activity{
		{Kind: activity.ListingViewed, Subject: activity.SubjectListing, SubjectID: "l1"},
		{Kind: activity.ListingViewed, Subject: activity.SubjectListing, SubjectID: "l1"},
		{Kind: activity.RequestCreated, Subject: activity.SubjectListing, SubjectID: "l1"},
		{Kind: activity.ListingViewed, Subject: activity.SubjectListing, SubjectID: "l2"},
		{Kind: activity.EventViewed},
	} {
		require.NoError(t, p.Handle(ctx, a))
	}

	stats, err := p.Stats(ctx, activity.SubjectListing, "l1")
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{
		string(activity.ListingViewed):  2,
		string(activity.RequestCreated): 1,
	}, stats)

	empty, err := p.Stats(ctx, activity.SubjectEvent, "missing")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

// redisClient connects to TEST_REDIS_ADDRESS when set and to an in-process
// miniredis otherwise.
func redisClient(t *testing.T) *redis.Client {
	t.Helper()

	addr := os.Getenv("TEST_REDIS_ADDRESS")
	if addr == "" {
		addr = miniredis.RunT(t).Addr()
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, client.Ping(context.Background()).Err())

	return client
}

func TestRedisCounters(t *testing.T) {
	ctx := context.Background()
	client := redisClient(t)

	key := Key(activity.SubjectEvent, uuid.NewString())
	t.Cleanup(func() { client.Del(context.Background(), key) })

	c := NewRedisCounters(client)
	require.NoError(t, c.Incr(ctx, key, string(activity.EventViewed)))
	require.NoError(t, c.Incr(ctx, key, string(activity.EventViewed)))
	require.NoError(t, c.Incr(ctx, key, string(activity.Registered)))

	stats, err := c.All(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{
		string(activity.EventViewed): 2,
		string(activity.Registered):  1,
	}, stats)

	empty, err := c.All(ctx, Key(activity.SubjectEvent, uuid.NewString()))
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestProjectorOverRedis(t *testing.T) {
	ctx := context.Background()
	p := NewProjector(NewRedisCounters(redisClient(t)))

	id := uuid.NewString()
	for i := 0; i < 3; i++ {
		require.NoError(t, p.Handle(ctx, activity.Activity{Kind: activity.ListingViewed, Subject: activity.SubjectListing, SubjectID: id}))
	}

	stats, err := p.Stats(ctx, activity.SubjectListing, id)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats[string(activity.ListingViewed)])
}
