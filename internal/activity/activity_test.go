package activity

import (
	"context"
	"sync"
	"testing"
	"time"

	"communityHub/internal/lib/logger/handlers/slogdiscard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusDeliversActivity(t *testing.T) {
	log := slogdiscard.NewDiscardLogger()
	bus := NewBus(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	var got []Activity

	done, err := bus.Consume(ctx, func(_ context.Context, a Activity) error {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, a)
		return nil
	})
	require.NoError(t, err)

	Emit(ctx, log, bus, Activity{Kind: Registered, Subject: SubjectEvent, SubjectID: "e1", ActorID: "u1"})
	Emit(ctx, log, bus, Activity{Kind: Promoted, Subject: SubjectEvent, SubjectID: "e1", ActorID: "u2"})

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 2
	}, 2*time.Second, 10*time.Millisecond)

	mu.Lock()
	kinds := []Kind{got[0].Kind, got[1].Kind}
	assert.ElementsMatch(t, []Kind{Registered, Promoted}, kinds)
	assert.False(t, got[0].At.IsZero())
	mu.Unlock()

	require.NoError(t, bus.Close())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not stop after close")
	}
}

func TestEmitWithNilPublisher(t *testing.T) {
	assert.NotPanics(t, func() {
		Emit(context.Background(), slogdiscard.NewDiscardLogger(), nil, Activity{Kind: EventViewed})
	})
}
