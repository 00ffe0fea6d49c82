// Package activity carries domain activity from the managers to its
// consumers over an in-process watermill pub/sub.
package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"communityHub/internal/lib/logger/sl"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const Topic = "activity"

type Kind string

const (
	EventCreated   Kind = "event.created"
	EventUpdated   Kind = "event.updated"
	EventCancelled Kind = "event.cancelled"
	EventViewed    Kind = "event.viewed"

	Registered   Kind = "registration.registered"
	Waitlisted   Kind = "registration.waitlisted"
	Promoted     Kind = "registration.promoted"
	Unregistered Kind = "registration.removed"

	ListingCreated Kind = "listing.created"
	ListingUpdated Kind = "listing.updated"
	ListingClosed  Kind = "listing.closed"
	ListingViewed  Kind = "listing.viewed"

	RequestCreated   Kind = "request.created"
	RequestAccepted  Kind = "request.accepted"
	RequestRejected  Kind = "request.rejected"
	RequestCompleted Kind = "request.completed"
	RequestCancelled Kind = "request.cancelled"
)

const (
	SubjectEvent   = "event"
	SubjectListing = "listing"
)

type Activity struct {
	Kind      Kind      `json:"kind"`
	Subject   string    `json:"subject"`
	SubjectID string    `json:"subjectId"`
	ActorID   string    `json:"actorId,omitempty"`
	At        time.Time `json:"at"`
}

type Publisher interface {
	Publish(ctx context.Context, a Activity) error
}

type Handler func(ctx context.Context, a Activity) error

type Bus struct {
	log    *slog.Logger
	pubsub *gochannel.GoChannel
}

func NewBus(log *slog.Logger) *Bus {
	return &Bus{
		log: log,
		pubsub: gochannel.NewGoChannel(
			gochannel.Config{OutputChannelBuffer: 256},
			watermill.NewSlogLogger(log),
		),
	}
}

func (b *Bus) Publish(_ context.Context, a Activity) error {
	const op = "activity.Bus.Publish"

	payload, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = b.pubsub.Publish(Topic, message.NewMessage(watermill.NewUUID(), payload)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Consume subscribes h to the topic and processes messages in the background
// until ctx is done or the bus is closed. The returned channel is closed when
// processing stops. Handler failures are logged and the message acknowledged.
func (b *Bus) Consume(ctx context.Context, h Handler) (<-chan struct{}, error) {
	const op = "activity.Bus.Consume"

	messages, err := b.pubsub.Subscribe(ctx, Topic)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log := b.log.With(slog.String("op", op))
	done := make(chan struct{})

	go func() {
		defer close(done)

		for msg := range messages {
			var a Activity
			if err := json.Unmarshal(msg.Payload, &a); err != nil {
				log.Error("failed to decode activity", sl.Err(err), slog.String("message_uuid", msg.UUID))
				msg.Ack()
				continue
			}

			if err := h(ctx, a); err != nil {
				log.Error("failed to handle activity", sl.Err(err), slog.String("kind", string(a.Kind)))
			}

			msg.Ack()
		}
	}()

	return done, nil
}

func (b *Bus) Close() error {
	return b.pubsub.Close()
}

// Emit publishes a and logs instead of failing when the publisher errors.
func Emit(ctx context.Context, log *slog.Logger, p Publisher, a Activity) {
	if p == nil {
		return
	}
	if a.At.IsZero() {
		a.At = time.Now().UTC()
	}
	if err := p.Publish(ctx, a); err != nil {
		log.Warn("failed to publish activity", sl.Err(err), slog.String("kind", string(a.Kind)))
	}
}
