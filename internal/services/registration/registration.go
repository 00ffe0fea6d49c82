// Package registration manages events and the capacity-bounded registration
// workflow: register, waitlist on overflow, promote on unregistration.
package registration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"communityHub/internal/activity"
	"communityHub/internal/models"
	"communityHub/internal/storage"

	"github.com/google/uuid"
)

type StatsReader interface {
	Stats(ctx context.Context, subject, id string) (map[string]int64, error)
}

type Service struct {
	log       *slog.Logger
	store     storage.Store
	publisher activity.Publisher
	stats     StatsReader
	now       func() time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func New(log *slog.Logger, store storage.Store, publisher activity.Publisher, stats StatsReader, opts ...Option) *Service {
	s := &Service{
		log:       log,
		store:     store,
		publisher: publisher,
		stats:     stats,
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) emit(ctx context.Context, kind activity.Kind, eventID, actorID string) {
	activity.Emit(ctx, s.log, s.publisher, activity.Activity{
		Kind:      kind,
		Subject:   activity.SubjectEvent,
		SubjectID: eventID,
		ActorID:   actorID,
		At:        s.now(),
	})
}

// Register creates a registration for userID. The event row stays locked
// from the capacity count until the insert commits, so concurrent calls
// cannot admit more REGISTERED rows than the capacity.
func (s *Service) Register(ctx context.Context, eventID, userID string, notes *string) (*models.Registration, error) {
	const op = "services.registration.Register"

	var reg *models.Registration

	err := s.store.WithinTx(ctx, func(tx storage.Tx) error {
		event, err := lockEvent(ctx, tx, eventID)
		if err != nil {
			return err
		}

		if event.Status != models.EventActive {
			return models.ErrEventNotActive
		}

		_, err = tx.GetRegistration(ctx, eventID, userID)
		switch {
		case err == nil:
			return models.ErrAlreadyRegistered
		case !errors.Is(err, storage.ErrRegistrationNotFound):
			return err
		}

		registered, err := tx.CountRegistrations(ctx, eventID, models.RegistrationRegistered)
		if err != nil {
			return err
		}

		status := models.RegistrationWaitlist
		if event.HasRoom(registered) {
			status = models.RegistrationRegistered
		}

		reg = &models.Registration{
			ID:           uuid.NewString(),
			EventID:      eventID,
			UserID:       userID,
			Status:       status,
			RegisteredAt: s.now(),
			Notes:        trimmed(notes),
		}

		err = tx.CreateRegistration(ctx, reg)
		if errors.Is(err, storage.ErrRegistrationExists) {
			return models.ErrAlreadyRegistered
		}
		return err
	})
	if err != nil {
		return nil, wrap(op, err)
	}

	kind := activity.Registered
	if reg.Status == models.RegistrationWaitlist {
		kind = activity.Waitlisted
	}
	s.emit(ctx, kind, eventID, userID)

	return reg, nil
}

// Unregister deletes the caller's registration and, for events with a
// capacity, promotes at most one waitlisted registration into the freed slot.
func (s *Service) Unregister(ctx context.Context, eventID, userID string) error {
	const op = "services.registration.Unregister"

	var promoted []models.Registration

	err := s.store.WithinTx(ctx, func(tx storage.Tx) error {
		event, err := tx.GetEventForUpdate(ctx, eventID)
		if err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				return models.ErrRegistrationNotFound
			}
			return err
		}

		reg, err := tx.GetRegistration(ctx, eventID, userID)
		if err != nil {
			if errors.Is(err, storage.ErrRegistrationNotFound) {
				return models.ErrRegistrationNotFound
			}
			return err
		}

		if err = tx.DeleteRegistration(ctx, reg.ID); err != nil {
			return err
		}

		if event.Capacity == nil {
			return nil
		}

		promoted, err = fill(ctx, tx, event, 1)
		return err
	})
	if err != nil {
		return wrap(op, err)
	}

	s.emit(ctx, activity.Unregistered, eventID, userID)
	for _, p := range promoted {
		s.log.Info("waitlisted registration promoted",
			slog.String("event_id", eventID),
			slog.String("registration_id", p.ID),
		)
		s.emit(ctx, activity.Promoted, eventID, p.UserID)
	}

	return nil
}

// fill promotes waitlisted registrations, oldest first, while the event has
// room. limit <= 0 means no limit.
func fill(ctx context.Context, tx storage.Tx, event *models.Event, limit int) ([]models.Registration, error) {
	var promoted []models.Registration

	for limit <= 0 || len(promoted) < limit {
		registered, err := tx.CountRegistrations(ctx, event.ID, models.RegistrationRegistered)
		if err != nil {
			return nil, err
		}
		if !event.HasRoom(registered) {
			break
		}

		next, err := tx.OldestWaitlisted(ctx, event.ID)
		if errors.Is(err, storage.ErrRegistrationNotFound) {
			break
		}
		if err != nil {
			return nil, err
		}

		if err = tx.SetRegistrationStatus(ctx, next.ID, models.RegistrationRegistered); err != nil {
			return nil, err
		}

		next.Status = models.RegistrationRegistered
		promoted = append(promoted, *next)
	}

	return promoted, nil
}

func (s *Service) GetRegistration(ctx context.Context, eventID, userID string) (*models.Registration, error) {
	const op = "services.registration.GetRegistration"

	reg, err := s.store.GetRegistration(ctx, eventID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrRegistrationNotFound) {
			return nil, models.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return reg, nil
}

// ListRegistrations returns the registrations of an event in registration
// order. Only the event creator or an administrator may see them.
func (s *Service) ListRegistrations(ctx context.Context, actor models.User, eventID string) ([]models.Registration, error) {
	const op = "services.registration.ListRegistrations"

	event, err := s.store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, wrap(op, notFound(err))
	}

	if !actor.CanManage(event.CreatorID) {
		return nil, models.ErrNotEventOwner
	}

	regs, err := s.store.ListRegistrations(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return regs, nil
}

func lockEvent(ctx context.Context, tx storage.Tx, id string) (*models.Event, error) {
	event, err := tx.GetEventForUpdate(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return event, nil
}

func notFound(err error) error {
	if errors.Is(err, storage.ErrEventNotFound) {
		return models.ErrEventNotFound
	}
	return err
}

// wrap leaves domain errors untouched and prefixes everything else with op.
func wrap(op string, err error) error {
	var domainErr *models.Error
	if errors.As(err, &domainErr) {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
