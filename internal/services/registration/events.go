package registration

import (
	"context"
	"fmt"
	"strings"

	"communityHub/internal/activity"
	"communityHub/internal/models"
	"communityHub/internal/storage"

	"github.com/google/uuid"
)

func (s *Service) CreateEvent(ctx context.Context, actor models.User, in models.EventInput) (*models.Event, error) {
	const op = "services.registration.CreateEvent"

	if in.Status == "" {
		in.Status = models.EventActive
	}

	now := s.now()
	event := &models.Event{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Location:    strings.TrimSpace(in.Location),
		StartsAt:    in.StartsAt.UTC(),
		EndsAt:      in.EndsAt,
		Capacity:    in.Capacity,
		Status:      in.Status,
		CreatorID:   actor.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := validateEvent(event); err != nil {
		return nil, err
	}

	if err := s.store.CreateEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.emit(ctx, activity.EventCreated, event.ID, actor.ID)

	return event, nil
}

// GetEvent returns the event and records a view by viewerID.
func (s *Service) GetEvent(ctx context.Context, id, viewerID string) (*models.Event, error) {
	const op = "services.registration.GetEvent"

	event, err := s.store.GetEvent(ctx, id)
	if err != nil {
		return nil, wrap(op, notFound(err))
	}

	s.emit(ctx, activity.EventViewed, id, viewerID)

	return event, nil
}

func (s *Service) ListEvents(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	const op = "services.registration.ListEvents"

	events, err := s.store.ListEvents(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return events, nil
}

// UpdateEvent applies patch on behalf of the creator or an administrator.
// Raising or removing the capacity of an ACTIVE event promotes waitlisted
// registrations into the new room.
func (s *Service) UpdateEvent(ctx context.Context, actor models.User, id string, patch models.EventPatch) (*models.Event, error) {
	const op = "services.registration.UpdateEvent"

	var (
		event    *models.Event
		promoted []models.Registration
	)

	err := s.store.WithinTx(ctx, func(tx storage.Tx) error {
		var err error

		event, err = lockEvent(ctx, tx, id)
		if err != nil {
			return err
		}

		if !actor.CanManage(event.CreatorID) {
			return models.ErrNotEventOwner
		}
		if event.Status == models.EventCancelled {
			return models.ErrEventCancelled
		}

		applyEventPatch(event, patch)
		event.UpdatedAt = s.now()

		if err = validateEvent(event); err != nil {
			return err
		}

		registered, err := tx.CountRegistrations(ctx, id, models.RegistrationRegistered)
		if err != nil {
			return err
		}
		if event.Capacity != nil && *event.Capacity < registered {
			return models.ErrCapacityBelowCount
		}

		if err = tx.UpdateEvent(ctx, event); err != nil {
			return err
		}

		if event.Status != models.EventActive {
			return nil
		}

		promoted, err = fill(ctx, tx, event, 0)
		return err
	})
	if err != nil {
		return nil, wrap(op, err)
	}

	s.emit(ctx, activity.EventUpdated, id, actor.ID)
	for _, p := range promoted {
		s.emit(ctx, activity.Promoted, id, p.UserID)
	}

	return event, nil
}

// CancelEvent is the soft delete of an event: its status becomes CANCELLED.
func (s *Service) CancelEvent(ctx context.Context, actor models.User, id string) (*models.Event, error) {
	const op = "services.registration.CancelEvent"

	var event *models.Event

	err := s.store.WithinTx(ctx, func(tx storage.Tx) error {
		var err error

		event, err = lockEvent(ctx, tx, id)
		if err != nil {
			return err
		}

		if !actor.CanManage(event.CreatorID) {
			return models.ErrNotEventOwner
		}
		if event.Status == models.EventCancelled {
			return nil
		}

		event.Status = models.EventCancelled
		event.UpdatedAt = s.now()

		return tx.UpdateEvent(ctx, event)
	})
	if err != nil {
		return nil, wrap(op, err)
	}

	s.emit(ctx, activity.EventCancelled, id, actor.ID)

	return event, nil
}

func (s *Service) Stats(ctx context.Context, eventID string) (*models.EventStats, error) {
	const op = "services.registration.Stats"

	if _, err := s.store.GetEvent(ctx, eventID); err != nil {
		return nil, wrap(op, notFound(err))
	}

	stats := &models.EventStats{EventID: eventID, Activity: map[string]int64{}}

	var err error
	if stats.Registered, err = s.store.CountRegistrations(ctx, eventID, models.RegistrationRegistered); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if stats.Waitlisted, err = s.store.CountRegistrations(ctx, eventID, models.RegistrationWaitlist); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if s.stats != nil {
		counters, err := s.stats.Stats(ctx, activity.SubjectEvent, eventID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		stats.Activity = counters
	}

	return stats, nil
}

func applyEventPatch(event *models.Event, patch models.EventPatch) {
	if patch.Title != nil {
		event.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		event.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Location != nil {
		event.Location = strings.TrimSpace(*patch.Location)
	}
	if patch.StartsAt != nil {
		event.StartsAt = patch.StartsAt.UTC()
	}
	if patch.EndsAt != nil {
		event.EndsAt = patch.EndsAt
	}
	if patch.ClearCapacity {
		event.Capacity = nil
	} else if patch.Capacity != nil {
		event.Capacity = patch.Capacity
	}
	if patch.Status != nil {
		event.Status = *patch.Status
	}
}

func validateEvent(event *models.Event) error {
	if event.Title == "" {
		return models.NewError(models.ErrValidation, "title is required")
	}
	if event.StartsAt.IsZero() {
		return models.NewError(models.ErrValidation, "startsAt is required")
	}
	if event.EndsAt != nil && !event.EndsAt.After(event.StartsAt) {
		return models.ErrEndsBeforeStart
	}
	if event.Capacity != nil && *event.Capacity <= 0 {
		return models.ErrInvalidCapacity
	}
	switch event.Status {
	case models.EventActive, models.EventDraft, models.EventCompleted:
	case models.EventCancelled:
		return models.NewError(models.ErrValidation, "use DELETE to cancel an event")
	default:
		return models.NewError(models.ErrValidation, "status must be one of ACTIVE, DRAFT, COMPLETED")
	}
	return nil
}
