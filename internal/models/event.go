package models

import "time"

type EventStatus string

const (
	EventActive    EventStatus = "ACTIVE"
	EventCancelled EventStatus = "CANCELLED"
	EventCompleted EventStatus = "COMPLETED"
	EventDraft     EventStatus = "DRAFT"
)

type Event struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Location    string      `json:"location,omitempty"`
	StartsAt    time.Time   `json:"startsAt"`
	EndsAt      *time.Time  `json:"endsAt,omitempty"`
	Capacity    *int        `json:"capacity,omitempty"`
	Status      EventStatus `json:"status"`
	CreatorID   string      `json:"creatorId"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// HasRoom reports whether one more REGISTERED row fits next to registered.
func (e *Event) HasRoom(registered int) bool {
	return e.Capacity == nil || registered < *e.Capacity
}

type EventFilter struct {
	Status EventStatus
	Limit  int
	Offset int
}
