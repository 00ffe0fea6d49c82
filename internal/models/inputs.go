package models

import "time"

type EventInput struct {
	Title       string
	Description string
	Location    string
	StartsAt    time.Time
	EndsAt      *time.Time
	Capacity    *int
	Status      EventStatus
}

// EventPatch holds the fields to change; nil fields are left as they are.
type EventPatch struct {
	Title       *string
	Description *string
	Location    *string
	StartsAt    *time.Time
	EndsAt      *time.Time
	Capacity    *int
	// ClearCapacity removes the capacity limit.
	ClearCapacity bool
	Status        *EventStatus
}

type ListingInput struct {
	Title       string
	Description string
	Category    string
	IsFree      bool
	Price       *float64
}

type ListingPatch struct {
	Title       *string
	Description *string
	Category    *string
	IsFree      *bool
	Price       *float64
}

type EventStats struct {
	EventID    string           `json:"eventId"`
	Registered int              `json:"registered"`
	Waitlisted int              `json:"waitlisted"`
	Activity   map[string]int64 `json:"activity"`
}

type ListingStats struct {
	ListingID string           `json:"listingId"`
	Requests  int              `json:"requests"`
	Activity  map[string]int64 `json:"activity"`
}
