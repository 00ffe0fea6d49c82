package models

import "time"

type RegistrationStatus string

const (
	RegistrationRegistered RegistrationStatus = "REGISTERED"
	RegistrationWaitlist   RegistrationStatus = "WAITLIST"
	// RegistrationCancelled and RegistrationAttended are part of the stored
	// vocabulary but no code path sets them yet.
	RegistrationCancelled RegistrationStatus = "CANCELLED"
	RegistrationAttended  RegistrationStatus = "ATTENDED"
)

type Registration struct {
	ID           string             `json:"id"`
	EventID      string             `json:"eventId"`
	UserID       string             `json:"userId"`
	Status       RegistrationStatus `json:"status"`
	RegisteredAt time.Time          `json:"registeredAt"`
	Notes        *string            `json:"notes,omitempty"`
}
