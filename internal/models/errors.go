package models

import "errors"

// Error kinds. Every error returned by the managers wraps exactly one of them.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidState = errors.New("invalid state")
	ErrValidation   = errors.New("validation error")
)

// Error is a domain error with a client-facing message and a kind.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func NewError(kind error, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

var (
	ErrEventNotFound        = NewError(ErrNotFound, "event not found")
	ErrEventNotActive       = NewError(ErrInvalidState, "event is not active")
	ErrEventCancelled       = NewError(ErrInvalidState, "event is cancelled")
	ErrCapacityBelowCount   = NewError(ErrInvalidState, "capacity cannot be lower than the number of registered users")
	ErrNotEventOwner        = NewError(ErrForbidden, "only the event creator or an administrator can do this")
	ErrRegistrationNotFound = NewError(ErrNotFound, "registration not found")
	ErrAlreadyRegistered    = NewError(ErrConflict, "user is already registered for this event")

	ErrListingNotFound     = NewError(ErrNotFound, "listing not found")
	ErrListingNotActive    = NewError(ErrInvalidState, "listing is not active")
	ErrListingNotEditable  = NewError(ErrInvalidState, "listing can no longer be edited")
	ErrOwnListing          = NewError(ErrInvalidState, "cannot request your own listing")
	ErrNotListingSeller    = NewError(ErrForbidden, "only the seller can do this")
	ErrNotListingOwner     = NewError(ErrForbidden, "only the seller or an administrator can do this")
	ErrRequestNotFound     = NewError(ErrNotFound, "request not found")
	ErrAlreadyRequested    = NewError(ErrConflict, "you have already requested this listing")
	ErrNotRequestBuyer     = NewError(ErrForbidden, "only the buyer can cancel this request")
	ErrRequestProcessed    = NewError(ErrInvalidState, "request has already been processed")
	ErrRequestFinal        = NewError(ErrInvalidState, "request is already rejected or completed")
	ErrRequestTransition   = NewError(ErrInvalidState, "request cannot move to this status")
	ErrListingFinal        = NewError(ErrInvalidState, "listing is already sold or closed")
	ErrInvalidRequestState = NewError(ErrInvalidState, "status must be one of ACCEPTED, REJECTED, COMPLETED")
	ErrPriceRequired       = NewError(ErrValidation, "price is required and must be positive unless the item is free")
	ErrPriceOnFreeItem     = NewError(ErrValidation, "a free item cannot have a price")
	ErrEndsBeforeStart     = NewError(ErrValidation, "endsAt must be after startsAt")
	ErrInvalidCapacity     = NewError(ErrValidation, "capacity must be a positive integer")
)
