package models

import "time"

type RequestStatus string

const (
	RequestPending   RequestStatus = "PENDING"
	RequestAccepted  RequestStatus = "ACCEPTED"
	RequestRejected  RequestStatus = "REJECTED"
	RequestCompleted RequestStatus = "COMPLETED"
)

type MarketRequest struct {
	ID        string        `json:"id"`
	ListingID string        `json:"listingId"`
	BuyerID   string        `json:"buyerId"`
	Status    RequestStatus `json:"status"`
	Message   *string       `json:"message,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// SellerSettable reports whether a seller may move a request to s.
func (s RequestStatus) SellerSettable() bool {
	switch s {
	case RequestAccepted, RequestRejected, RequestCompleted:
		return true
	}
	return false
}

// ListingEffect returns the listing status implied by moving a request to s.
func (s RequestStatus) ListingEffect() (ListingStatus, bool) {
	switch s {
	case RequestAccepted:
		return ListingReserved, true
	case RequestCompleted:
		return ListingSold, true
	}
	return "", false
}

// Final reports whether a request in status s can no longer change.
func (s RequestStatus) Final() bool {
	return s == RequestRejected || s == RequestCompleted
}

// CanMoveTo reports whether a seller may move a request from s to next.
// PENDING may go to any seller-settable status, ACCEPTED only to REJECTED
// or COMPLETED.
func (s RequestStatus) CanMoveTo(next RequestStatus) bool {
	switch s {
	case RequestPending:
		return next.SellerSettable()
	case RequestAccepted:
		return next == RequestRejected || next == RequestCompleted
	}
	return false
}
