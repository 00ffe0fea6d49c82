package models

import "time"

type ListingStatus string

const (
	ListingActive   ListingStatus = "ACTIVE"
	ListingReserved ListingStatus = "RESERVED"
	ListingSold     ListingStatus = "SOLD"
	ListingClosed   ListingStatus = "CLOSED"
)

type MarketListing struct {
	ID          string        `json:"id"`
	SellerID    string        `json:"sellerId"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Category    string        `json:"category,omitempty"`
	IsFree      bool          `json:"isFree"`
	Price       *float64      `json:"price,omitempty"`
	Status      ListingStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// ValidatePrice enforces the isFree/price pairing.
func ValidatePrice(isFree bool, price *float64) error {
	if isFree {
		if price != nil && *price != 0 {
			return ErrPriceOnFreeItem
		}
		return nil
	}
	if price == nil || *price <= 0 {
		return ErrPriceRequired
	}
	return nil
}

type ListingFilter struct {
	Status   ListingStatus
	Category string
	SellerID string
	Limit    int
	Offset   int
}

// Final reports whether a listing in status s is sold or closed.
func (s ListingStatus) Final() bool {
	return s == ListingSold || s == ListingClosed
}
