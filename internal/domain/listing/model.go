package listing

import "time"

// Visibility controls who can see a listing.
type Visibility string

const (
	VisibilityPublic  Visibility = "Public"
	VisibilityPrivate Visibility = "Private"
)

// ListingStatus represents the sale state of a listing.
type ListingStatus string

const (
	StatusAvailable ListingStatus = "Available"
	StatusSold      ListingStatus = "Sold"
	StatusRented    ListingStatus = "Rented"
)

// ListingType distinguishes sale and rental listings.
type ListingType string

const (
	TypeSale ListingType = "Sale"
	TypeRent ListingType = "Rent"
)

// Listing represents a property listing as read from the store.
// Snapshots are immutable on read; writes go back through the repository
// and reappear via the subscription channel.
type Listing struct {
	ID         string        `json:"id"`
	OwnerID    string        `json:"owner_id"`
	Email      string        `json:"email"`
	Title      string        `json:"title"`
	Sector     string        `json:"sector"`
	Block      string        `json:"block"`
	Type       ListingType   `json:"type"`
	Price      float64       `json:"price"` // PKR
	Bedrooms   int           `json:"bedrooms"`
	Bathrooms  int           `json:"bathrooms"`
	SizeMarla  float64       `json:"size_marla"`
	Visibility Visibility    `json:"visibility"`
	Status     ListingStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
}

// PriceMillions returns the price in the normalized million-PKR unit used
// by filters and display.
func (l Listing) PriceMillions() float64 {
	return l.Price / 1_000_000
}

// OwnedBy reports whether the listing belongs to the given user.
func (l Listing) OwnedBy(userID string) bool {
	return userID != "" && l.OwnerID == userID
}
