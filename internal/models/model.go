package models

import "time"

// AuctionStatus is the lifecycle state of an auction document.
type AuctionStatus string

const (
	AuctionActive AuctionStatus = "active"
	AuctionClosed AuctionStatus = "closed"
)

// Bid represents one buyer's offer against an auction. Bids are embedded in
// the auction document and never exist on their own.
type Bid struct {
	BidID     string    `json:"bid_id"`
	BuyerID   string    `json:"buyer_id"`
	BuyerName string    `json:"buyer_name"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// Auction represents one seller's crop lot offered for competitive bidding.
// The embedded bid list is append-only while the auction is active; the
// whole document is the unit of atomic update.
type Auction struct {
	AuctionID         string        `json:"auction_id"`
	SellerID          string        `json:"seller_id"`
	CropName          string        `json:"crop_name"`
	Quantity          float64       `json:"quantity"`
	Unit              string        `json:"unit"`
	Description       string        `json:"description"`
	StartingPrice     float64       `json:"starting_price"`
	CurrentHighestBid float64       `json:"current_highest_bid"`
	Bids              []Bid         `json:"bids"`
	BidsCount         int           `json:"bids_count"`
	Status            AuctionStatus `json:"status"`
	WinnerID          string        `json:"winner_id,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	EndTime           time.Time     `json:"end_time"`
	ClosedAt          time.Time     `json:"closed_at,omitzero"`
	UpdatedAt         time.Time     `json:"updated_at"`

	// Revision is the store's optimistic-concurrency version. It is
	// maintained by the store on every write and is not part of the
	// client-facing representation.
	Revision uint64 `json:"-"`
}

// Expired reports whether the auction's bidding deadline has passed.
func (a *Auction) Expired(now time.Time) bool {
	return now.After(a.EndTime)
}

// Crop represents a produce listing in the marketplace catalog.
type Crop struct {
	CropID       string    `json:"crop_id"`
	SellerID     string    `json:"seller_id"`
	Name         string    `json:"name"`
	CropType     string    `json:"crop_type"`
	Quantity     float64   `json:"quantity"`
	Unit         string    `json:"unit"`
	PricePerUnit float64   `json:"price_per_unit"`
	Location     string    `json:"location"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
}

// RewardProfile tracks a user's gamification points across marketplace actions.
type RewardProfile struct {
	UserID    string         `json:"user_id"`
	Points    int            `json:"points"`
	Level     int            `json:"level"`
	Actions   map[string]int `json:"actions"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// TrendPoint is one day of market price history for a crop.
type TrendPoint struct {
	Date   string  `json:"date"`
	Price  float64 `json:"price"`
	Volume int     `json:"volume"`
}
