package helpers

// Request/Response DTOs
type CreateAuctionRequest struct {
	SellerID        string  `json:"seller_id" binding:"required"`
	CropName        string  `json:"crop_name" binding:"required"`
	Quantity        float64 `json:"quantity" binding:"required,gt=0"`
	Unit            string  `json:"unit"`
	Description     string  `json:"description"`
	StartingPrice   float64 `json:"starting_price" binding:"required,gt=0"`
	DurationMinutes int     `json:"duration_minutes" binding:"required,gt=0"`
}

type PlaceBidRequest struct {
	BuyerID   string  `json:"buyer_id" binding:"required"`
	BuyerName string  `json:"buyer_name" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
}

type BidResponse struct {
	BidID             string  `json:"bid_id"`
	BuyerID           string  `json:"buyer_id"`
	BuyerName         string  `json:"buyer_name"`
	Amount            float64 `json:"amount"`
	CreatedAt         string  `json:"created_at"`
	CurrentHighestBid float64 `json:"current_highest_bid"`
}

type CloseAuctionResponse struct {
	AuctionID  string  `json:"auction_id"`
	WinnerID   string  `json:"winner_id,omitempty"`
	FinalPrice float64 `json:"final_price"`
}

type CreateCropRequest struct {
	SellerID     string  `json:"seller_id" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	CropType     string  `json:"crop_type"`
	Quantity     float64 `json:"quantity" binding:"required,gt=0"`
	Unit         string  `json:"unit"`
	PricePerUnit float64 `json:"price_per_unit" binding:"required,gt=0"`
	Location     string  `json:"location"`
	Description  string  `json:"description"`
}

type UpdateCropRequest struct {
	SellerID     string  `json:"seller_id" binding:"required"`
	Quantity     float64 `json:"quantity" binding:"required,gt=0"`
	PricePerUnit float64 `json:"price_per_unit" binding:"required,gt=0"`
	Description  string  `json:"description"`
}

type AwardPointsRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Action string `json:"action" binding:"required"`
}
