package handler

import (
	"fmt"
	"net/http"
	"time"

	model "agrastra/internal/models"
	"agrastra/services/market/helpers"
	"agrastra/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=auction_handler.go -destination=mock_ledger.go -package=handler

type AuctionLedgerInterface interface {
	OpenAuction(sellerID, cropName string, quantity float64, unit, description string, startingPrice float64, duration time.Duration) (model.Auction, error)
	PlaceBid(auctionID, buyerID, buyerName string, amount float64) (model.Bid, float64, error)
	CloseAuction(auctionID string) (string, float64, error)
	GetAuctionState(auctionID string) (model.Auction, error)
	ListAuctions(status model.AuctionStatus) ([]model.Auction, error)
}

type AuctionHandler struct {
	ledger AuctionLedgerInterface
}

func NewAuctionHandler(ledger AuctionLedgerInterface) *AuctionHandler {
	return &AuctionHandler{ledger: ledger}
}

// CreateAuctionHandler handles POST /auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	auction, err := h.ledger.OpenAuction(req.SellerID, req.CropName, req.Quantity, req.Unit, req.Description,
		req.StartingPrice, time.Duration(req.DurationMinutes)*time.Minute)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateAuctionHandler: failed to open auction", map[string]any{
			"seller_id": req.SellerID,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, auction, "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id":     auction.AuctionID,
		"seller_id":      auction.SellerID,
		"starting_price": auction.StartingPrice,
	})
}

// ListAuctionsHandler handles GET /auctions
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	status := model.AuctionStatus(c.Query("status"))

	auctions, err := h.ledger.ListAuctions(status)
	if err != nil {
		httpStatus, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, httpStatus, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListAuctionsHandler: error listing auctions", map[string]any{"status": string(status), "error": err.Error()})
		return
	}

	if auctions == nil {
		auctions = []model.Auction{}
	}

	utils.JSONResponse(c, http.StatusOK, auctions, "auctions retrieved successfully")
	helpers.LogSuccess("ListAuctionsHandler", "auctions retrieved successfully", map[string]any{
		"status": string(status),
		"count":  len(auctions),
	})
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	auction, err := h.ledger.GetAuctionState(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionHandler: error retrieving auction", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, auction, "auction retrieved successfully")
	helpers.LogSuccess("GetAuctionHandler", "auction retrieved successfully", map[string]any{
		"auction_id": auction.AuctionID,
		"bids_count": auction.BidsCount,
	})
}

// PlaceBidHandler handles POST /auctions/:auction_id/bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, newHighest, err := h.ledger.PlaceBid(auctionID, req.BuyerID, req.BuyerName, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"auction_id": auctionID,
			"buyer_id":   req.BuyerID,
			"amount":     req.Amount,
			"error":      err.Error(),
		})
		return
	}

	resp := helpers.BidResponse{
		BidID:             bid.BidID,
		BuyerID:           bid.BuyerID,
		BuyerName:         bid.BuyerName,
		Amount:            bid.Amount,
		CreatedAt:         bid.CreatedAt.UTC().Format(time.RFC3339),
		CurrentHighestBid: newHighest,
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":     bid.BidID,
		"auction_id": auctionID,
		"buyer_id":   bid.BuyerID,
		"amount":     bid.Amount,
	})
}

// CloseAuctionHandler handles POST /auctions/:auction_id/close
func (h *AuctionHandler) CloseAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	winnerID, finalPrice, err := h.ledger.CloseAuction(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CloseAuctionHandler: failed to close auction", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return
	}

	resp := helpers.CloseAuctionResponse{
		AuctionID:  auctionID,
		WinnerID:   winnerID,
		FinalPrice: finalPrice,
	}

	utils.JSONResponse(c, http.StatusOK, resp, "auction closed successfully")
	helpers.LogSuccess("CloseAuctionHandler", "auction closed successfully", map[string]any{
		"auction_id":  auctionID,
		"winner_id":   winnerID,
		"final_price": finalPrice,
	})
}
