package handler

import (
	"fmt"
	"net/http"

	"agrastra/internal/feed"
	"agrastra/services/market/helpers"
	"agrastra/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// The boundary trusts its callers; origin checks belong to a
		// fronting proxy.
		return true
	},
}

type FeedHandler struct {
	ledger  AuctionLedgerInterface
	manager *feed.Manager
}

func NewFeedHandler(ledger AuctionLedgerInterface, manager *feed.Manager) *FeedHandler {
	return &FeedHandler{ledger: ledger, manager: manager}
}

// WatchAuctionHandler handles GET /ws/auctions/:auction_id. It upgrades the
// connection and streams bid/close events for the auction.
func (h *FeedHandler) WatchAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	if _, err := h.ledger.GetAuctionState(auctionID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("WatchAuctionHandler: auction lookup failed", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		utils.Warn("WatchAuctionHandler: upgrade failed", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	h.manager.Attach(auctionID, conn)
	helpers.LogSuccess("WatchAuctionHandler", "watcher attached", map[string]any{
		"auction_id": auctionID,
		"watchers":   h.manager.WatcherCount(auctionID),
	})
}
