package feed

import (
	"encoding/json"
	"sync"
	"time"

	model "agrastra/internal/models"
	"agrastra/utils"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
	sendBuffer = 256
)

// Event is the JSON payload pushed to auction watchers.
type Event struct {
	Type              string  `json:"type"` // bid_placed | auction_closed
	AuctionID         string  `json:"auction_id"`
	BidID             string  `json:"bid_id,omitempty"`
	BuyerName         string  `json:"buyer_name,omitempty"`
	Amount            float64 `json:"amount,omitempty"`
	CurrentHighestBid float64 `json:"current_highest_bid,omitempty"`
	BidsCount         int     `json:"bids_count,omitempty"`
	WinnerID          string  `json:"winner_id,omitempty"`
	FinalPrice        float64 `json:"final_price,omitempty"`
}

// Manager fans ledger events out to WebSocket clients watching an auction.
// A client whose send buffer fills is dropped so one slow reader cannot
// stall the broadcast.
type Manager struct {
	mu       sync.RWMutex
	watchers map[string]map[*client]bool // key: auctionID
}

type client struct {
	id        string
	auctionID string
	conn      *websocket.Conn
	send      chan []byte
}

// NewManager creates a new feed Manager instance
func NewManager() *Manager {
	return &Manager{
		watchers: make(map[string]map[*client]bool),
	}
}

// BidPlaced implements the ledger's event publisher for accepted bids.
func (m *Manager) BidPlaced(auctionID string, bid model.Bid, currentHighestBid float64, bidsCount int) {
	m.publish(auctionID, Event{
		Type:              "bid_placed",
		AuctionID:         auctionID,
		BidID:             bid.BidID,
		BuyerName:         bid.BuyerName,
		Amount:            bid.Amount,
		CurrentHighestBid: currentHighestBid,
		BidsCount:         bidsCount,
	})
}

// AuctionClosed implements the ledger's event publisher for settlement.
func (m *Manager) AuctionClosed(auctionID, winnerID string, finalPrice float64) {
	m.publish(auctionID, Event{
		Type:       "auction_closed",
		AuctionID:  auctionID,
		WinnerID:   winnerID,
		FinalPrice: finalPrice,
	})
}

// WatcherCount returns the number of clients watching an auction
func (m *Manager) WatcherCount(auctionID string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.watchers[auctionID])
}

func (m *Manager) publish(auctionID string, event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		utils.Error("feed: failed to marshal event", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	m.mu.RLock()
	var slow []*client
	for c := range m.watchers[auctionID] {
		select {
		case c.send <- payload:
		default:
			slow = append(slow, c)
		}
	}
	m.mu.RUnlock()

	for _, c := range slow {
		m.unregister(c)
	}
}

func (m *Manager) register(c *client) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watchers[c.auctionID] == nil {
		m.watchers[c.auctionID] = make(map[*client]bool)
	}
	m.watchers[c.auctionID][c] = true
}

func (m *Manager) unregister(c *client) {
	m.mu.Lock()
	set, ok := m.watchers[c.auctionID]
	if ok && set[c] {
		delete(set, c)
		if len(set) == 0 {
			delete(m.watchers, c.auctionID)
		}
		close(c.send)
	}
	m.mu.Unlock()

	if ok {
		c.conn.Close()
	}
}

// Attach registers an upgraded WebSocket connection as a watcher of the
// given auction and starts its read/write pumps. It returns immediately.
func (m *Manager) Attach(auctionID string, conn *websocket.Conn) {
	c := &client{
		id:        utils.GenerateID(),
		auctionID: auctionID,
		conn:      conn,
		send:      make(chan []byte, sendBuffer),
	}
	m.register(c)
	utils.Debug("feed: client attached", map[string]any{"client_id": c.id, "auction_id": auctionID})

	go c.writePump()
	go m.readPump(c)
}

// readPump drains client frames to surface disconnects; incoming payloads
// are ignored, the feed is one-way.
func (m *Manager) readPump(c *client) {
	defer m.unregister(c)

	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				utils.Warn("feed: client read error", map[string]any{"client_id": c.id, "error": err.Error()})
			}
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
