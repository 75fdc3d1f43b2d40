package feed

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	model "agrastra/internal/models"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

var testUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// dialWatcher spins up a test server that upgrades the request and attaches
// the connection to the manager, then dials it and returns the client side.
func dialWatcher(t *testing.T, manager *Manager, auctionID string) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		manager.Attach(auctionID, conn)
	}))
	t.Cleanup(srv.Close)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	waitForWatchers(t, manager, auctionID, 1)
	return conn
}

func waitForWatchers(t *testing.T, manager *Manager, auctionID string, want int) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if manager.WatcherCount(auctionID) >= want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("watcher count for %s never reached %d", auctionID, want)
}

func readEvent(t *testing.T, conn *websocket.Conn) Event {
	t.Helper()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var event Event
	require.NoError(t, json.Unmarshal(payload, &event))
	return event
}

func TestManager_BidPlacedReachesWatcher(t *testing.T) {
	manager := NewManager()
	conn := dialWatcher(t, manager, "auction1")

	bid := model.Bid{BidID: "bid1", BuyerID: "buyerA", BuyerName: "A", Amount: 2150, CreatedAt: time.Now().UTC()}
	manager.BidPlaced("auction1", bid, 2150, 1)

	event := readEvent(t, conn)
	require.Equal(t, "bid_placed", event.Type)
	require.Equal(t, "auction1", event.AuctionID)
	require.Equal(t, "bid1", event.BidID)
	require.Equal(t, "A", event.BuyerName)
	require.Equal(t, 2150.0, event.Amount)
	require.Equal(t, 2150.0, event.CurrentHighestBid)
	require.Equal(t, 1, event.BidsCount)
}

func TestManager_AuctionClosedReachesWatcher(t *testing.T) {
	manager := NewManager()
	conn := dialWatcher(t, manager, "auction1")

	manager.AuctionClosed("auction1", "buyerB", 2200)

	event := readEvent(t, conn)
	require.Equal(t, "auction_closed", event.Type)
	require.Equal(t, "auction1", event.AuctionID)
	require.Equal(t, "buyerB", event.WinnerID)
	require.Equal(t, 2200.0, event.FinalPrice)
}

func TestManager_EventsScopedToAuction(t *testing.T) {
	manager := NewManager()
	conn := dialWatcher(t, manager, "auction1")

	// An event for another auction must not reach this watcher.
	manager.AuctionClosed("auction2", "buyerX", 999)
	manager.AuctionClosed("auction1", "buyerB", 2200)

	event := readEvent(t, conn)
	require.Equal(t, "auction1", event.AuctionID)
	require.Equal(t, "buyerB", event.WinnerID)
}

func TestManager_DisconnectRemovesWatcher(t *testing.T) {
	manager := NewManager()
	conn := dialWatcher(t, manager, "auction1")

	require.Equal(t, 1, manager.WatcherCount("auction1"))
	conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if manager.WatcherCount("auction1") == 0 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("watcher was not removed after disconnect")
}

func TestManager_PublishWithoutWatchersIsNoop(t *testing.T) {
	manager := NewManager()

	// Must not panic or block.
	manager.BidPlaced("ghost", model.Bid{BidID: "bid1"}, 100, 1)
	manager.AuctionClosed("ghost", "buyerA", 100)
	require.Equal(t, 0, manager.WatcherCount("ghost"))
}
