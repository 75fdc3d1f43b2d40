package ledger

import (
	"errors"
	"fmt"
	"math"
	"time"

	"agrastra/internal/marketerrors"
	"agrastra/internal/metrics"
	model "agrastra/internal/models"
	"agrastra/internal/store"
	"agrastra/utils"
)

// maxPlaceBidRetries bounds the optimistic-concurrency retry loop. A bid
// that still conflicts after this many attempts surfaces ErrConflict to the
// caller, who may retry safely.
const maxPlaceBidRetries = 5

// EventPublisher receives ledger lifecycle events for fan-out to live
// watchers. Publishing must not block the ledger.
type EventPublisher interface {
	BidPlaced(auctionID string, bid model.Bid, currentHighestBid float64, bidsCount int)
	AuctionClosed(auctionID, winnerID string, finalPrice float64)
}

// AuctionLedger owns the auction lifecycle: opening, bidding, settlement and
// reads. All mutations of an auction document go through the ledger; writes
// use the store's revision check so concurrent bidders on the same auction
// serialize, while different auctions proceed independently.
type AuctionLedger struct {
	db        store.AuctionDB
	publisher EventPublisher
	registry  *metrics.Registry
}

// NewAuctionLedger creates a new AuctionLedger instance. The publisher and
// registry may be nil; events and metrics are then skipped.
func NewAuctionLedger(db store.AuctionDB, publisher EventPublisher, registry *metrics.Registry) *AuctionLedger {
	return &AuctionLedger{
		db:        db,
		publisher: publisher,
		registry:  registry,
	}
}

// OpenAuction creates a new active auction for a crop lot. The auction
// accepts bids until createdAt + duration.
func (l *AuctionLedger) OpenAuction(sellerID, cropName string, quantity float64, unit, description string, startingPrice float64, duration time.Duration) (model.Auction, error) {
	if sellerID == "" || cropName == "" {
		return model.Auction{}, fmt.Errorf("ledger: %w - missing sellerID or cropName", marketerrors.ErrInvalidArgument)
	}
	if startingPrice <= 0 || math.IsInf(startingPrice, 0) || math.IsNaN(startingPrice) {
		return model.Auction{}, fmt.Errorf("ledger: %w - starting price must be a positive finite number", marketerrors.ErrInvalidArgument)
	}
	if quantity <= 0 {
		return model.Auction{}, fmt.Errorf("ledger: %w - non-positive quantity", marketerrors.ErrInvalidArgument)
	}
	if duration <= 0 {
		return model.Auction{}, fmt.Errorf("ledger: %w - non-positive duration", marketerrors.ErrInvalidArgument)
	}

	now := time.Now().UTC()
	auction := model.Auction{
		AuctionID:         utils.GenerateID(),
		SellerID:          sellerID,
		CropName:          cropName,
		Quantity:          quantity,
		Unit:              unit,
		Description:       description,
		StartingPrice:     startingPrice,
		CurrentHighestBid: startingPrice,
		Bids:              []model.Bid{},
		Status:            model.AuctionActive,
		CreatedAt:         now,
		EndTime:           now.Add(duration),
		UpdatedAt:         now,
	}

	if err := l.db.PutAuction(auction); err != nil {
		return model.Auction{}, fmt.Errorf("ledger: failed to open auction for seller %s: %w", sellerID, err)
	}

	if l.registry != nil {
		l.registry.AuctionsOpened.Inc()
	}
	return auction, nil
}

// PlaceBid validates and records a buyer's bid against an active auction.
// The read-validate-append-write cycle runs under the store's revision
// check; on a lost race the bid is re-validated against the fresh document,
// so a beaten bidder fails with ErrBidTooLow rather than clobbering the
// winner. Returns the accepted bid and the new highest-bid value.
func (l *AuctionLedger) PlaceBid(auctionID, buyerID, buyerName string, amount float64) (model.Bid, float64, error) {
	if auctionID == "" || buyerID == "" {
		return model.Bid{}, 0, fmt.Errorf("ledger: %w - missing auctionID or buyerID", marketerrors.ErrInvalidArgument)
	}
	if amount <= 0 || math.IsInf(amount, 0) || math.IsNaN(amount) {
		return model.Bid{}, 0, fmt.Errorf("ledger: %w - bid amount must be a positive finite number", marketerrors.ErrInvalidArgument)
	}

	start := time.Now()
	defer func() {
		if l.registry != nil {
			l.registry.PlaceBidSeconds.Observe(time.Since(start).Seconds())
		}
	}()

	for attempt := 0; attempt < maxPlaceBidRetries; attempt++ {
		auction, err := l.db.GetAuction(auctionID)
		if err != nil {
			return model.Bid{}, 0, fmt.Errorf("ledger: failed to load auction %s: %w", auctionID, err)
		}

		now := time.Now().UTC()
		if auction.Status != model.AuctionActive || auction.Expired(now) {
			l.countRejected("closed")
			return model.Bid{}, 0, fmt.Errorf("ledger: auction %s: %w", auctionID, marketerrors.ErrAuctionClosed)
		}
		if amount <= auction.CurrentHighestBid {
			l.countRejected("too_low")
			return model.Bid{}, 0, fmt.Errorf("ledger: %w - current highest bid is %.2f", marketerrors.ErrBidTooLow, auction.CurrentHighestBid)
		}

		bid := model.Bid{
			BidID:     utils.GenerateID(),
			BuyerID:   buyerID,
			BuyerName: buyerName,
			Amount:    amount,
			CreatedAt: now,
		}
		auction.Bids = append(auction.Bids, bid)
		auction.BidsCount = len(auction.Bids)
		auction.CurrentHighestBid = amount
		auction.UpdatedAt = now

		updated, err := l.db.UpdateAuction(auction)
		if errors.Is(err, marketerrors.ErrConflict) {
			// Lost the race; re-read and re-validate against the fresh state.
			l.countRetry()
			continue
		}
		if err != nil {
			return model.Bid{}, 0, fmt.Errorf("ledger: failed to record bid on auction %s: %w", auctionID, err)
		}

		if l.registry != nil {
			l.registry.BidsAccepted.Inc()
		}
		if l.publisher != nil {
			l.publisher.BidPlaced(auctionID, bid, updated.CurrentHighestBid, updated.BidsCount)
		}
		return bid, updated.CurrentHighestBid, nil
	}

	l.countRejected("conflict")
	return model.Bid{}, 0, fmt.Errorf("ledger: bid on auction %s gave up after %d attempts: %w", auctionID, maxPlaceBidRetries, marketerrors.ErrConflict)
}

// CloseAuction settles an active auction exactly once: marks it closed and
// records the winner (highest amount, earliest bid among equals). A repeat
// close observes ErrAlreadyClosed and the committed outcome stays put; the
// caller reads it back via GetAuctionState. Returns the winner (empty when
// no bids were placed) and the final price.
func (l *AuctionLedger) CloseAuction(auctionID string) (string, float64, error) {
	if auctionID == "" {
		return "", 0, fmt.Errorf("ledger: %w - empty auction ID", marketerrors.ErrInvalidArgument)
	}

	for attempt := 0; attempt < maxPlaceBidRetries; attempt++ {
		auction, err := l.db.GetAuction(auctionID)
		if err != nil {
			return "", 0, fmt.Errorf("ledger: failed to load auction %s: %w", auctionID, err)
		}
		if auction.Status == model.AuctionClosed {
			return "", 0, fmt.Errorf("ledger: auction %s: %w", auctionID, marketerrors.ErrAlreadyClosed)
		}

		now := time.Now().UTC()
		winnerID := ""
		finalPrice := auction.StartingPrice
		if winning, ok := winningBid(auction.Bids); ok {
			winnerID = winning.BuyerID
			finalPrice = winning.Amount
		}

		auction.Status = model.AuctionClosed
		auction.WinnerID = winnerID
		auction.ClosedAt = now
		auction.UpdatedAt = now

		if _, err := l.db.UpdateAuction(auction); err != nil {
			if errors.Is(err, marketerrors.ErrConflict) {
				// A concurrent bid or close committed first; re-read.
				l.countRetry()
				continue
			}
			return "", 0, fmt.Errorf("ledger: failed to close auction %s: %w", auctionID, err)
		}

		if l.registry != nil {
			l.registry.AuctionsClosed.Inc()
		}
		if l.publisher != nil {
			l.publisher.AuctionClosed(auctionID, winnerID, finalPrice)
		}
		return winnerID, finalPrice, nil
	}

	return "", 0, fmt.Errorf("ledger: close of auction %s gave up after %d attempts: %w", auctionID, maxPlaceBidRetries, marketerrors.ErrConflict)
}

// GetAuctionState returns the current persisted auction. No side effects.
func (l *AuctionLedger) GetAuctionState(auctionID string) (model.Auction, error) {
	if auctionID == "" {
		return model.Auction{}, fmt.Errorf("ledger: %w - empty auction ID", marketerrors.ErrInvalidArgument)
	}

	auction, err := l.db.GetAuction(auctionID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("ledger: failed to get auction %s: %w", auctionID, err)
	}
	return auction, nil
}

// ListAuctions returns auctions filtered by status ("" for all), newest first.
func (l *AuctionLedger) ListAuctions(status model.AuctionStatus) ([]model.Auction, error) {
	if status != "" && status != model.AuctionActive && status != model.AuctionClosed {
		return nil, fmt.Errorf("ledger: %w - unknown status %q", marketerrors.ErrInvalidArgument, status)
	}

	auctions, err := l.db.ListAuctions(status)
	if err != nil {
		return nil, fmt.Errorf("ledger: failed to list auctions: %w", err)
	}
	return auctions, nil
}

// winningBid picks the bid with the highest amount, breaking ties in favor
// of the earliest submission.
func winningBid(bids []model.Bid) (model.Bid, bool) {
	if len(bids) == 0 {
		return model.Bid{}, false
	}

	winning := bids[0]
	for _, b := range bids[1:] {
		if b.Amount > winning.Amount || (b.Amount == winning.Amount && b.CreatedAt.Before(winning.CreatedAt)) {
			winning = b
		}
	}
	return winning, true
}

func (l *AuctionLedger) countRejected(reason string) {
	if l.registry != nil {
		l.registry.BidsRejected.WithLabelValues(reason).Inc()
	}
}

func (l *AuctionLedger) countRetry() {
	if l.registry != nil {
		l.registry.BidConflictRetries.Inc()
	}
}
