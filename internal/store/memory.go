package store

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"agrastra/internal/marketerrors"
	model "agrastra/internal/models"
)

// MemoryStore is a concurrency-safe in-memory implementation of AuctionDB,
// CropDB and ProfileDB. Auction updates are guarded by a per-document
// revision: a writer holding a stale revision gets ErrConflict and must
// re-read.
type MemoryStore struct {
	mu       sync.RWMutex
	auctions map[string]model.Auction // key: auctionID
	crops    map[string]model.Crop    // key: cropID
	profiles map[string]model.RewardProfile
}

// NewMemoryStore creates a new in-memory store instance
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		auctions: make(map[string]model.Auction),
		crops:    make(map[string]model.Crop),
		profiles: make(map[string]model.RewardProfile),
	}
}

// PutAuction inserts a new auction document at revision 1.
func (s *MemoryStore) PutAuction(auction model.Auction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if auction.AuctionID == "" {
		return fmt.Errorf("put auction: %w - empty auction ID", marketerrors.ErrInvalidArgument)
	}
	if _, ok := s.auctions[auction.AuctionID]; ok {
		return fmt.Errorf("put auction %s: %w - duplicate auction ID", auction.AuctionID, marketerrors.ErrInvalidArgument)
	}

	auction.Revision = 1
	s.auctions[auction.AuctionID] = copyAuction(auction)
	return nil
}

// GetAuction returns a copy of the auction document including its revision.
func (s *MemoryStore) GetAuction(auctionID string) (model.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	auction, ok := s.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, marketerrors.ErrAuctionNotFound)
	}
	return copyAuction(auction), nil
}

// UpdateAuction replaces the stored document if the caller's revision matches
// the stored revision, bumping it on success. A stale revision yields
// ErrConflict; callers re-read and retry.
func (s *MemoryStore) UpdateAuction(auction model.Auction) (model.Auction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.auctions[auction.AuctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("update auction %s: %w", auction.AuctionID, marketerrors.ErrAuctionNotFound)
	}
	if stored.Revision != auction.Revision {
		return model.Auction{}, fmt.Errorf("update auction %s: revision %d is stale (stored %d): %w",
			auction.AuctionID, auction.Revision, stored.Revision, marketerrors.ErrConflict)
	}

	auction.Revision++
	s.auctions[auction.AuctionID] = copyAuction(auction)
	return copyAuction(auction), nil
}

// ListAuctions returns auctions matching the status filter ("" matches all),
// newest first.
func (s *MemoryStore) ListAuctions(status model.AuctionStatus) ([]model.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	auctions := make([]model.Auction, 0, len(s.auctions))
	for _, auction := range s.auctions {
		if status != "" && auction.Status != status {
			continue
		}
		auctions = append(auctions, copyAuction(auction))
	}

	sort.Slice(auctions, func(i, j int) bool {
		return auctions[i].CreatedAt.After(auctions[j].CreatedAt)
	})
	return auctions, nil
}

// PutCrop inserts or replaces a crop listing
func (s *MemoryStore) PutCrop(crop model.Crop) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if crop.CropID == "" {
		return fmt.Errorf("put crop: %w - empty crop ID", marketerrors.ErrInvalidArgument)
	}
	s.crops[crop.CropID] = crop
	return nil
}

// GetCrop returns a crop listing by ID
func (s *MemoryStore) GetCrop(cropID string) (model.Crop, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	crop, ok := s.crops[cropID]
	if !ok {
		return model.Crop{}, fmt.Errorf("get crop %s: %w", cropID, marketerrors.ErrCropNotFound)
	}
	return crop, nil
}

// ListCrops returns crop listings matching the filter, newest first.
func (s *MemoryStore) ListCrops(filter CropFilter) ([]model.Crop, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	crops := make([]model.Crop, 0, len(s.crops))
	for _, crop := range s.crops {
		if filter.CropType != "" && crop.CropType != filter.CropType {
			continue
		}
		if filter.Location != "" && !strings.HasPrefix(crop.Location, filter.Location) {
			continue
		}
		if filter.MinPrice > 0 && crop.PricePerUnit < filter.MinPrice {
			continue
		}
		if filter.MaxPrice > 0 && crop.PricePerUnit > filter.MaxPrice {
			continue
		}
		crops = append(crops, crop)
	}

	sort.Slice(crops, func(i, j int) bool {
		return crops[i].CreatedAt.After(crops[j].CreatedAt)
	})

	if filter.Limit > 0 && len(crops) > filter.Limit {
		crops = crops[:filter.Limit]
	}
	return crops, nil
}

// DeleteCrop removes a crop listing by ID
func (s *MemoryStore) DeleteCrop(cropID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.crops[cropID]; !ok {
		return fmt.Errorf("delete crop %s: %w", cropID, marketerrors.ErrCropNotFound)
	}
	delete(s.crops, cropID)
	return nil
}

// GetProfile returns a user's reward profile
func (s *MemoryStore) GetProfile(userID string) (model.RewardProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.profiles[userID]
	if !ok {
		return model.RewardProfile{}, fmt.Errorf("get profile %s: %w", userID, marketerrors.ErrProfileNotFound)
	}
	return copyProfile(profile), nil
}

// SaveProfile inserts or replaces a user's reward profile
func (s *MemoryStore) SaveProfile(profile model.RewardProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if profile.UserID == "" {
		return fmt.Errorf("save profile: %w - empty user ID", marketerrors.ErrInvalidArgument)
	}
	s.profiles[profile.UserID] = copyProfile(profile)
	return nil
}

// copyAuction deep-copies the embedded bid list so callers cannot mutate
// stored state through the returned slice.
func copyAuction(a model.Auction) model.Auction {
	a.Bids = append([]model.Bid(nil), a.Bids...)
	return a
}

func copyProfile(p model.RewardProfile) model.RewardProfile {
	actions := make(map[string]int, len(p.Actions))
	for k, v := range p.Actions {
		actions[k] = v
	}
	p.Actions = actions
	return p
}
