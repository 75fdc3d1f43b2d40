package store

import (
	model "agrastra/internal/models"
)

//go:generate mockgen -source=store.go -destination=mock_store.go -package=store

// AuctionDB is the auction document storage interface. An auction and its
// embedded bid list form one document; UpdateAuction replaces the whole
// document only if the caller's revision still matches the stored one.
type AuctionDB interface {
	PutAuction(auction model.Auction) error
	GetAuction(auctionID string) (model.Auction, error)
	UpdateAuction(auction model.Auction) (model.Auction, error)
	ListAuctions(status model.AuctionStatus) ([]model.Auction, error)
}

// CropFilter narrows a catalog listing. Zero values mean "no constraint".
type CropFilter struct {
	CropType string
	Location string
	MinPrice float64
	MaxPrice float64
	Limit    int
}

// CropDB is the crop catalog storage interface
type CropDB interface {
	PutCrop(crop model.Crop) error
	GetCrop(cropID string) (model.Crop, error)
	ListCrops(filter CropFilter) ([]model.Crop, error)
	DeleteCrop(cropID string) error
}

// ProfileDB is the reward profile storage interface
type ProfileDB interface {
	GetProfile(userID string) (model.RewardProfile, error)
	SaveProfile(profile model.RewardProfile) error
}
