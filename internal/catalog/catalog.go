package catalog

import (
	"fmt"
	"math"
	"time"

	"agrastra/internal/marketerrors"
	model "agrastra/internal/models"
	"agrastra/internal/store"
	"agrastra/utils"
)

// CropCatalog defines the business logic for crop listings
type CropCatalog struct {
	db store.CropDB
}

// NewCropCatalog creates a new CropCatalog instance
func NewCropCatalog(db store.CropDB) *CropCatalog {
	return &CropCatalog{
		db: db,
	}
}

// AddCrop validates and records a seller's crop listing
func (c *CropCatalog) AddCrop(sellerID, name, cropType string, quantity float64, unit string, pricePerUnit float64, location, description string) (model.Crop, error) {
	if sellerID == "" || name == "" {
		return model.Crop{}, fmt.Errorf("catalog: %w - missing sellerID or crop name", marketerrors.ErrInvalidArgument)
	}
	if quantity <= 0 {
		return model.Crop{}, fmt.Errorf("catalog: %w - non-positive quantity", marketerrors.ErrInvalidArgument)
	}
	if pricePerUnit <= 0 || math.IsInf(pricePerUnit, 0) || math.IsNaN(pricePerUnit) {
		return model.Crop{}, fmt.Errorf("catalog: %w - price per unit must be a positive finite number", marketerrors.ErrInvalidArgument)
	}

	crop := model.Crop{
		CropID:       utils.GenerateID(),
		SellerID:     sellerID,
		Name:         name,
		CropType:     cropType,
		Quantity:     quantity,
		Unit:         unit,
		PricePerUnit: pricePerUnit,
		Location:     location,
		Description:  description,
		CreatedAt:    time.Now().UTC(),
	}

	if err := c.db.PutCrop(crop); err != nil {
		return model.Crop{}, fmt.Errorf("catalog: failed to add crop for seller %s: %w", sellerID, err)
	}
	return crop, nil
}

// GetCrop returns a single crop listing
func (c *CropCatalog) GetCrop(cropID string) (model.Crop, error) {
	if cropID == "" {
		return model.Crop{}, fmt.Errorf("catalog: %w - empty crop ID", marketerrors.ErrInvalidArgument)
	}

	crop, err := c.db.GetCrop(cropID)
	if err != nil {
		return model.Crop{}, fmt.Errorf("catalog: failed to get crop %s: %w", cropID, err)
	}
	return crop, nil
}

// ListCrops returns crop listings matching the filter, newest first
func (c *CropCatalog) ListCrops(filter store.CropFilter) ([]model.Crop, error) {
	if filter.MinPrice > 0 && filter.MaxPrice > 0 && filter.MinPrice > filter.MaxPrice {
		return nil, fmt.Errorf("catalog: %w - min price exceeds max price", marketerrors.ErrInvalidArgument)
	}

	crops, err := c.db.ListCrops(filter)
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to list crops: %w", err)
	}
	return crops, nil
}

// UpdateCrop replaces the mutable fields of a listing. Only the listing's
// seller may update it.
func (c *CropCatalog) UpdateCrop(cropID, sellerID string, quantity, pricePerUnit float64, description string) (model.Crop, error) {
	if cropID == "" || sellerID == "" {
		return model.Crop{}, fmt.Errorf("catalog: %w - missing cropID or sellerID", marketerrors.ErrInvalidArgument)
	}
	if quantity <= 0 || pricePerUnit <= 0 {
		return model.Crop{}, fmt.Errorf("catalog: %w - non-positive quantity or price", marketerrors.ErrInvalidArgument)
	}

	crop, err := c.db.GetCrop(cropID)
	if err != nil {
		return model.Crop{}, fmt.Errorf("catalog: failed to get crop %s: %w", cropID, err)
	}
	if crop.SellerID != sellerID {
		return model.Crop{}, fmt.Errorf("catalog: %w - crop %s does not belong to seller %s", marketerrors.ErrInvalidArgument, cropID, sellerID)
	}

	crop.Quantity = quantity
	crop.PricePerUnit = pricePerUnit
	crop.Description = description

	if err := c.db.PutCrop(crop); err != nil {
		return model.Crop{}, fmt.Errorf("catalog: failed to update crop %s: %w", cropID, err)
	}
	return crop, nil
}

// RemoveCrop deletes a listing. Only the listing's seller may remove it.
func (c *CropCatalog) RemoveCrop(cropID, sellerID string) error {
	if cropID == "" || sellerID == "" {
		return fmt.Errorf("catalog: %w - missing cropID or sellerID", marketerrors.ErrInvalidArgument)
	}

	crop, err := c.db.GetCrop(cropID)
	if err != nil {
		return fmt.Errorf("catalog: failed to get crop %s: %w", cropID, err)
	}
	if crop.SellerID != sellerID {
		return fmt.Errorf("catalog: %w - crop %s does not belong to seller %s", marketerrors.ErrInvalidArgument, cropID, sellerID)
	}

	if err := c.db.DeleteCrop(cropID); err != nil {
		return fmt.Errorf("catalog: failed to remove crop %s: %w", cropID, err)
	}
	return nil
}
