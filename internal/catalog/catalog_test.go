package catalog

import (
	"errors"
	"testing"
	"time"

	"agrastra/internal/marketerrors"
	model "agrastra/internal/models"
	"agrastra/internal/store"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Tests AddCrop
func TestCropCatalog_AddCrop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := store.NewMockCropDB(ctrl)
	catalog := NewCropCatalog(mockDB)

	now := time.Now().UTC()

	// Table-driven test cases
	tests := []struct {
		name          string
		sellerID      string
		cropName      string
		quantity      float64
		pricePerUnit  float64
		mockSetup     func()
		expectedError error
	}{
		{
			name:     "valid_crop",
			sellerID: "seller1", cropName: "wheat", quantity: 50, pricePerUnit: 2100,
			mockSetup: func() {
				mockDB.EXPECT().PutCrop(gomock.Any()).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "empty_sellerID",
			sellerID: "", cropName: "wheat", quantity: 50, pricePerUnit: 2100,
			mockSetup:     func() {},
			expectedError: marketerrors.ErrInvalidArgument,
		},
		{
			name:     "empty_crop_name",
			sellerID: "seller1", cropName: "", quantity: 50, pricePerUnit: 2100,
			mockSetup:     func() {},
			expectedError: marketerrors.ErrInvalidArgument,
		},
		{
			name:     "zero_quantity",
			sellerID: "seller1", cropName: "wheat", quantity: 0, pricePerUnit: 2100,
			mockSetup:     func() {},
			expectedError: marketerrors.ErrInvalidArgument,
		},
		{
			name:     "negative_price",
			sellerID: "seller1", cropName: "wheat", quantity: 50, pricePerUnit: -1,
			mockSetup:     func() {},
			expectedError: marketerrors.ErrInvalidArgument,
		},
		{
			name:     "store_write_fails",
			sellerID: "seller1", cropName: "wheat", quantity: 50, pricePerUnit: 2100,
			mockSetup: func() {
				mockDB.EXPECT().PutCrop(gomock.Any()).Return(errors.New("store write failed"))
			},
			expectedError: nil, // wrapped store error, no sentinel to match
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			crop, err := catalog.AddCrop(tc.sellerID, tc.cropName, "cereal", tc.quantity, "quintal", tc.pricePerUnit, "Nashik", "fresh harvest")

			if tc.expectedError != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				return
			}
			if tc.name == "store_write_fails" {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			_, parseErr := uuid.Parse(crop.CropID)
			require.NoError(t, parseErr, "CropID should be a valid UUID")
			require.Equal(t, tc.sellerID, crop.SellerID)
			require.Equal(t, tc.pricePerUnit, crop.PricePerUnit)
			require.WithinDuration(t, now, crop.CreatedAt, 2*time.Second)
		})
	}
}

// Tests UpdateCrop ownership check
func TestCropCatalog_UpdateCrop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := store.NewMockCropDB(ctrl)
	catalog := NewCropCatalog(mockDB)

	existing := model.Crop{CropID: "crop1", SellerID: "seller1", Name: "wheat", Quantity: 50, PricePerUnit: 2100}

	tests := []struct {
		name          string
		cropID        string
		sellerID      string
		mockSetup     func()
		expectedError error
	}{
		{
			name:   "owner_updates",
			cropID: "crop1", sellerID: "seller1",
			mockSetup: func() {
				mockDB.EXPECT().GetCrop("crop1").Return(existing, nil)
				mockDB.EXPECT().PutCrop(gomock.Any()).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:   "non_owner_rejected",
			cropID: "crop1", sellerID: "seller2",
			mockSetup: func() {
				mockDB.EXPECT().GetCrop("crop1").Return(existing, nil)
			},
			expectedError: marketerrors.ErrInvalidArgument,
		},
		{
			name:   "crop_not_found",
			cropID: "cropX", sellerID: "seller1",
			mockSetup: func() {
				mockDB.EXPECT().GetCrop("cropX").Return(model.Crop{}, marketerrors.ErrCropNotFound)
			},
			expectedError: marketerrors.ErrCropNotFound,
		},
		{
			name:   "empty_cropID",
			cropID: "", sellerID: "seller1",
			mockSetup:     func() {},
			expectedError: marketerrors.ErrInvalidArgument,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			crop, err := catalog.UpdateCrop(tc.cropID, tc.sellerID, 60, 2200, "updated lot")

			if tc.expectedError != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, 60.0, crop.Quantity)
			require.Equal(t, 2200.0, crop.PricePerUnit)
			require.Equal(t, "updated lot", crop.Description)
		})
	}
}

// Tests RemoveCrop
func TestCropCatalog_RemoveCrop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := store.NewMockCropDB(ctrl)
	catalog := NewCropCatalog(mockDB)

	existing := model.Crop{CropID: "crop1", SellerID: "seller1"}

	t.Run("owner_removes", func(t *testing.T) {
		mockDB.EXPECT().GetCrop("crop1").Return(existing, nil)
		mockDB.EXPECT().DeleteCrop("crop1").Return(nil)
		require.NoError(t, catalog.RemoveCrop("crop1", "seller1"))
	})

	t.Run("non_owner_rejected", func(t *testing.T) {
		mockDB.EXPECT().GetCrop("crop1").Return(existing, nil)
		err := catalog.RemoveCrop("crop1", "seller2")
		require.ErrorIs(t, err, marketerrors.ErrInvalidArgument)
	})

	t.Run("missing_crop", func(t *testing.T) {
		mockDB.EXPECT().GetCrop("cropX").Return(model.Crop{}, marketerrors.ErrCropNotFound)
		err := catalog.RemoveCrop("cropX", "seller1")
		require.ErrorIs(t, err, marketerrors.ErrCropNotFound)
	})
}

// Tests ListCrops
func TestCropCatalog_ListCrops(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := store.NewMockCropDB(ctrl)
	catalog := NewCropCatalog(mockDB)

	t.Run("passes_filter_through", func(t *testing.T) {
		filter := store.CropFilter{CropType: "cereal", MinPrice: 1000, MaxPrice: 3000, Limit: 5}
		mockDB.EXPECT().ListCrops(filter).Return([]model.Crop{{CropID: "crop1"}}, nil)

		crops, err := catalog.ListCrops(filter)
		require.NoError(t, err)
		require.Len(t, crops, 1)
	})

	t.Run("inverted_price_range_rejected", func(t *testing.T) {
		_, err := catalog.ListCrops(store.CropFilter{MinPrice: 3000, MaxPrice: 1000})
		require.ErrorIs(t, err, marketerrors.ErrInvalidArgument)
	})

	t.Run("store_error_wrapped", func(t *testing.T) {
		mockDB.EXPECT().ListCrops(gomock.Any()).Return(nil, errors.New("store scan failed"))
		_, err := catalog.ListCrops(store.CropFilter{})
		require.Error(t, err)
	})
}
