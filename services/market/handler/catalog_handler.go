package handler

import (
	"fmt"
	"net/http"
	"strconv"

	model "agrastra/internal/models"
	"agrastra/internal/store"
	"agrastra/services/market/helpers"
	"agrastra/utils"

	"github.com/gin-gonic/gin"
)

type CropCatalogInterface interface {
	AddCrop(sellerID, name, cropType string, quantity float64, unit string, pricePerUnit float64, location, description string) (model.Crop, error)
	GetCrop(cropID string) (model.Crop, error)
	ListCrops(filter store.CropFilter) ([]model.Crop, error)
	UpdateCrop(cropID, sellerID string, quantity, pricePerUnit float64, description string) (model.Crop, error)
	RemoveCrop(cropID, sellerID string) error
}

type CatalogHandler struct {
	catalog CropCatalogInterface
}

func NewCatalogHandler(catalog CropCatalogInterface) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// CreateCropHandler handles POST /crops
func (h *CatalogHandler) CreateCropHandler(c *gin.Context) {
	var req helpers.CreateCropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateCropHandler", err)
		return
	}

	crop, err := h.catalog.AddCrop(req.SellerID, req.Name, req.CropType, req.Quantity, req.Unit,
		req.PricePerUnit, req.Location, req.Description)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateCropHandler: failed to add crop", map[string]any{
			"seller_id": req.SellerID,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, crop, "crop listed successfully")
	helpers.LogSuccess("CreateCropHandler", "crop listed successfully", map[string]any{
		"crop_id":   crop.CropID,
		"seller_id": crop.SellerID,
	})
}

// ListCropsHandler handles GET /crops
func (h *CatalogHandler) ListCropsHandler(c *gin.Context) {
	filter := store.CropFilter{
		CropType: c.Query("category"),
		Location: c.Query("location"),
		MinPrice: parseFloatQuery(c, "min_price"),
		MaxPrice: parseFloatQuery(c, "max_price"),
	}
	if raw := c.Query("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil {
			filter.Limit = limit
		}
	}

	crops, err := h.catalog.ListCrops(filter)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListCropsHandler: error listing crops", map[string]any{"error": err.Error()})
		return
	}

	if crops == nil {
		crops = []model.Crop{}
	}

	utils.JSONResponse(c, http.StatusOK, crops, "crops retrieved successfully")
	helpers.LogSuccess("ListCropsHandler", "crops retrieved successfully", map[string]any{
		"count": len(crops),
	})
}

// GetCropHandler handles GET /crops/:crop_id
func (h *CatalogHandler) GetCropHandler(c *gin.Context) {
	cropID := c.Param("crop_id")

	crop, err := h.catalog.GetCrop(cropID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetCropHandler: error retrieving crop", map[string]any{"crop_id": cropID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, crop, "crop retrieved successfully")
	helpers.LogSuccess("GetCropHandler", "crop retrieved successfully", map[string]any{"crop_id": crop.CropID})
}

// UpdateCropHandler handles PUT /crops/:crop_id
func (h *CatalogHandler) UpdateCropHandler(c *gin.Context) {
	cropID := c.Param("crop_id")

	var req helpers.UpdateCropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateCropHandler", err)
		return
	}

	crop, err := h.catalog.UpdateCrop(cropID, req.SellerID, req.Quantity, req.PricePerUnit, req.Description)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UpdateCropHandler: failed to update crop", map[string]any{
			"crop_id":   cropID,
			"seller_id": req.SellerID,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, crop, "crop updated successfully")
	helpers.LogSuccess("UpdateCropHandler", "crop updated successfully", map[string]any{"crop_id": crop.CropID})
}

// DeleteCropHandler handles DELETE /crops/:crop_id
func (h *CatalogHandler) DeleteCropHandler(c *gin.Context) {
	cropID := c.Param("crop_id")
	sellerID := c.Query("seller_id")

	if err := h.catalog.RemoveCrop(cropID, sellerID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("DeleteCropHandler: failed to remove crop", map[string]any{
			"crop_id":   cropID,
			"seller_id": sellerID,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"crop_id": cropID}, "crop removed successfully")
	helpers.LogSuccess("DeleteCropHandler", "crop removed successfully", map[string]any{"crop_id": cropID})
}

func parseFloatQuery(c *gin.Context, key string) float64 {
	raw := c.Query(key)
	if raw == "" {
		return 0
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return value
}
