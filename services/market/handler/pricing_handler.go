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

type PriceServiceInterface interface {
	MSP(crop string) (float64, error)
	AllMSP() map[string]float64
	Trends(crop, period string) ([]model.TrendPoint, error)
}

type PricingHandler struct {
	prices PriceServiceInterface
}

func NewPricingHandler(prices PriceServiceInterface) *PricingHandler {
	return &PricingHandler{prices: prices}
}

// GetMSPHandler handles GET /pricing/msp. With a crop query it returns that
// crop's MSP (404 when unknown); without, the full table.
func (h *PricingHandler) GetMSPHandler(c *gin.Context) {
	crop := c.Query("crop")

	if crop == "" {
		utils.JSONResponse(c, http.StatusOK, gin.H{
			"msp_data":     h.prices.AllMSP(),
			"unit":         "quintal",
			"last_updated": time.Now().UTC().Format(time.RFC3339),
		}, "MSP data retrieved successfully")
		return
	}

	price, err := h.prices.MSP(crop)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, err, "MSP not found for this crop")
		utils.Info("GetMSPHandler: no MSP entry", map[string]any{"crop": crop})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{
		"crop":         crop,
		"msp":          price,
		"unit":         "quintal",
		"last_updated": time.Now().UTC().Format(time.RFC3339),
	}, "MSP retrieved successfully")
	helpers.LogSuccess("GetMSPHandler", "MSP retrieved successfully", map[string]any{"crop": crop, "msp": price})
}

// GetTrendsHandler handles GET /pricing/trends/:crop
func (h *PricingHandler) GetTrendsHandler(c *gin.Context) {
	crop := c.Param("crop")
	period := c.DefaultQuery("period", "7d")

	trends, err := h.prices.Trends(crop, period)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetTrendsHandler: error generating trends", map[string]any{"crop": crop, "period": period, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{
		"crop":   crop,
		"period": period,
		"trends": trends,
	}, "trends retrieved successfully")
	helpers.LogSuccess("GetTrendsHandler", "trends retrieved successfully", map[string]any{
		"crop":   crop,
		"period": period,
		"points": len(trends),
	})
}
