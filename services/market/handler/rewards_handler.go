package handler

import (
	"fmt"
	"net/http"

	model "agrastra/internal/models"
	"agrastra/services/market/helpers"
	"agrastra/utils"

	"github.com/gin-gonic/gin"
)

type RewardServiceInterface interface {
	AwardPoints(userID, action string) (model.RewardProfile, error)
	GetProfile(userID string) (model.RewardProfile, error)
}

type RewardsHandler struct {
	rewards RewardServiceInterface
}

func NewRewardsHandler(rewards RewardServiceInterface) *RewardsHandler {
	return &RewardsHandler{rewards: rewards}
}

// AwardPointsHandler handles POST /rewards/award
func (h *RewardsHandler) AwardPointsHandler(c *gin.Context) {
	var req helpers.AwardPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AwardPointsHandler", err)
		return
	}

	profile, err := h.rewards.AwardPoints(req.UserID, req.Action)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("AwardPointsHandler: failed to award points", map[string]any{
			"user_id": req.UserID,
			"action":  req.Action,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, profile, "points awarded successfully")
	helpers.LogSuccess("AwardPointsHandler", "points awarded successfully", map[string]any{
		"user_id": profile.UserID,
		"action":  req.Action,
		"points":  profile.Points,
		"level":   profile.Level,
	})
}

// GetProfileHandler handles GET /rewards/profile/:user_id
func (h *RewardsHandler) GetProfileHandler(c *gin.Context) {
	userID := c.Param("user_id")

	profile, err := h.rewards.GetProfile(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetProfileHandler: error retrieving profile", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, profile, "profile retrieved successfully")
	helpers.LogSuccess("GetProfileHandler", "profile retrieved successfully", map[string]any{
		"user_id": profile.UserID,
		"points":  profile.Points,
	})
}
