package rewards

import (
	"errors"
	"fmt"
	"time"

	"agrastra/internal/marketerrors"
	model "agrastra/internal/models"
	"agrastra/internal/store"
)

// actionPoints is the fixed award per marketplace action.
var actionPoints = map[string]int{
	"crop_listing":          10,
	"auction_participation": 15,
	"equipment_rental":      8,
	"scheme_application":    12,
	"daily_login":           5,
}

// pointsPerLevel: a user gains a level for every 100 points.
const pointsPerLevel = 100

// RewardService defines the gamification business logic
type RewardService struct {
	db store.ProfileDB
}

// NewRewardService creates a new RewardService instance
func NewRewardService(db store.ProfileDB) *RewardService {
	return &RewardService{
		db: db,
	}
}

// AwardPoints credits a user for a marketplace action, creating the profile
// on first award, and returns the updated profile.
func (s *RewardService) AwardPoints(userID, action string) (model.RewardProfile, error) {
	if userID == "" {
		return model.RewardProfile{}, fmt.Errorf("rewards: %w - empty user ID", marketerrors.ErrInvalidArgument)
	}
	points, ok := actionPoints[action]
	if !ok {
		return model.RewardProfile{}, fmt.Errorf("rewards: %w - unknown action %q", marketerrors.ErrInvalidArgument, action)
	}

	profile, err := s.db.GetProfile(userID)
	if errors.Is(err, marketerrors.ErrProfileNotFound) {
		profile = model.RewardProfile{
			UserID:  userID,
			Level:   1,
			Actions: make(map[string]int),
		}
	} else if err != nil {
		return model.RewardProfile{}, fmt.Errorf("rewards: failed to load profile for user %s: %w", userID, err)
	}

	profile.Points += points
	profile.Level = 1 + profile.Points/pointsPerLevel
	profile.Actions[action]++
	profile.UpdatedAt = time.Now().UTC()

	if err := s.db.SaveProfile(profile); err != nil {
		return model.RewardProfile{}, fmt.Errorf("rewards: failed to save profile for user %s: %w", userID, err)
	}
	return profile, nil
}

// GetProfile returns a user's reward profile
func (s *RewardService) GetProfile(userID string) (model.RewardProfile, error) {
	if userID == "" {
		return model.RewardProfile{}, fmt.Errorf("rewards: %w - empty user ID", marketerrors.ErrInvalidArgument)
	}

	profile, err := s.db.GetProfile(userID)
	if err != nil {
		return model.RewardProfile{}, fmt.Errorf("rewards: failed to get profile for user %s: %w", userID, err)
	}
	return profile, nil
}

// PointsForAction reports the award for an action, for display purposes
func PointsForAction(action string) (int, bool) {
	points, ok := actionPoints[action]
	return points, ok
}
