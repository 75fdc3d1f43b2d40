package rewards

import (
	"errors"
	"testing"

	"agrastra/internal/marketerrors"
	model "agrastra/internal/models"
	"agrastra/internal/store"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

// Tests AwardPoints
func TestRewardService_AwardPoints(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := store.NewMockProfileDB(ctrl)
	svc := NewRewardService(mockDB)

	tests := []struct {
		name          string
		userID        string
		action        string
		mockSetup     func()
		expectedError error
		wantPoints    int
		wantLevel     int
	}{
		{
			name:   "first_award_creates_profile",
			userID: "user1", action: "crop_listing",
			mockSetup: func() {
				mockDB.EXPECT().GetProfile("user1").Return(model.RewardProfile{}, marketerrors.ErrProfileNotFound)
				mockDB.EXPECT().SaveProfile(gomock.Any()).Return(nil)
			},
			wantPoints: 10, wantLevel: 1,
		},
		{
			name:   "accumulates_and_levels_up",
			userID: "user2", action: "auction_participation",
			mockSetup: func() {
				mockDB.EXPECT().GetProfile("user2").Return(model.RewardProfile{
					UserID: "user2", Points: 95, Level: 1,
					Actions: map[string]int{"crop_listing": 9, "daily_login": 1},
				}, nil)
				mockDB.EXPECT().SaveProfile(gomock.Any()).Return(nil)
			},
			wantPoints: 110, wantLevel: 2,
		},
		{
			name:   "unknown_action",
			userID: "user1", action: "bribery",
			mockSetup:     func() {},
			expectedError: marketerrors.ErrInvalidArgument,
		},
		{
			name:   "empty_userID",
			userID: "", action: "daily_login",
			mockSetup:     func() {},
			expectedError: marketerrors.ErrInvalidArgument,
		},
		{
			name:   "store_read_fails",
			userID: "user3", action: "daily_login",
			mockSetup: func() {
				mockDB.EXPECT().GetProfile("user3").Return(model.RewardProfile{}, errors.New("store read failed"))
			},
			expectedError: nil, // wrapped store error
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			profile, err := svc.AwardPoints(tc.userID, tc.action)

			if tc.expectedError != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				return
			}
			if tc.name == "store_read_fails" {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.wantPoints, profile.Points)
			require.Equal(t, tc.wantLevel, profile.Level)
			require.Equal(t, 1, profile.Actions[tc.action])
		})
	}
}

// End-to-end over the real store: repeated awards accumulate.
func TestRewardService_AwardPointsAccumulates(t *testing.T) {
	t.Parallel()

	svc := NewRewardService(store.NewMemoryStore())

	for i := 0; i < 10; i++ {
		_, err := svc.AwardPoints("user1", "auction_participation")
		require.NoError(t, err)
	}

	profile, err := svc.GetProfile("user1")
	require.NoError(t, err)
	require.Equal(t, 150, profile.Points)
	require.Equal(t, 2, profile.Level)
	require.Equal(t, 10, profile.Actions["auction_participation"])
}

// Tests GetProfile
func TestRewardService_GetProfile(t *testing.T) {
	t.Parallel()

	svc := NewRewardService(store.NewMemoryStore())

	_, err := svc.GetProfile("ghost")
	require.ErrorIs(t, err, marketerrors.ErrProfileNotFound)

	_, err = svc.GetProfile("")
	require.ErrorIs(t, err, marketerrors.ErrInvalidArgument)
}

// Tests PointsForAction
func TestPointsForAction(t *testing.T) {
	t.Parallel()

	points, ok := PointsForAction("scheme_application")
	require.True(t, ok)
	require.Equal(t, 12, points)

	_, ok = PointsForAction("unknown")
	require.False(t, ok)
}
