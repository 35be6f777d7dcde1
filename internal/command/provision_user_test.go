package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/beliefted/beliefted-server/internal/datasources/mocks"
	"github.com/beliefted/beliefted-server/internal/domain"
)

func TestProvisionUser_Execute(t *testing.T) {
	upserter := mocks.NewMockUserUpserter(t)
	fetcher := mocks.NewMockUserFetcher(t)

	upserter.EXPECT().UpsertUser(mock.Anything, domain.User{
		ID:          "auth0|1",
		DisplayName: "Grace Hopper",
		Username:    "grace.h",
		CreatedAt:   testTime(),
	}).Return(nil)
	fetcher.EXPECT().FetchUser(mock.Anything, "auth0|1").
		Return(domain.User{ID: "auth0|1", Username: "grace.h", FollowerCount: 2}, nil)

	cmd := NewProvisionUser(upserter, fetcher)
	cmd.now = testTime

	user, err := cmd.Execute(testContext(), ProvisionUserRequest{
		UserID: "auth0|1", DisplayName: " Grace Hopper ", Username: "Grace.H",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, user.FollowerCount)
}

func TestProvisionUser_Execute_Rejects(t *testing.T) {
	t.Run("username_taken", func(t *testing.T) {
		upserter := mocks.NewMockUserUpserter(t)
		upserter.EXPECT().UpsertUser(mock.Anything, mock.Anything).Return(domain.ErrUsernameTaken)

		cmd := NewProvisionUser(upserter, mocks.NewMockUserFetcher(t))
		_, err := cmd.Execute(testContext(), ProvisionUserRequest{UserID: "u1", DisplayName: "A", Username: "a"})
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("invalid_username", func(t *testing.T) {
		cmd := NewProvisionUser(mocks.NewMockUserUpserter(t), mocks.NewMockUserFetcher(t))
		_, err := cmd.Execute(testContext(), ProvisionUserRequest{UserID: "u1", DisplayName: "A", Username: "a@b"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("missing_display_name", func(t *testing.T) {
		cmd := NewProvisionUser(mocks.NewMockUserUpserter(t), mocks.NewMockUserFetcher(t))
		_, err := cmd.Execute(testContext(), ProvisionUserRequest{UserID: "u1", Username: "a"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
