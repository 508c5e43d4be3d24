package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/what2do/eventsphere/internal/clock"
	"github.com/what2do/eventsphere/internal/domain"
	"github.com/what2do/eventsphere/internal/service/ports/mocks"
)

type feedEnv struct {
	svc        *FeedService
	followRepo *mocks.MockFollowRepo
	eventRepo  *mocks.MockEventRepo
	userRepo   *mocks.MockUserRepo
}

func newFeedEnv(t *testing.T) *feedEnv {
	t.Helper()
	env := &feedEnv{
		followRepo: mocks.NewMockFollowRepo(t),
		eventRepo:  mocks.NewMockEventRepo(t),
		userRepo:   mocks.NewMockUserRepo(t),
	}
	env.svc = NewFeedService(env.followRepo, env.eventRepo, env.userRepo, clock.NewFixed(testNow))
	return env
}

func TestFeedService_Follow(t *testing.T) {
	env := newFeedEnv(t)

	env.userRepo.EXPECT().GetByID(mock.Anything, "u2").Return(&domain.User{ID: "u2"}, nil)
	env.followRepo.EXPECT().Follow(mock.Anything, &domain.Follow{
		FollowerID:  "u1",
		FollowingID: "u2",
		CreatedAt:   testNow,
	}).Return(nil)

	err := env.svc.Follow(context.Background(), "u1", "u2")

	require.NoError(t, err)
}

func TestFeedService_Follow_Self(t *testing.T) {
	env := newFeedEnv(t)

	err := env.svc.Follow(context.Background(), "u1", "u1")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestFeedService_Follow_UnknownUser(t *testing.T) {
	env := newFeedEnv(t)

	env.userRepo.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound)

	err := env.svc.Follow(context.Background(), "u1", "ghost")

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestFeedService_Unfollow(t *testing.T) {
	env := newFeedEnv(t)

	env.followRepo.EXPECT().Unfollow(mock.Anything, "u1", "u2").Return(nil)

	err := env.svc.Unfollow(context.Background(), "u1", "u2")

	require.NoError(t, err)
}

func TestFeedService_Feed(t *testing.T) {
	env := newFeedEnv(t)

	network := []string{"u2", "u3", "u1"}
	env.followRepo.EXPECT().ListFollowing(mock.Anything, "u1").Return([]string{"u2", "u3"}, nil)
	env.eventRepo.EXPECT().ListByOrganizers(mock.Anything, network, 20).
		Return([]*domain.Event{{ID: "e1", OrganizerID: "u2"}, {ID: "e2", OrganizerID: "u1"}}, nil)
	env.followRepo.EXPECT().ListActivity(mock.Anything, network, 10).Return([]domain.FeedActivity{
		{UserID: "u3", Event: domain.Event{ID: "e1"}},
	}, nil)
	env.followRepo.EXPECT().SuggestUsers(mock.Anything, "u1", 5).Return([]*domain.User{{ID: "u4"}}, nil)

	feed, err := env.svc.Feed(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, feed.Events, 2)
	assert.Equal(t, "e1", feed.Events[0].ID)
	require.Len(t, feed.Activity, 1)
	assert.Equal(t, "u3", feed.Activity[0].UserID)
	require.Len(t, feed.Suggested, 1)
	assert.Equal(t, "u4", feed.Suggested[0].ID)
}

func TestFeedService_Feed_NobodyFollowed(t *testing.T) {
	env := newFeedEnv(t)

	env.followRepo.EXPECT().ListFollowing(mock.Anything, "u1").Return(nil, nil)
	env.eventRepo.EXPECT().ListByOrganizers(mock.Anything, []string{"u1"}, 20).Return(nil, nil)
	env.followRepo.EXPECT().ListActivity(mock.Anything, []string{"u1"}, 10).Return(nil, nil)
	env.followRepo.EXPECT().SuggestUsers(mock.Anything, "u1", 5).Return(nil, nil)

	feed, err := env.svc.Feed(context.Background(), "u1")

	require.NoError(t, err)
	assert.NotNil(t, feed.Events)
	assert.NotNil(t, feed.Activity)
	assert.NotNil(t, feed.Suggested)
}

func TestFeedService_Feed_Errors(t *testing.T) {
	dbErr := errors.New("db error")
	tests := []struct {
		name  string
		setup func(env *feedEnv)
	}{
		{
			name: "following",
			setup: func(env *feedEnv) {
				env.followRepo.EXPECT().ListFollowing(mock.Anything, "u1").Return(nil, dbErr)
			},
		},
		{
			name: "events",
			setup: func(env *feedEnv) {
				env.followRepo.EXPECT().ListFollowing(mock.Anything, "u1").Return(nil, nil)
				env.eventRepo.EXPECT().ListByOrganizers(mock.Anything, mock.Anything, mock.Anything).Return(nil, dbErr)
			},
		},
		{
			name: "activity",
			setup: func(env *feedEnv) {
				env.followRepo.EXPECT().ListFollowing(mock.Anything, "u1").Return(nil, nil)
				env.eventRepo.EXPECT().ListByOrganizers(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
				env.followRepo.EXPECT().ListActivity(mock.Anything, mock.Anything, mock.Anything).Return(nil, dbErr)
			},
		},
		{
			name: "suggestions",
			setup: func(env *feedEnv) {
				env.followRepo.EXPECT().ListFollowing(mock.Anything, "u1").Return(nil, nil)
				env.eventRepo.EXPECT().ListByOrganizers(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
				env.followRepo.EXPECT().ListActivity(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
				env.followRepo.EXPECT().SuggestUsers(mock.Anything, "u1", 5).Return(nil, dbErr)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newFeedEnv(t)
			tt.setup(env)

			_, err := env.svc.Feed(context.Background(), "u1")

			assert.ErrorIs(t, err, dbErr)
		})
	}
}
