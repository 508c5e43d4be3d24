package ports

import (
	"context"

	"github.com/what2do/eventsphere/internal/domain"
)

type FollowRepo interface {
	Follow(ctx context.Context, f *domain.Follow) error
	Unfollow(ctx context.Context, followerID, followingID string) error
	ListFollowing(ctx context.Context, followerID string) ([]string, error)
	ListActivity(ctx context.Context, userIDs []string, limit int) ([]domain.FeedActivity, error)
	SuggestUsers(ctx context.Context, followerID string, limit int) ([]*domain.User, error)
}
