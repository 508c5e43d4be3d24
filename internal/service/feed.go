package service

import (
	"context"
	"fmt"

	"github.com/what2do/eventsphere/internal/clock"
	"github.com/what2do/eventsphere/internal/domain"
	"github.com/what2do/eventsphere/internal/service/ports"
)

const (
	feedEventsLimit    = 20
	feedActivityLimit  = 10
	feedSuggestedLimit = 5
)

// FeedService keeps the follow graph and builds the personal feed from it.
type FeedService struct {
	followRepo ports.FollowRepo
	eventRepo  ports.EventRepo
	userRepo   ports.UserRepo
	clock      clock.Clock
}

func NewFeedService(followRepo ports.FollowRepo, eventRepo ports.EventRepo, userRepo ports.UserRepo, clk clock.Clock) *FeedService {
	return &FeedService{
		followRepo: followRepo,
		eventRepo:  eventRepo,
		userRepo:   userRepo,
		clock:      clk,
	}
}

func (s *FeedService) Follow(ctx context.Context, followerID, followingID string) error {
	if followerID == followingID {
		return fmt.Errorf("%w: cannot follow yourself", domain.ErrValidation)
	}
	if _, err := s.userRepo.GetByID(ctx, followingID); err != nil {
		return fmt.Errorf("get user: %w", err)
	}

	f := &domain.Follow{
		FollowerID:  followerID,
		FollowingID: followingID,
		CreatedAt:   s.clock.Now(),
	}
	if err := s.followRepo.Follow(ctx, f); err != nil {
		return fmt.Errorf("follow: %w", err)
	}
	return nil
}

func (s *FeedService) Unfollow(ctx context.Context, followerID, followingID string) error {
	if err := s.followRepo.Unfollow(ctx, followerID, followingID); err != nil {
		return fmt.Errorf("unfollow: %w", err)
	}
	return nil
}

// Feed lists recent events organized by the reader and the people they
// follow, what those people are going to, and users worth following.
func (s *FeedService) Feed(ctx context.Context, userID string) (*domain.Feed, error) {
	following, err := s.followRepo.ListFollowing(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list following: %w", err)
	}
	network := make([]string, 0, len(following)+1)
	network = append(network, following...)
	network = append(network, userID)

	events, err := s.eventRepo.ListByOrganizers(ctx, network, feedEventsLimit)
	if err != nil {
		return nil, fmt.Errorf("list feed events: %w", err)
	}

	activity, err := s.followRepo.ListActivity(ctx, network, feedActivityLimit)
	if err != nil {
		return nil, fmt.Errorf("list feed activity: %w", err)
	}

	suggested, err := s.followRepo.SuggestUsers(ctx, userID, feedSuggestedLimit)
	if err != nil {
		return nil, fmt.Errorf("suggest users: %w", err)
	}

	feed := &domain.Feed{
		Events:    make([]domain.Event, 0, len(events)),
		Activity:  activity,
		Suggested: make([]domain.User, 0, len(suggested)),
	}
	for _, e := range events {
		feed.Events = append(feed.Events, *e)
	}
	for _, u := range suggested {
		feed.Suggested = append(feed.Suggested, *u)
	}
	if feed.Activity == nil {
		feed.Activity = []domain.FeedActivity{}
	}

	return feed, nil
}
