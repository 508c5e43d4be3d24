package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
	"github.com/what2do/eventsphere/internal/domain"
)

type FollowRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewFollowRepo(db *dbpg.DB) *FollowRepository {
	return &FollowRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Follow is idempotent.
func (r *FollowRepository) Follow(ctx context.Context, f *domain.Follow) error {
	query := `INSERT INTO follows (follower_id, following_id, created_at)
			  VALUES ($1, $2, $3)
			  ON CONFLICT (follower_id, following_id) DO NOTHING`

	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, f.FollowerID, f.FollowingID, f.CreatedAt)
	if err != nil {
		switch pgCode(err) {
		case pgForeignKeyViolation:
			return domain.ErrUserNotFound
		case pgCheckViolation:
			return fmt.Errorf("%w: cannot follow yourself", domain.ErrValidation)
		}
		return fmt.Errorf("insert follow: %w", err)
	}

	return nil
}

func (r *FollowRepository) Unfollow(ctx context.Context, followerID, followingID string) error {
	query := `DELETE FROM follows WHERE follower_id = $1 AND following_id = $2`

	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, followerID, followingID); err != nil {
		return fmt.Errorf("delete follow: %w", err)
	}

	return nil
}

func (r *FollowRepository) ListFollowing(ctx context.Context, followerID string) ([]string, error) {
	query := `SELECT following_id
			  FROM follows
			  WHERE follower_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, followerID)
	if err != nil {
		return nil, fmt.Errorf("list following: %w", err)
	}
	defer rows.Close()

	var res []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan following: %w", err)
		}
		res = append(res, id)
	}

	return res, rows.Err()
}

// ListActivity returns the latest "going" RSVPs of the given users on public
// published events.
func (r *FollowRepository) ListActivity(ctx context.Context, userIDs []string, limit int) ([]domain.FeedActivity, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	query := `SELECT a.user_id, u.username, a.updated_at, ` + eventColumns + `
			  FROM event_attendees a
			  JOIN users u ON u.id = a.user_id
			  JOIN events e ON e.id = a.event_id
			  WHERE a.user_id = ANY($1)
			    AND a.status = $2
			    AND e.status = $3
			    AND e.circle_id IS NULL
			  ORDER BY a.updated_at DESC
			  LIMIT $4`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		pq.StringArray(userIDs), domain.AttendanceGoing, domain.EventStatusPublished, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	defer rows.Close()

	var res []domain.FeedActivity
	for rows.Next() {
		var a domain.FeedActivity
		e, err := scanEvent(prefixedScanner{row: rows, prefix: []any{&a.UserID, &a.Username, &a.UpdatedAt}})
		if err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		a.Event = *e
		res = append(res, a)
	}

	return res, rows.Err()
}

// SuggestUsers returns users the follower does not follow yet.
func (r *FollowRepository) SuggestUsers(ctx context.Context, followerID string, limit int) ([]*domain.User, error) {
	query := `SELECT ` + userColumns + `
			  FROM users u
			  WHERE u.id <> $1
			    AND NOT EXISTS (SELECT 1 FROM follows f
			                    WHERE f.follower_id = $1 AND f.following_id = u.id)
			  ORDER BY u.created_at DESC
			  LIMIT $2`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, followerID, limit)
	if err != nil {
		return nil, fmt.Errorf("suggest users: %w", err)
	}
	defer rows.Close()

	var res []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		res = append(res, u)
	}

	return res, rows.Err()
}

// prefixedScanner lets scanEvent read rows that carry extra leading columns.
type prefixedScanner struct {
	row    rowScanner
	prefix []any
}

func (s prefixedScanner) Scan(dest ...any) error {
	return s.row.Scan(append(s.prefix, dest...)...)
}
