package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
	"github.com/what2do/eventsphere/internal/domain"
)

const circleColumns = `c.id, c.creator_id, c.name, c.description, c.is_private, c.created_at,
		(SELECT COUNT(*) FROM circle_members m WHERE m.circle_id = c.id) AS member_count`

type CircleRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCircleRepo(db *dbpg.DB) *CircleRepository {
	return &CircleRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create stores the circle and enrolls its creator as admin.
func (r *CircleRepository) Create(ctx context.Context, c *domain.Circle) error {
	return withTx(ctx, r.db, func(ctx context.Context) error {
		tx := txFromContext(ctx)

		query := `INSERT INTO circles (id, creator_id, name, description, is_private, created_at)
				  VALUES ($1, $2, $3, $4, $5, $6)`
		_, err := tx.ExecContext(ctx, query,
			c.ID, c.CreatorID, c.Name, c.Description, c.IsPrivate, c.CreatedAt,
		)
		if err != nil {
			if pgCode(err) == pgForeignKeyViolation {
				return domain.ErrUserNotFound
			}
			return fmt.Errorf("insert circle: %w", err)
		}

		member := `INSERT INTO circle_members (circle_id, user_id, role, joined_at)
				   VALUES ($1, $2, $3, $4)`
		if _, err = tx.ExecContext(ctx, member, c.ID, c.CreatorID, domain.CircleRoleAdmin, c.CreatedAt); err != nil {
			return fmt.Errorf("insert circle creator: %w", err)
		}

		c.MemberCount = 1
		return nil
	})
}

func (r *CircleRepository) GetByID(ctx context.Context, id string) (*domain.Circle, error) {
	query := `SELECT ` + circleColumns + `
			  FROM circles c
			  WHERE c.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get circle: %w", err)
	}

	c, err := scanCircle(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || pgCode(err) == pgInvalidTextRepr {
			return nil, domain.ErrCircleNotFound
		}
		return nil, fmt.Errorf("scan circle: %w", err)
	}

	return c, nil
}

// ListByMember returns the circles the user belongs to, newest first.
func (r *CircleRepository) ListByMember(ctx context.Context, userID string) ([]*domain.Circle, error) {
	query := `SELECT ` + circleColumns + `
			  FROM circles c
			  JOIN circle_members cm ON cm.circle_id = c.id
			  WHERE cm.user_id = $1
			  ORDER BY c.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list circles: %w", err)
	}
	defer rows.Close()

	var res []*domain.Circle
	for rows.Next() {
		c, err := scanCircle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan circle: %w", err)
		}
		res = append(res, c)
	}

	return res, rows.Err()
}

// GetMember returns domain.ErrNotCircleMember when the user is not enrolled.
func (r *CircleRepository) GetMember(ctx context.Context, circleID, userID string) (*domain.CircleMember, error) {
	query := `SELECT ` + memberColumns + `
			  FROM circle_members cm
			  JOIN users u ON u.id = cm.user_id
			  WHERE cm.circle_id = $1 AND cm.user_id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, circleID, userID)
	if err != nil {
		return nil, fmt.Errorf("get circle member: %w", err)
	}

	m, err := scanMember(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || pgCode(err) == pgInvalidTextRepr {
			return nil, domain.ErrNotCircleMember
		}
		return nil, fmt.Errorf("scan circle member: %w", err)
	}

	return m, nil
}

// ListMembers returns admins first, then members in join order.
func (r *CircleRepository) ListMembers(ctx context.Context, circleID string) ([]domain.CircleMember, error) {
	query := `SELECT ` + memberColumns + `
			  FROM circle_members cm
			  JOIN users u ON u.id = cm.user_id
			  WHERE cm.circle_id = $1
			  ORDER BY cm.role = 'admin' DESC, cm.joined_at ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, circleID)
	if err != nil {
		return nil, fmt.Errorf("list circle members: %w", err)
	}
	defer rows.Close()

	var res []domain.CircleMember
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scan circle member: %w", err)
		}
		res = append(res, *m)
	}

	return res, rows.Err()
}

// AddMember enrolls a user. Re-adding an existing member keeps their role.
func (r *CircleRepository) AddMember(ctx context.Context, m *domain.CircleMember) error {
	query := `INSERT INTO circle_members (circle_id, user_id, role, joined_at)
			  VALUES ($1, $2, $3, $4)
			  ON CONFLICT (circle_id, user_id) DO NOTHING`

	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, m.CircleID, m.UserID, m.Role, m.JoinedAt)
	if err != nil {
		if pgCode(err) == pgForeignKeyViolation {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("insert circle member: %w", err)
	}

	return nil
}

func (r *CircleRepository) RemoveMember(ctx context.Context, circleID, userID string) error {
	query := `DELETE FROM circle_members WHERE circle_id = $1 AND user_id = $2`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, circleID, userID)
	if err != nil {
		return fmt.Errorf("delete circle member: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("circle member rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrNotCircleMember
	}

	return nil
}

// ListEvents returns the circle's published events by start date.
func (r *CircleRepository) ListEvents(ctx context.Context, circleID string) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events e
			  WHERE e.circle_id = $1 AND e.status = $2
			  ORDER BY e.starts_at ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, circleID, domain.EventStatusPublished)
	if err != nil {
		return nil, fmt.Errorf("list circle events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

const memberColumns = `cm.circle_id, cm.user_id, u.username, u.full_name, cm.role, cm.joined_at`

func scanCircle(row rowScanner) (*domain.Circle, error) {
	var c domain.Circle
	if err := row.Scan(
		&c.ID, &c.CreatorID, &c.Name, &c.Description, &c.IsPrivate, &c.CreatedAt, &c.MemberCount,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

func scanMember(row rowScanner) (*domain.CircleMember, error) {
	var m domain.CircleMember
	if err := row.Scan(&m.CircleID, &m.UserID, &m.Username, &m.FullName, &m.Role, &m.JoinedAt); err != nil {
		return nil, err
	}
	return &m, nil
}
