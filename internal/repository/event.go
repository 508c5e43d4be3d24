package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
	"github.com/what2do/eventsphere/internal/domain"
)

const eventColumns = `e.id, e.organizer_id, e.title, e.description, e.category, e.status,
		e.starts_at, e.location, e.price, e.max_attendees, e.circle_id, e.created_at, e.updated_at,
		(SELECT COUNT(*) FROM event_attendees a
		 WHERE a.event_id = e.id AND a.status = 'going') AS current_attendees`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, organizer_id, title, description, category, status,
			  	starts_at, location, price, max_attendees, circle_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.OrganizerID, e.Title, e.Description, e.Category, e.Status,
		e.StartsAt, e.Location, e.Price, e.MaxAttendees, e.CircleID, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if pgCode(err) == pgForeignKeyViolation {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events e
			  WHERE e.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || pgCode(err) == pgInvalidTextRepr {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

// ListPublished returns the public feed, by start date unless the filter
// asks for the most popular events first.
func (r *EventRepository) ListPublished(ctx context.Context, f domain.EventFilter, now time.Time) ([]*domain.Event, error) {
	orderBy := `e.starts_at ASC`
	if f.Sort == domain.EventSortPopular {
		orderBy = `current_attendees DESC, e.starts_at ASC`
	}

	query := `SELECT ` + eventColumns + `
			  FROM events e
			  WHERE e.status = $1
			    AND e.circle_id IS NULL
			    AND ($2 = '' OR e.category = $2)
			    AND (NOT $3 OR e.starts_at > $4)
			  ORDER BY ` + orderBy + `
			  LIMIT $5`

	limit := f.Limit
	if limit <= 0 {
		limit = 100
	}

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.EventStatusPublished, string(f.Category), f.UpcomingOnly, now, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// ListByOrganizer returns every event of an organizer, newest first.
func (r *EventRepository) ListByOrganizer(ctx context.Context, organizerID string) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events e
			  WHERE e.organizer_id = $1
			  ORDER BY e.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, organizerID)
	if err != nil {
		return nil, fmt.Errorf("list events by organizer: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// ListByOrganizers returns public published events of the given organizers,
// newest first.
func (r *EventRepository) ListByOrganizers(ctx context.Context, organizerIDs []string, limit int) ([]*domain.Event, error) {
	if len(organizerIDs) == 0 {
		return nil, nil
	}

	query := `SELECT ` + eventColumns + `
			  FROM events e
			  WHERE e.organizer_id = ANY($1)
			    AND e.status = $2
			    AND e.circle_id IS NULL
			  ORDER BY e.created_at DESC
			  LIMIT $3`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		pq.StringArray(organizerIDs), domain.EventStatusPublished, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list events by organizers: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// ListAttended returns published events the user either RSVPed "going" to or
// holds a confirmed purchase for.
func (r *EventRepository) ListAttended(ctx context.Context, userID string) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events e
			  WHERE e.status = $2
			    AND (
			      EXISTS (SELECT 1 FROM event_attendees a
			              WHERE a.event_id = e.id AND a.user_id = $1 AND a.status = 'going')
			      OR EXISTS (SELECT 1 FROM ticket_purchases p
			                 WHERE p.event_id = e.id AND p.user_id = $1 AND p.status = $3)
			    )
			  ORDER BY e.starts_at ASC`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		userID, domain.EventStatusPublished, domain.PurchaseStatusConfirmed,
	)
	if err != nil {
		return nil, fmt.Errorf("list attended events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

func (r *EventRepository) Publish(ctx context.Context, id, organizerID string) error {
	query := `UPDATE events
			  SET status = $3, updated_at = now()
			  WHERE id = $1 AND organizer_id = $2`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, organizerID, domain.EventStatusPublished)
	if err != nil {
		return fmt.Errorf("publish event: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("publish rows affected: %w", err)
	}
	if n == 0 {
		// Либо события нет, либо оно чужое
		if _, err = r.GetByID(ctx, id); err != nil {
			return err
		}
		return domain.ErrNotOrganizer
	}

	return nil
}

func (r *EventRepository) SetAttendance(ctx context.Context, a *domain.Attendance) error {
	query := `INSERT INTO event_attendees (event_id, user_id, status, updated_at)
			  VALUES ($1, $2, $3, $4)
			  ON CONFLICT (event_id, user_id)
			  DO UPDATE SET status = EXCLUDED.status, updated_at = EXCLUDED.updated_at`

	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, a.EventID, a.UserID, a.Status, a.UpdatedAt)
	if err != nil {
		if pgCode(err) == pgForeignKeyViolation {
			return fmt.Errorf("%w: unknown event or user", domain.ErrValidation)
		}
		return fmt.Errorf("upsert attendance: %w", err)
	}

	return nil
}

func (r *EventRepository) RemoveAttendance(ctx context.Context, eventID, userID string) error {
	query := `DELETE FROM event_attendees WHERE event_id = $1 AND user_id = $2`

	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, eventID, userID); err != nil {
		return fmt.Errorf("delete attendance: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var (
		e            domain.Event
		maxAttendees sql.NullInt64
		circleID     sql.NullString
	)
	if err := row.Scan(
		&e.ID, &e.OrganizerID, &e.Title, &e.Description, &e.Category, &e.Status,
		&e.StartsAt, &e.Location, &e.Price, &maxAttendees, &circleID, &e.CreatedAt, &e.UpdatedAt,
		&e.CurrentAttendees,
	); err != nil {
		return nil, err
	}
	if maxAttendees.Valid {
		v := int(maxAttendees.Int64)
		e.MaxAttendees = &v
	}
	if circleID.Valid {
		e.CircleID = &circleID.String
	}
	return &e, nil
}

func scanEvents(rows *sql.Rows) ([]*domain.Event, error) {
	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}
	return res, rows.Err()
}
