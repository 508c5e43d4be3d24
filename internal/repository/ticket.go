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

const purchaseColumns = `p.id, p.user_id, p.event_id, p.ticket_type_id, p.quantity,
		p.unit_price, p.total_price, p.status, p.payment_method, p.payment_reference,
		p.created_at, p.updated_at`

type TicketRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTicketRepo(db *dbpg.DB) *TicketRepository {
	return &TicketRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *TicketRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, r.db, fn)
}

func (r *TicketRepository) CreateTicketType(ctx context.Context, tt *domain.TicketType) error {
	query := `INSERT INTO ticket_types (id, event_id, name, description, price,
			  	quantity_available, quantity_sold, is_active, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		tt.ID, tt.EventID, tt.Name, tt.Description, tt.Price,
		tt.QuantityAvailable, tt.QuantitySold, tt.IsActive, tt.CreatedAt,
	)
	if err != nil {
		if pgCode(err) == pgForeignKeyViolation {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("insert ticket type: %w", err)
	}

	return nil
}

func (r *TicketRepository) GetTicketType(ctx context.Context, id string) (*domain.TicketType, error) {
	query := `SELECT id, event_id, name, description, price,
			  	quantity_available, quantity_sold, is_active, created_at
			  FROM ticket_types
			  WHERE id = $1`

	var tt domain.TicketType
	err := r.queryRow(ctx, query, id).Scan(
		&tt.ID, &tt.EventID, &tt.Name, &tt.Description, &tt.Price,
		&tt.QuantityAvailable, &tt.QuantitySold, &tt.IsActive, &tt.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTicketTypeNotFound
		}
		if isConflict(err) {
			return nil, errConflict(err)
		}
		return nil, fmt.Errorf("get ticket type: %w", err)
	}

	return &tt, nil
}

func (r *TicketRepository) ListTicketTypes(ctx context.Context, eventID string) ([]*domain.TicketType, error) {
	query := `SELECT id, event_id, name, description, price,
			  	quantity_available, quantity_sold, is_active, created_at
			  FROM ticket_types
			  WHERE event_id = $1 AND is_active
			  ORDER BY price ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list ticket types: %w", err)
	}
	defer rows.Close()

	var res []*domain.TicketType
	for rows.Next() {
		var tt domain.TicketType
		if err = rows.Scan(
			&tt.ID, &tt.EventID, &tt.Name, &tt.Description, &tt.Price,
			&tt.QuantityAvailable, &tt.QuantitySold, &tt.IsActive, &tt.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan ticket type: %w", err)
		}
		res = append(res, &tt)
	}

	return res, rows.Err()
}

// CompareAndSetSold moves quantity_sold from expected to next. If another
// writer changed the row first nothing is written and
// domain.ErrConcurrencyConflict is returned.
func (r *TicketRepository) CompareAndSetSold(ctx context.Context, id string, expected, next int) error {
	query := `UPDATE ticket_types
			  SET quantity_sold = $3
			  WHERE id = $1 AND quantity_sold = $2`

	res, err := r.exec(ctx, query, id, expected, next)
	if err != nil {
		switch {
		case isConflict(err):
			return errConflict(err)
		case pgCode(err) == pgCheckViolation:
			return domain.ErrInsufficientInventory
		}
		return fmt.Errorf("update quantity sold: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("quantity sold rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: ticket type %s changed since read", domain.ErrConcurrencyConflict, id)
	}

	return nil
}

// CreatePurchase stores the purchase and its tickets.
func (r *TicketRepository) CreatePurchase(ctx context.Context, p *domain.Purchase) error {
	return r.WithTx(ctx, func(ctx context.Context) error {
		query := `INSERT INTO ticket_purchases (id, user_id, event_id, ticket_type_id, quantity,
				  	unit_price, total_price, status, payment_method, payment_reference, created_at, updated_at)
				  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

		_, err := r.exec(ctx, query,
			p.ID, p.UserID, p.EventID, p.TicketTypeID, p.Quantity,
			p.UnitPrice, p.TotalPrice, p.Status, p.PaymentMethod, p.PaymentReference,
			p.CreatedAt, p.UpdatedAt,
		)
		if err != nil {
			if isConflict(err) {
				return errConflict(err)
			}
			if pgCode(err) == pgForeignKeyViolation {
				return domain.ErrUserNotFound
			}
			return fmt.Errorf("insert purchase: %w", err)
		}

		ticketQuery := `INSERT INTO tickets (id, purchase_id, code, is_used)
						VALUES ($1, $2, $3, false)`
		for _, t := range p.Tickets {
			if _, err = r.exec(ctx, ticketQuery, t.ID, p.ID, t.Code); err != nil {
				if isConflict(err) {
					return errConflict(err)
				}
				return fmt.Errorf("insert ticket: %w", err)
			}
		}

		return nil
	})
}

func (r *TicketRepository) GetPurchase(ctx context.Context, id string) (*domain.Purchase, error) {
	query := `SELECT ` + purchaseColumns + `
			  FROM ticket_purchases p
			  WHERE p.id = $1`

	p, err := scanPurchase(r.queryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPurchaseNotFound
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}

	return p, nil
}

// Confirm atomically moves a pending purchase created at or after notBefore
// to confirmed.
func (r *TicketRepository) Confirm(ctx context.Context, purchaseID, userID string, notBefore time.Time) error {
	query := `UPDATE ticket_purchases
			  SET status = $4, updated_at = now()
			  WHERE id = $1
			    AND user_id = $2
			    AND status = $3
			    AND created_at >= $5`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		purchaseID, userID, domain.PurchaseStatusPending, domain.PurchaseStatusConfirmed, notBefore,
	)
	if err != nil {
		return fmt.Errorf("confirm purchase: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("purchase rows affected: %w", err)
	}
	if n == 0 {
		// Определяем причину: покупка не найдена, не pending или истекла
		p, err := r.GetPurchase(ctx, purchaseID)
		if err != nil {
			return err
		}
		if p.UserID != userID {
			return domain.ErrPurchaseNotFound
		}
		if p.Status != domain.PurchaseStatusPending {
			return domain.ErrPurchaseNotPending
		}
		return domain.ErrPurchaseExpired
	}

	return nil
}

// CancelExpired cancels pending purchases created before the cutoff and
// returns their tickets to inventory.
func (r *TicketRepository) CancelExpired(ctx context.Context, before time.Time) ([]*domain.Purchase, error) {
	var res []*domain.Purchase

	err := r.WithTx(ctx, func(ctx context.Context) error {
		tx := txFromContext(ctx)

		query := `UPDATE ticket_purchases p
				  SET status = $2, updated_at = now()
				  WHERE p.status = $1 AND p.created_at < $3
				  RETURNING ` + purchaseColumns

		rows, err := tx.QueryContext(ctx, query,
			domain.PurchaseStatusPending, domain.PurchaseStatusCancelled, before,
		)
		if err != nil {
			return fmt.Errorf("cancel expired: %w", err)
		}
		res, err = scanPurchases(rows)
		if err != nil {
			return err
		}

		release := `UPDATE ticket_types
					SET quantity_sold = GREATEST(quantity_sold - $2, 0)
					WHERE id = $1`
		for _, p := range res {
			if _, err = tx.ExecContext(ctx, release, p.TicketTypeID, p.Quantity); err != nil {
				return fmt.Errorf("release inventory: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

// ListPurchasesByUser returns the user's purchases with their tickets,
// newest first.
func (r *TicketRepository) ListPurchasesByUser(ctx context.Context, userID string) ([]*domain.Purchase, error) {
	query := `SELECT ` + purchaseColumns + `
			  FROM ticket_purchases p
			  WHERE p.user_id = $1
			  ORDER BY p.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list purchases by user: %w", err)
	}
	purchases, err := scanPurchases(rows)
	if err != nil {
		return nil, err
	}
	if len(purchases) == 0 {
		return purchases, nil
	}

	byID := make(map[string]*domain.Purchase, len(purchases))
	ids := make(pq.StringArray, 0, len(purchases))
	for _, p := range purchases {
		byID[p.ID] = p
		ids = append(ids, p.ID)
	}

	ticketQuery := `SELECT id, purchase_id, code, is_used, used_at
					FROM tickets
					WHERE purchase_id = ANY($1)
					ORDER BY code`
	ticketRows, err := r.db.QueryWithRetry(ctx, r.strategy, ticketQuery, ids)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer ticketRows.Close()

	for ticketRows.Next() {
		var t domain.Ticket
		if err = ticketRows.Scan(&t.ID, &t.PurchaseID, &t.Code, &t.IsUsed, &t.UsedAt); err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		if p, ok := byID[t.PurchaseID]; ok {
			p.Tickets = append(p.Tickets, t)
		}
	}

	return purchases, ticketRows.Err()
}

func (r *TicketRepository) ListPurchasesByEvents(ctx context.Context, eventIDs []string) ([]*domain.Purchase, error) {
	if len(eventIDs) == 0 {
		return nil, nil
	}

	query := `SELECT ` + purchaseColumns + `
			  FROM ticket_purchases p
			  WHERE p.event_id = ANY($1)`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(eventIDs))
	if err != nil {
		return nil, fmt.Errorf("list purchases by events: %w", err)
	}

	return scanPurchases(rows)
}

func (r *TicketRepository) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecWithRetry(ctx, r.strategy, query, args...)
}

func (r *TicketRepository) queryRow(ctx context.Context, query string, args ...any) rowScanner {
	if tx := txFromContext(ctx); tx != nil {
		return tx.QueryRowContext(ctx, query, args...)
	}
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return errRow{err: err}
	}
	return row
}

type errRow struct {
	err error
}

func (r errRow) Scan(...any) error {
	return r.err
}

func scanPurchase(row rowScanner) (*domain.Purchase, error) {
	var p domain.Purchase
	if err := row.Scan(
		&p.ID, &p.UserID, &p.EventID, &p.TicketTypeID, &p.Quantity,
		&p.UnitPrice, &p.TotalPrice, &p.Status, &p.PaymentMethod, &p.PaymentReference,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

// scanPurchases drains and closes rows.
func scanPurchases(rows *sql.Rows) ([]*domain.Purchase, error) {
	defer rows.Close()

	var res []*domain.Purchase
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		res = append(res, p)
	}
	return res, rows.Err()
}
