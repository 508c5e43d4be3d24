package ports

import (
	"context"
	"time"

	"github.com/what2do/eventsphere/internal/domain"
)

type TicketRepo interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	CreateTicketType(ctx context.Context, tt *domain.TicketType) error
	GetTicketType(ctx context.Context, id string) (*domain.TicketType, error)
	ListTicketTypes(ctx context.Context, eventID string) ([]*domain.TicketType, error)
	CompareAndSetSold(ctx context.Context, id string, expected, next int) error
	CreatePurchase(ctx context.Context, p *domain.Purchase) error
	GetPurchase(ctx context.Context, id string) (*domain.Purchase, error)
	Confirm(ctx context.Context, purchaseID, userID string, notBefore time.Time) error
	CancelExpired(ctx context.Context, before time.Time) ([]*domain.Purchase, error)
	ListPurchasesByUser(ctx context.Context, userID string) ([]*domain.Purchase, error)
	ListPurchasesByEvents(ctx context.Context, eventIDs []string) ([]*domain.Purchase, error)
}
