package ports

import (
	"context"

	"github.com/what2do/eventsphere/internal/domain"
)

type PurchaseNotifier interface {
	NotifyPurchaseCreated(ctx context.Context, user *domain.User, event *domain.Event, purchases []*domain.Purchase)
	NotifyPurchaseConfirmed(ctx context.Context, user *domain.User, event *domain.Event, purchase *domain.Purchase)
	NotifyPurchaseCancelled(ctx context.Context, user *domain.User, event *domain.Event, purchase *domain.Purchase)
}
