package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
	"github.com/what2do/eventsphere/internal/domain"
)

type purchaseCanceller interface {
	CancelExpired(ctx context.Context) ([]*domain.Purchase, error)
}

// Scheduler periodically cancels unpaid purchases so their tickets go back
// on sale.
type Scheduler struct {
	purchases purchaseCanceller
	interval  time.Duration
	logger    logger.Logger
}

func New(
	purchases purchaseCanceller,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		purchases: purchases,
		interval:  interval,
		logger:    logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	cancelled, err := s.purchases.CancelExpired(ctx)
	if err != nil {
		s.logger.Error("failed to cancel expired purchases",
			logger.String("error", err.Error()),
		)
		return
	}
	if len(cancelled) == 0 {
		return
	}

	for _, p := range cancelled {
		s.logger.Info("purchase expired",
			logger.String("purchase_id", p.ID),
			logger.String("user_id", p.UserID),
			logger.String("event_id", p.EventID),
			logger.Int("quantity", p.Quantity),
		)
	}

	for ticketTypeID, n := range releasedByTicketType(cancelled) {
		s.logger.Info("tickets back on sale",
			logger.String("ticket_type_id", ticketTypeID),
			logger.Int("tickets", n),
		)
	}
}

// releasedByTicketType sums the quantity returned to each ticket type.
func releasedByTicketType(cancelled []*domain.Purchase) map[string]int {
	res := make(map[string]int)
	for _, p := range cancelled {
		res[p.TicketTypeID] += p.Quantity
	}
	return res
}
