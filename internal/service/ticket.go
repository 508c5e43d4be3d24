package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
	"github.com/what2do/eventsphere/internal/clock"
	"github.com/what2do/eventsphere/internal/domain"
	"github.com/what2do/eventsphere/internal/inventory"
	"github.com/what2do/eventsphere/internal/metrics"
	"github.com/what2do/eventsphere/internal/service/ports"
)

const defaultPurchaseTTL = 15 * time.Minute

var defaultReserveStrategy = retry.Strategy{
	Attempts: 5,
	Delay:    20 * time.Millisecond,
	Backoff:  2,
}

type TicketService struct {
	ticketRepo  ports.TicketRepo
	eventRepo   ports.EventRepo
	userRepo    ports.UserRepo
	circleRepo  ports.CircleRepo
	notifier    ports.PurchaseNotifier
	clock       clock.Clock
	logger      logger.Logger
	purchaseTTL time.Duration
	strategy    retry.Strategy
}

type TicketServiceOption func(*TicketService)

// WithPurchaseTTL sets how long a pending purchase may wait for payment.
func WithPurchaseTTL(d time.Duration) TicketServiceOption {
	return func(s *TicketService) {
		if d > 0 {
			s.purchaseTTL = d
		}
	}
}

// WithReserveStrategy sets the backoff used after a lost inventory race.
func WithReserveStrategy(st retry.Strategy) TicketServiceOption {
	return func(s *TicketService) {
		if st.Attempts > 0 {
			s.strategy = st
		}
	}
}

func NewTicketService(
	ticketRepo ports.TicketRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	circleRepo ports.CircleRepo,
	notifier ports.PurchaseNotifier,
	clk clock.Clock,
	logger logger.Logger,
	opts ...TicketServiceOption,
) *TicketService {
	s := &TicketService{
		ticketRepo:  ticketRepo,
		eventRepo:   eventRepo,
		userRepo:    userRepo,
		circleRepo:  circleRepo,
		notifier:    notifier,
		clock:       clk,
		logger:      logger,
		purchaseTTL: defaultPurchaseTTL,
		strategy:    defaultReserveStrategy,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *TicketService) CreateTicketType(ctx context.Context, organizerID string, input domain.CreateTicketTypeInput) (*domain.TicketType, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	if input.QuantityAvailable <= 0 {
		return nil, fmt.Errorf("%w: quantity_available must be positive", domain.ErrValidation)
	}

	event, err := s.eventRepo.GetByID(ctx, input.EventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.OrganizerID != organizerID {
		return nil, domain.ErrNotOrganizer
	}

	tt := &domain.TicketType{
		ID:                uuid.New().String(),
		EventID:           input.EventID,
		Name:              input.Name,
		Description:       input.Description,
		Price:             input.Price,
		QuantityAvailable: input.QuantityAvailable,
		IsActive:          true,
		CreatedAt:         s.clock.Now(),
	}
	if err = s.ticketRepo.CreateTicketType(ctx, tt); err != nil {
		return nil, fmt.Errorf("create ticket type: %w", err)
	}

	return tt, nil
}

// Purchase reserves every requested tier in one transaction. Inventory is
// written with compare-and-set; a lost race rolls the transaction back and
// the whole purchase is retried with backoff.
func (s *TicketService) Purchase(ctx context.Context, input domain.PurchaseInput) ([]*domain.Purchase, error) {
	if len(input.Items) == 0 {
		return nil, fmt.Errorf("%w: at least one ticket is required", domain.ErrValidation)
	}
	for _, it := range input.Items {
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, it.Quantity)
		}
	}
	if strings.TrimSpace(input.PaymentMethod) == "" {
		return nil, fmt.Errorf("%w: payment_method is required", domain.ErrValidation)
	}

	event, err := s.eventRepo.GetByID(ctx, input.EventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}
	if err = checkCircleAccess(ctx, s.circleRepo, event, input.UserID); err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}
	if event.Status != domain.EventStatusPublished {
		return nil, domain.ErrEventNotPublished
	}
	if !event.StartsAt.After(s.clock.Now()) {
		return nil, domain.ErrEventAlreadyStarted
	}

	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	var purchases []*domain.Purchase
	err = s.withReserveRetry(ctx, func() error {
		purchases = purchases[:0]
		return s.ticketRepo.WithTx(ctx, func(txCtx context.Context) error {
			for _, it := range input.Items {
				p, err := s.reserve(txCtx, input, it)
				if err != nil {
					return err
				}
				purchases = append(purchases, p)
			}
			return nil
		})
	})
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientInventory) {
			metrics.ReservationsRejected.WithLabelValues(metrics.ReasonSoldOut).Inc()
		}
		return nil, fmt.Errorf("purchase tickets: %w", err)
	}

	for _, p := range purchases {
		metrics.TicketsReserved.Add(float64(p.Quantity))
		s.logger.Info("tickets reserved",
			logger.String("purchase_id", p.ID),
			logger.String("event_id", p.EventID),
			logger.String("ticket_type_id", p.TicketTypeID),
			logger.String("user_id", p.UserID),
			logger.Int("quantity", p.Quantity),
		)
	}

	go s.notifier.NotifyPurchaseCreated(context.WithoutCancel(ctx), user, event, purchases)

	return purchases, nil
}

func (s *TicketService) reserve(ctx context.Context, input domain.PurchaseInput, it domain.PurchaseItem) (*domain.Purchase, error) {
	tt, err := s.ticketRepo.GetTicketType(ctx, it.TicketTypeID)
	if err != nil {
		return nil, err
	}
	if tt.EventID != input.EventID || !tt.IsActive {
		return nil, domain.ErrTicketTypeNotFound
	}

	next, err := inventory.Reserve(*tt, it.Quantity)
	if err != nil {
		return nil, err
	}
	if err = s.ticketRepo.CompareAndSetSold(ctx, tt.ID, tt.QuantitySold, next.QuantitySold); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	status := domain.PurchaseStatusPending
	if tt.Price == 0 {
		status = domain.PurchaseStatusConfirmed
	}

	p := &domain.Purchase{
		ID:               uuid.New().String(),
		UserID:           input.UserID,
		EventID:          input.EventID,
		TicketTypeID:     tt.ID,
		Quantity:         it.Quantity,
		UnitPrice:        tt.Price,
		TotalPrice:       tt.Price * int64(it.Quantity),
		Status:           status,
		PaymentMethod:    input.PaymentMethod,
		PaymentReference: fmt.Sprintf("PAY_%d_%s", now.UnixMilli(), shortID(uuid.New().String())),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	p.Tickets = make([]domain.Ticket, it.Quantity)
	for i := range p.Tickets {
		p.Tickets[i] = domain.Ticket{
			ID:         uuid.New().String(),
			PurchaseID: p.ID,
			Code:       fmt.Sprintf("%s-%s-%d", shortID(input.EventID), shortID(p.ID), i+1),
		}
	}

	if err = s.ticketRepo.CreatePurchase(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *TicketService) withReserveRetry(ctx context.Context, fn func() error) error {
	delay := s.strategy.Delay

	var err error
	for attempt := 1; ; attempt++ {
		if err = fn(); !errors.Is(err, domain.ErrConcurrencyConflict) {
			return err
		}
		metrics.ReservationConflicts.Inc()

		if attempt >= int(s.strategy.Attempts) {
			break
		}

		s.logger.Warn("ticket reservation conflict, retrying",
			logger.Int("attempt", attempt),
			logger.Duration("delay", delay),
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay = time.Duration(float64(delay) * float64(s.strategy.Backoff))
	}

	metrics.ReservationsRejected.WithLabelValues(metrics.ReasonConflict).Inc()
	return fmt.Errorf("gave up after %d attempts: %w", int(s.strategy.Attempts), err)
}

func (s *TicketService) Confirm(ctx context.Context, purchaseID, userID string) (*domain.Purchase, error) {
	notBefore := s.clock.Now().Add(-s.purchaseTTL)
	if err := s.ticketRepo.Confirm(ctx, purchaseID, userID, notBefore); err != nil {
		return nil, fmt.Errorf("confirm purchase: %w", err)
	}

	p, err := s.ticketRepo.GetPurchase(ctx, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("get purchase: %w", err)
	}

	s.logger.Info("purchase confirmed",
		logger.String("purchase_id", p.ID),
		logger.String("event_id", p.EventID),
		logger.String("user_id", userID),
	)

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error("failed to get user for notification",
			logger.String("user_id", userID),
			logger.String("error", err.Error()),
		)
		return p, nil
	}
	event, err := s.eventRepo.GetByID(ctx, p.EventID)
	if err != nil {
		s.logger.Error("failed to get event for notification",
			logger.String("event_id", p.EventID),
			logger.String("error", err.Error()),
		)
		return p, nil
	}

	go s.notifier.NotifyPurchaseConfirmed(context.WithoutCancel(ctx), user, event, p)

	return p, nil
}

// CancelExpired cancels pending purchases whose payment window has passed
// and releases their inventory.
func (s *TicketService) CancelExpired(ctx context.Context) ([]*domain.Purchase, error) {
	cancelled, err := s.ticketRepo.CancelExpired(ctx, s.clock.Now().Add(-s.purchaseTTL))
	if err != nil {
		return nil, fmt.Errorf("cancel expired: %w", err)
	}

	if len(cancelled) > 0 {
		metrics.PurchasesCancelled.Add(float64(len(cancelled)))
		s.logger.Info("expired purchases cancelled",
			logger.Int("count", len(cancelled)),
		)

		go s.notifyCancelled(context.WithoutCancel(ctx), cancelled)
	}

	return cancelled, nil
}

func (s *TicketService) notifyCancelled(ctx context.Context, purchases []*domain.Purchase) {
	for _, p := range purchases {
		user, err := s.userRepo.GetByID(ctx, p.UserID)
		if err != nil {
			s.logger.Error("failed to get user for cancel notification",
				logger.String("user_id", p.UserID),
			)
			continue
		}

		event, err := s.eventRepo.GetByID(ctx, p.EventID)
		if err != nil {
			s.logger.Error("failed to get event for cancel notification",
				logger.String("event_id", p.EventID),
			)
			continue
		}

		s.notifier.NotifyPurchaseCancelled(ctx, user, event, p)
	}
}

func (s *TicketService) ListByUser(ctx context.Context, userID string) ([]*domain.Purchase, error) {
	return s.ticketRepo.ListPurchasesByUser(ctx, userID)
}

func shortID(id string) string {
	id = strings.ReplaceAll(id, "-", "")
	if len(id) > 8 {
		id = id[:8]
	}
	return strings.ToUpper(id)
}
