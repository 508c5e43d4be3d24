package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
	"github.com/what2do/eventsphere/internal/clock"
	"github.com/what2do/eventsphere/internal/domain"
	"github.com/what2do/eventsphere/internal/inventory"
	"github.com/what2do/eventsphere/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type ticketEnv struct {
	svc        *TicketService
	ticketRepo *mocks.MockTicketRepo
	eventRepo  *mocks.MockEventRepo
	userRepo   *mocks.MockUserRepo
	circleRepo *mocks.MockCircleRepo
	notifier   *mocks.MockPurchaseNotifier
}

func newTicketEnv(t *testing.T) *ticketEnv {
	t.Helper()
	env := &ticketEnv{
		ticketRepo: mocks.NewMockTicketRepo(t),
		eventRepo:  mocks.NewMockEventRepo(t),
		userRepo:   mocks.NewMockUserRepo(t),
		circleRepo: mocks.NewMockCircleRepo(t),
		notifier:   mocks.NewMockPurchaseNotifier(t),
	}
	env.svc = NewTicketService(env.ticketRepo, env.eventRepo, env.userRepo, env.circleRepo, env.notifier,
		clock.NewFixed(testNow), newTestLogger(t),
		WithPurchaseTTL(15*time.Minute),
		WithReserveStrategy(retry.Strategy{Attempts: 3, Delay: time.Millisecond, Backoff: 2}),
	)
	return env
}

// expectTx runs the transactional callback inline.
func (e *ticketEnv) expectTx() {
	e.ticketRepo.EXPECT().WithTx(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func publishedEvent() *domain.Event {
	return &domain.Event{
		ID:          "e1",
		OrganizerID: "org-1",
		Title:       "Concert",
		Status:      domain.EventStatusPublished,
		StartsAt:    testNow.Add(48 * time.Hour),
	}
}

func purchaseInput(items ...domain.PurchaseItem) domain.PurchaseInput {
	return domain.PurchaseInput{
		UserID:        "u1",
		EventID:       "e1",
		PaymentMethod: "card",
		Items:         items,
	}
}

func TestTicketService_Purchase_Paid(t *testing.T) {
	env := newTicketEnv(t)

	event := publishedEvent()
	user := &domain.User{ID: "u1", Username: "alice"}
	tt := &domain.TicketType{ID: "vip", EventID: "e1", Price: 1500, QuantityAvailable: 10, QuantitySold: 3, IsActive: true}

	env.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	env.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	env.expectTx()
	env.ticketRepo.EXPECT().GetTicketType(mock.Anything, "vip").Return(tt, nil)
	env.ticketRepo.EXPECT().CompareAndSetSold(mock.Anything, "vip", 3, 5).Return(nil)
	env.ticketRepo.EXPECT().CreatePurchase(mock.Anything, mock.Anything).Return(nil)
	env.notifier.EXPECT().NotifyPurchaseCreated(mock.Anything, user, event, mock.Anything).Return()

	purchases, err := env.svc.Purchase(context.Background(), purchaseInput(domain.PurchaseItem{TicketTypeID: "vip", Quantity: 2}))

	require.NoError(t, err)
	require.Len(t, purchases, 1)
	p := purchases[0]
	assert.Equal(t, domain.PurchaseStatusPending, p.Status)
	assert.Equal(t, int64(1500), p.UnitPrice)
	assert.Equal(t, int64(3000), p.TotalPrice)
	assert.Equal(t, testNow, p.CreatedAt)
	assert.Contains(t, p.PaymentReference, "PAY_")
	require.Len(t, p.Tickets, 2)
	assert.NotEqual(t, p.Tickets[0].Code, p.Tickets[1].Code)
	assert.Equal(t, p.ID, p.Tickets[0].PurchaseID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestTicketService_Purchase_FreeIsConfirmed(t *testing.T) {
	env := newTicketEnv(t)

	event := publishedEvent()
	user := &domain.User{ID: "u1"}
	tt := &domain.TicketType{ID: "free", EventID: "e1", Price: 0, QuantityAvailable: 50, IsActive: true}

	env.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	env.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	env.expectTx()
	env.ticketRepo.EXPECT().GetTicketType(mock.Anything, "free").Return(tt, nil)
	env.ticketRepo.EXPECT().CompareAndSetSold(mock.Anything, "free", 0, 1).Return(nil)
	env.ticketRepo.EXPECT().CreatePurchase(mock.Anything, mock.Anything).Return(nil)
	env.notifier.EXPECT().NotifyPurchaseCreated(mock.Anything, user, event, mock.Anything).Return()

	purchases, err := env.svc.Purchase(context.Background(), purchaseInput(domain.PurchaseItem{TicketTypeID: "free", Quantity: 1}))

	require.NoError(t, err)
	assert.Equal(t, domain.PurchaseStatusConfirmed, purchases[0].Status)
	assert.Zero(t, purchases[0].TotalPrice)

	time.Sleep(50 * time.Millisecond)
}

func TestTicketService_Purchase_SoldOut(t *testing.T) {
	env := newTicketEnv(t)

	tt := &domain.TicketType{ID: "vip", EventID: "e1", Price: 1500, QuantityAvailable: 10, QuantitySold: 8, IsActive: true}

	env.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(publishedEvent(), nil)
	env.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	env.expectTx()
	env.ticketRepo.EXPECT().GetTicketType(mock.Anything, "vip").Return(tt, nil)

	_, err := env.svc.Purchase(context.Background(), purchaseInput(domain.PurchaseItem{TicketTypeID: "vip", Quantity: 5}))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientInventory)
	assert.NotErrorIs(t, err, domain.ErrConcurrencyConflict)

	var invErr *inventory.InsufficientInventoryError
	require.ErrorAs(t, err, &invErr)
	assert.Equal(t, 5, invErr.Requested)
	assert.Equal(t, 2, invErr.Available)
}

func TestTicketService_Purchase_RetriesAfterConflict(t *testing.T) {
	env := newTicketEnv(t)

	event := publishedEvent()
	user := &domain.User{ID: "u1"}
	before := &domain.TicketType{ID: "vip", EventID: "e1", Price: 1000, QuantityAvailable: 10, QuantitySold: 4, IsActive: true}
	after := &domain.TicketType{ID: "vip", EventID: "e1", Price: 1000, QuantityAvailable: 10, QuantitySold: 7, IsActive: true}

	env.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	env.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	env.expectTx()
	env.ticketRepo.EXPECT().GetTicketType(mock.Anything, "vip").Return(before, nil).Once()
	env.ticketRepo.EXPECT().CompareAndSetSold(mock.Anything, "vip", 4, 6).Return(domain.ErrConcurrencyConflict).Once()
	env.ticketRepo.EXPECT().GetTicketType(mock.Anything, "vip").Return(after, nil).Once()
	env.ticketRepo.EXPECT().CompareAndSetSold(mock.Anything, "vip", 7, 9).Return(nil).Once()
	env.ticketRepo.EXPECT().CreatePurchase(mock.Anything, mock.Anything).Return(nil).Once()
	env.notifier.EXPECT().NotifyPurchaseCreated(mock.Anything, user, event, mock.Anything).Return()

	purchases, err := env.svc.Purchase(context.Background(), purchaseInput(domain.PurchaseItem{TicketTypeID: "vip", Quantity: 2}))

	require.NoError(t, err)
	require.Len(t, purchases, 1)
	assert.Equal(t, 2, purchases[0].Quantity)

	time.Sleep(50 * time.Millisecond)
}

func TestTicketService_Purchase_ConflictRetriesExhausted(t *testing.T) {
	env := newTicketEnv(t)

	tt := &domain.TicketType{ID: "vip", EventID: "e1", Price: 1000, QuantityAvailable: 10, QuantitySold: 1, IsActive: true}

	env.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(publishedEvent(), nil)
	env.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	env.expectTx()
	env.ticketRepo.EXPECT().GetTicketType(mock.Anything, "vip").Return(tt, nil).Times(3)
	env.ticketRepo.EXPECT().CompareAndSetSold(mock.Anything, "vip", 1, 2).Return(domain.ErrConcurrencyConflict).Times(3)

	_, err := env.svc.Purchase(context.Background(), purchaseInput(domain.PurchaseItem{TicketTypeID: "vip", Quantity: 1}))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConcurrencyConflict)
	assert.NotErrorIs(t, err, domain.ErrInsufficientInventory)
}

func TestTicketService_Purchase_ContextCancelledDuringBackoff(t *testing.T) {
	env := newTicketEnv(t)
	env.svc.strategy = retry.Strategy{Attempts: 5, Delay: time.Hour, Backoff: 1}

	tt := &domain.TicketType{ID: "vip", EventID: "e1", QuantityAvailable: 10, IsActive: true}

	env.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(publishedEvent(), nil)
	env.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	env.expectTx()
	env.ticketRepo.EXPECT().GetTicketType(mock.Anything, "vip").Return(tt, nil).Once()
	env.ticketRepo.EXPECT().CompareAndSetSold(mock.Anything, "vip", 0, 1).Return(domain.ErrConcurrencyConflict).Once()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := env.svc.Purchase(ctx, purchaseInput(domain.PurchaseItem{TicketTypeID: "vip", Quantity: 1}))

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestTicketService_Purchase_MultipleTiersAllOrNothing(t *testing.T) {
	env := newTicketEnv(t)

	ga := &domain.TicketType{ID: "ga", EventID: "e1", Price: 500, QuantityAvailable: 100, QuantitySold: 10, IsActive: true}
	vip := &domain.TicketType{ID: "vip", EventID: "e1", Price: 5000, QuantityAvailable: 5, QuantitySold: 5, IsActive: true}

	env.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(publishedEvent(), nil)
	env.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	env.expectTx()
	env.ticketRepo.EXPECT().GetTicketType(mock.Anything, "ga").Return(ga, nil)
	env.ticketRepo.EXPECT().CompareAndSetSold(mock.Anything, "ga", 10, 12).Return(nil)
	env.ticketRepo.EXPECT().CreatePurchase(mock.Anything, mock.Anything).Return(nil)
	env.ticketRepo.EXPECT().GetTicketType(mock.Anything, "vip").Return(vip, nil)

	purchases, err := env.svc.Purchase(context.Background(), purchaseInput(
		domain.PurchaseItem{TicketTypeID: "ga", Quantity: 2},
		domain.PurchaseItem{TicketTypeID: "vip", Quantity: 1},
	))

	assert.Nil(t, purchases)
	assert.ErrorIs(t, err, domain.ErrInsufficientInventory)
}

func TestTicketService_Purchase_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		input   domain.PurchaseInput
		wantErr error
	}{
		{name: "no items", input: purchaseInput(), wantErr: domain.ErrValidation},
		{name: "zero quantity", input: purchaseInput(domain.PurchaseItem{TicketTypeID: "vip", Quantity: 0}), wantErr: domain.ErrInvalidQuantity},
		{name: "negative quantity", input: purchaseInput(domain.PurchaseItem{TicketTypeID: "vip", Quantity: -3}), wantErr: domain.ErrInvalidQuantity},
		{
			name:    "no payment method",
			input:   domain.PurchaseInput{UserID: "u1", EventID: "e1", Items: []domain.PurchaseItem{{TicketTypeID: "vip", Quantity: 1}}},
			wantErr: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTicketEnv(t)

			_, err := env.svc.Purchase(context.Background(), tt.input)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTicketService_Purchase_EventState(t *testing.T) {
	draft := publishedEvent()
	draft.Status = domain.EventStatusDraft
	started := publishedEvent()
	started.StartsAt = testNow

	tests := []struct {
		name    string
		event   *domain.Event
		wantErr error
	}{
		{name: "draft", event: draft, wantErr: domain.ErrEventNotPublished},
		{name: "started", event: started, wantErr: domain.ErrEventAlreadyStarted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTicketEnv(t)
			env.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(tt.event, nil)

			_, err := env.svc.Purchase(context.Background(), purchaseInput(domain.PurchaseItem{TicketTypeID: "vip", Quantity: 1}))

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTicketService_Purchase_TicketTypeOfAnotherEvent(t *testing.T) {
	env := newTicketEnv(t)

	foreign := &domain.TicketType{ID: "vip", EventID: "other", QuantityAvailable: 10, IsActive: true}

	env.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(publishedEvent(), nil)
	env.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	env.expectTx()
	env.ticketRepo.EXPECT().GetTicketType(mock.Anything, "vip").Return(foreign, nil)

	_, err := env.svc.Purchase(context.Background(), purchaseInput(domain.PurchaseItem{TicketTypeID: "vip", Quantity: 1}))

	assert.ErrorIs(t, err, domain.ErrTicketTypeNotFound)
}

func TestTicketService_Purchase_UserNotFound(t *testing.T) {
	env := newTicketEnv(t)

	env.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(publishedEvent(), nil)
	env.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(nil, domain.ErrUserNotFound)

	_, err := env.svc.Purchase(context.Background(), purchaseInput(domain.PurchaseItem{TicketTypeID: "vip", Quantity: 1}))

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestTicketService_Purchase_CircleEventOutsider(t *testing.T) {
	env := newTicketEnv(t)

	event := publishedEvent()
	circleID := "c1"
	event.CircleID = &circleID

	env.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	env.circleRepo.EXPECT().GetMember(mock.Anything, circleID, "u1").Return(nil, domain.ErrNotCircleMember)

	_, err := env.svc.Purchase(context.Background(), purchaseInput(domain.PurchaseItem{TicketTypeID: "vip", Quantity: 1}))

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestTicketService_CreateTicketType(t *testing.T) {
	env := newTicketEnv(t)

	env.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(publishedEvent(), nil)
	env.ticketRepo.EXPECT().CreateTicketType(mock.Anything, mock.Anything).Return(nil)

	tt, err := env.svc.CreateTicketType(context.Background(), "org-1", domain.CreateTicketTypeInput{
		EventID:           "e1",
		Name:              " VIP ",
		Price:             5000,
		QuantityAvailable: 20,
	})

	require.NoError(t, err)
	assert.Equal(t, "VIP", tt.Name)
	assert.True(t, tt.IsActive)
	assert.Zero(t, tt.QuantitySold)
	assert.Equal(t, 20, inventory.Available(*tt))
}

func TestTicketService_CreateTicketType_NotOrganizer(t *testing.T) {
	env := newTicketEnv(t)

	env.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(publishedEvent(), nil)

	_, err := env.svc.CreateTicketType(context.Background(), "intruder", domain.CreateTicketTypeInput{
		EventID:           "e1",
		Name:              "VIP",
		QuantityAvailable: 20,
	})

	assert.ErrorIs(t, err, domain.ErrNotOrganizer)
}

func TestTicketService_CreateTicketType_Validation(t *testing.T) {
	env := newTicketEnv(t)

	inputs := []domain.CreateTicketTypeInput{
		{EventID: "e1", Name: "", QuantityAvailable: 1},
		{EventID: "e1", Name: "VIP", Price: -1, QuantityAvailable: 1},
		{EventID: "e1", Name: "VIP", QuantityAvailable: 0},
	}
	for _, in := range inputs {
		_, err := env.svc.CreateTicketType(context.Background(), "org-1", in)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestTicketService_Confirm(t *testing.T) {
	env := newTicketEnv(t)

	event := publishedEvent()
	user := &domain.User{ID: "u1"}
	purchase := &domain.Purchase{ID: "p1", EventID: "e1", UserID: "u1", Status: domain.PurchaseStatusConfirmed}

	env.ticketRepo.EXPECT().Confirm(mock.Anything, "p1", "u1", testNow.Add(-15*time.Minute)).Return(nil)
	env.ticketRepo.EXPECT().GetPurchase(mock.Anything, "p1").Return(purchase, nil)
	env.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	env.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	env.notifier.EXPECT().NotifyPurchaseConfirmed(mock.Anything, user, event, purchase).Return()

	p, err := env.svc.Confirm(context.Background(), "p1", "u1")

	require.NoError(t, err)
	assert.Equal(t, domain.PurchaseStatusConfirmed, p.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestTicketService_Confirm_Expired(t *testing.T) {
	env := newTicketEnv(t)

	env.ticketRepo.EXPECT().Confirm(mock.Anything, "p1", "u1", mock.Anything).Return(domain.ErrPurchaseExpired)

	_, err := env.svc.Confirm(context.Background(), "p1", "u1")

	assert.ErrorIs(t, err, domain.ErrPurchaseExpired)
}

func TestTicketService_CancelExpired(t *testing.T) {
	env := newTicketEnv(t)

	event := publishedEvent()
	user := &domain.User{ID: "u1"}
	cancelled := []*domain.Purchase{
		{ID: "p1", EventID: "e1", UserID: "u1", Quantity: 2, Status: domain.PurchaseStatusCancelled},
	}

	env.ticketRepo.EXPECT().CancelExpired(mock.Anything, testNow.Add(-15*time.Minute)).Return(cancelled, nil)
	env.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	env.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	env.notifier.EXPECT().NotifyPurchaseCancelled(mock.Anything, user, event, cancelled[0]).Return()

	result, err := env.svc.CancelExpired(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 1)

	time.Sleep(50 * time.Millisecond)
}

func TestTicketService_CancelExpired_Nothing(t *testing.T) {
	env := newTicketEnv(t)

	env.ticketRepo.EXPECT().CancelExpired(mock.Anything, mock.Anything).Return(nil, nil)

	result, err := env.svc.CancelExpired(context.Background())

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestTicketService_CancelExpired_Error(t *testing.T) {
	env := newTicketEnv(t)

	env.ticketRepo.EXPECT().CancelExpired(mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	_, err := env.svc.CancelExpired(context.Background())

	require.Error(t, err)
}
