package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/what2do/eventsphere/internal/clock"
	"github.com/what2do/eventsphere/internal/domain"
	"github.com/what2do/eventsphere/internal/service/ports/mocks"
)

func newEventService(t *testing.T) (*EventService, *mocks.MockEventRepo, *mocks.MockTicketRepo) {
	t.Helper()
	svc, eventRepo, ticketRepo, _ := newCircleEventService(t)
	return svc, eventRepo, ticketRepo
}

func newCircleEventService(t *testing.T) (*EventService, *mocks.MockEventRepo, *mocks.MockTicketRepo, *mocks.MockCircleRepo) {
	t.Helper()
	eventRepo := mocks.NewMockEventRepo(t)
	ticketRepo := mocks.NewMockTicketRepo(t)
	circleRepo := mocks.NewMockCircleRepo(t)
	return NewEventService(eventRepo, ticketRepo, circleRepo, clock.NewFixed(testNow)), eventRepo, ticketRepo, circleRepo
}

func TestEventService_CreateEvent_Success(t *testing.T) {
	svc, eventRepo, _ := newEventService(t)

	eventRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	maxAttendees := 200
	input := domain.CreateEventInput{
		OrganizerID:  "org-1",
		Title:        "  Concert ",
		Description:  "Live music",
		Category:     domain.CategoryConcert,
		StartsAt:     testNow.Add(24 * time.Hour),
		Price:        2500,
		MaxAttendees: &maxAttendees,
		Publish:      true,
	}

	event, err := svc.CreateEvent(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "Concert", event.Title)
	assert.Equal(t, "org-1", event.OrganizerID)
	assert.Equal(t, domain.EventStatusPublished, event.Status)
	assert.Equal(t, int64(2500), event.Price)
	assert.Equal(t, testNow, event.CreatedAt)
	assert.Zero(t, event.CurrentAttendees)
	assert.NotEmpty(t, event.ID)
}

func TestEventService_CreateEvent_DraftAndDefaultCategory(t *testing.T) {
	svc, eventRepo, _ := newEventService(t)

	eventRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.CreateEvent(context.Background(), domain.CreateEventInput{
		Title:    "Workshop",
		StartsAt: testNow.Add(time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusDraft, event.Status)
	assert.Equal(t, domain.CategoryOther, event.Category)
}

func TestEventService_CreateEvent_Validation(t *testing.T) {
	zero := 0
	tests := []struct {
		name  string
		input domain.CreateEventInput
	}{
		{name: "empty title", input: domain.CreateEventInput{Title: " ", StartsAt: testNow.Add(time.Hour)}},
		{name: "unknown category", input: domain.CreateEventInput{Title: "X", Category: "opera", StartsAt: testNow.Add(time.Hour)}},
		{name: "negative price", input: domain.CreateEventInput{Title: "X", Price: -1, StartsAt: testNow.Add(time.Hour)}},
		{name: "zero capacity", input: domain.CreateEventInput{Title: "X", MaxAttendees: &zero, StartsAt: testNow.Add(time.Hour)}},
		{name: "starts now", input: domain.CreateEventInput{Title: "X", StartsAt: testNow}},
		{name: "in the past", input: domain.CreateEventInput{Title: "X", StartsAt: testNow.Add(-time.Hour)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newEventService(t)

			_, err := svc.CreateEvent(context.Background(), tt.input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestEventService_CreateEvent_RepoError(t *testing.T) {
	svc, eventRepo, _ := newEventService(t)

	eventRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrUserNotFound)

	_, err := svc.CreateEvent(context.Background(), domain.CreateEventInput{
		Title:    "X",
		StartsAt: testNow.Add(time.Hour),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestEventService_Publish_NotOrganizer(t *testing.T) {
	svc, eventRepo, _ := newEventService(t)

	eventRepo.EXPECT().Publish(mock.Anything, "e1", "intruder").Return(domain.ErrNotOrganizer)

	err := svc.Publish(context.Background(), "e1", "intruder")

	assert.ErrorIs(t, err, domain.ErrNotOrganizer)
}

func TestEventService_GetDetails_Success(t *testing.T) {
	svc, eventRepo, ticketRepo := newEventService(t)

	event := &domain.Event{ID: "e1", Title: "Concert", Status: domain.EventStatusPublished}
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	ticketRepo.EXPECT().ListTicketTypes(mock.Anything, "e1").Return([]*domain.TicketType{
		{ID: "vip", QuantityAvailable: 10, QuantitySold: 8},
		{ID: "ga", QuantityAvailable: 100, QuantitySold: 100},
	}, nil)

	details, err := svc.GetDetails(context.Background(), "e1", "")

	require.NoError(t, err)
	assert.Equal(t, "Concert", details.Event.Title)
	require.Len(t, details.TicketTypes, 2)
	assert.Equal(t, 2, details.TicketTypes[0].Available)
	assert.Equal(t, 0, details.TicketTypes[1].Available)
}

func TestEventService_GetDetails_DraftHiddenFromOthers(t *testing.T) {
	svc, eventRepo, _ := newEventService(t)

	event := &domain.Event{ID: "e1", OrganizerID: "org-1", Status: domain.EventStatusDraft}
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	_, err := svc.GetDetails(context.Background(), "e1", "someone-else")

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_GetDetails_DraftVisibleToOrganizer(t *testing.T) {
	svc, eventRepo, ticketRepo := newEventService(t)

	event := &domain.Event{ID: "e1", OrganizerID: "org-1", Status: domain.EventStatusDraft}
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	ticketRepo.EXPECT().ListTicketTypes(mock.Anything, "e1").Return(nil, nil)

	details, err := svc.GetDetails(context.Background(), "e1", "org-1")

	require.NoError(t, err)
	assert.Empty(t, details.TicketTypes)
}

func TestEventService_GetDetails_NotFound(t *testing.T) {
	svc, eventRepo, _ := newEventService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.GetDetails(context.Background(), "missing", "")

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_List_PassesClock(t *testing.T) {
	svc, eventRepo, _ := newEventService(t)

	f := domain.EventFilter{Category: domain.CategorySports, UpcomingOnly: true}
	eventRepo.EXPECT().ListPublished(mock.Anything, f, testNow).Return([]*domain.Event{{ID: "e1"}}, nil)

	events, err := svc.List(context.Background(), f)

	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestEventService_List_UnknownCategory(t *testing.T) {
	svc, _, _ := newEventService(t)

	_, err := svc.List(context.Background(), domain.EventFilter{Category: "opera"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_List_Error(t *testing.T) {
	svc, eventRepo, _ := newEventService(t)

	eventRepo.EXPECT().ListPublished(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.List(context.Background(), domain.EventFilter{})

	require.Error(t, err)
}

func TestEventService_SetAttendance_Going(t *testing.T) {
	svc, eventRepo, _ := newEventService(t)

	event := &domain.Event{ID: "e1", Status: domain.EventStatusPublished, StartsAt: testNow.Add(time.Hour)}
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	eventRepo.EXPECT().SetAttendance(mock.Anything, &domain.Attendance{
		EventID:   "e1",
		UserID:    "u1",
		Status:    domain.AttendanceGoing,
		UpdatedAt: testNow,
	}).Return(nil)

	err := svc.SetAttendance(context.Background(), "e1", "u1", domain.AttendanceGoing)

	require.NoError(t, err)
}

func TestEventService_SetAttendance_NotGoingRemoves(t *testing.T) {
	svc, eventRepo, _ := newEventService(t)

	event := &domain.Event{ID: "e1", Status: domain.EventStatusPublished, StartsAt: testNow.Add(time.Hour)}
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	eventRepo.EXPECT().RemoveAttendance(mock.Anything, "e1", "u1").Return(nil)

	err := svc.SetAttendance(context.Background(), "e1", "u1", domain.AttendanceNotGoing)

	require.NoError(t, err)
}

func TestEventService_SetAttendance_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		event   *domain.Event
		status  domain.AttendanceStatus
		wantErr error
	}{
		{
			name:    "unknown status",
			status:  "maybe",
			wantErr: domain.ErrValidation,
		},
		{
			name:    "draft event",
			event:   &domain.Event{ID: "e1", Status: domain.EventStatusDraft, StartsAt: testNow.Add(time.Hour)},
			status:  domain.AttendanceGoing,
			wantErr: domain.ErrEventNotPublished,
		},
		{
			name:    "started event",
			event:   &domain.Event{ID: "e1", Status: domain.EventStatusPublished, StartsAt: testNow},
			status:  domain.AttendanceInterested,
			wantErr: domain.ErrEventAlreadyStarted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, eventRepo, _ := newEventService(t)
			if tt.event != nil {
				eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(tt.event, nil)
			}

			err := svc.SetAttendance(context.Background(), "e1", "u1", tt.status)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// --- Circle events ---

func circleEvent(circleID string) *domain.Event {
	return &domain.Event{
		ID:          "e1",
		OrganizerID: "org-1",
		Status:      domain.EventStatusPublished,
		StartsAt:    testNow.Add(time.Hour),
		CircleID:    &circleID,
	}
}

func TestEventService_CreateEvent_InCircle(t *testing.T) {
	svc, eventRepo, _, circleRepo := newCircleEventService(t)

	circleID := "c1"
	circleRepo.EXPECT().GetByID(mock.Anything, circleID).Return(&domain.Circle{ID: circleID}, nil)
	circleRepo.EXPECT().GetMember(mock.Anything, circleID, "org-1").
		Return(&domain.CircleMember{CircleID: circleID, UserID: "org-1", Role: domain.CircleRoleMember}, nil)
	eventRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(e *domain.Event) bool {
		return e.CircleID != nil && *e.CircleID == circleID
	})).Return(nil)

	event, err := svc.CreateEvent(context.Background(), domain.CreateEventInput{
		OrganizerID: "org-1",
		Title:       "Board games",
		StartsAt:    testNow.Add(time.Hour),
		CircleID:    &circleID,
	})

	require.NoError(t, err)
	require.NotNil(t, event.CircleID)
	assert.Equal(t, circleID, *event.CircleID)
}

func TestEventService_CreateEvent_CircleRejected(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(r *mocks.MockCircleRepo)
		wantErr error
	}{
		{
			name: "unknown circle",
			setup: func(r *mocks.MockCircleRepo) {
				r.EXPECT().GetByID(mock.Anything, "c1").Return(nil, domain.ErrCircleNotFound)
			},
			wantErr: domain.ErrCircleNotFound,
		},
		{
			name: "organizer outside circle",
			setup: func(r *mocks.MockCircleRepo) {
				r.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Circle{ID: "c1"}, nil)
				r.EXPECT().GetMember(mock.Anything, "c1", "org-1").Return(nil, domain.ErrNotCircleMember)
			},
			wantErr: domain.ErrNotCircleMember,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, circleRepo := newCircleEventService(t)
			tt.setup(circleRepo)

			circleID := "c1"
			_, err := svc.CreateEvent(context.Background(), domain.CreateEventInput{
				OrganizerID: "org-1",
				Title:       "Board games",
				StartsAt:    testNow.Add(time.Hour),
				CircleID:    &circleID,
			})

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEventService_GetDetails_CircleEventHiddenFromOutsiders(t *testing.T) {
	tests := []struct {
		name   string
		viewer string
	}{
		{"anonymous", ""},
		{"non-member", "u1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, eventRepo, _, circleRepo := newCircleEventService(t)

			eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(circleEvent("c1"), nil)
			if tt.viewer != "" {
				circleRepo.EXPECT().GetMember(mock.Anything, "c1", tt.viewer).Return(nil, domain.ErrNotCircleMember)
			}

			_, err := svc.GetDetails(context.Background(), "e1", tt.viewer)

			assert.ErrorIs(t, err, domain.ErrEventNotFound)
		})
	}
}

func TestEventService_GetDetails_CircleEventVisibleToMember(t *testing.T) {
	svc, eventRepo, ticketRepo, circleRepo := newCircleEventService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(circleEvent("c1"), nil)
	circleRepo.EXPECT().GetMember(mock.Anything, "c1", "u1").
		Return(&domain.CircleMember{CircleID: "c1", UserID: "u1", Role: domain.CircleRoleMember}, nil)
	ticketRepo.EXPECT().ListTicketTypes(mock.Anything, "e1").Return(nil, nil)

	details, err := svc.GetDetails(context.Background(), "e1", "u1")

	require.NoError(t, err)
	assert.Equal(t, "e1", details.Event.ID)
}

func TestEventService_GetDetails_CircleEventVisibleToOrganizer(t *testing.T) {
	svc, eventRepo, ticketRepo, _ := newCircleEventService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(circleEvent("c1"), nil)
	ticketRepo.EXPECT().ListTicketTypes(mock.Anything, "e1").Return(nil, nil)

	_, err := svc.GetDetails(context.Background(), "e1", "org-1")

	require.NoError(t, err)
}

func TestEventService_GetDetails_MembershipLookupFails(t *testing.T) {
	svc, eventRepo, _, circleRepo := newCircleEventService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(circleEvent("c1"), nil)
	circleRepo.EXPECT().GetMember(mock.Anything, "c1", "u1").Return(nil, errors.New("db error"))

	_, err := svc.GetDetails(context.Background(), "e1", "u1")

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_SetAttendance_CircleEventHiddenFromOutsiders(t *testing.T) {
	svc, eventRepo, _, circleRepo := newCircleEventService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(circleEvent("c1"), nil)
	circleRepo.EXPECT().GetMember(mock.Anything, "c1", "u1").Return(nil, domain.ErrNotCircleMember)

	err := svc.SetAttendance(context.Background(), "e1", "u1", domain.AttendanceGoing)

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_List_Popular(t *testing.T) {
	svc, eventRepo, _ := newEventService(t)

	f := domain.EventFilter{Sort: domain.EventSortPopular, Limit: 6}
	eventRepo.EXPECT().ListPublished(mock.Anything, f, testNow).Return([]*domain.Event{{ID: "hot"}}, nil)

	events, err := svc.List(context.Background(), f)

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "hot", events[0].ID)
}

func TestEventService_List_UnknownSort(t *testing.T) {
	svc, _, _ := newEventService(t)

	_, err := svc.List(context.Background(), domain.EventFilter{Sort: "loudest"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}
