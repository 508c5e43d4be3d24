package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/what2do/eventsphere/internal/clock"
	"github.com/what2do/eventsphere/internal/domain"
	"github.com/what2do/eventsphere/internal/inventory"
	"github.com/what2do/eventsphere/internal/service/ports"
)

type EventService struct {
	repo       ports.EventRepo
	ticketRepo ports.TicketRepo
	circleRepo ports.CircleRepo
	clock      clock.Clock
}

func NewEventService(repo ports.EventRepo, ticketRepo ports.TicketRepo, circleRepo ports.CircleRepo, clk clock.Clock) *EventService {
	return &EventService{
		repo:       repo,
		ticketRepo: ticketRepo,
		circleRepo: circleRepo,
		clock:      clk,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	now := s.clock.Now()

	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.Category == "" {
		input.Category = domain.CategoryOther
	}
	if !input.Category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrValidation, input.Category)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	if input.MaxAttendees != nil && *input.MaxAttendees <= 0 {
		return nil, fmt.Errorf("%w: max_attendees must be positive", domain.ErrValidation)
	}
	if !input.StartsAt.After(now) {
		return nil, fmt.Errorf("%w: starts_at must be in the future", domain.ErrValidation)
	}

	if input.CircleID != nil {
		// в событие круга может писать только его участник
		if _, err := s.circleRepo.GetByID(ctx, *input.CircleID); err != nil {
			return nil, fmt.Errorf("get circle: %w", err)
		}
		if _, err := s.circleRepo.GetMember(ctx, *input.CircleID, input.OrganizerID); err != nil {
			return nil, fmt.Errorf("check circle membership: %w", err)
		}
	}

	status := domain.EventStatusDraft
	if input.Publish {
		status = domain.EventStatusPublished
	}

	event := &domain.Event{
		ID:           uuid.New().String(),
		OrganizerID:  input.OrganizerID,
		Title:        input.Title,
		Description:  input.Description,
		Category:     input.Category,
		Status:       status,
		StartsAt:     input.StartsAt.UTC(),
		Location:     input.Location,
		Price:        input.Price,
		MaxAttendees: input.MaxAttendees,
		CircleID:     input.CircleID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

func (s *EventService) Publish(ctx context.Context, eventID, organizerID string) error {
	if err := s.repo.Publish(ctx, eventID, organizerID); err != nil {
		return fmt.Errorf("publish event: %w", err)
	}
	return nil
}

// GetDetails returns the event with its ticket tiers. Drafts are only
// visible to their organizer, circle events to circle members.
func (s *EventService) GetDetails(ctx context.Context, eventID, viewerID string) (*domain.EventDetails, error) {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.Status != domain.EventStatusPublished && event.OrganizerID != viewerID {
		return nil, domain.ErrEventNotFound
	}
	if err = checkCircleAccess(ctx, s.circleRepo, event, viewerID); err != nil {
		return nil, err
	}

	ticketTypes, err := s.ticketRepo.ListTicketTypes(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list ticket types: %w", err)
	}

	details := &domain.EventDetails{
		Event:       *event,
		TicketTypes: make([]domain.TicketAvailability, 0, len(ticketTypes)),
	}
	for _, tt := range ticketTypes {
		details.TicketTypes = append(details.TicketTypes, domain.TicketAvailability{
			TicketType: *tt,
			Available:  inventory.Available(*tt),
		})
	}

	return details, nil
}

func (s *EventService) List(ctx context.Context, f domain.EventFilter) ([]*domain.Event, error) {
	if f.Category != "" && !f.Category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrValidation, f.Category)
	}
	if !f.Sort.Valid() {
		return nil, fmt.Errorf("%w: unknown sort %q", domain.ErrValidation, f.Sort)
	}
	return s.repo.ListPublished(ctx, f, s.clock.Now())
}

// SetAttendance records an RSVP. AttendanceNotGoing removes the record.
func (s *EventService) SetAttendance(ctx context.Context, eventID, userID string, status domain.AttendanceStatus) error {
	switch status {
	case domain.AttendanceGoing, domain.AttendanceInterested, domain.AttendanceNotGoing:
	default:
		return fmt.Errorf("%w: unknown attendance status %q", domain.ErrValidation, status)
	}

	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}
	if err = checkCircleAccess(ctx, s.circleRepo, event, userID); err != nil {
		return err
	}
	if event.Status != domain.EventStatusPublished {
		return domain.ErrEventNotPublished
	}

	now := s.clock.Now()
	if !event.StartsAt.After(now) {
		return domain.ErrEventAlreadyStarted
	}

	if status == domain.AttendanceNotGoing {
		if err = s.repo.RemoveAttendance(ctx, eventID, userID); err != nil {
			return fmt.Errorf("remove attendance: %w", err)
		}
		return nil
	}

	a := &domain.Attendance{
		EventID:   eventID,
		UserID:    userID,
		Status:    status,
		UpdatedAt: now,
	}
	if err = s.repo.SetAttendance(ctx, a); err != nil {
		return fmt.Errorf("set attendance: %w", err)
	}

	return nil
}
