package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/what2do/eventsphere/internal/clock"
	"github.com/what2do/eventsphere/internal/domain"
	"github.com/what2do/eventsphere/internal/service/ports"
)

type CircleService struct {
	repo  ports.CircleRepo
	clock clock.Clock
}

func NewCircleService(repo ports.CircleRepo, clk clock.Clock) *CircleService {
	return &CircleService{
		repo:  repo,
		clock: clk,
	}
}

func (s *CircleService) Create(ctx context.Context, input domain.CreateCircleInput) (*domain.Circle, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, fmt.Errorf("%w: circle name is required", domain.ErrValidation)
	}

	circle := &domain.Circle{
		ID:          uuid.New().String(),
		CreatorID:   input.CreatorID,
		Name:        input.Name,
		Description: strings.TrimSpace(input.Description),
		IsPrivate:   input.IsPrivate,
		CreatedAt:   s.clock.Now(),
	}

	if err := s.repo.Create(ctx, circle); err != nil {
		return nil, fmt.Errorf("create circle: %w", err)
	}

	return circle, nil
}

// Join enrolls the user in a public circle. Private circles are joined
// through AddMember by an admin.
func (s *CircleService) Join(ctx context.Context, circleID, userID string) error {
	circle, err := s.repo.GetByID(ctx, circleID)
	if err != nil {
		return err
	}
	if circle.IsPrivate {
		return domain.ErrCirclePrivate
	}

	return s.addMember(ctx, circleID, userID)
}

func (s *CircleService) AddMember(ctx context.Context, circleID, adminID, userID string) error {
	if _, err := s.repo.GetByID(ctx, circleID); err != nil {
		return err
	}

	admin, err := s.repo.GetMember(ctx, circleID, adminID)
	if err != nil {
		if errors.Is(err, domain.ErrNotCircleMember) {
			return domain.ErrNotCircleAdmin
		}
		return fmt.Errorf("get circle member: %w", err)
	}
	if admin.Role != domain.CircleRoleAdmin {
		return domain.ErrNotCircleAdmin
	}

	return s.addMember(ctx, circleID, userID)
}

func (s *CircleService) addMember(ctx context.Context, circleID, userID string) error {
	m := &domain.CircleMember{
		CircleID: circleID,
		UserID:   userID,
		Role:     domain.CircleRoleMember,
		JoinedAt: s.clock.Now(),
	}
	if err := s.repo.AddMember(ctx, m); err != nil {
		return fmt.Errorf("add circle member: %w", err)
	}
	return nil
}

// Leave removes the user from the circle. The creator always stays.
func (s *CircleService) Leave(ctx context.Context, circleID, userID string) error {
	circle, err := s.repo.GetByID(ctx, circleID)
	if err != nil {
		return err
	}
	if circle.CreatorID == userID {
		return domain.ErrCreatorCannotLeave
	}

	if err = s.repo.RemoveMember(ctx, circleID, userID); err != nil {
		return fmt.Errorf("leave circle: %w", err)
	}
	return nil
}

func (s *CircleService) ListMine(ctx context.Context, userID string) ([]*domain.Circle, error) {
	circles, err := s.repo.ListByMember(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list circles: %w", err)
	}
	return circles, nil
}

// Details returns the circle with its members and events. A private circle
// looks missing to anyone outside it.
func (s *CircleService) Details(ctx context.Context, circleID, viewerID string) (*domain.CircleDetails, error) {
	circle, err := s.repo.GetByID(ctx, circleID)
	if err != nil {
		return nil, err
	}
	if circle.IsPrivate {
		if _, err = s.repo.GetMember(ctx, circleID, viewerID); err != nil {
			if errors.Is(err, domain.ErrNotCircleMember) {
				return nil, domain.ErrCircleNotFound
			}
			return nil, fmt.Errorf("get circle member: %w", err)
		}
	}

	members, err := s.repo.ListMembers(ctx, circleID)
	if err != nil {
		return nil, fmt.Errorf("list circle members: %w", err)
	}

	events, err := s.repo.ListEvents(ctx, circleID)
	if err != nil {
		return nil, fmt.Errorf("list circle events: %w", err)
	}

	details := &domain.CircleDetails{
		Circle:  *circle,
		Members: members,
		Events:  make([]domain.Event, 0, len(events)),
	}
	for _, e := range events {
		details.Events = append(details.Events, *e)
	}

	return details, nil
}

// checkCircleAccess reports circle events as missing to users outside the
// circle. The organizer always has access.
func checkCircleAccess(ctx context.Context, circles ports.CircleRepo, e *domain.Event, userID string) error {
	if e.CircleID == nil || e.OrganizerID == userID {
		return nil
	}
	if userID == "" {
		return domain.ErrEventNotFound
	}

	if _, err := circles.GetMember(ctx, *e.CircleID, userID); err != nil {
		if errors.Is(err, domain.ErrNotCircleMember) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("check circle membership: %w", err)
	}
	return nil
}
