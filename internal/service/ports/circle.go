package ports

import (
	"context"

	"github.com/what2do/eventsphere/internal/domain"
)

type CircleRepo interface {
	Create(ctx context.Context, c *domain.Circle) error
	GetByID(ctx context.Context, id string) (*domain.Circle, error)
	ListByMember(ctx context.Context, userID string) ([]*domain.Circle, error)
	GetMember(ctx context.Context, circleID, userID string) (*domain.CircleMember, error)
	ListMembers(ctx context.Context, circleID string) ([]domain.CircleMember, error)
	AddMember(ctx context.Context, m *domain.CircleMember) error
	RemoveMember(ctx context.Context, circleID, userID string) error
	ListEvents(ctx context.Context, circleID string) ([]*domain.Event, error)
}
