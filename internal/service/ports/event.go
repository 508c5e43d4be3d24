package ports

import (
	"context"
	"time"

	"github.com/what2do/eventsphere/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	ListPublished(ctx context.Context, f domain.EventFilter, now time.Time) ([]*domain.Event, error)
	ListByOrganizer(ctx context.Context, organizerID string) ([]*domain.Event, error)
	ListByOrganizers(ctx context.Context, organizerIDs []string, limit int) ([]*domain.Event, error)
	ListAttended(ctx context.Context, userID string) ([]*domain.Event, error)
	Publish(ctx context.Context, id, organizerID string) error
	SetAttendance(ctx context.Context, a *domain.Attendance) error
	RemoveAttendance(ctx context.Context, eventID, userID string) error
}
