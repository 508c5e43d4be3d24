package stats

import "github.com/what2do/eventsphere/internal/domain"

type CreatorDashboard struct {
	Summary       Summary
	TopPerforming []domain.EventRecord
	Recent        []domain.EventRecord
}

type ParticipantDashboard struct {
	Summary          ParticipantSummary
	FavoriteCategory *domain.Category
	Upcoming         []domain.Event
	Past             []domain.Event
	Popular          []domain.Event
}

// NewParticipantDashboard trims both event lists to limit entries.
func NewParticipantDashboard(s ParticipantSummary, upcoming, past []domain.Event, limit int) *ParticipantDashboard {
	d := &ParticipantDashboard{
		Summary:  s,
		Upcoming: head(upcoming, limit),
		Past:     head(past, limit),
	}
	if top, ok := s.Categories.Top(); ok {
		d.FavoriteCategory = &top
	}
	return d
}

func head(events []domain.Event, n int) []domain.Event {
	if len(events) > n {
		return events[:n]
	}
	return events
}
