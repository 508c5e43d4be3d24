package service

import (
	"context"
	"fmt"

	"github.com/what2do/eventsphere/internal/clock"
	"github.com/what2do/eventsphere/internal/domain"
	"github.com/what2do/eventsphere/internal/service/ports"
	"github.com/what2do/eventsphere/internal/stats"
)

const (
	topPerformingLimit = 3
	recentEventsLimit  = 5
	participantListCap = 10
	popularEventsLimit = 6
)

type DashboardService struct {
	eventRepo  ports.EventRepo
	ticketRepo ports.TicketRepo
	clock      clock.Clock
}

func NewDashboardService(eventRepo ports.EventRepo, ticketRepo ports.TicketRepo, clk clock.Clock) *DashboardService {
	return &DashboardService{
		eventRepo:  eventRepo,
		ticketRepo: ticketRepo,
		clock:      clk,
	}
}

func (s *DashboardService) Creator(ctx context.Context, organizerID string) (*stats.CreatorDashboard, error) {
	events, err := s.eventRepo.ListByOrganizer(ctx, organizerID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	ids := make([]string, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	purchases, err := s.ticketRepo.ListPurchasesByEvents(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}

	byEvent := make(map[string][]domain.Purchase, len(events))
	for _, p := range purchases {
		byEvent[p.EventID] = append(byEvent[p.EventID], *p)
	}

	records := make([]domain.EventRecord, 0, len(events))
	for _, e := range events {
		records = append(records, domain.EventRecord{Event: *e, Purchases: byEvent[e.ID]})
	}

	summary, err := stats.Aggregate(records, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("aggregate events: %w", err)
	}

	return &stats.CreatorDashboard{
		Summary:       summary,
		TopPerforming: stats.TopPerforming(records, topPerformingLimit),
		Recent:        stats.Recent(records, recentEventsLimit),
	}, nil
}

func (s *DashboardService) Participant(ctx context.Context, userID string) (*stats.ParticipantDashboard, error) {
	attended, err := s.eventRepo.ListAttended(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list attended events: %w", err)
	}

	now := s.clock.Now()
	var upcoming, past []domain.Event
	for _, e := range attended {
		if e.StartsAt.After(now) {
			upcoming = append(upcoming, *e)
		} else {
			past = append(past, *e)
		}
	}
	// attended is ordered by start date; the dashboard shows the latest past events first
	for i, j := 0, len(past)-1; i < j; i, j = i+1, j-1 {
		past[i], past[j] = past[j], past[i]
	}

	purchases, err := s.ticketRepo.ListPurchasesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	own := make([]domain.Purchase, 0, len(purchases))
	for _, p := range purchases {
		own = append(own, *p)
	}

	summary, err := stats.SummarizeParticipation(upcoming, past, own)
	if err != nil {
		return nil, fmt.Errorf("summarize participation: %w", err)
	}

	popular, err := s.eventRepo.ListPublished(ctx, domain.EventFilter{
		Sort:  domain.EventSortPopular,
		Limit: popularEventsLimit,
	}, now)
	if err != nil {
		return nil, fmt.Errorf("list popular events: %w", err)
	}

	d := stats.NewParticipantDashboard(summary, upcoming, past, participantListCap)
	d.Popular = make([]domain.Event, 0, len(popular))
	for _, e := range popular {
		d.Popular = append(d.Popular, *e)
	}

	return d, nil
}
