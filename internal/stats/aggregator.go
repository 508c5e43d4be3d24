// Package stats computes dashboard figures from event snapshots.
// All functions are pure and operate on caller-owned slices.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/what2do/eventsphere/internal/domain"
)

type Summary struct {
	TotalEvents      int   `json:"total_events"`
	PublishedCount   int   `json:"published_count"`
	DraftCount       int   `json:"draft_count"`
	UpcomingCount    int   `json:"upcoming_count"`
	PastCount        int   `json:"past_count"`
	TotalAttendees   int   `json:"total_attendees"`
	TotalRevenue     int64 `json:"total_revenue"`
	AverageAttendees int   `json:"average_attendees"`
	AverageRevenue   int64 `json:"average_revenue"`
}

// Aggregate reduces an organizer's events into a Summary evaluated at now.
// Only confirmed purchases count toward revenue.
func Aggregate(events []domain.EventRecord, now time.Time) (Summary, error) {
	var s Summary

	for i := range events {
		e := &events[i]
		if err := validateEvent(&e.Event); err != nil {
			return Summary{}, err
		}

		s.TotalEvents++
		switch e.Status {
		case domain.EventStatusPublished:
			s.PublishedCount++
			if e.StartsAt.After(now) {
				s.UpcomingCount++
			} else {
				s.PastCount++
			}
		case domain.EventStatusDraft:
			s.DraftCount++
		}

		s.TotalAttendees += e.CurrentAttendees

		revenue, err := ConfirmedRevenue(e.Purchases)
		if err != nil {
			return Summary{}, err
		}
		if revenue > math.MaxInt64-s.TotalRevenue {
			return Summary{}, &domain.InvalidRecordError{RecordID: e.ID, Field: "total_price", Reason: "revenue overflows int64"}
		}
		s.TotalRevenue += revenue
	}

	if s.TotalEvents > 0 {
		s.AverageAttendees = int(roundedDiv(int64(s.TotalAttendees), int64(s.TotalEvents)))
		s.AverageRevenue = roundedDiv(s.TotalRevenue, int64(s.TotalEvents))
	}

	return s, nil
}

// ConfirmedRevenue sums the total price of confirmed purchases.
func ConfirmedRevenue(purchases []domain.Purchase) (int64, error) {
	var total int64
	for i := range purchases {
		p := &purchases[i]
		if err := validatePurchase(p); err != nil {
			return 0, err
		}
		if p.Status != domain.PurchaseStatusConfirmed {
			continue
		}
		if p.TotalPrice > math.MaxInt64-total {
			return 0, &domain.InvalidRecordError{RecordID: p.ID, Field: "total_price", Reason: "revenue overflows int64"}
		}
		total += p.TotalPrice
	}
	return total, nil
}

// TopPerforming returns at most n events that have attendees, busiest first.
// Events with equal attendance keep their input order.
func TopPerforming(events []domain.EventRecord, n int) []domain.EventRecord {
	if n <= 0 {
		return nil
	}

	res := make([]domain.EventRecord, 0, len(events))
	for _, e := range events {
		if e.CurrentAttendees > 0 {
			res = append(res, e)
		}
	}

	sort.SliceStable(res, func(i, j int) bool {
		return res[i].CurrentAttendees > res[j].CurrentAttendees
	})

	if len(res) > n {
		res = res[:n]
	}
	return res
}

// Recent returns the first n events; callers pass events newest first.
func Recent(events []domain.EventRecord, n int) []domain.EventRecord {
	if n <= 0 {
		return nil
	}
	if len(events) < n {
		n = len(events)
	}
	res := make([]domain.EventRecord, n)
	copy(res, events[:n])
	return res
}

func validateEvent(e *domain.Event) error {
	switch {
	case e.Status != domain.EventStatusPublished && e.Status != domain.EventStatusDraft:
		return &domain.InvalidRecordError{RecordID: e.ID, Field: "status", Reason: "unknown status " + string(e.Status)}
	case e.Price < 0:
		return &domain.InvalidRecordError{RecordID: e.ID, Field: "price", Reason: "negative"}
	case e.CurrentAttendees < 0:
		return &domain.InvalidRecordError{RecordID: e.ID, Field: "current_attendees", Reason: "negative"}
	}
	return nil
}

func validatePurchase(p *domain.Purchase) error {
	switch p.Status {
	case domain.PurchaseStatusPending, domain.PurchaseStatusConfirmed, domain.PurchaseStatusCancelled:
	default:
		return &domain.InvalidRecordError{RecordID: p.ID, Field: "status", Reason: "unknown status " + string(p.Status)}
	}
	if p.TotalPrice < 0 {
		return &domain.InvalidRecordError{RecordID: p.ID, Field: "total_price", Reason: "negative"}
	}
	return nil
}

// roundedDiv rounds half away from zero; both operands are non-negative here.
func roundedDiv(total, n int64) int64 {
	q, r := total/n, total%n
	if r >= n-r {
		q++
	}
	return q
}
