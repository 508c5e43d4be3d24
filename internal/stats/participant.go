package stats

import "github.com/what2do/eventsphere/internal/domain"

type ParticipantSummary struct {
	UpcomingCount int
	AttendedCount int
	TotalSpent    int64
	Categories    CategoryTally
}

// SummarizeParticipation builds the participant dashboard figures from the
// events a user attends (split at the evaluation instant by the caller) and
// the user's own purchases.
func SummarizeParticipation(upcoming, past []domain.Event, purchases []domain.Purchase) (ParticipantSummary, error) {
	spent, err := ConfirmedRevenue(purchases)
	if err != nil {
		return ParticipantSummary{}, err
	}

	return ParticipantSummary{
		UpcomingCount: len(upcoming),
		AttendedCount: len(past),
		TotalSpent:    spent,
		Categories:    TallyCategories(past),
	}, nil
}
