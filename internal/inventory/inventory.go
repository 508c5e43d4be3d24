// Package inventory derives ticket availability and applies reservations to
// ticket type snapshots. Persisting the result atomically is the caller's job.
package inventory

import (
	"fmt"

	"github.com/what2do/eventsphere/internal/domain"
)

type InsufficientInventoryError struct {
	TicketTypeID string
	Requested    int
	Available    int
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("ticket type %s: requested %d, available %d", e.TicketTypeID, e.Requested, e.Available)
}

func (e *InsufficientInventoryError) Unwrap() error {
	return domain.ErrInsufficientInventory
}

// Available is the number of tickets still for sale, never negative.
func Available(tt domain.TicketType) int {
	return max(0, tt.QuantityAvailable-tt.QuantitySold)
}

// Reserve returns a copy of tt with qty more tickets sold.
func Reserve(tt domain.TicketType, qty int) (domain.TicketType, error) {
	if qty <= 0 {
		return tt, fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, qty)
	}

	if avail := Available(tt); qty > avail {
		return tt, &InsufficientInventoryError{
			TicketTypeID: tt.ID,
			Requested:    qty,
			Available:    avail,
		}
	}

	tt.QuantitySold += qty
	return tt, nil
}
