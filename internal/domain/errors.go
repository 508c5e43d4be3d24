package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrTicketTypeNotFound = errors.New("ticket type not found")
	ErrPurchaseNotFound   = errors.New("purchase not found")
	ErrCircleNotFound     = errors.New("circle not found")
)

var (
	ErrInsufficientInventory = errors.New("insufficient inventory")
	ErrInvalidQuantity       = errors.New("invalid quantity")
	ErrConcurrencyConflict   = errors.New("concurrent update conflict")
	ErrPurchaseNotPending    = errors.New("purchase is not in pending status")
	ErrPurchaseExpired       = errors.New("purchase has expired")
	ErrEventNotPublished     = errors.New("event is not published")
	ErrEventAlreadyStarted   = errors.New("event has already started")
	ErrNotOrganizer          = errors.New("user is not the event organizer")
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
)

var (
	ErrNotCircleMember    = errors.New("user is not a member of the circle")
	ErrNotCircleAdmin     = errors.New("user is not a circle admin")
	ErrCirclePrivate      = errors.New("circle is private")
	ErrCreatorCannotLeave = errors.New("circle creator cannot leave the circle")
)

var (
	ErrValidation    = errors.New("validation error")
	ErrInvalidRecord = errors.New("invalid record")
)

// InvalidRecordError reports a snapshot that breaks a data invariant
// (negative amount, unknown status). It matches ErrInvalidRecord.
type InvalidRecordError struct {
	RecordID string
	Field    string
	Reason   string
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("invalid record %q: %s: %s", e.RecordID, e.Field, e.Reason)
}

func (e *InvalidRecordError) Unwrap() error {
	return ErrInvalidRecord
}
