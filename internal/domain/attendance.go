package domain

import "time"

type AttendanceStatus string

const (
	AttendanceGoing      AttendanceStatus = "going"
	AttendanceInterested AttendanceStatus = "interested"
	// AttendanceNotGoing is never stored, setting it removes the row.
	AttendanceNotGoing AttendanceStatus = "not_going"
)

type Attendance struct {
	EventID   string           `json:"event_id"`
	UserID    string           `json:"user_id"`
	Status    AttendanceStatus `json:"status"`
	UpdatedAt time.Time        `json:"updated_at"`
}
