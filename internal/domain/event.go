package domain

import "time"

type Category string

const (
	CategoryConcert    Category = "concert"
	CategoryConference Category = "conference"
	CategoryWorkshop   Category = "workshop"
	CategoryParty      Category = "party"
	CategorySports     Category = "sports"
	CategoryNetworking Category = "networking"
	CategoryOther      Category = "other"
)

var Categories = []Category{
	CategoryConcert, CategoryConference, CategoryWorkshop, CategoryParty,
	CategorySports, CategoryNetworking, CategoryOther,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusPublished EventStatus = "published"
)

// Event is a snapshot of an event row. Prices are integer minor units (cents).
type Event struct {
	ID               string      `json:"id"`
	OrganizerID      string      `json:"organizer_id"`
	Title            string      `json:"title"`
	Description      string      `json:"description"`
	Category         Category    `json:"category"`
	Status           EventStatus `json:"status"`
	StartsAt         time.Time   `json:"starts_at"`
	Location         string      `json:"location"`
	Price            int64       `json:"price"`
	MaxAttendees     *int        `json:"max_attendees"`
	CircleID         *string     `json:"circle_id"`
	CurrentAttendees int         `json:"current_attendees"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// EventRecord is an event together with the purchases made for it.
type EventRecord struct {
	Event
	Purchases []Purchase `json:"purchases"`
}

type EventDetails struct {
	Event       Event                `json:"event"`
	TicketTypes []TicketAvailability `json:"ticket_types"`
}

type TicketAvailability struct {
	TicketType TicketType `json:"ticket_type"`
	Available  int        `json:"available"`
}

type EventSort string

const (
	EventSortStartsAt EventSort = "starts_at"
	// EventSortPopular orders by going RSVPs, busiest first.
	EventSortPopular EventSort = "popular"
)

func (s EventSort) Valid() bool {
	return s == "" || s == EventSortStartsAt || s == EventSortPopular
}

// EventFilter narrows the public feed. Circle events never appear in it.
type EventFilter struct {
	Category     Category
	UpcomingOnly bool
	Sort         EventSort
	Limit        int
}

type CreateEventInput struct {
	OrganizerID  string
	Title        string
	Description  string
	Category     Category
	StartsAt     time.Time
	Location     string
	Price        int64
	MaxAttendees *int
	CircleID     *string
	Publish      bool
}
