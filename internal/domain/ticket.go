package domain

import "time"

type TicketType struct {
	ID                string    `json:"id"`
	EventID           string    `json:"event_id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	Price             int64     `json:"price"`
	QuantityAvailable int       `json:"quantity_available"`
	QuantitySold      int       `json:"quantity_sold"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
}

type CreateTicketTypeInput struct {
	EventID           string
	Name              string
	Description       string
	Price             int64
	QuantityAvailable int
}

type PurchaseStatus string

const (
	PurchaseStatusPending   PurchaseStatus = "pending"
	PurchaseStatusConfirmed PurchaseStatus = "confirmed"
	PurchaseStatusCancelled PurchaseStatus = "cancelled"
)

type Purchase struct {
	ID               string         `json:"id"`
	UserID           string         `json:"user_id"`
	EventID          string         `json:"event_id"`
	TicketTypeID     string         `json:"ticket_type_id"`
	Quantity         int            `json:"quantity"`
	UnitPrice        int64          `json:"unit_price"`
	TotalPrice       int64          `json:"total_price"`
	Status           PurchaseStatus `json:"status"`
	PaymentMethod    string         `json:"payment_method"`
	PaymentReference string         `json:"payment_reference"`
	Tickets          []Ticket       `json:"tickets"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

type Ticket struct {
	ID         string     `json:"id"`
	PurchaseID string     `json:"purchase_id"`
	Code       string     `json:"code"`
	IsUsed     bool       `json:"is_used"`
	UsedAt     *time.Time `json:"used_at"`
}

type PurchaseItem struct {
	TicketTypeID string
	Quantity     int
}

type PurchaseInput struct {
	UserID        string
	EventID       string
	PaymentMethod string
	Items         []PurchaseItem
}
