package dto

type CreateEventRequest struct {
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	StartsAt     string  `json:"starts_at" binding:"required"`
	Location     string  `json:"location"`
	Price        int64   `json:"price" binding:"gte=0"`
	MaxAttendees *int    `json:"max_attendees" binding:"omitempty,gt=0"`
	CircleID     *string `json:"circle_id" binding:"omitempty,uuid"`
	Publish      bool    `json:"publish"`
}

type AttendanceRequest struct {
	Status string `json:"status" binding:"required,oneof=going interested not_going"`
}

type CreateTicketTypeRequest struct {
	Name              string `json:"name" binding:"required"`
	Description       string `json:"description"`
	Price             int64  `json:"price" binding:"gte=0"`
	QuantityAvailable int    `json:"quantity_available" binding:"required,gt=0"`
}

type PurchaseItemRequest struct {
	TicketTypeID string `json:"ticket_type_id" binding:"required,uuid"`
	Quantity     int    `json:"quantity"`
}

// Quantity is validated by the service so that a non-positive value
// surfaces as an invalid quantity rather than a binding error.
type PurchaseRequest struct {
	PaymentMethod string                `json:"payment_method" binding:"required"`
	Items         []PurchaseItemRequest `json:"items" binding:"required,min=1,dive"`
}

type CreateUserRequest struct {
	Username       string `json:"username" binding:"required"`
	FullName       string `json:"full_name"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type CreateCircleRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	IsPrivate   bool   `json:"is_private"`
}

type AddCircleMemberRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}
