package dto

import (
	"time"

	"github.com/what2do/eventsphere/internal/domain"
	"github.com/what2do/eventsphere/internal/stats"
)

type EventResponse struct {
	ID               string  `json:"id"`
	OrganizerID      string  `json:"organizer_id"`
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	Category         string  `json:"category"`
	Status           string  `json:"status"`
	StartsAt         string  `json:"starts_at"`
	Location         string  `json:"location"`
	Price            int64   `json:"price"`
	MaxAttendees     *int    `json:"max_attendees,omitempty"`
	CircleID         *string `json:"circle_id,omitempty"`
	CurrentAttendees int     `json:"current_attendees"`
	CreatedAt        string  `json:"created_at"`
}

type TicketTypeResponse struct {
	ID                string `json:"id"`
	EventID           string `json:"event_id"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	Price             int64  `json:"price"`
	QuantityAvailable int    `json:"quantity_available"`
	QuantitySold      int    `json:"quantity_sold"`
	Available         int    `json:"available"`
}

type EventDetailsResponse struct {
	Event       EventResponse        `json:"event"`
	TicketTypes []TicketTypeResponse `json:"ticket_types"`
}

type TicketResponse struct {
	ID     string `json:"id"`
	Code   string `json:"code"`
	IsUsed bool   `json:"is_used"`
}

type PurchaseResponse struct {
	ID               string           `json:"id"`
	EventID          string           `json:"event_id"`
	TicketTypeID     string           `json:"ticket_type_id"`
	UserID           string           `json:"user_id"`
	Quantity         int              `json:"quantity"`
	UnitPrice        int64            `json:"unit_price"`
	TotalPrice       int64            `json:"total_price"`
	Status           string           `json:"status"`
	PaymentMethod    string           `json:"payment_method"`
	PaymentReference string           `json:"payment_reference"`
	Tickets          []TicketResponse `json:"tickets"`
	CreatedAt        string           `json:"created_at"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	FullName       string `json:"full_name"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type CreatorDashboardResponse struct {
	Summary       stats.Summary   `json:"summary"`
	TopPerforming []EventResponse `json:"top_performing"`
	Recent        []EventResponse `json:"recent"`
}

type ParticipantDashboardResponse struct {
	UpcomingCount    int             `json:"upcoming_count"`
	AttendedCount    int             `json:"attended_count"`
	TotalSpent       int64           `json:"total_spent"`
	FavoriteCategory *string         `json:"favorite_category"`
	CategoryCounts   map[string]int  `json:"category_counts"`
	Upcoming         []EventResponse `json:"upcoming"`
	Past             []EventResponse `json:"past"`
	Popular          []EventResponse `json:"popular"`
}

type CircleResponse struct {
	ID          string `json:"id"`
	CreatorID   string `json:"creator_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsPrivate   bool   `json:"is_private"`
	MemberCount int    `json:"member_count"`
	CreatedAt   string `json:"created_at"`
}

type CircleMemberResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	JoinedAt string `json:"joined_at"`
}

type CircleDetailsResponse struct {
	Circle  CircleResponse         `json:"circle"`
	Members []CircleMemberResponse `json:"members"`
	Events  []EventResponse        `json:"events"`
}

type FeedActivityResponse struct {
	UserID    string        `json:"user_id"`
	Username  string        `json:"username"`
	Event     EventResponse `json:"event"`
	UpdatedAt string        `json:"updated_at"`
}

type FeedResponse struct {
	Events    []EventResponse        `json:"events"`
	Activity  []FeedActivityResponse `json:"activity"`
	Suggested []UserResponse         `json:"suggested"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:               e.ID,
		OrganizerID:      e.OrganizerID,
		Title:            e.Title,
		Description:      e.Description,
		Category:         string(e.Category),
		Status:           string(e.Status),
		StartsAt:         e.StartsAt.Format(time.RFC3339),
		Location:         e.Location,
		Price:            e.Price,
		MaxAttendees:     e.MaxAttendees,
		CircleID:         e.CircleID,
		CurrentAttendees: e.CurrentAttendees,
		CreatedAt:        e.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventDetailsResponse(d *domain.EventDetails) EventDetailsResponse {
	types := make([]TicketTypeResponse, 0, len(d.TicketTypes))
	for _, ta := range d.TicketTypes {
		resp := ToTicketTypeResponse(&ta.TicketType)
		resp.Available = ta.Available
		types = append(types, resp)
	}

	return EventDetailsResponse{
		Event:       ToEventResponse(&d.Event),
		TicketTypes: types,
	}
}

func ToTicketTypeResponse(tt *domain.TicketType) TicketTypeResponse {
	return TicketTypeResponse{
		ID:                tt.ID,
		EventID:           tt.EventID,
		Name:              tt.Name,
		Description:       tt.Description,
		Price:             tt.Price,
		QuantityAvailable: tt.QuantityAvailable,
		QuantitySold:      tt.QuantitySold,
		Available:         max(0, tt.QuantityAvailable-tt.QuantitySold),
	}
}

func ToPurchaseResponse(p *domain.Purchase) PurchaseResponse {
	tickets := make([]TicketResponse, 0, len(p.Tickets))
	for _, t := range p.Tickets {
		tickets = append(tickets, TicketResponse{ID: t.ID, Code: t.Code, IsUsed: t.IsUsed})
	}

	return PurchaseResponse{
		ID:               p.ID,
		EventID:          p.EventID,
		TicketTypeID:     p.TicketTypeID,
		UserID:           p.UserID,
		Quantity:         p.Quantity,
		UnitPrice:        p.UnitPrice,
		TotalPrice:       p.TotalPrice,
		Status:           string(p.Status),
		PaymentMethod:    p.PaymentMethod,
		PaymentReference: p.PaymentReference,
		Tickets:          tickets,
		CreatedAt:        p.CreatedAt.Format(time.RFC3339),
	}
}

func ToPurchaseResponses(purchases []*domain.Purchase) []PurchaseResponse {
	resp := make([]PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		resp = append(resp, ToPurchaseResponse(p))
	}
	return resp
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		FullName:       u.FullName,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

func ToCreatorDashboardResponse(d *stats.CreatorDashboard) CreatorDashboardResponse {
	return CreatorDashboardResponse{
		Summary:       d.Summary,
		TopPerforming: recordsToEvents(d.TopPerforming),
		Recent:        recordsToEvents(d.Recent),
	}
}

func ToParticipantDashboardResponse(d *stats.ParticipantDashboard) ParticipantDashboardResponse {
	counts := make(map[string]int, len(d.Summary.Categories.Counts))
	for c, n := range d.Summary.Categories.Counts {
		counts[string(c)] = n
	}

	var favorite *string
	if d.FavoriteCategory != nil {
		s := string(*d.FavoriteCategory)
		favorite = &s
	}

	return ParticipantDashboardResponse{
		UpcomingCount:    d.Summary.UpcomingCount,
		AttendedCount:    d.Summary.AttendedCount,
		TotalSpent:       d.Summary.TotalSpent,
		FavoriteCategory: favorite,
		CategoryCounts:   counts,
		Upcoming:         eventsToResponses(d.Upcoming),
		Past:             eventsToResponses(d.Past),
		Popular:          eventsToResponses(d.Popular),
	}
}

func recordsToEvents(records []domain.EventRecord) []EventResponse {
	resp := make([]EventResponse, 0, len(records))
	for i := range records {
		resp = append(resp, ToEventResponse(&records[i].Event))
	}
	return resp
}

func eventsToResponses(events []domain.Event) []EventResponse {
	resp := make([]EventResponse, 0, len(events))
	for i := range events {
		resp = append(resp, ToEventResponse(&events[i]))
	}
	return resp
}

func ToCircleResponse(c *domain.Circle) CircleResponse {
	return CircleResponse{
		ID:          c.ID,
		CreatorID:   c.CreatorID,
		Name:        c.Name,
		Description: c.Description,
		IsPrivate:   c.IsPrivate,
		MemberCount: c.MemberCount,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
	}
}

func ToCircleDetailsResponse(d *domain.CircleDetails) CircleDetailsResponse {
	members := make([]CircleMemberResponse, 0, len(d.Members))
	for _, m := range d.Members {
		members = append(members, CircleMemberResponse{
			UserID:   m.UserID,
			Username: m.Username,
			FullName: m.FullName,
			Role:     string(m.Role),
			JoinedAt: m.JoinedAt.Format(time.RFC3339),
		})
	}

	return CircleDetailsResponse{
		Circle:  ToCircleResponse(&d.Circle),
		Members: members,
		Events:  eventsToResponses(d.Events),
	}
}

func ToFeedResponse(f *domain.Feed) FeedResponse {
	activity := make([]FeedActivityResponse, 0, len(f.Activity))
	for i := range f.Activity {
		a := &f.Activity[i]
		activity = append(activity, FeedActivityResponse{
			UserID:    a.UserID,
			Username:  a.Username,
			Event:     ToEventResponse(&a.Event),
			UpdatedAt: a.UpdatedAt.Format(time.RFC3339),
		})
	}

	suggested := make([]UserResponse, 0, len(f.Suggested))
	for i := range f.Suggested {
		suggested = append(suggested, ToUserResponse(&f.Suggested[i]))
	}

	return FeedResponse{
		Events:    eventsToResponses(f.Events),
		Activity:  activity,
		Suggested: suggested,
	}
}
