package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/what2do/eventsphere/internal/domain"
	"github.com/what2do/eventsphere/internal/handler/dto"
	"github.com/what2do/eventsphere/internal/stats"
)

// UserIDHeader carries the principal resolved by the auth gateway.
const UserIDHeader = "X-User-ID"

type EventSvc interface {
	CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	Publish(ctx context.Context, eventID, organizerID string) error
	GetDetails(ctx context.Context, eventID, viewerID string) (*domain.EventDetails, error)
	List(ctx context.Context, f domain.EventFilter) ([]*domain.Event, error)
	SetAttendance(ctx context.Context, eventID, userID string, status domain.AttendanceStatus) error
}

type TicketSvc interface {
	CreateTicketType(ctx context.Context, organizerID string, input domain.CreateTicketTypeInput) (*domain.TicketType, error)
	Purchase(ctx context.Context, input domain.PurchaseInput) ([]*domain.Purchase, error)
	Confirm(ctx context.Context, purchaseID, userID string) (*domain.Purchase, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Purchase, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type DashboardSvc interface {
	Creator(ctx context.Context, organizerID string) (*stats.CreatorDashboard, error)
	Participant(ctx context.Context, userID string) (*stats.ParticipantDashboard, error)
}

type CircleSvc interface {
	Create(ctx context.Context, input domain.CreateCircleInput) (*domain.Circle, error)
	Join(ctx context.Context, circleID, userID string) error
	AddMember(ctx context.Context, circleID, adminID, userID string) error
	Leave(ctx context.Context, circleID, userID string) error
	ListMine(ctx context.Context, userID string) ([]*domain.Circle, error)
	Details(ctx context.Context, circleID, viewerID string) (*domain.CircleDetails, error)
}

type FeedSvc interface {
	Follow(ctx context.Context, followerID, followingID string) error
	Unfollow(ctx context.Context, followerID, followingID string) error
	Feed(ctx context.Context, userID string) (*domain.Feed, error)
}

type Handler struct {
	eventService     EventSvc
	ticketService    TicketSvc
	userService      UserSvc
	dashboardService DashboardSvc
	circleService    CircleSvc
	feedService      FeedSvc
}

func NewHandler(
	eventService EventSvc,
	ticketService TicketSvc,
	userService UserSvc,
	dashboardService DashboardSvc,
	circleService CircleSvc,
	feedService FeedSvc,
) *Handler {
	return &Handler{
		eventService:     eventService,
		ticketService:    ticketService,
		userService:      userService,
		dashboardService: dashboardService,
		circleService:    circleService,
		feedService:      feedService,
	}
}

// Events
func (h *Handler) CreateEvent(c *ginext.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid starts_at format, expected RFC3339",
		})
		return
	}

	input := domain.CreateEventInput{
		OrganizerID:  userID,
		Title:        req.Title,
		Description:  req.Description,
		Category:     domain.Category(req.Category),
		StartsAt:     startsAt,
		Location:     req.Location,
		Price:        req.Price,
		MaxAttendees: req.MaxAttendees,
		CircleID:     req.CircleID,
		Publish:      req.Publish,
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) PublishEvent(c *ginext.Context) {
	eventID, ok := pathID(c, "invalid event id")
	if !ok {
		return
	}
	userID, ok := principal(c)
	if !ok {
		return
	}

	if err := h.eventService.Publish(c.Request.Context(), eventID, userID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "published"})
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id, ok := pathID(c, "invalid event id")
	if !ok {
		return
	}

	// анонимный просмотр разрешён, черновики увидит только организатор
	viewerID := c.GetHeader(UserIDHeader)
	if _, err := uuid.Parse(viewerID); err != nil {
		viewerID = ""
	}

	details, err := h.eventService.GetDetails(c.Request.Context(), id, viewerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	f := domain.EventFilter{
		Category: domain.Category(c.Query("category")),
		Sort:     domain.EventSort(c.Query("sort")),
	}
	if raw := c.Query("upcoming"); raw != "" {
		upcoming, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid upcoming flag"})
			return
		}
		f.UpcomingOnly = upcoming
	}

	events, err := h.eventService.List(c.Request.Context(), f)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) SetAttendance(c *ginext.Context) {
	eventID, ok := pathID(c, "invalid event id")
	if !ok {
		return
	}
	userID, ok := principal(c)
	if !ok {
		return
	}

	var req dto.AttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	status := domain.AttendanceStatus(req.Status)
	if err := h.eventService.SetAttendance(c.Request.Context(), eventID, userID, status); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": req.Status})
}

// Tickets

func (h *Handler) CreateTicketType(c *ginext.Context) {
	eventID, ok := pathID(c, "invalid event id")
	if !ok {
		return
	}
	userID, ok := principal(c)
	if !ok {
		return
	}

	var req dto.CreateTicketTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateTicketTypeInput{
		EventID:           eventID,
		Name:              req.Name,
		Description:       req.Description,
		Price:             req.Price,
		QuantityAvailable: req.QuantityAvailable,
	}

	tt, err := h.ticketService.CreateTicketType(c.Request.Context(), userID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTicketTypeResponse(tt))
}

func (h *Handler) PurchaseTickets(c *ginext.Context) {
	eventID, ok := pathID(c, "invalid event id")
	if !ok {
		return
	}
	userID, ok := principal(c)
	if !ok {
		return
	}

	var req dto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.PurchaseInput{
		UserID:        userID,
		EventID:       eventID,
		PaymentMethod: req.PaymentMethod,
		Items:         make([]domain.PurchaseItem, 0, len(req.Items)),
	}
	for _, it := range req.Items {
		input.Items = append(input.Items, domain.PurchaseItem{
			TicketTypeID: it.TicketTypeID,
			Quantity:     it.Quantity,
		})
	}

	purchases, err := h.ticketService.Purchase(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPurchaseResponses(purchases))
}

func (h *Handler) ConfirmPurchase(c *ginext.Context) {
	purchaseID, ok := pathID(c, "invalid purchase id")
	if !ok {
		return
	}
	userID, ok := principal(c)
	if !ok {
		return
	}

	p, err := h.ticketService.Confirm(c.Request.Context(), purchaseID, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPurchaseResponse(p))
}

func (h *Handler) MyPurchases(c *ginext.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	purchases, err := h.ticketService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPurchaseResponses(purchases))
}

// Dashboards

func (h *Handler) CreatorDashboard(c *ginext.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	d, err := h.dashboardService.Creator(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCreatorDashboardResponse(d))
}

func (h *Handler) ParticipantDashboard(c *ginext.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	d, err := h.dashboardService.Participant(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToParticipantDashboardResponse(d))
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		Username:       req.Username,
		FullName:       req.FullName,
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func principal(c *ginext.Context) (string, bool) {
	userID := c.GetHeader(UserIDHeader)
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing or invalid " + UserIDHeader + " header"})
		return "", false
	}
	return userID, true
}

func pathID(c *ginext.Context, msg string) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg})
		return "", false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrTicketTypeNotFound),
		errors.Is(err, domain.ErrPurchaseNotFound),
		errors.Is(err, domain.ErrCircleNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInsufficientInventory),
		errors.Is(err, domain.ErrPurchaseNotPending),
		errors.Is(err, domain.ErrPurchaseExpired),
		errors.Is(err, domain.ErrEventNotPublished),
		errors.Is(err, domain.ErrEventAlreadyStarted),
		errors.Is(err, domain.ErrCreatorCannotLeave):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNotOrganizer),
		errors.Is(err, domain.ErrNotCircleMember),
		errors.Is(err, domain.ErrNotCircleAdmin),
		errors.Is(err, domain.ErrCirclePrivate):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrConcurrencyConflict):
		c.Header("Retry-After", "1")
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "tickets are in high demand, try again"})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
