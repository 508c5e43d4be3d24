package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	PublishEvent(c *ginext.Context)
	SetAttendance(c *ginext.Context)
	CreateTicketType(c *ginext.Context)
	PurchaseTickets(c *ginext.Context)
	ConfirmPurchase(c *ginext.Context)
	MyPurchases(c *ginext.Context)
	CreatorDashboard(c *ginext.Context)
	ParticipantDashboard(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	FollowUser(c *ginext.Context)
	UnfollowUser(c *ginext.Context)
	MyFeed(c *ginext.Context)
	CreateCircle(c *ginext.Context)
	MyCircles(c *ginext.Context)
	GetCircle(c *ginext.Context)
	JoinCircle(c *ginext.Context)
	AddCircleMember(c *ginext.Context)
	LeaveCircle(c *ginext.Context)
}

// InitRouter wires the API. purchaseLimit guards the purchase endpoint only.
func InitRouter(mode string, h Handler, purchaseLimit ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Events
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.POST("/events/:id/publish", h.PublishEvent)
		api.PUT("/events/:id/attendance", h.SetAttendance)

		// Tickets
		api.POST("/events/:id/ticket-types", h.CreateTicketType)
		api.POST("/events/:id/purchases", purchaseLimit, h.PurchaseTickets)
		api.POST("/purchases/:id/confirm", h.ConfirmPurchase)

		// Me
		api.GET("/me/purchases", h.MyPurchases)
		api.GET("/me/dashboard/creator", h.CreatorDashboard)
		api.GET("/me/dashboard/participant", h.ParticipantDashboard)
		api.GET("/me/circles", h.MyCircles)
		api.GET("/me/feed", h.MyFeed)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.POST("/users/:id/follow", h.FollowUser)
		api.DELETE("/users/:id/follow", h.UnfollowUser)

		// Circles
		api.POST("/circles", h.CreateCircle)
		api.GET("/circles/:id", h.GetCircle)
		api.POST("/circles/:id/join", h.JoinCircle)
		api.POST("/circles/:id/members", h.AddCircleMember)
		api.POST("/circles/:id/leave", h.LeaveCircle)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	metricsHandler := promhttp.Handler()
	router.GET("/metrics", func(c *ginext.Context) {
		metricsHandler.ServeHTTP(c.Writer, c.Request)
	})

	return router
}
