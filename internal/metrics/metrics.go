package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	TicketsReserved = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tickets_reserved_total",
			Help: "number of tickets reserved by accepted purchases",
		},
	)
	ReservationsRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticket_reservations_rejected_total",
			Help: "number of purchases rejected, by reason",
		},
		[]string{"reason"},
	)
	ReservationConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ticket_reservation_conflicts_total",
			Help: "number of lost compare-and-set races on ticket inventory",
		},
	)
	HandlerPanics = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_handler_panics_total",
			Help: "number of panics recovered in HTTP handlers, by route",
		},
		[]string{"route"},
	)
	PurchasesCancelled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ticket_purchases_expired_total",
			Help: "number of pending purchases cancelled after their payment window",
		},
	)
)

const (
	ReasonSoldOut  = "sold_out"
	ReasonConflict = "conflict"
)

func Init() {
	prometheus.MustRegister(
		TicketsReserved,
		ReservationsRejected,
		ReservationConflicts,
		PurchasesCancelled,
		HandlerPanics,
	)
}
