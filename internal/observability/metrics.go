// Package observability exposes Prometheus metrics for domain events.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// IdeasCreated counts ideas submitted to the board.
	IdeasCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ideaboard_ideas_created_total",
		Help: "Total number of ideas created",
	})

	// IdeasDeleted counts ideas removed by their authors.
	IdeasDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ideaboard_ideas_deleted_total",
		Help: "Total number of ideas deleted",
	})

	// LikeToggles counts like and unlike operations by direction.
	LikeToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ideaboard_like_toggles_total",
		Help: "Total number of like/unlike operations",
	}, []string{"direction"})

	// CommentsAdded counts comments attached to ideas.
	CommentsAdded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ideaboard_comments_added_total",
		Help: "Total number of comments added",
	})

	// Registrations counts successful account registrations.
	Registrations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ideaboard_registrations_total",
		Help: "Total number of accounts registered",
	})
)
