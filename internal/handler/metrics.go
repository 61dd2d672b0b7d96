package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	chatTurnsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "handler_chat_turns_total",
			Help: "Total number of chat turns by step and status.",
		},
		[]string{"step", "status"},
	)

	templatesGeneratedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "handler_templates_generated_total",
			Help: "Total number of generated email templates by source.",
		},
		[]string{"source"},
	)

	fetchInfoTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "handler_fetch_info_total",
		Help: "Total number of single product lookups.",
	})
)
