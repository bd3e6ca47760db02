package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameSignups = "signups"
	NameLogins  = "logins"
	LabelStatus = "status"

	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

var Signups = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameSignups,
		Help:      "Total signup attempts",
		Namespace: Namespace,
	},
	[]string{LabelStatus},
)

var Logins = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameLogins,
		Help:      "Total login attempts",
		Namespace: Namespace,
	},
	[]string{LabelStatus},
)
