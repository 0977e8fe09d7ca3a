package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the Prometheus collectors for the ACL core.
type Metrics struct {
	RoleMutations *prometheus.CounterVec
}

// New initializes the collectors and registers them with reg. A nil reg
// falls back to the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		RoleMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "console",
			Subsystem: "acl",
			Name:      "role_mutations_total",
			Help:      "Role mutations by operation and outcome.",
		}, []string{"operation", "outcome"}), // outcome: success, rejected, error
	}

	reg.MustRegister(m.RoleMutations)
	return m
}
