package sweeper

import "github.com/prometheus/client_golang/prometheus"

type sweepMetrics struct {
	titles    int
	notified  int
	unchanged int
	skipped   int
}

var (
	sweepIterations = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "reminder_sweep_iterations_total",
		Help: "Total number of reminder sweep iterations started",
	})
	sweepNotifications = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "reminder_sweep_notifications_total",
		Help: "Total number of episode-release notifications sent",
	})
	sweepErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "reminder_sweep_errors_total",
		Help: "Total number of sweep iterations aborted by an error",
	})
)

func init() {
	prometheus.MustRegister(sweepIterations)
	prometheus.MustRegister(sweepNotifications)
	prometheus.MustRegister(sweepErrors)
}
