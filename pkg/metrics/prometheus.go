package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	ReservationsBooked    *prometheus.CounterVec
	ReservationsCompleted prometheus.Counter
	ScheduleMismatches    prometheus.Counter
	CompanyStatusChanges  *prometheus.CounterVec
	StoreParseRecoveries  *prometheus.CounterVec
	StoreQuotaRetries     *prometheus.CounterVec
	StoreOperationTime    *prometheus.HistogramVec
	NotificationsSent     *prometheus.CounterVec
	ErrorsCount           *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics registered on reg
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ReservationsBooked: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservations_booked_total",
			Help:      "The total number of reservations created",
		}, []string{"class"}),
		ReservationsCompleted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservations_completed_total",
			Help:      "The total number of reservations marked paid and arrived",
		}),
		ScheduleMismatches: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "schedule_mismatches_total",
			Help:      "Booking attempts on a day the route does not run",
		}),
		CompanyStatusChanges: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "company_status_changes_total",
			Help:      "Company moderation decisions",
		}, []string{"status"}),
		StoreParseRecoveries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_parse_recoveries_total",
			Help:      "Corrupted values removed and replaced by the fallback",
		}, []string{"key"}),
		StoreQuotaRetries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_quota_retries_total",
			Help:      "Writes retried after clearing a key on quota exhaustion",
		}, []string{"key"}),
		StoreOperationTime: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "store_operation_seconds",
			Help:      "Time taken by store reads and writes",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
		NotificationsSent: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_sent_total",
			Help:      "Reservation notifications by channel and result",
		}, []string{"channel", "result"}),
		ErrorsCount: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
