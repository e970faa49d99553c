package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all application metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequests       *prometheus.CounterVec
	HTTPRequestLatency *prometheus.HistogramVec

	// Appointment ledger metrics
	AppointmentsBooked         prometheus.Counter
	AppointmentBookingConflict prometheus.Counter
	AppointmentStatusUpdates   *prometheus.CounterVec

	// Prescription metrics
	PrescriptionsCreated prometheus.Counter

	// Side effect metrics
	EventPublishFailures  *prometheus.CounterVec
	ArchiveFailures       prometheus.Counter
	DoctorDirectoryCache  *prometheus.CounterVec
	LoginAttemptsRejected prometheus.Counter
}

// NewMetrics creates all application metrics and registers them on reg.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		HTTPRequestLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"method", "route"}),

		AppointmentsBooked: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "appointments",
			Name:      "booked_total",
			Help:      "Total number of booked appointments",
		}),
		AppointmentBookingConflict: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "appointments",
			Name:      "booking_conflicts_total",
			Help:      "Total number of bookings rejected because the doctor slot was taken",
		}),
		AppointmentStatusUpdates: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "appointments",
			Name:      "status_updates_total",
			Help:      "Total number of appointment status updates by target status",
		}, []string{"status"}),

		PrescriptionsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "prescriptions",
			Name:      "created_total",
			Help:      "Total number of issued prescriptions",
		}),

		EventPublishFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "events",
			Name:      "publish_failures_total",
			Help:      "Total number of clinic events that could not be published",
		}, []string{"event_type"}),
		ArchiveFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "prescriptions",
			Name:      "archive_failures_total",
			Help:      "Total number of prescriptions that could not be archived",
		}),
		DoctorDirectoryCache: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "doctors",
			Name:      "directory_cache_total",
			Help:      "Doctor directory cache lookups by result",
		}, []string{"result"}),
		LoginAttemptsRejected: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "login_attempts_rejected_total",
			Help:      "Total number of logins rejected by the attempt limiter",
		}),
	}
}
