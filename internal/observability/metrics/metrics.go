package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"service", "method", "path", "status"},
	)

	HTTPRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)

	RegistrationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_registrations_total",
			Help: "Total number of registration submissions.",
		},
		[]string{"service", "result"},
	)

	VerificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_verifications_total",
			Help: "Total number of registration verification attempts.",
		},
		[]string{"service", "result"},
	)

	LoginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_logins_total",
			Help: "Total number of login attempts.",
		},
		[]string{"service", "result"},
	)

	VotesCastTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_votes_cast_total",
			Help: "Total number of vote casts.",
		},
		[]string{"service", "type", "result"},
	)

	MailDispatchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_mail_dispatch_total",
			Help: "Total number of outbound mail dispatch attempts.",
		},
		[]string{"service", "result"},
	)
)

func MustRegister(serviceName string) {
	HTTPRequestsTotal = HTTPRequestsTotal.MustCurryWith(prometheus.Labels{"service": serviceName})
	HTTPRequestDurationSeconds = HTTPRequestDurationSeconds.MustCurryWith(prometheus.Labels{"service": serviceName}).(*prometheus.HistogramVec)
	RegistrationsTotal = RegistrationsTotal.MustCurryWith(prometheus.Labels{"service": serviceName})
	VerificationsTotal = VerificationsTotal.MustCurryWith(prometheus.Labels{"service": serviceName})
	LoginsTotal = LoginsTotal.MustCurryWith(prometheus.Labels{"service": serviceName})
	VotesCastTotal = VotesCastTotal.MustCurryWith(prometheus.Labels{"service": serviceName})
	MailDispatchTotal = MailDispatchTotal.MustCurryWith(prometheus.Labels{"service": serviceName})

	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDurationSeconds,
		RegistrationsTotal,
		VerificationsTotal,
		LoginsTotal,
		VotesCastTotal,
		MailDispatchTotal,
	)
}
