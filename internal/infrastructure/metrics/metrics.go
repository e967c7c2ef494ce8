package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "invite_studio"

// Metrics holds the application counters. A nil *Metrics is valid and records
// nothing, so components can be built without a registry in tests.
type Metrics struct {
	uploadCredentials *prometheus.CounterVec
	serverUploads     *prometheus.CounterVec
	ordersCreated     *prometheus.CounterVec
	verifications     *prometheus.CounterVec
	orphansSwept      *prometheus.CounterVec
	httpRequests      *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		uploadCredentials: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upload_credentials_issued_total",
			Help:      "Presigned upload credentials issued, by folder.",
		}, []string{"folder"}),
		serverUploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "server_uploads_total",
			Help:      "Server-side buffer uploads, by result.",
		}, []string{"result"}),
		ordersCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_orders_created_total",
			Help:      "Payment orders created, by gateway mode.",
		}, []string{"mode"}),
		verifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_verifications_total",
			Help:      "Payment verification attempts, by result.",
		}, []string{"result"}),
		orphansSwept: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orphan_uploads_swept_total",
			Help:      "Pending uploads resolved by the orphan sweep, by outcome.",
		}, []string{"outcome"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests, by method, route and status.",
		}, []string{"method", "route", "status"}),
	}
	if reg != nil {
		reg.MustRegister(
			m.uploadCredentials,
			m.serverUploads,
			m.ordersCreated,
			m.verifications,
			m.orphansSwept,
			m.httpRequests,
		)
	}
	return m
}

func (m *Metrics) UploadCredentialIssued(folder string) {
	if m == nil {
		return
	}
	m.uploadCredentials.WithLabelValues(folder).Inc()
}

func (m *Metrics) ServerUpload(ok bool) {
	if m == nil {
		return
	}
	m.serverUploads.WithLabelValues(result(ok)).Inc()
}

func (m *Metrics) OrderCreated(mode string) {
	if m == nil {
		return
	}
	m.ordersCreated.WithLabelValues(mode).Inc()
}

func (m *Metrics) Verification(outcome string) {
	if m == nil {
		return
	}
	m.verifications.WithLabelValues(outcome).Inc()
}

func (m *Metrics) OrphanSwept(outcome string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.orphansSwept.WithLabelValues(outcome).Add(float64(n))
}

func (m *Metrics) HTTPRequest(method, route string, status int) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unknown"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

func result(ok bool) string {
	if ok {
		return "ok"
	}
	return "error"
}
