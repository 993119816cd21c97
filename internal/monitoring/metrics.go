package monitoring

import "github.com/prometheus/client_golang/prometheus"

var (
	HttpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "endpoint"},
	)

	PurchasesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "presale_purchases_total",
			Help: "Total successful presale purchases",
		},
		[]string{"method"},
	)

	WagersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wagers_total",
			Help: "Total settled wagers",
		},
		[]string{"outcome"},
	)

	WithdrawalsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "treasury_withdrawals_total",
			Help: "Total administrator withdrawals",
		},
		[]string{"asset"},
	)
)

func Init() {
	prometheus.MustRegister(HttpRequests)
	prometheus.MustRegister(PurchasesTotal)
	prometheus.MustRegister(WagersTotal)
	prometheus.MustRegister(WithdrawalsTotal)
}
