package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the recommendation Recommend HTTP handler
	RecommendLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "recommend_latency_seconds",
		Help:    "Latency of event recommendation requests",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of recommendation lists served
	RecommendRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommend_requests_total",
		Help: "Total number of recommendation requests",
	})

	// Total budget transactions recorded
	BudgetTransactions = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "budget_transactions_total",
		Help: "Total number of budget transactions recorded",
	})

	// Total sponsorship deals created
	SponsorshipDeals = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sponsorship_deals_total",
		Help: "Total number of sponsorship deals created",
	})
)

func Init() {
	prometheus.MustRegister(
		RecommendLatency,
		RecommendRequests,
		BudgetTransactions,
		SponsorshipDeals,
	)
}
