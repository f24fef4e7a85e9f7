package recommend

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RecommendRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Count of recommendation requests by outcome and personalisation.",
		},
		[]string{"outcome", "personalized"},
	)

	candidatesScored = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommend_candidates_scored_total",
		Help: "Total number of candidate products scored by the ranker.",
	})
)

func init() {
	prometheus.MustRegister(RecommendRequestsTotal, candidatesScored)
}
