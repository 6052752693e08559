package metrics

import (
	"github.com/DevBaweja/dating-app-backend/internal/entity"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	likesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dating_likes_total",
			Help: "Total number of recorded likes by kind",
		},
		[]string{"kind"},
	)

	matchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dating_matches_total",
			Help: "Total number of matches created",
		},
	)

	matchesRemoved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dating_matches_removed_total",
			Help: "Total number of matches removed",
		},
	)

	compatibilityScores = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dating_compatibility_scores",
			Help:    "Distribution of compatibility scores at match creation",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)
)

func RecordLike(kind entity.LikeKind) {
	likesTotal.WithLabelValues(string(kind)).Inc()
}

func RecordMatch() {
	matchesTotal.Inc()
}

func RecordMatchRemoved() {
	matchesRemoved.Inc()
}

func RecordCompatibilityScore(score int) {
	compatibilityScores.Observe(float64(score))
}
