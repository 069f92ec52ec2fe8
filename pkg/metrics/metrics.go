package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/bufbuild/connect-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodgram_requests_total",
			Help: "Total number of handled RPC requests",
		},
		[]string{"procedure", "code"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "foodgram_request_duration_seconds",
			Help:    "Duration of RPC requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"procedure"},
	)

	// ShoppingListGroups tracks how many (ingredient, unit) groups each exported list has.
	ShoppingListGroups = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "foodgram_shopping_list_groups",
			Help:    "Number of aggregated ingredient groups per shopping list download",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
		},
	)

	ImportedRecipes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodgram_imported_recipes_total",
			Help: "Total number of recipe import attempts by outcome",
		},
		[]string{"outcome"},
	)
)

// codeLabel returns the connect code name used as a label, "ok" for success.
func codeLabel(err error) string {
	if err == nil {
		return "ok"
	}

	return connect.CodeOf(err).String()
}

func NewMetricsInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			procedure := req.Spec().Procedure
			start := time.Now()

			res, err := next(ctx, req)

			RequestDuration.WithLabelValues(procedure).Observe(time.Since(start).Seconds())
			RequestsTotal.WithLabelValues(procedure, codeLabel(err)).Inc()

			return res, err
		}
	}
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
