package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry bundles the marketplace's Prometheus instruments around a private
// registry so tests can create isolated instances.
type Registry struct {
	reg *prometheus.Registry

	AuctionsOpened     prometheus.Counter
	AuctionsClosed     prometheus.Counter
	BidsAccepted       prometheus.Counter
	BidsRejected       *prometheus.CounterVec
	BidConflictRetries prometheus.Counter
	PlaceBidSeconds    prometheus.Histogram
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	opened := prometheus.NewCounter(prometheus.CounterOpts{Name: "agrastra_auctions_opened_total"})
	closed := prometheus.NewCounter(prometheus.CounterOpts{Name: "agrastra_auctions_closed_total"})
	accepted := prometheus.NewCounter(prometheus.CounterOpts{Name: "agrastra_bids_accepted_total"})
	rejected := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "agrastra_bids_rejected_total"}, []string{"reason"})
	retries := prometheus.NewCounter(prometheus.CounterOpts{Name: "agrastra_bid_conflict_retries_total"})
	latency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "agrastra_place_bid_seconds",
		Buckets: prometheus.DefBuckets,
	})

	r.MustRegister(opened, closed, accepted, rejected, retries, latency)
	return &Registry{
		reg:                r,
		AuctionsOpened:     opened,
		AuctionsClosed:     closed,
		BidsAccepted:       accepted,
		BidsRejected:       rejected,
		BidConflictRetries: retries,
		PlaceBidSeconds:    latency,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
