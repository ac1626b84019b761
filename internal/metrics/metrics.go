package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Box Metrics
var (
	BoxesOpened = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBoxesOpened,
			Help: HelpTextBoxesOpened,
		},
		[]string{LabelBox, LabelRarity, LabelGrade},
	)

	ContaDrops = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameContaDrops,
			Help: HelpTextContaDrops,
		},
		[]string{LabelBox},
	)

	BoxSpend = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBoxSpend,
			Help: HelpTextBoxSpend,
		},
	)
)

// Economy Metrics
var (
	ItemsSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsSold,
			Help: HelpTextItemsSold,
		},
		[]string{LabelWeapon},
	)

	MoneyEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMoneyEarned,
			Help: HelpTextMoneyEarned,
		},
	)

	ItemsUsed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsUsed,
			Help: HelpTextItemsUsed,
		},
		[]string{LabelBorder},
	)
)

// Market Metrics
var (
	MarketListings = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMarketListings,
			Help: HelpTextMarketListings,
		},
	)

	MarketSales = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMarketSales,
			Help: HelpTextMarketSales,
		},
	)

	MarketCancellations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMarketCancellations,
			Help: HelpTextMarketCancellations,
		},
	)

	MarketVolume = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMarketVolume,
			Help: HelpTextMarketVolume,
		},
	)
)

// Passive Metrics
var (
	Recalculations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRecalculations,
			Help: HelpTextRecalculations,
		},
		[]string{LabelResult},
	)

	RecalculationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameRecalculationLatency,
			Help:    HelpTextRecalculationLatency,
			Buckets: RecalcLatencyBuckets,
		},
	)
)
