package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameBoxesOpened         = "boxes_opened_total"
	MetricNameContaDrops          = "conta_drops_total"
	MetricNameBoxSpend            = "box_spend_total"
	MetricNameItemsSold           = "items_sold_total"
	MetricNameMoneyEarned         = "money_earned_total"
	MetricNameItemsUsed           = "items_used_total"
	MetricNameMarketListings      = "market_listings_total"
	MetricNameMarketSales         = "market_sales_total"
	MetricNameMarketCancellations = "market_cancellations_total"
	MetricNameMarketVolume        = "market_volume_total"
)

// Passive recalculation metric names
const (
	MetricNameRecalculations       = "passive_recalculations_total"
	MetricNameRecalculationLatency = "passive_recalculation_duration_seconds"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextBoxesOpened         = "Total number of boxes opened"
	HelpTextContaDrops          = "Total number of conta variants dropped"
	HelpTextBoxSpend            = "Total currency spent on boxes"
	HelpTextItemsSold           = "Total number of items sold to the system"
	HelpTextMoneyEarned         = "Total money earned from selling items to the system"
	HelpTextItemsUsed           = "Total number of border items used"
	HelpTextMarketListings      = "Total number of market listings created"
	HelpTextMarketSales         = "Total number of market listings sold"
	HelpTextMarketCancellations = "Total number of market listings cancelled"
	HelpTextMarketVolume        = "Total currency traded on the market"
)

// Passive recalculation help text
const (
	HelpTextRecalculations       = "Total number of passive recalculations by result"
	HelpTextRecalculationLatency = "Passive recalculation latency in seconds"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelBox    = "box"
	LabelRarity = "rarity"
	LabelGrade  = "grade"
	LabelWeapon = "weapon"
	LabelBorder = "border"
	LabelResult = "result"
)

// Recalculation result label values
const (
	RecalcResultOK           = "ok"
	RecalcResultFailed       = "failed"
	RecalcResultDeadLettered = "dead_lettered"
)

// GradeNone labels drops of non-gradable items
const GradeNone = "none"

// PathUnmatched labels requests that matched no route
const PathUnmatched = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// RecalcLatencyBuckets covers recalculations of small to very large inventories
var RecalcLatencyBuckets = []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgPayloadDecodeFailed = "Failed to decode event payload for metrics"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
	LogMsgInvalidAmount       = "Event carried an unparsable amount"
)
