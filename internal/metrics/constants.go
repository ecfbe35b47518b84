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

// Game metric names
const (
	MetricNameTapsTotal          = "taps_total"
	MetricNameCriticalTapsTotal  = "critical_taps_total"
	MetricNameViewsEarned        = "views_earned_total"
	MetricNameUpgradesPurchased  = "upgrades_purchased_total"
	MetricNameBoostersPurchased  = "boosters_purchased_total"
	MetricNameBoostersActivated  = "boosters_activated_total"
	MetricNameBoostersExpired    = "boosters_expired_total"
	MetricNameOfflineViewsCredit = "offline_views_credited_total"
	MetricNameRewardsGranted     = "ad_rewards_granted_total"
)

// Persistence/sync metric names
const (
	MetricNamePersistenceFailures = "local_persistence_failures_total"
	MetricNameSyncPushes          = "remote_sync_pushes_total"
	MetricNameSyncFailures        = "remote_sync_failures_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

const (
	HelpTextTapsTotal          = "Total number of taps resolved (user and synthetic)"
	HelpTextCriticalTapsTotal  = "Total number of critical taps"
	HelpTextViewsEarned        = "Total views credited across all income sources"
	HelpTextUpgradesPurchased  = "Total number of upgrade purchases"
	HelpTextBoostersPurchased  = "Total number of booster purchases"
	HelpTextBoostersActivated  = "Total number of booster activations"
	HelpTextBoostersExpired    = "Total number of boosters removed by the expiry sweep"
	HelpTextOfflineViewsCredit = "Total views credited by offline catch-up reconciliation"
	HelpTextRewardsGranted     = "Total number of ad rewards applied"
)

const (
	HelpTextPersistenceFailures = "Total number of failed local persistence writes"
	HelpTextSyncPushes          = "Total number of remote sync push attempts"
	HelpTextSyncFailures        = "Total number of failed remote sync calls"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelKind    = "kind"
	LabelSource  = "source"
	LabelDataset = "dataset"
)

// Label values for the views source label
const (
	SourceTap     = "tap"
	SourcePassive = "passive"
	SourceOffline = "offline"
)

// HTTPLatencyBuckets are the histogram buckets for request latency.
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}
