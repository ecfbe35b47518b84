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

// Game Metrics
var (
	TapsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTapsTotal,
			Help: HelpTextTapsTotal,
		},
	)

	CriticalTapsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCriticalTapsTotal,
			Help: HelpTextCriticalTapsTotal,
		},
	)

	ViewsEarned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameViewsEarned,
			Help: HelpTextViewsEarned,
		},
		[]string{LabelSource},
	)

	UpgradesPurchased = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUpgradesPurchased,
			Help: HelpTextUpgradesPurchased,
		},
		[]string{LabelKind},
	)

	BoostersPurchased = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBoostersPurchased,
			Help: HelpTextBoostersPurchased,
		},
		[]string{LabelKind},
	)

	BoostersActivated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBoostersActivated,
			Help: HelpTextBoostersActivated,
		},
		[]string{LabelKind},
	)

	BoostersExpired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBoostersExpired,
			Help: HelpTextBoostersExpired,
		},
	)

	OfflineViewsCredited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameOfflineViewsCredit,
			Help: HelpTextOfflineViewsCredit,
		},
	)

	RewardsGranted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRewardsGranted,
			Help: HelpTextRewardsGranted,
		},
		[]string{LabelKind},
	)
)

// Persistence and Sync Metrics
var (
	PersistenceFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePersistenceFailures,
			Help: HelpTextPersistenceFailures,
		},
	)

	SyncPushes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSyncPushes,
			Help: HelpTextSyncPushes,
		},
		[]string{LabelDataset},
	)

	SyncFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSyncFailures,
			Help: HelpTextSyncFailures,
		},
		[]string{LabelDataset},
	)
)
