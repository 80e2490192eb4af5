package domain

import "time"

// RawCounters são os contadores brutos recebidos das plataformas
type RawCounters struct {
	Views       int64  `json:"views"`
	Likes       int64  `json:"likes"`
	Comments    int64  `json:"comments"`
	Shares      int64  `json:"shares"`
	Saves       int64  `json:"saves"`
	Clicks      int64  `json:"clicks"`
	Conversions int64  `json:"conversions"`
	Revenue     string `json:"revenue"`
	Commission  string `json:"commission"`
	AdSpend     string `json:"adSpend"`
}

// DerivedMetrics são as taxas calculadas a partir dos contadores, já formatadas
type DerivedMetrics struct {
	ClickThroughRate string `json:"clickThroughRate"`
	ConversionRate   string `json:"conversionRate"`
	ROI              string `json:"roi"`
	CPC              string `json:"cpc"`
	CPM              string `json:"cpm"`
}

type PerformanceAnalytics struct {
	ID              int64     `json:"id"`
	OrgID           int       `json:"orgId"`
	ContentID       *int64    `json:"contentId"`
	ScheduledPostID *int64    `json:"scheduledPostId"`
	Platform        string    `json:"platform"`
	Niche           string    `json:"niche"`
	RecordedAt      time.Time `json:"recordedAt"`
	RawCounters
	DerivedMetrics
}

type RecordAnalyticsInput struct {
	OrgID           int        `json:"-"`
	ContentID       *int64     `json:"contentId"`
	ScheduledPostID *int64     `json:"scheduledPostId"`
	Platform        string     `json:"platform"`
	Niche           string     `json:"niche"`
	RecordedAt      *time.Time `json:"recordedAt"`
	RawCounters
}

type AnalyticsFilters struct {
	OrgID      int
	StartDate  *time.Time
	EndDate    *time.Time
	Platform   string
	Niche      string
	ContentIDs []int64
	Limit      int
}

// MetricsSummary soma os contadores e recalcula as taxas no nível agregado
type MetricsSummary struct {
	Records     int     `json:"records"`
	Views       int64   `json:"views"`
	Likes       int64   `json:"likes"`
	Comments    int64   `json:"comments"`
	Shares      int64   `json:"shares"`
	Saves       int64   `json:"saves"`
	Clicks      int64   `json:"clicks"`
	Conversions int64   `json:"conversions"`
	Revenue     float64 `json:"revenue"`
	Commission  float64 `json:"commission"`
	AdSpend     float64 `json:"adSpend"`
	DerivedMetrics
}

type ContentPerformance struct {
	ContentID int64 `json:"contentId"`
	MetricsSummary
}

type ROIDashboard struct {
	Summary       MetricsSummary            `json:"summary"`
	ByPlatform    map[string]MetricsSummary `json:"byPlatform"`
	ByDate        map[string]MetricsSummary `json:"byDate"`
	TopContent    []ContentPerformance      `json:"topContent"`
	RecentRecords []*PerformanceAnalytics   `json:"recentRecords"`
}

type TrendFilters struct {
	OrgID    int
	Metric   string
	Platform string
	Niche    string
	Days     int
}

type TrendPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type PerformanceTrends struct {
	Metric   string       `json:"metric"`
	Platform string       `json:"platform,omitempty"`
	Niche    string       `json:"niche,omitempty"`
	Days     int          `json:"days"`
	Points   []TrendPoint `json:"points"`
}

type ContentComparison struct {
	ContentID  int64                     `json:"contentId"`
	Summary    MetricsSummary            `json:"summary"`
	ByPlatform map[string]MetricsSummary `json:"byPlatform"`
}

// WebhookPayload é o corpo enviado por integrações externas com métricas
type WebhookPayload struct {
	OrgID           int          `json:"orgId"`
	Platform        string       `json:"platform"`
	ContentID       *int64       `json:"contentId"`
	ScheduledPostID *int64       `json:"scheduledPostId"`
	Niche           string       `json:"niche"`
	Metrics         *RawCounters `json:"metrics"`
	RecordedAt      *time.Time   `json:"recordedAt"`
}
