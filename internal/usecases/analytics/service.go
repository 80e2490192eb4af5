package analytics

import (
	"context"
	"crypto/subtle"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cookaing-api/infrastructure/repository"
	"github.com/vfg2006/cookaing-api/internal/config"
	"github.com/vfg2006/cookaing-api/internal/domain"
	"github.com/vfg2006/cookaing-api/pkg/apiErrors"
	"github.com/vfg2006/cookaing-api/pkg/utils"
)

const (
	DefaultDashboardLimit = 10
	DefaultTrendDays      = 30
	MaxTrendDays          = 365
	DefaultTrendMetric    = "views"
)

// TrendMetrics lista as métricas aceitas em GetPerformanceTrends
var TrendMetrics = []string{
	"views", "likes", "comments", "shares", "saves", "clicks", "conversions",
	"revenue", "commission", "adSpend", "ctr", "conversionRate", "roi", "cpc", "cpm",
}

type Analyzer interface {
	RecordAnalytics(ctx context.Context, input domain.RecordAnalyticsInput) (*domain.PerformanceAnalytics, error)
	GetROIDashboard(ctx context.Context, filters domain.AnalyticsFilters) (*domain.ROIDashboard, error)
	GetPerformanceTrends(ctx context.Context, filters domain.TrendFilters) (*domain.PerformanceTrends, error)
	GetContentComparison(ctx context.Context, orgID int, contentIDs []int64) ([]domain.ContentComparison, error)
	HandleWebhook(ctx context.Context, secret string, payload domain.WebhookPayload) (*domain.PerformanceAnalytics, error)
}

type Service struct {
	cfg  config.Webhook
	repo repository.PerformanceAnalyticsRepository
	now  func() time.Time
}

func NewService(cfg config.Webhook, repo repository.PerformanceAnalyticsRepository) *Service {
	return &Service{
		cfg:  cfg,
		repo: repo,
		now:  time.Now,
	}
}

// RecordAnalytics valida os contadores, calcula as taxas e grava um novo registro
func (s *Service) RecordAnalytics(ctx context.Context, input domain.RecordAnalyticsInput) (*domain.PerformanceAnalytics, error) {
	platform := strings.ToLower(strings.TrimSpace(input.Platform))
	if platform == "" {
		return nil, NewAnalyticsError(ErrPlatformRequired, apiErrors.ErrMissingRequiredData, "")
	}

	counters := input.RawCounters
	if counters.Views < 0 || counters.Likes < 0 || counters.Comments < 0 || counters.Shares < 0 ||
		counters.Saves < 0 || counters.Clicks < 0 || counters.Conversions < 0 {
		return nil, NewAnalyticsError(ErrNegativeCounter, apiErrors.ErrInvalidFormat, "")
	}

	revenue, err := parseAmountField("revenue", counters.Revenue)
	if err != nil {
		return nil, err
	}
	commission, err := parseAmountField("commission", counters.Commission)
	if err != nil {
		return nil, err
	}
	adSpend, err := parseAmountField("adSpend", counters.AdSpend)
	if err != nil {
		return nil, err
	}

	counters.Revenue = utils.FormatDecimal(revenue)
	counters.Commission = utils.FormatDecimal(commission)
	counters.AdSpend = utils.FormatDecimal(adSpend)

	recordedAt := s.now().UTC()
	if input.RecordedAt != nil {
		recordedAt = input.RecordedAt.UTC()
	}

	record := &domain.PerformanceAnalytics{
		OrgID:           input.OrgID,
		ContentID:       input.ContentID,
		ScheduledPostID: input.ScheduledPostID,
		Platform:        platform,
		Niche:           input.Niche,
		RecordedAt:      recordedAt,
		RawCounters:     counters,
		DerivedMetrics: Derive(Counters{
			Views:       counters.Views,
			Clicks:      counters.Clicks,
			Conversions: counters.Conversions,
			Revenue:     revenue,
			AdSpend:     adSpend,
		}).Format(),
	}

	saved, err := s.repo.CreatePerformanceAnalytics(ctx, record)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"org_id":   input.OrgID,
			"platform": platform,
			"error":    err.Error(),
		}).Error("Erro ao gravar métricas de desempenho")
		return nil, NewAnalyticsError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return saved, nil
}

// GetROIDashboard agrega os registros filtrados: resumo, por plataforma, por data, top conteúdos e recentes
func (s *Service) GetROIDashboard(ctx context.Context, filters domain.AnalyticsFilters) (*domain.ROIDashboard, error) {
	limit := filters.Limit
	if limit <= 0 {
		limit = DefaultDashboardLimit
	}

	records, err := s.list(ctx, filters)
	if err != nil {
		return nil, err
	}

	var total summaryAccumulator
	byPlatform := make(map[string]*summaryAccumulator)
	byDate := make(map[string]*summaryAccumulator)
	byContent := make(map[int64]*summaryAccumulator)

	for _, record := range records {
		total.add(record)
		accumulate(byPlatform, record.Platform, record)
		accumulate(byDate, record.RecordedAt.UTC().Format(time.DateOnly), record)
		if record.ContentID != nil {
			accumulate(byContent, *record.ContentID, record)
		}
	}

	topContent := make([]domain.ContentPerformance, 0, len(byContent))
	for contentID, acc := range byContent {
		topContent = append(topContent, domain.ContentPerformance{ContentID: contentID, MetricsSummary: acc.result()})
	}
	sort.Slice(topContent, func(i, j int) bool {
		if topContent[i].Revenue != topContent[j].Revenue {
			return topContent[i].Revenue > topContent[j].Revenue
		}
		return topContent[i].ContentID < topContent[j].ContentID
	})
	if len(topContent) > limit {
		topContent = topContent[:limit]
	}

	recent := records
	if len(recent) > limit {
		recent = recent[:limit]
	}

	return &domain.ROIDashboard{
		Summary:       total.result(),
		ByPlatform:    results(byPlatform),
		ByDate:        results(byDate),
		TopContent:    topContent,
		RecentRecords: recent,
	}, nil
}

// GetPerformanceTrends devolve um ponto por dia da janela, em ordem crescente de data
func (s *Service) GetPerformanceTrends(ctx context.Context, filters domain.TrendFilters) (*domain.PerformanceTrends, error) {
	metric := filters.Metric
	if metric == "" {
		metric = DefaultTrendMetric
	}
	if !slices.Contains(TrendMetrics, metric) {
		return nil, NewAnalyticsError(ErrInvalidMetric, apiErrors.ErrInvalidRequest, metric)
	}

	days := filters.Days
	if days <= 0 {
		days = DefaultTrendDays
	}
	if days > MaxTrendDays {
		days = MaxTrendDays
	}

	now := s.now().UTC()
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	start := end.AddDate(0, 0, -(days - 1))

	records, err := s.list(ctx, domain.AnalyticsFilters{
		OrgID:     filters.OrgID,
		StartDate: &start,
		EndDate:   &end,
		Platform:  filters.Platform,
		Niche:     filters.Niche,
	})
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]*summaryAccumulator)
	for _, record := range records {
		accumulate(byDate, record.RecordedAt.UTC().Format(time.DateOnly), record)
	}

	points := make([]domain.TrendPoint, 0, days)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := day.Format(time.DateOnly)
		acc, ok := byDate[key]
		if !ok {
			acc = &summaryAccumulator{}
		}
		points = append(points, domain.TrendPoint{Date: key, Value: metricValue(acc, metric)})
	}

	return &domain.PerformanceTrends{
		Metric:   metric,
		Platform: filters.Platform,
		Niche:    filters.Niche,
		Days:     days,
		Points:   points,
	}, nil
}

// GetContentComparison devolve um resumo por conteúdo na ordem dos IDs pedidos
func (s *Service) GetContentComparison(ctx context.Context, orgID int, contentIDs []int64) ([]domain.ContentComparison, error) {
	if len(contentIDs) == 0 {
		return nil, NewAnalyticsError(ErrContentIDsRequired, apiErrors.ErrMissingRequiredData, "")
	}

	ids := uniqueIDs(contentIDs)

	records, err := s.list(ctx, domain.AnalyticsFilters{OrgID: orgID, ContentIDs: ids})
	if err != nil {
		return nil, err
	}

	totals := make(map[int64]*summaryAccumulator, len(ids))
	platforms := make(map[int64]map[string]*summaryAccumulator, len(ids))
	for _, record := range records {
		if record.ContentID == nil {
			continue
		}
		id := *record.ContentID
		accumulate(totals, id, record)
		if platforms[id] == nil {
			platforms[id] = make(map[string]*summaryAccumulator)
		}
		accumulate(platforms[id], record.Platform, record)
	}

	comparison := make([]domain.ContentComparison, 0, len(ids))
	for _, id := range ids {
		acc, ok := totals[id]
		if !ok {
			acc = &summaryAccumulator{}
		}
		comparison = append(comparison, domain.ContentComparison{
			ContentID:  id,
			Summary:    acc.result(),
			ByPlatform: results(platforms[id]),
		})
	}

	return comparison, nil
}

// HandleWebhook valida o payload enviado por integrações externas e grava as métricas
func (s *Service) HandleWebhook(ctx context.Context, secret string, payload domain.WebhookPayload) (*domain.PerformanceAnalytics, error) {
	if s.cfg.Secret != "" && subtle.ConstantTimeCompare([]byte(secret), []byte(s.cfg.Secret)) != 1 {
		return nil, NewAnalyticsError(ErrInvalidWebhookSecret, apiErrors.ErrInvalidWebhookSecret, "")
	}

	if strings.TrimSpace(payload.Platform) == "" {
		return nil, NewAnalyticsError(ErrPlatformRequired, apiErrors.ErrMissingRequiredData, "")
	}
	if payload.ContentID == nil && payload.ScheduledPostID == nil {
		return nil, NewAnalyticsError(ErrContentRefRequired, apiErrors.ErrMissingRequiredData, "")
	}
	if payload.Metrics == nil {
		return nil, NewAnalyticsError(ErrMetricsRequired, apiErrors.ErrMissingRequiredData, "")
	}

	orgID := payload.OrgID
	if orgID <= 0 {
		orgID = s.cfg.DefaultOrgID
	}

	return s.RecordAnalytics(ctx, domain.RecordAnalyticsInput{
		OrgID:           orgID,
		ContentID:       payload.ContentID,
		ScheduledPostID: payload.ScheduledPostID,
		Platform:        payload.Platform,
		Niche:           payload.Niche,
		RecordedAt:      payload.RecordedAt,
		RawCounters:     *payload.Metrics,
	})
}

func (s *Service) list(ctx context.Context, filters domain.AnalyticsFilters) ([]*domain.PerformanceAnalytics, error) {
	records, err := s.repo.ListPerformanceAnalytics(ctx, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"org_id": filters.OrgID,
			"error":  err.Error(),
		}).Error("Erro ao consultar métricas de desempenho")
		return nil, NewAnalyticsError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return records, nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func accumulate[K comparable](groups map[K]*summaryAccumulator, key K, record *domain.PerformanceAnalytics) {
	acc, ok := groups[key]
	if !ok {
		acc = &summaryAccumulator{}
		groups[key] = acc
	}
	acc.add(record)
}

func results[K comparable](groups map[K]*summaryAccumulator) map[K]domain.MetricsSummary {
	out := make(map[K]domain.MetricsSummary, len(groups))
	for key, acc := range groups {
		out[key] = acc.result()
	}
	return out
}

func metricValue(acc *summaryAccumulator, metric string) float64 {
	summary := acc.result()
	derived := Derive(acc.counters())

	switch metric {
	case "views":
		return float64(summary.Views)
	case "likes":
		return float64(summary.Likes)
	case "comments":
		return float64(summary.Comments)
	case "shares":
		return float64(summary.Shares)
	case "saves":
		return float64(summary.Saves)
	case "clicks":
		return float64(summary.Clicks)
	case "conversions":
		return float64(summary.Conversions)
	case "revenue":
		return summary.Revenue
	case "commission":
		return summary.Commission
	case "adSpend":
		return summary.AdSpend
	case "ctr":
		return roundRatio(derived.ClickThroughRate)
	case "conversionRate":
		return roundRatio(derived.ConversionRate)
	case "roi":
		return roundRatio(derived.ROI)
	case "cpc":
		return roundRatio(derived.CPC)
	case "cpm":
		return roundRatio(derived.CPM)
	}
	return 0
}

func roundRatio(r Ratio) float64 {
	if !r.Defined {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(r.Value)
}

func roundMoney(v float64) float64 {
	return utils.RoundWithTwoDecimalPlace(v)
}

// parseAmount trata valores inválidos gravados como zero
func parseAmount(raw string) float64 {
	value, err := utils.ParseDecimal(raw)
	if err != nil {
		return 0
	}
	return value
}

func parseAmountField(field, raw string) (float64, error) {
	value, err := utils.ParseDecimal(raw)
	if err != nil || value < 0 {
		return 0, NewAnalyticsError(ErrInvalidAmount, apiErrors.ErrInvalidFormat, field)
	}
	return value, nil
}
