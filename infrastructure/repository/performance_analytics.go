package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/cookaing-api/infrastructure/database/postgres"
	"github.com/vfg2006/cookaing-api/internal/domain"
)

const performanceAnalyticsTable = "performance_analytics"

var performanceAnalyticsColumns = []string{
	"id", "org_id", "content_id", "scheduled_post_id", "platform", "niche",
	"views", "likes", "comments", "shares", "saves", "clicks", "conversions",
	"revenue", "commission", "ad_spend",
	"click_through_rate", "conversion_rate", "roi", "cpc", "cpm",
	"recorded_at",
}

type PerformanceAnalyticsRepository interface {
	CreatePerformanceAnalytics(ctx context.Context, record *domain.PerformanceAnalytics) (*domain.PerformanceAnalytics, error)
	ListPerformanceAnalytics(ctx context.Context, filters domain.AnalyticsFilters) ([]*domain.PerformanceAnalytics, error)
}

type performanceAnalyticsRepository struct {
	conn *postgres.Connection
}

func NewPerformanceAnalyticsRepository(conn *postgres.Connection) PerformanceAnalyticsRepository {
	return &performanceAnalyticsRepository{
		conn: conn,
	}
}

func (r *performanceAnalyticsRepository) CreatePerformanceAnalytics(ctx context.Context, record *domain.PerformanceAnalytics) (*domain.PerformanceAnalytics, error) {
	query, args, err := squirrel.
		Insert(performanceAnalyticsTable).
		Columns(performanceAnalyticsColumns[1:]...).
		Values(
			record.OrgID, record.ContentID, record.ScheduledPostID, record.Platform, record.Niche,
			record.Views, record.Likes, record.Comments, record.Shares, record.Saves, record.Clicks, record.Conversions,
			record.Revenue, record.Commission, record.AdSpend,
			record.ClickThroughRate, record.ConversionRate, record.ROI, record.CPC, record.CPM,
			record.RecordedAt,
		).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&record.ID); err != nil {
		return nil, fmt.Errorf("erro ao inserir métricas de desempenho: %w", err)
	}

	return record, nil
}

// ListPerformanceAnalytics retorna os registros mais recentes primeiro. EndDate é inclusivo por dia.
func (r *performanceAnalyticsRepository) ListPerformanceAnalytics(ctx context.Context, filters domain.AnalyticsFilters) ([]*domain.PerformanceAnalytics, error) {
	queryBuilder := squirrel.
		Select(performanceAnalyticsColumns...).
		From(performanceAnalyticsTable).
		Where(squirrel.Eq{"org_id": filters.OrgID}).
		OrderBy("recorded_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filters.StartDate != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"recorded_at": *filters.StartDate})
	}

	if filters.EndDate != nil {
		queryBuilder = queryBuilder.Where(squirrel.Lt{"recorded_at": filters.EndDate.AddDate(0, 0, 1)})
	}

	if filters.Platform != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"platform": filters.Platform})
	}

	if filters.Niche != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"niche": filters.Niche})
	}

	if len(filters.ContentIDs) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"content_id": filters.ContentIDs})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar métricas de desempenho: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.PerformanceAnalytics, 0)
	for rows.Next() {
		var record domain.PerformanceAnalytics
		if err := rows.Scan(
			&record.ID,
			&record.OrgID,
			&record.ContentID,
			&record.ScheduledPostID,
			&record.Platform,
			&record.Niche,
			&record.Views,
			&record.Likes,
			&record.Comments,
			&record.Shares,
			&record.Saves,
			&record.Clicks,
			&record.Conversions,
			&record.Revenue,
			&record.Commission,
			&record.AdSpend,
			&record.ClickThroughRate,
			&record.ConversionRate,
			&record.ROI,
			&record.CPC,
			&record.CPM,
			&record.RecordedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return records, nil
}
