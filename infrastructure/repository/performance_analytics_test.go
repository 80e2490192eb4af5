package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cookaing-api/internal/domain"
)

func TestPerformanceAnalyticsRepository_Create(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewPerformanceAnalyticsRepository(conn)
	contentID := int64(10)
	recordedAt := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO performance_analytics (.+) RETURNING id`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(99))

	record, err := repo.CreatePerformanceAnalytics(context.Background(), &domain.PerformanceAnalytics{
		OrgID:      7,
		ContentID:  &contentID,
		Platform:   "tiktok",
		RecordedAt: recordedAt,
		RawCounters: domain.RawCounters{
			Views: 1000, Clicks: 50, Conversions: 5, Revenue: "200.00", AdSpend: "50.00",
		},
		DerivedMetrics: domain.DerivedMetrics{
			ClickThroughRate: "5.00", ConversionRate: "10.00", ROI: "300.00", CPC: "1.00", CPM: "50.00",
		},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(99), record.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPerformanceAnalyticsRepository_List(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewPerformanceAnalyticsRepository(conn)
	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	recordedAt := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(performanceAnalyticsColumns).
		AddRow(1, 7, 10, nil, "tiktok", "cooking",
			1000, 30, 4, 2, 1, 50, 5,
			"200.00", "20.00", "50.00",
			"5.00", "10.00", "300.00", "1.00", "50.00",
			recordedAt)

	mock.ExpectQuery(`SELECT (.+) FROM performance_analytics WHERE org_id = \$1 AND recorded_at >= \$2 AND recorded_at < \$3 AND platform = \$4 AND content_id IN \(\$5,\$6\) ORDER BY recorded_at DESC`).
		WithArgs(7, start, end.AddDate(0, 0, 1), "tiktok", int64(10), int64(11)).
		WillReturnRows(rows)

	records, err := repo.ListPerformanceAnalytics(context.Background(), domain.AnalyticsFilters{
		OrgID:      7,
		StartDate:  &start,
		EndDate:    &end,
		Platform:   "tiktok",
		ContentIDs: []int64{10, 11},
	})

	require.NoError(t, err)
	require.Len(t, records, 1)
	require.NotNil(t, records[0].ContentID)
	assert.Equal(t, int64(10), *records[0].ContentID)
	assert.Nil(t, records[0].ScheduledPostID)
	assert.Equal(t, "200.00", records[0].Revenue)
	assert.Equal(t, "300.00", records[0].ROI)
	assert.NoError(t, mock.ExpectationsWereMet())
}
