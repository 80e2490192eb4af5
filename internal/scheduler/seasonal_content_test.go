package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cookaing-api/internal/config"
	"github.com/vfg2006/cookaing-api/internal/domain"
)

type fakeGenerator struct {
	mu      sync.Mutex
	configs []domain.SeasonalConfig
	result  *domain.SeasonalRunResult
	err     error
	block   chan struct{}
}

func (f *fakeGenerator) GenerateSeasonalContent(_ context.Context, cfg domain.SeasonalConfig) (*domain.SeasonalRunResult, error) {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.configs = append(f.configs, cfg)
	return f.result, f.err
}

func (f *fakeGenerator) GetUpcomingEventsPreview(_ context.Context, cfg domain.SeasonalConfig) []domain.UpcomingEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.configs = append(f.configs, cfg)
	return []domain.UpcomingEvent{{Name: "Halloween", DaysUntil: 10}}
}

func (f *fakeGenerator) calls() []domain.SeasonalConfig {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.SeasonalConfig(nil), f.configs...)
}

var seasonalSyncCfg = config.SeasonalSync{
	CronSchedule: "0 7 * * *",
	Enabled:      false,
	LeadTimeDays: 30,
	Holidays:     []string{"halloween", "christmas"},
	Platforms:    []string{"tiktok"},
	OrgID:        1,
}

func TestSeasonalContentService_ConfigLifecycle(t *testing.T) {
	service := NewSeasonalContentService(&fakeGenerator{}, seasonalSyncCfg)

	assert.False(t, service.Config().Enabled)
	assert.True(t, service.Enable().Enabled)
	assert.False(t, service.Disable().Enabled)

	updated := service.UpdateConfig(domain.SeasonalConfig{
		Enabled:      true,
		LeadTimeDays: 14,
		Holidays:     []string{"thanksgiving"},
		Platforms:    []string{"instagram", "youtube"},
	})

	assert.True(t, updated.Enabled)
	assert.Equal(t, 14, updated.LeadTimeDays)
	assert.Equal(t, 1, updated.OrgID, "OrgID zero mantém a organização atual")
	assert.Equal(t, []string{"thanksgiving"}, updated.Holidays)
}

func TestSeasonalContentService_ConfigIsSnapshot(t *testing.T) {
	service := NewSeasonalContentService(&fakeGenerator{}, seasonalSyncCfg)

	cfg := service.Config()
	cfg.Holidays[0] = "alterado"

	assert.Equal(t, "halloween", service.Config().Holidays[0])
}

func TestSeasonalContentService_RunRespectsEnabledFlag(t *testing.T) {
	generator := &fakeGenerator{result: &domain.SeasonalRunResult{}}
	service := NewSeasonalContentService(generator, seasonalSyncCfg)

	service.runSeasonalGeneration(context.Background(), false)
	assert.Empty(t, generator.calls(), "desabilitado não deve gerar")

	service.Enable()
	service.runSeasonalGeneration(context.Background(), false)

	calls := generator.calls()
	require.Len(t, calls, 1)
	assert.True(t, calls[0].Enabled)
	assert.Equal(t, []string{"halloween", "christmas"}, calls[0].Holidays)
}

func TestSeasonalContentService_GenerateNow(t *testing.T) {
	generator := &fakeGenerator{result: &domain.SeasonalRunResult{
		Processed: []domain.ProcessedEvent{{UpcomingEvent: domain.UpcomingEvent{Name: "Halloween"}, GeneratedRecords: 2}},
	}}
	service := NewSeasonalContentService(generator, seasonalSyncCfg)

	result, err := service.GenerateNow(context.Background())

	require.NoError(t, err)
	assert.Len(t, result.Processed, 1)
	assert.True(t, generator.calls()[0].Enabled, "execução manual ignora a flag")

	status := service.GetStatus()
	assert.Equal(t, 1, status["last_processed"])
	assert.Equal(t, false, status["running"])
}

func TestSeasonalContentService_GenerateError(t *testing.T) {
	generator := &fakeGenerator{err: errors.New("calendário inválido")}
	service := NewSeasonalContentService(generator, seasonalSyncCfg)

	_, err := service.GenerateNow(context.Background())

	assert.EqualError(t, err, "calendário inválido")
	assert.NotContains(t, service.GetStatus(), "last_processed")
}

func TestSeasonalContentService_ConcurrentRunRejected(t *testing.T) {
	generator := &fakeGenerator{result: &domain.SeasonalRunResult{}, block: make(chan struct{})}
	service := NewSeasonalContentService(generator, seasonalSyncCfg)

	done := make(chan error)
	go func() {
		_, err := service.GenerateNow(context.Background())
		done <- err
	}()

	require.Eventually(t, func() bool {
		return service.GetStatus()["running"] == true
	}, time.Second, 10*time.Millisecond)

	_, err := service.GenerateNow(context.Background())
	assert.ErrorIs(t, err, ErrSyncRunning)

	close(generator.block)
	assert.NoError(t, <-done)
}

func TestSeasonalContentService_UpcomingEvents(t *testing.T) {
	generator := &fakeGenerator{}
	service := NewSeasonalContentService(generator, seasonalSyncCfg)

	events := service.UpcomingEvents(context.Background())

	require.Len(t, events, 1)
	assert.Equal(t, "Halloween", events[0].Name)
	assert.Equal(t, 30, generator.calls()[0].LeadTimeDays)
}
