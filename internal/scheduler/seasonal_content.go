package scheduler

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cookaing-api/internal/config"
	"github.com/vfg2006/cookaing-api/internal/domain"
)

// SeasonalGenerator é o gerador de conteúdo sazonal usado pelo agendador
type SeasonalGenerator interface {
	GenerateSeasonalContent(ctx context.Context, cfg domain.SeasonalConfig) (*domain.SeasonalRunResult, error)
	GetUpcomingEventsPreview(ctx context.Context, cfg domain.SeasonalConfig) []domain.UpcomingEvent
}

// SeasonalContentService agenda a geração diária de conteúdo sazonal e guarda a configuração corrente
type SeasonalContentService struct {
	scheduler    *gocron.Scheduler
	cronSchedule string
	generator    SeasonalGenerator

	configMutex sync.RWMutex
	config      domain.SeasonalConfig

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *domain.SeasonalRunResult
}

func NewSeasonalContentService(generator SeasonalGenerator, appConfig config.SeasonalSync) *SeasonalContentService {
	seasonalConfig := domain.SeasonalConfig{
		Enabled:      appConfig.Enabled,
		LeadTimeDays: appConfig.LeadTimeDays,
		Holidays:     slices.Clone(appConfig.Holidays),
		AutoPublish:  appConfig.AutoPublish,
		Platforms:    slices.Clone(appConfig.Platforms),
		OrgID:        appConfig.OrgID,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  appConfig.CronSchedule,
		"enabled":        seasonalConfig.Enabled,
		"lead_time_days": seasonalConfig.LeadTimeDays,
		"holidays":       seasonalConfig.Holidays,
		"platforms":      seasonalConfig.Platforms,
		"auto_publish":   seasonalConfig.AutoPublish,
	}).Info("Configuração do gerador de conteúdo sazonal carregada")

	return &SeasonalContentService{
		scheduler:    gocron.NewScheduler(time.Local),
		cronSchedule: appConfig.CronSchedule,
		generator:    generator,
		config:       seasonalConfig,
	}
}

// Start agenda o job diário. A flag Enabled é lida a cada execução para permitir enable/disable em tempo de execução.
func (s *SeasonalContentService) Start(ctx context.Context) error {
	logrus.WithField("cron", s.cronSchedule).Info("Iniciando agendador de conteúdo sazonal")

	_, err := s.scheduler.Cron(s.cronSchedule).Do(func() {
		s.runSeasonalGeneration(ctx, false)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar geração de conteúdo sazonal: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de conteúdo sazonal")
		s.scheduler.Stop()
	}()

	return nil
}

// Config devolve uma cópia da configuração atual
func (s *SeasonalContentService) Config() domain.SeasonalConfig {
	s.configMutex.RLock()
	defer s.configMutex.RUnlock()

	cfg := s.config
	cfg.Holidays = slices.Clone(s.config.Holidays)
	cfg.Platforms = slices.Clone(s.config.Platforms)
	return cfg
}

// UpdateConfig substitui a configuração. OrgID zero mantém a organização atual.
func (s *SeasonalContentService) UpdateConfig(cfg domain.SeasonalConfig) domain.SeasonalConfig {
	s.configMutex.Lock()
	if cfg.OrgID == 0 {
		cfg.OrgID = s.config.OrgID
	}
	cfg.Holidays = slices.Clone(cfg.Holidays)
	cfg.Platforms = slices.Clone(cfg.Platforms)
	s.config = cfg
	s.configMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"enabled":        cfg.Enabled,
		"lead_time_days": cfg.LeadTimeDays,
		"holidays":       cfg.Holidays,
	}).Info("Configuração do gerador de conteúdo sazonal atualizada")

	return s.Config()
}

func (s *SeasonalContentService) Enable() domain.SeasonalConfig {
	return s.setEnabled(true)
}

func (s *SeasonalContentService) Disable() domain.SeasonalConfig {
	return s.setEnabled(false)
}

func (s *SeasonalContentService) setEnabled(enabled bool) domain.SeasonalConfig {
	s.configMutex.Lock()
	s.config.Enabled = enabled
	s.configMutex.Unlock()

	logrus.WithField("enabled", enabled).Info("Gerador de conteúdo sazonal alterado")
	return s.Config()
}

// UpcomingEvents devolve a prévia dos eventos com a configuração atual
func (s *SeasonalContentService) UpcomingEvents(ctx context.Context) []domain.UpcomingEvent {
	return s.generator.GetUpcomingEventsPreview(ctx, s.Config())
}

// GenerateNow executa a geração de forma síncrona, mesmo com o agendador desabilitado
func (s *SeasonalContentService) GenerateNow(ctx context.Context) (*domain.SeasonalRunResult, error) {
	cfg := s.Config()
	cfg.Enabled = true
	return s.generate(ctx, cfg)
}

func (s *SeasonalContentService) runSeasonalGeneration(ctx context.Context, manual bool) {
	cfg := s.Config()
	if !cfg.Enabled && !manual {
		logrus.Info("Geração de conteúdo sazonal desabilitada por configuração")
		return
	}
	cfg.Enabled = true

	if _, err := s.generate(ctx, cfg); err != nil && !errors.Is(err, ErrSyncRunning) {
		logrus.WithError(err).Error("Erro na geração de conteúdo sazonal")
	}
}

func (s *SeasonalContentService) generate(ctx context.Context, cfg domain.SeasonalConfig) (*domain.SeasonalRunResult, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Geração de conteúdo sazonal já em andamento, ignorando")
		return nil, ErrSyncRunning
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	result, err := s.generator.GenerateSeasonalContent(ctx, cfg)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	if err == nil {
		s.lastResult = result
	}
	s.syncMutex.Unlock()

	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"processed": len(result.Processed),
		"failed":    len(result.Failed),
	}).Info("Geração de conteúdo sazonal concluída")

	return result, nil
}

// TriggerManualSync inicia a geração em background
func (s *SeasonalContentService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Geração de conteúdo sazonal já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando geração manual de conteúdo sazonal")
	go s.runSeasonalGeneration(context.Background(), true)
}

// GetStatus retorna o status atual do agendador
func (s *SeasonalContentService) GetStatus() map[string]any {
	cfg := s.Config()

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"enabled":                cfg.Enabled,
		"cron":                   s.cronSchedule,
		"lead_time_days":         cfg.LeadTimeDays,
		"holidays":               cfg.Holidays,
		"platforms":              cfg.Platforms,
		"auto_publish":           cfg.AutoPublish,
		"running":                s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
	if s.lastResult != nil {
		status["last_processed"] = len(s.lastResult.Processed)
		status["last_failed"] = len(s.lastResult.Failed)
	}

	return status
}
