package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cookaing-api/internal/config"
	"github.com/vfg2006/cookaing-api/internal/domain"
)

// ProductPruner remove produtos persistidos de uma fonte mais antigos que o corte
type ProductPruner interface {
	DeleteProductsOlderThan(ctx context.Context, source domain.ProductSource, cutoff time.Time) (int64, error)
}

// CatalogPruneService remove periodicamente os produtos do catálogo externo já vencidos,
// forçando uma nova busca na próxima consulta sem resultado local
type CatalogPruneService struct {
	scheduler *gocron.Scheduler
	config    config.CatalogPrune
	repo      ProductPruner
	now       func() time.Time

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastDeleted         int64
}

func NewCatalogPruneService(repo ProductPruner, appConfig config.CatalogPrune) *CatalogPruneService {
	if appConfig.MaxAgeDays <= 0 {
		appConfig.MaxAgeDays = 30
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.CronSchedule,
		"enabled":       appConfig.Enabled,
		"max_age_days":  appConfig.MaxAgeDays,
	}).Info("Configuração da limpeza do catálogo carregada")

	return &CatalogPruneService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    appConfig,
		repo:      repo,
		now:       time.Now,
	}
}

// Start inicia o agendador
func (s *CatalogPruneService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Limpeza do catálogo desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de limpeza do catálogo")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.Prune(ctx); err != nil {
			logrus.WithError(err).Error("Erro na limpeza do catálogo")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza do catálogo: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza do catálogo")
		s.scheduler.Stop()
	}()

	return nil
}

// Prune apaga os produtos do catálogo externo mais antigos que MaxAgeDays
func (s *CatalogPruneService) Prune(ctx context.Context) (int64, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		return 0, ErrSyncRunning
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	cutoff := s.now().AddDate(0, 0, -s.config.MaxAgeDays)
	deleted, err := s.repo.DeleteProductsOlderThan(ctx, domain.ProductSourceAmazon, cutoff)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	if err == nil {
		s.lastDeleted = deleted
	}
	s.syncMutex.Unlock()

	if err != nil {
		return 0, fmt.Errorf("erro ao remover produtos antigos do catálogo: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"deleted": deleted,
		"cutoff":  cutoff.Format(time.DateOnly),
	}).Info("Limpeza do catálogo concluída")

	return deleted, nil
}

// TriggerManualSync executa a limpeza em background
func (s *CatalogPruneService) TriggerManualSync() {
	logrus.Info("Iniciando limpeza manual do catálogo")
	go func() {
		if _, err := s.Prune(context.Background()); err != nil {
			logrus.WithError(err).Warn("Limpeza manual do catálogo não executada")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *CatalogPruneService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":                s.config.Enabled,
		"cron":                   s.config.CronSchedule,
		"max_age_days":           s.config.MaxAgeDays,
		"running":                s.syncRunning,
		"last_deleted":           s.lastDeleted,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
