package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cookaing-api/infrastructure/cache"
	"github.com/vfg2006/cookaing-api/infrastructure/database/postgres"
	"github.com/vfg2006/cookaing-api/infrastructure/integrator/amazon"
	"github.com/vfg2006/cookaing-api/infrastructure/integrator/amazon/amazonclient"
	"github.com/vfg2006/cookaing-api/infrastructure/repository"
	"github.com/vfg2006/cookaing-api/internal/api"
	"github.com/vfg2006/cookaing-api/internal/api/handler"
	"github.com/vfg2006/cookaing-api/internal/config"
	"github.com/vfg2006/cookaing-api/internal/scheduler"
	"github.com/vfg2006/cookaing-api/internal/usecases/analytics"
	"github.com/vfg2006/cookaing-api/internal/usecases/authenticating"
	"github.com/vfg2006/cookaing-api/internal/usecases/lookup"
	"github.com/vfg2006/cookaing-api/internal/usecases/seasonal"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	health := map[string]handler.Pinger{"postgres": pgConn}

	userRepo := repository.NewUserRepository(pgConn)
	productRepo := repository.NewAffiliateProductRepository(pgConn)
	analyticsRepo := repository.NewPerformanceAnalyticsRepository(pgConn)
	contentRepo := repository.NewContentGenerationRepository(pgConn)

	// O cache é opcional: sem REDIS_URL as buscas vão direto para a API
	var searchCache amazonclient.SearchCache
	if catalogCache := redisCache(ctx, cfg); catalogCache != nil {
		searchCache = catalogCache
		health["redis"] = catalogCache
	}

	amazonIntegrator := amazon.New(amazonclient.NewClient(cfg.Amazon, searchCache))
	if !cfg.Amazon.HasCredentials() {
		logrus.Warn("Credenciais da Amazon ausentes, camada de catálogo externo desabilitada")
	}

	authenticator := authenticating.NewService(userRepo, cfg.Auth)
	lookupService := lookup.NewService(cfg.Lookup, cfg.Amazon, productRepo, amazonIntegrator)
	analyticsService := analytics.NewService(cfg.Webhook, analyticsRepo)

	calendar, err := seasonal.LoadCalendar(cfg.SeasonalSync.CalendarFile)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar calendário sazonal")
	}
	generator := seasonal.NewGenerator(calendar, contentRepo)

	seasonalService := scheduler.NewSeasonalContentService(generator, cfg.SeasonalSync)
	catalogPruneService := scheduler.NewCatalogPruneService(productRepo, cfg.CatalogPrune)

	if err := seasonalService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de conteúdo sazonal")
	} else {
		logrus.Info("Agendador de conteúdo sazonal iniciado com sucesso")
	}

	if err := catalogPruneService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza do catálogo")
	} else {
		logrus.Info("Agendador de limpeza do catálogo iniciado com sucesso")
	}

	server := api.New(cfg.Server, api.Services{
		Authenticator: authenticator,
		Lookup:        lookupService,
		Analytics:     analyticsService,
		Seasonal:      seasonalService,
		CronJobs: handler.CronJobServices{
			SeasonalContentService: seasonalService,
			CatalogPruneService:    catalogPruneService,
		},
		Health: health,
	})

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// redisCache conecta ao Redis quando configurado. Falha na conexão apenas desabilita o cache.
func redisCache(ctx context.Context, cfg *config.Config) *cache.CatalogCache {
	if cfg.Redis.URL == "" {
		logrus.Info("REDIS_URL vazio, cache do catálogo desabilitado")
		return nil
	}

	client, err := cache.Connect(ctx, cfg.Redis.URL)
	if err != nil {
		logrus.WithError(err).Warn("Não foi possível conectar ao Redis, cache do catálogo desabilitado")
		return nil
	}

	logrus.Info("Conexão com Redis estabelecida com sucesso")
	return cache.NewCatalogCache(client, cfg.Amazon.CacheTTL)
}
