package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Redis        Redis        `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	Amazon       Amazon       `mapstructure:",squash"`
	Lookup       Lookup       `mapstructure:",squash"`
	SeasonalSync SeasonalSync `mapstructure:",squash"`
	CatalogPrune CatalogPrune `mapstructure:",squash"`
	Webhook      Webhook      `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Redis struct {
	URL string `mapstructure:"redis_url"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Amazon reúne as credenciais e parâmetros da Product Advertising API
type Amazon struct {
	AccessKey   string        `mapstructure:"amazon_access_key"`
	SecretKey   string        `mapstructure:"amazon_secret_key"`
	PartnerTag  string        `mapstructure:"amazon_partner_tag"`
	Host        string        `mapstructure:"amazon_host"`
	Region      string        `mapstructure:"amazon_region"`
	Marketplace string        `mapstructure:"amazon_marketplace"`
	Timeout     time.Duration `mapstructure:"amazon_timeout"`
	CacheTTL    time.Duration `mapstructure:"amazon_cache_ttl"`
}

// HasCredentials indica se as três credenciais obrigatórias estão presentes
func (a Amazon) HasCredentials() bool {
	return a.AccessKey != "" && a.SecretKey != "" && a.PartnerTag != ""
}

type Lookup struct {
	DefaultLimit    int     `mapstructure:"lookup_default_limit"`
	DBScanLimit     int     `mapstructure:"lookup_db_scan_limit"`
	BudgetThreshold float64 `mapstructure:"lookup_budget_threshold"`
}

type SeasonalSync struct {
	CronSchedule string   `mapstructure:"seasonal_cron"`
	Enabled      bool     `mapstructure:"seasonal_enabled"`
	LeadTimeDays int      `mapstructure:"seasonal_lead_time_days"`
	Holidays     []string `mapstructure:"seasonal_holidays"`
	AutoPublish  bool     `mapstructure:"seasonal_auto_publish"`
	Platforms    []string `mapstructure:"seasonal_platforms"`
	CalendarFile string   `mapstructure:"seasonal_calendar_file"`
	OrgID        int      `mapstructure:"seasonal_org_id"`
}

type CatalogPrune struct {
	CronSchedule string `mapstructure:"catalog_prune_cron"`
	Enabled      bool   `mapstructure:"catalog_prune_enabled"`
	MaxAgeDays   int    `mapstructure:"affiliate_catalog_max_age_days"`
}

type Webhook struct {
	Secret       string `mapstructure:"webhook_secret"`
	DefaultOrgID int    `mapstructure:"webhook_default_org_id"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/cookaing?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("REDIS_URL", "") // Vazio desabilita o cache do catálogo

	viper.SetDefault("AUTH_SECRET", "your_secret_key")

	// Sem credenciais a camada de catálogo externo é ignorada
	viper.SetDefault("AMAZON_ACCESS_KEY", "")
	viper.SetDefault("AMAZON_SECRET_KEY", "")
	viper.SetDefault("AMAZON_PARTNER_TAG", "")
	viper.SetDefault("AMAZON_HOST", "webservices.amazon.com")
	viper.SetDefault("AMAZON_REGION", "us-east-1")
	viper.SetDefault("AMAZON_MARKETPLACE", "www.amazon.com")
	viper.SetDefault("AMAZON_TIMEOUT", "10s")
	viper.SetDefault("AMAZON_CACHE_TTL", "24h")

	viper.SetDefault("LOOKUP_DEFAULT_LIMIT", 3)
	viper.SetDefault("LOOKUP_DB_SCAN_LIMIT", 100)
	viper.SetDefault("LOOKUP_BUDGET_THRESHOLD", 30)

	// Defaults para geração de conteúdo sazonal
	viper.SetDefault("SEASONAL_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("SEASONAL_ENABLED", false)
	viper.SetDefault("SEASONAL_LEAD_TIME_DAYS", 30)
	viper.SetDefault("SEASONAL_HOLIDAYS", "valentines_day,mothers_day,fathers_day,halloween,thanksgiving,black_friday,christmas,new_year")
	viper.SetDefault("SEASONAL_AUTO_PUBLISH", false)
	viper.SetDefault("SEASONAL_PLATFORMS", "tiktok,instagram,youtube,twitter")
	viper.SetDefault("SEASONAL_CALENDAR_FILE", "")
	viper.SetDefault("SEASONAL_ORG_ID", 1)

	viper.SetDefault("CATALOG_PRUNE_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("CATALOG_PRUNE_ENABLED", false)
	viper.SetDefault("AFFILIATE_CATALOG_MAX_AGE_DAYS", 30)

	viper.SetDefault("WEBHOOK_SECRET", "") // Vazio aceita qualquer chamada
	viper.SetDefault("WEBHOOK_DEFAULT_ORG_ID", 1)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
