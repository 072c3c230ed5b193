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
	App                 App                 `mapstructure:",squash"`
	Server              Server              `mapstructure:",squash"`
	Database            Database            `mapstructure:",squash"`
	Auth                Auth                `mapstructure:",squash"`
	Cors                Cors                `mapstructure:",squash"`
	RateLimit           RateLimit           `mapstructure:",squash"`
	Analytics           Analytics           `mapstructure:",squash"`
	Export              Export              `mapstructure:",squash"`
	InsightSnapshotSync InsightSnapshotSync `mapstructure:",squash"`
	SecretKey           string              `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`

	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type Auth struct {
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type RateLimit struct {
	RequestsPerSecond float64 `mapstructure:"rate_limit_rps"`
	Burst             int     `mapstructure:"rate_limit_burst"`
	Enabled           bool    `mapstructure:"rate_limit_enabled"`
}

type Analytics struct {
	Timezone             string  `mapstructure:"analytics_timezone"`
	GrowthWindow         int     `mapstructure:"analytics_growth_window"`
	ForecastGrowthRate   float64 `mapstructure:"analytics_forecast_growth_rate"`
	ForecastVolumeFactor float64 `mapstructure:"analytics_forecast_volume_factor"`
	ForecastHorizonDays  int     `mapstructure:"analytics_forecast_horizon_days"`
	ForecastStepDays     int     `mapstructure:"analytics_forecast_step_days"`
	MarginThreshold      float64 `mapstructure:"analytics_margin_threshold"`
	DefaultTimeRange     string  `mapstructure:"analytics_default_time_range"`
}

type Export struct {
	SheetName string `mapstructure:"export_sheet_name"`
	MaxRows   int    `mapstructure:"export_max_rows"`
}

type InsightSnapshotSync struct {
	CronSchedule      string `mapstructure:"insight_snapshot_sync_cron"`
	MaxConcurrentJobs int    `mapstructure:"insight_snapshot_sync_max_concurrent_jobs"`
	TimeRange         string `mapstructure:"insight_snapshot_sync_time_range"`
	RetentionDays     int    `mapstructure:"insight_snapshot_retention_days"`
	Enabled           bool   `mapstructure:"insight_snapshot_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("RATE_LIMIT_RPS", 5)
	viper.SetDefault("RATE_LIMIT_BURST", 10)
	viper.SetDefault("RATE_LIMIT_ENABLED", true)

	// Parâmetros do motor de análise
	viper.SetDefault("ANALYTICS_TIMEZONE", "UTC")
	viper.SetDefault("ANALYTICS_GROWTH_WINDOW", 15)             // 15 vendas por janela
	viper.SetDefault("ANALYTICS_FORECAST_GROWTH_RATE", 0.05)    // 5% ao mês
	viper.SetDefault("ANALYTICS_FORECAST_VOLUME_FACTOR", 0.8)   // volume cresce a 80% da receita
	viper.SetDefault("ANALYTICS_FORECAST_HORIZON_DAYS", 90)     // 3 meses
	viper.SetDefault("ANALYTICS_FORECAST_STEP_DAYS", 7)         // um ponto por semana
	viper.SetDefault("ANALYTICS_MARGIN_THRESHOLD", 20)          // margem saudável a partir de 20%
	viper.SetDefault("ANALYTICS_DEFAULT_TIME_RANGE", "last_30_days")

	viper.SetDefault("EXPORT_SHEET_NAME", "Sales")
	viper.SetDefault("EXPORT_MAX_ROWS", 100000)

	viper.SetDefault("INSIGHT_SNAPSHOT_SYNC_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("INSIGHT_SNAPSHOT_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("INSIGHT_SNAPSHOT_SYNC_TIME_RANGE", "last_30_days")
	viper.SetDefault("INSIGHT_SNAPSHOT_RETENTION_DAYS", 365)
	viper.SetDefault("INSIGHT_SNAPSHOT_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
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
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
