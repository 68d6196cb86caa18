package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Meta      Meta      `mapstructure:",squash"`
	Diagnosis Diagnosis `mapstructure:",squash"`
	Overlap   Overlap   `mapstructure:",squash"`
	Retention Retention `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
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

type Meta struct {
	BaseURL               string `mapstructure:"meta_base_url"`
	URL                   string `mapstructure:"meta_url"`
	Version               string `mapstructure:"meta_version"`
	AccessToken           string `mapstructure:"meta_access_token"`
	RequestTimeoutSeconds int    `mapstructure:"meta_request_timeout_seconds"`
	MaxRetries            int    `mapstructure:"meta_max_retries"`
}

type Diagnosis struct {
	DefaultPeriodDays int `mapstructure:"diagnosis_default_period_days"`
	MaxPeriodDays     int `mapstructure:"diagnosis_max_period_days"`
}

type Overlap struct {
	PairLimit           int  `mapstructure:"overlap_pair_limit"`
	SoftDeadlineSeconds int  `mapstructure:"overlap_soft_deadline_seconds"`
	CacheTTLHours       int  `mapstructure:"overlap_cache_ttl_hours"`
	MemoryCache         bool `mapstructure:"overlap_memory_cache"`
}

type Retention struct {
	CronSchedule      string `mapstructure:"retention_cron"`
	Enabled           bool   `mapstructure:"retention_enabled"`
	MetricRowDays     int    `mapstructure:"retention_metric_row_days"`
	BenchmarkDays     int    `mapstructure:"retention_benchmark_days"`
	OverlapCacheHours int    `mapstructure:"retention_overlap_cache_hours"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/protractor")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("META_REQUEST_TIMEOUT_SECONDS", 30)
	viper.SetDefault("META_MAX_RETRIES", 3)

	viper.SetDefault("DIAGNOSIS_DEFAULT_PERIOD_DAYS", 7)
	viper.SetDefault("DIAGNOSIS_MAX_PERIOD_DAYS", 90)

	viper.SetDefault("OVERLAP_PAIR_LIMIT", 8)         // full pairwise is O(n²) external calls
	viper.SetDefault("OVERLAP_SOFT_DEADLINE_SECONDS", 55)
	viper.SetDefault("OVERLAP_CACHE_TTL_HOURS", 24)
	viper.SetDefault("OVERLAP_MEMORY_CACHE", false)

	viper.SetDefault("RETENTION_CRON", "0 5 * * *")
	viper.SetDefault("RETENTION_ENABLED", false)
	viper.SetDefault("RETENTION_METRIC_ROW_DAYS", 180)
	viper.SetDefault("RETENTION_BENCHMARK_DAYS", 365)
	viper.SetDefault("RETENTION_OVERLAP_CACHE_HOURS", 48)

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
		logrus.Info("using environment variables only (viper could not read .env):", err)
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

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

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
		logrus.Warn("could not determine working directory:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("loaded .env from:", location)
			return
		}
	}
}
