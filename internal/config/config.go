package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Tipos de fonte de dados suportados
const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
	SourceAPI      = "api"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Redis          Redis          `mapstructure:",squash"`
	DataSource     DataSource     `mapstructure:",squash"`
	SalesAPI       SalesAPI       `mapstructure:",squash"`
	DatasetRefresh DatasetRefresh `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	Cors           Cors           `mapstructure:",squash"`
	RateLimit      RateLimit      `mapstructure:",squash"`
	Dashboard      Dashboard      `mapstructure:",squash"`
}

type App struct {
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"server_read_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"server_shutdown_timeout"`
}

type Database struct {
	Enabled  bool   `mapstructure:"database_enabled"`
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`

	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type Redis struct {
	Enabled       bool   `mapstructure:"redis_enabled"`
	RedisHost     string `mapstructure:"redis_host"`
	RedisPort     string `mapstructure:"redis_port"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db"`
	Namespace     string `mapstructure:"redis_namespace"`
}

// DataSource define de onde vem o conjunto de vendas: file, postgres ou api
type DataSource struct {
	Kind     string `mapstructure:"data_source"`
	FilePath string `mapstructure:"data_source_file"`
}

type SalesAPI struct {
	URL                string        `mapstructure:"sales_api_url"`
	APIKey             string        `mapstructure:"sales_api_key"`
	Timeout            time.Duration `mapstructure:"sales_api_timeout"`
	MaxConcurrentPages int           `mapstructure:"sales_api_max_concurrent_pages"`
	LookbackMonths     int           `mapstructure:"sales_api_lookback_months"`
}

type DatasetRefresh struct {
	CronSchedule     string `mapstructure:"dataset_refresh_cron"`
	Enabled          bool   `mapstructure:"dataset_refresh_enabled"`
	PersistSnapshots bool   `mapstructure:"dataset_refresh_persist_snapshots"`
}

// Auth Users no formato email:hashBcrypt:roleID
type Auth struct {
	Secret   string        `mapstructure:"auth_secret"`
	Users    []string      `mapstructure:"auth_users"`
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type RateLimit struct {
	Enabled           bool    `mapstructure:"rate_limit_enabled"`
	RequestsPerSecond float64 `mapstructure:"rate_limit_rps"`
	Burst             int     `mapstructure:"rate_limit_burst"`
	// IPs ou CIDRs de proxies cujos X-Forwarded-For/X-Real-IP são aceitos
	TrustedProxies []string `mapstructure:"rate_limit_trusted_proxies"`
}

type Dashboard struct {
	TopProductsLimit int           `mapstructure:"dashboard_top_products_limit"`
	CacheTTL         time.Duration `mapstructure:"dashboard_cache_ttl"`
	StreamInterval   time.Duration `mapstructure:"dashboard_stream_interval"`
}

func SetDefaults() {
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("SERVER_READ_TIMEOUT", "15s")
	viper.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "10s")

	viper.SetDefault("DATABASE_ENABLED", false)
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/dashboard?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("REDIS_ENABLED", false)
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_NAMESPACE", "strategic-dashboard")

	viper.SetDefault("DATA_SOURCE", SourceFile)
	viper.SetDefault("DATA_SOURCE_FILE", "data/vendas.csv")

	viper.SetDefault("SALES_API_URL", "")
	viper.SetDefault("SALES_API_KEY", "")
	viper.SetDefault("SALES_API_TIMEOUT", "30s")
	viper.SetDefault("SALES_API_MAX_CONCURRENT_PAGES", 4)
	viper.SetDefault("SALES_API_LOOKBACK_MONTHS", 12)

	viper.SetDefault("DATASET_REFRESH_CRON", "0 * * * *") // A cada hora cheia
	viper.SetDefault("DATASET_REFRESH_ENABLED", false)
	viper.SetDefault("DATASET_REFRESH_PERSIST_SNAPSHOTS", false)

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_USERS", "")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("RATE_LIMIT_ENABLED", true)
	viper.SetDefault("RATE_LIMIT_RPS", 20)
	viper.SetDefault("RATE_LIMIT_BURST", 40)
	viper.SetDefault("RATE_LIMIT_TRUSTED_PROXIES", "")

	viper.SetDefault("DASHBOARD_TOP_PRODUCTS_LIMIT", 10)
	viper.SetDefault("DASHBOARD_CACHE_TTL", "10m")
	viper.SetDefault("DASHBOARD_STREAM_INTERVAL", "5s")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

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

	config.Auth.Users = compact(config.Auth.Users)
	config.Cors.AllowedOrigins = compact(config.Cors.AllowedOrigins)
	config.RateLimit.TrustedProxies = compact(config.RateLimit.TrustedProxies)
	config.DataSource.Kind = strings.ToLower(strings.TrimSpace(config.DataSource.Kind))

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate verifica combinações de configuração que impedem a inicialização
func (c *Config) Validate() error {
	switch c.DataSource.Kind {
	case SourceFile:
		if c.DataSource.FilePath == "" {
			return fmt.Errorf("DATA_SOURCE_FILE é obrigatório quando DATA_SOURCE=%s", SourceFile)
		}
	case SourcePostgres:
		if !c.Database.Enabled {
			return fmt.Errorf("DATABASE_ENABLED deve ser true quando DATA_SOURCE=%s", SourcePostgres)
		}
	case SourceAPI:
		if c.SalesAPI.URL == "" {
			return fmt.Errorf("SALES_API_URL é obrigatório quando DATA_SOURCE=%s", SourceAPI)
		}
	default:
		return fmt.Errorf("DATA_SOURCE desconhecido: %q", c.DataSource.Kind)
	}

	if c.DatasetRefresh.PersistSnapshots && !c.Database.Enabled {
		return fmt.Errorf("DATASET_REFRESH_PERSIST_SNAPSHOTS exige DATABASE_ENABLED=true")
	}

	return nil
}

func compact(values []string) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			result = append(result, value)
		}
	}
	return result
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
