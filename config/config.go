package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"sales/constants"
	"sales/services/logger"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
)

// DBConfig chứa thông tin kết nối Postgres
type DBConfig struct {
	URL             string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	TimeZone        string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
}

type RedisConfig struct {
	Addr     string
	Username string
	Password string
	DB       int
	TTL      time.Duration
}

type AMQPConfig struct {
	URL      string
	Exchange string
}

type Config struct {
	Env         string
	Port        string
	GinMode     string
	LogLevel    logger.Level
	LogDir      string
	CORSOrigins []string
	DB          DBConfig
	Redis       RedisConfig
	AMQP        AMQPConfig

	// lỗi parse biến môi trường, trả về trong Validate
	parseErrs []error
}

// LoadEnv nạp biến môi trường từ tệp `.env` nếu có
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}
}

func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

// LoadConfig đọc cấu hình từ biến môi trường (đã nạp .env trước đó)
func LoadConfig() *Config {
	cfg := &Config{
		Env:     strings.ToLower(GetEnv("ENV", "dev")),
		Port:    GetEnv("PORT", "8083"),
		GinMode: GetEnv("GIN_MODE", "release"),
	}

	cfg.LogLevel = logger.ParseLevel(GetEnv("LOG_LEVEL", "info"))
	cfg.LogDir = GetEnv("LOG_DIR", "")

	if origins := GetEnv("CORS_ORIGINS", ""); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
			}
		}
	}

	// Biến DB theo môi trường: DEV_DB_HOST, QC_DB_HOST, PROD_DB_HOST...
	prefix := strings.ToUpper(cfg.Env) + "_DB_"
	cfg.DB = DBConfig{
		URL:             GetEnv("DATABASE_URL", ""),
		Host:            GetEnv(prefix+"HOST", "localhost"),
		Port:            GetEnv(prefix+"PORT", "5432"),
		User:            GetEnv(prefix+"USER", ""),
		Password:        GetEnv(prefix+"PASSWORD", ""),
		Name:            GetEnv(prefix+"NAME", ""),
		SSLMode:         GetEnv("DB_SSLMODE", "disable"),
		TimeZone:        GetEnv("DB_TIMEZONE", "UTC"),
		MaxOpenConns:    cfg.intEnv("DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns:    cfg.intEnv("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: cfg.durationEnv("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		AutoMigrate:     cfg.boolEnv("DB_AUTO_MIGRATE", true),
	}

	cfg.Redis = RedisConfig{
		Addr:     GetEnv("REDIS_ADDR", ""),
		Username: GetEnv("REDIS_USER", ""),
		Password: GetEnv("REDIS_PASSWORD", ""),
		DB:       cfg.intEnv("REDIS_DB", 0),
		TTL:      cfg.durationEnv("CACHE_TTL", constants.DefaultCacheTTL),
	}

	cfg.AMQP = AMQPConfig{
		URL:      GetEnv("AMQP_URL", ""),
		Exchange: GetEnv("AMQP_EXCHANGE", "sales"),
	}

	return cfg
}

// DSN trả về chuỗi kết nối Postgres, DATABASE_URL được ưu tiên
func (c DBConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode, c.TimeZone)
}

// MigrationURL trả về URL dạng postgres:// cho golang-migrate
func (c DBConfig) MigrationURL() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

// Validate gom tất cả lỗi cấu hình thay vì dừng ở lỗi đầu tiên
func (c *Config) Validate() error {
	var result *multierror.Error
	for _, err := range c.parseErrs {
		result = multierror.Append(result, err)
	}

	switch c.Env {
	case "dev", "qc", "prod", "test":
	default:
		result = multierror.Append(result, fmt.Errorf("unknown environment: %s", c.Env))
	}

	if _, err := strconv.Atoi(c.Port); err != nil {
		result = multierror.Append(result, fmt.Errorf("PORT must be a number, got %q", c.Port))
	}

	if c.DB.URL == "" {
		if c.DB.User == "" {
			result = multierror.Append(result, fmt.Errorf("%s_DB_USER is required when DATABASE_URL is empty", strings.ToUpper(c.Env)))
		}
		if c.DB.Name == "" {
			result = multierror.Append(result, fmt.Errorf("%s_DB_NAME is required when DATABASE_URL is empty", strings.ToUpper(c.Env)))
		}
	}

	if c.DB.MaxOpenConns < 1 {
		result = multierror.Append(result, fmt.Errorf("DB_MAX_OPEN_CONNS must be positive"))
	}
	if c.DB.MaxIdleConns < 0 || c.DB.MaxIdleConns > c.DB.MaxOpenConns {
		result = multierror.Append(result, fmt.Errorf("DB_MAX_IDLE_CONNS must be between 0 and DB_MAX_OPEN_CONNS"))
	}
	if c.Redis.TTL <= 0 {
		result = multierror.Append(result, fmt.Errorf("CACHE_TTL must be positive"))
	}
	if c.AMQP.URL != "" && c.AMQP.Exchange == "" {
		result = multierror.Append(result, fmt.Errorf("AMQP_EXCHANGE is required when AMQP_URL is set"))
	}

	return result.ErrorOrNil()
}

func (c *Config) intEnv(key string, fallback int) int {
	raw := GetEnv(key, "")
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		c.parseErrs = append(c.parseErrs, fmt.Errorf("%s must be an integer, got %q", key, raw))
		return fallback
	}
	return value
}

func (c *Config) boolEnv(key string, fallback bool) bool {
	raw := GetEnv(key, "")
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		c.parseErrs = append(c.parseErrs, fmt.Errorf("%s must be a boolean, got %q", key, raw))
		return fallback
	}
	return value
}

func (c *Config) durationEnv(key string, fallback time.Duration) time.Duration {
	raw := GetEnv(key, "")
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		c.parseErrs = append(c.parseErrs, fmt.Errorf("%s must be a duration like 5m, got %q", key, raw))
		return fallback
	}
	return value
}
