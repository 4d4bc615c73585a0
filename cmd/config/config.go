package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Auth        AuthConfig
	Gateway     GatewayConfig
	Storage     StorageConfig
	AMQP        AMQPConfig
	Internal    InternalConfig
	IPEcho      IPEchoConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type AuthConfig struct {
	JWTSecret      string
	JWTExpiration  time.Duration
	SessionExpTime time.Duration
	// TTL of a course unlock obtained through an access code.
	CourseUnlockTTL time.Duration
}

// GatewayConfig holds the payment gateway contract. MerchantPassword is the
// shared secret the gateway uses to reproduce request signatures, so it is
// loaded once here and passed by reference; nothing reads it from the
// environment afterwards.
type GatewayConfig struct {
	PaymentURL       string
	ServiceID        string
	MerchantPassword string
	ReturnURL        string
	CallbackURL      string
	CurrencyCode     string
}

type StorageConfig struct {
	Region        string
	Bucket        string
	PublicBaseURL string
	SignedURLTTL  time.Duration
}

type AMQPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

type InternalConfig struct {
	APIKey  string
	BaseURL string
}

type IPEchoConfig struct {
	URL string
}

// Load builds the immutable configuration from environment variables once at
// process start. A .env file is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:  getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvInt("DB_PORT", 3306),
			User:            getEnv("DB_USER", "root"),
			Password:        getEnv("DB_PASSWORD", ""),
			Name:            getEnv("DB_NAME", "kelasfoto"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Auth: AuthConfig{
			JWTSecret:       getEnv("JWT_SECRET", ""),
			JWTExpiration:   getEnvDuration("JWT_EXPIRATION", 24*time.Hour),
			SessionExpTime:  getEnvDuration("SESSION_EXPIRATION", 24*time.Hour),
			CourseUnlockTTL: getEnvDuration("COURSE_UNLOCK_TTL", 30*24*time.Hour),
		},
		Gateway: GatewayConfig{
			PaymentURL:       getEnv("GATEWAY_PAYMENT_URL", ""),
			ServiceID:        getEnv("GATEWAY_SERVICE_ID", ""),
			MerchantPassword: getEnv("GATEWAY_MERCHANT_PASSWORD", ""),
			ReturnURL:        getEnv("GATEWAY_RETURN_URL", ""),
			CallbackURL:      getEnv("GATEWAY_CALLBACK_URL", ""),
			CurrencyCode:     getEnv("GATEWAY_CURRENCY_CODE", "MYR"),
		},
		Storage: StorageConfig{
			Region:        getEnv("STORAGE_REGION", "ap-southeast-1"),
			Bucket:        getEnv("STORAGE_BUCKET", ""),
			PublicBaseURL: getEnv("STORAGE_PUBLIC_BASE_URL", ""),
			SignedURLTTL:  getEnvDuration("STORAGE_SIGNED_URL_TTL", 15*time.Minute),
		},
		AMQP: AMQPConfig{
			Host:     getEnv("AMQP_HOST", "localhost"),
			Port:     getEnvInt("AMQP_PORT", 5672),
			User:     getEnv("AMQP_USER", "guest"),
			Password: getEnv("AMQP_PASSWORD", "guest"),
		},
		Internal: InternalConfig{
			APIKey:  getEnv("INTERNAL_API_KEY", ""),
			BaseURL: getEnv("INTERNAL_BASE_URL", "http://localhost:8080"),
		},
		IPEcho: IPEchoConfig{
			URL: getEnv("IPECHO_URL", "https://api.ipify.org"),
		},
	}
}

// GetDSN returns the MySQL DSN for sqlx.Connect.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
