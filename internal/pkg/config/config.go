package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

// Backends for the rate limiter and CSRF token stores.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Redis     RedisConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Cookie    CookieConfig
	RateLimit RateLimitConfig
	Honeypot  HoneypotConfig
	CSRF      CSRFConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
	Mode string `envconfig:"GIN_MODE" default:"debug"`
	// Empty trusts every proxy, which lets clients choose their rate-limit key.
	TrustedProxies  []string      `envconfig:"TRUSTED_PROXIES" default:"127.0.0.1,::1"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"15s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/Madrid"`

	MaxConns        int32         `envconfig:"DB_MAX_CONNS" default:"20"`
	MinConns        int32         `envconfig:"DB_MIN_CONNS" default:"2"`
	MaxConnLifetime time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"1h"`
	MaxConnIdleTime time.Duration `envconfig:"DB_MAX_CONN_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-CSRF-Token"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-CSRF-Token,Retry-After"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Madrid"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"` // 1*60*60
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type RateLimitConfig struct {
	Backend       string        `envconfig:"RATE_LIMIT_BACKEND" default:"memory"` // memory | redis
	KeyPrefix     string        `envconfig:"RATE_LIMIT_KEY_PREFIX" default:"ratelimit:"`
	SweepInterval time.Duration `envconfig:"RATE_LIMIT_SWEEP_INTERVAL" default:"5m"`
	IdleTTL       time.Duration `envconfig:"RATE_LIMIT_IDLE_TTL" default:"1h"`

	FormMaxAttempts int           `envconfig:"RATE_LIMIT_FORM_MAX_ATTEMPTS" default:"3"`
	FormWindow      time.Duration `envconfig:"RATE_LIMIT_FORM_WINDOW" default:"1m"`
	FormBlock       time.Duration `envconfig:"RATE_LIMIT_FORM_BLOCK" default:"5m"`

	LoginMaxAttempts int           `envconfig:"RATE_LIMIT_LOGIN_MAX_ATTEMPTS" default:"5"`
	LoginWindow      time.Duration `envconfig:"RATE_LIMIT_LOGIN_WINDOW" default:"15m"`
	LoginBlock       time.Duration `envconfig:"RATE_LIMIT_LOGIN_BLOCK" default:"30m"`

	APIMaxAttempts int           `envconfig:"RATE_LIMIT_API_MAX_ATTEMPTS" default:"100"`
	APIWindow      time.Duration `envconfig:"RATE_LIMIT_API_WINDOW" default:"1m"`
	APIBlock       time.Duration `envconfig:"RATE_LIMIT_API_BLOCK" default:"10m"`
}

type HoneypotConfig struct {
	Enabled       bool          `envconfig:"HONEYPOT_ENABLED" default:"true"`
	FieldName     string        `envconfig:"HONEYPOT_FIELD_NAME" default:"website"`
	MinSubmitTime time.Duration `envconfig:"HONEYPOT_MIN_SUBMIT_TIME" default:"2s"`
	MaxFormAge    time.Duration `envconfig:"HONEYPOT_MAX_FORM_AGE" default:"30m"`
}

type CSRFConfig struct {
	Backend       string        `envconfig:"CSRF_BACKEND" default:"memory"` // memory | redis
	KeyPrefix     string        `envconfig:"CSRF_KEY_PREFIX" default:"csrf:"`
	TokenTTL      time.Duration `envconfig:"CSRF_TOKEN_TTL" default:"24h"`
	SweepInterval time.Duration `envconfig:"CSRF_SWEEP_INTERVAL" default:"10m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8889", // Test port
			Mode:            "test",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    5 * time.Second,
			ShutdownTimeout: time.Second,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Europe/Madrid",

			MaxConns:        5,
			MinConns:        1,
			MaxConnLifetime: time.Hour,
			MaxConnIdleTime: 10 * time.Minute,
		},
		Redis: RedisConfig{
			Addr: "localhost:16379",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Madrid",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 3600,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		RateLimit: RateLimitConfig{
			Backend:          BackendMemory,
			KeyPrefix:        "ratelimit:",
			SweepInterval:    5 * time.Minute,
			IdleTTL:          time.Hour,
			FormMaxAttempts:  3,
			FormWindow:       time.Minute,
			FormBlock:        5 * time.Minute,
			LoginMaxAttempts: 5,
			LoginWindow:      15 * time.Minute,
			LoginBlock:       30 * time.Minute,
			APIMaxAttempts:   100,
			APIWindow:        time.Minute,
			APIBlock:         10 * time.Minute,
		},
		Honeypot: HoneypotConfig{
			Enabled:       true,
			FieldName:     "website",
			MinSubmitTime: 2 * time.Second,
			MaxFormAge:    30 * time.Minute,
		},
		CSRF: CSRFConfig{
			Backend:       BackendMemory,
			KeyPrefix:     "csrf:",
			TokenTTL:      24 * time.Hour,
			SweepInterval: 10 * time.Minute,
		},
	}
}
