package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/atomospherebrand-bot/relese/internal/pkg/errs"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: values that differ between environments (port, DB connection, secrets)
// - default: values shared by every environment (studio hours, timeouts, paths)
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Admin     AdminConfig
	Schedule  ScheduleConfig
	Booking   BookingConfig
	Upload    UploadConfig
	Bot       BotConfig
	Redis     RedisConfig
	Telegram  TelegramConfig
	Reminder  ReminderConfig
	Telemetry TelemetryConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/Moscow"`
	// Applies migrations/*.sql on startup.
	AutoMigrate bool `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:5173,http://localhost:5000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Bot-Key,X-Request-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Content-Disposition"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Moscow"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"10800"` // 3*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type AdminConfig struct {
	Username string `envconfig:"ADMIN_USERNAME" default:"admin"`

	// bcrypt hash; a non-bcrypt value is compared as plain text.
	PasswordHash   string `envconfig:"ADMIN_PASSWORD_HASH" required:"true"`
	CookieSecure   bool   `envconfig:"ADMIN_COOKIE_SECURE" default:"false"`
	CookieDomain   string `envconfig:"ADMIN_COOKIE_DOMAIN"`
	CookieSameSite string `envconfig:"ADMIN_COOKIE_SAMESITE" default:"Lax"`
}

type ScheduleConfig struct {
	OpeningHour     int    `envconfig:"SCHEDULE_OPENING_HOUR" default:"10"`
	ClosingHour     int    `envconfig:"SCHEDULE_CLOSING_HOUR" default:"22"`
	SlotStepMinutes int    `envconfig:"SCHEDULE_SLOT_STEP_MINUTES" default:"30"`
	Location        string `envconfig:"SCHEDULE_LOCATION" default:"Europe/Moscow"`
}

type BookingConfig struct {
	StrictStatus bool `envconfig:"BOOKING_STRICT_STATUS" default:"false"`
}

type UploadConfig struct {
	Dir      string `envconfig:"UPLOAD_DIR" default:"uploads"`
	MaxBytes int64  `envconfig:"UPLOAD_MAX_BYTES" default:"52428800"` // 50 MiB
}

type BotConfig struct {
	APIKey        string        `envconfig:"BOT_API_KEY"`
	RestartScript string        `envconfig:"BOT_RESTART_SCRIPT"`
	StopScript    string        `envconfig:"BOT_STOP_SCRIPT"`
	ScriptTimeout time.Duration `envconfig:"BOT_SCRIPT_TIMEOUT" default:"60s"`
}

type RedisConfig struct {
	Address  string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	PoolSize int    `envconfig:"REDIS_POOL_SIZE" default:"10"`
}

type TelegramConfig struct {
	// Falls back to the token stored in studio settings when empty.
	Token string `envconfig:"TELEGRAM_BOT_TOKEN"`
}

type ReminderConfig struct {
	Enabled bool   `envconfig:"REMINDER_ENABLED" default:"true"`
	Spec    string `envconfig:"REMINDER_CRON" default:"@every 5m"`
}

type TelemetryConfig struct {
	Enabled      bool    `envconfig:"OTEL_ENABLED" default:"false"`
	ServiceName  string  `envconfig:"OTEL_SERVICE_NAME" default:"tattoo-admin"`
	OTLPEndpoint string  `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"localhost:4317"`
	SampleRatio  float64 `envconfig:"OTEL_SAMPLING_RATIO" default:"1"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// LoadConfig reads .env (when present) and then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, errs.Wrap(err, "failed to process env config")
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Europe/Moscow",
		},
		Log: LogConfig{
			Level:          "error",
			TimeZone:       "Europe/Moscow",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 10800,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Admin: AdminConfig{
			Username:     "admin",
			PasswordHash: "admin",
		},
		Schedule: ScheduleConfig{
			OpeningHour:     10,
			ClosingHour:     22,
			SlotStepMinutes: 30,
			Location:        "Europe/Moscow",
		},
		Upload: UploadConfig{
			Dir:      "uploads",
			MaxBytes: 1 << 20,
		},
		Reminder: ReminderConfig{
			Spec: "@every 5m",
		},
	}
}
