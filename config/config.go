package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Timesheet assistant specifics
	Timesheet TimesheetConfig
	Store     StoreConfig
	Chat      ChatConfig
	RateLimit RateLimitConfig

	// Outer integrations
	Telegram       TelegramConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// TimesheetConfig describes the developer the assistant acts for.
type TimesheetConfig struct {
	Timezone     string
	UserID       int
	UserName     string
	CostCenter   string
	HoursPerDay  float64
	SeedDemoData bool
}

type StoreConfig struct {
	Driver string // memory | sqlite
	DSN    string
}

type ChatConfig struct {
	ThinkingDelay    time.Duration
	ReplyDelay       time.Duration
	SessionCacheSize int
	ExportCacheSize  int
	ExportTTL        time.Duration
}

type RateLimitConfig struct {
	RequestsPerMin int
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
}

type GoogleCalendarConfig struct {
	CredentialsPath   string
	TokenPath         string
	HolidayCalendarID string
	HolidayProject    string
	HolidayCostCenter string
	ImportMonths      int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Timesheet
	cfg.Timesheet.Timezone = viper.GetString("timesheet.timezone")
	cfg.Timesheet.UserID = viper.GetInt("timesheet.user_id")
	cfg.Timesheet.UserName = viper.GetString("timesheet.user_name")
	cfg.Timesheet.CostCenter = viper.GetString("timesheet.cost_center")
	cfg.Timesheet.HoursPerDay = viper.GetFloat64("timesheet.hours_per_day")
	cfg.Timesheet.SeedDemoData = viper.GetBool("timesheet.seed_demo_data")

	cfg.Store.Driver = viper.GetString("store.driver")
	cfg.Store.DSN = viper.GetString("store.dsn")

	cfg.Chat.ThinkingDelay = viper.GetDuration("chat.thinking_delay")
	cfg.Chat.ReplyDelay = viper.GetDuration("chat.reply_delay")
	cfg.Chat.SessionCacheSize = viper.GetInt("chat.session_cache_size")
	cfg.Chat.ExportCacheSize = viper.GetInt("chat.export_cache_size")
	cfg.Chat.ExportTTL = viper.GetDuration("chat.export_ttl")

	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// Telegram
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.HolidayCalendarID = viper.GetString("google_calendar.holiday_calendar_id")
	cfg.GoogleCalendar.HolidayProject = viper.GetString("google_calendar.holiday_project")
	cfg.GoogleCalendar.HolidayCostCenter = viper.GetString("google_calendar.holiday_cost_center")
	cfg.GoogleCalendar.ImportMonths = viper.GetInt("google_calendar.import_months")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that would otherwise fail deep inside wiring.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case "memory", "sqlite":
	default:
		return fmt.Errorf("store.driver must be memory or sqlite, got %q", c.Store.Driver)
	}
	if _, err := time.LoadLocation(c.Timesheet.Timezone); err != nil {
		return fmt.Errorf("timesheet.timezone: %w", err)
	}
	if c.Timesheet.HoursPerDay <= 0 || c.Timesheet.HoursPerDay > 24 {
		return errors.New("timesheet.hours_per_day must be in (0, 24]")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("timesheet.timezone", "America/Argentina/Buenos_Aires")
	viper.SetDefault("timesheet.user_id", 1)
	viper.SetDefault("timesheet.user_name", "Daniel")
	viper.SetDefault("timesheet.cost_center", "IT")
	viper.SetDefault("timesheet.hours_per_day", 8)
	viper.SetDefault("timesheet.seed_demo_data", true)

	viper.SetDefault("store.driver", "memory")
	viper.SetDefault("store.dsn", ":memory:")

	viper.SetDefault("chat.thinking_delay", "1s")
	viper.SetDefault("chat.reply_delay", "500ms")
	viper.SetDefault("chat.session_cache_size", 1000)
	viper.SetDefault("chat.export_cache_size", 256)
	viper.SetDefault("chat.export_ttl", "15m")

	viper.SetDefault("rate_limit.requests_per_min", 60)

	viper.SetDefault("google_calendar.token_path", "token.json")
	viper.SetDefault("google_calendar.holiday_project", "Feriado")
	viper.SetDefault("google_calendar.holiday_cost_center", "HR")
	viper.SetDefault("google_calendar.import_months", 12)
}
