package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port        string        `env:"PORT,        default=8080"`
	Env         string        `env:"ENV,         default=development"`
	JWTSecret   string        `env:"JWT_SECRET"`
	TokenTTL    time.Duration `env:"TOKEN_TTL,   default=1h"`
	LogLevel    string        `env:"LOG_LEVEL,   default=info"`
	EmailDomain string        `env:"EMAIL_DOMAIN, default=@dundee.ac.uk"`
	ExportDir   string        `env:"EXPORT_DIR,  default=exports"`

	Mongo MongoConfig
	Redis RedisConfig
	Mail  MailConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=annual_reviews"`
}

// RedisConfig backs the reminder throttle. An empty Addr disables it.
type RedisConfig struct {
	Addr        string        `env:"REDIS_ADDR"`
	DB          int           `env:"REDIS_DB,     default=0"`
	ReminderTTL time.Duration `env:"REMINDER_TTL, default=24h"`
}

// MailConfig configures the outbound reminder transport. With an empty API key
// the console sender is used instead of SendGrid.
type MailConfig struct {
	SendGridKey string `env:"SENDGRID_API_KEY"`
	From        string `env:"MAIL_FROM, default=reviews@dundee.ac.uk"`
	AppName     string `env:"APP_NAME,  default=Annual Review"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
