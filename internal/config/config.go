package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

var ErrInvalidTables = errors.New("invalid table configuration")

type Config struct {
	Port     string `envconfig:"PORT"      default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	AWSRegion          string `envconfig:"AWS_REGION"            default:"us-east-1"`
	AWSAccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID"     default:"local"`
	AWSSecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	DynamoDBEndpoint   string `envconfig:"DYNAMODB_ENDPOINT"`

	UsersTable        string `envconfig:"USERS_TABLE"        default:"users"`
	OrdersTable       string `envconfig:"ORDERS_TABLE"       default:"orders"`
	TransactionsTable string `envconfig:"TRANSACTIONS_TABLE" default:"transactions"`
	SettingsTable     string `envconfig:"SETTINGS_TABLE"     default:"settings"`

	FonnteBaseURL    string        `envconfig:"FONNTE_BASE_URL"    default:"https://api.fonnte.com"`
	FonnteToken      string        `envconfig:"FONNTE_TOKEN"`
	WAEnabledDefault bool          `envconfig:"WA_ENABLED_DEFAULT" default:"true"`
	WAGatewayTimeout time.Duration `envconfig:"WA_GATEWAY_TIMEOUT" default:"15s"`

	StoreInitTimeout time.Duration `envconfig:"STORE_INIT_TIMEOUT" default:"30s"`
}

// Load reads the process environment. A .env file, if any, has already been
// applied by godotenv/autoload in main.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.validateTables(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// validateTables rejects empty or shared table names; every collection
// needs its own table.
func (c Config) validateTables() error {
	seen := make(map[string]string, 4)
	for _, t := range []struct{ env, name string }{
		{"USERS_TABLE", c.UsersTable},
		{"ORDERS_TABLE", c.OrdersTable},
		{"TRANSACTIONS_TABLE", c.TransactionsTable},
		{"SETTINGS_TABLE", c.SettingsTable},
	} {
		if t.name == "" {
			return fmt.Errorf("%w: %s is empty", ErrInvalidTables, t.env)
		}
		if other, ok := seen[t.name]; ok {
			return fmt.Errorf("%w: %s and %s both use %q", ErrInvalidTables, other, t.env, t.name)
		}
		seen[t.name] = t.env
	}
	return nil
}

// ConfigureLogger sets up the standard logrus logger: JSON to stdout at the
// configured level, falling back to info.
func ConfigureLogger(cfg Config) {
	logrus.SetOutput(os.Stdout)
	logrus.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
		logrus.Warnf("invalid LOG_LEVEL %q, using %s", cfg.LogLevel, level)
	}
	logrus.SetLevel(level)
}

// Tables lists every DynamoDB table the service needs with its hash key.
// Names are distinct for a Config returned by Load.
func (c Config) Tables() map[string]string {
	return map[string]string{
		c.UsersTable:        "username",
		c.OrdersTable:       "id",
		c.TransactionsTable: "id",
		c.SettingsTable:     "key",
	}
}
