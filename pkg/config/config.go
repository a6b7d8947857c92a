package config

import (
	"errors"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP           HTTP
	Logger         Logger
	Postgres       Postgres
	Kafka          Kafka
	Models         Models
	AuthServiceURL string `env:"AUTH_SERVICE_URL"`

	// DefaultCurrency is assumed when an expense arrives without one.
	DefaultCurrency string `env:"DEFAULT_CURRENCY" envDefault:"EUR"`
}

type HTTP struct {
	Port          int    `env:"HTTP_PORT" envDefault:"8080"`
	APIKeyEnabled bool   `env:"HTTP_API_KEY_ENABLED" envDefault:"false"`
	APIKey        string `env:"HTTP_API_KEY" envDefault:"dev"`
}

type Logger struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN"`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type Kafka struct {
	Brokers           []string `env:"KAFKA_BROKERS"`
	RecordEventsTopic string   `env:"KAFKA_RECORD_EVENTS_TOPIC" envDefault:"fin.record-events"`
}

// Models toggles whole tables on and off. References to a disabled
// table resolve to hidden placeholder fields so dependent tables keep
// a stable shape.
type Models struct {
	ExpenseEnabled        bool `env:"MODEL_EXPENSE_ENABLED" envDefault:"true"`
	PaymentServiceEnabled bool `env:"MODEL_PAYMENT_SERVICE_ENABLED" envDefault:"true"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
