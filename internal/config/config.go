package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	DriverMongo    = "mongo"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	PublisherNone  = "none"
	PublisherKafka = "kafka"
	PublisherNATS  = "nats"
)

type Config struct {
	Env            string        `yaml:"env" env:"ENV" env-default:"local"`
	GRPC           GRPCConfig    `yaml:"grpc"`
	HTTP           HTTPConfig    `yaml:"http"`
	Storage        StorageConfig `yaml:"storage"`
	Publisher      string        `yaml:"publisher" env:"PUBLISHER" env-default:"none"`
	PublishTimeout time.Duration `yaml:"publish_timeout" env:"PUBLISH_TIMEOUT" env-default:"2s"`
	Kafka          KafkaConfig   `yaml:"kafka"`
	NATS           NATSConfig    `yaml:"nats"`
	Redis          RedisConfig   `yaml:"redis"`
	Metrics        MetricsConfig `yaml:"metrics"`
	Shutdown       time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// ConnectionTimeout bounds the connection handshake only, not individual
// calls.
type GRPCConfig struct {
	Port              int           `yaml:"port" env:"GRPC_PORT" env-default:"50051"`
	ConnectionTimeout time.Duration `yaml:"connection_timeout" env:"GRPC_CONNECTION_TIMEOUT" env-default:"5s"`
	Workers           int           `yaml:"workers" env:"GRPC_WORKERS" env-default:"10"`
}

type HTTPConfig struct {
	Port         int           `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" env:"HTTP_MAX_BODY_BYTES" env-default:"1048576"`
	MaxInFlight  int           `yaml:"max_in_flight" env:"HTTP_MAX_IN_FLIGHT" env-default:"10"`
}

type StorageConfig struct {
	Driver   string         `yaml:"driver" env:"STORAGE_DRIVER" env-default:"mongo"`
	Timeout  time.Duration  `yaml:"timeout" env:"STORAGE_TIMEOUT" env-default:"5s"`
	Mongo    MongoConfig    `yaml:"mongo"`
	SQLite   SQLiteConfig   `yaml:"sqlite"`
	Postgres PostgresConfig `yaml:"postgres"`
}

type MongoConfig struct {
	URI            string        `yaml:"uri" env:"MONGO_URI" env-default:"mongodb://localhost:27017/"`
	Database       string        `yaml:"database" env:"MONGO_DATABASE" env-default:"CDS"`
	Collection     string        `yaml:"collection" env:"MONGO_COLLECTION" env-default:"DNS"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"MONGO_CONNECT_TIMEOUT" env-default:"10s"`
}

type SQLiteConfig struct {
	Path string `yaml:"path" env:"SQLITE_PATH" env-default:"./storage/dnsintake.db"`
}

type PostgresConfig struct {
	DSN string `yaml:"dsn" env:"POSTGRES_DSN"`
}

type KafkaConfig struct {
	Brokers     []string       `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:","`
	Topic       string         `yaml:"topic" env:"KAFKA_TOPIC" env-default:"dns.ingested"`
	DialAddress string         `yaml:"dial_address" env:"KAFKA_DIAL_ADDRESS" env-default:"localhost:9092"`
	Consumer    ConsumerConfig `yaml:"consumer"`
}

type ConsumerConfig struct {
	Enabled    bool          `yaml:"enabled" env:"KAFKA_CONSUMER_ENABLED" env-default:"false"`
	Topic      string        `yaml:"topic" env:"KAFKA_CONSUMER_TOPIC" env-default:"dns.queries"`
	GroupID    string        `yaml:"group_id" env:"KAFKA_CONSUMER_GROUP_ID" env-default:"dnsintake"`
	RetryDelay time.Duration `yaml:"retry_delay" env:"KAFKA_CONSUMER_RETRY_DELAY" env-default:"5s"`
}

type NATSConfig struct {
	URL     string `yaml:"url" env:"NATS_URL" env-default:"nats://localhost:4222"`
	Subject string `yaml:"subject" env:"NATS_SUBJECT" env-default:"dns.ingested"`
}

type RedisConfig struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	URL     string `yaml:"url" env:"REDIS_URL" env-default:"redis://localhost:6379/0"`
	Key     string `yaml:"key" env:"REDIS_KEY" env-default:"dns:blocked"`
}

type MetricsConfig struct {
	Host string `yaml:"host" env:"METRICS_HOST" env-default:"localhost"`
	Port int    `yaml:"port" env:"METRICS_PORT" env-default:"8082"`
}

// MustLoad reads the file given by -config or CONFIG_PATH. Without either,
// configuration comes from the environment and defaults.
func MustLoad() *Config {
	path := fetchConfigPath()

	if path == "" {
		var cfg Config
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			panic("failed to read config from environment: " + err.Error())
		}
		mustValidate(&cfg)
		return &cfg
	}

	return MustLoadByPath(path)
}

func MustLoadByPath(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(err.Error())
	}

	return cfg
}

func Load(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func mustValidate(cfg *Config) {
	if err := cfg.Validate(); err != nil {
		panic(err.Error())
	}
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverMongo, DriverSQLite:
	case DriverPostgres:
		if c.Storage.Postgres.DSN == "" {
			return fmt.Errorf("storage driver %q requires storage.postgres.dsn", c.Storage.Driver)
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	switch c.Publisher {
	case PublisherNone, PublisherNATS:
	case PublisherKafka:
		if len(c.Kafka.Brokers) == 0 {
			return fmt.Errorf("publisher %q requires kafka.brokers", c.Publisher)
		}
	default:
		return fmt.Errorf("unknown publisher %q", c.Publisher)
	}

	if c.Publisher != PublisherNone && c.PublishTimeout <= 0 {
		return fmt.Errorf("publish_timeout must be positive, got %s", c.PublishTimeout)
	}

	if c.Kafka.Consumer.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka consumer requires kafka.brokers")
	}
	if c.GRPC.Workers <= 0 {
		return fmt.Errorf("grpc.workers must be positive, got %d", c.GRPC.Workers)
	}
	if c.HTTP.MaxInFlight <= 0 {
		return fmt.Errorf("http.max_in_flight must be positive, got %d", c.HTTP.MaxInFlight)
	}

	return nil
}

func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
