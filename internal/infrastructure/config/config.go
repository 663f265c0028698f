package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	AWS      AWSConfig      `mapstructure:"aws"`
	DynamoDB DynamoDBConfig `mapstructure:"dynamodb"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Sequence SequenceConfig `mapstructure:"sequence"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Payments PaymentsConfig `mapstructure:"payments"`
	Billing  BillingConfig  `mapstructure:"billing"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type AWSConfig struct {
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

// DynamoDBConfig selects the document store. An empty endpoint with
// InMemory set keeps every collection in process.
type DynamoDBConfig struct {
	Endpoint         string `mapstructure:"endpoint"`
	TablePrefix      string `mapstructure:"table_prefix"`
	AutoCreateTables bool   `mapstructure:"auto_create_tables"`
	InMemory         bool   `mapstructure:"in_memory"`
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
}

// SequenceConfig picks the counter backend used for business ids:
// "dynamodb", "redis" or "memory".
type SequenceConfig struct {
	Backend string `mapstructure:"backend"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type PaymentsConfig struct {
	MercadoPagoAccessToken string `mapstructure:"mercadopago_access_token"`
	SandboxPayerEmail      string `mapstructure:"sandbox_payer_email"`
	Mock                   bool   `mapstructure:"mock"`
}

type BillingConfig struct {
	VATRate  int    `mapstructure:"vat_rate"`
	Currency string `mapstructure:"currency"`
	DueDays  int    `mapstructure:"due_days"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	bindEnvVariables(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.access_key_id", "local")
	v.SetDefault("aws.secret_access_key", "local")
	v.SetDefault("dynamodb.auto_create_tables", false)

	v.SetDefault("sequence.backend", "dynamodb")
	v.SetDefault("redis.addr", "localhost:6379")

	v.SetDefault("billing.vat_rate", 5)
	v.SetDefault("billing.currency", "AED")
	v.SetDefault("billing.due_days", 30)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

func bindEnvVariables(v *viper.Viper) {
	// Server
	v.BindEnv("server.port", "SERVER_PORT", "PORT")
	v.BindEnv("server.mode", "SERVER_MODE", "GIN_MODE")

	// AWS / DynamoDB
	v.BindEnv("aws.region", "AWS_REGION")
	v.BindEnv("aws.access_key_id", "AWS_ACCESS_KEY_ID")
	v.BindEnv("aws.secret_access_key", "AWS_SECRET_ACCESS_KEY")
	v.BindEnv("dynamodb.endpoint", "DYNAMODB_ENDPOINT")
	v.BindEnv("dynamodb.table_prefix", "DYNAMODB_TABLE_PREFIX")
	v.BindEnv("dynamodb.auto_create_tables", "DYNAMODB_AUTO_CREATE_TABLES")
	v.BindEnv("dynamodb.in_memory", "DOCSTORE_IN_MEMORY")

	// JWT
	v.BindEnv("jwt.secret", "JWT_SECRET")

	// Sequence / Redis
	v.BindEnv("sequence.backend", "SEQUENCE_BACKEND")
	v.BindEnv("redis.addr", "REDIS_ADDR")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("redis.db", "REDIS_DB")

	// Payments
	v.BindEnv("payments.mercadopago_access_token", "MERCADOPAGO_ACCESS_TOKEN")
	v.BindEnv("payments.sandbox_payer_email", "MERCADOPAGO_TEST_PAYER_EMAIL")
	v.BindEnv("payments.mock", "PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK")

	// Billing
	v.BindEnv("billing.vat_rate", "BILLING_VAT_RATE")
	v.BindEnv("billing.currency", "BILLING_CURRENCY")
	v.BindEnv("billing.due_days", "BILLING_DUE_DAYS")

	// Log
	v.BindEnv("log.level", "LOG_LEVEL")
	v.BindEnv("log.format", "LOG_FORMAT")
}
