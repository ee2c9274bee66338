package config

import "time"

// Store drivers.
const (
	StoreDriverDynamoDB = "dynamodb"
	StoreDriverPostgres = "postgres"
	StoreDriverSQLite   = "sqlite"
)

// Upload drivers.
const (
	UploadDriverLocal = "local"
	UploadDriverGCS   = "gcs"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Store    StoreConfig    `yaml:"store"`
	DynamoDB DynamoDBConfig `yaml:"dynamodb"`
	SQL      SQLConfig      `yaml:"sql"`
	Uploads  UploadsConfig  `yaml:"uploads"`
	Payments PaymentsConfig `yaml:"payments"`
	NATS     NATSConfig     `yaml:"nats"`
	Redis    RedisConfig    `yaml:"redis"`
	OTel     OTelConfig     `yaml:"otel"`
	CORS     CORSConfig     `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            string        `yaml:"port"             env:"PORT"                    env-default:"8080"`
	GinMode         string        `yaml:"gin_mode"         env:"GIN_MODE"                env-default:"debug"`
	MaxUploadBytes  int64         `yaml:"max_upload_bytes" env:"MAX_UPLOAD_BYTES"        env-default:"20971520"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

type LogConfig struct {
	Mode string `yaml:"mode" env:"LOG_MODE" env-default:"development"`
}

// StoreConfig selects the service record backend.
type StoreConfig struct {
	Driver      string `yaml:"driver"       env:"STORE_DRIVER"       env-default:"dynamodb"`
	MaxAttempts int    `yaml:"max_attempts" env:"STORE_MAX_ATTEMPTS" env-default:"5"`
}

// DynamoDBConfig is local-friendly: DynamoDB Local ignores the static credentials
// but the SDK still requires them.
type DynamoDBConfig struct {
	Region          string `yaml:"region"            env:"AWS_REGION"            env-default:"us-east-1"`
	AccessKeyID     string `yaml:"access_key_id"     env:"AWS_ACCESS_KEY_ID"     env-default:"local"`
	SecretAccessKey string `yaml:"secret_access_key" env:"AWS_SECRET_ACCESS_KEY" env-default:"local"`
	Endpoint        string `yaml:"endpoint"          env:"DYNAMODB_ENDPOINT"`
	ServicesTable   string `yaml:"services_table"    env:"SERVICES_TABLE"        env-default:"services"`
	PaymentsTable   string `yaml:"payments_table"    env:"PAYMENTS_TABLE"        env-default:"payments"`
}

type SQLConfig struct {
	DSN         string `yaml:"dsn"          env:"DATABASE_DSN"`
	AutoMigrate bool   `yaml:"auto_migrate" env:"DATABASE_AUTO_MIGRATE" env-default:"true"`
}

// UploadsConfig controls where document PDFs go. Local files are served back
// under PublicPath.
type UploadsConfig struct {
	Driver          string `yaml:"driver"           env:"UPLOAD_DRIVER"          env-default:"local"`
	Dir             string `yaml:"dir"              env:"UPLOAD_DIR"             env-default:"./uploads"`
	PublicPath      string `yaml:"public_path"      env:"UPLOAD_PUBLIC_PATH"     env-default:"/uploads"`
	GCSBucket       string `yaml:"gcs_bucket"       env:"GCS_BUCKET"`
	GCSCredentials  string `yaml:"gcs_credentials"  env:"GCS_CREDENTIALS_FILE"`
	GCSPublicBase   string `yaml:"gcs_public_base"  env:"GCS_PUBLIC_BASE_URL"    env-default:"https://storage.googleapis.com"`
	GCSObjectPrefix string `yaml:"gcs_object_prefix" env:"GCS_OBJECT_PREFIX"     env-default:"services"`
}

type PaymentsConfig struct {
	AccessToken     string `yaml:"access_token"       env:"MERCADOPAGO_ACCESS_TOKEN"`
	Mock            bool   `yaml:"mock"               env:"PAYMENT_GATEWAY_MOCK"           env-default:"false"`
	TestPayerEmail  string `yaml:"test_payer_email"   env:"MERCADOPAGO_TEST_PAYER_EMAIL"`
	TestPayerUserID string `yaml:"test_payer_user_id" env:"MERCADOPAGO_TEST_PAYER_USER_ID"`
}

// NATSConfig enables history event fan-out when URL is set.
type NATSConfig struct {
	URL           string `yaml:"url"            env:"NATS_URL"`
	SubjectPrefix string `yaml:"subject_prefix" env:"NATS_SUBJECT_PREFIX" env-default:"services"`
}

// RedisConfig enables the quotes listing cache when Addr is set.
type RedisConfig struct {
	Addr      string        `yaml:"addr"       env:"REDIS_ADDR"`
	Password  string        `yaml:"password"   env:"REDIS_PASSWORD"`
	DB        int           `yaml:"db"         env:"REDIS_DB"         env-default:"0"`
	QuotesTTL time.Duration `yaml:"quotes_ttl" env:"REDIS_QUOTES_TTL" env-default:"60s"`
}

type OTelConfig struct {
	Enabled     bool    `yaml:"enabled"      env:"OTEL_ENABLED"                env-default:"false"`
	ServiceName string  `yaml:"service_name" env:"OTEL_SERVICE_NAME"           env-default:"service-documents"`
	Environment string  `yaml:"environment"  env:"APP_ENV"                     env-default:"local"`
	Version     string  `yaml:"version"      env:"APP_VERSION"                 env-default:"dev"`
	Endpoint    string  `yaml:"endpoint"     env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	Headers     string  `yaml:"headers"      env:"OTEL_EXPORTER_OTLP_HEADERS"`
	Insecure    bool    `yaml:"insecure"     env:"OTEL_EXPORTER_OTLP_INSECURE" env-default:"false"`
	SampleRatio float64 `yaml:"sample_ratio" env:"OTEL_SAMPLER_RATIO"          env-default:"0.1"`
}

type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
}
