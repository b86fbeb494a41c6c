package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// payment provider, push delivery and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"cordely" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Stripe contains the payment provider configuration
	Stripe struct {
		// APIKey is the secret key used to authenticate against the provider.
		// Billing endpoints report themselves as misconfigured when empty.
		APIKey string `env:"STRIPE_API_KEY" yaml:"apiKey"`
		// PriceID is the subscription price offered during checkout
		PriceID string `env:"STRIPE_PRICE_ID" yaml:"priceId"`
		// AppBaseURL is the public base URL checkout redirects return to
		AppBaseURL string `env:"STRIPE_APP_BASE_URL" yaml:"appBaseUrl"`
	} `yaml:"stripe"`

	// OpenAI contains the product description generator configuration
	OpenAI struct {
		// APIKey authenticates against the OpenAI API
		APIKey string `env:"OPENAI_API_KEY" yaml:"apiKey"`
		// Model is the chat model descriptions are generated with
		Model string `env:"OPENAI_MODEL" env-default:"gpt-4o-mini" yaml:"model"`
	} `yaml:"openai"`

	// Push contains the push notification delivery configuration
	Push struct {
		// Endpoint is the FCM send URL
		Endpoint string `env:"PUSH_ENDPOINT" env-default:"https://fcm.googleapis.com/fcm/send" yaml:"endpoint"`
		// ServerKey authorizes push requests against the project
		ServerKey string `env:"PUSH_SERVER_KEY" yaml:"serverKey"`
		// ClientBaseURL is the storefront base URL deep links are built against
		ClientBaseURL string `env:"PUSH_CLIENT_BASE_URL" yaml:"clientBaseUrl"`
	} `yaml:"push"`

	// Orders contains order listing and completion behavior configuration
	Orders struct {
		// PageSize is the default number of orders returned per listing page
		PageSize uint `env:"ORDERS_PAGE_SIZE" env-default:"20" yaml:"pageSize"`
		// PushMaxAttempts caps retries of the order-completed push job
		PushMaxAttempts int `env:"ORDERS_PUSH_MAX_ATTEMPTS" env-default:"5" yaml:"pushMaxAttempts"`
	} `yaml:"orders"`

	// JWT contains the owner-console token verification configuration
	JWT struct {
		// PublicKey is the PEM-encoded RSA public key used to validate tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey is the PEM-encoded RSA private key used by the token
		// generation helper command; the server itself never needs it
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
