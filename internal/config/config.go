package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// RewriteRule configures a single host rewrite. Requests whose host equals
// MatchHostSuffix or ends with "." + MatchHostSuffix are rewritten to
// ReplacementHost.
type RewriteRule struct {
	// MatchHostSuffix is the host suffix to match, e.g. "twitter.com".
	MatchHostSuffix string `yaml:"matchHostSuffix"`
	// ReplacementHost is the mirror host substituted in, e.g. "nitter.net".
	ReplacementHost string `yaml:"replacementHost"`
}

// Config is the root configuration tree: runtime profile, HTTP server,
// database connection, the Mattermost integration, feed sweeping and
// graceful shutdown behavior.
type Config struct {
	// Environment selects the runtime profile, e.g. "development" or "production"
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// Revision identifies the build served on the status pages. It is usually
	// injected by the deploy pipeline.
	Revision string `env:"REVISION" env-default:"dev" yaml:"revision"`

	// HTTP holds the listener and timeout settings of the API server
	HTTP struct {
		// Addr is the address the server listens on, e.g. ":8080"
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout bounds reading an entire request including its body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout bounds reading the request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout bounds writing a response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout bounds waiting for the next request on a kept-alive connection
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout caps handling of a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes caps the bytes read while parsing request headers
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath is where Prometheus metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Database holds the PostgreSQL connection settings
	Database struct {
		// Username authenticates the connection
		Username string `env:"DATABASE_USERNAME" env-default:"mirrorbot" yaml:"username"`
		// Password authenticates the connection
		Password string `env:"DATABASE_PASSWORD" env-default:"mirrorbot" yaml:"password"`
		// Host is the server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode selects the SSL mode, e.g. "disable" or "require"
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"mirrorbot" yaml:"name"`
		// MaxOpenConnections caps the number of open connections
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections sets how many idle connections are kept around
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime bounds how long a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime bounds how long a connection may sit idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Hook configures the inbound Mattermost slash-command endpoint
	Hook struct {
		// Token is the shared secret Mattermost sends in the Authorization header
		Token string `env:"HOOK_TOKEN" yaml:"token"`
	} `yaml:"hook"`

	// Webhook configures the outgoing Mattermost incoming-webhook client
	Webhook struct {
		// URL is the full incoming-webhook endpoint, e.g. https://mm.example.com/hooks/<id>
		URL string `env:"WEBHOOK_URL" yaml:"url"`
		// Timeout bounds a single webhook POST
		Timeout time.Duration `env:"WEBHOOK_TIMEOUT" env-default:"10s" yaml:"timeout"`
		// RatePerSecond caps how many messages per second may be posted
		RatePerSecond float64 `env:"WEBHOOK_RATE_PER_SECOND" env-default:"1" yaml:"ratePerSecond"`
		// Burst is the number of messages that may be posted back to back
		Burst int `env:"WEBHOOK_BURST" env-default:"5" yaml:"burst"`
	} `yaml:"webhook"`

	// Feed configures the upstream alert feed
	Feed struct {
		// URL is the Atom feed polled for incidents
		URL string `env:"FEED_URL" env-default:"https://www.qfes.qld.gov.au/data/alerts/bushfireAlert.xml" yaml:"url"` //nolint: lll
		// Timeout bounds a single feed fetch
		Timeout time.Duration `env:"FEED_TIMEOUT" env-default:"30s" yaml:"timeout"`
	} `yaml:"feed"`

	// Alerts configures which feed entries are considered nearby and how
	// notifications are retried
	Alerts struct {
		// CentreLat is the latitude of the point of interest
		CentreLat float64 `env:"ALERTS_CENTRE_LAT" env-default:"-27.46844" yaml:"centreLat"`
		// CentreLong is the longitude of the point of interest
		CentreLong float64 `env:"ALERTS_CENTRE_LONG" env-default:"153.02334" yaml:"centreLong"`
		// RadiusKm is the alert box edge distance in kilometres
		RadiusKm float64 `env:"ALERTS_RADIUS_KM" env-default:"30" yaml:"radiusKm"`
		// SweepInterval is how often the feed is polled
		SweepInterval time.Duration `env:"ALERTS_SWEEP_INTERVAL" env-default:"5m" yaml:"sweepInterval"`
		// MaxNotifyAttempts is how many times a notification is attempted before
		// the incident is marked failed
		MaxNotifyAttempts int `env:"ALERTS_MAX_NOTIFY_ATTEMPTS" env-default:"5" yaml:"maxNotifyAttempts"`
	} `yaml:"alerts"`

	// Rewrite lists extra host rewrite rules applied on top of the built-in
	// ones. Only settable through the YAML config file.
	Rewrite struct {
		// Rules are applied in order; the first matching rule wins
		Rules []RewriteRule `yaml:"rules"`
	} `yaml:"rewrite"`

	// JWT holds the RS256 key material for the operator API
	JWT struct {
		// PublicKey is the PEM-encoded RSA public key used to verify tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey is the PEM-encoded RSA private key used by the jwt subcommand
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// GracefulShutdownTimeout bounds how long shutdown waits for in-flight work
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load reads the yaml config file at configPath, applies environment variable
// overrides and returns the result.
func Load(configPath string) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config %q: %w", configPath, err)
	}

	return &cfg, nil
}
