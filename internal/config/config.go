package config

import "time"

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	ProviderImgur = "imgur"
	ProviderS3    = "s3"
)

// Config holds runtime settings for the ImgKeeper CLI.
//
// Fields:
//   - StorageDriver / StorageDSN: where the upload history is persisted.
//   - Provider: which hosting backend receives uploads.
//   - ImgurBaseURL: root of the Imgur API.
//   - RequestTimeout: per-request timeout for remote calls.
//   - S3*: settings for the S3-compatible provider.
//   - LogLevel: minimal level written to stderr.
type Config struct {
	StorageDriver   string
	StorageDSN      string
	Provider        string
	ImgurBaseURL    string
	RequestTimeout  time.Duration
	S3Bucket        string
	S3Region        string
	S3BaseEndpoint  string
	S3AccessKey     string
	S3SecretKey     string
	S3PublicBaseURL string
	S3KeyPrefix     string
	LogLevel        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StorageDriver = DriverSQLite
	c.StorageDSN = "imgkeeper.db"
	c.Provider = ProviderImgur
	c.ImgurBaseURL = "https://api.imgur.com"
	c.RequestTimeout = 30 * time.Second
	c.S3Region = "us-east-1"
	c.S3KeyPrefix = "images"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
