package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// envConfig mirrors Config with environment variable names. It is pre-filled
// from the current Config so that unset variables leave values untouched.
type envConfig struct {
	StorageDriver   string        `env:"IMGKEEPER_STORAGE_DRIVER"`
	StorageDSN      string        `env:"IMGKEEPER_STORAGE_DSN"`
	Provider        string        `env:"IMGKEEPER_PROVIDER"`
	ImgurBaseURL    string        `env:"IMGKEEPER_IMGUR_BASE_URL"`
	RequestTimeout  time.Duration `env:"IMGKEEPER_REQUEST_TIMEOUT"`
	S3Bucket        string        `env:"IMGKEEPER_S3_BUCKET"`
	S3Region        string        `env:"IMGKEEPER_S3_REGION"`
	S3BaseEndpoint  string        `env:"IMGKEEPER_S3_BASE_ENDPOINT"`
	S3AccessKey     string        `env:"IMGKEEPER_S3_ACCESS_KEY"`
	S3SecretKey     string        `env:"IMGKEEPER_S3_SECRET_KEY"`
	S3PublicBaseURL string        `env:"IMGKEEPER_S3_PUBLIC_BASE_URL"`
	S3KeyPrefix     string        `env:"IMGKEEPER_S3_KEY_PREFIX"`
	LogLevel        string        `env:"IMGKEEPER_LOG_LEVEL"`
}

// parseEnv overlays cfg with IMGKEEPER_* environment variables. A value that
// cannot be parsed panics, matching the other configuration stages.
func parseEnv(cfg *Config) {
	ec := envConfig(*cfg)

	if err := cleanenv.ReadEnv(&ec); err != nil {
		panic(err)
	}

	*cfg = Config(ec)
}
