package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/imgkeeper/internal/flagx"
	"github.com/dmitrijs2005/imgkeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	StorageDriver   string         `json:"storage_driver"`
	StorageDSN      string         `json:"storage_dsn"`
	Provider        string         `json:"provider"`
	ImgurBaseURL    string         `json:"imgur_base_url"`
	RequestTimeout  timex.Duration `json:"request_timeout"`
	S3Bucket        string         `json:"s3_bucket"`
	S3Region        string         `json:"s3_region"`
	S3BaseEndpoint  string         `json:"s3_base_endpoint"`
	S3AccessKey     string         `json:"s3_access_key"`
	S3SecretKey     string         `json:"s3_secret_key"`
	S3PublicBaseURL string         `json:"s3_public_base_url"`
	S3KeyPrefix     string         `json:"s3_key_prefix"`
	LogLevel        string         `json:"log_level"`
}

// parseJson overlays cfg with values from the JSON file named by -c/-config.
// Keys absent from the file keep their current value. Read or decode errors
// panic; the caller is expected to run this once at startup.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFile()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.StorageDriver, jc.StorageDriver)
	setString(&cfg.StorageDSN, jc.StorageDSN)
	setString(&cfg.Provider, jc.Provider)
	setString(&cfg.ImgurBaseURL, jc.ImgurBaseURL)
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	setString(&cfg.S3Bucket, jc.S3Bucket)
	setString(&cfg.S3Region, jc.S3Region)
	setString(&cfg.S3BaseEndpoint, jc.S3BaseEndpoint)
	setString(&cfg.S3AccessKey, jc.S3AccessKey)
	setString(&cfg.S3SecretKey, jc.S3SecretKey)
	setString(&cfg.S3PublicBaseURL, jc.S3PublicBaseURL)
	setString(&cfg.S3KeyPrefix, jc.S3KeyPrefix)
	setString(&cfg.LogLevel, jc.LogLevel)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
