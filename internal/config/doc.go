// Package config loads runtime configuration for the ImgKeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables prefixed with IMGKEEPER_ (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-s string   storage driver: sqlite or postgres
//	-d string   storage DSN (SQLite file path or PostgreSQL URL)
//	-p string   upload provider: imgur or s3
//	-l string   log level: debug, info, warn, error
//	-t int      request timeout (seconds)
//
// # JSON schema
//
// Durations use timex.Duration, so values can be strings like "30s" or
// integer nanoseconds:
//
//	{
//	  "storage_driver": "sqlite",
//	  "storage_dsn": "imgkeeper.db",
//	  "provider": "imgur",
//	  "imgur_base_url": "https://api.imgur.com",
//	  "request_timeout": "30s",
//	  "s3_bucket": "uploads",
//	  "s3_region": "us-east-1",
//	  "s3_base_endpoint": "http://127.0.0.1:9000",
//	  "s3_access_key": "minioadmin",
//	  "s3_secret_key": "minioadmin",
//	  "s3_public_base_url": "http://127.0.0.1:9000/uploads",
//	  "s3_key_prefix": "images",
//	  "log_level": "info"
//	}
//
// The Imgur client id is not part of the configuration; it is a secret kept in
// the local database and set from the CLI.
package config
