package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/imgkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-s string   storage driver
//	-d string   storage DSN
//	-p string   upload provider
//	-l string   log level
//	-t int      request timeout (seconds), applied only when given
//
// Only the flags above are parsed; everything else in os.Args is ignored.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-d", "-p", "-l", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StorageDriver, "s", cfg.StorageDriver, "storage driver (sqlite or postgres)")
	fs.StringVar(&cfg.StorageDSN, "d", cfg.StorageDSN, "storage DSN")
	fs.StringVar(&cfg.Provider, "p", cfg.Provider, "upload provider (imgur or s3)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
