package config

import (
	"flag"
	"os"
	"time"

	"authkit/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the backend API
//	-d string   path to the local state database
//	-k string   path to the device key file
//	-t int      request timeout in seconds (0 = unbounded)
//
// Arguments are pre-filtered with flagx.FilterArgs so flags owned by other
// stages (e.g. -c/-config) do not abort parsing.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-k", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the backend API")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local state database")
	fs.StringVar(&cfg.KeyFilePath, "k", cfg.KeyFilePath, "path to the device key file")
	timeoutSecs := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout in seconds (0 = unbounded)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeoutSecs) * time.Second
}
