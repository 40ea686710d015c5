package config

import (
	"encoding/json"
	"os"
	"time"

	"authkit/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Timeout is
// expressed in whole seconds.
type jsonConfig struct {
	APIBaseURL     *string `json:"api_base_url"`
	DatabasePath   *string `json:"db_path"`
	KeyFilePath    *string `json:"key_path"`
	RequestTimeout *int    `json:"request_timeout"`
}

// parseJson overlays cfg with values from the JSON file named by -c/-config.
// Absent flags mean no JSON stage. Read or decode errors panic; the caller
// treats a broken explicit config file as fatal misconfiguration.
func parseJson(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.KeyFilePath != nil {
		cfg.KeyFilePath = *jc.KeyFilePath
	}
	if jc.RequestTimeout != nil && *jc.RequestTimeout >= 0 {
		cfg.RequestTimeout = time.Duration(*jc.RequestTimeout) * time.Second
	}
}
