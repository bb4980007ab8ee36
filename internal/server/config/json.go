package config

import (
	"encoding/json"
	"os"
	"time"

	"calendard/internal/flagx"
	"calendard/internal/timex"
)

// JsonConfig is the DTO used only for reading JSON configuration files.
// Interval fields use timex.Duration so both "5s" and integer nanoseconds
// parse. Pointer fields distinguish "absent" from zero values so a sparse
// file only overrides what it mentions.
type JsonConfig struct {
	EndpointAddr    *string         `json:"endpoint_addr"`
	DatabaseDSN     *string         `json:"database_dsn"`
	Storage         *string         `json:"storage"`
	CookieSecure    *bool           `json:"cookie_secure"`
	ShutdownTimeout *timex.Duration `json:"shutdown_timeout"`
}

// parseJson overlays values from the JSON file named by the -c/-config flag,
// if any. An unreadable or invalid file panics: a config file that was
// explicitly requested must not be silently ignored.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != nil {
		config.EndpointAddr = *c.EndpointAddr
	}
	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.Storage != nil {
		config.Storage = *c.Storage
	}
	if c.CookieSecure != nil {
		config.CookieSecure = *c.CookieSecure
	}
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = time.Duration(c.ShutdownTimeout.Duration)
	}
}
