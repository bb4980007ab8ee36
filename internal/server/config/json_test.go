package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJsonConfig_SparseFileOnlyOverridesMentionedFields(t *testing.T) {
	raw := []byte(`{"endpoint_addr": ":3000", "shutdown_timeout": "30s"}`)

	c := &JsonConfig{}
	require.NoError(t, json.Unmarshal(raw, c))

	var cfg Config
	cfg.LoadDefaults()

	if c.EndpointAddr != nil {
		cfg.EndpointAddr = *c.EndpointAddr
	}
	if c.Storage != nil {
		cfg.Storage = *c.Storage
	}
	if c.ShutdownTimeout != nil {
		cfg.ShutdownTimeout = c.ShutdownTimeout.Duration
	}

	assert.Equal(t, ":3000", cfg.EndpointAddr)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, StoragePostgres, cfg.Storage, "unmentioned field keeps its default")
}

func TestJsonConfig_RejectsInvalidDuration(t *testing.T) {
	raw := []byte(`{"shutdown_timeout": "soonish"}`)

	c := &JsonConfig{}
	assert.Error(t, json.Unmarshal(raw, c))
}
