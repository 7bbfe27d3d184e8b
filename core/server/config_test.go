package server_test

import (
	"testing"
	"time"

	"roll-checker/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig(t *testing.T) {
	tests := []struct {
		name     string
		cfg      server.Config
		body     int
		shutdown time.Duration
	}{
		{"Defaults", server.Config{}, 4 * 1024 * 1024, 10 * time.Second},
		{"Custom", server.Config{BodyLimitMB: 32, ShutdownTimeoutSeconds: 3}, 32 * 1024 * 1024, 3 * time.Second},
		{"Negative", server.Config{BodyLimitMB: -1, ShutdownTimeoutSeconds: -5}, 4 * 1024 * 1024, 10 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.body, tt.cfg.BodyLimit())
			assert.Equal(t, tt.shutdown, tt.cfg.ShutdownTimeout())
		})
	}

	assert.Equal(t, ":9090", server.Config{Port: "9090"}.Address())
}
