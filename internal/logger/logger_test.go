package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter(t *testing.T) {
	tests := []struct {
		name      string
		env       string
		wantJSON  bool
		wantDebug bool
	}{
		{name: "dev", env: "dev", wantJSON: false, wantDebug: true},
		{name: "unknown falls back to dev", env: "qa", wantJSON: false, wantDebug: true},
		{name: "staging", env: "staging", wantJSON: true, wantDebug: true},
		{name: "prod", env: "prod", wantJSON: true, wantDebug: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := newWithWriter(tt.env, &buf)

			assert.Equal(t, tt.wantDebug, log.Enabled(context.Background(), slog.LevelDebug))

			log.Info("hello", slog.Int64("id", 7))
			line := strings.TrimSpace(buf.String())
			require.NotEmpty(t, line)

			var decoded map[string]any
			isJSON := json.Unmarshal([]byte(line), &decoded) == nil
			assert.Equal(t, tt.wantJSON, isJSON)
			assert.Contains(t, line, "hello")
		})
	}
}

func TestNewNoop(t *testing.T) {
	log := NewNoop()
	require.NotNil(t, log)
	log.Info("discarded")
}
