package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/subscription-manager/internal/config"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		env      string
		debug    bool
		wantJSON bool
	}{
		{env: config.EnvLocal, debug: true},
		{env: config.EnvDev, debug: true, wantJSON: true},
		{env: config.EnvProd, debug: false, wantJSON: true},
		{env: "unknown", debug: true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			h := setupLogger(tt.env).Handler()

			assert.Equal(t, tt.debug, h.Enabled(context.Background(), slog.LevelDebug))
			_, isJSON := h.(*slog.JSONHandler)
			assert.Equal(t, tt.wantJSON, isJSON)
		})
	}
}
