package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Configuration
		wantErr bool
	}{
		{name: "info rfc3339", cfg: Configuration{Level: INFO_LEVEL, TimeFormat: time.RFC3339Nano}},
		{name: "debug kitchen", cfg: Configuration{Level: DEBUG_LEVEL, TimeFormat: time.Kitchen}},
		{name: "level below debug", cfg: Configuration{Level: -2, TimeFormat: time.RFC3339}, wantErr: true},
		{name: "fatal is not configurable", cfg: Configuration{Level: FATAL_LEVEL, TimeFormat: time.RFC3339}, wantErr: true},
		{name: "empty format", cfg: Configuration{Level: INFO_LEVEL}, wantErr: true},
		{name: "not a layout", cfg: Configuration{Level: INFO_LEVEL, TimeFormat: "timestamp"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
