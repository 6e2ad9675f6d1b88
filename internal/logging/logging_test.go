package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		level   string
		format  string
		want    zapcore.Level
		wantErr bool
	}{
		{"info", "json", zapcore.InfoLevel, false},
		{"debug", "console", zapcore.DebugLevel, false},
		{"WARN", "", zapcore.WarnLevel, false},
		{"error", "JSON", zapcore.ErrorLevel, false},
		{"verbose", "json", 0, true},
		{"info", "xml", 0, true},
	}

	for _, tt := range tests {
		logger, err := New(tt.level, tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("New(%q, %q) error = %v, wantErr %v", tt.level, tt.format, err, tt.wantErr)
			continue
		}
		if err != nil {
			continue
		}
		if !logger.Core().Enabled(tt.want) {
			t.Errorf("New(%q, %q): level %v not enabled", tt.level, tt.format, tt.want)
		}
		if tt.want > zapcore.DebugLevel && logger.Core().Enabled(tt.want-1) {
			t.Errorf("New(%q, %q): level below %v should be disabled", tt.level, tt.format, tt.want)
		}
	}
}
