// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestInit_LevelsAndFormat(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{"debug", "debug", zerolog.DebugLevel},
		{"info", "info", zerolog.InfoLevel},
		{"warn alias", "warning", zerolog.WarnLevel},
		{"error", "error", zerolog.ErrorLevel},
		{"unknown defaults to info", "verbose", zerolog.InfoLevel},
		{"empty defaults to info", "", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Init(Config{Level: tt.level, Output: &buf})
			if got := zerolog.GlobalLevel(); got != tt.want {
				t.Errorf("global level = %v, want %v", got, tt.want)
			}
		})
	}

	// Restore defaults for other tests.
	Init(DefaultConfig())
}

func TestLogger_WritesStructuredJSON(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(NewTestLogger(&buf))
	defer Init(DefaultConfig())

	Info().Str("component", "share").Msg("store ready")

	out := buf.String()
	if !strings.Contains(out, `"component":"share"`) {
		t.Errorf("missing structured field in output: %s", out)
	}
	if !strings.Contains(out, `"message":"store ready"`) {
		t.Errorf("missing message in output: %s", out)
	}
}

func TestSlogHandler_BridgesToZerolog(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(NewTestLogger(&buf))
	defer Init(DefaultConfig())

	slogger := NewSlogLogger()
	slogger.Info("service started", slog.String("service", "http-server"), slog.Int("port", 4326))

	out := buf.String()
	if !strings.Contains(out, `"service":"http-server"`) {
		t.Errorf("missing slog string attr: %s", out)
	}
	if !strings.Contains(out, `"port":4326`) {
		t.Errorf("missing slog int attr: %s", out)
	}
}

func TestSlogHandler_GroupsFlattenToDottedKeys(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(NewTestLogger(&buf))
	defer Init(DefaultConfig())

	slogger := NewSlogLogger().WithGroup("supervisor")
	slogger.Warn("service failed", slog.String("name", "storage-layer"))

	if out := buf.String(); !strings.Contains(out, `"supervisor.name":"storage-layer"`) {
		t.Errorf("group not flattened into key: %s", out)
	}
}
