// Which Katha - Movie Recommendation Front End
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/whichkatha

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// captureGlobal swaps the global logger for one writing to a buffer and
// restores the previous logger and level when the test ends.
func captureGlobal(t *testing.T) *bytes.Buffer {
	t.Helper()
	prev := Logger()
	prevLevel := zerolog.GlobalLevel()
	var buf bytes.Buffer
	SetLogger(NewTestLogger(&buf))
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() {
		SetLogger(prev)
		zerolog.SetGlobalLevel(prevLevel)
	})
	return &buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	line := strings.TrimSpace(buf.String())
	if line == "" {
		t.Fatal("no log output")
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(line), &m); err != nil {
		t.Fatalf("log line is not JSON: %v: %q", err, line)
	}
	return m
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warning", zerolog.WarnLevel},
		{" warn ", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInitJSONOutput(t *testing.T) {
	prev := Logger()
	prevLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		SetLogger(prev)
		zerolog.SetGlobalLevel(prevLevel)
	})

	var buf bytes.Buffer
	Init(Config{Level: "warn", Format: "json", Output: &buf})

	Info().Msg("dropped")
	if buf.Len() != 0 {
		t.Fatalf("info event emitted at warn level: %q", buf.String())
	}

	Warn().Str("list", "katha_history").Msg("kept")
	m := decodeLine(t, &buf)
	if m["message"] != "kept" || m["level"] != "warn" {
		t.Errorf("unexpected event: %v", m)
	}
	if m["service"] != "whichkatha" {
		t.Errorf("service field = %v", m["service"])
	}
	if _, ok := m["time"]; !ok {
		t.Error("missing time field")
	}
}

func TestInitConsoleOutput(t *testing.T) {
	prev := Logger()
	prevLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		SetLogger(prev)
		zerolog.SetGlobalLevel(prevLevel)
	})

	var buf bytes.Buffer
	Init(Config{Level: "info", Format: "console", Output: &buf})
	Info().Msg("hello console")

	out := buf.String()
	if !strings.Contains(out, "hello console") {
		t.Fatalf("console output missing message: %q", out)
	}
	if strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Errorf("console output looks like JSON: %q", out)
	}
}

func TestCtxAddsIdentifiers(t *testing.T) {
	buf := captureGlobal(t)

	ctx := ContextWithRequestID(context.Background(), "req-1")
	ctx = ContextWithProfileID(ctx, "profile-9")
	Ctx(ctx).Info().Msg("with ids")

	m := decodeLine(t, buf)
	if m["request_id"] != "req-1" {
		t.Errorf("request_id = %v", m["request_id"])
	}
	if m["profile"] != "profile-9" {
		t.Errorf("profile = %v", m["profile"])
	}
}

func TestCtxWithoutIdentifiers(t *testing.T) {
	buf := captureGlobal(t)

	Ctx(context.Background()).Info().Msg("bare")

	m := decodeLine(t, buf)
	if _, ok := m["request_id"]; ok {
		t.Error("unexpected request_id")
	}
	if _, ok := m["profile"]; ok {
		t.Error("unexpected profile")
	}
}

func TestWithComponent(t *testing.T) {
	buf := captureGlobal(t)

	l := WithComponent("store")
	l.Info().Msg("opened")

	m := decodeLine(t, buf)
	if m["component"] != "store" {
		t.Errorf("component = %v", m["component"])
	}
}

func TestContextAccessorsEmpty(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if RequestIDFromContext(ctx) != "" || ProfileIDFromContext(ctx) != "" {
		t.Error("expected empty identifiers on a bare context")
	}
	if NewRequestID() == NewRequestID() {
		t.Error("request ids should be unique")
	}
}

func TestSanitizeValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Inception", "Inception"},
		{"newline", "a\nb", `a\x0ab`},
		{"delete", "x\x7fy", `x\x7fy`},
		{"unicode", "Kathā 🎬", "Kathā 🎬"},
		{"truncated", strings.Repeat("a", maxLoggedValue+5), strings.Repeat("a", maxLoggedValue) + "..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := SanitizeValue(tt.in); got != tt.want {
				t.Errorf("SanitizeValue(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
