package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLevelFallsBackToWarn(t *testing.T) {
	cases := map[string]zapcore.Level{
		"":        zapcore.WarnLevel,
		"bogus":   zapcore.WarnLevel,
		"DEBUG":   zapcore.DebugLevel,
		" error ": zapcore.ErrorLevel,
	}
	for raw, want := range cases {
		if got := Level(raw).Level(); got != want {
			t.Errorf("Level(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New("info", &buf)

	logger.Debug("hidden")
	logger.Info("page enhanced", zap.Int("carousels", 2))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if entry["message"] != "page enhanced" || entry["severity"] != "INFO" {
		t.Fatalf("unexpected entry %v", entry)
	}
	if entry["carousels"] != float64(2) {
		t.Fatalf("missing field in %v", entry)
	}
}

func TestContextRoundTrip(t *testing.T) {
	logger := zap.NewExample()
	ctx := WithLogger(context.Background(), logger)
	if FromContext(ctx) != logger {
		t.Fatalf("expected stored logger")
	}
	if FromContext(context.Background()) == nil {
		t.Fatalf("expected no-op logger")
	}
}
