package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestLevelFromEnv(t *testing.T) {
	t.Parallel()

	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" DEBUG ": slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"Warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := LevelFromEnv(in); got != want {
			t.Fatalf("LevelFromEnv(%q) = %v; want %v", in, got, want)
		}
	}
}

func TestNew_WritesJSONWithServiceAndFiltersLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New(&buf, "claimd", slog.LevelInfo)

	log.Debug("hidden")
	log.Info("claim settled", "wallet", "w1")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("expected exactly one JSON record, got %q: %v", buf.String(), err)
	}
	if rec["service"] != "claimd" {
		t.Fatalf("service=%v; want claimd", rec["service"])
	}
	if rec["msg"] != "claim settled" || rec["wallet"] != "w1" {
		t.Fatalf("unexpected record: %v", rec)
	}
}
