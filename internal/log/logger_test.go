package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestEveryLineCarriesServiceField(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, "info")

	logger.Info().Msg("session opened")

	out := buf.String()
	if !strings.Contains(out, "session opened") {
		t.Fatalf("output %q missing message", out)
	}
	if !strings.Contains(out, serviceName) {
		t.Fatalf("output %q missing service tag", out)
	}
}

func TestLevelFiltersLowerEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, "error")

	logger.Info().Msg("quiet")
	if buf.Len() != 0 {
		t.Fatalf("info line written at error level: %q", buf.String())
	}

	logger.Error().Msg("loud")
	if !strings.Contains(buf.String(), "loud") {
		t.Fatalf("error line missing: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"debug":   zerolog.DebugLevel,
		"info":    zerolog.InfoLevel,
		"WARN":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
