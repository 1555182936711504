package logging

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/rangeshot/rangeshot/internal/config"
)

func TestNewLevels(t *testing.T) {
	log, err := New(config.LoggingConfig{Level: "debug", Format: "console"})
	if err != nil {
		t.Fatal(err)
	}
	if !log.Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug not enabled")
	}

	log, err = New(config.LoggingConfig{Level: "bogus", Format: "json"})
	if err != nil {
		t.Fatal(err)
	}
	if log.Core().Enabled(zapcore.DebugLevel) || !log.Core().Enabled(zapcore.InfoLevel) {
		t.Error("unknown level should fall back to info")
	}
}

func TestDisplayWidth(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"scores", 6},
		{"排行榜", 6},
		{"ｓｃｏｒｅ", 10},
		{"top 排行", 8},
	}
	for _, c := range cases {
		if got := DisplayWidth(c.in); got != c.want {
			t.Errorf("DisplayWidth(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestStatPadding(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)
	c.Stat("targets", 20)
	c.Stat("目標", 20)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d", len(lines))
	}
	for _, l := range lines {
		if got := strings.Count(l, "·"); got < 3 {
			t.Errorf("line %q has %d dots", l, got)
		}
	}
	// Same display width, same number of dots.
	if strings.Count(lines[0], "·")-strings.Count(lines[1], "·") != DisplayWidth("目標")-DisplayWidth("targets") {
		t.Errorf("padding does not account for wide runes:\n%s", buf.String())
	}
}
