package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestInitLevels(t *testing.T) {
	var buf bytes.Buffer
	Init(Params{Output: &buf})
	defer Init(Params{})

	Debug("hidden", "k", 1)
	Info("shown", "k", 2)
	if strings.Contains(buf.String(), "hidden") {
		t.Fatalf("debug message written at info level: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "shown") || !strings.Contains(buf.String(), "k=2") {
		t.Fatalf("info message missing: %q", buf.String())
	}

	buf.Reset()
	Init(Params{Debug: true, Output: &buf})
	Debug("visible")
	Warn("careful")
	Error("broken")
	out := buf.String()
	for _, want := range []string{"visible", "careful", "broken", "reelviz"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %q", want, out)
		}
	}
}
