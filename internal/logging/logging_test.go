package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)
	logger.Debug("hidden")
	logger.Info("shown", "release", "20240830180015_1.2.3")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug record written without verbose: %q", out)
	}
	if !strings.Contains(out, "msg=shown") || !strings.Contains(out, "release=20240830180015_1.2.3") {
		t.Fatalf("unexpected output: %q", out)
	}

	buf.Reset()
	New(&buf, true).Debug("visible")
	if !strings.Contains(buf.String(), "msg=visible") {
		t.Fatalf("expected debug record with verbose, got %q", buf.String())
	}
}

func TestOrDiscard(t *testing.T) {
	if OrDiscard(nil) == nil {
		t.Fatalf("expected discard logger")
	}
	OrDiscard(nil).Info("dropped")

	logger := New(&bytes.Buffer{}, false)
	if OrDiscard(logger) != logger {
		t.Fatalf("expected the given logger")
	}
}
