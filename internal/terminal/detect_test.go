package terminal

import (
	"bytes"
	"os"
	"testing"
)

func TestIsTerminal_NonFileStreams(t *testing.T) {
	var buf bytes.Buffer
	if IsTerminal(&buf) {
		t.Fatal("bytes.Buffer reported as terminal")
	}
	if IsTerminal(nil) {
		t.Fatal("nil reported as terminal")
	}
	var f *os.File
	if IsTerminal(f) {
		t.Fatal("nil *os.File reported as terminal")
	}
}

func TestIsTerminal_RegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "stream")
	if err != nil {
		t.Fatalf("create temp: %v", err)
	}
	defer func() { _ = f.Close() }()
	if IsTerminal(f) {
		t.Fatal("regular file reported as terminal")
	}
	if StreamsInteractive(f, f) {
		t.Fatal("regular files reported as interactive")
	}
}
