package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "warn")
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("hidden")
	logger.Warn("shown", "score", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info should be filtered at warn level")
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, Prefix) || !strings.Contains(out, "score=3") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, "loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "ballgame.log")

	logger, closeFn, err := OpenFile(path, "info")
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("state changed", "to", "Game")
	if err := closeFn(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "state changed") {
		t.Errorf("log file = %q", data)
	}
}

func TestOpenFileEmptyPathDiscards(t *testing.T) {
	logger, closeFn, err := OpenFile("", "info")
	if err != nil || logger == nil {
		t.Fatalf("logger=%v err=%v", logger, err)
	}
	if err := closeFn(); err != nil {
		t.Fatal(err)
	}
}
