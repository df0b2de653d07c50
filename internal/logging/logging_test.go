package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func useTempLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "panoscope.log")
	Configure(path)
	t.Cleanup(func() {
		Configure("")
		SetTraceEnabled(false)
	})
	return path
}

func TestErrorfWrapsContext(t *testing.T) {
	path := useTempLog(t)
	Errorf("resolve %q", errors.New("boom"), "web-1")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `resolve "web-1": boom`) {
		t.Fatalf("unexpected log contents %q", data)
	}
}

func TestTraceOnlyWhenEnabled(t *testing.T) {
	path := useTempLog(t)
	Trace("ignored", nil)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file while tracing disabled, got %v", err)
	}

	SetTraceEnabled(true)
	Trace("window.create", map[string]interface{}{"id": 1})
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var entry struct {
		Event   string                 `json:"event"`
		Payload map[string]interface{} `json:"payload"`
	}
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("decode trace: %v", err)
	}
	if entry.Event != "window.create" {
		t.Fatalf("expected window.create event, got %q", entry.Event)
	}
	if entry.Payload["id"] != float64(1) {
		t.Fatalf("expected payload id 1, got %v", entry.Payload["id"])
	}
}

func TestConfigureEmptyFallsBackToDefault(t *testing.T) {
	useTempLog(t)
	Configure("   ")
	if Path() != defaultLogFile {
		t.Fatalf("expected default path, got %q", Path())
	}
}
