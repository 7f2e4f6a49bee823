package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "aidfinder.log")

	logger, err := New(path, "info")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("favorites loaded")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `"msg":"favorites loaded"`) {
		t.Fatalf("log = %q, want info entry", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("log = %q, debug entry should be filtered", out)
	}
	if !strings.Contains(out, `"logger":"aidfinder"`) {
		t.Fatalf("log = %q, want named logger", out)
	}
}

func TestNew_RejectsBadInput(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "x.log"), "loud"); err == nil {
		t.Fatal("New with unknown level should fail")
	}
	if _, err := New("", "info"); err == nil {
		t.Fatal("New with empty path should fail")
	}
}
