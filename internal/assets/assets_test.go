package assets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteDefaultConfigIfMissing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "commands")

	// First call creates the directory and config.yaml with embedded contents
	wrote, err := WriteDefaultConfigIfMissing(dir)
	if err != nil {
		t.Fatalf("WriteDefaultConfigIfMissing: %v", err)
	}
	if !wrote {
		t.Fatalf("expected file to be written")
	}
	p := filepath.Join(dir, ConfigFileName)
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != string(DefaultConfig) {
		t.Fatalf("unexpected contents written")
	}

	// If file exists, it must not overwrite
	if err := os.WriteFile(p, []byte("modified"), 0o644); err != nil {
		t.Fatalf("pre-write: %v", err)
	}
	wrote, err = WriteDefaultConfigIfMissing(dir)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if wrote {
		t.Fatalf("second call reported a write")
	}
	b2, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read2: %v", err)
	}
	if string(b2) != "modified" {
		t.Fatalf("existing file was overwritten")
	}
}

func TestWriteDefaultConfigIfMissing_EmptyDir(t *testing.T) {
	if _, err := WriteDefaultConfigIfMissing(""); err == nil {
		t.Fatalf("expected error for empty dir")
	}
}

func TestEmbedded(t *testing.T) {
	if len(ConfigSchema) == 0 || len(DefaultConfig) == 0 {
		t.Fatalf("embedded assets missing")
	}
	if !strings.Contains(Banner, "██") {
		t.Fatalf("banner not embedded")
	}
}
