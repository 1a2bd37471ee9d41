package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/juanmilkah/commands/internal/assets"
)

func TestLoadDefaultsAndFiles_DefaultsOnly(t *testing.T) {
	cfg, err := LoadDefaultsAndFiles(assets.DefaultConfig, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Catalog.Path != ".commands/linux" {
		t.Fatalf("default path: %s", cfg.Catalog.Path)
	}
	if cfg.Catalog.Header != "AVAILABLE LINUX COMMANDS:" {
		t.Fatalf("default header: %q", cfg.Catalog.Header)
	}
	if cfg.Catalog.Legend != "(*) MEANS THE COMMAND RUN BY ROOT USER" {
		t.Fatalf("default legend: %q", cfg.Catalog.Legend)
	}
	if cfg.Output.Format != FormatPlain || cfg.Output.Color != ColorAuto {
		t.Fatalf("default output: %+v", cfg.Output)
	}
}

func TestLoadDefaultsAndFiles_OverlayInSortedOrder(t *testing.T) {
	dir := t.TempDir()
	f1 := filepath.Join(dir, "a.yaml")
	f2 := filepath.Join(dir, "b.yml")
	os.WriteFile(f1, []byte(`
catalog:
  path: commands/linux
output:
  format: table
`), 0o644)
	os.WriteFile(f2, []byte(`
catalog:
  path: /srv/cheats/linux
`), 0o644)
	cfg, err := LoadDefaultsAndFiles(assets.DefaultConfig, []string{f2, f1})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Catalog.Path != "/srv/cheats/linux" {
		t.Fatalf("later file should win: %s", cfg.Catalog.Path)
	}
	if cfg.Output.Format != FormatTable {
		t.Fatalf("format not overridden: %s", cfg.Output.Format)
	}
	if cfg.Catalog.Header != "AVAILABLE LINUX COMMANDS:" {
		t.Fatalf("header lost from defaults: %q", cfg.Catalog.Header)
	}
	if cfg.Output.Color != ColorAuto {
		t.Fatalf("color lost from defaults: %q", cfg.Output.Color)
	}
}

func TestLoadDefaultsAndFiles_ScalarCatalog(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "user.yaml")
	os.WriteFile(f, []byte("catalog: ~/notes/linux\n"), 0o644)
	cfg, err := LoadDefaultsAndFiles(assets.DefaultConfig, []string{f})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Catalog.Path != "~/notes/linux" {
		t.Fatalf("scalar catalog not parsed: %s", cfg.Catalog.Path)
	}
	if cfg.Catalog.Legend == "" {
		t.Fatalf("legend lost from defaults")
	}
}

func TestLoadDefaultsAndFiles_BadYAMLMentionsFile(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "broken.yaml")
	os.WriteFile(f, []byte("catalog: [unterminated\n"), 0o644)
	_, err := LoadDefaultsAndFiles(assets.DefaultConfig, []string{f})
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if !strings.Contains(err.Error(), "broken.yaml") {
		t.Fatalf("error should mention the file, got: %v", err)
	}
}

func TestLoadDefaultsAndFiles_InvalidCatalogNode(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "list.yaml")
	os.WriteFile(f, []byte("catalog:\n  - a\n  - b\n"), 0o644)
	if _, err := LoadDefaultsAndFiles(assets.DefaultConfig, []string{f}); err == nil {
		t.Fatalf("expected error for sequence catalog node")
	}
}

func TestFindFiles(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "b.yaml"), []byte("{}"), 0o644)
	os.WriteFile(filepath.Join(dir, "a.YML"), []byte("{}"), 0o644)
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644)
	os.Mkdir(filepath.Join(dir, "sub.yaml"), 0o755)
	files, err := FindFiles(dir)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("want 2 files, got %v", files)
	}
	if filepath.Base(files[0]) != "a.YML" || filepath.Base(files[1]) != "b.yaml" {
		t.Fatalf("files not sorted: %v", files)
	}
}

func TestLoad_MissingDirUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Catalog.Path != ".commands/linux" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}
