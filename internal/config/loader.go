package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/juanmilkah/commands/internal/assets"
	"gopkg.in/yaml.v3"
)

// DefaultDir returns the configuration directory, ~/.config/commands on Linux.
func DefaultDir() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		dir = filepath.Join(".", ".config")
	}
	return filepath.Join(dir, "commands")
}

// FindFiles lists the YAML files directly inside dir. A missing directory
// yields no files and no error.
func FindFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	return sortedYAML(files), nil
}

// Load merges the embedded defaults with every YAML file in dir.
func Load(dir string) (Config, error) {
	files, err := FindFiles(dir)
	if err != nil {
		return Config{}, err
	}
	return LoadDefaultsAndFiles(assets.DefaultConfig, files)
}

// LoadDefaultsAndFiles parses defaultsYAML and overlays files in sorted order.
func LoadDefaultsAndFiles(defaultsYAML []byte, files []string) (Config, error) {
	var base Config
	if len(defaultsYAML) > 0 {
		if err := yaml.Unmarshal(defaultsYAML, &base); err != nil {
			return Config{}, fmt.Errorf("defaults: %w", err)
		}
	}
	merged := base
	for _, f := range sortedYAML(files) {
		b, err := os.ReadFile(f)
		if err != nil {
			return Config{}, err
		}
		var part Config
		if err := yaml.Unmarshal(b, &part); err != nil {
			return Config{}, fmt.Errorf("%s: %w", f, err)
		}
		merged = mergeConfig(merged, part)
	}
	return merged, nil
}

func sortedYAML(files []string) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		lf := strings.ToLower(f)
		if strings.HasSuffix(lf, ".yaml") || strings.HasSuffix(lf, ".yml") {
			out = append(out, f)
		}
	}
	sort.Strings(out)
	return out
}

func mergeConfig(base, overlay Config) Config {
	out := base
	out.Catalog.Path = pick(out.Catalog.Path, overlay.Catalog.Path)
	out.Catalog.Header = pick(out.Catalog.Header, overlay.Catalog.Header)
	out.Catalog.Legend = pick(out.Catalog.Legend, overlay.Catalog.Legend)
	out.Output.Format = pick(out.Output.Format, overlay.Output.Format)
	out.Output.Color = pick(out.Output.Color, overlay.Output.Color)
	out.Log.File = pick(out.Log.File, overlay.Log.File)
	return out
}

func pick(a, b string) string {
	if b != "" {
		return b
	}
	return a
}
