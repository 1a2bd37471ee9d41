package catalog

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// DefaultSubpath is where the catalog lives under the home directory.
const DefaultSubpath = ".commands/linux"

var errInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// HomeDir returns $HOME, or "." when it is unset or empty.
func HomeDir() string {
	if h, ok := os.LookupEnv("HOME"); ok && h != "" {
		return h
	}
	return "."
}

// ResolvePath joins subpath onto home. Absolute subpaths are returned as is
// and a leading "~/" is treated as home.
func ResolvePath(home, subpath string) string {
	if subpath == "" {
		subpath = DefaultSubpath
	}
	if filepath.IsAbs(subpath) {
		return filepath.Clean(subpath)
	}
	if home == "" {
		home = "."
	}
	if rest, ok := strings.CutPrefix(subpath, "~/"); ok {
		subpath = rest
	}
	return filepath.Join(home, subpath)
}

// DefaultPath resolves subpath against the current user's home directory.
func DefaultPath(subpath string) string { return ResolvePath(HomeDir(), subpath) }

// Load reads the whole catalog file at path. The file is read once, fully,
// before any entry is produced.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Kind: KindOpen, Path: path, Err: err}
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, &LoadError{Kind: KindRead, Path: path, Err: err}
	}
	if !utf8.Valid(b) {
		return nil, &LoadError{Kind: KindRead, Path: path, Err: errInvalidUTF8}
	}
	return &Catalog{Path: path, Entries: SplitLines(string(b))}, nil
}

// SplitLines splits s on "\n", dropping a trailing "\r" from each line.
// A final newline does not produce an extra empty entry.
func SplitLines(s string) []Entry {
	if s == "" {
		return []Entry{}
	}
	s = strings.TrimSuffix(s, "\n")
	parts := strings.Split(s, "\n")
	out := make([]Entry, 0, len(parts))
	for _, p := range parts {
		out = append(out, Entry(strings.TrimSuffix(p, "\r")))
	}
	return out
}
