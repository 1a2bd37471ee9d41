package catalog

import (
	"fmt"
	"strings"
)

// RootMarker tags entries for commands that must run as root.
const RootMarker = "(*)"

// Entry is one line of the catalog, kept verbatim.
type Entry string

func (e Entry) String() string { return string(e) }

// RequiresRoot reports whether the entry carries the root marker.
func (e Entry) RequiresRoot() bool { return strings.Contains(string(e), RootMarker) }

type Catalog struct {
	Path    string
	Entries []Entry
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Entries)
}

type ErrorKind int

const (
	KindOpen ErrorKind = iota
	KindRead
)

func (k ErrorKind) String() string {
	switch k {
	case KindOpen:
		return "open"
	case KindRead:
		return "read"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// LoadError is returned by Load when the catalog file cannot be opened or read.
type LoadError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s catalog %s: %v", e.Kind, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
