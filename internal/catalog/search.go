package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Query is a substring filter. A nil *Query selects everything.
type Query struct {
	Text       string
	IgnoreCase bool
}

// Result is the ordered output of Select.
type Result struct {
	Entries  []Entry
	Searched bool
}

func (r Result) Count() int  { return len(r.Entries) }
func (r Result) Empty() bool { return len(r.Entries) == 0 }

// Summary is the line reported for a search: "NO COMMAND FOUND" when
// nothing matched, otherwise the count with a pluralized noun.
func (r Result) Summary() string {
	if r.Empty() {
		return "NO COMMAND FOUND"
	}
	return fmt.Sprintf("%d MATCHING %s", r.Count(), Pluralize(r.Count()))
}

// Pluralize returns the noun used for n matches.
func Pluralize(n int) string {
	if n == 1 {
		return "COMMAND"
	}
	return "COMMANDS"
}

// Select filters c by q, keeping catalog order. With q == nil the full
// catalog is returned.
func Select(c *Catalog, q *Query) Result {
	if c == nil {
		return Result{Entries: []Entry{}, Searched: q != nil}
	}
	if q == nil {
		return Result{Entries: c.Entries}
	}
	match := containsFunc(*q)
	found := make([]Entry, 0)
	for _, e := range c.Entries {
		if match(string(e)) {
			found = append(found, e)
		}
	}
	return Result{Entries: found, Searched: true}
}

func containsFunc(q Query) func(string) bool {
	if !q.IgnoreCase {
		return func(s string) bool { return strings.Contains(s, q.Text) }
	}
	needle := lower(q.Text)
	return func(s string) bool { return strings.Contains(lower(s), needle) }
}

// lower applies locale-independent full-string lowercasing.
func lower(s string) string { return cases.Lower(language.Und).String(s) }
