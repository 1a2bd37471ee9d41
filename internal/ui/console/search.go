package console

import (
	"fmt"
	"strings"

	"github.com/juanmilkah/commands/internal/catalog"
)

// RunSearch prints "NO COMMAND FOUND" for an empty result. Otherwise it
// prints the match count, the root legend and the matching entries.
func (c *ConsoleUI) RunSearch(res catalog.Result) error {
	_, err := fmt.Fprint(c.out, c.renderSearch(res))
	return err
}

func (c *ConsoleUI) renderSearch(res catalog.Result) string {
	var b strings.Builder
	if res.Empty() {
		b.WriteString(res.Summary() + "\n")
		return b.String()
	}
	b.WriteString(c.emphasis(res.Summary()) + "\n")
	if c.opts.Legend != "" {
		b.WriteString(c.opts.Legend + "\n")
	}
	b.WriteString(c.renderEntries(res.Entries))
	return b.String()
}
