package console

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/juanmilkah/commands/internal/catalog"
	"github.com/juanmilkah/commands/internal/config"
)

// RunList prints the header line followed by every entry.
func (c *ConsoleUI) RunList(res catalog.Result) error {
	_, err := fmt.Fprint(c.out, c.renderList(res))
	return err
}

func (c *ConsoleUI) renderList(res catalog.Result) string {
	var b strings.Builder
	if c.opts.Header != "" {
		b.WriteString(c.emphasis(c.opts.Header) + "\n")
	}
	b.WriteString(c.renderEntries(res.Entries))
	return b.String()
}

func (c *ConsoleUI) renderEntries(entries []catalog.Entry) string {
	if c.opts.Format == config.FormatTable {
		if len(entries) == 0 {
			return ""
		}
		return renderTable(entries) + "\n"
	}
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.String() + "\n")
	}
	return b.String()
}

func renderTable(entries []catalog.Entry) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"#", "Command", "Root"})
	for i, e := range entries {
		root := ""
		if e.RequiresRoot() {
			root = "yes"
		}
		tw.AppendRow(table.Row{i + 1, e.String(), root})
	}
	return tw.Render()
}

func (c *ConsoleUI) emphasis(s string) string {
	if !c.opts.Color {
		return s
	}
	return text.Bold.Sprint(s)
}
