package console

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/juanmilkah/commands/internal/assets"
)

func (c *ConsoleUI) Banner() error {
	s := assets.Banner
	if c.opts.Color {
		s = text.FgCyan.Sprint(s)
	}
	_, err := fmt.Fprintln(c.out, s)
	return err
}
