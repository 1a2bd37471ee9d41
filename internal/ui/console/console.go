package console

import (
	"io"
	"os"

	"github.com/juanmilkah/commands/internal/config"
	"golang.org/x/term"
)

// Options controls how results are rendered.
type Options struct {
	Header string
	Legend string
	Format string
	Color  bool
}

// ConsoleUI prints catalog results. It never filters or reorders entries.
type ConsoleUI struct {
	out    io.Writer
	opts   Options
	prompt Prompter
}

func NewConsoleUI(out io.Writer, opts Options) *ConsoleUI {
	if out == nil {
		out = os.Stdout
	}
	if opts.Format == "" {
		opts.Format = config.FormatPlain
	}
	return &ConsoleUI{out: out, opts: opts, prompt: surveyPrompter{}}
}

// WithPrompter replaces the interactive selector.
func (c *ConsoleUI) WithPrompter(p Prompter) *ConsoleUI {
	c.prompt = p
	return c
}

// ColorEnabled maps a color mode to a decision for f.
func ColorEnabled(mode string, f *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if f == nil {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
