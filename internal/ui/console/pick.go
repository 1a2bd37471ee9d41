package console

import (
	"errors"
	"fmt"

	survey "github.com/AlecAivazis/survey/v2"
	"github.com/juanmilkah/commands/internal/catalog"
)

// Prompter asks the user to choose one of options.
type Prompter interface {
	Select(message string, options []string) (string, error)
}

type surveyPrompter struct{}

func (surveyPrompter) Select(message string, options []string) (string, error) {
	var choice string
	q := &survey.Select{Message: message, Options: options, PageSize: 15}
	if err := survey.AskOne(q, &choice); err != nil {
		return "", err
	}
	return choice, nil
}

// ErrNothingToPick is returned by Pick for an empty result.
var ErrNothingToPick = errors.New("no commands to pick from")

// Pick lets the user choose one entry and prints it.
func (c *ConsoleUI) Pick(res catalog.Result) (catalog.Entry, error) {
	if res.Empty() {
		return "", ErrNothingToPick
	}
	options := make([]string, 0, res.Count())
	for _, e := range res.Entries {
		options = append(options, e.String())
	}
	choice, err := c.prompt.Select(messagePick(res), options)
	if err != nil {
		return "", err
	}
	if _, err := fmt.Fprintln(c.out, choice); err != nil {
		return "", err
	}
	return catalog.Entry(choice), nil
}

func messagePick(res catalog.Result) string {
	if res.Searched {
		return fmt.Sprintf("Select a command (%s)", res.Summary())
	}
	return "Select a command"
}
