// Where: cli/internal/interaction/selector.go
// What: Interactive selection helpers using the huh library.
// Why: Provide keyboard-based selection for scaffold choices.
package interaction

import (
	"github.com/charmbracelet/huh"
)

// HuhPrompter implements the Prompter interface using the huh TUI library.
type HuhPrompter struct{}

func (p HuhPrompter) Input(title, placeholder string) (string, error) {
	var input string
	err := huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(&input).
		Run()
	if err != nil {
		return "", err
	}
	return input, nil
}

func (p HuhPrompter) SelectValue(title string, options []SelectOption) (string, error) {
	if len(options) == 0 {
		return "", nil
	}

	huhOptions := make([]huh.Option[string], len(options))
	for i, opt := range options {
		huhOptions[i] = huh.NewOption(opt.Label, opt.Value)
	}

	var selected string
	err := huh.NewSelect[string]().
		Title(title).
		Options(huhOptions...).
		Value(&selected).
		Run()
	if err != nil {
		return "", err
	}
	return selected, nil
}
