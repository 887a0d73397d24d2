// Package term implements the interactive prompts and styled output of jig.
package term

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// Prompt asks the user to pick or type values via terminal forms. It
// implements workflow.Prompter.
type Prompt struct{}

// Choose presents a select list and returns the picked option.
func (Prompt) Choose(title string, options []string) (string, error) {
	var choice string
	sel := huh.NewSelect[string]().
		Title(title).
		Options(huh.NewOptions(options...)...).
		Value(&choice)
	if err := sel.Run(); err != nil {
		return "", fmt.Errorf("selection aborted: %w", err)
	}
	return choice, nil
}

// Input prompts for a free-text value.
func (Prompt) Input(title string) (string, error) {
	var value string
	in := huh.NewInput().
		Title(title).
		Value(&value)
	if err := in.Run(); err != nil {
		return "", fmt.Errorf("input aborted: %w", err)
	}
	return value, nil
}

// Secret prompts for a value without echoing it.
func (Prompt) Secret(title string) (string, error) {
	var value string
	in := huh.NewInput().
		Title(title).
		EchoMode(huh.EchoModePassword).
		Value(&value)
	if err := in.Run(); err != nil {
		return "", fmt.Errorf("input aborted: %w", err)
	}
	return value, nil
}
