package tui

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// Choice is one selectable entry.
type Choice[T comparable] struct {
	Label string
	Value T
}

// Select asks the user to pick one of choices and returns its value.
func Select[T comparable](title, description string, choices []Choice[T]) (T, error) {
	var picked T
	if len(choices) == 0 {
		return picked, fmt.Errorf("nothing to select")
	}

	opts := make([]huh.Option[T], len(choices))
	for i, c := range choices {
		opts[i] = huh.NewOption(c.Label, c.Value)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[T]().
				Title(title).
				Description(description).
				Options(opts...).
				Value(&picked),
		),
	)
	if err := form.Run(); err != nil {
		return picked, fmt.Errorf("form: %w", err)
	}
	return picked, nil
}
