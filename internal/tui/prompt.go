package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

var ErrNoSelection = errors.New("no files selected")

// SelectFiles asks the user to pick the files to compare. All candidates are
// selected initially.
func SelectFiles(candidates []string) ([]string, error) {
	if len(candidates) == 0 {
		return nil, ErrNoSelection
	}

	selected := append([]string(nil), candidates...)
	err := huh.NewMultiSelect[string]().
		Title("Files to compare").
		Options(huh.NewOptions(candidates...)...).
		Value(&selected).
		Run()
	if err != nil {
		return nil, fmt.Errorf("prompt: %w", err)
	}
	if len(selected) == 0 {
		return nil, ErrNoSelection
	}
	return selected, nil
}
