package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"rune-savior/rdef/dregistry"
)

func Start(registry *dregistry.Registry) error {
	browser := CreateBrowser(registry)
	if err := tea.NewProgram(browser).Start(); err != nil {
		err := errors.Wrap(err, "ui Start error")
		return err
	}
	return nil
}
