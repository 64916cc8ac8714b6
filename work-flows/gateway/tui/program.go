package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the form and blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, ctrl Controller, view *ProgramView, opts Options) error {
	program := tea.NewProgram(
		NewModel(ctx, ctrl, view, opts),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	view.Attach(program)

	_, err := program.Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
