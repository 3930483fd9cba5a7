package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"votetrack/internal/external"
	"votetrack/internal/tracker"
)

// RunBoard loads tracker state and runs the board until the user quits.
func RunBoard(ctx context.Context, tr *tracker.Tracker, opener external.Opener, clip external.Clipboard, opts Options, out io.Writer) error {
	tr.Load(ctx)
	m := newBoardModel(ctx, tr, opener, clip, opts)
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
