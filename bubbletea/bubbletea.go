// Package bubbletea provides a Bubble Tea progress view for a wardrobe run.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/wardrobe"
)

// RunFunc executes one edit run. The onEvent callback is called for each
// progress event. The function blocks until the run completes or the
// context is cancelled.
type RunFunc func(ctx context.Context, onEvent func(wardrobe.Event)) ([]string, error)

// Run creates and runs the Bubble Tea program. It blocks until the program
// exits and returns the finished model. The context is used for graceful
// shutdown: when cancelled, the run is aborted and the program quits.
func Run(ctx context.Context, m Model) (Model, error) {
	p := tea.NewProgram(m)
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	fm, err := p.Run()
	final, ok := fm.(Model)
	if !ok {
		return m, err
	}
	return final, err
}

// RunEventMsg wraps a run event for delivery to the Bubble Tea model.
type RunEventMsg struct {
	Event wardrobe.Event
}

// RunDoneMsg signals that the run has completed.
type RunDoneMsg struct {
	Paths []string
	Err   error
}
