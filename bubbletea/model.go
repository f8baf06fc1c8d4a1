package bubbletea

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/wardrobe"
	"github.com/fwojciec/wardrobe/markdown"
	"github.com/mattn/go-runewidth"
)

var _ tea.Model = Model{}

// Model is the Bubble Tea model for a run in progress. It renders each run
// event as a log line, shows a spinner while the model call is in flight,
// and quits once the run completes.
type Model struct {
	run    RunFunc
	styles Styles
	spin   spinner.Model
	title  string

	lines  []string
	status string
	saved  []string
	err    error
	done   bool
	width  int

	runCtx  context.Context
	cancel  context.CancelFunc
	eventCh chan wardrobe.Event
}

// New creates a TUI Model for the given run function, theme, and title.
func New(run RunFunc, theme wardrobe.Theme, title string) Model {
	styles := NewStyles(theme)
	ctx, cancel := context.WithCancel(context.Background())
	return Model{
		run:     run,
		styles:  styles,
		spin:    spinner.New(spinner.WithSpinner(spinner.MiniDot), spinner.WithStyle(styles.Accent)),
		title:   title,
		status:  "Preparing run...",
		width:   80,
		runCtx:  ctx,
		cancel:  cancel,
		eventCh: make(chan wardrobe.Event, 64),
	}
}

// Done reports whether the run has completed.
func (m Model) Done() bool { return m.done }

// Err returns the run error, if any.
func (m Model) Err() error { return m.err }

// Saved returns the persisted paths collected so far.
func (m Model) Saved() []string { return m.saved }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.startRun(), listenForEvent(m.eventCh))
}

// startRun executes the run in its own goroutine; the returned message is
// the terminal one for this program.
func (m Model) startRun() tea.Cmd {
	run, ctx, events := m.run, m.runCtx, m.eventCh
	return func() tea.Msg {
		paths, err := run(ctx, func(e wardrobe.Event) { events <- e })
		return RunDoneMsg{Paths: paths, Err: err}
	}
}

// listenForEvent delivers the next run event to the model.
func listenForEvent(events <-chan wardrobe.Event) tea.Cmd {
	return func() tea.Msg {
		return RunEventMsg{Event: <-events}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			if !m.done {
				m.cancel()
				m.status = "Cancelling..."
				return m, nil
			}
			return m, tea.Quit
		}
		return m, nil

	case RunEventMsg:
		m = m.processEvent(msg.Event)
		return m, listenForEvent(m.eventCh)

	case RunDoneMsg:
		// Drain events still buffered ahead of the done message so the
		// final view is complete.
		for {
			select {
			case e := <-m.eventCh:
				m = m.processEvent(e)
				continue
			default:
			}
			break
		}
		m.done = true
		m.saved = msg.Paths
		m.err = msg.Err
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

// processEvent appends the display lines for one run event.
func (m Model) processEvent(e wardrobe.Event) Model {
	s := m.styles
	switch e := e.(type) {
	case wardrobe.EventAssetsResolved:
		m.lines = append(m.lines, "References:")
		for _, p := range e.Assets.References {
			m.lines = append(m.lines, s.Muted.Render("  "+p))
		}
		m.lines = append(m.lines, "Target:", s.Muted.Render("  "+e.Assets.Target))

	case wardrobe.EventPromptLoaded:
		line := "Prompt: " + e.Path
		if sum := markdown.Summarize(e.Text); sum.Title != "" {
			line += fmt.Sprintf(" (%s, %d words)", sum.Title, sum.Words)
		} else if sum.Words > 0 {
			line += fmt.Sprintf(" (%d words)", sum.Words)
		}
		m.lines = append(m.lines, line)

	case wardrobe.EventSchedule:
		m.lines = append(m.lines, fmt.Sprintf("Temperature schedule: %s (top-p %s)",
			formatFloats(e.Temperatures), strconv.FormatFloat(e.TopP, 'g', -1, 64)))

	case wardrobe.EventVariationStarted:
		header := fmt.Sprintf("Variation %d/%d at temperature %s",
			e.Index, e.Count, strconv.FormatFloat(e.Temperature, 'g', -1, 64))
		m.lines = append(m.lines, s.Accent.Render(header))
		m.status = header

	case wardrobe.EventConfigBuilt:
		m.lines = append(m.lines, s.Muted.Render("  output: "+e.Config.OutputFile))

	case wardrobe.EventModelText:
		m.lines = append(m.lines, s.Muted.Render("  model: "+firstLine(e.Text)))

	case wardrobe.EventImagesSaved:
		for _, p := range e.Paths {
			m.lines = append(m.lines, s.Success.Render("  saved "+p))
		}

	case wardrobe.EventWarning:
		m.lines = append(m.lines, s.Warning.Render("  warning: "+e.Message))
	}
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Accent.Render(m.title))
	b.WriteString("\n")
	for _, line := range m.lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	switch {
	case !m.done:
		b.WriteString(m.spin.View())
		b.WriteString(" ")
		b.WriteString(truncateLine(m.status, m.width-2))
		b.WriteString("\n")
	case m.err != nil:
		b.WriteString(m.styles.Error.Render("run failed: " + m.err.Error()))
		b.WriteString("\n")
	default:
		b.WriteString(m.styles.Success.Render(fmt.Sprintf("Done. Saved %d file(s).", len(m.saved))))
		b.WriteString("\n")
	}
	return b.String()
}

// truncateLine shortens a plain (unstyled) line to the terminal width.
// Styled lines are left alone: cutting into escape sequences garbles them.
func truncateLine(line string, width int) string {
	if width <= 0 {
		return line
	}
	return runewidth.Truncate(line, width, "...")
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func formatFloats(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ", ")
}
