package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/wardrobe"
	"github.com/fwojciec/wardrobe/markdown"
)

// printer renders run events as plain log lines, one per event, suitable
// for piping. Colors degrade automatically when the writer is not a
// terminal.
type printer struct {
	w       io.Writer
	accent  lipgloss.Style
	muted   lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
}

func newPrinter(w io.Writer, theme wardrobe.Theme) *printer {
	return &printer{
		w:       w,
		accent:  lipgloss.NewStyle().Foreground(ansiColor(theme.Accent)).Bold(true),
		muted:   lipgloss.NewStyle().Foreground(ansiColor(theme.Muted)),
		success: lipgloss.NewStyle().Foreground(ansiColor(theme.Success)),
		warning: lipgloss.NewStyle().Foreground(ansiColor(theme.Warning)),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}

func (p *printer) print(e wardrobe.Event) {
	switch e := e.(type) {
	case wardrobe.EventAssetsResolved:
		fmt.Fprintln(p.w, "References:")
		for _, path := range e.Assets.References {
			fmt.Fprintln(p.w, p.muted.Render("  - "+path))
		}
		fmt.Fprintln(p.w, "Target:")
		fmt.Fprintln(p.w, p.muted.Render("  - "+e.Assets.Target))

	case wardrobe.EventPromptLoaded:
		sum := markdown.Summarize(e.Text)
		if sum.Title != "" {
			fmt.Fprintf(p.w, "Prompt: %s (%s, %d words)\n", e.Path, sum.Title, sum.Words)
		} else {
			fmt.Fprintf(p.w, "Prompt: %s (%d words)\n", e.Path, sum.Words)
		}

	case wardrobe.EventSchedule:
		temps := make([]string, len(e.Temperatures))
		for i, t := range e.Temperatures {
			temps[i] = strconv.FormatFloat(t, 'g', -1, 64)
		}
		fmt.Fprintf(p.w, "Temperature schedule: %s (top-p %s)\n",
			strings.Join(temps, ", "), strconv.FormatFloat(e.TopP, 'g', -1, 64))

	case wardrobe.EventVariationStarted:
		fmt.Fprintln(p.w, p.accent.Render(fmt.Sprintf("Variation %d/%d at temperature %s",
			e.Index, e.Count, strconv.FormatFloat(e.Temperature, 'g', -1, 64))))

	case wardrobe.EventConfigBuilt:
		fmt.Fprintln(p.w, p.muted.Render("  output: "+e.Config.OutputFile))

	case wardrobe.EventModelText:
		fmt.Fprintln(p.w, p.muted.Render("  model: "+e.Text))

	case wardrobe.EventImagesSaved:
		for _, path := range e.Paths {
			fmt.Fprintln(p.w, p.success.Render("  saved "+path))
		}

	case wardrobe.EventWarning:
		fmt.Fprintln(p.w, p.warning.Render("  warning: "+e.Message))
	}
}
