// Package tui shows live sweep progress with Bubble Tea.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/bifurc/internal/sweep"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	barStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
	trackStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

const barWidth = 50

type chunkMsg struct {
	columns int
}

type doneMsg struct {
	result *sweep.Result
	err    error
}

type model struct {
	label       string
	totalChunks int
	totalValues int
	doneChunks  int
	doneValues  int
	start       time.Time
	cancelling  bool
	cancel      context.CancelFunc
	msgs        <-chan tea.Msg

	result *sweep.Result
	err    error
}

func waitMsg(ch <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg { return <-ch }
}

func (m model) Init() tea.Cmd { return waitMsg(m.msgs) }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			// Cancel, then keep waiting so every worker is joined before
			// the program exits.
			m.cancelling = true
			m.cancel()
		}
		return m, nil
	case chunkMsg:
		m.doneChunks++
		m.doneValues += msg.columns
		return m, waitMsg(m.msgs)
	case doneMsg:
		m.result = msg.result
		m.err = msg.err
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render("bifurc sweep") + "\n\n")
	sb.WriteString(labelStyle.Render("map:      ") + m.label + "\n")
	sb.WriteString(labelStyle.Render("elapsed:  ") + time.Since(m.start).Round(time.Millisecond).String() + "\n\n")

	frac := 0.0
	if m.totalValues > 0 {
		frac = float64(m.doneValues) / float64(m.totalValues)
	}
	filled := int(frac * barWidth)
	sb.WriteString(barStyle.Render(strings.Repeat("█", filled)))
	sb.WriteString(trackStyle.Render(strings.Repeat("░", barWidth-filled)))
	sb.WriteString(fmt.Sprintf(" %3.0f%%  (%d/%d values, %d/%d chunks)\n",
		frac*100, m.doneValues, m.totalValues, m.doneChunks, m.totalChunks))

	if m.cancelling {
		sb.WriteString("\ncancelling, waiting for workers...\n")
	} else {
		sb.WriteString(helpStyle.Render("\nq to cancel\n"))
	}
	return sb.String()
}

// Run executes the sweep while displaying a progress bar. Cancelling from
// the keyboard tears the workers down and returns the context error; no
// partial result is ever returned.
func Run(ctx context.Context, cfg sweep.Config, label string) (*sweep.Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	chunks := sweep.Partition(sweep.ControlValues(cfg.RMin, cfg.RMax, cfg.RPoints), cfg.Workers)

	// One message per chunk plus the final done message; the buffer keeps
	// workers from blocking if the UI exits first.
	msgs := make(chan tea.Msg, len(chunks)+1)

	runner := sweep.NewRunner()
	runner.AddObserver(sweep.ObserverFunc(func(chunk, columns int) {
		msgs <- chunkMsg{columns: columns}
	}))

	go func() {
		res, err := runner.Run(ctx, cfg)
		msgs <- doneMsg{result: res, err: err}
	}()

	m := model{
		label:       label,
		totalChunks: len(chunks),
		totalValues: cfg.RPoints,
		start:       time.Now(),
		cancel:      cancel,
		msgs:        msgs,
	}

	out, err := tea.NewProgram(m).Run()
	if err != nil {
		return nil, err
	}

	final := out.(model)
	if final.err != nil {
		return nil, final.err
	}
	return final.result, nil
}
