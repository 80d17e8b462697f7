// Package board is the read-only admin TUI: the derived state of every
// step in the active chapter, per track. It renders exclusively what
// progress.DeriveStepStates computes — the board has no state rules of
// its own.
package board

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/halvard/paperchase/internal/engine"
	"github.com/halvard/paperchase/internal/progress"
	"github.com/halvard/paperchase/internal/store"
	"github.com/halvard/paperchase/internal/ui/theme"
)

type loadedMsg struct {
	Run   *store.ChapterRun
	Views []progress.StepView
	Err   error
}

// Model is the board's Bubble Tea model.
type Model struct {
	eng   *engine.Engine
	track store.Track

	run      *store.ChapterRun
	views    []progress.StepView
	selected int
	loading  bool
	errMsg   string

	spin   spinner.Model
	width  int
	height int
}

// New creates a board for the given track.
func New(eng *engine.Engine, track store.Track) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)
	return Model{
		eng:     eng,
		track:   track,
		loading: true,
		spin:    sp,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.load())
}

// load resolves the active run for the track and derives step states.
func (m Model) load() tea.Cmd {
	eng, track := m.eng, m.track
	return func() tea.Msg {
		ctx := context.Background()
		run, err := eng.ActiveRun(ctx, track)
		if err != nil {
			return loadedMsg{Err: err}
		}
		res, err := eng.StepStates(ctx, track, run.ChapterID)
		if err != nil {
			return loadedMsg{Err: err}
		}
		return loadedMsg{Run: res.Run, Views: res.Views}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case loadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
		} else {
			m.errMsg = ""
			m.run = msg.Run
			m.views = msg.Views
			if m.selected >= len(m.views) {
				m.selected = 0
			}
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.views)-1 {
				m.selected++
			}
			return m, nil
		case "tab":
			if m.track == store.TrackTest {
				m.track = store.TrackLive
			} else {
				m.track = store.TrackTest
			}
			m.loading = true
			return m, tea.Batch(m.spin.Tick, m.load())
		case "r":
			m.loading = true
			return m, tea.Batch(m.spin.Tick, m.load())
		}
	}
	return m, nil
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	var b strings.Builder

	title := fmt.Sprintf("Paperchase — %s track", m.track)
	if m.run != nil {
		title += "  ·  " + m.run.ChapterID
	}
	b.WriteString(theme.Header.Render(theme.Title.Render(title)))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString("  " + m.spin.View() + " " + theme.Dim.Render("loading ledger..."))
	case m.errMsg != "":
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Error).Render(m.errMsg))
	default:
		for i, view := range m.views {
			b.WriteString(m.renderRow(i, view))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(theme.Footer.Render(theme.Subtitle.Render("↑↓ navigate · tab switch track · r refresh · q quit")))

	v.SetContent(b.String())
	return v
}

func (m Model) renderRow(i int, view progress.StepView) string {
	cursor := "  "
	name := theme.Body.Render(view.Name)
	if i == m.selected {
		cursor = theme.Selected.Render("> ")
		name = theme.Selected.Render(view.Name)
	}

	badge := stateBadge(view.State)
	detail := ""
	if view.ScheduledAt != nil {
		detail = theme.Dim.Render("  due " + view.ScheduledAt.Format("Mon 02 Jan 15:04"))
	} else if view.CompletedAt != nil {
		detail = theme.Dim.Render("  done " + view.CompletedAt.Format("Mon 02 Jan 15:04"))
	}

	return fmt.Sprintf("%s%-12s %s%s", cursor, badge, name, detail)
}

func stateBadge(s progress.StepState) string {
	switch s {
	case progress.StateLocked:
		return theme.BadgeLocked.Render("locked")
	case progress.StateActive:
		return theme.BadgeActive.Render("active")
	case progress.StateReady:
		return theme.BadgeReady.Render("ready")
	case progress.StateScheduled:
		return theme.BadgeScheduled.Render("scheduled")
	case progress.StateSent:
		return theme.BadgeSent.Render("sent")
	case progress.StateDelivered:
		return theme.BadgeDelivered.Render("delivered")
	}
	return string(s)
}
