// Package tui renders the assessment dialogue as a terminal chat: one
// question at a time, an input line, and a closing summary.
package tui

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/tutorloop/tutorloop/internal/orchestrator"
	"github.com/tutorloop/tutorloop/internal/store"
)

// transcriptLine is one rendered utterance.
type transcriptLine struct {
	role string
	text string
	meta string
}

// turnDoneMsg delivers the result of a turn run off the UI goroutine.
type turnDoneMsg struct {
	result *orchestrator.TurnResult
	err    error
}

// Model is the root Bubble Tea model for a running session.
type Model struct {
	orch *orchestrator.Orchestrator
	sess *store.Session

	input      textinput.Model
	transcript []transcriptLine
	waiting    bool
	completed  bool
	errMsg     string
	final      *orchestrator.TurnResult

	width  int
	height int
}

// New creates the chat model seeded with the session's first question.
func New(orch *orchestrator.Orchestrator, sess *store.Session, first *orchestrator.TurnResult) Model {
	ti := textinput.New()
	ti.Placeholder = "Type your answer..."
	ti.Focus()

	m := Model{
		orch:  orch,
		sess:  sess,
		input: ti,
	}
	m.appendResult(first)
	return m
}

func (m Model) Init() tea.Cmd {
	return m.input.Focus()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case turnDoneMsg:
		m.waiting = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.appendResult(msg.result)
		if msg.result.Completed {
			m.completed = true
			m.final = msg.result
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			if m.completed || m.errMsg != "" {
				return m, tea.Quit
			}
			if m.waiting {
				return m, nil
			}
			answer := strings.TrimSpace(m.input.Value())
			if answer == "" {
				return m, nil
			}
			m.transcript = append(m.transcript, transcriptLine{role: store.RoleUser, text: answer})
			m.input.Reset()
			m.waiting = true
			return m, m.runTurn(answer)
		}
	}

	if !m.waiting && !m.completed {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("tutorloop · %s · %s", m.sess.Mode, m.sess.Topic)))
	b.WriteString("\n\n")

	for _, line := range m.visibleTranscript() {
		switch line.role {
		case store.RoleAssistant:
			b.WriteString(questionStyle.Width(m.contentWidth()).Render(line.text))
		default:
			b.WriteString(answerStyle.Render("> " + line.text))
		}
		b.WriteString("\n")
		if line.meta != "" {
			b.WriteString(metaStyle.Render(line.meta))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	switch {
	case m.errMsg != "":
		b.WriteString(errorStyle.Render("error: " + m.errMsg))
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("Enter to exit"))
	case m.completed:
		b.WriteString(m.renderSummary())
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("Enter to exit"))
	case m.waiting:
		b.WriteString(metaStyle.Render("evaluating..."))
	default:
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("Enter to submit · Esc to quit"))
	}

	v.SetContent(b.String())
	return v
}

// runTurn executes the turn off the UI goroutine.
func (m Model) runTurn(answer string) tea.Cmd {
	orch, sessionID := m.orch, m.sess.ID
	return func() tea.Msg {
		result, err := orch.RunTurn(context.Background(), sessionID, answer)
		return turnDoneMsg{result: result, err: err}
	}
}

// appendResult turns a TurnResult into transcript lines.
func (m *Model) appendResult(r *orchestrator.TurnResult) {
	if r == nil {
		return
	}
	if r.Completed {
		// The completion message is rendered by the summary view.
		return
	}
	meta := fmt.Sprintf("level %s · %s", r.TargetBloom, r.TargetDifficulty)
	if r.Score != nil {
		meta = fmt.Sprintf("scored %.2f · %s", *r.Score, meta)
	}
	m.transcript = append(m.transcript, transcriptLine{
		role: store.RoleAssistant,
		text: r.Question,
		meta: meta,
	})
}

// visibleTranscript keeps the tail that fits a small screen.
func (m Model) visibleTranscript() []transcriptLine {
	const maxLines = 6
	if len(m.transcript) <= maxLines {
		return m.transcript
	}
	return m.transcript[len(m.transcript)-maxLines:]
}

func (m Model) renderSummary() string {
	var b strings.Builder
	b.WriteString(m.final.Question)
	if len(m.final.Profile) > 0 {
		b.WriteString("\n\nSkills:\n")
		for skill, s := range m.final.Profile {
			fmt.Fprintf(&b, "  %-20s ema %.2f  θ %+.2f\n", skill, s.Ema, s.Theta)
		}
	}
	return summaryStyle.Width(m.contentWidth()).Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) contentWidth() int {
	w := m.width - 4
	if w < 20 {
		w = 60
	}
	if w > 100 {
		w = 100
	}
	return w
}

// Run starts a session and drives it interactively until completion
// or quit.
func Run(orch *orchestrator.Orchestrator, sess *store.Session, first *orchestrator.TurnResult) error {
	p := tea.NewProgram(New(orch, sess, first))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running UI: %w", err)
	}
	return nil
}
