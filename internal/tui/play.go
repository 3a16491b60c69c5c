// Package tui renders a play session in the terminal.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/adwitiya/lexio/internal/play"
	"github.com/adwitiya/lexio/internal/rounds"
)

// HintFunc produces a hint for a word from the document context. Optional.
type HintFunc func(ctx context.Context, documentContext, word string) (string, error)

type tickMsg time.Time

// refreshMsg repaints after the controller's advance timer fires.
type refreshMsg struct{}

type hintMsg struct {
	hint string
	err  error
}

// Model is the Bubble Tea model for one play session.
type Model struct {
	ctrl    *play.Controller
	docText string
	hinter  HintFunc

	input       textinput.Model
	width       int
	height      int
	lastOutcome *play.Outcome
	hint        string
	hintBusy    bool
	quitting    bool

	// send pushes messages into the running program from timer callbacks.
	send func(tea.Msg)
}

// NewModel creates a play model around an existing controller.
func NewModel(ctrl *play.Controller, docText string, hinter HintFunc) *Model {
	ti := textinput.New()
	ti.Placeholder = "Type your answer..."
	ti.CharLimit = 80
	ti.Focus()

	return &Model{
		ctrl:    ctrl,
		docText: docText,
		hinter:  hinter,
		input:   ti,
		send:    func(tea.Msg) {},
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.input.Focus(), tickCmd())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if m.quitting {
			return m, nil
		}
		m.ctrl.Tick(context.Background())
		if m.ctrl.State().Terminal {
			return m, nil
		}
		return m, tickCmd()

	case refreshMsg:
		m.lastOutcome = nil
		m.hint = ""
		return m, nil

	case hintMsg:
		m.hintBusy = false
		if msg.err != nil {
			m.hint = "No hint available right now."
		} else {
			m.hint = msg.hint
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()
	state := m.ctrl.State()

	switch msg.String() {
	case "ctrl+c":
		m.ctrl.Abandon(ctx)
		m.quitting = true
		return m, tea.Quit

	case "esc":
		if state.Terminal {
			m.quitting = true
			return m, tea.Quit
		}
		m.ctrl.Abandon(ctx)
		return m, nil

	case "enter":
		if state.Terminal {
			m.quitting = true
			return m, tea.Quit
		}
		answer := m.input.Value()
		if answer == "" {
			return m, nil
		}
		// Timeline answers are typed as a ;-separated sequence.
		if r, ok := m.ctrl.CurrentRound(); ok && r.Kind == rounds.KindTimelineTeaser {
			answer = joinOrder(answer)
		}
		out, err := m.ctrl.Submit(ctx, answer)
		if err != nil {
			return m, nil
		}
		m.lastOutcome = out
		m.hint = ""
		m.input.SetValue("")
		return m, nil

	case "ctrl+r":
		if state.Terminal {
			return m, nil
		}
		out, err := m.ctrl.Reveal(ctx)
		if err != nil {
			return m, nil
		}
		m.lastOutcome = out
		m.hint = ""
		return m, nil

	case "ctrl+h":
		return m, m.requestHint()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// requestHint asks the hint backend about the current target word.
func (m *Model) requestHint() tea.Cmd {
	if m.hinter == nil || m.hintBusy {
		return nil
	}

	var word string
	if pool := m.ctrl.Pool(); pool != nil {
		state := m.ctrl.State()
		for _, w := range pool.MainWords {
			if !containsWord(state.FoundMain, w) {
				word = w
				break
			}
		}
	} else if r, ok := m.ctrl.CurrentRound(); ok {
		word = r.Word
	}
	if word == "" {
		return nil
	}

	m.hintBusy = true
	docText, hinter := m.docText, m.hinter
	return func() tea.Msg {
		hint, err := hinter(context.Background(), docText, word)
		return hintMsg{hint: hint, err: err}
	}
}

// joinOrder turns a ;-separated submission into the ordered answer format
// the round checker expects.
func joinOrder(answer string) string {
	parts := strings.Split(answer, ";")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return strings.Join(parts, rounds.OrderSeparator)
}

func containsWord(found []string, w string) bool {
	for _, f := range found {
		if rounds.Normalize(f) == rounds.Normalize(w) {
			return true
		}
	}
	return false
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Notifier bridges the controller's advance timers back into the running
// program so the screen repaints when a feedback delay elapses. Create it
// first, pass After to play.Options, then hand it to Run.
type Notifier struct {
	send func(tea.Msg)
}

// NewNotifier creates an unbound notifier. It is safe to schedule through it
// before the program starts.
func NewNotifier() *Notifier {
	return &Notifier{send: func(tea.Msg) {}}
}

// After schedules fn on a real timer and requests a repaint once it runs.
func (n *Notifier) After(d time.Duration, fn func()) {
	time.AfterFunc(d, func() {
		fn()
		n.send(refreshMsg{})
	})
}

// Run blocks until the session ends and returns the final state.
func Run(ctrl *play.Controller, docText string, hinter HintFunc, notifier *Notifier) (play.State, error) {
	m := NewModel(ctrl, docText, hinter)
	p := tea.NewProgram(m)
	m.send = func(msg tea.Msg) { p.Send(msg) }
	if notifier != nil {
		notifier.send = m.send
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return ctrl.State(), err
	}
	return ctrl.State(), nil
}
