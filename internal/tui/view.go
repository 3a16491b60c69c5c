package tui

import (
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/adwitiya/lexio/internal/play"
	"github.com/adwitiya/lexio/internal/rounds"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	statStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	promptStyle   = lipgloss.NewStyle().Bold(true)
	wordStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	correctStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	wrongStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("221")).Italic(true)
	letterStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	terminalStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).Padding(1, 0)
)

func (m *Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	state := m.ctrl.State()

	var b strings.Builder
	b.WriteString(m.renderHeader(state))
	b.WriteString("\n\n")

	if state.Terminal {
		b.WriteString(m.renderSummary(state))
		v.SetContent(b.String())
		return v
	}

	if pool := m.ctrl.Pool(); pool != nil {
		b.WriteString(m.renderPool(pool, state))
	} else {
		b.WriteString(m.renderRound(state))
	}

	b.WriteString("\n")
	b.WriteString(m.renderFeedback(state))
	if m.hint != "" {
		b.WriteString("\n" + hintStyle.Render("Hint: "+m.hint))
	} else if m.hintBusy {
		b.WriteString("\n" + mutedStyle.Render("Thinking of a hint..."))
	}

	b.WriteString("\n\n" + m.input.View())
	b.WriteString("\n\n" + mutedStyle.Render("enter submit · ctrl+h hint · ctrl+r reveal · esc give up"))

	v.SetContent(b.String())
	return v
}

func (m *Model) renderHeader(state play.State) string {
	title := m.ctrl.Title()
	if title == "" {
		title = "Lexio"
	}

	hearts := strings.Repeat("♥ ", state.Lives) + strings.Repeat("♡ ", max(0, play.DefaultLives-state.Lives))
	stats := fmt.Sprintf("Score %d   Streak %d   %s  %02d:%02d",
		state.Score, state.Streak, strings.TrimSpace(hearts),
		state.SecondsRemaining/60, state.SecondsRemaining%60)

	return titleStyle.Render(title) + "\n" + statStyle.Render(stats)
}

func (m *Model) renderRound(state play.State) string {
	r, ok := m.ctrl.CurrentRound()
	if !ok {
		return mutedStyle.Render("Loading...")
	}

	var b strings.Builder
	b.WriteString(promptStyle.Render(r.Prompt))
	b.WriteString("\n\n")

	switch r.Kind {
	case rounds.KindWordImageMatch:
		b.WriteString(mutedStyle.Render("[illustration]") + "\n\n")
		b.WriteString(renderOptions(append([]string{r.Word}, r.DistractorWords...)))

	case rounds.KindWordTranslationMatch:
		b.WriteString(wordStyle.Render(r.Word) + "\n\n")
		b.WriteString(renderOptions(append([]string{r.Translation}, r.DistractorTranslations...)))

	case rounds.KindSpellingCompletion:
		b.WriteString(wordStyle.Render(spaced(r.MaskedWord)) + "\n\n")
		b.WriteString("Letters: " + strings.Join(append(append([]string{}, r.MissingLetters...), r.DecoyLetters...), " "))

	case rounds.KindTraceOrType:
		b.WriteString(wordStyle.Render(r.Word))

	case rounds.KindTrueFalseChallenge:
		b.WriteString(r.Statement + "\n\n")
		b.WriteString(mutedStyle.Render("Answer true or false"))

	case rounds.KindFormulaScramble:
		b.WriteString("Parts: " + strings.Join(r.ScrambledParts, "  "))

	case rounds.KindTimelineTeaser:
		for i, item := range r.ScrambledOrder {
			fmt.Fprintf(&b, "%d. %s\n", i+1, item)
		}
		b.WriteString(mutedStyle.Render("Type the items in order, separated by ;"))
	}

	return b.String()
}

func (m *Model) renderPool(pool *rounds.WordPool, state play.State) string {
	var b strings.Builder

	var tiles []string
	for _, l := range pool.Letters {
		tiles = append(tiles, letterStyle.Render(strings.ToUpper(l)))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, tiles...))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Main words: %d/%d found\n", len(state.FoundMain), len(pool.MainWords))
	if len(state.FoundMain) > 0 {
		b.WriteString(correctStyle.Render(strings.Join(state.FoundMain, "  ")) + "\n")
	}
	if len(state.FoundBonus) > 0 {
		b.WriteString("Bonus: " + wordStyle.Render(strings.Join(state.FoundBonus, "  ")) + "\n")
	}
	return b.String()
}

func (m *Model) renderFeedback(state play.State) string {
	if m.lastOutcome == nil {
		return ""
	}
	switch m.lastOutcome.Verdict {
	case play.VerdictCorrect:
		return correctStyle.Render(fmt.Sprintf("Correct! +%d", m.lastOutcome.Points))
	case play.VerdictDuplicate:
		return mutedStyle.Render("Already found.")
	case play.VerdictInvalid:
		return wrongStyle.Render("Not a valid word here.")
	default:
		if m.lastOutcome.RevealedWord != "" {
			return wrongStyle.Render(fmt.Sprintf("Revealed: %s (%d)", m.lastOutcome.RevealedWord, m.lastOutcome.Points))
		}
		if m.lastOutcome.Canonical != "" {
			return wrongStyle.Render("The answer was: " + m.lastOutcome.Canonical)
		}
		return wrongStyle.Render("Incorrect.")
	}
}

func (m *Model) renderSummary(state play.State) string {
	var b strings.Builder
	b.WriteString(terminalStyle.Render("Session over!"))
	b.WriteString("\n")

	switch state.TerminationReason {
	case play.ReasonPool:
		b.WriteString("You found every main word!\n")
	case play.ReasonRounds:
		b.WriteString("You made it through every round!\n")
	case play.ReasonLives:
		b.WriteString("Out of lives.\n")
	case play.ReasonClock:
		b.WriteString("Time's up.\n")
	}

	fmt.Fprintf(&b, "\nFinal score: %d\n", state.Score)
	if len(state.FoundMain) > 0 {
		fmt.Fprintf(&b, "Words found: %d main, %d bonus\n", len(state.FoundMain), len(state.FoundBonus))
	}
	b.WriteString("\n" + mutedStyle.Render("Press enter to exit"))
	return b.String()
}

// renderOptions lists the answer candidates alphabetically so the correct
// one never sits in a predictable slot.
func renderOptions(options []string) string {
	sorted := append([]string(nil), options...)
	sort.Strings(sorted)

	var b strings.Builder
	for i, opt := range sorted {
		fmt.Fprintf(&b, "%d. %s\n", i+1, opt)
	}
	return b.String()
}

func spaced(s string) string {
	return strings.Join(strings.Split(s, ""), " ")
}
