package play

import "time"

// Session resource defaults.
const (
	DefaultLives        = 3
	DefaultClockSeconds = 300
)

// Scoring constants.
const (
	// BasePoints is awarded for a correct sequential answer, plus
	// StreakBonus for each step of the running streak.
	BasePoints  = 10
	StreakBonus = 2

	// PoolLetterPoints is awarded per letter of a found main word.
	PoolLetterPoints = 10

	// BonusWordPoints is the flat award for a found bonus word.
	BonusWordPoints = 5

	// RevealPenalty is deducted when a pool main word is revealed. The
	// score never goes below zero.
	RevealPenalty = 25
)

// Feedback display delays before the round advances.
const (
	CorrectAdvanceDelay   = 1200 * time.Millisecond
	IncorrectAdvanceDelay = 2 * time.Second
)

// Judgment is the transient feedback state for the current round.
type Judgment string

const (
	JudgmentNone      Judgment = "none"
	JudgmentCorrect   Judgment = "correct"
	JudgmentIncorrect Judgment = "incorrect"
)

// Verdict classifies one submission.
type Verdict string

const (
	VerdictCorrect   Verdict = "correct"
	VerdictIncorrect Verdict = "incorrect"

	// VerdictDuplicate marks a pool word already found: no score, no life
	// lost, streak unchanged.
	VerdictDuplicate Verdict = "duplicate"

	// VerdictInvalid marks a pool submission that is not formable from the
	// letters or not in either word set. Invalid words carry no penalty: no
	// score, no life lost, streak unchanged.
	VerdictInvalid Verdict = "invalid"
)

// Reason records why a session reached its terminal state. Exactly one
// reason is recorded per session, the first to trigger.
type Reason string

const (
	ReasonLives     Reason = "lives"
	ReasonClock     Reason = "clock"
	ReasonRounds    Reason = "rounds"
	ReasonPool      Reason = "pool"
	ReasonAbandoned Reason = "abandoned"
)

// State is a snapshot of a running session. All fields are copies; mutating
// a snapshot has no effect on the session.
type State struct {
	RoundIndex       int
	Score            int
	Lives            int
	SecondsRemaining int
	Streak           int
	LastJudgment     Judgment

	// Pool games only.
	FoundMain  []string
	FoundBonus []string

	Terminal          bool
	TerminationReason Reason
}

// Outcome describes the result of a submit or reveal operation.
type Outcome struct {
	Verdict Verdict

	// Points is the score delta applied by this operation. Negative for a
	// pool reveal penalty.
	Points int

	// Canonical is the correct answer, set when a sequential round is
	// revealed or answered incorrectly.
	Canonical string

	// RevealedWord is the main word surfaced by a pool reveal.
	RevealedWord string
}

// Config tunes session resources and pacing. The zero value is replaced by
// DefaultConfig.
type Config struct {
	Lives                 int
	ClockSeconds          int
	CorrectAdvanceDelay   time.Duration
	IncorrectAdvanceDelay time.Duration
}

// DefaultConfig returns the standard session configuration.
func DefaultConfig() Config {
	return Config{
		Lives:                 DefaultLives,
		ClockSeconds:          DefaultClockSeconds,
		CorrectAdvanceDelay:   CorrectAdvanceDelay,
		IncorrectAdvanceDelay: IncorrectAdvanceDelay,
	}
}
