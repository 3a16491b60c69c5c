package play

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/adwitiya/lexio/internal/rounds"
	"github.com/adwitiya/lexio/internal/store"
)

var (
	// ErrSessionOver is returned by operations on a terminal session.
	ErrSessionOver = errors.New("session is over")

	// ErrAlreadyJudged is returned when the current round was already
	// judged and the advance is still pending. It guards against double
	// submission during the feedback delay.
	ErrAlreadyJudged = errors.New("round already judged")
)

// Recorder persists session lifecycle records. store.SessionRepo satisfies
// it. Recording failures never interrupt play.
type Recorder interface {
	Started(ctx context.Context, start store.SessionStart) error
	Completed(ctx context.Context, result store.SessionResult) error
}

// Options configures a Controller.
type Options struct {
	SessionID  string
	DocID      string
	Difficulty string

	// Recorder receives the start and completion records. Optional.
	Recorder Recorder

	// After schedules the round-advance callback. Defaults to
	// time.AfterFunc; tests inject a synchronous hook.
	After func(d time.Duration, fn func())

	// Rand drives scramble reshuffling. Defaults to a time-seeded source.
	Rand *rand.Rand

	Config Config
}

// Controller owns the mutable state of one play session. All operations are
// safe for concurrent use; the TUI event loop and the advance timer both
// call into it.
type Controller struct {
	mu sync.Mutex

	session *rounds.Session
	pool    *rounds.WordPool

	// current is the staged copy of the active round. Scramble rounds get
	// their parts reshuffled here on entry; the payload itself is never
	// mutated.
	current rounds.Round

	state          State
	advancePending bool
	reported       bool

	opts Options
	cfg  Config
	rng  *rand.Rand
}

// NewSequential creates a controller for a sequential round session.
func NewSequential(session *rounds.Session, opts Options) *Controller {
	c := newController(opts)
	c.session = session
	c.stageRoundLocked()
	return c
}

// NewPool creates a controller for a letter-pool session.
func NewPool(pool *rounds.WordPool, opts Options) *Controller {
	c := newController(opts)
	c.pool = pool
	return c
}

func newController(opts Options) *Controller {
	cfg := opts.Config
	if cfg == (Config{}) {
		cfg = DefaultConfig()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	after := opts.After
	if after == nil {
		after = func(d time.Duration, fn func()) { time.AfterFunc(d, fn) }
	}
	opts.After = after

	return &Controller{
		opts: opts,
		cfg:  cfg,
		rng:  rng,
		state: State{
			Lives:            cfg.Lives,
			SecondsRemaining: cfg.ClockSeconds,
			LastJudgment:     JudgmentNone,
		},
	}
}

// Start records the session start. Persistence failures are logged and play
// continues.
func (c *Controller) Start(ctx context.Context) {
	if c.opts.Recorder == nil {
		return
	}
	count := 0
	gameType := ""
	if c.session != nil {
		count = len(c.session.Rounds)
		gameType = c.session.GameType
	} else if c.pool != nil {
		count = len(c.pool.MainWords)
		gameType = c.pool.GameType
	}
	err := c.opts.Recorder.Started(ctx, store.SessionStart{
		SessionID:  c.opts.SessionID,
		DocID:      c.opts.DocID,
		GameType:   gameType,
		Difficulty: c.opts.Difficulty,
		RoundCount: count,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record session start: %v\n", err)
	}
}

// State returns a snapshot of the session state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.state
	s.FoundMain = append([]string(nil), c.state.FoundMain...)
	s.FoundBonus = append([]string(nil), c.state.FoundBonus...)
	return s
}

// CurrentRound returns the staged active round of a sequential session.
func (c *Controller) CurrentRound() (rounds.Round, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil || c.state.Terminal || c.state.RoundIndex >= len(c.session.Rounds) {
		return rounds.Round{}, false
	}
	return c.current, true
}

// Pool returns the pool payload, or nil for sequential sessions.
func (c *Controller) Pool() *rounds.WordPool {
	return c.pool
}

// Title returns the generated session title.
func (c *Controller) Title() string {
	if c.session != nil {
		return c.session.Title
	}
	if c.pool != nil {
		return c.pool.Title
	}
	return ""
}

// Submit judges an answer against the current round (sequential) or the word
// pool. Submissions during the feedback delay fail with ErrAlreadyJudged;
// submissions after termination fail with ErrSessionOver.
func (c *Controller) Submit(ctx context.Context, answer string) (*Outcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Terminal {
		return nil, ErrSessionOver
	}
	if c.pool != nil {
		return c.submitPoolLocked(ctx, answer), nil
	}
	if c.advancePending {
		return nil, ErrAlreadyJudged
	}
	return c.submitSequentialLocked(ctx, answer), nil
}

func (c *Controller) submitSequentialLocked(ctx context.Context, answer string) *Outcome {
	round := c.current
	if rounds.CheckAnswer(&round, answer) {
		points := BasePoints + c.state.Streak*StreakBonus
		c.state.Score += points
		c.state.Streak++
		c.state.LastJudgment = JudgmentCorrect
		c.scheduleAdvanceLocked(ctx, c.cfg.CorrectAdvanceDelay)
		return &Outcome{Verdict: VerdictCorrect, Points: points}
	}

	c.state.Streak = 0
	c.state.LastJudgment = JudgmentIncorrect
	out := &Outcome{Verdict: VerdictIncorrect, Canonical: rounds.CanonicalAnswer(&round)}
	if c.loseLifeLocked(ctx) {
		return out
	}
	c.scheduleAdvanceLocked(ctx, c.cfg.IncorrectAdvanceDelay)
	return out
}

func (c *Controller) submitPoolLocked(ctx context.Context, answer string) *Outcome {
	word := rounds.Normalize(answer)
	if word == "" {
		return &Outcome{Verdict: VerdictInvalid}
	}

	// Duplicates are neither correct nor incorrect: no score, no life, no
	// streak change.
	if containsFold(c.state.FoundMain, word) || containsFold(c.state.FoundBonus, word) {
		return &Outcome{Verdict: VerdictDuplicate}
	}

	// Re-confirm formability independently of the generated word sets, as a
	// defense against stale or incorrect pool data.
	if !rounds.IsFormable(word, c.pool.Letters) {
		return &Outcome{Verdict: VerdictInvalid}
	}

	if containsFold(c.pool.MainWords, word) {
		points := len([]rune(word)) * PoolLetterPoints
		c.state.Score += points
		c.state.Streak++
		c.state.LastJudgment = JudgmentCorrect
		c.state.FoundMain = append(c.state.FoundMain, word)
		c.checkPoolCompleteLocked(ctx)
		return &Outcome{Verdict: VerdictCorrect, Points: points}
	}
	if containsFold(c.pool.BonusWords, word) {
		c.state.Score += BonusWordPoints
		c.state.Streak++
		c.state.LastJudgment = JudgmentCorrect
		c.state.FoundBonus = append(c.state.FoundBonus, word)
		return &Outcome{Verdict: VerdictCorrect, Points: BonusWordPoints}
	}
	// Formable but in neither word set: rejected, nothing changes. Pool
	// sessions end by finding every main word or running out the clock,
	// never by losing lives.
	return &Outcome{Verdict: VerdictInvalid}
}

// Reveal forfeits the current round. For sequential sessions it costs a life
// and resets the streak, surfacing the canonical answer. For pool sessions
// it reveals one not-yet-found main word for a point penalty instead of a
// life; the score never drops below zero.
func (c *Controller) Reveal(ctx context.Context) (*Outcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Terminal {
		return nil, ErrSessionOver
	}
	if c.pool != nil {
		return c.revealPoolLocked(ctx)
	}
	if c.advancePending {
		return nil, ErrAlreadyJudged
	}

	round := c.current
	c.state.Streak = 0
	c.state.LastJudgment = JudgmentIncorrect
	out := &Outcome{Verdict: VerdictIncorrect, Canonical: rounds.CanonicalAnswer(&round)}
	if c.loseLifeLocked(ctx) {
		return out, nil
	}
	c.scheduleAdvanceLocked(ctx, c.cfg.IncorrectAdvanceDelay)
	return out, nil
}

func (c *Controller) revealPoolLocked(ctx context.Context) (*Outcome, error) {
	var revealed string
	for _, w := range c.pool.MainWords {
		if !containsFold(c.state.FoundMain, rounds.Normalize(w)) {
			revealed = rounds.Normalize(w)
			break
		}
	}
	if revealed == "" {
		return nil, ErrSessionOver
	}

	penalty := RevealPenalty
	if penalty > c.state.Score {
		penalty = c.state.Score
	}
	c.state.Score -= penalty
	c.state.Streak = 0
	c.state.FoundMain = append(c.state.FoundMain, revealed)
	c.checkPoolCompleteLocked(ctx)
	return &Outcome{Verdict: VerdictIncorrect, Points: -penalty, RevealedWord: revealed}, nil
}

// Tick advances the session clock by one second. Ticks on a terminal
// session are ignored.
func (c *Controller) Tick(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Terminal || c.state.SecondsRemaining <= 0 {
		return
	}
	c.state.SecondsRemaining--
	if c.state.SecondsRemaining == 0 {
		c.terminateLocked(ctx, ReasonClock)
	}
}

// Abandon terminates the session early, recording the partial result.
func (c *Controller) Abandon(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Terminal {
		return
	}
	c.terminateLocked(ctx, ReasonAbandoned)
}

// loseLifeLocked deducts a life and reports whether that terminated the
// session.
func (c *Controller) loseLifeLocked(ctx context.Context) bool {
	c.state.Lives--
	if c.state.Lives <= 0 {
		c.terminateLocked(ctx, ReasonLives)
		return true
	}
	return false
}

func (c *Controller) checkPoolCompleteLocked(ctx context.Context) {
	if len(c.state.FoundMain) >= len(c.pool.MainWords) {
		c.terminateLocked(ctx, ReasonPool)
	}
}

func (c *Controller) scheduleAdvanceLocked(ctx context.Context, d time.Duration) {
	c.advancePending = true
	c.opts.After(d, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.advanceLocked(ctx)
	})
}

// advanceLocked moves the cursor to the next round once the feedback delay
// elapses. A session that terminated in the meantime stays untouched.
func (c *Controller) advanceLocked(ctx context.Context) {
	if c.state.Terminal || !c.advancePending {
		return
	}
	c.advancePending = false
	c.state.LastJudgment = JudgmentNone
	c.state.RoundIndex++
	if c.state.RoundIndex >= len(c.session.Rounds) {
		c.terminateLocked(ctx, ReasonRounds)
		return
	}
	c.stageRoundLocked()
}

// stageRoundLocked copies the active round and reshuffles scramble-style
// rounds so repeated plays of the same payload do not present the same
// arrangement.
func (c *Controller) stageRoundLocked() {
	if c.session == nil || c.state.RoundIndex >= len(c.session.Rounds) {
		return
	}
	r := c.session.Rounds[c.state.RoundIndex]
	switch r.Kind {
	case rounds.KindFormulaScramble:
		formula := stripSpace(r.Formula)
		r.ScrambledParts = c.reshuffle(r.ScrambledParts, func(arr []string) bool {
			return strings.EqualFold(stripSpace(strings.Join(arr, "")), formula)
		})
	case rounds.KindTimelineTeaser:
		r.ScrambledOrder = c.reshuffle(r.ScrambledOrder, func(arr []string) bool {
			return equalFold(arr, r.CorrectOrder)
		})
	}
	c.current = r
}

// reshuffle returns a shuffled copy of items, retrying to avoid arrangements
// the solved predicate accepts when any other arrangement exists.
func (c *Controller) reshuffle(items []string, solved func([]string) bool) []string {
	if len(items) < 2 {
		return append([]string(nil), items...)
	}
	out := append([]string(nil), items...)
	for range 8 {
		c.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
		if !solved(out) {
			break
		}
	}
	return out
}

// terminateLocked moves the session to Terminal exactly once and reports the
// final result. Later triggers are ignored, so exactly one reason is ever
// recorded.
func (c *Controller) terminateLocked(ctx context.Context, reason Reason) {
	if c.state.Terminal {
		return
	}
	c.state.Terminal = true
	c.state.TerminationReason = reason
	c.advancePending = false

	if c.opts.Recorder == nil || c.reported {
		return
	}
	c.reported = true
	err := c.opts.Recorder.Completed(ctx, store.SessionResult{
		SessionID:         c.opts.SessionID,
		Score:             c.state.Score,
		RoundsCompleted:   c.roundsCompletedLocked(reason),
		MainWordsFound:    len(c.state.FoundMain),
		BonusWordsFound:   len(c.state.FoundBonus),
		TerminationReason: string(reason),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record session result: %v\n", err)
	}
}

func (c *Controller) roundsCompletedLocked(reason Reason) int {
	if c.session == nil {
		return 0
	}
	if reason == ReasonRounds {
		return len(c.session.Rounds)
	}
	return c.state.RoundIndex
}

func containsFold(words []string, normalized string) bool {
	for _, w := range words {
		if strings.EqualFold(w, normalized) {
			return true
		}
	}
	return false
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func equalFold(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !strings.EqualFold(a[i], b[i]) {
			return false
		}
	}
	return true
}
