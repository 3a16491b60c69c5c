package play

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/adwitiya/lexio/internal/rounds"
	"github.com/adwitiya/lexio/internal/store"
)

// manualClock captures scheduled advance callbacks so tests control when the
// feedback delay "elapses".
type manualClock struct {
	pending []func()
	delays  []time.Duration
}

func (m *manualClock) after(d time.Duration, fn func()) {
	m.delays = append(m.delays, d)
	m.pending = append(m.pending, fn)
}

func (m *manualClock) fire(t *testing.T) {
	t.Helper()
	if len(m.pending) == 0 {
		t.Fatal("no pending advance to fire")
	}
	fn := m.pending[0]
	m.pending = m.pending[1:]
	fn()
}

// recorderSpy records lifecycle calls and can be made to fail.
type recorderSpy struct {
	started   []store.SessionStart
	completed []store.SessionResult
	fail      bool
}

func (r *recorderSpy) Started(_ context.Context, s store.SessionStart) error {
	r.started = append(r.started, s)
	if r.fail {
		return errors.New("db closed")
	}
	return nil
}

func (r *recorderSpy) Completed(_ context.Context, res store.SessionResult) error {
	r.completed = append(r.completed, res)
	if r.fail {
		return errors.New("db closed")
	}
	return nil
}

func testSession(n int) *rounds.Session {
	s := &rounds.Session{Title: "Test", GameType: "Personalized Practice"}
	for range n {
		s.Rounds = append(s.Rounds, rounds.Round{
			Kind:   rounds.KindTraceOrType,
			Word:   "energy",
			Prompt: "Type the word.",
		})
	}
	return s
}

func testPool() *rounds.WordPool {
	return &rounds.WordPool{
		Title:      "Letter Lab",
		GameType:   "Word Grid",
		Letters:    []string{"c", "a", "t", "s"},
		MainWords:  []string{"cats", "cat"},
		BonusWords: []string{"act", "sat"},
	}
}

func newTestController(session *rounds.Session, clock *manualClock, rec Recorder) *Controller {
	return NewSequential(session, Options{
		SessionID:  "sess-1",
		DocID:      "doc-1",
		Difficulty: "medium",
		Recorder:   rec,
		After:      clock.after,
		Rand:       rand.New(rand.NewSource(1)),
	})
}

func TestCorrectAnswerScoresWithStreak(t *testing.T) {
	clock := &manualClock{}
	c := newTestController(testSession(4), clock, nil)
	ctx := context.Background()

	wantPoints := []int{10, 12, 14} // 10 + streak*2
	total := 0
	for i, want := range wantPoints {
		out, err := c.Submit(ctx, "energy")
		if err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		if out.Verdict != VerdictCorrect {
			t.Fatalf("submit %d: verdict = %s", i, out.Verdict)
		}
		if out.Points != want {
			t.Errorf("submit %d: points = %d, want %d", i, out.Points, want)
		}
		total += want
		clock.fire(t)
	}

	s := c.State()
	if s.Score != total {
		t.Errorf("score = %d, want %d", s.Score, total)
	}
	if s.Streak != 3 {
		t.Errorf("streak = %d, want 3", s.Streak)
	}
}

func TestIncorrectAnswerCostsLifeAndResetsStreak(t *testing.T) {
	clock := &manualClock{}
	c := newTestController(testSession(5), clock, nil)
	ctx := context.Background()

	if _, err := c.Submit(ctx, "energy"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	clock.fire(t)

	out, err := c.Submit(ctx, "wrong")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if out.Verdict != VerdictIncorrect {
		t.Fatalf("verdict = %s", out.Verdict)
	}
	if out.Canonical != "energy" {
		t.Errorf("canonical = %q", out.Canonical)
	}

	s := c.State()
	if s.Lives != DefaultLives-1 {
		t.Errorf("lives = %d, want %d", s.Lives, DefaultLives-1)
	}
	if s.Streak != 0 {
		t.Errorf("streak = %d, want 0", s.Streak)
	}
	if s.Score != 10 {
		t.Errorf("score = %d, want 10 (unchanged)", s.Score)
	}
	if s.LastJudgment != JudgmentIncorrect {
		t.Errorf("judgment = %s", s.LastJudgment)
	}
}

func TestDoubleSubmissionGuard(t *testing.T) {
	clock := &manualClock{}
	c := newTestController(testSession(3), clock, nil)
	ctx := context.Background()

	if _, err := c.Submit(ctx, "energy"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	// The feedback delay has not elapsed; the round is already judged.
	if _, err := c.Submit(ctx, "energy"); !errors.Is(err, ErrAlreadyJudged) {
		t.Fatalf("expected ErrAlreadyJudged, got %v", err)
	}
	if _, err := c.Reveal(ctx); !errors.Is(err, ErrAlreadyJudged) {
		t.Fatalf("reveal: expected ErrAlreadyJudged, got %v", err)
	}

	clock.fire(t)
	if _, err := c.Submit(ctx, "energy"); err != nil {
		t.Fatalf("submit after advance: %v", err)
	}

	s := c.State()
	if s.Score != 10+12 {
		t.Errorf("score = %d, want 22", s.Score)
	}
}

func TestLivesExhaustedTerminates(t *testing.T) {
	clock := &manualClock{}
	rec := &recorderSpy{}
	c := newTestController(testSession(10), clock, rec)
	ctx := context.Background()

	for i := 0; i < DefaultLives; i++ {
		if _, err := c.Submit(ctx, "wrong"); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		if i < DefaultLives-1 {
			clock.fire(t)
		}
	}

	s := c.State()
	if !s.Terminal {
		t.Fatal("expected terminal state")
	}
	if s.TerminationReason != ReasonLives {
		t.Errorf("reason = %s, want %s", s.TerminationReason, ReasonLives)
	}
	if _, err := c.Submit(ctx, "energy"); !errors.Is(err, ErrSessionOver) {
		t.Fatalf("expected ErrSessionOver, got %v", err)
	}
	if len(rec.completed) != 1 {
		t.Fatalf("completed records = %d, want 1", len(rec.completed))
	}
	if rec.completed[0].TerminationReason != string(ReasonLives) {
		t.Errorf("recorded reason = %q", rec.completed[0].TerminationReason)
	}
}

func TestClockExhaustedTerminates(t *testing.T) {
	clock := &manualClock{}
	rec := &recorderSpy{}
	c := newTestController(testSession(3), clock, rec)
	ctx := context.Background()

	for i := 0; i < DefaultClockSeconds; i++ {
		c.Tick(ctx)
	}

	s := c.State()
	if !s.Terminal || s.TerminationReason != ReasonClock {
		t.Fatalf("state = %+v", s)
	}

	// Further ticks on a terminal session change nothing.
	c.Tick(ctx)
	if got := c.State().SecondsRemaining; got != 0 {
		t.Errorf("seconds = %d, want 0", got)
	}
	if len(rec.completed) != 1 {
		t.Errorf("completed records = %d, want 1", len(rec.completed))
	}
}

func TestTerminationReasonIsExclusive(t *testing.T) {
	clock := &manualClock{}
	rec := &recorderSpy{}
	c := newTestController(testSession(10), clock, rec)
	ctx := context.Background()

	// Run the clock down to one second, then lose the last life on the
	// same "moment" the clock would expire.
	for i := 0; i < DefaultClockSeconds-1; i++ {
		c.Tick(ctx)
	}
	for i := 0; i < DefaultLives; i++ {
		if _, err := c.Submit(ctx, "wrong"); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		if i < DefaultLives-1 {
			clock.fire(t)
		}
	}
	c.Tick(ctx)

	s := c.State()
	if s.TerminationReason != ReasonLives {
		t.Errorf("reason = %s, want %s (first trigger wins)", s.TerminationReason, ReasonLives)
	}
	if len(rec.completed) != 1 {
		t.Errorf("completed records = %d, want 1", len(rec.completed))
	}
}

func TestRoundsExhaustedTerminates(t *testing.T) {
	clock := &manualClock{}
	rec := &recorderSpy{}
	c := newTestController(testSession(2), clock, rec)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := c.Submit(ctx, "energy"); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		clock.fire(t)
	}

	s := c.State()
	if !s.Terminal || s.TerminationReason != ReasonRounds {
		t.Fatalf("state = %+v", s)
	}
	if len(rec.completed) != 1 {
		t.Fatalf("completed records = %d, want 1", len(rec.completed))
	}
	if rec.completed[0].RoundsCompleted != 2 {
		t.Errorf("rounds completed = %d, want 2", rec.completed[0].RoundsCompleted)
	}
	if rec.completed[0].Score != 22 {
		t.Errorf("recorded score = %d, want 22", rec.completed[0].Score)
	}
}

func TestRevealCostsLifeAndSurfacesAnswer(t *testing.T) {
	clock := &manualClock{}
	c := newTestController(testSession(3), clock, nil)
	ctx := context.Background()

	// Build a streak first so the reset is observable.
	if _, err := c.Submit(ctx, "energy"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	clock.fire(t)

	out, err := c.Reveal(ctx)
	if err != nil {
		t.Fatalf("reveal: %v", err)
	}
	if out.Canonical != "energy" {
		t.Errorf("canonical = %q", out.Canonical)
	}

	s := c.State()
	if s.Lives != DefaultLives-1 {
		t.Errorf("lives = %d, want %d", s.Lives, DefaultLives-1)
	}
	if s.Streak != 0 {
		t.Errorf("streak = %d, want 0", s.Streak)
	}
}

func TestAdvanceDelaysDistinguishJudgment(t *testing.T) {
	clock := &manualClock{}
	c := newTestController(testSession(3), clock, nil)
	ctx := context.Background()

	if _, err := c.Submit(ctx, "energy"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	clock.fire(t)
	if _, err := c.Submit(ctx, "wrong"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if len(clock.delays) != 2 {
		t.Fatalf("delays = %v", clock.delays)
	}
	if clock.delays[0] != CorrectAdvanceDelay {
		t.Errorf("correct delay = %v, want %v", clock.delays[0], CorrectAdvanceDelay)
	}
	if clock.delays[1] != IncorrectAdvanceDelay {
		t.Errorf("incorrect delay = %v, want %v", clock.delays[1], IncorrectAdvanceDelay)
	}
}

func TestScrambledRoundsRestagedOnEntry(t *testing.T) {
	session := &rounds.Session{
		Title:    "Timeline",
		GameType: "Timeline Teaser",
		Rounds: []rounds.Round{
			{
				Kind:           rounds.KindTimelineTeaser,
				CorrectOrder:   []string{"Stone Age", "Roman Empire", "Industrial Revolution", "World War II"},
				ScrambledOrder: []string{"World War II", "Stone Age", "Roman Empire", "Industrial Revolution"},
				Prompt:         "Arrange the events in the correct order.",
			},
		},
	}
	clock := &manualClock{}
	c := newTestController(session, clock, nil)

	staged, ok := c.CurrentRound()
	if !ok {
		t.Fatal("expected current round")
	}
	if equalFold(staged.ScrambledOrder, staged.CorrectOrder) {
		t.Error("staged arrangement must not equal the correct order")
	}

	// Same multiset of items, different arrangement.
	seen := map[string]int{}
	for _, it := range staged.ScrambledOrder {
		seen[it]++
	}
	for _, it := range staged.CorrectOrder {
		seen[it]--
	}
	for it, n := range seen {
		if n != 0 {
			t.Errorf("item %q count mismatch", it)
		}
	}
}

func TestFormulaScrambleNotStagedAssembled(t *testing.T) {
	session := &rounds.Session{
		Title:    "Formulas",
		GameType: "Formula Scramble",
		Rounds: []rounds.Round{
			{
				Kind:    rounds.KindFormulaScramble,
				Formula: "E = mc^2",
				// The backend left the parts in assembled order.
				ScrambledParts: []string{"E", "=", "mc^2"},
				Prompt:         "Assemble the formula.",
			},
		},
	}
	clock := &manualClock{}
	c := newTestController(session, clock, nil)

	staged, ok := c.CurrentRound()
	if !ok {
		t.Fatal("expected current round")
	}
	joined := stripSpace(strings.Join(staged.ScrambledParts, ""))
	if strings.EqualFold(joined, stripSpace(staged.Formula)) {
		t.Errorf("staged parts %v assemble into the formula", staged.ScrambledParts)
	}
}

func TestPersistenceFailureDoesNotInterruptPlay(t *testing.T) {
	clock := &manualClock{}
	rec := &recorderSpy{fail: true}
	c := newTestController(testSession(1), clock, rec)
	ctx := context.Background()

	c.Start(ctx)
	if len(rec.started) != 1 {
		t.Fatalf("started records = %d, want 1", len(rec.started))
	}

	out, err := c.Submit(ctx, "energy")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if out.Verdict != VerdictCorrect {
		t.Fatalf("verdict = %s", out.Verdict)
	}
	clock.fire(t)

	s := c.State()
	if !s.Terminal || s.TerminationReason != ReasonRounds {
		t.Fatalf("state = %+v", s)
	}
	if len(rec.completed) != 1 {
		t.Errorf("completed records = %d, want 1", len(rec.completed))
	}
}

func TestAbandonRecordsPartialResult(t *testing.T) {
	clock := &manualClock{}
	rec := &recorderSpy{}
	c := newTestController(testSession(5), clock, rec)
	ctx := context.Background()

	if _, err := c.Submit(ctx, "energy"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	clock.fire(t)
	c.Abandon(ctx)

	s := c.State()
	if !s.Terminal || s.TerminationReason != ReasonAbandoned {
		t.Fatalf("state = %+v", s)
	}
	if len(rec.completed) != 1 {
		t.Fatalf("completed records = %d, want 1", len(rec.completed))
	}
	if rec.completed[0].Score != 10 {
		t.Errorf("recorded score = %d, want 10", rec.completed[0].Score)
	}

	// Abandoning twice records nothing extra.
	c.Abandon(ctx)
	if len(rec.completed) != 1 {
		t.Errorf("completed records = %d, want 1 after double abandon", len(rec.completed))
	}
}

func newTestPoolController(rec Recorder) *Controller {
	return NewPool(testPool(), Options{
		SessionID:  "sess-1",
		DocID:      "doc-1",
		Difficulty: "easy",
		Recorder:   rec,
		After:      (&manualClock{}).after,
		Rand:       rand.New(rand.NewSource(1)),
	})
}

func TestPoolMainWordScoresByLength(t *testing.T) {
	c := newTestPoolController(nil)
	ctx := context.Background()

	out, err := c.Submit(ctx, "cat")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if out.Verdict != VerdictCorrect || out.Points != 30 {
		t.Errorf("outcome = %+v, want correct/30", out)
	}

	out, err = c.Submit(ctx, "act")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if out.Verdict != VerdictCorrect || out.Points != BonusWordPoints {
		t.Errorf("bonus outcome = %+v, want correct/%d", out, BonusWordPoints)
	}

	s := c.State()
	if s.Score != 35 {
		t.Errorf("score = %d, want 35", s.Score)
	}
}

func TestPoolDuplicateIsNoOp(t *testing.T) {
	c := newTestPoolController(nil)
	ctx := context.Background()

	if _, err := c.Submit(ctx, "cat"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	before := c.State()

	out, err := c.Submit(ctx, "CAT")
	if err != nil {
		t.Fatalf("submit duplicate: %v", err)
	}
	if out.Verdict != VerdictDuplicate {
		t.Fatalf("verdict = %s", out.Verdict)
	}

	after := c.State()
	if after.Score != before.Score || after.Lives != before.Lives || after.Streak != before.Streak {
		t.Errorf("duplicate changed state: %+v vs %+v", before, after)
	}
}

func TestPoolUnformableWordIsInvalid(t *testing.T) {
	c := newTestPoolController(nil)
	ctx := context.Background()

	// "star" needs an 'r' the pool does not contain, even if stale pool
	// data were to list it.
	out, err := c.Submit(ctx, "star")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if out.Verdict != VerdictInvalid {
		t.Fatalf("verdict = %s", out.Verdict)
	}

	s := c.State()
	if s.Lives != DefaultLives {
		t.Errorf("lives = %d, want %d (invalid words carry no penalty)", s.Lives, DefaultLives)
	}
	if s.Score != 0 {
		t.Errorf("score = %d, want 0", s.Score)
	}
}

func TestPoolUnknownWordCarriesNoPenalty(t *testing.T) {
	c := newTestPoolController(nil)
	ctx := context.Background()

	// Build a streak so any reset would be observable.
	if _, err := c.Submit(ctx, "cat"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	before := c.State()

	// "cast" is formable from the letters but in neither word set;
	// "dog" is not formable at all. Both are rejected, nothing changes.
	for _, word := range []string{"cast", "dog"} {
		out, err := c.Submit(ctx, word)
		if err != nil {
			t.Fatalf("submit %q: %v", word, err)
		}
		if out.Verdict != VerdictInvalid {
			t.Fatalf("%q: verdict = %s", word, out.Verdict)
		}
	}

	after := c.State()
	if after.Lives != before.Lives || after.Streak != before.Streak || after.Score != before.Score {
		t.Errorf("invalid words changed state: %+v vs %+v", before, after)
	}
}

func TestPoolRevealPenaltyFloorsAtZero(t *testing.T) {
	c := newTestPoolController(nil)
	ctx := context.Background()

	out, err := c.Reveal(ctx)
	if err != nil {
		t.Fatalf("reveal: %v", err)
	}
	if out.RevealedWord != "cats" {
		t.Errorf("revealed = %q, want first unfound main word", out.RevealedWord)
	}

	s := c.State()
	if s.Score != 0 {
		t.Errorf("score = %d, want 0 (never negative)", s.Score)
	}
	if s.Lives != DefaultLives {
		t.Errorf("lives = %d, want %d (pool reveal costs points, not a life)", s.Lives, DefaultLives)
	}
}

func TestPoolCompletesWhenAllMainWordsFound(t *testing.T) {
	rec := &recorderSpy{}
	c := newTestPoolController(rec)
	ctx := context.Background()

	if _, err := c.Submit(ctx, "cats"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := c.Submit(ctx, "cat"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	s := c.State()
	if !s.Terminal || s.TerminationReason != ReasonPool {
		t.Fatalf("state = %+v", s)
	}
	if len(rec.completed) != 1 {
		t.Fatalf("completed records = %d, want 1", len(rec.completed))
	}
	if rec.completed[0].MainWordsFound != 2 {
		t.Errorf("main words found = %d, want 2", rec.completed[0].MainWordsFound)
	}
	if rec.completed[0].Score != 70 {
		t.Errorf("score = %d, want 70", rec.completed[0].Score)
	}
}
