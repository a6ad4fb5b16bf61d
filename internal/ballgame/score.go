package ballgame

// HighScore is one entry of the session history.
type HighScore struct {
	Label string
	Score int
}

// Tracker keeps the running score and the append-only high-score history.
// It has no display logic; observers subscribe to change notifications.
type Tracker struct {
	label   string
	score   int
	history []HighScore

	scoreObservers   []func(score int)
	historyObservers []func(history []HighScore)
}

// NewTracker creates a tracker that records history entries under label.
func NewTracker(label string) *Tracker {
	return &Tracker{label: label}
}

// Score returns the current score.
func (t *Tracker) Score() int {
	return t.score
}

// History returns a copy of the high-score history, oldest first.
func (t *Tracker) History() []HighScore {
	out := make([]HighScore, len(t.history))
	copy(out, t.history)
	return out
}

// Increment adds one point.
func (t *Tracker) Increment() {
	t.score++
	t.notifyScore()
}

// Reset zeroes the score for a fresh session. The history is kept.
func (t *Tracker) Reset() {
	if t.score == 0 {
		return
	}
	t.score = 0
	t.notifyScore()
}

// OnGameOver appends the final score of a session to the history.
func (t *Tracker) OnGameOver(score int) {
	t.history = append(t.history, HighScore{Label: t.label, Score: score})
	h := t.History()
	for _, fn := range t.historyObservers {
		fn(h)
	}
}

// OnScoreChanged registers a callback run after every score change.
func (t *Tracker) OnScoreChanged(fn func(score int)) {
	t.scoreObservers = append(t.scoreObservers, fn)
}

// OnHistoryChanged registers a callback run after every history append.
func (t *Tracker) OnHistoryChanged(fn func(history []HighScore)) {
	t.historyObservers = append(t.historyObservers, fn)
}

func (t *Tracker) notifyScore() {
	for _, fn := range t.scoreObservers {
		fn(t.score)
	}
}
