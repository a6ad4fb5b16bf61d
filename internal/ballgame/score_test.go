package ballgame

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackerScore(t *testing.T) {
	tr := NewTracker("Player")

	var seen []int
	tr.OnScoreChanged(func(score int) { seen = append(seen, score) })

	tr.Increment()
	tr.Increment()
	assert.Equal(t, 2, tr.Score())

	tr.Reset()
	assert.Equal(t, 0, tr.Score())
	assert.Equal(t, []int{1, 2, 0}, seen)

	tr.Reset()
	assert.Equal(t, []int{1, 2, 0}, seen, "resetting a zero score does not notify")
}

func TestTrackerHistory(t *testing.T) {
	tr := NewTracker("Player")

	var lens []int
	tr.OnHistoryChanged(func(h []HighScore) { lens = append(lens, len(h)) })

	tr.OnGameOver(3)
	tr.OnGameOver(0)
	tr.Reset()

	assert.Equal(t, []HighScore{{"Player", 3}, {"Player", 0}}, tr.History())
	assert.Equal(t, []int{1, 2}, lens)
}

func TestTrackerHistoryIsCopy(t *testing.T) {
	tr := NewTracker("Player")
	tr.OnGameOver(7)

	h := tr.History()
	h[0].Score = 99

	assert.Equal(t, 7, tr.History()[0].Score)
}
