package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/terminal"
)

func snapshot() game.Snapshot {
	return game.Snapshot{
		GridSize:  4,
		Body:      []core.Cell{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}},
		Food:      core.Cell{Row: 0, Col: 3},
		Hazard:    core.Cell{Row: 3, Col: 0},
		HasHazard: true,
		Score:     20,
		Length:    3,
		Interval:  260 * time.Millisecond,
	}
}

func TestBuildFrame_ASCII(t *testing.T) {
	f := BuildFrame(snapshot(), GlyphsASCII)

	want := strings.Join([]string{
		". . . * ",
		"o o @ . ",
		". . . . ",
		"x . . . ",
		"Score: 20",
		"Length: 3",
		"Speed: 260ms",
	}, "\n")
	assert.Equal(t, want, f.Text())
}

func TestBuildFrame_EmojiAndNoHazard(t *testing.T) {
	s := snapshot()
	s.HasHazard = false
	f := BuildFrame(s, GlyphsEmoji)

	require.Len(t, f.Lines, 7)
	assert.Equal(t, "⬜⬜⬜🍎", lineText(f.Lines[0]))
	assert.Equal(t, "🐍🐍🐍⬜", lineText(f.Lines[1]))
	assert.Equal(t, "⬜⬜⬜⬜", lineText(f.Lines[3]), "hazard hidden when disabled")
}

func TestBuildFrame_MergesRuns(t *testing.T) {
	f := BuildFrame(snapshot(), GlyphsASCII)
	// Row 2 is all empty: one span
	assert.Len(t, f.Lines[2], 1)
	// Row 1: body run, head, empty
	assert.Len(t, f.Lines[1], 3)
}

type captureDrawer struct {
	frames []terminal.Frame
}

func (c *captureDrawer) Draw(f terminal.Frame) { c.frames = append(c.frames, f) }

func TestRenderer_DrawsEachSnapshot(t *testing.T) {
	out := &captureDrawer{}
	r := NewRenderer(out, GlyphsASCII)

	var sink game.Sink = r
	sink.Frame(snapshot())
	sink.Frame(snapshot())

	require.Len(t, out.frames, 2)
	assert.Equal(t, BuildFrame(snapshot(), GlyphsASCII).Text(), out.frames[0].Text())
}

func TestParseGlyphs(t *testing.T) {
	g, err := ParseGlyphs("")
	require.NoError(t, err)
	assert.Equal(t, "emoji", g.Name)

	g, err = ParseGlyphs("ASCII")
	require.NoError(t, err)
	assert.Equal(t, "ascii", g.Name)

	_, err = ParseGlyphs("braille")
	assert.Error(t, err)
}

func TestGameOverText(t *testing.T) {
	txt := GameOverText(game.Result{Outcome: game.OutcomeSelfCollision, Score: 30})
	assert.Contains(t, txt, "Game Over! You hit yourself!")
	assert.Contains(t, txt, "Final Score: 30")

	txt = GameOverText(game.Result{Outcome: game.OutcomeQuit, Score: 0})
	assert.Contains(t, txt, "Final Score: 0")
}

func TestLeaderboard(t *testing.T) {
	out := Leaderboard("Medium", []int{50, 30, 10}, 2)
	assert.Contains(t, out, "Top 10 Scores (Medium)")
	for _, s := range []string{"50", "30", "10", "Score"} {
		assert.Contains(t, out, s)
	}
	assert.Less(t, strings.Index(out, "50"), strings.Index(out, "30"))

	assert.Contains(t, Leaderboard("Easy", nil, 0), "No scores yet.")
	assert.Empty(t, RankText(0))
	assert.Contains(t, RankText(1), "New #1!")
}

func lineText(l terminal.Line) string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Text)
	}
	return b.String()
}

func TestOtherBoards(t *testing.T) {
	assert.Equal(t, "Other boards: Easy, Hard-Classic\n",
		OtherBoards("Medium", []string{"Easy", "Hard-Classic", "Medium"}))
	assert.Empty(t, OtherBoards("Easy", []string{"Easy"}))
	assert.Empty(t, OtherBoards("Easy", nil))
}
