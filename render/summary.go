package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lixenwraith/vi-snake/game"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	reasonStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	headerStyle = cellStyle.Bold(true).Foreground(lipgloss.Color("10"))
	markStyle   = cellStyle.Bold(true).Foreground(lipgloss.Color("11"))
)

// GameOverText is the reason line followed by the final score
func GameOverText(r game.Result) string {
	var b strings.Builder
	if reason := r.Outcome.Reason(); reason != "" {
		b.WriteString(reasonStyle.Render(reason))
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "Final Score: %d\n", r.Score)
	return b.String()
}

// RankText announces a placement on the leaderboard, empty when the score did not place
func RankText(rank int) string {
	if rank <= 0 {
		return ""
	}
	return titleStyle.Render(fmt.Sprintf("New #%d!", rank))
}

// Leaderboard renders the top scores for key as a table
// highlight is the 1-based rank to mark, 0 for none
func Leaderboard(key string, scores []int, highlight int) string {
	title := titleStyle.Render(fmt.Sprintf("🏆 Top 10 Scores (%s):", key))
	if len(scores) == 0 {
		return title + "\nNo scores yet.\n"
	}

	rows := make([][]string, 0, len(scores))
	for i, s := range scores {
		rows = append(rows, []string{strconv.Itoa(i + 1), strconv.Itoa(s)})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		BorderHeader(true).
		BorderRow(false).
		Headers("#", "Score").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row+1 == highlight:
				return markStyle
			default:
				return cellStyle
			}
		})

	return title + "\n" + t.Render() + "\n"
}

// OtherBoards lists the leaderboard keys besides current, empty when there are none
func OtherBoards(current string, keys []string) string {
	others := make([]string, 0, len(keys))
	for _, k := range keys {
		if k != current {
			others = append(others, k)
		}
	}
	if len(others) == 0 {
		return ""
	}
	return "Other boards: " + strings.Join(others, ", ") + "\n"
}
