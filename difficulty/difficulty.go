// Package difficulty maps the player's menu choice to a starting tick interval and a leaderboard key.
package difficulty

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Tier is a named starting speed
type Tier struct {
	Choice   int
	Name     string // leaderboard key
	Interval time.Duration
}

var (
	Easy   = Tier{Choice: 1, Name: "Easy", Interval: 500 * time.Millisecond}
	Medium = Tier{Choice: 2, Name: "Medium", Interval: 300 * time.Millisecond}
	Hard   = Tier{Choice: 3, Name: "Hard", Interval: 150 * time.Millisecond}
)

// Tiers lists the menu in order
var Tiers = []Tier{Easy, Medium, Hard}

// Select maps a menu choice to a tier; anything unrecognized is Easy
func Select(choice int) Tier {
	switch choice {
	case 2:
		return Medium
	case 3:
		return Hard
	default:
		return Easy
	}
}

// ByName resolves a flag value: a menu number or a tier name, case-insensitive
func ByName(name string) (Tier, bool) {
	name = strings.TrimSpace(name)
	if n, err := strconv.Atoi(name); err == nil {
		for _, t := range Tiers {
			if t.Choice == n {
				return t, true
			}
		}
		return Easy, false
	}
	for _, t := range Tiers {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return Easy, false
}

// Prompt prints the menu to w and reads one integer from r
// Unreadable input falls back to Easy, never an error
func Prompt(r io.Reader, w io.Writer) Tier {
	fmt.Fprintln(w, "Choose Difficulty:")
	for _, t := range Tiers {
		fmt.Fprintf(w, "%d. %-7s(%dms)\n", t.Choice, t.Name, t.Interval.Milliseconds())
	}
	fmt.Fprint(w, "Enter choice: ")

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	if !sc.Scan() {
		return Easy
	}
	choice, err := strconv.Atoi(sc.Text())
	if err != nil {
		return Easy
	}
	return Select(choice)
}
