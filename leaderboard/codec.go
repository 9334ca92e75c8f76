package leaderboard

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// ParseError reports a malformed line in a leaderboard file
type ParseError struct {
	Line int
	Text string
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("leaderboard line %d %q: %s", e.Line, e.Text, e.Msg)
}

// Decode reads the sectioned text form:
//
//	[Easy]
//	120
//	40
//
//	[Hard]
//	30
//
// Blank lines are ignored; a header with no scores yields an empty list
func Decode(r io.Reader) (map[string][]int, error) {
	boards := make(map[string][]int)
	sc := bufio.NewScanner(r)

	current := ""
	inSection := false
	lineNo := 0

	for sc.Scan() {
		lineNo++
		raw := sc.Text()
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "[") {
			if !strings.HasSuffix(line, "]") {
				return nil, &ParseError{Line: lineNo, Text: raw, Msg: "unterminated section header"}
			}
			key := strings.TrimSpace(line[1 : len(line)-1])
			if key == "" {
				return nil, &ParseError{Line: lineNo, Text: raw, Msg: "empty section name"}
			}
			current = key
			inSection = true
			// Repeated header restarts the section
			boards[current] = []int{}
			continue
		}

		if !inSection {
			return nil, &ParseError{Line: lineNo, Text: raw, Msg: "score outside of any section"}
		}
		score, err := strconv.Atoi(line)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Text: raw, Msg: "score is not an integer"}
		}
		boards[current] = append(boards[current], score)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read leaderboard: %w", err)
	}

	return boards, nil
}

// Encode writes boards in sorted key order, one blank line after each section
func Encode(w io.Writer, boards map[string][]int) error {
	keys := make([]string, 0, len(boards))
	for k := range boards {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bw := bufio.NewWriter(w)
	for _, k := range keys {
		fmt.Fprintf(bw, "[%s]\n", k)
		for _, s := range boards[k] {
			bw.WriteString(strconv.Itoa(s))
			bw.WriteByte('\n')
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
