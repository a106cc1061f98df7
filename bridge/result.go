/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bridge

import (
	"fmt"
	"strings"
)

// Result is a team's matchpoint award on one board. The empty Result means
// the board has not been scored for that team.
type Result string

const (
	ResultNone       Result = ""
	ResultZero       Result = "0"
	ResultHalf       Result = "x"
	ResultOne        Result = "1"
	ResultOneAndHalf Result = "1x"
	ResultTwo        Result = "2"
)

// AllResults lists the valid symbols in ascending order of value
var AllResults = []Result{ResultZero, ResultHalf, ResultOne, ResultOneAndHalf,
	ResultTwo}

var resultValues = map[Result]float64{
	ResultZero:       0,
	ResultHalf:       0.5,
	ResultOne:        1,
	ResultOneAndHalf: 1.5,
	ResultTwo:        2,
}

// Value returns the numeric value of r and false if r is not one of the
// five valid symbols (including the empty Result).
func (r Result) Value() (float64, bool) {
	v, ok := resultValues[r]
	return v, ok
}

func (r Result) IsValid() bool {
	_, ok := resultValues[r]
	return ok
}

func (r Result) IsEmpty() bool {
	return r == ResultNone
}

// fileForm returns the on-disk encoding of r
func (r Result) fileForm() string {
	switch r {
	case ResultHalf:
		return "0.5"
	case ResultOneAndHalf:
		return "1.5"
	}

	return string(r)
}

// resultFromFile converts an on-disk value back to its symbol. Unknown
// values pass through unchanged.
func resultFromFile(s string) Result {
	switch s {
	case "0.5":
		return ResultHalf
	case "1.5":
		return ResultOneAndHalf
	}

	return Result(s)
}

// ParseResult accepts either the symbolic or on-disk form of a result.
func ParseResult(s string) (Result, error) {
	r := resultFromFile(s)
	if !r.IsValid() {
		return ResultNone, fmt.Errorf("invalid result %q; must be one of 0, x, 1, 1x, 2",
			s)
	}

	return r, nil
}

// ParseResults parses one board's results, listed in team slot order and
// separated by commas or whitespace.
func ParseResults(s string) ([NumTeams]Result, error) {
	var ret [NumTeams]Result
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != NumTeams {
		return ret, fmt.Errorf("expected %v results, got %v", NumTeams,
			len(fields))
	}
	for idx, f := range fields {
		r, err := ParseResult(f)
		if err != nil {
			return ret, fmt.Errorf("team %v: %w", idx+1, err)
		}
		ret[idx] = r
	}

	return ret, nil
}

// ScoreMatrix holds every result indexed by board then team slot, both
// 0-based.
type ScoreMatrix [NumBoards][NumTeams]Result

// Get returns the result for the 1-based board and team slot
func (m *ScoreMatrix) Get(board int, slot int) Result {
	return m[board-1][slot-1]
}

// BoardScored reports whether any team has a result on the 1-based board
func (m *ScoreMatrix) BoardScored(board int) bool {
	for _, r := range m[board-1] {
		if !r.IsEmpty() {
			return true
		}
	}

	return false
}

// BoardComplete reports whether every team has a result on the 1-based board
func (m *ScoreMatrix) BoardComplete(board int) bool {
	for _, r := range m[board-1] {
		if r.IsEmpty() {
			return false
		}
	}

	return true
}

func (m *ScoreMatrix) BoardsScored() int {
	count := 0
	for b := 1; b <= NumBoards; b++ {
		if m.BoardScored(b) {
			count++
		}
	}

	return count
}

// Complete reports whether every cell in the matrix has a result
func (m *ScoreMatrix) Complete() bool {
	for b := 1; b <= NumBoards; b++ {
		if !m.BoardComplete(b) {
			return false
		}
	}

	return true
}

// TeamTotal sums the values of all non-empty results for the team slot
func (m *ScoreMatrix) TeamTotal(slot int) float64 {
	total := 0.0
	for b := 0; b < NumBoards; b++ {
		if v, ok := m[b][slot-1].Value(); ok {
			total += v
		}
	}

	return total
}
