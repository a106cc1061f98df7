/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bridge

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

const (
	pairTotal      = 2.0
	directionTotal = 3.0
	boardTotal     = 6.0
	tolerance      = 0.001
)

type RejectKind int

const (
	RejectInvalidSymbol RejectKind = iota
	RejectPairSum
	RejectDirectionalTotal
	RejectBoardTotal
)

func (k RejectKind) String() string {
	switch k {
	case RejectInvalidSymbol:
		return "InvalidSymbol"
	case RejectPairSum:
		return "PairSumMismatch"
	case RejectDirectionalTotal:
		return "DirectionalTotalMismatch"
	case RejectBoardTotal:
		return "BoardTotalMismatch"
	}

	return "?"
}

var ErrInvalidBoard = errors.New("board scores are inconsistent")

// ErrInvalidPairing is returned by Validate for a table naming a team slot
// outside [1, NumTeams].
var ErrInvalidPairing = errors.New("invalid pairing")

// ValidationError describes why a board's results were rejected. Only the
// fields relevant to Kind are set.
type ValidationError struct {
	Kind RejectKind

	// PairSumMismatch
	TeamA int
	TeamB int

	// DirectionalTotalMismatch
	NSTotal float64
	EWTotal float64

	// BoardTotalMismatch
	Total float64
}

func (e *ValidationError) Error() string {
	const trailer = "\n\nPlease re-score the board."

	switch e.Kind {
	case RejectInvalidSymbol:
		return "All teams must have a valid score." + trailer
	case RejectPairSum:
		return fmt.Sprintf("The scores of\nTeams %v and %v must total 2.0.",
			e.TeamA, e.TeamB) + trailer
	case RejectDirectionalTotal:
		return fmt.Sprintf("Pair-scores are incorrect.\nTotal for all N/S's is %v.\nTotal for all E/W's is %v.\nEach direction should have three points.",
			formatPoints(e.NSTotal), formatPoints(e.EWTotal)) + trailer
	case RejectBoardTotal:
		return "Board total is incorrect.\nIt must be exactly 6.0." + trailer
	}

	return "board rejected" + trailer
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidBoard
}

// Validate checks one board's results against the tables it was played at.
// Checks run from most to least specific and the first failure is returned
// as a *ValidationError. Every pairing must name slots in [1, NumTeams];
// otherwise an error matching ErrInvalidPairing is returned.
func Validate(results [NumTeams]Result, pairings []Pairing) error {
	for _, p := range pairings {
		if checkSlot(p.NorthSouth) != nil || checkSlot(p.EastWest) != nil {
			return fmt.Errorf("%w: teams %v and %v", ErrInvalidPairing,
				p.NorthSouth, p.EastWest)
		}
	}

	var values [NumTeams]float64
	for i, r := range results {
		v, ok := r.Value()
		if !ok {
			return &ValidationError{Kind: RejectInvalidSymbol}
		}
		values[i] = v
	}

	for _, p := range pairings {
		sum := values[p.NorthSouth-1] + values[p.EastWest-1]
		if !closeTo(sum, pairTotal) {
			return &ValidationError{Kind: RejectPairSum, TeamA: p.NorthSouth,
				TeamB: p.EastWest}
		}
	}

	nsTotal, ewTotal := 0.0, 0.0
	for _, p := range pairings {
		nsTotal += values[p.NorthSouth-1]
		ewTotal += values[p.EastWest-1]
	}
	if !closeTo(nsTotal, directionTotal) || !closeTo(ewTotal, directionTotal) {
		return &ValidationError{Kind: RejectDirectionalTotal, NSTotal: nsTotal,
			EWTotal: ewTotal}
	}

	total := 0.0
	for _, v := range values {
		total += v
	}
	if !closeTo(total, boardTotal) {
		return &ValidationError{Kind: RejectBoardTotal, Total: total}
	}

	return nil
}

// ValidateBoard validates results against the pairings of the given board.
func ValidateBoard(board int, results [NumTeams]Result) error {
	pairings, err := PairingsForBoard(board)
	if err != nil {
		return err
	}

	return Validate(results, pairings)
}

func closeTo(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func formatPoints(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
