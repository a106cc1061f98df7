/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bridge

import (
	"errors"
	"fmt"
)

const (
	NumTeams       = 6
	NumBoards      = 20
	NumRounds      = 5
	BoardsPerRound = NumBoards / NumRounds
	PairsPerRound  = NumTeams / 2

	// HostSlot is the team that stays in place for every round
	HostSlot = 6
)

var ErrOutOfRange = errors.New("board out of range")

// OutOfRangeError reports a board number outside [1, NumBoards]. It should
// never be reachable from a well behaved caller.
type OutOfRangeError struct {
	Board int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("board %v out of range; must be 1-%v", e.Board, NumBoards)
}

func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// Pairing is one table on a board; both values are 1-based team slots.
type Pairing struct {
	NorthSouth int
	EastWest   int
}

// IsHost reports whether the host team sits at this table
func (p Pairing) IsHost() bool {
	return p.NorthSouth == HostSlot || p.EastWest == HostSlot
}

func (p Pairing) Has(slot int) bool {
	return p.NorthSouth == slot || p.EastWest == slot
}

// Howell movement for 6 teams with team 6 stationary. Each round is played
// over BoardsPerRound consecutive boards.
var roundPairings = [NumRounds][PairsPerRound]Pairing{
	{{2, 4}, {3, 5}, {6, 1}},
	{{3, 4}, {5, 1}, {6, 2}},
	{{1, 2}, {4, 5}, {6, 3}},
	{{1, 3}, {5, 2}, {6, 4}},
	{{2, 3}, {4, 1}, {6, 5}},
}

// RoundForBoard returns the 1-based round the board is played in.
func RoundForBoard(board int) (int, error) {
	if board < 1 || board > NumBoards {
		return 0, &OutOfRangeError{Board: board}
	}

	return (board-1)/BoardsPerRound + 1, nil
}

// PairingsForBoard returns the three tables for the given board in table
// order. The returned slice is a copy and may be modified by the caller.
func PairingsForBoard(board int) ([]Pairing, error) {
	round, err := RoundForBoard(board)
	if err != nil {
		return nil, err
	}
	ret := make([]Pairing, PairsPerRound)
	copy(ret, roundPairings[round-1][:])

	return ret, nil
}

// OpponentOf returns the team slot facing slot on the given board and
// whether slot sits North/South.
func OpponentOf(board int, slot int) (int, bool, error) {
	pairings, err := PairingsForBoard(board)
	if err != nil {
		return 0, false, err
	}
	for _, p := range pairings {
		if p.NorthSouth == slot {
			return p.EastWest, true, nil
		} else if p.EastWest == slot {
			return p.NorthSouth, false, nil
		}
	}

	return 0, false, fmt.Errorf("team %v is not a valid slot", slot)
}
