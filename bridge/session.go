/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bridge

import (
	"errors"
	"fmt"
	"strings"
)

var ErrIncompleteBoard = errors.New("every team must have a score before the board can be submitted")

// Session is the complete state of one tournament being scored. It is
// owned by a single editor; callers must not share it across goroutines
// without their own locking.
type Session struct {
	EventDate string
	TeamNames [NumTeams]string
	Scores    ScoreMatrix
	Guests    GuestRoster

	// ErrorChecking controls whether SubmitBoard validates results before
	// committing them.
	ErrorChecking bool
}

// NewSession returns an empty tournament for the given event date
func NewSession(eventDate string) *Session {
	s := &Session{
		EventDate:     eventDate,
		ErrorChecking: true,
	}
	for i := range s.TeamNames {
		s.TeamNames[i] = DefaultTeamName(i + 1)
	}

	return s
}

// TeamName returns the display name for the 1-based slot, falling back to
// the default placeholder when unnamed.
func (s *Session) TeamName(slot int) string {
	name := s.TeamNames[slot-1]
	if name == "" {
		return DefaultTeamName(slot)
	}

	return name
}

// SetTeamName renames a slot. Empty names revert to the default. Names
// outside the base roster are added to the guest roster.
func (s *Session) SetTeamName(slot int, name string) error {
	if err := checkSlot(slot); err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" || name == GuestsEntry {
		s.TeamNames[slot-1] = DefaultTeamName(slot)
		return nil
	}
	s.Guests.Add(name)
	s.TeamNames[slot-1] = name

	return nil
}

// AddGuest adds a guest name to the roster without assigning it to a slot
func (s *Session) AddGuest(name string) bool {
	return s.Guests.Add(name)
}

// SubmitBoard commits a full set of results for the 1-based board. When
// ErrorChecking is enabled the results are validated first. On any error
// the score matrix is left unchanged.
func (s *Session) SubmitBoard(board int, results [NumTeams]Result) error {
	pairings, err := PairingsForBoard(board)
	if err != nil {
		return err
	}
	for _, r := range results {
		if r.IsEmpty() {
			return ErrIncompleteBoard
		}
	}
	if s.ErrorChecking {
		if err := Validate(results, pairings); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			if !r.IsValid() {
				return &ValidationError{Kind: RejectInvalidSymbol}
			}
		}
	}
	s.Scores[board-1] = results

	return nil
}

// ClearBoard removes every result from the 1-based board
func (s *Session) ClearBoard(board int) error {
	if _, err := RoundForBoard(board); err != nil {
		return err
	}
	s.Scores[board-1] = [NumTeams]Result{}

	return nil
}

// Load replaces the whole session with the tournament decoded from text.
// On failure the session is left untouched.
func (s *Session) Load(text string) error {
	loaded, err := Deserialize(text)
	if err != nil {
		return err
	}
	*s = *loaded

	return nil
}

// Standings computes the current standings for the session
func (s *Session) Standings() Standings {
	var names [NumTeams]string
	for i := range names {
		names[i] = s.TeamName(i + 1)
	}

	return ComputeStandings(&s.Scores, names)
}

func checkSlot(slot int) error {
	if slot < 1 || slot > NumTeams {
		return fmt.Errorf("team %v out of range; must be 1-%v", slot, NumTeams)
	}

	return nil
}
