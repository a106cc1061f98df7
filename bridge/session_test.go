/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bridge

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewSession(t *testing.T) {
	s := NewSession("10/19/2026")
	for slot := 1; slot <= NumTeams; slot++ {
		if got := s.TeamName(slot); got != DefaultTeamName(slot) {
			t.Errorf("TeamName(%d) = %q; want %q", slot, got, DefaultTeamName(slot))
		}
	}
	if !s.ErrorChecking {
		t.Errorf("error checking should default on")
	}
	if s.Scores.BoardsScored() != 0 {
		t.Errorf("new session has scored boards")
	}
}

func TestSubmitBoard(t *testing.T) {
	s := NewSession("10/19/2026")
	good := results("2", "1x", "1x", "x", "x", "0")

	if err := s.SubmitBoard(3, good); err != nil {
		t.Fatalf("SubmitBoard error: %v", err)
	}
	if s.Scores[2] != good {
		t.Errorf("board 3 = %v; want %v", s.Scores[2], good)
	}

	// a rejected resubmission keeps the committed row
	err := s.SubmitBoard(3, results("0", "2", "1", "1", "1", "1"))
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Kind != RejectPairSum {
		t.Fatalf("got %v; want PairSumMismatch", err)
	}
	if s.Scores[2] != good {
		t.Errorf("rejected submit modified board 3: %v", s.Scores[2])
	}
}

func TestSubmitBoardIncomplete(t *testing.T) {
	s := NewSession("10/19/2026")
	err := s.SubmitBoard(1, results("1", "1", "1", "1", "1"))
	if !errors.Is(err, ErrIncompleteBoard) {
		t.Fatalf("got %v; want ErrIncompleteBoard", err)
	}
	if s.Scores.BoardScored(1) {
		t.Errorf("incomplete submit modified board 1")
	}
}

func TestSubmitBoardWithoutErrorChecking(t *testing.T) {
	s := NewSession("10/19/2026")
	s.ErrorChecking = false

	lopsided := results("2", "2", "2", "2", "2", "2")
	if err := s.SubmitBoard(1, lopsided); err != nil {
		t.Fatalf("SubmitBoard error: %v", err)
	}
	if s.Scores[0] != lopsided {
		t.Errorf("board 1 = %v; want %v", s.Scores[0], lopsided)
	}

	// symbols are still checked
	err := s.SubmitBoard(2, results("2", "2", "2", "2", "2", "3"))
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Kind != RejectInvalidSymbol {
		t.Fatalf("got %v; want InvalidSymbol", err)
	}
}

func TestSubmitBoardOutOfRange(t *testing.T) {
	s := NewSession("10/19/2026")
	err := s.SubmitBoard(0, results("1", "1", "1", "1", "1", "1"))
	if !errors.Is(err, ErrOutOfRange) {
		t.Errorf("got %v; want ErrOutOfRange", err)
	}
}

func TestClearBoard(t *testing.T) {
	s := NewSession("10/19/2026")
	s.SubmitBoard(20, results("1", "1", "1", "1", "1", "1"))

	if err := s.ClearBoard(20); err != nil {
		t.Fatalf("ClearBoard error: %v", err)
	}
	if s.Scores.BoardScored(20) {
		t.Errorf("board 20 still scored after clear")
	}
	if err := s.ClearBoard(21); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("ClearBoard(21) = %v; want ErrOutOfRange", err)
	}
}

func TestSetTeamName(t *testing.T) {
	s := NewSession("10/19/2026")

	cases := []struct {
		slot int
		name string
		want string
	}{
		{1, "Clarks", "Clarks"},
		{2, "  The Newcomers ", "The Newcomers"},
		{3, "", "Team #3"},
		{4, GuestsEntry, "Team #4"},
		{5, "Zed & Co", "Zed & Co"},
	}
	for _, c := range cases {
		if err := s.SetTeamName(c.slot, c.name); err != nil {
			t.Fatalf("SetTeamName(%d, %q) error: %v", c.slot, c.name, err)
		}
		if got := s.TeamName(c.slot); got != c.want {
			t.Errorf("TeamName(%d) = %q; want %q", c.slot, got, c.want)
		}
	}
	if diff := cmp.Diff([]string{"The Newcomers", "Zed & Co"}, s.Guests.Names()); diff != "" {
		t.Errorf("guests mismatch (-want +got):\n%s", diff)
	}
	if err := s.SetTeamName(7, "Clarks"); err == nil {
		t.Errorf("SetTeamName(7) should fail")
	}
}

func TestGuestRoster(t *testing.T) {
	var g GuestRoster

	added := []struct {
		name string
		want bool
	}{
		{"Zimmers", true},
		{"Adams", true},
		{"Zimmers", false},
		{"Clarks", false},
		{"Team #2", false},
		{GuestsEntry, false},
		{"   ", false},
		{"bob", true},
	}
	for _, a := range added {
		if got := g.Add(a.name); got != a.want {
			t.Errorf("Add(%q) = %v; want %v", a.name, got, a.want)
		}
	}

	if diff := cmp.Diff([]string{"Adams", "bob", "Zimmers"}, g.Names()); diff != "" {
		t.Errorf("Names mismatch (-want +got):\n%s", diff)
	}
	want := []string{"Adams", "bob", "Bordenets", "Clarks", "Jake & Rick",
		"Leedoms", "Rudegeairs", "Vaessens", "Zimmers", GuestsEntry}
	if diff := cmp.Diff(want, g.AllNames()); diff != "" {
		t.Errorf("AllNames mismatch (-want +got):\n%s", diff)
	}
}
