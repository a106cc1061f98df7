/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bridge

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Standing is one team's row in the standings table
type Standing struct {
	Rank       int
	Slot       int
	TeamName   string
	Total      float64
	Percentage int
	Tied       bool
}

// Place renders the rank as an English ordinal, e.g. "2nd (Tie)"
func (s Standing) Place() string {
	place := Ordinal(s.Rank)
	if s.Tied {
		place += " (Tie)"
	}

	return place
}

// Standings is a ranked view over a score matrix. It is derived on demand
// and never persisted.
type Standings struct {
	Rows []Standing

	// BoardsScored is the number of boards with at least one result
	BoardsScored int
	// AllZero is set when every team's total is zero
	AllZero bool
	// Final is set once every board is fully scored
	Final bool
}

// ComputeStandings ranks the teams by total score. Percentages use twice
// the number of boards with any result as the denominator for every team.
// Teams with equal totals share a rank and keep slot order.
func ComputeStandings(matrix *ScoreMatrix, names [NumTeams]string) Standings {
	ret := Standings{
		BoardsScored: matrix.BoardsScored(),
		Final:        matrix.Complete(),
		AllZero:      true,
	}

	for slot := 1; slot <= NumTeams; slot++ {
		total := matrix.TeamTotal(slot)
		pct := 0
		if ret.BoardsScored > 0 {
			pct = int(math.Round(total / float64(2*ret.BoardsScored) * 100))
		}
		if total != 0 {
			ret.AllZero = false
		}
		ret.Rows = append(ret.Rows, Standing{
			Slot:       slot,
			TeamName:   names[slot-1],
			Total:      total,
			Percentage: pct,
		})
	}

	sort.SliceStable(ret.Rows, func(i, j int) bool {
		return ret.Rows[i].Total > ret.Rows[j].Total
	})

	groupStart := 0
	for idx := range ret.Rows {
		if idx == 0 || ret.Rows[idx].Total < ret.Rows[idx-1].Total {
			groupStart = idx
		}
		ret.Rows[idx].Rank = groupStart + 1
	}
	for idx := range ret.Rows {
		tiedPrev := idx > 0 && ret.Rows[idx].Rank == ret.Rows[idx-1].Rank
		tiedNext := idx < len(ret.Rows)-1 &&
			ret.Rows[idx].Rank == ret.Rows[idx+1].Rank
		ret.Rows[idx].Tied = tiedPrev || tiedNext
	}

	return ret
}

// Ordinal returns n with its English ordinal suffix
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}

	return fmt.Sprintf("%d%s", n, suffix)
}

// BuildStandingsOutput formats the session's standings into an aligned
// text table. Before any points are recorded only the team names are
// listed.
func BuildStandingsOutput(s *Session) string {
	st := s.Standings()

	var sb strings.Builder
	if st.Final {
		sb.WriteString("Final Standings")
	} else {
		sb.WriteString("Standings")
	}
	if s.EventDate != "" {
		sb.WriteString(fmt.Sprintf(" for %v", FormatLongDate(s.EventDate)))
	}
	sb.WriteString(":\n\n")

	if st.AllZero {
		for slot := 1; slot <= NumTeams; slot++ {
			sb.WriteString(fmt.Sprintf("%s\n", s.TeamName(slot)))
		}
		return sb.String()
	}

	type row struct{ place, team, score string }
	var rows []row
	for _, r := range st.Rows {
		rows = append(rows, row{
			place: r.Place(),
			team:  r.TeamName,
			score: fmt.Sprintf("%v (%v%%)", formatPoints(r.Total), r.Percentage),
		})
	}

	// Compute column widths
	maxP, maxT, maxS := len("Place"), len("Team"), len("Score")
	for _, r := range rows {
		if l := len(r.place); l > maxP {
			maxP = l
		}
		if l := len(r.team); l > maxT {
			maxT = l
		}
		if l := len(r.score); l > maxS {
			maxS = l
		}
	}

	sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s\n", maxP, "Place", maxT,
		"Team", maxS, "Score"))
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s\n", maxP, r.place,
			maxT, r.team, maxS, r.score))
	}

	return sb.String()
}
