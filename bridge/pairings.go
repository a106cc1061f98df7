/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bridge

import (
	"fmt"
	"strings"
)

// BuildPairingsOutput formats who plays who on the given board into an
// aligned table. The host team's table is flagged with a trailing '*'.
func BuildPairingsOutput(s *Session, board int) (string, error) {
	pairings, err := PairingsForBoard(board)
	if err != nil {
		return "", err
	}
	round, _ := RoundForBoard(board)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Board %v (Round %v): North/South vs East/West\n\n",
		board, round))

	type row struct{ table, ns, ew string }
	var rows []row
	for idx, p := range pairings {
		table := fmt.Sprintf("%d.", idx+1)
		if p.IsHost() {
			table = fmt.Sprintf("%d.*", idx+1)
		}
		rows = append(rows, row{
			table: table,
			ns:    fmt.Sprintf("%s(#%d)", s.TeamName(p.NorthSouth), p.NorthSouth),
			ew:    fmt.Sprintf("%s(#%d)", s.TeamName(p.EastWest), p.EastWest),
		})
	}

	// Compute column widths
	maxT, maxN, maxE := len("Table"), len("North/South"), len("East/West")
	for _, r := range rows {
		if l := len(r.table); l > maxT {
			maxT = l
		}
		if l := len(r.ns); l > maxN {
			maxN = l
		}
		if l := len(r.ew); l > maxE {
			maxE = l
		}
	}

	sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s\n", maxT, "Table", maxN,
		"North/South", maxE, "East/West"))
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s\n", maxT, r.table,
			maxN, r.ns, maxE, r.ew))
	}

	return sb.String(), nil
}

// BuildBoardScoresOutput formats the full score matrix as a grid with one
// row per team and one column per board. Unscored cells show as '.'.
func BuildBoardScoresOutput(s *Session) string {
	var sb strings.Builder

	maxN := len("Team")
	for slot := 1; slot <= NumTeams; slot++ {
		if l := len(s.TeamName(slot)); l > maxN {
			maxN = l
		}
	}

	sb.WriteString(fmt.Sprintf("%-*s", maxN, "Team"))
	for b := 1; b <= NumBoards; b++ {
		sb.WriteString(fmt.Sprintf(" %2d", b))
	}
	sb.WriteString("\n")

	for slot := 1; slot <= NumTeams; slot++ {
		sb.WriteString(fmt.Sprintf("%-*s", maxN, s.TeamName(slot)))
		for b := 1; b <= NumBoards; b++ {
			cell := string(s.Scores.Get(b, slot))
			if cell == "" {
				cell = "."
			}
			sb.WriteString(fmt.Sprintf(" %2s", cell))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
