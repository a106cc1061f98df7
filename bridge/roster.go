/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bridge

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// GuestsEntry is the pseudo-name offered last in name pickers; choosing it
// prompts for a new guest name.
const GuestsEntry = "Guests"

// BaseRoster is the club's fixed list of team names
var BaseRoster = []string{
	"Bordenets",
	"Clarks",
	"Jake & Rick",
	"Leedoms",
	"Rudegeairs",
	"Vaessens",
}

// DefaultTeamName is the placeholder name for an unnamed team slot
func DefaultTeamName(slot int) string {
	return fmt.Sprintf("Team #%v", slot)
}

// IsPlaceholderName reports whether name is one of the default slot names
func IsPlaceholderName(name string) bool {
	for slot := 1; slot <= NumTeams; slot++ {
		if name == DefaultTeamName(slot) {
			return true
		}
	}

	return false
}

func isBaseName(name string) bool {
	return slices.Contains(BaseRoster, name)
}

// GuestRoster holds ad hoc team names. Names are unique, kept sorted and
// never duplicate a BaseRoster name.
type GuestRoster struct {
	names []string
}

// Add inserts name and reports whether it was added. Blank names, base
// roster names, placeholders, the Guests entry and duplicates are ignored.
func (g *GuestRoster) Add(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || name == GuestsEntry || isBaseName(name) ||
		IsPlaceholderName(name) || slices.Contains(g.names, name) {
		return false
	}
	g.names = append(g.names, name)
	sortNames(g.names)

	return true
}

func (g *GuestRoster) Contains(name string) bool {
	return slices.Contains(g.names, name)
}

// Names returns a copy of the guest names in sorted order
func (g *GuestRoster) Names() []string {
	return slices.Clone(g.names)
}

func (g *GuestRoster) Len() int {
	return len(g.names)
}

// AllNames merges the base roster and guests alphabetically and appends the
// Guests entry last.
func (g *GuestRoster) AllNames() []string {
	all := append(slices.Clone(BaseRoster), g.names...)
	sortNames(all)

	return append(all, GuestsEntry)
}

// sortNames orders team names alphabetically regardless of case. A Collator
// is not safe for concurrent use so each call builds its own.
func sortNames(names []string) {
	collate.New(language.English).SortStrings(names)
}
