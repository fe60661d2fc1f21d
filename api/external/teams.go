/* teams.go
 * Contains the team lookup used when reading pick files. Pick forms have used full names, abbreviations and a few
 * spellings of their own over the years so lookups go through an alias table, then an exact match, then a fuzzy match
 * Authors: Zachary Bower
 */

package external

import (
	"slices"
	"strings"

	"playoff-pool/api/shared"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

type TeamRepository struct {
	teams   map[string]shared.Team
	aliases map[string]string
}

func NewTeamRepository(teams map[string]shared.Team, aliases map[string]string) *TeamRepository {
	return &TeamRepository{teams: teams, aliases: aliases}
}

// Find resolves the team named in a pick
// Preconditions: Receives the team as written on the pick form, e.g. "Toronto Maple Leafs", "TOR" or "TB"
// Postconditions: Returns the matching team, or an ErrLookup error if nothing (or more than one team) matches
func (r *TeamRepository) Find(pick string) (shared.Team, error) {
	name := strings.TrimSpace(pick)
	if alias, ok := r.aliases[name]; ok {
		name = alias
	}

	for _, team := range r.teams {
		if name == team.Name || name == team.Short {
			return team, nil
		}
	}

	// Fuzzy match on lower case names, only accepted when it is unambiguous
	lookup := make(map[string]string, len(r.teams))
	names := make([]string, 0, len(r.teams))
	for short, team := range r.teams {
		lower := strings.ToLower(team.Name)
		lookup[lower] = short
		names = append(names, lower)
	}
	slices.Sort(names)
	matches := fuzzy.Find(strings.ToLower(name), names)
	if len(matches) == 1 && name != "" {
		return r.teams[lookup[matches[0]]], nil
	}
	return shared.Team{}, shared.LookupError("team", pick)
}
