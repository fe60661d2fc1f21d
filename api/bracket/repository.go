/* repository.go
 * Contains SeriesSet, the lookup table of series by letter used during a computation pass, and the recursive
 * resolver for which teams can still come out of a series
 * Authors: Zachary Bower
 */

package bracket

import (
	"slices"

	"playoff-pool/api/shared"
)

// SeriesSet maps series letter to its current state
type SeriesSet map[string]Series

// NewSeriesSet indexes the given series by letter and fills any letter in the topology that is missing with an empty series
func NewSeriesSet(t Topology, series []Series) SeriesSet {
	set := make(SeriesSet, len(series))
	for _, s := range series {
		set[s.Letter] = s
	}
	for _, letter := range t.AllLetters() {
		if _, ok := set[letter]; !ok {
			set[letter] = NewSeries(letter)
		}
	}
	return set
}

// Get returns the series for a letter or an ErrLookup error
func (ss SeriesSet) Get(letter string) (Series, error) {
	s, ok := ss[letter]
	if !ok {
		return Series{}, shared.LookupError("series", letter)
	}
	return s, nil
}

// Final returns the Stanley Cup Final series
func (ss SeriesSet) Final(t Topology) (Series, error) {
	return ss.Get(t.FinalLetter())
}

// Round returns the series of a round in bracket order
func (ss SeriesSet) Round(t Topology, round int) ([]Series, error) {
	letters, err := t.SeriesForRound(round)
	if err != nil {
		return nil, err
	}
	out := make([]Series, 0, len(letters))
	for _, letter := range letters {
		s, err := ss.Get(letter)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// FindByTeam returns the series among letters that has team as one of its seeds
func (ss SeriesSet) FindByTeam(letters []string, team string) (Series, bool) {
	for _, letter := range letters {
		s, ok := ss[letter]
		if ok && (s.TopSeed == team || s.BottomSeed == team) {
			return s, true
		}
	}
	return Series{}, false
}

// WinnerResolver answers "which teams could still win series X". Results are memoized so it should only be
// used for one snapshot of the series data
type WinnerResolver struct {
	topology Topology
	series   SeriesSet
	memo     map[string][]string
}

func NewWinnerResolver(t Topology, series SeriesSet) *WinnerResolver {
	return &WinnerResolver{
		topology: t,
		series:   series,
		memo:     make(map[string][]string),
	}
}

// PossibleWinners returns the sorted set of teams that can still win the series
func (r *WinnerResolver) PossibleWinners(letter string) ([]string, error) {
	if cached, ok := r.memo[letter]; ok {
		return cached, nil
	}
	s, err := r.series.Get(letter)
	if err != nil {
		return nil, err
	}

	var teams []string
	if w, ok := s.Winner(); ok {
		teams = []string{w.Team}
	} else {
		parents, hasParents := r.topology.Parents(letter)
		top, err := r.slot(s.TopSeed, parents[0], hasParents)
		if err != nil {
			return nil, err
		}
		bottom, err := r.slot(s.BottomSeed, parents[1], hasParents)
		if err != nil {
			return nil, err
		}
		teams = append(top, bottom...)
		slices.Sort(teams)
		teams = slices.Compact(teams)
	}

	r.memo[letter] = teams
	return teams, nil
}

// slot resolves one side of a series: the seeded team if known, otherwise whatever can come out of the feeder series
func (r *WinnerResolver) slot(seed string, parent string, hasParent bool) ([]string, error) {
	if seed != "" {
		return []string{seed}, nil
	}
	if !hasParent {
		return nil, nil
	}
	parentTeams, err := r.PossibleWinners(parent)
	if err != nil {
		return nil, err
	}
	return slices.Clone(parentTeams), nil
}
