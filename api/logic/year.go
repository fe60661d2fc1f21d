/* year.go
 * Contains BuildYear, the single pass that turns a snapshot of series and picks into a YearSummary.
 * It does no I/O so running it twice on the same input gives the same result
 * Authors: Zachary Bower
 */

package logic

import (
	"fmt"

	"playoff-pool/api/bracket"
	"playoff-pool/api/shared"
)

// YearInput is everything the scoring engine needs for one year
type YearInput struct {
	Year     int
	Topology bracket.Topology
	Scoring  bracket.ScoringTable
	Series   []bracket.Series
	Picks    map[int]shared.RoundPicks // round number -> picks
	Teams    map[string]shared.Team
}

// BuildYear scores every round, projects the final and summarizes the year
// Preconditions: Receives a YearInput with a topology that matches the scoring table
// Postconditions: Returns the YearSummary, or an error if any pick or lookup fails. No partial summary is returned
func BuildYear(in YearInput) (YearSummary, error) {
	if err := in.Scoring.Validate(); err != nil {
		return YearSummary{}, fmt.Errorf("year %d: %w", in.Year, err)
	}
	if len(in.Topology.Rounds) != len(in.Scoring) {
		return YearSummary{}, fmt.Errorf("year %d: topology has %d rounds but scoring has %d", in.Year, len(in.Topology.Rounds), len(in.Scoring))
	}

	series := bracket.NewSeriesSet(in.Topology, in.Series)

	rounds := make([]Round, 0, len(in.Topology.Rounds))
	for number := 1; number <= len(in.Topology.Rounds); number++ {
		round, err := buildRound(in, series, number)
		if err != nil {
			return YearSummary{}, fmt.Errorf("year %d round %d: %w", in.Year, number, err)
		}
		rounds = append(rounds, round)
	}

	final, err := series.Get(in.Topology.FinalLetter())
	if err != nil {
		return YearSummary{}, fmt.Errorf("year %d: %w", in.Year, err)
	}
	projections := CalculateProjections(final, rounds)

	return SummarizeYear(in.Year, rounds, projections, in.Teams), nil
}

func buildRound(in YearInput, series bracket.SeriesSet, number int) (Round, error) {
	scoring, err := in.Scoring.ForRound(number)
	if err != nil {
		return Round{}, err
	}
	letters, err := in.Topology.SeriesForRound(number)
	if err != nil {
		return Round{}, err
	}

	roundSeries := make(map[string]bracket.Series, len(letters))
	for _, letter := range letters {
		s, err := series.Get(letter)
		if err != nil {
			return Round{}, err
		}
		roundSeries[letter] = s
	}

	picks := in.Picks[number]
	if picks == nil {
		picks = shared.RoundPicks{}
	}
	results, err := BuildPickResults(scoring, series, letters, picks)
	if err != nil {
		return Round{}, err
	}

	return Round{
		Number:      number,
		Series:      roundSeries,
		PickResults: results,
		Scoring:     scoring,
		Summary:     SummarizeRound(results),
	}, nil
}
