/* projection.go
 * Contains the projection table for the final: for each finalist and each series length, who would finish 1st, 2nd,
 * 3rd and last if the final ended that way
 * Authors: Zachary Bower
 */

package logic

import (
	"slices"
	"strings"

	"playoff-pool/api/bracket"
)

// CalculateProjections builds the projection table for the final series
// Preconditions: Receives the final series and all rounds with their summaries and pick results. The last round must be the final
// Postconditions: Returns games -> team -> ProjectionCell. If the finalists are not known a placeholder table is returned
func CalculateProjections(final bracket.Series, rounds []Round) Projections {
	if !final.HasParticipants() || len(rounds) == 0 {
		return emptyProjections()
	}

	finalRound := rounds[len(rounds)-1]
	base := pointsBeforeFinal(rounds)

	projections := make(Projections, maxSeriesLength-minSeriesLength+1)
	for games := minSeriesLength; games <= maxSeriesLength; games++ {
		cells := make(map[string]ProjectionCell, 2)
		for _, team := range []string{final.TopSeed, final.BottomSeed} {
			points := make(map[string]int, len(base))
			for person, p := range base {
				points[person] = p
				if result, ok := finalRound.PickResults[person][final.Letter]; ok {
					points[person] += HypotheticalPoints(finalRound.Scoring, result.Pick, team, games)
				}
			}
			cell := rankCell(points)
			cell.IsPossible = isPossible(final, team, games)
			cell.IsOver = final.IsOver()
			cells[team] = cell
		}
		projections[games] = cells
	}
	return projections
}

// pointsBeforeFinal totals every round but the last. Anyone who only appears in the final round starts from 0
func pointsBeforeFinal(rounds []Round) map[string]int {
	points := make(map[string]int)
	for i, round := range rounds {
		for person, s := range round.Summary.Summaries {
			if i < len(rounds)-1 {
				points[person] += s.Points
			} else if _, ok := points[person]; !ok {
				points[person] = 0
			}
		}
	}
	return points
}

func rankCell(points map[string]int) ProjectionCell {
	ranks := rankMap(points)
	standingsAt := func(people []string) []Standing {
		out := make([]Standing, 0, len(people))
		for _, p := range people {
			out = append(out, Standing{Person: p, Points: points[p]})
		}
		return out
	}

	return ProjectionCell{
		First:  standingsAt(peopleAtRank(ranks, 1)),
		Second: standingsAt(peopleAtRank(ranks, 2)),
		Third:  standingsAt(peopleAtRank(ranks, 3)),
		Losers: standingsAt(losers(ranks)),
	}
}

// isPossible reports whether team can still win the series in exactly games games
func isPossible(final bracket.Series, team string, games int) bool {
	if winner, ok := final.Winner(); ok {
		return winner.Team == team && winner.Games == games
	}

	opponentWins := final.TopSeedWins
	if team == final.TopSeed {
		opponentWins = final.BottomSeedWins
	}
	// the team needs its 4 wins plus every game the opponent has already won
	return games >= bracket.WinsToClinch+opponentWins
}

func emptyProjections() Projections {
	projections := make(Projections, maxSeriesLength-minSeriesLength+1)
	for games := minSeriesLength; games <= maxSeriesLength; games++ {
		projections[games] = map[string]ProjectionCell{
			"": {
				First:  []Standing{},
				Second: []Standing{},
				Third:  []Standing{},
				Losers: []Standing{},
			},
		}
	}
	return projections
}

// FormatStandings joins standings as "Name (N pts), ..."
func FormatStandings(standings []Standing) string {
	parts := make([]string, 0, len(standings))
	for _, s := range standings {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, ", ")
}

// SortedTeams returns the team keys of a projection row in alphabetical order
func (p Projections) SortedTeams() []string {
	var teams []string
	for team := range p[minSeriesLength] {
		teams = append(teams, team)
	}
	slices.Sort(teams)
	return teams
}
