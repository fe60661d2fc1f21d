/* prediction.go
 * Contains the logic for evaluating picks against series that may still be in progress. Correctness is decided as
 * early as the series state allows, so a pick can be CORRECT or INCORRECT before the series ends
 * Authors: Zachary Bower
 */

package logic

import (
	"slices"
	"strconv"

	"playoff-pool/api/bracket"
	"playoff-pool/api/shared"
)

const (
	minSeriesLength = 4
	maxSeriesLength = 7
)

// BuildPickResults evaluates every pick of a round
// Preconditions: Receives the round's scoring, the series lookup, the letters that belong to the round and every person's picks
// Postconditions: Returns person -> letter -> PickResult, or an error if a pick is malformed or targets a series outside the round
func BuildPickResults(scoring bracket.Scoring, series bracket.SeriesSet, roundLetters []string, picks shared.RoundPicks) (PickResults, error) {
	results := make(PickResults, len(picks))
	for person, picksBySeries := range picks {
		results[person] = make(map[string]PickResult, len(picksBySeries))
		for letter, pick := range picksBySeries {
			if !slices.Contains(roundLetters, letter) {
				return nil, shared.LookupError("series", letter)
			}
			s, err := series.Get(letter)
			if err != nil {
				return nil, err
			}
			if err := validatePick(person, letter, pick); err != nil {
				return nil, err
			}
			results[person][letter] = EvaluatePick(scoring, pick, s)
		}
	}
	return results, nil
}

// EvaluatePick scores a single pick against the current state of its series
func EvaluatePick(scoring bracket.Scoring, pick shared.Pick, series bracket.Series) PickResult {
	winner, decided := series.Winner()
	team := teamStatus(pick, winner, decided)
	games := gamesStatus(pick, series)
	points := Points(scoring, team, games)

	possible := points
	if !decided {
		possible = possiblePoints(scoring, team, games)
	}

	return PickResult{
		Pick:           pick,
		TeamStatus:     team,
		GamesStatus:    games,
		Points:         points,
		PossiblePoints: possible,
	}
}

// Points returns the points earned for the given statuses. Only CORRECT counts, the bonus needs both
func Points(scoring bracket.Scoring, team PickStatus, games PickStatus) int {
	correctTeam := team == StatusCorrect
	correctGames := games == StatusCorrect

	points := 0
	if correctTeam {
		points += scoring.Team
	}
	if correctGames {
		points += scoring.Games
	}
	if correctTeam && correctGames {
		points += scoring.Bonus
	}
	return points
}

// HypotheticalPoints scores a pick as if team had won the series in games
func HypotheticalPoints(scoring bracket.Scoring, pick shared.Pick, team string, games int) int {
	teamResult := StatusIncorrect
	if pick.Team == team {
		teamResult = StatusCorrect
	}
	gamesResult := StatusIncorrect
	if pick.Games == games {
		gamesResult = StatusCorrect
	}
	return Points(scoring, teamResult, gamesResult)
}

func teamStatus(pick shared.Pick, winner bracket.Winner, decided bool) PickStatus {
	if !decided {
		return StatusUnknown
	}
	if pick.Team == winner.Team {
		return StatusCorrect
	}
	return StatusIncorrect
}

func gamesStatus(pick shared.Pick, series bracket.Series) PickStatus {
	winner, decided := series.Winner()
	if decided {
		if pick.Games == winner.Games {
			return StatusCorrect
		}
		return StatusIncorrect
	}

	played := series.TotalGames()
	// a seventh game is certain once six have been played, whoever wins it
	if played == 6 && pick.Games == maxSeriesLength {
		return StatusCorrect
	}
	if played >= pick.Games {
		return StatusIncorrect
	}
	// e.g. once both teams have a win, a sweep is impossible
	floor := min(series.TopSeedWins, series.BottomSeedWins) + bracket.WinsToClinch
	if pick.Games < floor {
		return StatusIncorrect
	}
	return StatusUnknown
}

// possiblePoints should only be used while the series has no winner
func possiblePoints(scoring bracket.Scoring, team PickStatus, games PickStatus) int {
	fromTeam := 0
	if team.StillPossible() {
		fromTeam = scoring.Team
	}
	fromGames := 0
	if games.StillPossible() {
		fromGames = scoring.Games
	}
	fromBonus := 0
	if fromTeam > 0 && fromGames > 0 {
		fromBonus = scoring.Bonus
	}
	return fromTeam + fromGames + fromBonus
}

func validatePick(person string, letter string, pick shared.Pick) error {
	if pick.Team == "" {
		return &shared.PickInputError{Person: person, Series: letter, Value: pick.Team, Reason: "missing team"}
	}
	if pick.Games < minSeriesLength || pick.Games > maxSeriesLength {
		return &shared.PickInputError{Person: person, Series: letter, Value: strconv.Itoa(pick.Games), Reason: "games must be between 4 and 7"}
	}
	return nil
}
