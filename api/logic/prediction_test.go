/* prediction_test.go
 * Contains unit tests for prediction.go functions
 * Authors: Zachary Bower
 */

package logic

import (
	"errors"
	"testing"

	"playoff-pool/api/bracket"
	"playoff-pool/api/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var roundOneScoring = bracket.Scoring{Team: 1, Games: 2, Bonus: 3}

func series(top, bottom int) bracket.Series {
	return bracket.NewSeries("A").WithSeeds("FLA", "TBL").WithWins(top, bottom)
}

// region Points tests

func TestPoints_TeamOnly(t *testing.T) {
	assert.Equal(t, 1, Points(roundOneScoring, StatusCorrect, StatusIncorrect))
}

func TestPoints_TeamAndGames(t *testing.T) {
	assert.Equal(t, 6, Points(roundOneScoring, StatusCorrect, StatusCorrect))
}

func TestPoints_GamesOnly(t *testing.T) {
	assert.Equal(t, 2, Points(roundOneScoring, StatusIncorrect, StatusCorrect))
}

// UNKNOWN never earns points or the bonus
func TestPoints_UnknownEarnsNothing(t *testing.T) {
	assert.Equal(t, 2, Points(roundOneScoring, StatusUnknown, StatusCorrect))
	assert.Equal(t, 0, Points(roundOneScoring, StatusUnknown, StatusUnknown))
}

func TestHypotheticalPoints(t *testing.T) {
	pick := shared.Pick{Team: "EDM", Games: 6}
	final := bracket.Scoring{Team: 4, Games: 5, Bonus: 6}

	assert.Equal(t, 15, HypotheticalPoints(final, pick, "EDM", 6))
	assert.Equal(t, 4, HypotheticalPoints(final, pick, "EDM", 7))
	assert.Equal(t, 5, HypotheticalPoints(final, pick, "FLA", 6))
	assert.Equal(t, 0, HypotheticalPoints(final, pick, "FLA", 4))
}

// endregion

// region Status tests

func TestEvaluatePick_NotStarted(t *testing.T) {
	result := EvaluatePick(roundOneScoring, shared.Pick{Team: "FLA", Games: 4}, series(0, 0))

	assert.Equal(t, StatusUnknown, result.TeamStatus)
	assert.Equal(t, StatusUnknown, result.GamesStatus)
	assert.Equal(t, 0, result.Points)
	assert.Equal(t, 6, result.PossiblePoints)
}

// 3-1: four games played, so a 4 game guess has been outlasted
func TestEvaluatePick_OutlastedGuess(t *testing.T) {
	result := EvaluatePick(roundOneScoring, shared.Pick{Team: "FLA", Games: 4}, series(3, 1))

	assert.Equal(t, StatusIncorrect, result.GamesStatus)
	assert.Equal(t, StatusUnknown, result.TeamStatus)
	assert.Equal(t, 1, result.PossiblePoints)
}

// 3-1: the floor is min(3,1)+4 = 5 so five games is still open
func TestEvaluatePick_AtFloorStillUnknown(t *testing.T) {
	result := EvaluatePick(roundOneScoring, shared.Pick{Team: "FLA", Games: 5}, series(3, 1))

	assert.Equal(t, StatusUnknown, result.GamesStatus)
	assert.Equal(t, 6, result.PossiblePoints)
}

// 2-2: four played, floor is 6, so a 5 game guess is impossible
func TestEvaluatePick_BelowFloor(t *testing.T) {
	result := EvaluatePick(roundOneScoring, shared.Pick{Team: "FLA", Games: 5}, series(2, 2))

	assert.Equal(t, StatusIncorrect, result.GamesStatus)
}

// 2-1: three played, floor is 5, a 4 game guess is dead before the 4th game
func TestEvaluatePick_FloorBeatsPlayed(t *testing.T) {
	result := EvaluatePick(roundOneScoring, shared.Pick{Team: "FLA", Games: 4}, series(2, 1))

	assert.Equal(t, StatusIncorrect, result.GamesStatus)
}

func TestEvaluatePick_EarlyGameSeven(t *testing.T) {
	for _, team := range []string{"FLA", "TBL"} {
		result := EvaluatePick(roundOneScoring, shared.Pick{Team: team, Games: 7}, series(3, 3))

		assert.Equal(t, StatusCorrect, result.GamesStatus, team)
		assert.Equal(t, StatusUnknown, result.TeamStatus, team)
		assert.Equal(t, 2, result.Points, team)
		assert.Equal(t, 6, result.PossiblePoints, team)
	}
}

func TestEvaluatePick_SixGameGuessAtThreeThree(t *testing.T) {
	result := EvaluatePick(roundOneScoring, shared.Pick{Team: "FLA", Games: 6}, series(3, 3))

	assert.Equal(t, StatusIncorrect, result.GamesStatus)
	assert.Equal(t, 1, result.PossiblePoints)
}

func TestEvaluatePick_DecidedAllCorrect(t *testing.T) {
	result := EvaluatePick(roundOneScoring, shared.Pick{Team: "FLA", Games: 6}, series(4, 2))

	assert.Equal(t, StatusCorrect, result.TeamStatus)
	assert.Equal(t, StatusCorrect, result.GamesStatus)
	assert.True(t, result.EarnedBonus())
	assert.Equal(t, 6, result.Points)
	assert.Equal(t, 6, result.PossiblePoints)
}

func TestEvaluatePick_DecidedWrongTeamRightGames(t *testing.T) {
	result := EvaluatePick(roundOneScoring, shared.Pick{Team: "TBL", Games: 6}, series(4, 2))

	assert.Equal(t, StatusIncorrect, result.TeamStatus)
	assert.Equal(t, StatusCorrect, result.GamesStatus)
	assert.False(t, result.EarnedBonus())
	assert.Equal(t, 2, result.Points)
}

// Once a series has a winner possible points equals points for every pick
func TestEvaluatePick_PossibleCollapsesOnResolution(t *testing.T) {
	decided := series(2, 4)
	for _, team := range []string{"FLA", "TBL"} {
		for games := 4; games <= 7; games++ {
			result := EvaluatePick(roundOneScoring, shared.Pick{Team: team, Games: games}, decided)
			assert.Equal(t, result.Points, result.PossiblePoints, "%s in %d", team, games)
		}
	}
}

func TestPickStatus_StillPossible(t *testing.T) {
	assert.True(t, StatusCorrect.StillPossible())
	assert.True(t, StatusUnknown.StillPossible())
	assert.False(t, StatusIncorrect.StillPossible())
	assert.Panics(t, func() { PickStatus("MAYBE").StillPossible() })
}

// endregion

// region BuildPickResults tests

func TestBuildPickResults_Success(t *testing.T) {
	set := bracket.NewSeriesSet(bracket.DefaultTopology, []bracket.Series{series(4, 0)})
	picks := shared.RoundPicks{
		"Derrick": {"A": {Team: "FLA", Games: 4}},
		"Marc":    {"A": {Team: "TBL", Games: 7}},
	}

	results, err := BuildPickResults(roundOneScoring, set, []string{"A", "B"}, picks)

	require.NoError(t, err)
	assert.Equal(t, 6, results["Derrick"]["A"].Points)
	assert.Equal(t, 0, results["Marc"]["A"].Points)
}

func TestBuildPickResults_SeriesOutsideRound(t *testing.T) {
	set := bracket.NewSeriesSet(bracket.DefaultTopology, nil)
	picks := shared.RoundPicks{"Derrick": {"I": {Team: "FLA", Games: 4}}}

	_, err := BuildPickResults(roundOneScoring, set, []string{"A"}, picks)

	assert.True(t, errors.Is(err, shared.ErrLookup))
}

func TestBuildPickResults_MalformedGames(t *testing.T) {
	set := bracket.NewSeriesSet(bracket.DefaultTopology, nil)
	picks := shared.RoundPicks{"Derrick": {"A": {Team: "FLA", Games: 9}}}

	_, err := BuildPickResults(roundOneScoring, set, []string{"A"}, picks)

	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrMalformedPick))
	var pickErr *shared.PickInputError
	require.True(t, errors.As(err, &pickErr))
	assert.Equal(t, "Derrick", pickErr.Person)
	assert.Equal(t, "A", pickErr.Series)
}

func TestBuildPickResults_MissingTeam(t *testing.T) {
	set := bracket.NewSeriesSet(bracket.DefaultTopology, nil)
	picks := shared.RoundPicks{"Derrick": {"A": {Games: 5}}}

	_, err := BuildPickResults(roundOneScoring, set, []string{"A"}, picks)

	assert.True(t, errors.Is(err, shared.ErrMalformedPick))
}

// endregion
