/* projection_test.go
 * Contains unit tests for projection.go
 * Authors: Zachary Bower
 */

package logic

import (
	"testing"

	"playoff-pool/api/bracket"
	"playoff-pool/api/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var finalScoring = bracket.Scoring{Team: 4, Games: 5, Bonus: 6}

func finalSeries(top, bottom int) bracket.Series {
	return bracket.NewSeries("O").WithSeeds("EDM", "FLA").WithWins(top, bottom)
}

// projectionRounds builds an earlier round worth 6 for Derrick and 2 for Marc, then a final round with their picks
func projectionRounds(final bracket.Series, finalPicks shared.RoundPicks) []Round {
	earlier := roundWith(map[string]PersonSummary{
		"Derrick": {Person: "Derrick", Points: 6},
		"Marc":    {Person: "Marc", Points: 2},
	})

	results := make(PickResults)
	for person, picks := range finalPicks {
		results[person] = map[string]PickResult{"O": EvaluatePick(finalScoring, picks["O"], final)}
	}
	last := Round{
		Number:      4,
		Series:      map[string]bracket.Series{"O": final},
		PickResults: results,
		Scoring:     finalScoring,
		Summary:     SummarizeRound(results),
	}
	return []Round{earlier, last}
}

// region CalculateProjections tests

func TestCalculateProjections_AwaitingFinalists(t *testing.T) {
	projections := CalculateProjections(bracket.NewSeries("O").WithSeeds("EDM", ""), nil)

	require.Len(t, projections, 4)
	assert.True(t, projections.AwaitingFinalists())
	for games := 4; games <= 7; games++ {
		cell, ok := projections[games][""]
		require.True(t, ok)
		assert.Empty(t, cell.First)
		assert.NotNil(t, cell.Losers)
		assert.False(t, cell.IsPossible)
	}
}

func TestCalculateProjections_Standings(t *testing.T) {
	final := finalSeries(2, 1)
	rounds := projectionRounds(final, shared.RoundPicks{
		"Derrick": {"O": {Team: "EDM", Games: 6}},
		"Marc":    {"O": {Team: "FLA", Games: 7}},
	})

	projections := CalculateProjections(final, rounds)

	assert.False(t, projections.AwaitingFinalists())
	assert.Equal(t, []string{"EDM", "FLA"}, projections.SortedTeams())

	edmSix := projections[6]["EDM"]
	assert.Equal(t, []Standing{{Person: "Derrick", Points: 21}}, edmSix.First)
	assert.Equal(t, []Standing{{Person: "Marc", Points: 2}}, edmSix.Second)
	assert.Empty(t, edmSix.Third)
	assert.Equal(t, []Standing{{Person: "Marc", Points: 2}}, edmSix.Losers)
	assert.True(t, edmSix.IsPossible)
	assert.False(t, edmSix.IsOver)

	flaSeven := projections[7]["FLA"]
	assert.Equal(t, []Standing{{Person: "Marc", Points: 17}}, flaSeven.First)
	assert.Equal(t, []Standing{{Person: "Derrick", Points: 6}}, flaSeven.Second)
}

func TestCalculateProjections_LatecomerStartsFromZero(t *testing.T) {
	final := finalSeries(0, 0)
	rounds := projectionRounds(final, shared.RoundPicks{
		"Derrick": {"O": {Team: "FLA", Games: 5}},
		"Marc":    {"O": {Team: "EDM", Games: 4}},
		"Jen":     {"O": {Team: "EDM", Games: 4}},
	})

	cell := CalculateProjections(final, rounds)[4]["EDM"]

	// Jen only has final picks so starts from 0: Marc 17, Jen 15, Derrick 6
	assert.Equal(t, []Standing{{Person: "Marc", Points: 17}}, cell.First)
	assert.Equal(t, []Standing{{Person: "Jen", Points: 15}}, cell.Second)
	assert.Equal(t, []Standing{{Person: "Derrick", Points: 6}}, cell.Third)
	assert.Equal(t, "Derrick (6 pts)", FormatStandings(cell.Losers))
}

// At 3-1 the trailing team needs 4 more wins so it can only win in 7
func TestCalculateProjections_Possibility(t *testing.T) {
	final := finalSeries(3, 1)

	projections := CalculateProjections(final, projectionRounds(final, shared.RoundPicks{}))

	assert.False(t, projections[4]["FLA"].IsPossible)
	assert.False(t, projections[6]["FLA"].IsPossible)
	assert.True(t, projections[7]["FLA"].IsPossible)
	assert.False(t, projections[4]["EDM"].IsPossible)
	assert.True(t, projections[5]["EDM"].IsPossible)
	assert.True(t, projections[7]["EDM"].IsPossible)
}

func TestCalculateProjections_FinalOver(t *testing.T) {
	final := finalSeries(4, 2)

	projections := CalculateProjections(final, projectionRounds(final, shared.RoundPicks{}))

	for games := 4; games <= 7; games++ {
		for _, team := range []string{"EDM", "FLA"} {
			cell := projections[games][team]
			assert.True(t, cell.IsOver)
			assert.Equal(t, team == "EDM" && games == 6, cell.IsPossible, "%s in %d", team, games)
		}
	}
}

func TestFormatStandings(t *testing.T) {
	assert.Equal(t, "", FormatStandings(nil))
	assert.Equal(t, "Derrick (21 pts), Marc (2 pts)", FormatStandings([]Standing{{"Derrick", 21}, {"Marc", 2}}))
}

// endregion
