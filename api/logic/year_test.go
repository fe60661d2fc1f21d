/* year_test.go
 * Contains unit tests for BuildYear
 * Authors: Zachary Bower
 */

package logic

import (
	"encoding/json"
	"errors"
	"testing"

	"playoff-pool/api/bracket"
	"playoff-pool/api/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func yearInput() YearInput {
	return YearInput{
		Year:     2025,
		Topology: bracket.DefaultTopology,
		Scoring:  bracket.DefaultScoring,
		Series: []bracket.Series{
			bracket.NewSeries("A").WithSeeds("FLA", "TBL").WithWins(4, 1),
			bracket.NewSeries("B").WithSeeds("TOR", "OTT").WithWins(2, 2),
			bracket.NewSeries("O").WithSeeds("EDM", "FLA").WithWins(1, 1),
		},
		Picks: map[int]shared.RoundPicks{
			1: {
				"Derrick": {"A": {Team: "FLA", Games: 5}, "B": {Team: "TOR", Games: 7}},
				"Marc":    {"A": {Team: "TBL", Games: 5}, "B": {Team: "OTT", Games: 4}},
			},
			4: {
				"Derrick": {"O": {Team: "EDM", Games: 6}},
				"Marc":    {"O": {Team: "FLA", Games: 6}},
			},
		},
		Teams: map[string]shared.Team{"FLA": {Name: "Florida Panthers", Short: "FLA"}},
	}
}

// region BuildYear tests

func TestBuildYear(t *testing.T) {
	summary, err := BuildYear(yearInput())

	require.NoError(t, err)
	require.Len(t, summary.Rounds, 4)
	assert.Equal(t, 1, summary.Rounds[0].Number)
	assert.Len(t, summary.Rounds[0].Series, 8)
	assert.Empty(t, summary.Rounds[1].PickResults)

	derrick := summary.Rounds[0].PickResults["Derrick"]
	assert.Equal(t, 6, derrick["A"].Points)
	assert.Equal(t, StatusUnknown, derrick["B"].GamesStatus)
	assert.Equal(t, StatusIncorrect, summary.Rounds[0].PickResults["Marc"]["B"].GamesStatus)

	assert.Equal(t, 6, summary.PersonSummaries["Derrick"].Points)
	assert.Equal(t, 2, summary.PersonSummaries["Marc"].Points)
	assert.Equal(t, []string{"Derrick"}, summary.Winners)
	assert.Equal(t, []string{"Marc"}, summary.Losers)
	assert.Equal(t, "Derrick", summary.TiebreakInfo.Winner)

	assert.False(t, summary.Projections.AwaitingFinalists())
	assert.Equal(t, 21, summary.Projections[6]["EDM"].First[0].Points)
	assert.Equal(t, "Florida Panthers", summary.Teams["FLA"].Name)
}

func TestBuildYear_Idempotent(t *testing.T) {
	first, err := BuildYear(yearInput())
	require.NoError(t, err)
	second, err := BuildYear(yearInput())
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestBuildYear_NoPicksNoSeries(t *testing.T) {
	in := YearInput{Year: 2026, Topology: bracket.DefaultTopology, Scoring: bracket.DefaultScoring}

	summary, err := BuildYear(in)

	require.NoError(t, err)
	assert.Empty(t, summary.PersonSummaries)
	assert.Empty(t, summary.Winners)
	assert.True(t, summary.Projections.AwaitingFinalists())
	assert.NotNil(t, summary.Teams)
}

func TestBuildYear_MalformedPick(t *testing.T) {
	in := yearInput()
	in.Picks[1]["Jen"] = map[string]shared.Pick{"A": {Team: "FLA", Games: 3}}

	_, err := BuildYear(in)

	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrMalformedPick))
	assert.Contains(t, err.Error(), "year 2025 round 1")
}

func TestBuildYear_PickInWrongRound(t *testing.T) {
	in := yearInput()
	in.Picks[2] = shared.RoundPicks{"Jen": {"A": {Team: "FLA", Games: 5}}}

	_, err := BuildYear(in)

	assert.True(t, errors.Is(err, shared.ErrLookup))
}

func TestBuildYear_BadScoring(t *testing.T) {
	in := yearInput()
	in.Scoring = bracket.DefaultScoring[:3]

	_, err := BuildYear(in)

	assert.Error(t, err)
}

// endregion
