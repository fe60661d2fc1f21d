/* test_helpers.go
 * Contains test helper functions for store package tests and for packages that mock the store
 * Authors: Zachary Bower
 */

package store

import (
	"context"

	"playoff-pool/api/bracket"
	"playoff-pool/api/logic"
)

// CreateTestStore creates a Store connected to a test database.
// Returns the store and a cleanup function.
func CreateTestStore(mongoURI string) (*Store, func(), error) {
	store, err := NewStore(context.TODO(), "test_playoff_pool", mongoURI)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if store.Client != nil {
			store.Database.Drop(context.TODO())
			store.Client.Disconnect(context.TODO())
		}
	}

	return store, cleanup, nil
}

// CreateSampleYearSummary creates a small but complete YearSummary for testing
func CreateSampleYearSummary(year int) logic.YearSummary {
	final := bracket.NewSeries("O").WithSeeds("EDM", "FLA").WithWins(2, 4)
	return logic.YearSummary{
		Year: year,
		Rounds: []logic.Round{{
			Number:  4,
			Series:  map[string]bracket.Series{"O": final},
			Scoring: bracket.DefaultScoring[3],
			PickResults: logic.PickResults{
				"Derrick": {"O": {TeamStatus: logic.StatusCorrect, GamesStatus: logic.StatusCorrect, Points: 15, PossiblePoints: 15}},
			},
		}},
		PersonSummaries: map[string]logic.PersonSummary{
			"Derrick": {Person: "Derrick", Points: 15, PossiblePoints: 15, Rank: 1, TeamsCorrect: 1, GamesCorrect: 1, BonusEarned: 1},
			"Marc":    {Person: "Marc", Points: 0, Rank: 2},
		},
		Winners:      []string{"Derrick"},
		Losers:       []string{"Marc"},
		TiebreakInfo: logic.TiebreakInfo{Leaders: []string{"Derrick"}, Winner: "Derrick", Resolved: true},
	}
}
