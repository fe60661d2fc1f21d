/* scoring.go
 * Contains the per round scoring weights
 * Authors: Zachary Bower
 */

package bracket

import "fmt"

// Scoring holds the points for a correct team, a correct series length, and the bonus for getting both
type Scoring struct {
	Team  int `json:"team" bson:"team" yaml:"team"`
	Games int `json:"games" bson:"games" yaml:"games"`
	Bonus int `json:"bonus" bson:"bonus" yaml:"bonus"`
}

// ScoringTable is the scoring for every round, index 0 is round 1
type ScoringTable []Scoring

// DefaultScoring are the weights the pool has always used
var DefaultScoring = ScoringTable{
	{Team: 1, Games: 2, Bonus: 3},
	{Team: 2, Games: 3, Bonus: 4},
	{Team: 3, Games: 4, Bonus: 5},
	{Team: 4, Games: 5, Bonus: 6},
}

// ForRound returns the weights for a 1-indexed round
func (st ScoringTable) ForRound(round int) (Scoring, error) {
	if round < 1 || round > len(st) {
		return Scoring{}, fmt.Errorf("no scoring for round %d", round)
	}
	return st[round-1], nil
}

// Validate checks there is one entry per round and no negative weights
func (st ScoringTable) Validate() error {
	if len(st) != NumRounds {
		return fmt.Errorf("scoring must have %d rounds, got %d", NumRounds, len(st))
	}
	for i, s := range st {
		if s.Team < 0 || s.Games < 0 || s.Bonus < 0 {
			return fmt.Errorf("round %d scoring has a negative weight", i+1)
		}
	}
	return nil
}
