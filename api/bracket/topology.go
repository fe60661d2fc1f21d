/* topology.go
 * Contains the fixed shape of the bracket: which series letters make up each round and which two series feed
 * each later-round series
 * Authors: Zachary Bower
 */

package bracket

import (
	"fmt"
	"slices"
)

const NumRounds = 4

// Topology is the bracket layout. It is configuration, never state, and is passed by value to whatever needs it
type Topology struct {
	Rounds    [][]string
	WinnerMap map[string][2]string
}

// DefaultTopology is the 16 team, 4 round NHL bracket
var DefaultTopology = Topology{
	Rounds: [][]string{
		{"A", "B", "C", "D", "E", "F", "G", "H"},
		{"I", "J", "K", "L"},
		{"M", "N"},
		{"O"},
	},
	WinnerMap: map[string][2]string{
		"I": {"A", "B"},
		"J": {"C", "D"},
		"K": {"E", "F"},
		"L": {"G", "H"},
		"M": {"I", "J"},
		"N": {"K", "L"},
		"O": {"M", "N"},
	},
}

// SeriesForRound returns the ordered series letters for a 1-indexed round number
func (t Topology) SeriesForRound(round int) ([]string, error) {
	if round < 1 || round > len(t.Rounds) {
		return nil, fmt.Errorf("round %d out of range [1,%d]", round, len(t.Rounds))
	}
	return slices.Clone(t.Rounds[round-1]), nil
}

// Parents returns the two series whose winners meet in the given series. First round series have no parents
func (t Topology) Parents(letter string) ([2]string, bool) {
	p, ok := t.WinnerMap[letter]
	return p, ok
}

// FinalLetter is the letter of the last series in the bracket
func (t Topology) FinalLetter() string {
	last := t.Rounds[len(t.Rounds)-1]
	return last[0]
}

// AllLetters returns every series letter in round order
func (t Topology) AllLetters() []string {
	var letters []string
	for _, round := range t.Rounds {
		letters = append(letters, round...)
	}
	return letters
}
