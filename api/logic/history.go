/* history.go
 * Contains the cross-year views built from archived summaries: who won and lost each year and how many times each
 * person has won or lost the pool
 * Authors: Zachary Bower
 */

package logic

import (
	"slices"
	"sort"
)

// YearRecord is the headline result of one year
type YearRecord struct {
	Year           int            `json:"year" bson:"year"`
	PoolWinners    []string       `json:"poolWinners" bson:"pool_winners"`
	PoolLosers     []string       `json:"poolLosers" bson:"pool_losers"`
	TiebreakWinner string         `json:"tiebreakWinner,omitempty" bson:"tiebreak_winner,omitempty"`
	CupWinner      string         `json:"cupWinner,omitempty" bson:"cup_winner,omitempty"`
	Points         map[string]int `json:"points" bson:"points"`
}

// WinLoss counts how often a person has won or lost the pool
type WinLoss struct {
	Person string `json:"person" bson:"person"`
	Wins   int    `json:"wins" bson:"wins"`
	Losses int    `json:"losses" bson:"losses"`
}

// RecordFromSummary extracts the YearRecord from a full summary. The cup winner is the winner of the last round's only series
func RecordFromSummary(summary YearSummary) YearRecord {
	record := YearRecord{
		Year:           summary.Year,
		PoolWinners:    slices.Clone(summary.Winners),
		PoolLosers:     slices.Clone(summary.Losers),
		TiebreakWinner: summary.TiebreakInfo.Winner,
		Points:         make(map[string]int, len(summary.PersonSummaries)),
	}
	for person, s := range summary.PersonSummaries {
		record.Points[person] = s.Points
	}
	if len(summary.Rounds) > 0 {
		for _, s := range summary.Rounds[len(summary.Rounds)-1].Series {
			if w, ok := s.Winner(); ok {
				record.CupWinner = w.Team
			}
		}
	}
	return record
}

// WinsLosses tallies pool wins and losses per person. When a tiebreak winner exists only they are credited with the win
// Postconditions: Returns the tallies sorted by most wins, then fewest losses, then name
func WinsLosses(records []YearRecord) []WinLoss {
	tally := make(map[string]*WinLoss)
	get := func(person string) *WinLoss {
		if wl, ok := tally[person]; ok {
			return wl
		}
		wl := &WinLoss{Person: person}
		tally[person] = wl
		return wl
	}

	for _, r := range records {
		yearWinners := r.PoolWinners
		if r.TiebreakWinner != "" {
			yearWinners = []string{r.TiebreakWinner}
		}
		for _, w := range yearWinners {
			get(w).Wins++
		}
		for _, l := range r.PoolLosers {
			get(l).Losses++
		}
	}

	out := make([]WinLoss, 0, len(tally))
	for _, wl := range tally {
		out = append(out, *wl)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Wins != out[j].Wins {
			return out[i].Wins > out[j].Wins
		}
		if out[i].Losses != out[j].Losses {
			return out[i].Losses < out[j].Losses
		}
		return out[i].Person < out[j].Person
	})
	return out
}
