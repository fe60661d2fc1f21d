/* series.go
 * Contains the Series value type: one best-of-seven matchup and the status derived from its win counts.
 * Series values are never mutated in place; the With* helpers return an updated copy
 * Authors: Zachary Bower
 */

package bracket

import (
	"fmt"
	"time"
)

const WinsToClinch = 4

// How long before the lead series starts that a round opens for picks
const roundOpenWindow = 3 * 24 * time.Hour

// Series is one best-of-seven matchup. An empty seed means that participant is not known yet
type Series struct {
	Letter         string     `json:"letter" bson:"letter"`
	TopSeed        string     `json:"topSeed,omitempty" bson:"top_seed,omitempty"`
	BottomSeed     string     `json:"bottomSeed,omitempty" bson:"bottom_seed,omitempty"`
	TopSeedWins    int        `json:"topSeedWins" bson:"top_seed_wins"`
	BottomSeedWins int        `json:"bottomSeedWins" bson:"bottom_seed_wins"`
	StartTimeUTC   *time.Time `json:"startTimeUTC,omitempty" bson:"start_time_utc,omitempty"`
}

// Winner is the decided outcome of a series
type Winner struct {
	Team  string
	Games int
}

// NewSeries returns an empty series for the given letter
func NewSeries(letter string) Series {
	return Series{Letter: letter}
}

func (s Series) IsTopSeedWinner() bool {
	return s.TopSeed != "" && s.TopSeedWins == WinsToClinch
}

func (s Series) IsBottomSeedWinner() bool {
	return s.BottomSeed != "" && s.BottomSeedWins == WinsToClinch
}

// IsOver reports whether one side has clinched
func (s Series) IsOver() bool {
	return s.IsTopSeedWinner() || s.IsBottomSeedWinner()
}

// TotalGames is the number of games played so far
func (s Series) TotalGames() int {
	return s.TopSeedWins + s.BottomSeedWins
}

// Winner returns the winning team and series length, ok is false while the series is still going
func (s Series) Winner() (Winner, bool) {
	switch {
	case s.IsTopSeedWinner():
		return Winner{Team: s.TopSeed, Games: s.TotalGames()}, true
	case s.IsBottomSeedWinner():
		return Winner{Team: s.BottomSeed, Games: s.TotalGames()}, true
	}
	return Winner{}, false
}

// HasParticipants reports whether both seeds are known
func (s Series) HasParticipants() bool {
	return s.TopSeed != "" && s.BottomSeed != ""
}

// IsLocked reports whether picks for this series are closed
func (s Series) IsLocked(now time.Time) bool {
	if s.StartTimeUTC == nil {
		return false
	}
	return !now.Before(*s.StartTimeUTC)
}

// Summary gives a short description such as "TOR 3 - BOS 2" or "Winner A - Winner B"
func (s Series) Summary(t Topology) string {
	parents, _ := t.Parents(s.Letter)
	top := fmt.Sprintf("Winner %s", parents[0])
	if s.TopSeed != "" {
		top = fmt.Sprintf("%s %d", s.TopSeed, s.TopSeedWins)
	}
	bottom := fmt.Sprintf("Winner %s", parents[1])
	if s.BottomSeed != "" {
		bottom = fmt.Sprintf("%s %d", s.BottomSeed, s.BottomSeedWins)
	}
	return fmt.Sprintf("%s - %s", top, bottom)
}

// WithSeeds returns a copy of the series with both participants set
func (s Series) WithSeeds(top string, bottom string) Series {
	s.TopSeed = top
	s.BottomSeed = bottom
	return s
}

// WithWins returns a copy of the series with the given win counts
func (s Series) WithWins(top int, bottom int) Series {
	s.TopSeedWins = top
	s.BottomSeedWins = bottom
	return s
}

// WithStartTime returns a copy of the series with the first game's start time set
func (s Series) WithStartTime(start time.Time) Series {
	utc := start.UTC()
	s.StartTimeUTC = &utc
	return s
}

// RoundOpensAt is when picks open for a round whose first series starts at leadStart
func RoundOpensAt(leadStart time.Time) time.Time {
	return leadStart.Add(-roundOpenWindow)
}

// IsRoundOpen reports whether a round whose first series starts at leadStart is open for picks
func IsRoundOpen(leadStart *time.Time, now time.Time) bool {
	if leadStart == nil {
		return false
	}
	return !now.Before(RoundOpensAt(*leadStart))
}
