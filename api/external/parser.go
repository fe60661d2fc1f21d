/* parser.go
 * Contains the logic used to turn NHL api responses into teams and series
 * Authors: Zachary Bower
 */

package external

import (
	"encoding/json"
	"fmt"
	"time"

	"playoff-pool/api/bracket"
	"playoff-pool/api/shared"
)

const finalTitle = "Stanley Cup Final"

// ParseBracket decodes a playoff-bracket response
// Preconditions: Receives the raw response body and the bracket topology
// Postconditions: Returns the teams and one series per topology letter in bracket order. Series the api has not
// set up yet are empty. Returns ErrPlayoffsNotStarted if the response has no series at all
func ParseBracket(raw []byte, t bracket.Topology) (Bracket, error) {
	var response bracketResponse
	if err := json.Unmarshal(raw, &response); err != nil {
		return Bracket{}, fmt.Errorf("error decoding bracket: %w", err)
	}
	if len(response.Series) == 0 {
		return Bracket{}, shared.ErrPlayoffsNotStarted
	}

	teams := make(map[string]shared.Team)
	var found []bracket.Series
	for _, s := range response.Series {
		// not fully set yet
		if s.SeriesURL == "" || s.TopSeedTeam == nil || s.BottomSeedTeam == nil {
			continue
		}
		top := buildTeam(teams, s.TopSeedTeam, s.TopSeedRankAbbrev)
		bottom := buildTeam(teams, s.BottomSeedTeam, s.BottomSeedRankAbbrev)
		found = append(found, bracket.NewSeries(s.SeriesLetter).
			WithSeeds(top.Short, bottom.Short).
			WithWins(s.TopSeedWins, s.BottomSeedWins))
		if s.SeriesTitle == finalTitle {
			break
		}
	}

	set := bracket.NewSeriesSet(t, found)
	series := make([]bracket.Series, 0, len(set))
	for _, letter := range t.AllLetters() {
		series = append(series, set[letter])
	}
	return Bracket{Teams: teams, Series: series}, nil
}

// buildTeam only records each team once, the first time it is seen
func buildTeam(teams map[string]shared.Team, seed *apiTeam, rank string) shared.Team {
	if team, ok := teams[seed.Abbrev]; ok {
		return team
	}
	team := shared.Team{
		Name:  seed.Name.Default,
		Short: seed.Abbrev,
		Logo:  seed.Logo,
		Rank:  rank,
	}
	teams[team.Short] = team
	return team
}

// ParseScheduleStart returns the start time of the first game in a playoff-series schedule response.
// ok is false when no games are scheduled yet
func ParseScheduleStart(raw []byte) (time.Time, bool, error) {
	var response scheduleResponse
	if err := json.Unmarshal(raw, &response); err != nil {
		return time.Time{}, false, fmt.Errorf("error decoding schedule: %w", err)
	}
	if len(response.Games) == 0 {
		return time.Time{}, false, nil
	}
	return response.Games[0].StartTimeUTC, true, nil
}
