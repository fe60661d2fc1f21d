/* models.go
 * This file contain the result types produced by the scoring engine. Everything here is derived from the series
 * state and the picks, and serializes field for field to JSON (site data) and BSON (archive)
 * Authors: Zachary Bower
 */

package logic

import (
	"fmt"

	"playoff-pool/api/bracket"
	"playoff-pool/api/shared"
)

// PickStatus is the closed set of outcomes for one dimension (team or games) of a pick
type PickStatus string

const (
	StatusCorrect   PickStatus = "CORRECT"
	StatusIncorrect PickStatus = "INCORRECT"
	StatusUnknown   PickStatus = "UNKNOWN"
)

// StillPossible reports whether a pick dimension with this status can still earn points
func (s PickStatus) StillPossible() bool {
	switch s {
	case StatusCorrect, StatusUnknown:
		return true
	case StatusIncorrect:
		return false
	}
	panic(fmt.Sprintf("unknown pick status %q", string(s)))
}

// PickResult is the evaluation of one pick against the current state of its series
type PickResult struct {
	Pick           shared.Pick `json:"pick" bson:"pick"`
	TeamStatus     PickStatus  `json:"teamStatus" bson:"team_status"`
	GamesStatus    PickStatus  `json:"gamesStatus" bson:"games_status"`
	Points         int         `json:"points" bson:"points"`
	PossiblePoints int         `json:"possiblePoints" bson:"possible_points"`
}

// EarnedBonus is derived from the two statuses rather than stored
func (r PickResult) EarnedBonus() bool {
	return r.TeamStatus == StatusCorrect && r.GamesStatus == StatusCorrect
}

// PickResults maps person -> series letter -> result
type PickResults map[string]map[string]PickResult

// PersonSummary is one person's totals for a round or a whole year
type PersonSummary struct {
	Person         string `json:"person" bson:"person"`
	Points         int    `json:"points" bson:"points"`
	PossiblePoints int    `json:"possiblePoints" bson:"possible_points"`
	Rank           int    `json:"rank" bson:"rank"`
	TeamsCorrect   int    `json:"teamsCorrect" bson:"teams_correct"`
	GamesCorrect   int    `json:"gamesCorrect" bson:"games_correct"`
	BonusEarned    int    `json:"bonusEarned" bson:"bonus_earned"`
}

type RoundSummary struct {
	Summaries map[string]PersonSummary `json:"summaries" bson:"summaries"`
	Winners   []string                 `json:"winners" bson:"winners"`
	Losers    []string                 `json:"losers" bson:"losers"`
}

// Round is everything known about one round of the playoffs
type Round struct {
	Number      int                       `json:"number" bson:"number"`
	Series      map[string]bracket.Series `json:"series" bson:"series"`
	PickResults PickResults               `json:"pickResults" bson:"pick_results"`
	Scoring     bracket.Scoring           `json:"scoring" bson:"scoring"`
	Summary     RoundSummary              `json:"summary" bson:"summary"`
}

// TiebreakInfo lists everyone tied for first. Winner is only set when the tiebreak cascade produced a single person
type TiebreakInfo struct {
	Leaders  []string `json:"leaders" bson:"leaders"`
	Winner   string   `json:"winner,omitempty" bson:"winner,omitempty"`
	Resolved bool     `json:"resolved" bson:"resolved"`
}

// Standing is a person and the points they finish with in a projection
type Standing struct {
	Person string `json:"person" bson:"person"`
	Points int    `json:"points" bson:"points"`
}

func (s Standing) String() string {
	return fmt.Sprintf("%s (%d pts)", s.Person, s.Points)
}

// ProjectionCell is the final standings if one team wins the final in a given number of games
type ProjectionCell struct {
	First      []Standing `json:"first" bson:"first"`
	Second     []Standing `json:"second" bson:"second"`
	Third      []Standing `json:"third" bson:"third"`
	Losers     []Standing `json:"losers" bson:"losers"`
	IsPossible bool       `json:"isPossible" bson:"is_possible"`
	IsOver     bool       `json:"isOver" bson:"is_over"`
}

// Projections maps series length -> winning team -> cell. While the finalists are unknown it holds a single cell
// per length under the empty team key
type Projections map[int]map[string]ProjectionCell

// AwaitingFinalists reports whether this is the placeholder table
func (p Projections) AwaitingFinalists() bool {
	cells, ok := p[minSeriesLength]
	if !ok {
		return true
	}
	_, placeholder := cells[""]
	return placeholder
}

// YearSummary is the complete result for one playoff year
type YearSummary struct {
	Year            int                      `json:"year" bson:"year"`
	Rounds          []Round                  `json:"rounds" bson:"rounds"`
	PersonSummaries map[string]PersonSummary `json:"personSummaries" bson:"person_summaries"`
	Winners         []string                 `json:"winners" bson:"winners"`
	Losers          []string                 `json:"losers" bson:"losers"`
	TiebreakInfo    TiebreakInfo             `json:"tiebreakInfo" bson:"tiebreak_info"`
	Projections     Projections              `json:"projections" bson:"projections"`
	Teams           map[string]shared.Team   `json:"teams" bson:"teams"`
}
