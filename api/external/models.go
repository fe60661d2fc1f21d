/* models.go
 * This file contains the models used by the external package when fetching data from the NHL web api
 * Authors: Zachary Bower
 */

package external

import (
	"time"

	"playoff-pool/api/bracket"
	"playoff-pool/api/shared"
)

// Bracket is the parsed playoff bracket: every team seen and a series for every letter of the topology
type Bracket struct {
	Teams  map[string]shared.Team
	Series []bracket.Series
}

// Wire format of /v1/playoff-bracket/{year}. Only the fields the pool uses are decoded
type bracketResponse struct {
	Series []bracketSeries `json:"series"`
}

type bracketSeries struct {
	SeriesURL            string   `json:"seriesUrl"`
	SeriesTitle          string   `json:"seriesTitle"`
	SeriesLetter         string   `json:"seriesLetter"`
	TopSeedRankAbbrev    string   `json:"topSeedRankAbbrev"`
	TopSeedWins          int      `json:"topSeedWins"`
	BottomSeedRankAbbrev string   `json:"bottomSeedRankAbbrev"`
	BottomSeedWins       int      `json:"bottomSeedWins"`
	TopSeedTeam          *apiTeam `json:"topSeedTeam"`
	BottomSeedTeam       *apiTeam `json:"bottomSeedTeam"`
}

type apiTeam struct {
	Abbrev string `json:"abbrev"`
	Name   struct {
		Default string `json:"default"`
	} `json:"name"`
	Logo string `json:"logo"`
}

// Wire format of /v1/schedule/playoff-series/{season}/{letter}
type scheduleResponse struct {
	Games []struct {
		StartTimeUTC time.Time `json:"startTimeUTC"`
	} `json:"games"`
}
