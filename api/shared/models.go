/* models.go
 * This file contain the structs that are shared between sub packages: teams as reported by the bracket source and
 * the picks participants submit for a series
 * Authors: Zachary Bower
 */

package shared

// Team is a playoff team as reported by the bracket source
type Team struct {
	Name  string `json:"name" bson:"name"`
	Short string `json:"short" bson:"short"` // abbreviation used as the team code everywhere else, e.g. "TOR"
	Logo  string `json:"logo" bson:"logo"`
	Rank  string `json:"rank" bson:"rank"` // seed label from the bracket, e.g. "D1" or "WC2"
}

// Pick is one participant's prediction for one series. Games is the predicted series length (4-7)
type Pick struct {
	Team  string `json:"team" bson:"team"`
	Games int    `json:"games" bson:"games"`
}

// RoundPicks maps person -> series letter -> pick for a single round
type RoundPicks map[string]map[string]Pick
