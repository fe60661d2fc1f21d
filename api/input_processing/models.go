/* models.go
 * Contains the interfaces used by the input_processing package when turning pick files into picks
 * Authors: Zachary Bower
 */

package input_processing

import "playoff-pool/api/shared"

// TeamFinder resolves the team written on a pick form. external.TeamRepository is the production implementation
type TeamFinder interface {
	Find(pick string) (shared.Team, error)
}
