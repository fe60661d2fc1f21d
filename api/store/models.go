/* models.go
 * This file contain the structs that relate to DB objects
 * Authors: Zachary Bower
 */

package store

import (
	"time"

	"playoff-pool/api/logic"
)

// YearSummaryRecord is how a year is archived: the summary plus when it was last rebuilt
type YearSummaryRecord struct {
	Year      int               `bson:"year"`
	UpdatedAt time.Time         `bson:"updated_at"`
	Summary   logic.YearSummary `bson:"summary"`
}
