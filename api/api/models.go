/* models.go
 * This file contain the interfaces and structs that are used by api consumers
 * Authors: Zachary Bower
 */

package api

import (
	"context"

	"playoff-pool/api/bracket"
	"playoff-pool/api/external"
	"playoff-pool/api/logic"
)

// BracketSource provides the series state for a year. external.Fetcher is the production implementation
type BracketSource interface {
	FetchBracket(ctx context.Context, year int, t bracket.Topology) (external.Bracket, error)
	FetchSchedules(ctx context.Context, year int, series []bracket.Series, letters []string) ([]bracket.Series, error)
}

// YearlyIndex is the cross-year file written next to the per-year summaries
type YearlyIndex struct {
	Years      []logic.YearRecord `json:"years"`
	WinsLosses []logic.WinLoss    `json:"winsLosses"`
}

// BuildIndex collects the headline results of each summary
func BuildIndex(summaries []logic.YearSummary) YearlyIndex {
	records := make([]logic.YearRecord, 0, len(summaries))
	for _, s := range summaries {
		records = append(records, logic.RecordFromSummary(s))
	}
	return YearlyIndex{Years: records, WinsLosses: logic.WinsLosses(records)}
}
