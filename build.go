/* build.go
 * Contains the build mode: score each requested year and write the JSON files the pool site reads
 * Authors: Zachary Bower
 */

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"playoff-pool/api/api"
	"playoff-pool/api/logic"
	"playoff-pool/api/shared"
)

const indexFileName = "yearly_index.json"

// buildYears builds every year, writing <out>/<year>.json for each and <out>/yearly_index.json for all of them
// Preconditions: Receives the API, the years to build and the output directory
// Postconditions: Every year that could be built is written. Years whose playoffs haven't started are skipped.
// Returns an error naming every year that failed
func buildYears(ctx context.Context, a *api.API, years []int, out string) error {
	if err := os.MkdirAll(out, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", out, err)
	}

	var failures []error
	summaries := make([]logic.YearSummary, 0, len(years))
	for _, year := range years {
		log := a.Logger.WithField("year", year)
		summary, err := a.BuildYear(ctx, year)
		if errors.Is(err, shared.ErrPlayoffsNotStarted) {
			log.Warn("Playoffs haven't started, skipping")
			continue
		}
		if err != nil {
			log.WithError(err).Error("Failed to build year")
			failures = append(failures, err)
			continue
		}
		if err := writeJSON(filepath.Join(out, fmt.Sprintf("%d.json", year)), summary); err != nil {
			failures = append(failures, err)
			continue
		}
		summaries = append(summaries, summary)
		log.Info("Wrote year")
	}

	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Year < summaries[j].Year })
	if err := writeJSON(filepath.Join(out, indexFileName), api.BuildIndex(summaries)); err != nil {
		failures = append(failures, err)
	}
	return errors.Join(failures...)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
