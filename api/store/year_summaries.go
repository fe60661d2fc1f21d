/* year_summaries.go
 * Contains the methods for interacting with the year_summaries collection
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"playoff-pool/api/logic"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StoreYearSummary archives the summary for its year, replacing any earlier build of the same year
// Preconditions: Receives a context and the YearSummary to be stored
// Postconditions: Upserts the year's document and returns nil, or an error if it occurs
func (s *Store) StoreYearSummary(ctx context.Context, summary logic.YearSummary) error {
	if summary.Year == 0 {
		return fmt.Errorf("summary has no year")
	}

	filter := bson.M{"year": summary.Year}
	record := YearSummaryRecord{Year: summary.Year, UpdatedAt: time.Now().UTC(), Summary: summary}

	// a single upsert so two builds of the same year can't both insert
	update := bson.M{"$set": record}
	if _, err := s.Collections.YearSummaries.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		return fmt.Errorf("summary upsert failed: %w", err)
	}
	return nil
}

// EnsureIndexes creates the unique index on year that backs the one-document-per-year archive
func (s *Store) EnsureIndexes(ctx context.Context) error {
	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "year", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("year_unique"),
	}
	if _, err := s.Collections.YearSummaries.Indexes().CreateOne(ctx, index); err != nil {
		return fmt.Errorf("failed to create year index: %w", err)
	}
	return nil
}

// FetchYearSummary returns the archived summary for a year
// Postconditions: Returns the summary, mongo.ErrNoDocuments (unwrapped) if the year was never archived, or an error
func (s *Store) FetchYearSummary(ctx context.Context, year int) (logic.YearSummary, error) {
	var record YearSummaryRecord
	err := s.Collections.YearSummaries.FindOne(ctx, bson.M{"year": year}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return logic.YearSummary{}, err
		}
		return logic.YearSummary{}, fmt.Errorf("failed to fetch summary for %d: %w", year, err)
	}
	return record.Summary, nil
}

// FetchAllYearSummaries returns every archived summary, oldest year first
func (s *Store) FetchAllYearSummaries(ctx context.Context) ([]logic.YearSummary, error) {
	opts := options.Find().SetSort(bson.D{{Key: "year", Value: 1}})
	cursor, err := s.Collections.YearSummaries.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch summaries: %w", err)
	}
	defer cursor.Close(ctx)

	var records []YearSummaryRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode summaries: %w", err)
	}

	summaries := make([]logic.YearSummary, 0, len(records))
	for _, r := range records {
		summaries = append(summaries, r.Summary)
	}
	return summaries, nil
}
