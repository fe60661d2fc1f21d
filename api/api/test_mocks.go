/* test_mocks.go
 * Contains mock structures and interfaces for testing the API package and its consumers
 * Authors: Zachary Bower
 */

package api

import (
	"context"
	"io"
	"slices"
	"sync"
	"time"

	"playoff-pool/api/bracket"
	"playoff-pool/api/config"
	"playoff-pool/api/external"
	"playoff-pool/api/logic"
	"playoff-pool/api/shared"
	"playoff-pool/api/store"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

// MockStore implements the Store interface for testing
type MockStore struct {
	mu        sync.Mutex
	Summaries map[int]logic.YearSummary

	// Error injection for testing error paths
	StoreYearSummaryError      error
	FetchYearSummaryError      error
	FetchAllYearSummariesError error

	StoreCalls int
}

// Ensure MockStore implements Interface
var _ store.Interface = (*MockStore)(nil)

// mockDatabase implements the minimal Database interface needed for tests
type mockDatabase struct {
	name string
}

func (m *mockDatabase) Name() string {
	return m.name
}

type mockClient struct{}

func (mockClient) Disconnect(context.Context) error { return nil }

// NewMockStore creates a new MockStore holding the given summaries
func NewMockStore(summaries ...logic.YearSummary) *MockStore {
	m := &MockStore{Summaries: make(map[int]logic.YearSummary)}
	for _, s := range summaries {
		m.Summaries[s.Year] = s
	}
	return m
}

func (m *MockStore) StoreYearSummary(ctx context.Context, summary logic.YearSummary) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StoreCalls++
	if m.StoreYearSummaryError != nil {
		return m.StoreYearSummaryError
	}
	m.Summaries[summary.Year] = summary
	return nil
}

func (m *MockStore) FetchYearSummary(ctx context.Context, year int) (logic.YearSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FetchYearSummaryError != nil {
		return logic.YearSummary{}, m.FetchYearSummaryError
	}
	s, ok := m.Summaries[year]
	if !ok {
		return logic.YearSummary{}, mongo.ErrNoDocuments
	}
	return s, nil
}

func (m *MockStore) FetchAllYearSummaries(ctx context.Context) ([]logic.YearSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FetchAllYearSummariesError != nil {
		return nil, m.FetchAllYearSummariesError
	}
	years := make([]int, 0, len(m.Summaries))
	for year := range m.Summaries {
		years = append(years, year)
	}
	slices.Sort(years)
	out := make([]logic.YearSummary, 0, len(years))
	for _, year := range years {
		out = append(out, m.Summaries[year])
	}
	return out, nil
}

func (m *MockStore) GetDatabase() interface{ Name() string } {
	return &mockDatabase{name: "test_db"}
}

func (m *MockStore) GetClient() interface{ Disconnect(context.Context) error } {
	return mockClient{}
}

// MockBracketSource implements BracketSource with fixed data
type MockBracketSource struct {
	Brackets      map[int]external.Bracket
	Starts        map[string]time.Time
	FetchError    error
	ScheduleError error
}

func (m *MockBracketSource) FetchBracket(ctx context.Context, year int, t bracket.Topology) (external.Bracket, error) {
	if m.FetchError != nil {
		return external.Bracket{}, m.FetchError
	}
	b, ok := m.Brackets[year]
	if !ok {
		return external.Bracket{}, shared.ErrPlayoffsNotStarted
	}
	return b, nil
}

func (m *MockBracketSource) FetchSchedules(ctx context.Context, year int, series []bracket.Series, letters []string) ([]bracket.Series, error) {
	if m.ScheduleError != nil {
		return nil, m.ScheduleError
	}
	out := slices.Clone(series)
	for i, s := range out {
		if start, ok := m.Starts[s.Letter]; ok && slices.Contains(letters, s.Letter) {
			out[i] = s.WithStartTime(start)
		}
	}
	return out, nil
}

// NewTestAPI creates an API backed by mocks, reading picks from dataDir
func NewTestAPI(source BracketSource, s store.Interface, dataDir string, currentYear int) *API {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return &API{
		Store:       s,
		Bracket:     source,
		Pool:        config.DefaultPool(),
		Topology:    bracket.DefaultTopology,
		DataDir:     dataDir,
		CurrentYear: currentYear,
		Logger:      logger,
		Now:         time.Now,
	}
}
