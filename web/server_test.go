/* server_test.go
 * Contains unit tests for the web handlers
 * Authors: Zachary Bower
 */

package web

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"playoff-pool/api/api"
	"playoff-pool/api/bracket"
	"playoff-pool/api/external"
	"playoff-pool/api/logic"
	"playoff-pool/api/shared"
	"playoff-pool/api/store"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestServer(t *testing.T, s store.Interface) *Server {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	source := &api.MockBracketSource{Brackets: map[int]external.Bracket{
		2025: {
			Teams: map[string]shared.Team{
				"FLA": {Name: "Florida Panthers", Short: "FLA"},
				"TBL": {Name: "Tampa Bay Lightning", Short: "TBL"},
			},
			Series: []bracket.Series{bracket.NewSeries("A").WithSeeds("FLA", "TBL").WithWins(4, 1)},
		},
	}}
	return NewServer(Config{
		Addr:   ":0",
		API:    api.NewTestAPI(source, s, t.TempDir(), 2025),
		Logger: logger,
	})
}

// overlapSource records how many bracket fetches run at once
type overlapSource struct {
	api.MockBracketSource

	mu       sync.Mutex
	inFlight int
	maxSeen  int
	calls    int
}

func (o *overlapSource) FetchBracket(ctx context.Context, year int, t bracket.Topology) (external.Bracket, error) {
	o.mu.Lock()
	o.inFlight++
	o.calls++
	o.maxSeen = max(o.maxSeen, o.inFlight)
	o.mu.Unlock()

	time.Sleep(20 * time.Millisecond)

	o.mu.Lock()
	o.inFlight--
	o.mu.Unlock()
	return o.MockBracketSource.FetchBracket(ctx, year, t)
}

func do(s *Server, method string, path string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, req)
	return rec
}

// region RefreshWebhookHandler tests

func TestRefreshWebhookHandler_WrongMethod(t *testing.T) {
	rec := do(createTestServer(t, api.NewMockStore()), http.MethodGet, "/webhooks/refresh", "")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRefreshWebhookHandler_InvalidJSON(t *testing.T) {
	rec := do(createTestServer(t, api.NewMockStore()), http.MethodPost, "/webhooks/refresh", "{not json")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRefreshWebhookHandler_InvalidYear(t *testing.T) {
	rec := do(createTestServer(t, api.NewMockStore()), http.MethodPost, "/webhooks/refresh", `{"year": 25}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRefreshWebhookHandler_RebuildsCurrentYear(t *testing.T) {
	mockStore := api.NewMockStore()
	s := createTestServer(t, mockStore)

	rec := do(s, http.MethodPost, "/webhooks/refresh", "")
	s.rebuilds.Wait()

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 1, mockStore.StoreCalls)
	archived, err := mockStore.FetchYearSummary(t.Context(), 2025)
	require.NoError(t, err)
	assert.Equal(t, "Florida Panthers", archived.Teams["FLA"].Name)
}

func TestRefreshWebhookHandler_NotStarted(t *testing.T) {
	mockStore := api.NewMockStore()
	s := createTestServer(t, mockStore)

	rec := do(s, http.MethodPost, "/webhooks/refresh", `{"year": 2026}`)
	s.rebuilds.Wait()

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 0, mockStore.StoreCalls)
}

func TestRefreshWebhookHandler_ArchiveFailure(t *testing.T) {
	mockStore := api.NewMockStore()
	mockStore.StoreYearSummaryError = errors.New("disk full")
	s := createTestServer(t, mockStore)

	rec := do(s, http.MethodPost, "/webhooks/refresh", `{"year": 2025}`)
	s.rebuilds.Wait()

	// the webhook has already answered by the time the rebuild fails
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 1, mockStore.StoreCalls)
}

func TestRefreshWebhookHandler_SameYearRebuildsDontOverlap(t *testing.T) {
	mockStore := api.NewMockStore()
	s := createTestServer(t, mockStore)
	source := &overlapSource{MockBracketSource: *s.api.Bracket.(*api.MockBracketSource)}
	s.api.Bracket = source

	first := do(s, http.MethodPost, "/webhooks/refresh", `{"year": 2025}`)
	second := do(s, http.MethodPost, "/webhooks/refresh", `{"year": 2025}`)
	s.rebuilds.Wait()

	assert.Equal(t, http.StatusAccepted, first.Code)
	assert.Equal(t, http.StatusAccepted, second.Code)
	assert.Equal(t, 2, source.calls)
	assert.Equal(t, 1, source.maxSeen)
	assert.Equal(t, 2, mockStore.StoreCalls)
}

func TestYearLock(t *testing.T) {
	s := NewServer(Config{})

	assert.Same(t, s.yearLock(2025), s.yearLock(2025))
	assert.NotSame(t, s.yearLock(2025), s.yearLock(2024))
}

// endregion

// region SummaryHandler tests

func TestSummaryHandler_Success(t *testing.T) {
	rec := do(createTestServer(t, api.NewMockStore(store.CreateSampleYearSummary(2024))), http.MethodGet, "/summaries/2024", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var summary logic.YearSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, 2024, summary.Year)
	assert.Equal(t, 15, summary.PersonSummaries["Derrick"].Points)
}

func TestSummaryHandler_NotArchived(t *testing.T) {
	rec := do(createTestServer(t, api.NewMockStore()), http.MethodGet, "/summaries/2010", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSummaryHandler_BadYear(t *testing.T) {
	rec := do(createTestServer(t, api.NewMockStore()), http.MethodGet, "/summaries/latest", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSummaryHandler_NoArchive(t *testing.T) {
	rec := do(createTestServer(t, nil), http.MethodGet, "/summaries/2024", "")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestSummaryHandler_StoreError(t *testing.T) {
	mockStore := api.NewMockStore()
	mockStore.FetchYearSummaryError = errors.New("connection reset")

	rec := do(createTestServer(t, mockStore), http.MethodGet, "/summaries/2024", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestSummaryHandler_WrongMethod(t *testing.T) {
	rec := do(createTestServer(t, api.NewMockStore()), http.MethodPost, "/summaries/2024", "")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

// endregion

// region IndexHandler tests

func TestIndexHandler(t *testing.T) {
	mockStore := api.NewMockStore(store.CreateSampleYearSummary(2023), store.CreateSampleYearSummary(2024))

	rec := do(createTestServer(t, mockStore), http.MethodGet, "/index", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var index api.YearlyIndex
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &index))
	require.Len(t, index.Years, 2)
	assert.Equal(t, 2023, index.Years[0].Year)
	assert.Equal(t, logic.WinLoss{Person: "Derrick", Wins: 2}, index.WinsLosses[0])
}

func TestIndexHandler_NoArchive(t *testing.T) {
	rec := do(createTestServer(t, nil), http.MethodGet, "/index", "")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

// endregion

func TestNewServer_DefaultLogger(t *testing.T) {
	s := NewServer(Config{Addr: ":8080"})

	assert.NotNil(t, s.logger)
	assert.Nil(t, s.api)
}
