/* external.go
 * Contains the logic used to fetch data from the NHL web api (or a cached copy of it) and return the results to the
 * higher level functions
 * Authors: Zachary Bower
 */

package external

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"playoff-pool/api/bracket"
	"playoff-pool/api/shared"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const cacheFile = "api.json"

var errNotFound = errors.New("not found")

// Fetcher loads bracket and schedule data. All requests share one rate limiter
type Fetcher struct {
	baseURL string
	dataDir string
	client  *http.Client
	limiter *rate.Limiter
	logger  *logrus.Logger
}

// NewFetcher creates a fetcher for the api at baseURL, reading cached responses from dataDir
func NewFetcher(baseURL string, dataDir string, rps rate.Limit, logger *logrus.Logger) *Fetcher {
	return &Fetcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		dataDir: dataDir,
		client:  &http.Client{},
		limiter: rate.NewLimiter(rps, 1),
		logger:  logger,
	}
}

// FetchBracket loads the bracket for a year
// Preconditions: Receives the year and bracket topology
// Postconditions: Returns the parsed bracket, using <dataDir>/<year>/api.json if it exists and the live api otherwise.
// Returns ErrPlayoffsNotStarted if neither has any series for the year
func (f *Fetcher) FetchBracket(ctx context.Context, year int, t bracket.Topology) (Bracket, error) {
	log := f.logger.WithField("year", year)

	raw, err := os.ReadFile(filepath.Join(f.dataDir, fmt.Sprint(year), cacheFile))
	switch {
	case err == nil:
		log.Debug("Loaded cached bracket")
	case errors.Is(err, fs.ErrNotExist):
		log.Debug("No cached bracket, fetching from api")
		raw, err = f.get(ctx, fmt.Sprintf("%s/v1/playoff-bracket/%d", f.baseURL, year))
		if errors.Is(err, errNotFound) {
			return Bracket{}, shared.ErrPlayoffsNotStarted
		}
		if err != nil {
			return Bracket{}, fmt.Errorf("error fetching bracket for %d: %w", year, err)
		}
	default:
		return Bracket{}, fmt.Errorf("error reading cached bracket for %d: %w", year, err)
	}

	return ParseBracket(raw, t)
}

// FetchSchedules looks up the first game of each listed series and sets its start time
// Preconditions: Receives the year, the current series and the letters to look up
// Postconditions: Returns a copy of series with start times applied. Series without a schedule are left unchanged
func (f *Fetcher) FetchSchedules(ctx context.Context, year int, series []bracket.Series, letters []string) ([]bracket.Series, error) {
	out := make([]bracket.Series, len(series))
	copy(out, series)

	season := fmt.Sprintf("%d%d", year-1, year)
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for i, s := range out {
		if !slices.Contains(letters, s.Letter) {
			continue
		}
		wg.Add(1)
		go func(i int, s bracket.Series) {
			defer wg.Done()
			url := fmt.Sprintf("%s/v1/schedule/playoff-series/%s/%s", f.baseURL, season, strings.ToLower(s.Letter))
			start, ok, err := f.fetchStart(ctx, url)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("error fetching schedule for series %s: %w", s.Letter, err)
				}
				return
			}
			if ok {
				out[i] = s.WithStartTime(start)
			}
		}(i, s)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}

func (f *Fetcher) fetchStart(ctx context.Context, url string) (time.Time, bool, error) {
	raw, err := f.get(ctx, url)
	if errors.Is(err, errNotFound) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}
	return ParseScheduleStart(raw)
}

// get performs a rate limited GET and returns the (decompressed) body
func (f *Fetcher) get(ctx context.Context, url string) ([]byte, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	request.Header.Set("User-Agent", "PlayoffPool/1.0")
	request.Header.Set("Accept-Encoding", "gzip")

	response, err := f.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusNotFound {
		return nil, errNotFound
	}
	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s: status code %d", url, response.StatusCode)
	}

	var body io.Reader = response.Body
	if response.Header.Get("Content-Encoding") == "gzip" {
		reader, err := gzip.NewReader(response.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer reader.Close()
		body = reader
	}

	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return raw, nil
}
