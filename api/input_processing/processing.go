/* processing.go
 * Contains the logic for reading the pick form exports (one CSV per round) into picks keyed by person and series
 * Authors: Zachary Bower
 */

package input_processing

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"playoff-pool/api/bracket"
	"playoff-pool/api/shared"

	"github.com/sirupsen/logrus"
)

const (
	// timestamp is column 0 and is ignored
	nameColumn       = 1
	firstPickColumn  = 2
	roundFilePattern = "round%d.csv"
)

type Importer struct {
	dataDir     string
	teams       TeamFinder
	nameAliases map[string]string
	logger      *logrus.Logger
}

// NewImporter creates an importer reading <dataDir>/<year>/round<N>.csv. nameAliases is keyed by lower case name
func NewImporter(dataDir string, teams TeamFinder, nameAliases map[string]string, logger *logrus.Logger) *Importer {
	return &Importer{dataDir: dataDir, teams: teams, nameAliases: nameAliases, logger: logger}
}

// ReadRound reads the picks for one round of a year
// Preconditions: Receives the year, round number, the topology and the current series
// Postconditions: Returns person -> letter -> pick. A round without a file yet has no picks. Returns an error if
// the file can't be read or a pick is malformed
func (im *Importer) ReadRound(year int, round int, t bracket.Topology, series bracket.SeriesSet) (shared.RoundPicks, error) {
	path := filepath.Join(im.dataDir, strconv.Itoa(year), fmt.Sprintf(roundFilePattern, round))
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		im.logger.WithFields(logrus.Fields{"year": year, "round": round}).Debug("No picks file for round")
		return shared.RoundPicks{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error opening picks for round %d: %w", round, err)
	}
	defer file.Close()

	letters, err := t.SeriesForRound(round)
	if err != nil {
		return nil, err
	}
	picks, err := im.ReadPicks(file, letters, series)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return picks, nil
}

// ReadPicks parses a pick form export. The first row is a header. Each following row is
// timestamp, name, then (team, games) pairs in any order
// Preconditions: Receives the CSV, the letters of the round's series and the current series
// Postconditions: Returns person -> letter -> pick, skipping blank pairs and teams that aren't playing this round
func (im *Importer) ReadPicks(r io.Reader, letters []string, series bracket.SeriesSet) (shared.RoundPicks, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading csv: %w", err)
	}

	picks := shared.RoundPicks{}
	if len(rows) == 0 {
		return picks, nil
	}

	// skip header
	for _, row := range rows[1:] {
		if len(row) <= nameColumn || strings.TrimSpace(row[nameColumn]) == "" {
			im.logger.WithField("row", row).Warn("Skipping pick row without a name")
			continue
		}
		person := im.StandardizeName(row[nameColumn])

		for col := firstPickColumn; col < len(row); col += 2 {
			teamName := StripRank(row[col])
			gamesRaw := ""
			if col+1 < len(row) {
				gamesRaw = strings.TrimSpace(row[col+1])
			}
			if teamName == "" || gamesRaw == "" {
				continue
			}

			team, err := im.teams.Find(teamName)
			if err != nil {
				return nil, fmt.Errorf("pick for %s: %w", person, err)
			}
			s, ok := series.FindByTeam(letters, team.Short)
			if !ok {
				im.logger.WithFields(logrus.Fields{"person": person, "team": team.Short}).Warn("Could not find series for team")
				continue
			}

			games, err := strconv.Atoi(gamesRaw)
			if err != nil {
				return nil, &shared.PickInputError{Person: person, Series: s.Letter, Value: gamesRaw, Reason: "games is not a number"}
			}
			if _, ok := picks[person]; !ok {
				picks[person] = map[string]shared.Pick{}
			}
			picks[person][s.Letter] = shared.Pick{Team: team.Short, Games: games}
		}
	}
	return picks, nil
}

// StandardizeName maps the names people sign the form with to the name the pool uses, e.g. "dad" -> "Derrick".
// Anything without an alias is capitalized
func (im *Importer) StandardizeName(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := im.nameAliases[lower]; ok {
		return alias
	}
	runes := []rune(lower)
	if len(runes) == 0 {
		return ""
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// StripRank removes the seed suffix the form shows after a team, e.g. "Florida Panthers (D3)" -> "Florida Panthers"
func StripRank(team string) string {
	if i := strings.Index(team, "("); i != -1 {
		team = team[:i]
	}
	return strings.TrimSpace(team)
}
