/* api.go
 * This file contains the public methods for interacting with the pool. Callers (main, bot, web) should only use the
 * functions in this file, not the sub packages, so every year is built the same way
 * Authors: Zachary Bower
 */

package api

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"playoff-pool/api/bracket"
	"playoff-pool/api/config"
	"playoff-pool/api/external"
	"playoff-pool/api/input_processing"
	"playoff-pool/api/logic"
	"playoff-pool/api/shared"
	"playoff-pool/api/store"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNoArchive = errors.New("no archive configured")

// API provides methods for building and reporting on pool years
type API struct {
	Store       store.Interface // nil when running without an archive
	Bracket     BracketSource
	Pool        config.Pool
	Topology    bracket.Topology
	DataDir     string
	CurrentYear int
	Logger      *logrus.Logger
	Now         func() time.Time
}

// NewAPI creates a new API instance with the provided configuration. The archive is only connected when a mongo uri is set
func NewAPI(ctx context.Context, cfg config.Config, logger *logrus.Logger) (*API, error) {
	a := &API{
		Bracket:     external.NewFetcher(cfg.NhlBaseURL, cfg.DataDir, cfg.NhlRPS, logger),
		Pool:        cfg.Pool,
		Topology:    bracket.DefaultTopology,
		DataDir:     cfg.DataDir,
		CurrentYear: cfg.Year,
		Logger:      logger,
		Now:         time.Now,
	}
	if cfg.MongoURI != "" {
		s, err := store.NewStore(ctx, cfg.MongoDB, cfg.MongoURI)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize store: %w", err)
		}
		a.Store = s
	}
	return a, nil
}

// BuildYear fetches the bracket, imports every round's picks, scores the year and archives the result
// Preconditions: Receives a context and the year to build
// Postconditions: Returns the YearSummary, ErrPlayoffsNotStarted if there is no bracket yet, or an error if it occurs
func (a *API) BuildYear(ctx context.Context, year int) (logic.YearSummary, error) {
	log := a.Logger.WithField("year", year)

	b, err := a.Bracket.FetchBracket(ctx, year, a.Topology)
	if err != nil {
		return logic.YearSummary{}, err
	}

	series := b.Series
	if year == a.CurrentYear {
		series = a.withLeadStartTimes(ctx, year, series)
	}
	set := bracket.NewSeriesSet(a.Topology, series)

	teams := external.NewTeamRepository(b.Teams, a.Pool.TeamAliases)
	importer := input_processing.NewImporter(a.DataDir, teams, a.Pool.NameAliases, a.Logger)
	picks := make(map[int]shared.RoundPicks, len(a.Topology.Rounds))
	for round := 1; round <= len(a.Topology.Rounds); round++ {
		roundPicks, err := importer.ReadRound(year, round, a.Topology, set)
		if err != nil {
			return logic.YearSummary{}, fmt.Errorf("year %d round %d: %w", year, round, err)
		}
		picks[round] = roundPicks
	}

	summary, err := logic.BuildYear(logic.YearInput{
		Year:     year,
		Topology: a.Topology,
		Scoring:  a.Pool.Scoring,
		Series:   series,
		Picks:    picks,
		Teams:    b.Teams,
	})
	if err != nil {
		return logic.YearSummary{}, err
	}
	log.WithField("people", len(summary.PersonSummaries)).Info("Built year")

	if a.Store != nil {
		if err := a.Store.StoreYearSummary(ctx, summary); err != nil {
			return logic.YearSummary{}, fmt.Errorf("failed to archive %d: %w", year, err)
		}
	}
	return summary, nil
}

// withLeadStartTimes looks up when the first series of each round starts. Schedules only gate picks so a failure is
// logged and the series are used as they are
func (a *API) withLeadStartTimes(ctx context.Context, year int, series []bracket.Series) []bracket.Series {
	leads := make([]string, 0, len(a.Topology.Rounds))
	for _, letters := range a.Topology.Rounds {
		if len(letters) > 0 {
			leads = append(leads, letters[0])
		}
	}
	withTimes, err := a.Bracket.FetchSchedules(ctx, year, series, leads)
	if err != nil {
		a.Logger.WithError(err).WithField("year", year).Warn("Failed to fetch series schedules")
		return series
	}
	return withTimes
}

// Summary returns the archived summary for a year
// Postconditions: Returns the summary, mongo.ErrNoDocuments if the year isn't archived, or ErrNoArchive
func (a *API) Summary(ctx context.Context, year int) (logic.YearSummary, error) {
	if a.Store == nil {
		return logic.YearSummary{}, ErrNoArchive
	}
	return a.Store.FetchYearSummary(ctx, year)
}

// summary gets the summary used for reports. The current year is always rebuilt, earlier years come from the
// archive when they are there
func (a *API) summary(ctx context.Context, year int) (logic.YearSummary, error) {
	if year != a.CurrentYear && a.Store != nil {
		s, err := a.Store.FetchYearSummary(ctx, year)
		if err == nil {
			return s, nil
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return logic.YearSummary{}, err
		}
	}
	return a.BuildYear(ctx, year)
}

// Standings returns the year's leaderboard as text
func (a *API) Standings(ctx context.Context, year int) (string, error) {
	s, err := a.summary(ctx, year)
	if err != nil {
		return notStartedOr(year, err)
	}

	var response strings.Builder
	response.WriteString(fmt.Sprintf("%d standings:\n", year))
	if len(s.PersonSummaries) == 0 {
		response.WriteString("No picks yet\n")
		return response.String(), nil
	}
	writeStandings(&response, s.PersonSummaries)

	tb := s.TiebreakInfo
	if len(tb.Leaders) > 1 {
		response.WriteString(fmt.Sprintf("Tied for first: %s. ", strings.Join(tb.Leaders, ", ")))
		if tb.Resolved {
			response.WriteString(fmt.Sprintf("%s wins the tiebreak\n", tb.Winner))
		} else {
			response.WriteString("The tiebreak is unresolved\n")
		}
	}
	return response.String(), nil
}

// RoundReport returns the series, scoring and standings of one round as text
func (a *API) RoundReport(ctx context.Context, year int, number int) (string, error) {
	if number < 1 || number > len(a.Topology.Rounds) {
		return "", fmt.Errorf("round must be between 1 and %d", len(a.Topology.Rounds))
	}
	s, err := a.summary(ctx, year)
	if err != nil {
		return notStartedOr(year, err)
	}
	if number > len(s.Rounds) {
		return "", shared.LookupError("round", fmt.Sprint(number))
	}
	round := s.Rounds[number-1]
	letters := a.Topology.Rounds[number-1]

	var response strings.Builder
	response.WriteString(fmt.Sprintf("%d round %d (team %d, games %d, bonus %d)\n", year, number, round.Scoring.Team, round.Scoring.Games, round.Scoring.Bonus))
	ordered, err := bracket.SeriesSet(round.Series).Round(a.Topology, number)
	if err != nil {
		return "", err
	}
	for _, series := range ordered {
		response.WriteString(fmt.Sprintf("- %s: %s\n", series.Letter, series.Summary(a.Topology)))
	}

	lead := round.Series[letters[0]]
	now := a.Now()
	if lead.IsLocked(now) {
		response.WriteString(fmt.Sprintf("Picks closed <t:%d>\n", lead.StartTimeUTC.Unix()))
	}
	if len(round.Summary.Summaries) == 0 {
		switch {
		case lead.StartTimeUTC != nil && !bracket.IsRoundOpen(lead.StartTimeUTC, now):
			response.WriteString(fmt.Sprintf("Picks open <t:%d>\n", bracket.RoundOpensAt(*lead.StartTimeUTC).Unix()))
		case lead.IsLocked(now):
			response.WriteString("No picks were entered\n")
		default:
			response.WriteString("No picks yet\n")
		}
		return response.String(), nil
	}
	writeStandings(&response, round.Summary.Summaries)
	return response.String(), nil
}

// ProjectionReport lists, for every way the final can still end, who would finish where
func (a *API) ProjectionReport(ctx context.Context, year int) (string, error) {
	s, err := a.summary(ctx, year)
	if err != nil {
		return notStartedOr(year, err)
	}
	if s.Projections.AwaitingFinalists() {
		return fmt.Sprintf("The %d finalists aren't known yet", year) + a.finalContenders(s), nil
	}

	var response strings.Builder
	response.WriteString(fmt.Sprintf("%d final projections:\n", year))
	for _, team := range s.Projections.SortedTeams() {
		for games := 4; games <= 7; games++ {
			cell := s.Projections[games][team]
			if !cell.IsPossible {
				continue
			}
			label := fmt.Sprintf("%s in %d", team, games)
			if cell.IsOver {
				label += " (final result)"
			}
			response.WriteString(fmt.Sprintf("%s: 1st %s", label, logic.FormatStandings(cell.First)))
			if len(cell.Second) > 0 {
				response.WriteString(fmt.Sprintf(" | 2nd %s", logic.FormatStandings(cell.Second)))
			}
			if len(cell.Third) > 0 {
				response.WriteString(fmt.Sprintf(" | 3rd %s", logic.FormatStandings(cell.Third)))
			}
			response.WriteString(fmt.Sprintf(" | last %s\n", logic.FormatStandings(cell.Losers)))
		}
	}
	return response.String(), nil
}

// finalContenders lists the teams that can still come out of each series feeding the final, or "" if none are known
func (a *API) finalContenders(s logic.YearSummary) string {
	parents, ok := a.Topology.Parents(a.Topology.FinalLetter())
	if !ok {
		return ""
	}
	var series []bracket.Series
	for _, round := range s.Rounds {
		for _, rs := range round.Series {
			series = append(series, rs)
		}
	}
	resolver := bracket.NewWinnerResolver(a.Topology, bracket.NewSeriesSet(a.Topology, series))

	var response strings.Builder
	for _, letter := range parents {
		teams, err := resolver.PossibleWinners(letter)
		if err != nil || len(teams) == 0 {
			continue
		}
		response.WriteString(fmt.Sprintf("\n- Winner %s: %s", letter, strings.Join(teams, ", ")))
	}
	if response.Len() == 0 {
		return ""
	}
	return "\nStill alive for the final:" + response.String()
}

// PersonReport returns one person's year: their totals and every pick with its status. The name is matched without
// regard to case
func (a *API) PersonReport(ctx context.Context, year int, name string) (string, error) {
	s, err := a.summary(ctx, year)
	if err != nil {
		return notStartedOr(year, err)
	}

	var total logic.PersonSummary
	found := false
	for person, ps := range s.PersonSummaries {
		if strings.EqualFold(person, strings.TrimSpace(name)) {
			total, found = ps, true
			break
		}
	}
	if !found {
		return fmt.Sprintf("No picks from %s in %d", name, year), nil
	}

	var response strings.Builder
	response.WriteString(fmt.Sprintf("%s, %d: rank %d, %d pts (%d possible)\n", total.Person, year, total.Rank, total.Points, total.PossiblePoints))
	for i, round := range s.Rounds {
		results, ok := round.PickResults[total.Person]
		if !ok {
			continue
		}
		rs := round.Summary.Summaries[total.Person]
		response.WriteString(fmt.Sprintf("Round %d: %d pts (%d possible)\n", i+1, rs.Points, rs.PossiblePoints))
		if i >= len(a.Topology.Rounds) {
			continue
		}
		for _, letter := range a.Topology.Rounds[i] {
			r, ok := results[letter]
			if !ok {
				continue
			}
			response.WriteString(fmt.Sprintf("- %s: %s in %d (team %s, games %s) %d pts\n", letter, r.Pick.Team, r.Pick.Games, r.TeamStatus, r.GamesStatus, r.Points))
		}
	}
	return response.String(), nil
}

// History returns every archived year's result and each person's pool wins and losses
func (a *API) History(ctx context.Context) (string, error) {
	if a.Store == nil {
		return "", ErrNoArchive
	}
	summaries, err := a.Store.FetchAllYearSummaries(ctx)
	if err != nil {
		return "", err
	}
	if len(summaries) == 0 {
		return "No years have been archived yet", nil
	}
	index := BuildIndex(summaries)

	var response strings.Builder
	response.WriteString("Pool winners:\n")
	for _, r := range index.Years {
		winners := strings.Join(r.PoolWinners, ", ")
		if r.TiebreakWinner != "" {
			winners = r.TiebreakWinner
		}
		line := fmt.Sprintf("%d: %s", r.Year, winners)
		if r.CupWinner != "" {
			line += fmt.Sprintf(" (Cup: %s)", r.CupWinner)
		}
		response.WriteString(line + "\n")
	}
	response.WriteString("Wins and losses:\n")
	for _, wl := range index.WinsLosses {
		response.WriteString(fmt.Sprintf("%s: %d W, %d L\n", wl.Person, wl.Wins, wl.Losses))
	}
	return response.String(), nil
}

// writeStandings writes one line per person, best rank first
func writeStandings(response *strings.Builder, summaries map[string]logic.PersonSummary) {
	people := make([]logic.PersonSummary, 0, len(summaries))
	for _, s := range summaries {
		people = append(people, s)
	}
	sort.Slice(people, func(i, j int) bool {
		if people[i].Rank != people[j].Rank {
			return people[i].Rank < people[j].Rank
		}
		return people[i].Person < people[j].Person
	})
	for _, p := range people {
		response.WriteString(fmt.Sprintf("%d. %s - %d pts (%d possible)\n", p.Rank, p.Person, p.Points, p.PossiblePoints))
	}
}

// notStartedOr turns ErrPlayoffsNotStarted into a message, other errors are returned as is
func notStartedOr(year int, err error) (string, error) {
	if errors.Is(err, shared.ErrPlayoffsNotStarted) {
		return fmt.Sprintf("The %d playoffs haven't started yet", year), nil
	}
	return "", err
}
