/* summarizer.go
 * Contains the round and year summaries: totals per person, ranks, winners, losers and the tiebreak cascade
 * Authors: Zachary Bower
 */

package logic

import (
	"slices"

	"playoff-pool/api/shared"
)

// SummarizeRound totals every person's pick results for one round and ranks them by points
// Preconditions: Receives the pick results for a single round
// Postconditions: Returns the RoundSummary with ranks, winners (rank 1) and losers (worst rank)
func SummarizeRound(results PickResults) RoundSummary {
	summaries := make(map[string]PersonSummary, len(results))
	points := make(map[string]int, len(results))

	for person, bySeries := range results {
		summary := PersonSummary{Person: person}
		for _, result := range bySeries {
			summary.Points += result.Points
			summary.PossiblePoints += result.PossiblePoints
			if result.TeamStatus == StatusCorrect {
				summary.TeamsCorrect++
			}
			if result.GamesStatus == StatusCorrect {
				summary.GamesCorrect++
			}
			if result.EarnedBonus() {
				summary.BonusEarned++
			}
		}
		summaries[person] = summary
		points[person] = summary.Points
	}

	ranks := rankMap(points)
	for person, summary := range summaries {
		summary.Rank = ranks[person]
		summaries[person] = summary
	}

	return RoundSummary{
		Summaries: summaries,
		Winners:   winners(ranks),
		Losers:    losers(ranks),
	}
}

// SummarizeYear adds up every round, ranks the year and runs the tiebreak over the leaders
// Preconditions: Receives the year, all rounds (already summarized), the projection table and the team table
// Postconditions: Returns the complete YearSummary
func SummarizeYear(year int, rounds []Round, projections Projections, teams map[string]shared.Team) YearSummary {
	totals := make(map[string]PersonSummary)
	for _, round := range rounds {
		for person, s := range round.Summary.Summaries {
			total := totals[person]
			total.Person = person
			total.Points += s.Points
			total.PossiblePoints += s.PossiblePoints
			total.TeamsCorrect += s.TeamsCorrect
			total.GamesCorrect += s.GamesCorrect
			total.BonusEarned += s.BonusEarned
			totals[person] = total
		}
	}

	points := make(map[string]int, len(totals))
	for person, total := range totals {
		points[person] = total.Points
	}
	ranks := rankMap(points)
	for person, total := range totals {
		total.Rank = ranks[person]
		totals[person] = total
	}

	leaders := winners(ranks)
	if teams == nil {
		teams = map[string]shared.Team{}
	}

	return YearSummary{
		Year:            year,
		Rounds:          rounds,
		PersonSummaries: totals,
		Winners:         leaders,
		Losers:          losers(ranks),
		TiebreakInfo:    Tiebreak(totals, leaders),
		Projections:     projections,
		Teams:           teams,
	}
}

// Tiebreak picks a single winner out of the leaders: most games correct, then most teams correct. If both
// still tie nobody is designated and Resolved is false
func Tiebreak(summaries map[string]PersonSummary, leaders []string) TiebreakInfo {
	info := TiebreakInfo{Leaders: slices.Clone(leaders)}
	if info.Leaders == nil {
		info.Leaders = []string{}
	}

	remaining := info.Leaders
	if len(remaining) > 1 {
		remaining = bestBy(summaries, remaining, func(s PersonSummary) int { return s.GamesCorrect })
	}
	if len(remaining) > 1 {
		remaining = bestBy(summaries, remaining, func(s PersonSummary) int { return s.TeamsCorrect })
	}
	if len(remaining) == 1 {
		info.Winner = remaining[0]
		info.Resolved = true
	}
	return info
}

// bestBy keeps the people with the highest value of criterion
func bestBy(summaries map[string]PersonSummary, people []string, criterion func(PersonSummary) int) []string {
	if len(people) == 0 {
		return people
	}
	best := criterion(summaries[people[0]])
	for _, p := range people[1:] {
		best = max(best, criterion(summaries[p]))
	}
	var out []string
	for _, p := range people {
		if criterion(summaries[p]) == best {
			out = append(out, p)
		}
	}
	return out
}
