/* rank.go
 * Contains the competition ("Excel") ranking used for rounds, years and projections
 * Authors: Zachary Bower
 */

package logic

import (
	"fmt"
	"slices"
)

// ExcelRank returns 1 + the number of scores strictly greater than target. Ties share a rank and the next
// distinct score skips ahead, e.g. [50, 50, 40] ranks as [1, 1, 3]
// Preconditions: target must be one of scores
func ExcelRank(scores []int, target int) (int, error) {
	if !slices.Contains(scores, target) {
		return 0, fmt.Errorf("can't rank %d, it is not one of the scores", target)
	}
	rank := 1
	for _, score := range scores {
		if score > target {
			rank++
		}
	}
	return rank, nil
}

// rankMap ranks everyone in points
func rankMap(points map[string]int) map[string]int {
	scores := make([]int, 0, len(points))
	for _, p := range points {
		scores = append(scores, p)
	}
	ranks := make(map[string]int, len(points))
	for person, p := range points {
		// p always comes from scores so this can't fail
		ranks[person], _ = ExcelRank(scores, p)
	}
	return ranks
}

// peopleAtRank returns the sorted names of everyone holding rank
func peopleAtRank(ranks map[string]int, rank int) []string {
	people := []string{}
	for person, r := range ranks {
		if r == rank {
			people = append(people, person)
		}
	}
	slices.Sort(people)
	return people
}

// winners is everyone ranked first
func winners(ranks map[string]int) []string {
	return peopleAtRank(ranks, 1)
}

// losers is everyone at the worst rank present
func losers(ranks map[string]int) []string {
	if len(ranks) == 0 {
		return []string{}
	}
	worst := 0
	for _, r := range ranks {
		worst = max(worst, r)
	}
	return peopleAtRank(ranks, worst)
}
