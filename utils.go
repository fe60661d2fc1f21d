/* utils.go
 * Utility functions used across the application
 * Authors: Zachary Bower
 */

package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// convertStrToBool converts a string of true or false into a boolean for comparisons
// Preconditions: Receives string containing either true or false (case insensitive)
// Postconditions: Returns boolean value or an error if the string is not true or false
func convertStrToBool(str string) (bool, error) {
	str = strings.TrimSpace(str)
	str = strings.ToLower(str)

	if str == "true" {
		return true, nil
	} else if str == "false" {
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean string")
}

// parseLogLevel returns the level named by LOG_LEVEL, or info if it is empty or not a level
func parseLogLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}

// resolveYears works out which years the build covers. -all means every year folder in the data directory plus the
// current year, otherwise the -year flag, otherwise the current year
func resolveYears(year int, all bool, dataDir string, current int) ([]int, error) {
	if !all {
		if year == 0 {
			year = current
		}
		return []int{year}, nil
	}

	entries, err := os.ReadDir(dataDir)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to list %s: %w", dataDir, err)
	}
	seen := map[int]bool{current: true}
	years := []int{current}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		y, err := strconv.Atoi(entry.Name())
		if err != nil || y < 1900 || seen[y] {
			continue
		}
		seen[y] = true
		years = append(years, y)
	}
	sort.Ints(years)
	return years, nil
}
