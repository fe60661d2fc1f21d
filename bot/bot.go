/* bot.go
 * Contains logic used for creating the bot and parsing commands. Requires a discord bot token and ApiPtr, both of
 * which are passed in from main.go
 * Authors: Zachary Bower
 */

package bot

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"playoff-pool/api/api"

	"github.com/go-andiamo/splitter"
	"github.com/sirupsen/logrus"
)

// discord rejects messages longer than this
const maxMessageLength = 2000

type Bot struct {
	BotToken string
	APIPtr   *api.API
	Logger   *logrus.Logger
}

func NewBot(botToken string, apiPtr *api.API, logger *logrus.Logger) (*Bot, error) {
	if botToken == "" {
		return nil, fmt.Errorf("botToken is required but none was provided")
	}
	if apiPtr == nil {
		return nil, fmt.Errorf("apiPtr is required but none was provided")
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Bot{
		BotToken: botToken,
		APIPtr:   apiPtr,
		Logger:   logger,
	}, nil
}

// Helper function to check if a string starts with a given substring
// Preconditions: Recieves an input string and a substring
// Postconditions: Returns true if the substring is at the start of the string, else returns false
func startsWith(inputString string, substring string) bool {
	return strings.HasPrefix(inputString, substring)
}

// commandArgs splits a command into its arguments, dropping the command itself. Quoted arguments stay together
func commandArgs(content string) ([]string, error) {
	spaceSplitter, err := splitter.NewSplitter(' ', splitter.DoubleQuotes, splitter.LeftRightDoubleDoubleQuotes)
	if err != nil {
		return nil, err
	}
	parts, err := spaceSplitter.Split(strings.TrimSpace(content))
	if err != nil {
		return nil, err
	}
	// repeated spaces leave empty parts
	args := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.Trim(strings.TrimSpace(part), "\""); part != "" {
			args = append(args, part)
		}
	}
	if len(args) == 0 {
		return nil, nil
	}
	return args[1:], nil
}

// yearArg returns the year at args[i], or the current year if there isn't one
func (b *Bot) yearArg(args []string, i int) (int, error) {
	if len(args) <= i {
		return b.APIPtr.CurrentYear, nil
	}
	year, err := strconv.Atoi(args[i])
	if err != nil || year < 1900 {
		return 0, fmt.Errorf("%q is not a valid year", args[i])
	}
	return year, nil
}

// chunkMessage splits a response on line boundaries so no chunk exceeds maxMessageLength. A single line longer than
// the limit is cut on a rune boundary
func chunkMessage(content string) []string {
	if len(content) <= maxMessageLength {
		return []string{content}
	}

	var chunks []string
	var current strings.Builder
	for _, line := range strings.SplitAfter(content, "\n") {
		for len(line) > maxMessageLength {
			if current.Len() > 0 {
				chunks = append(chunks, current.String())
				current.Reset()
			}
			cut := runeCut(line, maxMessageLength)
			chunks = append(chunks, line[:cut])
			line = line[cut:]
		}
		if current.Len()+len(line) > maxMessageLength {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		current.WriteString(line)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}

// runeCut returns the largest index <= limit at which s can be cut without splitting a UTF-8 sequence
func runeCut(s string, limit int) int {
	if len(s) <= limit {
		return len(s)
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	if cut == 0 {
		return limit
	}
	return cut
}
