/* handlers.go
 * Contains testable handler methods that accept DiscordSession interface
 * Authors: Zachary Bower
 */

package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"playoff-pool/api/api"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

// helpMessageHandler handles the $help command with a DiscordSession interface
func (b *Bot) helpMessageHandler(session DiscordSession, message *discordgo.MessageCreate) {
	var res strings.Builder
	res.WriteString("Playoff Pool Bot v1.0\n")
	res.WriteString("`$standings [year]`: shows everyone's points and possible points for the year\n")
	res.WriteString("`$round <1-4> [year]`: shows the series, scoring and standings for one round\n")
	res.WriteString("`$projections [year]`: shows who finishes 1st, 2nd, 3rd and last for every way the final can still end\n")
	res.WriteString("`$person <name> [year]`: shows one person's picks and points. Names with spaces need to be encased in \" (e.g. \"Aunt Jen\")\n")
	res.WriteString("`$history`: shows the pool winner of every archived year and everyone's wins and losses\n")
	res.WriteString("The year defaults to the current playoffs\n")
	b.send(session, message.ChannelID, res.String())
}

// standingsHandler handles the $standings command with a DiscordSession interface
func (b *Bot) standingsHandler(ctx context.Context, session DiscordSession, message *discordgo.MessageCreate) {
	args, err := commandArgs(message.Content)
	if err != nil {
		b.send(session, message.ChannelID, "Could not read that command")
		return
	}
	year, err := b.yearArg(args, 0)
	if err != nil {
		b.send(session, message.ChannelID, err.Error())
		return
	}

	res, err := b.APIPtr.Standings(ctx, year)
	if err != nil {
		b.Logger.WithError(err).WithField("year", year).Error("Failed to get standings")
		res = "An error occurred getting the standings"
	}
	b.send(session, message.ChannelID, res)
}

// roundHandler handles the $round command with a DiscordSession interface
func (b *Bot) roundHandler(ctx context.Context, session DiscordSession, message *discordgo.MessageCreate) {
	args, err := commandArgs(message.Content)
	if err != nil {
		b.send(session, message.ChannelID, "Could not read that command")
		return
	}
	if len(args) == 0 {
		b.send(session, message.ChannelID, "Usage: `$round <1-4> [year]`")
		return
	}
	number, err := strconv.Atoi(args[0])
	if err != nil || number < 1 || number > len(b.APIPtr.Topology.Rounds) {
		b.send(session, message.ChannelID, fmt.Sprintf("Round must be between 1 and %d", len(b.APIPtr.Topology.Rounds)))
		return
	}
	year, err := b.yearArg(args, 1)
	if err != nil {
		b.send(session, message.ChannelID, err.Error())
		return
	}

	res, err := b.APIPtr.RoundReport(ctx, year, number)
	if err != nil {
		b.Logger.WithError(err).WithField("year", year).WithField("round", number).Error("Failed to get round")
		res = fmt.Sprintf("An error occurred getting round %d", number)
	}
	b.send(session, message.ChannelID, res)
}

// projectionsHandler handles the $projections command with a DiscordSession interface
func (b *Bot) projectionsHandler(ctx context.Context, session DiscordSession, message *discordgo.MessageCreate) {
	args, err := commandArgs(message.Content)
	if err != nil {
		b.send(session, message.ChannelID, "Could not read that command")
		return
	}
	year, err := b.yearArg(args, 0)
	if err != nil {
		b.send(session, message.ChannelID, err.Error())
		return
	}

	res, err := b.APIPtr.ProjectionReport(ctx, year)
	if err != nil {
		b.Logger.WithError(err).WithField("year", year).Error("Failed to get projections")
		res = "An error occurred getting the projections"
	}
	b.send(session, message.ChannelID, res)
}

// personHandler handles the $person command with a DiscordSession interface
func (b *Bot) personHandler(ctx context.Context, session DiscordSession, message *discordgo.MessageCreate) {
	args, err := commandArgs(message.Content)
	if err != nil {
		b.send(session, message.ChannelID, "Could not read that command")
		return
	}
	if len(args) == 0 {
		b.send(session, message.ChannelID, "Usage: `$person <name> [year]`")
		return
	}
	year, err := b.yearArg(args, 1)
	if err != nil {
		b.send(session, message.ChannelID, err.Error())
		return
	}

	res, err := b.APIPtr.PersonReport(ctx, year, args[0])
	if err != nil {
		b.Logger.WithError(err).WithFields(logrus.Fields{"year": year, "person": args[0]}).Error("Failed to get person")
		res = fmt.Sprintf("An error occurred getting %s's picks", args[0])
	}
	b.send(session, message.ChannelID, res)
}

// historyHandler handles the $history command with a DiscordSession interface
func (b *Bot) historyHandler(ctx context.Context, session DiscordSession, message *discordgo.MessageCreate) {
	res, err := b.APIPtr.History(ctx)
	if err != nil {
		if errors.Is(err, api.ErrNoArchive) {
			res = "History isn't available because no archive is configured"
		} else {
			b.Logger.WithError(err).Error("Failed to get history")
			res = "An error occurred getting the history"
		}
	}
	b.send(session, message.ChannelID, res)
}

// send posts a response, split into as many messages as discord needs
func (b *Bot) send(session DiscordSession, channelID string, content string) {
	for _, chunk := range chunkMessage(content) {
		if _, err := session.ChannelMessageSend(channelID, chunk); err != nil {
			b.Logger.WithError(err).WithField("channel", channelID).Error("Failed to send message")
			return
		}
	}
}

// newMessageHandler routes messages to appropriate handlers with a DiscordSession interface
// botUserID is the bot's user ID to prevent self-responses
func (b *Bot) newMessageHandler(session DiscordSession, message *discordgo.MessageCreate, botUserID string) {
	// Prevent bot from responding to its own messages
	if message.Author.ID == botUserID {
		return
	}
	ctx := context.Background()

	// Route to appropriate handler
	switch {
	case startsWith(message.Content, "$help"):
		b.helpMessageHandler(session, message)

	case startsWith(message.Content, "$standings"):
		b.standingsHandler(ctx, session, message)

	case startsWith(message.Content, "$round"):
		b.roundHandler(ctx, session, message)

	case startsWith(message.Content, "$projections"):
		b.projectionsHandler(ctx, session, message)

	case startsWith(message.Content, "$person"):
		b.personHandler(ctx, session, message)

	case startsWith(message.Content, "$history"):
		b.historyHandler(ctx, session, message)
	}
}
