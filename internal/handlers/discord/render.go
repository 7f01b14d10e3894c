package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/feastfinder/internal/models"
	"github.com/KirkDiggler/feastfinder/internal/services/messaging"
	sessionService "github.com/KirkDiggler/feastfinder/internal/services/session"
	"github.com/bwmarrin/discordgo"
	"github.com/dustin/go-humanize"
)

const (
	colorGreen  = 0x00ff00
	colorOrange = 0xffa500
	colorRed    = 0xff0000
	colorBlue   = 0x3498db

	// maxTallyLines caps the runner-up list on a decision embed
	maxTallyLines = 5
)

// Custom ID actions. Arguments follow the action, separated by customIDSeparator.
const (
	customIDSeparator = "|"

	ActionBallot  = "ballot"
	ActionVote    = "vote"
	ActionResults = "results"

	voteYes = "yes"
	voteNo  = "no"

	// maxCustomIDLength is Discord's limit on a component custom ID
	maxCustomIDLength = 100

	// maxCodeLength leaves room for the action, a candidate ID and the vote in a custom ID
	maxCodeLength = 32
)

func customID(action string, args ...string) string {
	return strings.Join(append([]string{action}, args...), customIDSeparator)
}

// buttonSafeCode reports whether code survives a round trip through a custom ID
func buttonSafeCode(code string) bool {
	return !strings.Contains(code, customIDSeparator) && len(code) <= maxCodeLength
}

// parseCustomID splits a component custom ID into its action and arguments
func parseCustomID(id string) (string, []string) {
	parts := strings.Split(id, customIDSeparator)
	return parts[0], parts[1:]
}

func responseType(update bool) discordgo.InteractionResponseType {
	if update {
		return discordgo.InteractionResponseUpdateMessage
	}
	return discordgo.InteractionResponseChannelMessageWithSource
}

// renderSessionCreated renders the public share message with the Start voting button
func renderSessionCreated(msg *messaging.GetSessionCreatedMessageOutput, session *models.Session) *discordgo.InteractionResponse {
	startButton := discordgo.Button{
		Label:    "Start voting",
		Style:    discordgo.SuccessButton,
		CustomID: customID(ActionBallot, session.Code),
		Emoji: &discordgo.ComponentEmoji{
			Name: "🍽️",
		},
	}

	resultsButton := discordgo.Button{
		Label:    "Results",
		Style:    discordgo.SecondaryButton,
		CustomID: customID(ActionResults, session.Code),
	}

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{
				{
					Title:       msg.Title,
					Description: msg.Message,
					Color:       colorGreen,
					Fields: []*discordgo.MessageEmbedField{
						{Name: "Code", Value: session.Code, Inline: true},
						{Name: "Restaurants", Value: fmt.Sprintf("%d", len(session.Candidates)), Inline: true},
					},
				},
			},
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{startButton, resultsButton},
				},
			},
		},
	}
}

// renderBallotCard renders one restaurant with Like and Nope buttons
func renderBallotCard(code string, ballot *sessionService.GetBallotOutput, progress string, update bool) *discordgo.InteractionResponse {
	candidate := ballot.Remaining[0]
	position := ballot.VotedCount + 1

	fields := []*discordgo.MessageEmbedField{
		{Name: "Rating", Value: fmt.Sprintf("%.1f ★", candidate.Rating), Inline: true},
		{Name: "Reviews", Value: humanize.Comma(int64(candidate.ReviewCount)), Inline: true},
	}
	if candidate.PriceLevel != "" {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Price", Value: candidate.PriceLevel, Inline: true})
	}
	if len(candidate.Cuisines) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Cuisine", Value: strings.Join(candidate.Cuisines, ", ")})
	}
	if candidate.Address != "" {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Address", Value: candidate.Address})
	}

	embed := &discordgo.MessageEmbed{
		Title:       candidate.Name,
		Description: progress,
		URL:         candidate.Website,
		Color:       colorBlue,
		Fields:      fields,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%s of %d places", humanize.Ordinal(position), ballot.Total),
		},
	}
	if candidate.ImageURL != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: candidate.ImageURL}
	}

	likeButton := discordgo.Button{
		Label:    "Like",
		Style:    discordgo.SuccessButton,
		CustomID: customID(ActionVote, code, candidate.ID, voteYes),
		Emoji:    &discordgo.ComponentEmoji{Name: "👍"},
	}
	nopeButton := discordgo.Button{
		Label:    "Nope",
		Style:    discordgo.DangerButton,
		CustomID: customID(ActionVote, code, candidate.ID, voteNo),
		Emoji:    &discordgo.ComponentEmoji{Name: "👎"},
	}

	return &discordgo.InteractionResponse{
		Type: responseType(update),
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{likeButton, nopeButton},
				},
			},
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}
}

// renderBallotDone renders the card shown once the user has voted on everything
func renderBallotDone(code string, progress string, allFinished bool, update bool) *discordgo.InteractionResponse {
	var components []discordgo.MessageComponent
	if allFinished {
		components = []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "See results",
						Style:    discordgo.PrimaryButton,
						CustomID: customID(ActionResults, code),
					},
				},
			},
		}
	}

	return &discordgo.InteractionResponse{
		Type: responseType(update),
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{
				{
					Title:       "All done!",
					Description: progress,
					Color:       colorGreen,
				},
			},
			Components: components,
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	}
}

// renderDecision renders the decision with the top of the tally breakdown
func renderDecision(code string, msg *messaging.GetDecisionMessageOutput, result *models.Decision) *discordgo.InteractionResponse {
	embed := &discordgo.MessageEmbed{
		Title:       msg.Title,
		Description: msg.Message,
		Color:       colorGreen,
		Footer:      &discordgo.MessageEmbedFooter{Text: "Session " + code},
	}

	if result.Kind.IsNone() {
		embed.Color = colorOrange
	}

	if result.Winner != nil && result.Winner.Address != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Where",
			Value: result.Winner.Address,
		})
	}

	var lines []string
	for i, tally := range result.Tallies {
		if i == maxTallyLines {
			break
		}
		lines = append(lines, fmt.Sprintf("%d. %s: %d yes / %d no", i+1, tally.Candidate.Name, tally.YesCount, tally.NoCount))
	}
	if len(lines) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Votes",
			Value: strings.Join(lines, "\n"),
		})
	}

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	}
}

// renderStatus renders a session's voting progress
func renderStatus(session *models.Session, status *sessionService.GetStatusOutput, now time.Time) *discordgo.InteractionResponse {
	description := fmt.Sprintf("%d of %d people have finished voting.", status.FinishedCount, status.MemberCount)
	if status.AllFinished {
		description = "Everyone has voted. Use `/feast results` to see the winner."
	}

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{
				{
					Title:       "Session " + session.Code,
					Description: description,
					Color:       colorBlue,
					Fields: []*discordgo.MessageEmbedField{
						{Name: "State", Value: string(status.State), Inline: true},
						{Name: "Restaurants", Value: fmt.Sprintf("%d", len(session.Candidates)), Inline: true},
						{Name: "Started", Value: humanize.RelTime(session.CreatedAt, now, "ago", "from now"), Inline: true},
					},
				},
			},
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}
}

// renderJoined renders the ephemeral join confirmation with the Start voting button
func renderJoined(code string, msg *messaging.GetJoinSessionMessageOutput) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: msg.Message,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.Button{
							Label:    "Start voting",
							Style:    discordgo.SuccessButton,
							CustomID: customID(ActionBallot, code),
						},
					},
				},
			},
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}
}

// renderError renders an ephemeral error embed
func renderError(msg *messaging.GetErrorMessageOutput) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{
				{
					Title:       msg.Title,
					Description: msg.Message,
					Color:       colorRed,
				},
			},
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}
}
