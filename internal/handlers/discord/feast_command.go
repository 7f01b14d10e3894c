package discord

import (
	"context"
	"errors"
	"log/slog"

	"github.com/KirkDiggler/feastfinder/internal/common/uuid"
	"github.com/bwmarrin/discordgo"
)

const (
	subcommandStart   = "start"
	subcommandJoin    = "join"
	subcommandResults = "results"
	subcommandStatus  = "status"

	optionCode = "code"
)

// FeastCommand handles the /feast command
type FeastCommand struct {
	BaseCommand
	feast  *feast
	ids    uuid.UUID
	logger *slog.Logger
}

func codeOption(required bool, description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        optionCode,
		Description: description,
		Required:    required,
	}
}

// NewFeastCommand creates a new feast command handler
func NewFeastCommand(f *feast, ids uuid.UUID, logger *slog.Logger) *FeastCommand {
	return &FeastCommand{
		BaseCommand: BaseCommand{
			Name:        "feast",
			Description: "Decide where to eat with your group",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandStart,
					Description: "Start a new session",
					Options:     []*discordgo.ApplicationCommandOption{codeOption(false, "Share code (generated if empty)")},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandJoin,
					Description: "Join a session",
					Options:     []*discordgo.ApplicationCommandOption{codeOption(true, "Share code")},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandResults,
					Description: "Show where the group is eating",
					Options:     []*discordgo.ApplicationCommandOption{codeOption(true, "Share code")},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandStatus,
					Description: "Show who has finished voting",
					Options:     []*discordgo.ApplicationCommandOption{codeOption(true, "Share code")},
				},
			},
		},
		feast:  f,
		ids:    ids,
		logger: logger,
	}
}

// subcommandCode returns the code option of a subcommand, if given
func subcommandCode(option *discordgo.ApplicationCommandInteractionDataOption) string {
	for _, opt := range option.Options {
		if opt.Name == optionCode {
			return opt.StringValue()
		}
	}
	return ""
}

// route resolves a slash command to its response
func (c *FeastCommand) route(ctx context.Context, caller user, data discordgo.ApplicationCommandInteractionData) (*discordgo.InteractionResponse, error) {
	if len(data.Options) == 0 {
		return nil, errors.New("missing subcommand")
	}

	sub := data.Options[0]
	code := subcommandCode(sub)

	switch sub.Name {
	case subcommandStart:
		return c.feast.start(ctx, caller, code)
	case subcommandJoin:
		return c.feast.join(ctx, caller, code)
	case subcommandResults:
		return c.feast.results(ctx, code)
	case subcommandStatus:
		return c.feast.status(ctx, code)
	}

	return nil, errors.New("unknown subcommand")
}

// Handle processes a Discord interaction for the feast command
func (c *FeastCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	interactionID := c.ids.NewUUID()
	caller := interactionUser(i)

	response, err := c.route(context.Background(), caller, data)
	if err != nil {
		c.logger.Error("feast command failed",
			"interaction_id", interactionID,
			"user_id", caller.ID,
			"error", err)
		if response == nil {
			return RespondWithEphemeralMessage(s, i, "Something went wrong. Try again in a moment.")
		}
	}

	return s.InteractionRespond(i.Interaction, response)
}
