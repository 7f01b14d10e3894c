package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/feastfinder/internal/common/clock"
	"github.com/KirkDiggler/feastfinder/internal/common/uuid"
	"github.com/KirkDiggler/feastfinder/internal/services/candidates"
	"github.com/KirkDiggler/feastfinder/internal/services/messaging"
	sessionService "github.com/KirkDiggler/feastfinder/internal/services/session"
	"github.com/bwmarrin/discordgo"
)

var (
	ErrNilConfig         = errors.New("config cannot be nil")
	ErrEmptyToken        = errors.New("token cannot be empty")
	ErrNilSessionService = errors.New("session service cannot be nil")
	ErrNilCandidates     = errors.New("candidate provider cannot be nil")
	ErrNilMessaging      = errors.New("messaging service cannot be nil")
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	feast      *feast
	ids        uuid.UUID
	logger     *slog.Logger
	config     *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	SessionService sessionService.Service
	Candidates     candidates.Provider
	Messaging      messaging.Service

	Clock  clock.Clock
	UUID   uuid.UUID
	Logger *slog.Logger

	// CandidateLimit caps how many restaurants /feast start puts on the ballot
	CandidateLimit int
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	f, err := newFeast(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Token == "" {
		return nil, ErrEmptyToken
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	ids := cfg.UUID
	if ids == nil {
		ids = uuid.New()
	}

	bot := &Bot{
		session:    session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		feast:      f,
		ids:        ids,
		logger:     f.logger,
		config:     cfg,
	}

	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// newFeast validates cfg and builds the interaction logic shared by commands and buttons
func newFeast(cfg *Config) (*feast, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.SessionService == nil {
		return nil, ErrNilSessionService
	}
	if cfg.Candidates == nil {
		return nil, ErrNilCandidates
	}
	if cfg.Messaging == nil {
		return nil, ErrNilMessaging
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	limit := cfg.CandidateLimit
	if limit <= 0 {
		limit = candidates.DefaultLimit
	}

	return &feast{
		sessions:       cfg.SessionService,
		candidates:     cfg.Candidates,
		messages:       cfg.Messaging,
		clock:          c,
		logger:         logger,
		candidateLimit: limit,
	}, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if err := b.RegisterCommand(NewFeastCommand(b.feast, b.ids, b.logger)); err != nil {
		return fmt.Errorf("failed to register feast command: %w", err)
	}

	b.logger.Info("bot is running")
	return nil
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	return b.session.State.User.ID
}

// Stop removes registered commands and closes the Discord connection
func (b *Bot) Stop() error {
	appID := b.appID()

	for name, id := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, id); err != nil {
			b.logger.Error("failed to delete command", "command", name, "command_id", id, "error", err)
			continue
		}
		b.logger.Info("deleted command", "command", name, "command_id", id)
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord. Commands are global unless a guild ID is configured.
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	scope := "global"
	if b.config.GuildID != "" {
		scope = b.config.GuildID
	}
	b.logger.Info("registering command", "command", cmd.GetName(), "scope", scope)

	created, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = created.ID
	b.logger.Info("registered command", "command", cmd.GetName(), "command_id", created.ID)

	return nil
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.logger.Error("command failed", "command", name, "error", err)
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			b.logger.Error("component interaction failed", "error", err)
		}
	}
}

// handleComponentInteraction handles button clicks
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	interactionID := b.ids.NewUUID()
	caller := interactionUser(i)
	customID := i.MessageComponentData().CustomID

	logger := b.logger.With("interaction_id", interactionID, "user_id", caller.ID, "custom_id", customID)
	logger.Debug("component clicked")

	response, err := b.feast.component(context.Background(), caller, customID)
	if err != nil {
		logger.Error("component handler failed", "error", err)
		if response == nil {
			return RespondWithEphemeralMessage(s, i, "Something went wrong. Try again in a moment.")
		}
	}

	return s.InteractionRespond(i.Interaction, response)
}
