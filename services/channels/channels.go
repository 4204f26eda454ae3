package channels

import (
	"context"
	"fmt"
	"log"

	"github.com/samber/mo"

	"guildbot/db"
	"guildbot/models"
)

type ChannelsService struct {
	channelsRepo *db.PostgresChannelPurposesRepository
}

func NewChannelsService(repo *db.PostgresChannelPurposesRepository) *ChannelsService {
	return &ChannelsService{channelsRepo: repo}
}

func (s *ChannelsService) GetChannelPurpose(
	ctx context.Context,
	serverID, guildID string,
	purpose models.ChannelPurposeType,
) (mo.Option[*models.ChannelPurpose], error) {
	log.Printf("📋 Starting to get %s channel for server: %s, guild: %s", purpose, serverID, guildID)

	if serverID == "" || guildID == "" {
		return mo.None[*models.ChannelPurpose](), fmt.Errorf("server ID and guild ID cannot be empty")
	}

	maybeChannel, err := s.channelsRepo.GetChannelPurpose(ctx, serverID, guildID, purpose)
	if err != nil {
		return mo.None[*models.ChannelPurpose](), fmt.Errorf("failed to get channel purpose: %w", err)
	}

	log.Printf("📋 Completed successfully - %s channel lookup for guild: %s", purpose, guildID)
	return maybeChannel, nil
}

// GetThreadChannelByDiscordID resolves which configured recruitment or
// applicant channel a thread's parent is. mo.None means the channel carries
// no workflow purpose and its events are ignored.
func (s *ChannelsService) GetThreadChannelByDiscordID(
	ctx context.Context,
	discordChannelID string,
) (mo.Option[*models.ChannelPurpose], error) {
	log.Printf("📋 Starting to resolve thread channel for discordChannelID: %s", discordChannelID)

	if discordChannelID == "" {
		return mo.None[*models.ChannelPurpose](), fmt.Errorf("discord_channel_id cannot be empty")
	}

	maybeChannel, err := s.channelsRepo.GetThreadChannelByDiscordID(ctx, discordChannelID)
	if err != nil {
		return mo.None[*models.ChannelPurpose](), fmt.Errorf("failed to resolve thread channel: %w", err)
	}

	log.Printf("📋 Completed successfully - thread channel lookup for: %s", discordChannelID)
	return maybeChannel, nil
}

func (s *ChannelsService) GetBotLogChannel(
	ctx context.Context,
	serverID string,
) (mo.Option[*models.ChannelPurpose], error) {
	log.Printf("📋 Starting to get bot log channel for server: %s", serverID)

	if serverID == "" {
		return mo.None[*models.ChannelPurpose](), fmt.Errorf("server ID cannot be empty")
	}

	maybeChannel, err := s.channelsRepo.GetBotLogChannel(ctx, serverID)
	if err != nil {
		return mo.None[*models.ChannelPurpose](), fmt.Errorf("failed to get bot log channel: %w", err)
	}

	log.Printf("📋 Completed successfully - bot log channel lookup for server: %s", serverID)
	return maybeChannel, nil
}
