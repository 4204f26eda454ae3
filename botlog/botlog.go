package botlog

import (
	"context"
	"fmt"
	"log"

	"guildbot/clients"
	"guildbot/services"
)

// Logger mirrors operational notices into a server's configured bot log
// channel. Delivery is best-effort: a server without the channel, or a send
// failure, must never break the operation being reported on.
type Logger struct {
	channelsService services.ChannelsService
	discordClient   clients.DiscordClient
}

func New(channelsService services.ChannelsService, discordClient clients.DiscordClient) *Logger {
	return &Logger{channelsService: channelsService, discordClient: discordClient}
}

func (l *Logger) Log(ctx context.Context, serverID, format string, args ...any) {
	message := fmt.Sprintf(format, args...)

	maybeChannel, err := l.channelsService.GetBotLogChannel(ctx, serverID)
	if err != nil {
		log.Printf("⚠️ Failed to look up bot log channel for server %s: %v", serverID, err)
		return
	}
	if !maybeChannel.IsPresent() {
		return
	}

	if _, err := l.discordClient.SendMessage(maybeChannel.MustGet().DiscordChannelID, message); err != nil {
		log.Printf("⚠️ Failed to deliver bot log message for server %s: %v", serverID, err)
	}
}
