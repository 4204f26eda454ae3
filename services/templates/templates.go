package templates

import (
	"context"
	"fmt"
	"log"

	"github.com/samber/mo"

	"guildbot/db"
	"guildbot/models"
)

type TemplatesService struct {
	templatesRepo *db.PostgresMessageTemplatesRepository
}

func NewTemplatesService(repo *db.PostgresMessageTemplatesRepository) *TemplatesService {
	return &TemplatesService{templatesRepo: repo}
}

func (s *TemplatesService) GetGuildMessage(
	ctx context.Context,
	serverID, guildID string,
	event models.GuildEvent,
) (mo.Option[*models.GuildMessage], error) {
	log.Printf("📋 Starting to get %s template for guild: %s", event, guildID)

	if serverID == "" || guildID == "" {
		return mo.None[*models.GuildMessage](), fmt.Errorf("server ID and guild ID cannot be empty")
	}

	maybeMessage, err := s.templatesRepo.GetGuildMessage(ctx, serverID, guildID, event)
	if err != nil {
		return mo.None[*models.GuildMessage](), fmt.Errorf("failed to get guild message template: %w", err)
	}

	log.Printf("📋 Completed successfully - %s template lookup for guild: %s", event, guildID)
	return maybeMessage, nil
}

func (s *TemplatesService) GetServerMessage(
	ctx context.Context,
	serverID string,
	event models.ServerEvent,
) (mo.Option[*models.ServerMessage], error) {
	log.Printf("📋 Starting to get %s template for server: %s", event, serverID)

	if serverID == "" {
		return mo.None[*models.ServerMessage](), fmt.Errorf("server ID cannot be empty")
	}

	maybeMessage, err := s.templatesRepo.GetServerMessage(ctx, serverID, event)
	if err != nil {
		return mo.None[*models.ServerMessage](), fmt.Errorf("failed to get server message template: %w", err)
	}

	log.Printf("📋 Completed successfully - %s template lookup for server: %s", event, serverID)
	return maybeMessage, nil
}
