package servers

import (
	"context"
	"fmt"
	"log"

	"github.com/samber/mo"

	"guildbot/db"
	"guildbot/models"
)

type ServersService struct {
	serversRepo *db.PostgresServersRepository
}

func NewServersService(repo *db.PostgresServersRepository) *ServersService {
	return &ServersService{serversRepo: repo}
}

// GetActiveServer upserts the server row so the stored name tracks Discord,
// then applies the activity gate: inactive servers are returned as mo.None so
// callers drop the event without treating it as an error.
func (s *ServersService) GetActiveServer(
	ctx context.Context,
	discordServerID, name string,
) (mo.Option[*models.Server], error) {
	log.Printf("📋 Starting to resolve active server for discordServerID: %s", discordServerID)

	if discordServerID == "" {
		return mo.None[*models.Server](), fmt.Errorf("discord_server_id cannot be empty")
	}

	server, err := s.serversRepo.UpsertServer(ctx, discordServerID, name)
	if err != nil {
		return mo.None[*models.Server](), fmt.Errorf("failed to upsert server: %w", err)
	}

	if !server.Active {
		log.Printf("📋 Server %s is inactive - skipping", server.ID)
		return mo.None[*models.Server](), nil
	}

	log.Printf("📋 Completed successfully - resolved active server with ID: %s", server.ID)
	return mo.Some(server), nil
}

func (s *ServersService) GetServerByID(ctx context.Context, id string) (mo.Option[*models.Server], error) {
	log.Printf("📋 Starting to get server by ID: %s", id)

	if id == "" {
		return mo.None[*models.Server](), fmt.Errorf("server ID cannot be empty")
	}

	maybeServer, err := s.serversRepo.GetServerByID(ctx, id)
	if err != nil {
		return mo.None[*models.Server](), fmt.Errorf("failed to get server: %w", err)
	}

	log.Printf("📋 Completed successfully - server lookup for ID: %s", id)
	return maybeServer, nil
}
