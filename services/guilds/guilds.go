package guilds

import (
	"context"
	"fmt"
	"log"

	"github.com/samber/mo"

	"guildbot/db"
	"guildbot/models"
)

type GuildsService struct {
	guildsRepo *db.PostgresGuildsRepository
	gamesRepo  *db.PostgresGamesRepository
}

func NewGuildsService(guildsRepo *db.PostgresGuildsRepository, gamesRepo *db.PostgresGamesRepository) *GuildsService {
	return &GuildsService{guildsRepo: guildsRepo, gamesRepo: gamesRepo}
}

func (s *GuildsService) GetGuildByID(ctx context.Context, id string) (mo.Option[*models.Guild], error) {
	log.Printf("📋 Starting to get guild by ID: %s", id)

	if id == "" {
		return mo.None[*models.Guild](), fmt.Errorf("guild ID cannot be empty")
	}

	maybeGuild, err := s.guildsRepo.GetGuildByID(ctx, id)
	if err != nil {
		return mo.None[*models.Guild](), fmt.Errorf("failed to get guild: %w", err)
	}

	log.Printf("📋 Completed successfully - guild lookup for ID: %s", id)
	return maybeGuild, nil
}

// GetPlaceholderGuild returns the single active placeholder guild for the
// game, the row recruitment channels for that game hang off.
func (s *GuildsService) GetPlaceholderGuild(
	ctx context.Context,
	serverID, gameID string,
) (mo.Option[*models.Guild], error) {
	log.Printf("📋 Starting to get placeholder guild for server: %s, game: %s", serverID, gameID)

	if serverID == "" || gameID == "" {
		return mo.None[*models.Guild](), fmt.Errorf("server ID and game ID cannot be empty")
	}

	maybeGuild, err := s.guildsRepo.GetPlaceholderGuild(ctx, serverID, gameID)
	if err != nil {
		return mo.None[*models.Guild](), fmt.Errorf("failed to get placeholder guild: %w", err)
	}

	log.Printf("📋 Completed successfully - placeholder guild lookup for game: %s", gameID)
	return maybeGuild, nil
}

func (s *GuildsService) GetPlaceholderGuilds(ctx context.Context, serverID string) ([]*models.Guild, error) {
	log.Printf("📋 Starting to get placeholder guilds for server: %s", serverID)

	if serverID == "" {
		return nil, fmt.Errorf("server ID cannot be empty")
	}

	placeholders, err := s.guildsRepo.GetPlaceholderGuilds(ctx, serverID)
	if err != nil {
		return nil, fmt.Errorf("failed to get placeholder guilds: %w", err)
	}

	log.Printf("📋 Completed successfully - found %d placeholder guilds", len(placeholders))
	return placeholders, nil
}

func (s *GuildsService) GetConcreteGuildsByGame(
	ctx context.Context,
	serverID, gameID string,
) ([]*models.Guild, error) {
	log.Printf("📋 Starting to get concrete guilds for server: %s, game: %s", serverID, gameID)

	if serverID == "" || gameID == "" {
		return nil, fmt.Errorf("server ID and game ID cannot be empty")
	}

	concrete, err := s.guildsRepo.GetConcreteGuildsByGame(ctx, serverID, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get concrete guilds: %w", err)
	}

	log.Printf("📋 Completed successfully - found %d concrete guilds for game: %s", len(concrete), gameID)
	return concrete, nil
}

func (s *GuildsService) GetGuildsByServer(ctx context.Context, serverID string) ([]*models.Guild, error) {
	log.Printf("📋 Starting to get guilds for server: %s", serverID)

	if serverID == "" {
		return nil, fmt.Errorf("server ID cannot be empty")
	}

	allGuilds, err := s.guildsRepo.GetGuildsByServer(ctx, serverID)
	if err != nil {
		return nil, fmt.Errorf("failed to get guilds: %w", err)
	}

	log.Printf("📋 Completed successfully - found %d guilds", len(allGuilds))
	return allGuilds, nil
}

func (s *GuildsService) GetGameByID(ctx context.Context, id string) (mo.Option[*models.Game], error) {
	log.Printf("📋 Starting to get game by ID: %s", id)

	if id == "" {
		return mo.None[*models.Game](), fmt.Errorf("game ID cannot be empty")
	}

	maybeGame, err := s.gamesRepo.GetGameByID(ctx, id)
	if err != nil {
		return mo.None[*models.Game](), fmt.Errorf("failed to get game: %w", err)
	}

	log.Printf("📋 Completed successfully - game lookup for ID: %s", id)
	return maybeGame, nil
}
