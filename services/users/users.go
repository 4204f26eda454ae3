package users

import (
	"context"
	"fmt"
	"log"

	"github.com/samber/mo"

	"guildbot/db"
	"guildbot/models"
)

type UsersService struct {
	usersRepo *db.PostgresUsersRepository
}

func NewUsersService(repo *db.PostgresUsersRepository) *UsersService {
	return &UsersService{usersRepo: repo}
}

// ResolveUser upserts the user so the stored display name tracks Discord.
func (s *UsersService) ResolveUser(ctx context.Context, discordUserID, displayName string) (*models.User, error) {
	log.Printf("📋 Starting to resolve user for discordUserID: %s", discordUserID)

	if discordUserID == "" {
		return nil, fmt.Errorf("discord_user_id cannot be empty")
	}

	user, err := s.usersRepo.UpsertUser(ctx, discordUserID, displayName)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	log.Printf("📋 Completed successfully - resolved user with ID: %s", user.ID)
	return user, nil
}

func (s *UsersService) GetUserByDiscordID(ctx context.Context, discordUserID string) (mo.Option[*models.User], error) {
	log.Printf("📋 Starting to get user by discordUserID: %s", discordUserID)

	if discordUserID == "" {
		return mo.None[*models.User](), fmt.Errorf("discord_user_id cannot be empty")
	}

	maybeUser, err := s.usersRepo.GetUserByDiscordID(ctx, discordUserID)
	if err != nil {
		return mo.None[*models.User](), fmt.Errorf("failed to get user: %w", err)
	}

	log.Printf("📋 Completed successfully - user lookup for discordUserID: %s", discordUserID)
	return maybeUser, nil
}

func (s *UsersService) GetUserByID(ctx context.Context, id string) (mo.Option[*models.User], error) {
	log.Printf("📋 Starting to get user by ID: %s", id)

	if id == "" {
		return mo.None[*models.User](), fmt.Errorf("user ID cannot be empty")
	}

	maybeUser, err := s.usersRepo.GetUserByID(ctx, id)
	if err != nil {
		return mo.None[*models.User](), fmt.Errorf("failed to get user: %w", err)
	}

	log.Printf("📋 Completed successfully - user lookup for ID: %s", id)
	return maybeUser, nil
}
