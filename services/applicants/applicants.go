package applicants

import (
	"context"
	"fmt"
	"log"

	"github.com/samber/mo"

	"guildbot/core"
	"guildbot/db"
	"guildbot/models"
)

type ApplicantsService struct {
	applicantsRepo *db.PostgresGuildApplicantsRepository
}

func NewApplicantsService(repo *db.PostgresGuildApplicantsRepository) *ApplicantsService {
	return &ApplicantsService{applicantsRepo: repo}
}

// UpsertApplication records a pending application. A user holds at most one
// per game per server, so re-applying retargets the existing row at the new
// guild instead of stacking applications.
func (s *ApplicantsService) UpsertApplication(
	ctx context.Context,
	userID, guildID, gameID, serverID string,
) (*models.GuildApplicant, error) {
	log.Printf("📋 Starting to upsert application for user: %s, guild: %s", userID, guildID)

	if userID == "" || guildID == "" || gameID == "" || serverID == "" {
		return nil, fmt.Errorf("user, guild, game and server IDs cannot be empty")
	}

	applicant, err := s.applicantsRepo.UpsertApplication(ctx, userID, guildID, gameID, serverID)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert application: %w", err)
	}

	log.Printf("📋 Completed successfully - upserted application with ID: %s", applicant.ID)
	return applicant, nil
}

func (s *ApplicantsService) GetOpenApplication(
	ctx context.Context,
	userID, gameID, serverID string,
) (mo.Option[*models.GuildApplicant], error) {
	log.Printf("📋 Starting to get open application for user: %s, game: %s", userID, gameID)

	if userID == "" || gameID == "" || serverID == "" {
		return mo.None[*models.GuildApplicant](), fmt.Errorf("user, game and server IDs cannot be empty")
	}

	maybeApplicant, err := s.applicantsRepo.GetOpenApplication(ctx, userID, gameID, serverID)
	if err != nil {
		return mo.None[*models.GuildApplicant](), fmt.Errorf("failed to get open application: %w", err)
	}

	log.Printf("📋 Completed successfully - open application lookup for user: %s", userID)
	return maybeApplicant, nil
}

func (s *ApplicantsService) GetApplicationsByServer(
	ctx context.Context,
	serverID string,
) ([]*models.GuildApplicant, error) {
	log.Printf("📋 Starting to get applications for server: %s", serverID)

	if serverID == "" {
		return nil, fmt.Errorf("server ID cannot be empty")
	}

	applications, err := s.applicantsRepo.GetApplicationsByServer(ctx, serverID)
	if err != nil {
		return nil, fmt.Errorf("failed to get applications: %w", err)
	}

	log.Printf("📋 Completed successfully - found %d applications", len(applications))
	return applications, nil
}

// CloseApplication removes the pending application once it has been resolved
// by an accept or decline.
func (s *ApplicantsService) CloseApplication(ctx context.Context, id string) error {
	log.Printf("📋 Starting to close application: %s", id)

	if id == "" {
		return fmt.Errorf("application ID cannot be empty")
	}

	deleted, err := s.applicantsRepo.DeleteApplication(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to close application: %w", err)
	}
	if !deleted {
		return fmt.Errorf("application %s: %w", id, core.ErrNotFound)
	}

	log.Printf("📋 Completed successfully - closed application: %s", id)
	return nil
}
