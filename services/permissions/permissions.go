package permissions

import (
	"context"
	"fmt"
	"log"
	"slices"

	"guildbot/clients"
	"guildbot/models"
	"guildbot/services"
)

type PermissionsService struct {
	discordClient clients.DiscordClient
	rolesService  services.RolesService
}

func NewPermissionsService(
	discordClient clients.DiscordClient,
	rolesService services.RolesService,
) *PermissionsService {
	return &PermissionsService{discordClient: discordClient, rolesService: rolesService}
}

// HasPermission evaluates the criteria in order. The server owner passes
// regardless of criteria. The Discord administrator bit satisfies an
// Administrator criterion without a persisted role; everyone else must hold
// the Discord role mapped to at least one criterion. Criteria whose role has
// no server-side mapping are skipped, never granted, so empty criteria deny
// everyone but the owner.
func (s *PermissionsService) HasPermission(
	ctx context.Context,
	server *models.Server,
	discordUserID string,
	criteria []models.RoleCriterion,
) (bool, error) {
	log.Printf("📋 Starting permission check for user: %s on server: %s", discordUserID, server.ID)

	if discordUserID == "" {
		return false, fmt.Errorf("discord_user_id cannot be empty")
	}

	ownerID, err := s.discordClient.GetServerOwnerID(server.DiscordServerID)
	if err != nil {
		return false, fmt.Errorf("failed to get server owner: %w", err)
	}
	if ownerID == discordUserID {
		log.Printf("📋 Completed successfully - user %s owns the server", discordUserID)
		return true, nil
	}

	member, err := s.discordClient.GetMember(server.DiscordServerID, discordUserID)
	if err != nil {
		return false, fmt.Errorf("failed to get member: %w", err)
	}

	for _, criterion := range criteria {
		if criterion.RoleType == models.UserRoleServerOwner {
			// Ownership was already checked above; there is no persisted role for it.
			continue
		}
		if criterion.RoleType == models.UserRoleAdministrator && member.Administrator {
			log.Printf("📋 Completed successfully - user %s has administrator permission", discordUserID)
			return true, nil
		}

		role, err := s.lookupRole(ctx, server.ID, criterion)
		if err != nil {
			return false, err
		}
		if role == nil {
			continue
		}
		if slices.Contains(member.RoleIDs, role.DiscordRoleID) {
			log.Printf("📋 Completed successfully - user %s holds %s role", discordUserID, criterion.RoleType)
			return true, nil
		}
	}

	log.Printf("📋 Completed successfully - user %s matched no criteria", discordUserID)
	return false, nil
}

func (s *PermissionsService) lookupRole(
	ctx context.Context,
	serverID string,
	criterion models.RoleCriterion,
) (*models.UserRole, error) {
	if criterion.GuildID != nil {
		maybeRole, err := s.rolesService.GetGuildRole(ctx, serverID, *criterion.GuildID, criterion.RoleType)
		if err != nil {
			return nil, fmt.Errorf("failed to look up guild role: %w", err)
		}
		if !maybeRole.IsPresent() {
			return nil, nil
		}
		return maybeRole.MustGet(), nil
	}

	maybeRole, err := s.rolesService.GetServerRole(ctx, serverID, criterion.RoleType)
	if err != nil {
		return nil, fmt.Errorf("failed to look up server role: %w", err)
	}
	if !maybeRole.IsPresent() {
		return nil, nil
	}
	return maybeRole.MustGet(), nil
}
