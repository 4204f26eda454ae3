package sharedroles

import (
	"context"
	"fmt"
	"log"

	"guildbot/botlog"
	"guildbot/clients"
	"guildbot/models"
	"guildbot/services"
)

// SharedRolesUseCase keeps the shared (per-game, cross-guild) roles of a
// member consistent with the specific-guild roles they hold. It reconciles
// the GuildLead, GuildManagement and GuildMember role types.
type SharedRolesUseCase struct {
	discordClient  clients.DiscordClient
	serversService services.ServersService
	guildsService  services.GuildsService
	rolesService   services.RolesService
	botLog         *botlog.Logger
}

var reconciledRoleTypes = []models.UserRoleType{
	models.UserRoleGuildLead,
	models.UserRoleGuildManagement,
	models.UserRoleGuildMember,
}

func NewSharedRolesUseCase(
	discordClient clients.DiscordClient,
	serversService services.ServersService,
	guildsService services.GuildsService,
	rolesService services.RolesService,
	botLog *botlog.Logger,
) *SharedRolesUseCase {
	return &SharedRolesUseCase{
		discordClient:  discordClient,
		serversService: serversService,
		guildsService:  guildsService,
		rolesService:   rolesService,
		botLog:         botLog,
	}
}

// ReconcileMemberRoles recomputes the member's desired shared-role set from
// their currently held roles and applies the add/remove diff. A delivery
// failure is written to the server's log channel and re-raised: an
// inconsistent shared-role state is a correctness problem, not a soft
// failure.
func (u *SharedRolesUseCase) ReconcileMemberRoles(ctx context.Context, event models.DiscordMemberEvent) error {
	log.Printf("📋 Starting role reconciliation for user %s on server %s", event.UserID, event.ServerID)

	maybeServer, err := u.serversService.GetActiveServer(ctx, event.ServerID, "")
	if err != nil {
		return fmt.Errorf("failed to resolve server: %w", err)
	}
	if !maybeServer.IsPresent() {
		return nil
	}
	server := maybeServer.MustGet()

	allGuilds, err := u.guildsService.GetGuildsByServer(ctx, server.ID)
	if err != nil {
		return fmt.Errorf("failed to load guilds: %w", err)
	}
	roles, err := u.rolesService.GetRolesByTypes(ctx, server.ID, reconciledRoleTypes)
	if err != nil {
		return fmt.Errorf("failed to load roles: %w", err)
	}

	maps := BuildSharedRoleMaps(allGuilds, roles)
	toAdd, toRemove := ComputeSharedRoleDiff(maps, event.RoleIDs)
	if len(toAdd) == 0 && len(toRemove) == 0 {
		log.Printf("📋 Completed successfully - shared roles already consistent for user %s", event.UserID)
		return nil
	}

	for _, roleID := range toAdd {
		if err := u.discordClient.AddMemberRole(event.ServerID, event.UserID, roleID); err != nil {
			u.botLog.Log(ctx, server.ID, "❌ Could not add shared role <@&%s> to <@%s>: %v",
				roleID, event.UserID, err)
			return fmt.Errorf("failed to add shared role %s: %w", roleID, err)
		}
	}
	for _, roleID := range toRemove {
		if err := u.discordClient.RemoveMemberRole(event.ServerID, event.UserID, roleID); err != nil {
			u.botLog.Log(ctx, server.ID, "❌ Could not remove shared role <@&%s> from <@%s>: %v",
				roleID, event.UserID, err)
			return fmt.Errorf("failed to remove shared role %s: %w", roleID, err)
		}
	}

	log.Printf("📋 Completed successfully - reconciled shared roles for user %s (added %d, removed %d)",
		event.UserID, len(toAdd), len(toRemove))
	return nil
}
