package sharedroles

import (
	"slices"

	"guildbot/models"
)

// SharedRoleMaps is the projection the reconciliation engine works from:
// which Discord role is the shared (per-game) role for each role type, and
// which shared role each concrete-guild role implies.
type SharedRoleMaps struct {
	// GameSharedRole maps gameID -> roleType -> shared Discord role ID,
	// built from roles attached to placeholder guilds.
	GameSharedRole map[string]map[models.UserRoleType]string
	// SharedEquivalentOf maps a concrete guild's Discord role ID to the
	// shared Discord role ID for the same (game, roleType).
	SharedEquivalentOf map[string]string
}

// BuildSharedRoleMaps derives the projection from the server's guilds and
// its persisted roles. Roles without a Discord role assignment or without a
// guild scope carry no reconciliation meaning and are skipped.
func BuildSharedRoleMaps(guilds []*models.Guild, roles []*models.UserRole) SharedRoleMaps {
	guildByID := make(map[string]*models.Guild, len(guilds))
	for _, g := range guilds {
		guildByID[g.ID] = g
	}

	maps := SharedRoleMaps{
		GameSharedRole:     make(map[string]map[models.UserRoleType]string),
		SharedEquivalentOf: make(map[string]string),
	}

	for _, role := range roles {
		if role.GuildID == nil || role.DiscordRoleID == "" {
			continue
		}
		guild, ok := guildByID[*role.GuildID]
		if !ok || !guild.IsPlaceholder() {
			continue
		}
		byType, ok := maps.GameSharedRole[guild.GameID]
		if !ok {
			byType = make(map[models.UserRoleType]string)
			maps.GameSharedRole[guild.GameID] = byType
		}
		byType[role.RoleType] = role.DiscordRoleID
	}

	for _, role := range roles {
		if role.GuildID == nil || role.DiscordRoleID == "" {
			continue
		}
		guild, ok := guildByID[*role.GuildID]
		if !ok || guild.IsPlaceholder() {
			continue
		}
		if shared, ok := maps.GameSharedRole[guild.GameID][role.RoleType]; ok {
			maps.SharedEquivalentOf[role.DiscordRoleID] = shared
		}
	}

	return maps
}

// ComputeSharedRoleDiff partitions the member's held roles into the shared
// roles they already carry and the shared roles their specific-guild roles
// imply, and returns the minimal add/remove sets. Results are sorted so the
// diff is deterministic.
func ComputeSharedRoleDiff(maps SharedRoleMaps, heldRoleIDs []string) (toAdd, toRemove []string) {
	sharedSet := make(map[string]struct{})
	for _, byType := range maps.GameSharedRole {
		for _, id := range byType {
			sharedSet[id] = struct{}{}
		}
	}

	current := make(map[string]struct{})
	desired := make(map[string]struct{})
	for _, held := range heldRoleIDs {
		if _, ok := sharedSet[held]; ok {
			current[held] = struct{}{}
		}
		if shared, ok := maps.SharedEquivalentOf[held]; ok {
			desired[shared] = struct{}{}
		}
	}

	for id := range desired {
		if _, ok := current[id]; !ok {
			toAdd = append(toAdd, id)
		}
	}
	for id := range current {
		if _, ok := desired[id]; !ok {
			toRemove = append(toRemove, id)
		}
	}

	slices.Sort(toAdd)
	slices.Sort(toRemove)
	return toAdd, toRemove
}
