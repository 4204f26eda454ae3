package models

import (
	"time"
)

type UserRoleType string

const (
	UserRoleServerOwner     UserRoleType = "SERVER_OWNER"
	UserRoleAdministrator   UserRoleType = "ADMINISTRATOR"
	UserRoleGuildLead       UserRoleType = "GUILD_LEAD"
	UserRoleGuildManagement UserRoleType = "GUILD_MANAGEMENT"
	UserRoleGuildMember     UserRoleType = "GUILD_MEMBER"
)

// UserRole binds a (server, guild, roleType) triple to a Discord role.
// ServerOwner and Administrator roles are server-scoped (GuildID nil).
// A role attached to a placeholder guild is the shared, per-game role;
// attached to a concrete guild it is guild-specific.
type UserRole struct {
	ID            string       `db:"id"              json:"id"`
	ServerID      string       `db:"server_id"       json:"server_id"`
	GuildID       *string      `db:"guild_id"        json:"guild_id,omitempty"`
	RoleType      UserRoleType `db:"role_type"       json:"role_type"`
	Name          string       `db:"name"            json:"name"`
	DiscordRoleID string       `db:"discord_role_id" json:"discord_role_id"`
	CreatedAt     time.Time    `db:"created_at"      json:"created_at"`
	UpdatedAt     time.Time    `db:"updated_at"      json:"updated_at"`
}

// RoleCriterion is one branch of the disjunction evaluated by the
// permission resolver: "any role of this type for this server (and
// optionally this guild)".
type RoleCriterion struct {
	RoleType UserRoleType
	GuildID  *string
}
