package services

import (
	"context"

	"github.com/samber/mo"

	"guildbot/models"
)

// ServersService defines the interface for server-related operations
type ServersService interface {
	// GetActiveServer upserts the server row and returns it only when the
	// server is marked active. Inactive servers yield mo.None.
	GetActiveServer(ctx context.Context, discordServerID, name string) (mo.Option[*models.Server], error)
	GetServerByID(ctx context.Context, id string) (mo.Option[*models.Server], error)
}

// UsersService defines the interface for user-related operations
type UsersService interface {
	ResolveUser(ctx context.Context, discordUserID, displayName string) (*models.User, error)
	GetUserByDiscordID(ctx context.Context, discordUserID string) (mo.Option[*models.User], error)
	GetUserByID(ctx context.Context, id string) (mo.Option[*models.User], error)
}

// GuildsService defines the interface for guild and game lookups
type GuildsService interface {
	GetGuildByID(ctx context.Context, id string) (mo.Option[*models.Guild], error)
	GetPlaceholderGuild(ctx context.Context, serverID, gameID string) (mo.Option[*models.Guild], error)
	GetPlaceholderGuilds(ctx context.Context, serverID string) ([]*models.Guild, error)
	GetConcreteGuildsByGame(ctx context.Context, serverID, gameID string) ([]*models.Guild, error)
	GetGuildsByServer(ctx context.Context, serverID string) ([]*models.Guild, error)
	GetGameByID(ctx context.Context, id string) (mo.Option[*models.Game], error)
}

// ChannelsService defines the interface for channel purpose lookups
type ChannelsService interface {
	GetChannelPurpose(
		ctx context.Context,
		serverID, guildID string,
		purpose models.ChannelPurposeType,
	) (mo.Option[*models.ChannelPurpose], error)
	GetThreadChannelByDiscordID(
		ctx context.Context,
		discordChannelID string,
	) (mo.Option[*models.ChannelPurpose], error)
	GetBotLogChannel(ctx context.Context, serverID string) (mo.Option[*models.ChannelPurpose], error)
}

// RolesService defines the interface for persisted role lookups
type RolesService interface {
	GetGuildRole(
		ctx context.Context,
		serverID, guildID string,
		roleType models.UserRoleType,
	) (mo.Option[*models.UserRole], error)
	GetServerRole(ctx context.Context, serverID string, roleType models.UserRoleType) (mo.Option[*models.UserRole], error)
	GetRolesByTypes(ctx context.Context, serverID string, roleTypes []models.UserRoleType) ([]*models.UserRole, error)
}

// PermissionsService decides whether a member may perform privileged operations
type PermissionsService interface {
	// HasPermission returns true when the member owns the server, carries the
	// Discord administrator bit, or holds any of the roles named by criteria.
	HasPermission(
		ctx context.Context,
		server *models.Server,
		discordUserID string,
		criteria []models.RoleCriterion,
	) (bool, error)
}

// ApplicantsService defines the interface for guild application records
type ApplicantsService interface {
	UpsertApplication(ctx context.Context, userID, guildID, gameID, serverID string) (*models.GuildApplicant, error)
	GetOpenApplication(ctx context.Context, userID, gameID, serverID string) (mo.Option[*models.GuildApplicant], error)
	GetApplicationsByServer(ctx context.Context, serverID string) ([]*models.GuildApplicant, error)
	CloseApplication(ctx context.Context, id string) error
}

// TemplatesService defines the interface for configured message delivery texts
type TemplatesService interface {
	GetGuildMessage(
		ctx context.Context,
		serverID, guildID string,
		event models.GuildEvent,
	) (mo.Option[*models.GuildMessage], error)
	GetServerMessage(
		ctx context.Context,
		serverID string,
		event models.ServerEvent,
	) (mo.Option[*models.ServerMessage], error)
}

// TransactionManager defines the interface for transaction management
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}
