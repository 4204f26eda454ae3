package services

import (
	"context"

	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"

	"guildbot/models"
)

// MockServersService is a mock implementation of ServersService
type MockServersService struct {
	mock.Mock
}

func (m *MockServersService) GetActiveServer(
	ctx context.Context,
	discordServerID, name string,
) (mo.Option[*models.Server], error) {
	args := m.Called(ctx, discordServerID, name)
	return args.Get(0).(mo.Option[*models.Server]), args.Error(1)
}

func (m *MockServersService) GetServerByID(ctx context.Context, id string) (mo.Option[*models.Server], error) {
	args := m.Called(ctx, id)
	return args.Get(0).(mo.Option[*models.Server]), args.Error(1)
}

// MockUsersService is a mock implementation of UsersService
type MockUsersService struct {
	mock.Mock
}

func (m *MockUsersService) ResolveUser(ctx context.Context, discordUserID, displayName string) (*models.User, error) {
	args := m.Called(ctx, discordUserID, displayName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUsersService) GetUserByDiscordID(
	ctx context.Context,
	discordUserID string,
) (mo.Option[*models.User], error) {
	args := m.Called(ctx, discordUserID)
	return args.Get(0).(mo.Option[*models.User]), args.Error(1)
}

func (m *MockUsersService) GetUserByID(ctx context.Context, id string) (mo.Option[*models.User], error) {
	args := m.Called(ctx, id)
	return args.Get(0).(mo.Option[*models.User]), args.Error(1)
}

// MockGuildsService is a mock implementation of GuildsService
type MockGuildsService struct {
	mock.Mock
}

func (m *MockGuildsService) GetGuildByID(ctx context.Context, id string) (mo.Option[*models.Guild], error) {
	args := m.Called(ctx, id)
	return args.Get(0).(mo.Option[*models.Guild]), args.Error(1)
}

func (m *MockGuildsService) GetPlaceholderGuild(
	ctx context.Context,
	serverID, gameID string,
) (mo.Option[*models.Guild], error) {
	args := m.Called(ctx, serverID, gameID)
	return args.Get(0).(mo.Option[*models.Guild]), args.Error(1)
}

func (m *MockGuildsService) GetPlaceholderGuilds(ctx context.Context, serverID string) ([]*models.Guild, error) {
	args := m.Called(ctx, serverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Guild), args.Error(1)
}

func (m *MockGuildsService) GetConcreteGuildsByGame(
	ctx context.Context,
	serverID, gameID string,
) ([]*models.Guild, error) {
	args := m.Called(ctx, serverID, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Guild), args.Error(1)
}

func (m *MockGuildsService) GetGuildsByServer(ctx context.Context, serverID string) ([]*models.Guild, error) {
	args := m.Called(ctx, serverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Guild), args.Error(1)
}

func (m *MockGuildsService) GetGameByID(ctx context.Context, id string) (mo.Option[*models.Game], error) {
	args := m.Called(ctx, id)
	return args.Get(0).(mo.Option[*models.Game]), args.Error(1)
}

// MockChannelsService is a mock implementation of ChannelsService
type MockChannelsService struct {
	mock.Mock
}

func (m *MockChannelsService) GetChannelPurpose(
	ctx context.Context,
	serverID, guildID string,
	purpose models.ChannelPurposeType,
) (mo.Option[*models.ChannelPurpose], error) {
	args := m.Called(ctx, serverID, guildID, purpose)
	return args.Get(0).(mo.Option[*models.ChannelPurpose]), args.Error(1)
}

func (m *MockChannelsService) GetThreadChannelByDiscordID(
	ctx context.Context,
	discordChannelID string,
) (mo.Option[*models.ChannelPurpose], error) {
	args := m.Called(ctx, discordChannelID)
	return args.Get(0).(mo.Option[*models.ChannelPurpose]), args.Error(1)
}

func (m *MockChannelsService) GetBotLogChannel(
	ctx context.Context,
	serverID string,
) (mo.Option[*models.ChannelPurpose], error) {
	args := m.Called(ctx, serverID)
	return args.Get(0).(mo.Option[*models.ChannelPurpose]), args.Error(1)
}

// MockRolesService is a mock implementation of RolesService
type MockRolesService struct {
	mock.Mock
}

func (m *MockRolesService) GetGuildRole(
	ctx context.Context,
	serverID, guildID string,
	roleType models.UserRoleType,
) (mo.Option[*models.UserRole], error) {
	args := m.Called(ctx, serverID, guildID, roleType)
	return args.Get(0).(mo.Option[*models.UserRole]), args.Error(1)
}

func (m *MockRolesService) GetServerRole(
	ctx context.Context,
	serverID string,
	roleType models.UserRoleType,
) (mo.Option[*models.UserRole], error) {
	args := m.Called(ctx, serverID, roleType)
	return args.Get(0).(mo.Option[*models.UserRole]), args.Error(1)
}

func (m *MockRolesService) GetRolesByTypes(
	ctx context.Context,
	serverID string,
	roleTypes []models.UserRoleType,
) ([]*models.UserRole, error) {
	args := m.Called(ctx, serverID, roleTypes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.UserRole), args.Error(1)
}

// MockPermissionsService is a mock implementation of PermissionsService
type MockPermissionsService struct {
	mock.Mock
}

func (m *MockPermissionsService) HasPermission(
	ctx context.Context,
	server *models.Server,
	discordUserID string,
	criteria []models.RoleCriterion,
) (bool, error) {
	args := m.Called(ctx, server, discordUserID, criteria)
	return args.Bool(0), args.Error(1)
}

// MockApplicantsService is a mock implementation of ApplicantsService
type MockApplicantsService struct {
	mock.Mock
}

func (m *MockApplicantsService) UpsertApplication(
	ctx context.Context,
	userID, guildID, gameID, serverID string,
) (*models.GuildApplicant, error) {
	args := m.Called(ctx, userID, guildID, gameID, serverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GuildApplicant), args.Error(1)
}

func (m *MockApplicantsService) GetOpenApplication(
	ctx context.Context,
	userID, gameID, serverID string,
) (mo.Option[*models.GuildApplicant], error) {
	args := m.Called(ctx, userID, gameID, serverID)
	return args.Get(0).(mo.Option[*models.GuildApplicant]), args.Error(1)
}

func (m *MockApplicantsService) GetApplicationsByServer(
	ctx context.Context,
	serverID string,
) ([]*models.GuildApplicant, error) {
	args := m.Called(ctx, serverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.GuildApplicant), args.Error(1)
}

func (m *MockApplicantsService) CloseApplication(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTemplatesService is a mock implementation of TemplatesService
type MockTemplatesService struct {
	mock.Mock
}

func (m *MockTemplatesService) GetGuildMessage(
	ctx context.Context,
	serverID, guildID string,
	event models.GuildEvent,
) (mo.Option[*models.GuildMessage], error) {
	args := m.Called(ctx, serverID, guildID, event)
	return args.Get(0).(mo.Option[*models.GuildMessage]), args.Error(1)
}

func (m *MockTemplatesService) GetServerMessage(
	ctx context.Context,
	serverID string,
	event models.ServerEvent,
) (mo.Option[*models.ServerMessage], error) {
	args := m.Called(ctx, serverID, event)
	return args.Get(0).(mo.Option[*models.ServerMessage]), args.Error(1)
}

// MockTransactionManager is a mock implementation of TransactionManager.
// Tests that need the wrapped function to run should set passthrough.
type MockTransactionManager struct {
	mock.Mock
	Passthrough bool
}

func (m *MockTransactionManager) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	args := m.Called(ctx, fn)
	if m.Passthrough {
		return fn(ctx)
	}
	return args.Error(0)
}
