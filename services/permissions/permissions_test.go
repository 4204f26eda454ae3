package permissions

import (
	"context"
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"guildbot/clients"
	discordclient "guildbot/clients/discord"
	"guildbot/models"
	"guildbot/services"
)

const (
	testDiscordServerID = "discord-srv-1"
	testServerID        = "srv_1"
	testGuildID         = "gld_a"
	testOwnerDiscordID  = "owner-1"
	testCallerDiscordID = "caller-99"
)

type testFixture struct {
	service       *PermissionsService
	discordClient *discordclient.MockDiscordClient
	rolesService  *services.MockRolesService
}

func newTestFixture() *testFixture {
	f := &testFixture{
		discordClient: new(discordclient.MockDiscordClient),
		rolesService:  new(services.MockRolesService),
	}
	f.service = NewPermissionsService(f.discordClient, f.rolesService)
	return f
}

func (f *testFixture) assertAllExpectations(t *testing.T) {
	f.discordClient.AssertExpectations(t)
	f.rolesService.AssertExpectations(t)
}

func serverFixture() *models.Server {
	return &models.Server{
		ID:              testServerID,
		DiscordServerID: testDiscordServerID,
		Name:            "Test Server",
		Active:          true,
	}
}

func memberFixture(roleIDs []string, administrator bool) *clients.DiscordMember {
	return &clients.DiscordMember{
		UserID:        testCallerDiscordID,
		RoleIDs:       roleIDs,
		Administrator: administrator,
	}
}

func TestHasPermission(t *testing.T) {
	guildID := testGuildID
	criteria := []models.RoleCriterion{
		{RoleType: models.UserRoleServerOwner},
		{RoleType: models.UserRoleAdministrator},
		{RoleType: models.UserRoleGuildManagement, GuildID: &guildID},
	}

	t.Run("server owner passes without role lookups", func(t *testing.T) {
		f := newTestFixture()
		f.discordClient.On("GetServerOwnerID", testDiscordServerID).Return(testCallerDiscordID, nil)

		allowed, err := f.service.HasPermission(context.Background(), serverFixture(), testCallerDiscordID, criteria)

		assert.NoError(t, err)
		assert.True(t, allowed)
		f.discordClient.AssertNotCalled(t, "GetMember", mock.Anything, mock.Anything)
		f.assertAllExpectations(t)
	})

	t.Run("discord administrator passes without role lookups", func(t *testing.T) {
		f := newTestFixture()
		f.discordClient.On("GetServerOwnerID", testDiscordServerID).Return(testOwnerDiscordID, nil)
		f.discordClient.On("GetMember", testDiscordServerID, testCallerDiscordID).
			Return(memberFixture(nil, true), nil)

		allowed, err := f.service.HasPermission(context.Background(), serverFixture(), testCallerDiscordID, criteria)

		assert.NoError(t, err)
		assert.True(t, allowed)
		f.rolesService.AssertNotCalled(t, "GetServerRole", mock.Anything, mock.Anything, mock.Anything)
		f.assertAllExpectations(t)
	})

	t.Run("administrator bit with empty criteria is denied", func(t *testing.T) {
		f := newTestFixture()
		f.discordClient.On("GetServerOwnerID", testDiscordServerID).Return(testOwnerDiscordID, nil)
		f.discordClient.On("GetMember", testDiscordServerID, testCallerDiscordID).
			Return(memberFixture(nil, true), nil)

		allowed, err := f.service.HasPermission(
			context.Background(), serverFixture(), testCallerDiscordID, []models.RoleCriterion{})

		assert.NoError(t, err)
		assert.False(t, allowed)
		f.assertAllExpectations(t)
	})

	t.Run("administrator bit without an administrator criterion is denied", func(t *testing.T) {
		f := newTestFixture()
		f.discordClient.On("GetServerOwnerID", testDiscordServerID).Return(testOwnerDiscordID, nil)
		f.discordClient.On("GetMember", testDiscordServerID, testCallerDiscordID).
			Return(memberFixture(nil, true), nil)
		f.rolesService.On("GetGuildRole", mock.Anything, testServerID, testGuildID, models.UserRoleGuildManagement).
			Return(mo.None[*models.UserRole](), nil)

		allowed, err := f.service.HasPermission(
			context.Background(), serverFixture(), testCallerDiscordID, []models.RoleCriterion{
				{RoleType: models.UserRoleGuildManagement, GuildID: &guildID},
			})

		assert.NoError(t, err)
		assert.False(t, allowed)
		f.assertAllExpectations(t)
	})

	t.Run("held guild role matches its criterion", func(t *testing.T) {
		f := newTestFixture()
		f.discordClient.On("GetServerOwnerID", testDiscordServerID).Return(testOwnerDiscordID, nil)
		f.discordClient.On("GetMember", testDiscordServerID, testCallerDiscordID).
			Return(memberFixture([]string{"mgmt-role"}, false), nil)
		f.rolesService.On("GetServerRole", mock.Anything, testServerID, models.UserRoleAdministrator).
			Return(mo.None[*models.UserRole](), nil)
		f.rolesService.On("GetGuildRole", mock.Anything, testServerID, testGuildID, models.UserRoleGuildManagement).
			Return(mo.Some(&models.UserRole{DiscordRoleID: "mgmt-role"}), nil)

		allowed, err := f.service.HasPermission(context.Background(), serverFixture(), testCallerDiscordID, criteria)

		assert.NoError(t, err)
		assert.True(t, allowed)
		f.assertAllExpectations(t)
	})

	t.Run("unmapped criteria are skipped, not granted", func(t *testing.T) {
		f := newTestFixture()
		f.discordClient.On("GetServerOwnerID", testDiscordServerID).Return(testOwnerDiscordID, nil)
		f.discordClient.On("GetMember", testDiscordServerID, testCallerDiscordID).
			Return(memberFixture([]string{"some-role"}, false), nil)
		f.rolesService.On("GetServerRole", mock.Anything, testServerID, models.UserRoleAdministrator).
			Return(mo.None[*models.UserRole](), nil)
		f.rolesService.On("GetGuildRole", mock.Anything, testServerID, testGuildID, models.UserRoleGuildManagement).
			Return(mo.None[*models.UserRole](), nil)

		allowed, err := f.service.HasPermission(context.Background(), serverFixture(), testCallerDiscordID, criteria)

		assert.NoError(t, err)
		assert.False(t, allowed)
		f.assertAllExpectations(t)
	})

	t.Run("member without any mapped role is denied", func(t *testing.T) {
		f := newTestFixture()
		f.discordClient.On("GetServerOwnerID", testDiscordServerID).Return(testOwnerDiscordID, nil)
		f.discordClient.On("GetMember", testDiscordServerID, testCallerDiscordID).
			Return(memberFixture([]string{"unrelated-role"}, false), nil)
		f.rolesService.On("GetServerRole", mock.Anything, testServerID, models.UserRoleAdministrator).
			Return(mo.Some(&models.UserRole{DiscordRoleID: "admin-role"}), nil)
		f.rolesService.On("GetGuildRole", mock.Anything, testServerID, testGuildID, models.UserRoleGuildManagement).
			Return(mo.Some(&models.UserRole{DiscordRoleID: "mgmt-role"}), nil)

		allowed, err := f.service.HasPermission(context.Background(), serverFixture(), testCallerDiscordID, criteria)

		assert.NoError(t, err)
		assert.False(t, allowed)
		f.assertAllExpectations(t)
	})

	t.Run("empty user id is rejected", func(t *testing.T) {
		f := newTestFixture()

		_, err := f.service.HasPermission(context.Background(), serverFixture(), "", criteria)

		assert.Error(t, err)
		f.assertAllExpectations(t)
	})
}
