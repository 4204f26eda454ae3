package recruiting

import (
	"testing"

	"guildbot/botlog"
	discordclient "guildbot/clients/discord"
	"guildbot/models"
	"guildbot/services"
)

// Test constants for consistent test data
const (
	testDiscordServerID      = "discord-srv-1"
	testServerID             = "srv_1"
	testGameID               = "gm_1"
	testPlaceholderGuildID   = "gld_p"
	testConcreteGuildID      = "gld_a"
	testOtherGuildID         = "gld_b"
	testRecruitmentChannelID = "chan-recruitment"
	testApplicantChannelID   = "chan-applicant"
	testRecruitmentThreadID  = "thread-recruitment"
	testApplicantThreadID    = "thread-applicant"
	testApplicantDiscordID   = "12345"
	testApplicantUserID      = "usr_1"
	testCallerDiscordID      = "caller-99"
	testBotUserID            = "bot-1"
)

type testFixture struct {
	useCase            *RecruitingUseCase
	discordClient      *discordclient.MockDiscordClient
	serversService     *services.MockServersService
	usersService       *services.MockUsersService
	guildsService      *services.MockGuildsService
	channelsService    *services.MockChannelsService
	rolesService       *services.MockRolesService
	permissionsService *services.MockPermissionsService
	applicantsService  *services.MockApplicantsService
	templatesService   *services.MockTemplatesService
	txManager          *services.MockTransactionManager
}

func newTestFixture() *testFixture {
	f := &testFixture{
		discordClient:      new(discordclient.MockDiscordClient),
		serversService:     new(services.MockServersService),
		usersService:       new(services.MockUsersService),
		guildsService:      new(services.MockGuildsService),
		channelsService:    new(services.MockChannelsService),
		rolesService:       new(services.MockRolesService),
		permissionsService: new(services.MockPermissionsService),
		applicantsService:  new(services.MockApplicantsService),
		templatesService:   new(services.MockTemplatesService),
		txManager:          &services.MockTransactionManager{Passthrough: true},
	}
	f.useCase = NewRecruitingUseCase(
		f.discordClient,
		f.serversService,
		f.usersService,
		f.guildsService,
		f.channelsService,
		f.rolesService,
		f.permissionsService,
		f.applicantsService,
		f.templatesService,
		f.txManager,
		botlog.New(f.channelsService, f.discordClient),
	)
	return f
}

func (f *testFixture) assertAllExpectations(t *testing.T) {
	f.discordClient.AssertExpectations(t)
	f.serversService.AssertExpectations(t)
	f.usersService.AssertExpectations(t)
	f.guildsService.AssertExpectations(t)
	f.channelsService.AssertExpectations(t)
	f.rolesService.AssertExpectations(t)
	f.permissionsService.AssertExpectations(t)
	f.applicantsService.AssertExpectations(t)
	f.templatesService.AssertExpectations(t)
}

func activeServerFixture() *models.Server {
	return &models.Server{
		ID:              testServerID,
		DiscordServerID: testDiscordServerID,
		Name:            "Test Server",
		Active:          true,
	}
}

func placeholderGuildFixture() *models.Guild {
	return &models.Guild{
		ID:       testPlaceholderGuildID,
		ServerID: testServerID,
		GameID:   testGameID,
		Name:     "Elden Realm",
		Active:   true,
	}
}

func concreteGuildFixture() *models.Guild {
	return &models.Guild{
		ID:             testConcreteGuildID,
		ServerID:       testServerID,
		GameID:         testGameID,
		DiscordGuildID: "ext-a",
		Name:           "Night Owls",
		Active:         true,
	}
}

func otherGuildFixture() *models.Guild {
	return &models.Guild{
		ID:             testOtherGuildID,
		ServerID:       testServerID,
		GameID:         testGameID,
		DiscordGuildID: "ext-b",
		Name:           "Day Larks",
		Active:         true,
	}
}

func applicantUserFixture() *models.User {
	return &models.User{
		ID:            testApplicantUserID,
		DiscordUserID: testApplicantDiscordID,
		DisplayName:   "Alice",
	}
}

func channelPurposeFixture(purpose models.ChannelPurposeType, discordChannelID string) *models.ChannelPurpose {
	guildID := testPlaceholderGuildID
	return &models.ChannelPurpose{
		ID:               "chp_" + string(purpose),
		ServerID:         testServerID,
		GuildID:          &guildID,
		Purpose:          purpose,
		DiscordChannelID: discordChannelID,
	}
}

func applicationFixture() *models.GuildApplicant {
	return &models.GuildApplicant{
		ID:       "app_1",
		UserID:   testApplicantUserID,
		GuildID:  testConcreteGuildID,
		GameID:   testGameID,
		ServerID: testServerID,
	}
}
