package recruiting

import (
	"context"
	"fmt"

	"github.com/samber/mo"

	"guildbot/botlog"
	"guildbot/clients"
	"guildbot/models"
	"guildbot/services"
)

// RecruitingUseCase drives the guild application workflow: thread pairing,
// message relay between paired threads and the apply/accept/decline
// lifecycle.
type RecruitingUseCase struct {
	discordClient      clients.DiscordClient
	serversService     services.ServersService
	usersService       services.UsersService
	guildsService      services.GuildsService
	channelsService    services.ChannelsService
	rolesService       services.RolesService
	permissionsService services.PermissionsService
	applicantsService  services.ApplicantsService
	templatesService   services.TemplatesService
	txManager          services.TransactionManager
	botLog             *botlog.Logger

	threadLocks   keyedMutex
	confirmations *confirmationRegistry
}

func NewRecruitingUseCase(
	discordClient clients.DiscordClient,
	serversService services.ServersService,
	usersService services.UsersService,
	guildsService services.GuildsService,
	channelsService services.ChannelsService,
	rolesService services.RolesService,
	permissionsService services.PermissionsService,
	applicantsService services.ApplicantsService,
	templatesService services.TemplatesService,
	txManager services.TransactionManager,
	botLog *botlog.Logger,
) *RecruitingUseCase {
	return &RecruitingUseCase{
		discordClient:      discordClient,
		serversService:     serversService,
		usersService:       usersService,
		guildsService:      guildsService,
		channelsService:    channelsService,
		rolesService:       rolesService,
		permissionsService: permissionsService,
		applicantsService:  applicantsService,
		templatesService:   templatesService,
		txManager:          txManager,
		botLog:             botLog,
		confirmations:      newConfirmationRegistry(),
	}
}

// resolveActiveServer maps a gateway-side server ID to the persisted row,
// applying the activity gate. mo.None means the event should be dropped.
func (u *RecruitingUseCase) resolveActiveServer(
	ctx context.Context,
	discordServerID string,
) (mo.Option[*models.Server], error) {
	maybeServer, err := u.serversService.GetActiveServer(ctx, discordServerID, "")
	if err != nil {
		return mo.None[*models.Server](), fmt.Errorf("failed to resolve server: %w", err)
	}
	return maybeServer, nil
}
