package recruiting

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"

	"guildbot/clients"
	"guildbot/core"
	"guildbot/models"
	"guildbot/services/templates"
)

// ApplyRequest carries the inputs of an apply action. Exactly one of GuildID
// and GameID should be set: an explicit target guild, or a game whose single
// configured guild is implied.
type ApplyRequest struct {
	DiscordServerID string
	DiscordUserID   string
	DisplayName     string
	GuildID         string
	GameID          string
}

type ApplyResult struct {
	Reply             string
	ApplicantThreadID string
}

// AcceptRequest carries the inputs of an accept action. ThreadID is the
// channel the action was invoked from; when it is a recognized applicant
// pairing the target user is taken from there, otherwise
// TargetDiscordUserID must be supplied.
type AcceptRequest struct {
	DiscordServerID     string
	CallerDiscordUserID string
	ThreadID            string
	GuildID             string
	TargetDiscordUserID string
}

type AcceptResult struct {
	Reply       string
	Transferred bool
}

type DeclineRequest struct {
	DiscordServerID     string
	CallerDiscordUserID string
	ThreadID            string
}

type DeclineResult struct {
	Reply string
}

// Apply records a pending application and sets up the paired threads. The
// returned reply is user-facing; soft failures (misconfiguration, ambiguous
// target) come back as a reply with no error.
func (u *RecruitingUseCase) Apply(ctx context.Context, req ApplyRequest) (*ApplyResult, error) {
	log.Printf("📋 Starting apply for user %s on server %s", req.DiscordUserID, req.DiscordServerID)

	maybeServer, err := u.resolveActiveServer(ctx, req.DiscordServerID)
	if err != nil {
		return nil, err
	}
	if !maybeServer.IsPresent() {
		return &ApplyResult{Reply: "This server is not set up for recruiting."}, nil
	}
	server := maybeServer.MustGet()

	guild, softReply, err := u.resolveTargetGuild(ctx, server, req.GuildID, req.GameID)
	if err != nil {
		return nil, err
	}
	if softReply != "" {
		return &ApplyResult{Reply: softReply}, nil
	}

	maybePlaceholder, err := u.guildsService.GetPlaceholderGuild(ctx, server.ID, guild.GameID)
	if err != nil {
		return nil, err
	}
	if !maybePlaceholder.IsPresent() {
		return &ApplyResult{Reply: "Recruiting for this game is not set up on this server."}, nil
	}
	placeholder := maybePlaceholder.MustGet()

	recruitmentChannel, applicantChannel, softReply, err := u.resolvePairedChannels(ctx, server, placeholder)
	if err != nil {
		return nil, err
	}
	if softReply != "" {
		return &ApplyResult{Reply: softReply}, nil
	}

	var user *models.User
	err = u.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		user, err = u.usersService.ResolveUser(txCtx, req.DiscordUserID, req.DisplayName)
		if err != nil {
			return err
		}
		_, err = u.applicantsService.UpsertApplication(txCtx, user.ID, guild.ID, guild.GameID, server.ID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record application: %w", err)
	}

	recruitmentThread, err := u.getOrCreateUserThread(recruitmentChannel.DiscordChannelID, user)
	if err != nil {
		return nil, err
	}
	applicantThread, err := u.getOrCreateUserThread(applicantChannel.DiscordChannelID, user)
	if err != nil {
		return nil, err
	}

	u.announceApplication(ctx, server, guild, user, recruitmentChannel, recruitmentThread, applicantThread)

	log.Printf("📋 Completed successfully - %s applied to guild %s", user.ID, guild.ID)
	return &ApplyResult{
		Reply:             fmt.Sprintf("Your application to %s was submitted. Check <#%s>.", guild.Name, applicantThread.ID),
		ApplicantThreadID: applicantThread.ID,
	}, nil
}

// resolveTargetGuild maps an explicit guild ID, or the single concrete guild
// of a game, to the target guild. The string return is a user-facing soft
// failure.
func (u *RecruitingUseCase) resolveTargetGuild(
	ctx context.Context,
	server *models.Server,
	guildID, gameID string,
) (*models.Guild, string, error) {
	if guildID != "" {
		maybeGuild, err := u.guildsService.GetGuildByID(ctx, guildID)
		if err != nil {
			return nil, "", err
		}
		if !maybeGuild.IsPresent() || maybeGuild.MustGet().ServerID != server.ID {
			return nil, "That guild does not exist on this server.", nil
		}
		guild := maybeGuild.MustGet()
		if guild.IsPlaceholder() || !guild.Active {
			return nil, "That guild is not open for applications.", nil
		}
		return guild, "", nil
	}

	if gameID == "" {
		return nil, "Specify a guild or a game to apply to.", nil
	}

	concrete, err := u.guildsService.GetConcreteGuildsByGame(ctx, server.ID, gameID)
	if err != nil {
		return nil, "", err
	}
	switch len(concrete) {
	case 0:
		return nil, "No guild is configured for that game on this server.", nil
	case 1:
		return concrete[0], "", nil
	default:
		return nil, "That game has several guilds here. Specify which guild to apply to.", nil
	}
}

func (u *RecruitingUseCase) resolvePairedChannels(
	ctx context.Context,
	server *models.Server,
	placeholder *models.Guild,
) (recruitment, applicant *models.ChannelPurpose, softReply string, err error) {
	maybeRecruitment, err := u.channelsService.GetChannelPurpose(
		ctx, server.ID, placeholder.ID, models.ChannelPurposeRecruitment)
	if err != nil {
		return nil, nil, "", err
	}
	maybeApplicant, err := u.channelsService.GetChannelPurpose(
		ctx, server.ID, placeholder.ID, models.ChannelPurposeApplicant)
	if err != nil {
		return nil, nil, "", err
	}
	if !maybeRecruitment.IsPresent() || !maybeApplicant.IsPresent() {
		return nil, nil, "The recruitment channels for this game are not set up. Ask an administrator to configure them.", nil
	}
	return maybeRecruitment.MustGet(), maybeApplicant.MustGet(), "", nil
}

// announceApplication posts the three apply-time notices: a short line in
// the recruitment channel, a management ping in the recruitment thread and
// the application form (or a generic greeting) in the applicant thread.
// All are best-effort.
func (u *RecruitingUseCase) announceApplication(
	ctx context.Context,
	server *models.Server,
	guild *models.Guild,
	user *models.User,
	recruitmentChannel *models.ChannelPurpose,
	recruitmentThread, applicantThread *clients.DiscordThread,
) {
	userMention := "<@" + user.DiscordUserID + ">"

	notice := fmt.Sprintf("%s applied to join %s.", userMention, guild.Name)
	if _, err := u.discordClient.SendMessage(recruitmentChannel.DiscordChannelID, notice); err != nil {
		log.Printf("⚠️ Failed to announce application in recruitment channel: %v", err)
	}

	detail := fmt.Sprintf("%s has applied to join %s.", userMention, guild.Name)
	if maybeRole, err := u.rolesService.GetGuildRole(
		ctx, server.ID, guild.ID, models.UserRoleGuildManagement); err == nil && maybeRole.IsPresent() {
		detail = fmt.Sprintf("<@&%s> %s", maybeRole.MustGet().DiscordRoleID, detail)
	}
	if _, err := u.discordClient.SendMessage(recruitmentThread.ID, detail); err != nil {
		log.Printf("⚠️ Failed to notify recruitment thread: %v", err)
	}

	maybeForm, err := u.templatesService.GetGuildMessage(ctx, server.ID, guild.ID, models.GuildEventApply)
	if err != nil {
		log.Printf("⚠️ Failed to load apply template for guild %s: %v", guild.ID, err)
	}
	if err == nil && maybeForm.IsPresent() {
		form := maybeForm.MustGet()
		quoted := "> " + strings.ReplaceAll(form.Text, "\n", "\n> ")
		if _, err := u.discordClient.SendMessage(recruitmentThread.ID, quoted); err != nil {
			log.Printf("⚠️ Failed to quote application form in recruitment thread: %v", err)
		}

		values := u.buildRenderValues(ctx, server, guild, userMention)
		body, _ := templates.ExtractApplyMarker(templates.Render(form.Text, values))
		greeting := fmt.Sprintf("Welcome %s! Can you fill out the application below?\n%s", userMention, body)
		if _, err := u.discordClient.SendMessage(applicantThread.ID, greeting); err != nil {
			log.Printf("⚠️ Failed to send application form to applicant thread: %v", err)
		}
		return
	}

	greeting := fmt.Sprintf("Welcome %s! A recruiter will be with you shortly.", userMention)
	if _, err := u.discordClient.SendMessage(applicantThread.ID, greeting); err != nil {
		log.Printf("⚠️ Failed to greet applicant thread: %v", err)
	}
}

// Accept grants the target guild's Member role, consumes the application and
// runs the transfer confirmation when the user still holds other concrete
// guilds of the same game.
func (u *RecruitingUseCase) Accept(ctx context.Context, req AcceptRequest) (*AcceptResult, error) {
	log.Printf("📋 Starting accept into guild %s by %s", req.GuildID, req.CallerDiscordUserID)

	maybeServer, err := u.resolveActiveServer(ctx, req.DiscordServerID)
	if err != nil {
		return nil, err
	}
	if !maybeServer.IsPresent() {
		return &AcceptResult{Reply: "This server is not set up for recruiting."}, nil
	}
	server := maybeServer.MustGet()

	maybeGuild, err := u.guildsService.GetGuildByID(ctx, req.GuildID)
	if err != nil {
		return nil, err
	}
	if !maybeGuild.IsPresent() || maybeGuild.MustGet().ServerID != server.ID ||
		maybeGuild.MustGet().IsPlaceholder() {
		return &AcceptResult{Reply: "That guild does not exist on this server."}, nil
	}
	guild := maybeGuild.MustGet()

	allowed, err := u.permissionsService.HasPermission(ctx, server, req.CallerDiscordUserID, []models.RoleCriterion{
		{RoleType: models.UserRoleServerOwner},
		{RoleType: models.UserRoleAdministrator},
		{RoleType: models.UserRoleGuildLead, GuildID: &guild.ID},
		{RoleType: models.UserRoleGuildManagement, GuildID: &guild.ID},
	})
	if err != nil {
		return nil, err
	}
	if !allowed {
		return &AcceptResult{Reply: "You don't have permission to accept applicants into this guild."}, nil
	}

	targetUser, pairing, softReply, err := u.resolveAcceptTarget(ctx, server, req)
	if err != nil {
		return nil, err
	}
	if softReply != "" {
		return &AcceptResult{Reply: softReply}, nil
	}

	maybeMemberRole, err := u.rolesService.GetGuildRole(ctx, server.ID, guild.ID, models.UserRoleGuildMember)
	if err != nil {
		return nil, err
	}
	if !maybeMemberRole.IsPresent() {
		return &AcceptResult{
			Reply: fmt.Sprintf("The Member role for %s is not configured. Ask an administrator to set it.", guild.Name),
		}, nil
	}
	memberRole := maybeMemberRole.MustGet()

	member, err := u.discordClient.GetMember(server.DiscordServerID, targetUser.DiscordUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch member %s: %w", targetUser.DiscordUserID, err)
	}

	if !slices.Contains(member.RoleIDs, memberRole.DiscordRoleID) {
		if err := u.discordClient.AddMemberRole(
			server.DiscordServerID, targetUser.DiscordUserID, memberRole.DiscordRoleID); err != nil {
			if errors.Is(err, core.ErrDeliveryFailure) {
				return &AcceptResult{
					Reply: "I couldn't assign the guild role. Raise the bot's role above the guild roles in the server settings and try again.",
				}, nil
			}
			return nil, fmt.Errorf("failed to assign member role: %w", err)
		}
	}

	if pairing != nil && pairing.Application.IsPresent() {
		if err := u.applicantsService.CloseApplication(ctx, pairing.Application.MustGet().ID); err != nil &&
			!errors.Is(err, core.ErrNotFound) {
			log.Printf("⚠️ Failed to close application for %s: %v", targetUser.ID, err)
		}
	} else if app, err := u.applicantsService.GetOpenApplication(
		ctx, targetUser.ID, guild.GameID, server.ID); err == nil && app.IsPresent() {
		if err := u.applicantsService.CloseApplication(ctx, app.MustGet().ID); err != nil &&
			!errors.Is(err, core.ErrNotFound) {
			log.Printf("⚠️ Failed to close application for %s: %v", targetUser.ID, err)
		}
	}

	userMention := "<@" + targetUser.DiscordUserID + ">"
	u.notifyApplicantThread(pairing,
		fmt.Sprintf("Congratulations %s, you have been accepted into %s!", userMention, guild.Name))

	if pairing != nil {
		if err := u.discordClient.ArchiveThread(pairing.SourceThread.ID); err != nil {
			log.Printf("⚠️ Failed to archive thread %s: %v", pairing.SourceThread.ID, err)
		}
	}

	staleRoles, err := u.collectStaleGuildRoles(ctx, server, guild, member)
	if err != nil {
		return nil, err
	}

	transferred := false
	if len(staleRoles) > 0 {
		transferred = u.runTransferConfirmation(ctx, server, req, targetUser, staleRoles)
	}

	u.deliverAcceptTemplate(ctx, server, guild, userMention, transferred)
	u.botLog.Log(ctx, server.ID, "✅ %s was accepted into %s by <@%s>",
		userMention, guild.Name, req.CallerDiscordUserID)

	log.Printf("📋 Completed successfully - accepted %s into guild %s (transferred=%t)",
		targetUser.ID, guild.ID, transferred)
	return &AcceptResult{
		Reply:       fmt.Sprintf("Accepted %s into %s.", userMention, guild.Name),
		Transferred: transferred,
	}, nil
}

// resolveAcceptTarget finds who is being accepted: the applicant of the
// invoking thread's pairing when an open application backs it, or the
// explicitly named user. Missing both is a user-facing soft failure.
func (u *RecruitingUseCase) resolveAcceptTarget(
	ctx context.Context,
	server *models.Server,
	req AcceptRequest,
) (*models.User, *ThreadPairing, string, error) {
	if req.ThreadID != "" {
		maybePairing, err := u.ResolveThreadPairing(ctx, server, req.ThreadID)
		if err != nil && !errors.Is(err, core.ErrNotFound) && !errors.Is(err, core.ErrNotConfigured) {
			return nil, nil, "", err
		}
		if err == nil && maybePairing.IsPresent() && maybePairing.MustGet().Application.IsPresent() {
			pairing := maybePairing.MustGet()
			return pairing.Applicant, pairing, "", nil
		}
	}

	if req.TargetDiscordUserID == "" {
		return nil, nil, "Run this inside an applicant thread or name the user to accept.", nil
	}

	maybeUser, err := u.usersService.GetUserByDiscordID(ctx, req.TargetDiscordUserID)
	if err != nil {
		return nil, nil, "", err
	}
	if !maybeUser.IsPresent() {
		return nil, nil, "That user has never interacted with the recruitment workflow here.", nil
	}
	return maybeUser.MustGet(), nil, "", nil
}

func (u *RecruitingUseCase) notifyApplicantThread(pairing *ThreadPairing, message string) {
	if pairing == nil {
		return
	}
	threadID := pairing.TargetThread.ID
	if pairing.SourceChannel.Purpose == models.ChannelPurposeApplicant {
		threadID = pairing.SourceThread.ID
	}
	if _, err := u.discordClient.SendMessage(threadID, message); err != nil {
		log.Printf("⚠️ Failed to notify applicant thread %s: %v", threadID, err)
	}
}

type staleGuildRole struct {
	guild *models.Guild
	role  *models.UserRole
}

// collectStaleGuildRoles computes the transfer candidate set: other concrete
// guilds of the same game whose Member role the user still holds.
func (u *RecruitingUseCase) collectStaleGuildRoles(
	ctx context.Context,
	server *models.Server,
	target *models.Guild,
	member *clients.DiscordMember,
) ([]staleGuildRole, error) {
	concrete, err := u.guildsService.GetConcreteGuildsByGame(ctx, server.ID, target.GameID)
	if err != nil {
		return nil, err
	}

	var stale []staleGuildRole
	for _, other := range concrete {
		if other.ID == target.ID {
			continue
		}
		maybeRole, err := u.rolesService.GetGuildRole(ctx, server.ID, other.ID, models.UserRoleGuildMember)
		if err != nil {
			return nil, err
		}
		if !maybeRole.IsPresent() {
			continue
		}
		role := maybeRole.MustGet()
		if slices.Contains(member.RoleIDs, role.DiscordRoleID) {
			stale = append(stale, staleGuildRole{guild: other, role: role})
		}
	}
	return stale, nil
}

// runTransferConfirmation shows the bounded Yes/No prompt and, on Yes,
// removes the stale guild roles. Timeout and No both keep the roles, which
// is an allowed outcome rather than an error.
func (u *RecruitingUseCase) runTransferConfirmation(
	ctx context.Context,
	server *models.Server,
	req AcceptRequest,
	targetUser *models.User,
	staleRoles []staleGuildRole,
) bool {
	names := make([]string, 0, len(staleRoles))
	for _, s := range staleRoles {
		names = append(names, s.guild.Name)
	}

	channelID := req.ThreadID
	if channelID == "" {
		log.Printf("⚠️ No invocation channel for transfer confirmation, keeping old roles")
		return false
	}

	token := core.NewID("cfm")
	prompt := fmt.Sprintf("<@%s> is still a member of %s. Remove their old guild roles?",
		targetUser.DiscordUserID, strings.Join(names, ", "))
	promptMsg, err := u.discordClient.SendMessageWithButtons(channelID, prompt, []clients.DiscordButton{
		{CustomID: confirmCustomID(token, confirmAnswerYes), Label: "Yes", Style: clients.DiscordButtonPrimary},
		{CustomID: confirmCustomID(token, confirmAnswerNo), Label: "No", Style: clients.DiscordButtonSecondary},
	})
	if err != nil {
		log.Printf("⚠️ Failed to send transfer confirmation prompt: %v", err)
		return false
	}

	confirmed, answered := u.waitForConfirmation(ctx, token, req.CallerDiscordUserID)

	outcome := "Confirmation not received, old guild roles were kept."
	transferred := false
	switch {
	case answered && confirmed:
		transferred = true
		outcome = "Old guild roles were removed."
		for _, s := range staleRoles {
			if err := u.discordClient.RemoveMemberRole(
				server.DiscordServerID, targetUser.DiscordUserID, s.role.DiscordRoleID); err != nil {
				log.Printf("❌ Failed to remove role %s from %s: %v", s.role.DiscordRoleID, targetUser.ID, err)
				u.botLog.Log(ctx, server.ID, "❌ Could not remove %s's old %s role: %v",
					targetUser.DisplayName, s.guild.Name, err)
				outcome = "Some old guild roles could not be removed. Check the bot's role hierarchy."
			}
		}
	case answered:
		outcome = "Old guild roles were kept."
	}

	if err := u.discordClient.UpdateMessageDropButtons(channelID, promptMsg.ID, outcome); err != nil {
		log.Printf("⚠️ Failed to finalize confirmation prompt: %v", err)
	}
	return transferred
}

// deliverAcceptTemplate sends the guild's Accept or Transfer announcement to
// its configured channel, best-effort.
func (u *RecruitingUseCase) deliverAcceptTemplate(
	ctx context.Context,
	server *models.Server,
	guild *models.Guild,
	userMention string,
	transferred bool,
) {
	event := models.GuildEventAccept
	if transferred {
		event = models.GuildEventTransfer
	}

	maybeTemplate, err := u.templatesService.GetGuildMessage(ctx, server.ID, guild.ID, event)
	if err != nil {
		log.Printf("⚠️ Failed to load %s template for guild %s: %v", event, guild.ID, err)
		return
	}
	if !maybeTemplate.IsPresent() {
		return
	}
	template := maybeTemplate.MustGet()
	if template.DiscordChannelID == "" {
		return
	}

	values := u.buildRenderValues(ctx, server, guild, userMention)
	body, hasApply := templates.ExtractApplyMarker(templates.Render(template.Text, values))

	if hasApply {
		buttons := []clients.DiscordButton{
			{CustomID: ApplyButtonCustomID(guild.ID), Label: "Apply", Style: clients.DiscordButtonPrimary},
		}
		if _, err := u.discordClient.SendMessageWithButtons(template.DiscordChannelID, body, buttons); err != nil {
			log.Printf("⚠️ Failed to deliver %s template: %v", event, err)
		}
		return
	}
	if _, err := u.discordClient.SendMessage(template.DiscordChannelID, body); err != nil {
		log.Printf("⚠️ Failed to deliver %s template: %v", event, err)
	}
}

// buildRenderValues assembles the template substitutions for a guild-scoped
// message. Lookups are best-effort: a missing role just leaves its token in
// the rendered text.
func (u *RecruitingUseCase) buildRenderValues(
	ctx context.Context,
	server *models.Server,
	guild *models.Guild,
	userMention string,
) templates.RenderValues {
	var game *models.Game
	if maybeGame, err := u.guildsService.GetGameByID(ctx, guild.GameID); err == nil && maybeGame.IsPresent() {
		game = maybeGame.MustGet()
	}

	values := templates.NewRenderValues(guild, game)
	values.UserMention = userMention
	values.ServerName = server.Name

	if maybeRole, err := u.rolesService.GetServerRole(
		ctx, server.ID, models.UserRoleAdministrator); err == nil && maybeRole.IsPresent() {
		values.ServerAdminMention = "<@&" + maybeRole.MustGet().DiscordRoleID + ">"
	}
	if maybeRole, err := u.rolesService.GetGuildRole(
		ctx, server.ID, guild.ID, models.UserRoleGuildManagement); err == nil && maybeRole.IsPresent() {
		values.GuildManagementMention = "<@&" + maybeRole.MustGet().DiscordRoleID + ">"
	}
	if maybeRole, err := u.rolesService.GetGuildRole(
		ctx, server.ID, guild.ID, models.UserRoleGuildMember); err == nil && maybeRole.IsPresent() {
		values.GuildMembersMention = "<@&" + maybeRole.MustGet().DiscordRoleID + ">"
	}
	return values
}

// Decline closes the application of the thread's applicant. Only valid from
// inside a recruitment thread with an open application.
func (u *RecruitingUseCase) Decline(ctx context.Context, req DeclineRequest) (*DeclineResult, error) {
	log.Printf("📋 Starting decline in thread %s by %s", req.ThreadID, req.CallerDiscordUserID)

	maybeServer, err := u.resolveActiveServer(ctx, req.DiscordServerID)
	if err != nil {
		return nil, err
	}
	if !maybeServer.IsPresent() {
		return &DeclineResult{Reply: "This server is not set up for recruiting."}, nil
	}
	server := maybeServer.MustGet()

	maybePairing, err := u.ResolveThreadPairing(ctx, server, req.ThreadID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) || errors.Is(err, core.ErrNotConfigured) {
			return &DeclineResult{Reply: "This command only works inside a recruitment thread."}, nil
		}
		return nil, err
	}
	if !maybePairing.IsPresent() ||
		maybePairing.MustGet().SourceChannel.Purpose != models.ChannelPurposeRecruitment {
		return &DeclineResult{Reply: "This command only works inside a recruitment thread."}, nil
	}
	pairing := maybePairing.MustGet()

	if !pairing.Application.IsPresent() {
		return &DeclineResult{Reply: "There is no open application for this applicant."}, nil
	}
	application := pairing.Application.MustGet()

	allowed, err := u.permissionsService.HasPermission(ctx, server, req.CallerDiscordUserID, []models.RoleCriterion{
		{RoleType: models.UserRoleServerOwner},
		{RoleType: models.UserRoleAdministrator},
	})
	if err != nil {
		return nil, err
	}
	if !allowed {
		return &DeclineResult{Reply: "You don't have permission to decline applications."}, nil
	}

	if err := u.applicantsService.CloseApplication(ctx, application.ID); err != nil {
		return nil, err
	}

	guildName := "the guild"
	if maybeGuild, err := u.guildsService.GetGuildByID(ctx, application.GuildID); err == nil && maybeGuild.IsPresent() {
		guildName = maybeGuild.MustGet().Name
	}

	userMention := "<@" + pairing.Applicant.DiscordUserID + ">"
	u.notifyApplicantThread(pairing,
		fmt.Sprintf("Unfortunately %s, your application to %s was declined.", userMention, guildName))

	if err := u.discordClient.ArchiveThread(pairing.SourceThread.ID); err != nil {
		log.Printf("⚠️ Failed to archive thread %s: %v", pairing.SourceThread.ID, err)
	}

	u.botLog.Log(ctx, server.ID, "❌ %s's application to %s was declined by <@%s>",
		pairing.Applicant.DisplayName, guildName, req.CallerDiscordUserID)

	log.Printf("📋 Completed successfully - declined application %s", application.ID)
	return &DeclineResult{Reply: "Application declined."}, nil
}

// ProcessConfirmationEvent routes a component interaction to its pending
// confirmation prompt, if any.
func (u *RecruitingUseCase) ProcessConfirmationEvent(
	ctx context.Context,
	event models.DiscordConfirmationEvent,
) error {
	token, confirmed, ok := parseConfirmCustomID(event.CustomID)
	if !ok {
		return nil
	}
	if !u.confirmations.deliver(token, event.UserID, confirmed) {
		log.Printf("⚠️ Confirmation answer for expired or foreign prompt: %s", event.CustomID)
	}
	return nil
}
