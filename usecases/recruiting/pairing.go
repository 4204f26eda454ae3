package recruiting

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/samber/mo"

	"guildbot/clients"
	"guildbot/core"
	"guildbot/models"
)

// ThreadPairing is the resolved context of a recognized recruitment or
// applicant thread: who the thread belongs to, which configured channel it
// hangs under and where its counterpart thread lives.
type ThreadPairing struct {
	Applicant     *models.User
	Application   mo.Option[*models.GuildApplicant]
	Guild         *models.Guild
	SourceChannel *models.ChannelPurpose
	TargetChannel *models.ChannelPurpose
	SourceThread  *clients.DiscordThread
	TargetThread  *clients.DiscordThread
}

// ExtractApplicantID pulls the applicant's Discord user ID out of a thread
// name following the `<displayName>|<discordUserID>` convention. Display
// names may themselves contain pipes, so the ID is the suffix after the
// last one.
func ExtractApplicantID(threadName string) (string, bool) {
	idx := strings.LastIndex(threadName, "|")
	if idx < 0 {
		return "", false
	}
	id := threadName[idx+1:]
	if id == "" {
		return "", false
	}
	return id, true
}

// ApplicantThreadName builds the canonical thread name for a user. Pipes are
// stripped from the display name so extraction stays unambiguous.
func ApplicantThreadName(displayName, discordUserID string) string {
	return strings.ReplaceAll(displayName, "|", "") + "|" + discordUserID
}

// ResolveThreadPairing inspects a thread and, when it is a recognized
// recruitment or applicant thread, resolves the full pairing. mo.None means
// the thread carries no workflow meaning and the event should be ignored;
// errors are real faults (missing applicant record, broken configuration).
func (u *RecruitingUseCase) ResolveThreadPairing(
	ctx context.Context,
	server *models.Server,
	discordThreadID string,
) (mo.Option[*ThreadPairing], error) {
	log.Printf("📋 Starting to resolve thread pairing for thread: %s", discordThreadID)

	thread, err := u.discordClient.GetThread(discordThreadID)
	if err != nil {
		return mo.None[*ThreadPairing](), fmt.Errorf("failed to fetch thread: %w", err)
	}
	if thread.ParentID == "" || !thread.Private {
		return mo.None[*ThreadPairing](), nil
	}

	applicantDiscordID, ok := ExtractApplicantID(thread.Name)
	if !ok {
		return mo.None[*ThreadPairing](), nil
	}

	maybeSource, err := u.channelsService.GetThreadChannelByDiscordID(ctx, thread.ParentID)
	if err != nil {
		return mo.None[*ThreadPairing](), fmt.Errorf("failed to resolve source channel: %w", err)
	}
	if !maybeSource.IsPresent() {
		return mo.None[*ThreadPairing](), nil
	}
	sourceChannel := maybeSource.MustGet()
	if sourceChannel.GuildID == nil {
		return mo.None[*ThreadPairing](), fmt.Errorf(
			"channel purpose %s has no guild: %w", sourceChannel.ID, core.ErrNotConfigured)
	}

	maybeGuild, err := u.guildsService.GetGuildByID(ctx, *sourceChannel.GuildID)
	if err != nil {
		return mo.None[*ThreadPairing](), fmt.Errorf("failed to get guild: %w", err)
	}
	if !maybeGuild.IsPresent() {
		return mo.None[*ThreadPairing](), fmt.Errorf(
			"guild %s for channel purpose %s: %w", *sourceChannel.GuildID, sourceChannel.ID, core.ErrNotFound)
	}
	guild := maybeGuild.MustGet()

	maybeUser, err := u.usersService.GetUserByDiscordID(ctx, applicantDiscordID)
	if err != nil {
		return mo.None[*ThreadPairing](), fmt.Errorf("failed to get applicant: %w", err)
	}
	if !maybeUser.IsPresent() {
		return mo.None[*ThreadPairing](), fmt.Errorf(
			"applicant %s for thread %s: %w", applicantDiscordID, discordThreadID, core.ErrNotFound)
	}
	applicant := maybeUser.MustGet()

	application, err := u.applicantsService.GetOpenApplication(ctx, applicant.ID, guild.GameID, server.ID)
	if err != nil {
		return mo.None[*ThreadPairing](), fmt.Errorf("failed to get open application: %w", err)
	}

	maybeTarget, err := u.channelsService.GetChannelPurpose(
		ctx, server.ID, guild.ID, sourceChannel.Purpose.Counterpart())
	if err != nil {
		return mo.None[*ThreadPairing](), fmt.Errorf("failed to resolve target channel: %w", err)
	}
	if !maybeTarget.IsPresent() {
		return mo.None[*ThreadPairing](), fmt.Errorf(
			"%s channel for guild %s: %w", sourceChannel.Purpose.Counterpart(), guild.ID, core.ErrNotConfigured)
	}
	targetChannel := maybeTarget.MustGet()

	targetThread, err := u.getOrCreateUserThread(targetChannel.DiscordChannelID, applicant)
	if err != nil {
		return mo.None[*ThreadPairing](), fmt.Errorf("failed to resolve counterpart thread: %w", err)
	}

	log.Printf("📋 Completed successfully - resolved %s thread pairing for applicant: %s",
		sourceChannel.Purpose, applicant.ID)
	return mo.Some(&ThreadPairing{
		Applicant:     applicant,
		Application:   application,
		Guild:         guild,
		SourceChannel: sourceChannel,
		TargetChannel: targetChannel,
		SourceThread:  thread,
		TargetThread:  targetThread,
	}), nil
}
