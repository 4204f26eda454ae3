package recruiting

import (
	"context"
	"fmt"
	"log"
	"slices"
	"strings"
	"time"

	"guildbot/clients"
	"guildbot/models"
)

const (
	// Shown as the embed body when the source message carries attachments
	// but no text.
	emptyContentPlaceholder = "Linking files..."

	editScanLimit   = 20
	deleteScanLimit = 50

	reactionForwarded = "✅"
	reactionEdited    = "✏️"
	reactionFailed    = "❌"
)

// FindForwardedMessage locates the forwarded copy of a source message inside
// a slice of recent messages. The correlation convention is the entire
// mechanism: the copy is a bot-authored message with exactly one embed whose
// footer text equals the source message's ID. Returns nil when no message
// matches, which callers treat as a correlation miss.
func FindForwardedMessage(
	messages []*clients.DiscordMessage,
	botUserID, originalMessageID string,
) *clients.DiscordMessage {
	for _, msg := range messages {
		if msg.AuthorID != botUserID || !msg.AuthorIsBot {
			continue
		}
		if len(msg.Embeds) != 1 {
			continue
		}
		if msg.Embeds[0].FooterText == originalMessageID {
			return msg
		}
	}
	return nil
}

// ProcessMessageCreated relays a freshly created thread message into the
// paired counterpart thread. Messages outside recognized threads, bot
// messages and recruiter messages that do not mention the bot are dropped.
func (u *RecruitingUseCase) ProcessMessageCreated(ctx context.Context, event models.DiscordMessageEvent) error {
	if event.AuthorIsBot {
		return nil
	}

	log.Printf("📨 Processing message %s in channel %s", event.MessageID, event.ChannelID)

	maybeServer, err := u.resolveActiveServer(ctx, event.ServerID)
	if err != nil {
		return err
	}
	if !maybeServer.IsPresent() {
		return nil
	}
	server := maybeServer.MustGet()

	maybePairing, err := u.ResolveThreadPairing(ctx, server, event.ChannelID)
	if err != nil {
		return fmt.Errorf("failed to resolve pairing for message %s: %w", event.MessageID, err)
	}
	if !maybePairing.IsPresent() {
		return nil
	}
	pairing := maybePairing.MustGet()

	botUser, err := u.discordClient.GetBotUser()
	if err != nil {
		return fmt.Errorf("failed to get bot user: %w", err)
	}

	if !slices.Contains(event.Mentions, botUser.ID) {
		if pairing.SourceChannel.Purpose == models.ChannelPurposeApplicant {
			nudge := fmt.Sprintf(
				"Your message was not passed along. Mention <@%s> in it if you want it forwarded.", botUser.ID)
			if _, err := u.discordClient.SendMessage(event.ChannelID, nudge); err != nil {
				log.Printf("⚠️ Failed to send mention nudge in thread %s: %v", event.ChannelID, err)
			}
		}
		return nil
	}

	if pairing.TargetChannel.Purpose == models.ChannelPurposeRecruitment && pairing.TargetThread.Archived {
		u.repingManagement(ctx, server, pairing)
	}

	if err := u.forwardMessage(botUser.ID, event, pairing.TargetThread.ID); err != nil {
		log.Printf("❌ Failed to forward message %s: %v", event.MessageID, err)
		u.reportRelayFailure(event.ChannelID, event.MessageID)
		return nil
	}

	u.react(event.ChannelID, event.MessageID, reactionForwarded)
	log.Printf("📨 Forwarded message %s into thread %s", event.MessageID, pairing.TargetThread.ID)
	return nil
}

// ProcessMessageUpdated locates the forwarded copy of an edited message and
// rewrites its embed body. A correlation miss degrades to forwarding the
// edited message as if it were new.
func (u *RecruitingUseCase) ProcessMessageUpdated(ctx context.Context, event models.DiscordMessageEvent) error {
	if event.AuthorIsBot {
		return nil
	}

	log.Printf("📨 Processing edit of message %s in channel %s", event.MessageID, event.ChannelID)

	maybeServer, err := u.resolveActiveServer(ctx, event.ServerID)
	if err != nil {
		return err
	}
	if !maybeServer.IsPresent() {
		return nil
	}
	server := maybeServer.MustGet()

	maybePairing, err := u.ResolveThreadPairing(ctx, server, event.ChannelID)
	if err != nil {
		return fmt.Errorf("failed to resolve pairing for edit of %s: %w", event.MessageID, err)
	}
	if !maybePairing.IsPresent() {
		return nil
	}
	pairing := maybePairing.MustGet()

	botUser, err := u.discordClient.GetBotUser()
	if err != nil {
		return fmt.Errorf("failed to get bot user: %w", err)
	}

	forwarded, err := u.findForwarded(pairing.TargetThread.ID, botUser.ID, event.MessageID, editScanLimit)
	if err != nil {
		return err
	}
	if forwarded == nil {
		log.Printf("⚠️ No forwarded copy of %s within scan window, forwarding as new", event.MessageID)
		return u.ProcessMessageCreated(ctx, event)
	}

	embed := forwarded.Embeds[0]
	embed.Description = embedDescription(event.Content, botUser.ID)
	if err := u.discordClient.EditMessageEmbed(pairing.TargetThread.ID, forwarded.ID, embed); err != nil {
		log.Printf("❌ Failed to edit forwarded copy of %s: %v", event.MessageID, err)
		u.reportRelayFailure(event.ChannelID, event.MessageID)
		return nil
	}

	if err := u.discordClient.RemoveAllReactions(event.ChannelID, event.MessageID); err != nil {
		log.Printf("⚠️ Failed to clear reactions on %s: %v", event.MessageID, err)
	}
	u.react(event.ChannelID, event.MessageID, reactionEdited)
	log.Printf("📨 Propagated edit of message %s", event.MessageID)
	return nil
}

// ProcessMessageDeleted mirrors a deletion onto the forwarded copy. Only
// recruitment-side deletions propagate; applicant-side deletes are left
// alone. A correlation miss posts a manual-cleanup notice instead.
func (u *RecruitingUseCase) ProcessMessageDeleted(ctx context.Context, event models.DiscordMessageDeleteEvent) error {
	log.Printf("📨 Processing delete of message %s in channel %s", event.MessageID, event.ChannelID)

	maybeServer, err := u.resolveActiveServer(ctx, event.ServerID)
	if err != nil {
		return err
	}
	if !maybeServer.IsPresent() {
		return nil
	}
	server := maybeServer.MustGet()

	maybePairing, err := u.ResolveThreadPairing(ctx, server, event.ChannelID)
	if err != nil {
		return fmt.Errorf("failed to resolve pairing for delete of %s: %w", event.MessageID, err)
	}
	if !maybePairing.IsPresent() {
		return nil
	}
	pairing := maybePairing.MustGet()

	if pairing.SourceChannel.Purpose != models.ChannelPurposeRecruitment {
		return nil
	}

	botUser, err := u.discordClient.GetBotUser()
	if err != nil {
		return fmt.Errorf("failed to get bot user: %w", err)
	}

	forwarded, err := u.findForwarded(pairing.TargetThread.ID, botUser.ID, event.MessageID, deleteScanLimit)
	if err != nil {
		return err
	}
	if forwarded == nil {
		log.Printf("⚠️ No forwarded copy of deleted message %s within scan window", event.MessageID)
		notice := fmt.Sprintf(
			"The forwarded copy of the deleted message could not be found in <#%s>. Please remove it manually.",
			pairing.TargetThread.ID)
		if _, err := u.discordClient.SendMessage(event.ChannelID, notice); err != nil {
			log.Printf("⚠️ Failed to post manual-cleanup notice: %v", err)
		}
		return nil
	}

	if err := u.discordClient.DeleteMessage(pairing.TargetThread.ID, forwarded.ID); err != nil {
		return fmt.Errorf("failed to delete forwarded copy of %s: %w", event.MessageID, err)
	}

	log.Printf("📨 Propagated delete of message %s", event.MessageID)
	return nil
}

func (u *RecruitingUseCase) findForwarded(
	targetThreadID, botUserID, originalMessageID string,
	scanLimit int,
) (*clients.DiscordMessage, error) {
	recent, err := u.discordClient.GetRecentMessages(targetThreadID, scanLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent messages from %s: %w", targetThreadID, err)
	}
	return FindForwardedMessage(recent, botUserID, originalMessageID), nil
}

// forwardMessage sends the embed copy and, when the source carried
// attachments, a second plain message listing their URLs. Stickers are not
// supported and never reach this path.
func (u *RecruitingUseCase) forwardMessage(
	botUserID string,
	event models.DiscordMessageEvent,
	targetThreadID string,
) error {
	embed := clients.DiscordEmbed{
		AuthorName:    event.AuthorDisplayName,
		AuthorIconURL: event.AuthorAvatarURL,
		Description:   embedDescription(event.Content, botUserID),
		FooterText:    event.MessageID,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}
	if _, err := u.discordClient.SendEmbed(targetThreadID, embed); err != nil {
		return fmt.Errorf("failed to send embed: %w", err)
	}

	if len(event.AttachmentURLs) > 0 {
		if _, err := u.discordClient.SendMessage(targetThreadID, strings.Join(event.AttachmentURLs, "\n")); err != nil {
			return fmt.Errorf("failed to send attachments: %w", err)
		}
	}
	return nil
}

// embedDescription strips the bot mention from the source text and falls
// back to the attachment placeholder when nothing remains.
func embedDescription(content, botUserID string) string {
	cleaned := strings.ReplaceAll(content, "<@"+botUserID+">", "")
	cleaned = strings.ReplaceAll(cleaned, "<@!"+botUserID+">", "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return emptyContentPlaceholder
	}
	return cleaned
}

// repingManagement resurfaces an archived recruitment thread by pinging the
// guild's management role before the relay lands.
func (u *RecruitingUseCase) repingManagement(ctx context.Context, server *models.Server, pairing *ThreadPairing) {
	maybeRole, err := u.rolesService.GetGuildRole(
		ctx, server.ID, pairing.Guild.ID, models.UserRoleGuildManagement)
	if err != nil || !maybeRole.IsPresent() {
		log.Printf("⚠️ No management role to re-ping for guild %s", pairing.Guild.ID)
		return
	}

	ping := fmt.Sprintf("<@&%s> this thread has new activity.", maybeRole.MustGet().DiscordRoleID)
	if _, err := u.discordClient.SendMessage(pairing.TargetThread.ID, ping); err != nil {
		log.Printf("⚠️ Failed to re-ping management in thread %s: %v", pairing.TargetThread.ID, err)
	}
}

func (u *RecruitingUseCase) reportRelayFailure(sourceChannelID, sourceMessageID string) {
	u.react(sourceChannelID, sourceMessageID, reactionFailed)
	fallback := "Your message could not be forwarded. Please copy it over manually or try again."
	if _, err := u.discordClient.SendMessage(sourceChannelID, fallback); err != nil {
		log.Printf("⚠️ Failed to post relay fallback in %s: %v", sourceChannelID, err)
	}
}

func (u *RecruitingUseCase) react(channelID, messageID, emoji string) {
	if err := u.discordClient.AddReaction(channelID, messageID, emoji); err != nil {
		log.Printf("⚠️ Failed to add %s reaction to %s: %v", emoji, messageID, err)
	}
}
