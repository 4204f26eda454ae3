package handlers

import (
	"context"
	"log"

	"github.com/bwmarrin/discordgo"

	"guildbot/models"
	"guildbot/usecases/recruiting"
	"guildbot/usecases/sharedroles"
)

// DiscordEventsHandler wires gateway events into the usecases. Every handler
// recovers and logs at the top level so one failing event never stops the
// event loop.
type DiscordEventsHandler struct {
	session            *discordgo.Session
	recruitingUseCase  *recruiting.RecruitingUseCase
	sharedRolesUseCase *sharedroles.SharedRolesUseCase
}

func NewDiscordEventsHandler(
	session *discordgo.Session,
	recruitingUseCase *recruiting.RecruitingUseCase,
	sharedRolesUseCase *sharedroles.SharedRolesUseCase,
) *DiscordEventsHandler {
	handler := &DiscordEventsHandler{
		session:            session,
		recruitingUseCase:  recruitingUseCase,
		sharedRolesUseCase: sharedRolesUseCase,
	}

	session.AddHandler(handler.handleMessageCreated)
	session.AddHandler(handler.handleMessageUpdated)
	session.AddHandler(handler.handleMessageDeleted)
	session.AddHandler(handler.handleMemberUpdated)
	session.AddHandler(handler.handleMemberAdded)
	session.AddHandler(handler.handleInteraction)

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMembers |
		discordgo.IntentMessageContent

	return handler
}

// StartBot opens the Discord connection and starts listening for events
func (h *DiscordEventsHandler) StartBot() error {
	if err := h.session.Open(); err != nil {
		return err
	}
	log.Printf("🤖 Discord bot is now running and listening for events")
	return nil
}

// StopBot gracefully closes the Discord connection
func (h *DiscordEventsHandler) StopBot() {
	h.session.Close()
}

func guardPanics(name string) {
	if r := recover(); r != nil {
		log.Printf("❌ Panic in %s handler: %v", name, r)
	}
}

func (h *DiscordEventsHandler) handleMessageCreated(s *discordgo.Session, m *discordgo.MessageCreate) {
	defer guardPanics("message-created")

	if m.GuildID == "" || m.Author == nil {
		return
	}

	event := mapMessageEvent(m.Message)
	if err := h.recruitingUseCase.ProcessMessageCreated(context.Background(), event); err != nil {
		log.Printf("❌ Failed to process message %s: %v", m.ID, err)
	}
}

func (h *DiscordEventsHandler) handleMessageUpdated(s *discordgo.Session, m *discordgo.MessageUpdate) {
	defer guardPanics("message-updated")

	// Partial updates (embed unfurls etc.) arrive without an author.
	if m.GuildID == "" || m.Author == nil {
		return
	}

	event := mapMessageEvent(m.Message)
	if err := h.recruitingUseCase.ProcessMessageUpdated(context.Background(), event); err != nil {
		log.Printf("❌ Failed to process edit of message %s: %v", m.ID, err)
	}
}

func (h *DiscordEventsHandler) handleMessageDeleted(s *discordgo.Session, m *discordgo.MessageDelete) {
	defer guardPanics("message-deleted")

	if m.GuildID == "" {
		return
	}

	event := models.DiscordMessageDeleteEvent{
		ServerID:  m.GuildID,
		ChannelID: m.ChannelID,
		MessageID: m.ID,
	}
	if err := h.recruitingUseCase.ProcessMessageDeleted(context.Background(), event); err != nil {
		log.Printf("❌ Failed to process delete of message %s: %v", m.ID, err)
	}
}

func (h *DiscordEventsHandler) handleMemberUpdated(s *discordgo.Session, m *discordgo.GuildMemberUpdate) {
	defer guardPanics("member-updated")

	if m.Member == nil || m.User == nil {
		return
	}
	// Member updates fire for nickname and presence changes too; only a
	// changed role set warrants reconciliation.
	if m.BeforeUpdate != nil && !roleSetChanged(m.BeforeUpdate.Roles, m.Roles) {
		return
	}

	event := models.DiscordMemberEvent{
		ServerID:    m.GuildID,
		UserID:      m.User.ID,
		DisplayName: memberDisplayName(m.Member),
		RoleIDs:     m.Roles,
	}
	if err := h.sharedRolesUseCase.ReconcileMemberRoles(context.Background(), event); err != nil {
		log.Printf("❌ Failed to reconcile roles for user %s: %v", m.User.ID, err)
	}
}

// roleSetChanged compares two role ID lists as sets, ignoring order.
func roleSetChanged(before, after []string) bool {
	if len(before) != len(after) {
		return true
	}
	seen := make(map[string]struct{}, len(before))
	for _, id := range before {
		seen[id] = struct{}{}
	}
	for _, id := range after {
		if _, ok := seen[id]; !ok {
			return true
		}
	}
	return false
}

func (h *DiscordEventsHandler) handleMemberAdded(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	defer guardPanics("member-added")

	if m.Member == nil || m.User == nil {
		return
	}

	event := models.DiscordMemberEvent{
		ServerID:    m.GuildID,
		UserID:      m.User.ID,
		DisplayName: memberDisplayName(m.Member),
		RoleIDs:     m.Roles,
	}
	if err := h.recruitingUseCase.ProcessMemberAdded(context.Background(), event); err != nil {
		log.Printf("❌ Failed to welcome user %s: %v", m.User.ID, err)
	}
}

func (h *DiscordEventsHandler) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	defer guardPanics("interaction")

	if i.Type != discordgo.InteractionMessageComponent || i.Member == nil || i.Member.User == nil {
		return
	}

	if guildID, ok := recruiting.ParseApplyButtonCustomID(i.MessageComponentData().CustomID); ok {
		h.handleApplyButton(s, i, guildID)
		return
	}

	// Acknowledge immediately; the confirmation waiter owns the follow-up.
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	}); err != nil {
		log.Printf("⚠️ Failed to acknowledge interaction %s: %v", i.ID, err)
	}

	event := models.DiscordConfirmationEvent{
		ServerID:  i.GuildID,
		ChannelID: i.ChannelID,
		MessageID: i.Message.ID,
		UserID:    i.Member.User.ID,
		CustomID:  i.MessageComponentData().CustomID,
	}
	if err := h.recruitingUseCase.ProcessConfirmationEvent(context.Background(), event); err != nil {
		log.Printf("❌ Failed to process confirmation %s: %v", event.CustomID, err)
	}
}

// handleApplyButton runs the apply flow for a clicked apply button. The
// reply only concerns the clicking user, so it goes out as an ephemeral
// follow-up.
func (h *DiscordEventsHandler) handleApplyButton(s *discordgo.Session, i *discordgo.InteractionCreate, guildID string) {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
	}); err != nil {
		log.Printf("⚠️ Failed to acknowledge apply button %s: %v", i.ID, err)
	}

	result, err := h.recruitingUseCase.Apply(context.Background(), recruiting.ApplyRequest{
		DiscordServerID: i.GuildID,
		DiscordUserID:   i.Member.User.ID,
		DisplayName:     memberDisplayName(i.Member),
		GuildID:         guildID,
	})

	reply := "There was an issue applying. Try again later."
	if err != nil {
		log.Printf("❌ Failed to process apply button for user %s: %v", i.Member.User.ID, err)
	} else {
		reply = result.Reply
	}

	if _, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: reply,
		Flags:   discordgo.MessageFlagsEphemeral,
	}); err != nil {
		log.Printf("⚠️ Failed to deliver apply reply to user %s: %v", i.Member.User.ID, err)
	}
}

func mapMessageEvent(m *discordgo.Message) models.DiscordMessageEvent {
	mentions := make([]string, 0, len(m.Mentions))
	for _, u := range m.Mentions {
		mentions = append(mentions, u.ID)
	}
	attachments := make([]string, 0, len(m.Attachments))
	for _, a := range m.Attachments {
		attachments = append(attachments, a.URL)
	}

	displayName := m.Author.Username
	avatarURL := m.Author.AvatarURL("")
	if m.Member != nil && m.Member.Nick != "" {
		displayName = m.Member.Nick
	}

	return models.DiscordMessageEvent{
		ServerID:          m.GuildID,
		ChannelID:         m.ChannelID,
		MessageID:         m.ID,
		UserID:            m.Author.ID,
		AuthorDisplayName: displayName,
		AuthorAvatarURL:   avatarURL,
		AuthorIsBot:       m.Author.Bot,
		Content:           m.Content,
		Mentions:          mentions,
		AttachmentURLs:    attachments,
	}
}

func memberDisplayName(m *discordgo.Member) string {
	if m.Nick != "" {
		return m.Nick
	}
	if m.User != nil {
		return m.User.Username
	}
	return ""
}
