package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"guildbot/clients"
	"guildbot/core"
)

// DiscordClient implements the clients.DiscordClient interface on top
// of a shared discordgo session.
type DiscordClient struct {
	session *discordgo.Session
}

func NewDiscordClient(session *discordgo.Session) clients.DiscordClient {
	return &DiscordClient{session: session}
}

func (c *DiscordClient) GetBotUser() (*clients.DiscordUser, error) {
	if c.session.State != nil && c.session.State.User != nil {
		return mapUser(c.session.State.User), nil
	}

	user, err := c.session.User("@me")
	if err != nil {
		return nil, fmt.Errorf("failed to get bot user: %w", err)
	}
	return mapUser(user), nil
}

func (c *DiscordClient) GetServerOwnerID(discordServerID string) (string, error) {
	guild, err := c.session.Guild(discordServerID)
	if err != nil {
		return "", fmt.Errorf("failed to get server: %w", err)
	}
	return guild.OwnerID, nil
}

func (c *DiscordClient) GetMember(discordServerID, discordUserID string) (*clients.DiscordMember, error) {
	member, err := c.session.GuildMember(discordServerID, discordUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	// The administrator bit lives on the member's roles, not on the
	// member itself.
	roles, err := c.session.GuildRoles(discordServerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get server roles: %w", err)
	}
	administrator := false
	for _, role := range roles {
		if role.Permissions&discordgo.PermissionAdministrator == 0 {
			continue
		}
		for _, held := range member.Roles {
			if held == role.ID {
				administrator = true
				break
			}
		}
	}

	displayName := member.Nick
	if displayName == "" {
		displayName = member.User.GlobalName
	}
	if displayName == "" {
		displayName = member.User.Username
	}

	return &clients.DiscordMember{
		UserID:        member.User.ID,
		DisplayName:   displayName,
		RoleIDs:       member.Roles,
		Administrator: administrator,
	}, nil
}

func (c *DiscordClient) ListPrivateThreads(discordChannelID string) ([]*clients.DiscordThread, error) {
	var threads []*clients.DiscordThread

	active, err := c.session.ThreadsActive(discordChannelID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active threads: %w", err)
	}
	for _, thread := range active.Threads {
		if thread.Type == discordgo.ChannelTypeGuildPrivateThread {
			threads = append(threads, mapThread(thread))
		}
	}

	archived, err := c.session.ThreadsPrivateArchived(discordChannelID, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list archived threads: %w", err)
	}
	for _, thread := range archived.Threads {
		if thread.Type == discordgo.ChannelTypeGuildPrivateThread {
			threads = append(threads, mapThread(thread))
		}
	}

	return threads, nil
}

func (c *DiscordClient) CreatePrivateThread(
	discordChannelID, name string,
	autoArchiveMinutes int,
) (*clients.DiscordThread, error) {
	thread, err := c.session.ThreadStartComplex(discordChannelID, &discordgo.ThreadStart{
		Name:                name,
		AutoArchiveDuration: autoArchiveMinutes,
		Type:                discordgo.ChannelTypeGuildPrivateThread,
		Invitable:           false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create private thread: %w", err)
	}
	return mapThread(thread), nil
}

func (c *DiscordClient) GetThread(discordThreadID string) (*clients.DiscordThread, error) {
	channel, err := c.session.Channel(discordThreadID)
	if err != nil {
		return nil, fmt.Errorf("failed to get thread: %w", err)
	}
	return mapThread(channel), nil
}

func (c *DiscordClient) ArchiveThread(discordThreadID string) error {
	archived := true
	_, err := c.session.ChannelEditComplex(discordThreadID, &discordgo.ChannelEdit{
		Archived: &archived,
	})
	if err != nil {
		return fmt.Errorf("failed to archive thread: %w", err)
	}
	return nil
}

func (c *DiscordClient) SendMessage(discordChannelID, content string) (*clients.DiscordMessage, error) {
	message, err := c.session.ChannelMessageSend(discordChannelID, content)
	if err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}
	return mapMessage(message), nil
}

func (c *DiscordClient) SendMessageWithButtons(
	discordChannelID, content string,
	buttons []clients.DiscordButton,
) (*clients.DiscordMessage, error) {
	components := make([]discordgo.MessageComponent, len(buttons))
	for i, button := range buttons {
		components[i] = discordgo.Button{
			CustomID: button.CustomID,
			Label:    button.Label,
			Style:    mapButtonStyle(button.Style),
		}
	}

	message, err := c.session.ChannelMessageSendComplex(discordChannelID, &discordgo.MessageSend{
		Content: content,
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: components},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to send message with buttons: %w", err)
	}
	return mapMessage(message), nil
}

func (c *DiscordClient) SendEmbed(
	discordChannelID string,
	embed clients.DiscordEmbed,
) (*clients.DiscordMessage, error) {
	message, err := c.session.ChannelMessageSendEmbed(discordChannelID, mapEmbedOut(embed))
	if err != nil {
		return nil, fmt.Errorf("failed to send embed: %w", err)
	}
	return mapMessage(message), nil
}

func (c *DiscordClient) EditMessageEmbed(
	discordChannelID, discordMessageID string,
	embed clients.DiscordEmbed,
) error {
	_, err := c.session.ChannelMessageEditEmbed(discordChannelID, discordMessageID, mapEmbedOut(embed))
	if err != nil {
		return fmt.Errorf("failed to edit message embed: %w", err)
	}
	return nil
}

func (c *DiscordClient) UpdateMessageDropButtons(
	discordChannelID, discordMessageID, content string,
) error {
	emptyComponents := []discordgo.MessageComponent{}
	_, err := c.session.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    discordChannelID,
		ID:         discordMessageID,
		Content:    &content,
		Components: &emptyComponents,
	})
	if err != nil {
		return fmt.Errorf("failed to update message: %w", err)
	}
	return nil
}

func (c *DiscordClient) DeleteMessage(discordChannelID, discordMessageID string) error {
	if err := c.session.ChannelMessageDelete(discordChannelID, discordMessageID); err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	return nil
}

func (c *DiscordClient) GetRecentMessages(
	discordChannelID string,
	limit int,
) ([]*clients.DiscordMessage, error) {
	rawMessages, err := c.session.ChannelMessages(discordChannelID, limit, "", "", "")
	if err != nil {
		return nil, fmt.Errorf("failed to get recent messages: %w", err)
	}

	messages := make([]*clients.DiscordMessage, len(rawMessages))
	for i, message := range rawMessages {
		messages[i] = mapMessage(message)
	}
	return messages, nil
}

func (c *DiscordClient) AddReaction(discordChannelID, discordMessageID, emoji string) error {
	if err := c.session.MessageReactionAdd(discordChannelID, discordMessageID, emoji); err != nil {
		return fmt.Errorf("failed to add reaction: %w", err)
	}
	return nil
}

func (c *DiscordClient) RemoveAllReactions(discordChannelID, discordMessageID string) error {
	if err := c.session.MessageReactionsRemoveAll(discordChannelID, discordMessageID); err != nil {
		return fmt.Errorf("failed to remove reactions: %w", err)
	}
	return nil
}

func (c *DiscordClient) AddMemberRole(discordServerID, discordUserID, discordRoleID string) error {
	if err := c.session.GuildMemberRoleAdd(discordServerID, discordUserID, discordRoleID); err != nil {
		return wrapRoleMutationError("failed to add member role", err)
	}
	return nil
}

func (c *DiscordClient) RemoveMemberRole(discordServerID, discordUserID, discordRoleID string) error {
	if err := c.session.GuildMemberRoleRemove(discordServerID, discordUserID, discordRoleID); err != nil {
		return wrapRoleMutationError("failed to remove member role", err)
	}
	return nil
}

// wrapRoleMutationError tags Discord's "Missing Permissions" rejection
// as a delivery failure so callers can attach the role-hierarchy
// remediation hint.
func wrapRoleMutationError(prefix string, err error) error {
	if restErr, ok := err.(*discordgo.RESTError); ok && restErr.Message != nil {
		if restErr.Message.Code == discordgo.ErrCodeMissingPermissions {
			return fmt.Errorf("%s: %v: %w", prefix, err, core.ErrDeliveryFailure)
		}
	}
	return fmt.Errorf("%s: %w", prefix, err)
}

func mapUser(user *discordgo.User) *clients.DiscordUser {
	displayName := user.GlobalName
	if displayName == "" {
		displayName = user.Username
	}
	return &clients.DiscordUser{
		ID:          user.ID,
		Username:    user.Username,
		DisplayName: displayName,
		AvatarURL:   user.AvatarURL(""),
		Bot:         user.Bot,
	}
}

func mapThread(channel *discordgo.Channel) *clients.DiscordThread {
	archived := false
	if channel.ThreadMetadata != nil {
		archived = channel.ThreadMetadata.Archived
	}
	return &clients.DiscordThread{
		ID:       channel.ID,
		ParentID: channel.ParentID,
		Name:     channel.Name,
		Archived: archived,
		Private:  channel.Type == discordgo.ChannelTypeGuildPrivateThread,
	}
}

func mapMessage(message *discordgo.Message) *clients.DiscordMessage {
	embeds := make([]clients.DiscordEmbed, len(message.Embeds))
	for i, embed := range message.Embeds {
		mapped := clients.DiscordEmbed{
			Description: embed.Description,
			Timestamp:   embed.Timestamp,
		}
		if embed.Author != nil {
			mapped.AuthorName = embed.Author.Name
			mapped.AuthorIconURL = embed.Author.IconURL
		}
		if embed.Footer != nil {
			mapped.FooterText = embed.Footer.Text
		}
		embeds[i] = mapped
	}

	authorID := ""
	authorIsBot := false
	if message.Author != nil {
		authorID = message.Author.ID
		authorIsBot = message.Author.Bot
	}

	return &clients.DiscordMessage{
		ID:          message.ID,
		ChannelID:   message.ChannelID,
		AuthorID:    authorID,
		AuthorIsBot: authorIsBot,
		Content:     message.Content,
		Embeds:      embeds,
	}
}

func mapEmbedOut(embed clients.DiscordEmbed) *discordgo.MessageEmbed {
	out := &discordgo.MessageEmbed{
		Description: embed.Description,
		Timestamp:   embed.Timestamp,
	}
	if embed.AuthorName != "" {
		out.Author = &discordgo.MessageEmbedAuthor{
			Name:    embed.AuthorName,
			IconURL: embed.AuthorIconURL,
		}
	}
	if embed.FooterText != "" {
		out.Footer = &discordgo.MessageEmbedFooter{Text: embed.FooterText}
	}
	return out
}

func mapButtonStyle(style clients.DiscordButtonStyle) discordgo.ButtonStyle {
	if style == clients.DiscordButtonSecondary {
		return discordgo.SecondaryButton
	}
	return discordgo.PrimaryButton
}
