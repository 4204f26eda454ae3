package models

// Gateway events mapped from the Discord SDK before they reach the
// usecases. Handlers own the SDK types; everything below is transport
// independent.

type DiscordMessageEvent struct {
	ServerID          string   `json:"server_id"`
	ChannelID         string   `json:"channel_id"`
	MessageID         string   `json:"message_id"`
	UserID            string   `json:"user_id"`
	AuthorDisplayName string   `json:"author_display_name"`
	AuthorAvatarURL   string   `json:"author_avatar_url"`
	AuthorIsBot       bool     `json:"author_is_bot"`
	Content           string   `json:"content"`
	Mentions          []string `json:"mentions"`
	AttachmentURLs    []string `json:"attachment_urls"`
}

type DiscordMessageDeleteEvent struct {
	ServerID  string `json:"server_id"`
	ChannelID string `json:"channel_id"`
	MessageID string `json:"message_id"`
}

type DiscordMemberEvent struct {
	ServerID    string   `json:"server_id"`
	UserID      string   `json:"user_id"`
	DisplayName string   `json:"display_name"`
	RoleIDs     []string `json:"role_ids"`
}

// DiscordConfirmationEvent is a component interaction on one of the
// bot's Yes/No confirmation prompts.
type DiscordConfirmationEvent struct {
	ServerID  string `json:"server_id"`
	ChannelID string `json:"channel_id"`
	MessageID string `json:"message_id"`
	UserID    string `json:"user_id"`
	CustomID  string `json:"custom_id"`
}
