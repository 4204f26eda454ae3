package clients

// DTOs for the Discord delivery layer. Usecases only ever see these
// types; the discordgo session stays behind the DiscordClient
// interface.

type DiscordUser struct {
	ID          string
	Username    string
	DisplayName string
	AvatarURL   string
	Bot         bool
}

type DiscordMember struct {
	UserID        string
	DisplayName   string
	RoleIDs       []string
	Administrator bool
}

type DiscordThread struct {
	ID       string
	ParentID string
	Name     string
	Archived bool
	Private  bool
}

type DiscordEmbed struct {
	AuthorName    string
	AuthorIconURL string
	Description   string
	FooterText    string
	Timestamp     string
}

type DiscordMessage struct {
	ID          string
	ChannelID   string
	AuthorID    string
	AuthorIsBot bool
	Content     string
	Embeds      []DiscordEmbed
}

type DiscordButtonStyle int

const (
	DiscordButtonPrimary DiscordButtonStyle = iota + 1
	DiscordButtonSecondary
)

type DiscordButton struct {
	CustomID string
	Label    string
	Style    DiscordButtonStyle
}

// DiscordClient defines the delivery operations the recruitment
// workflow consumes: thread discovery/creation, message send/edit/
// delete, reactions, recent-message scans and member role mutations.
type DiscordClient interface {
	// Bot identity
	GetBotUser() (*DiscordUser, error)

	// Server and member lookups
	GetServerOwnerID(discordServerID string) (string, error)
	GetMember(discordServerID, discordUserID string) (*DiscordMember, error)

	// Thread operations
	ListPrivateThreads(discordChannelID string) ([]*DiscordThread, error)
	CreatePrivateThread(discordChannelID, name string, autoArchiveMinutes int) (*DiscordThread, error)
	GetThread(discordThreadID string) (*DiscordThread, error)
	ArchiveThread(discordThreadID string) error

	// Message operations
	SendMessage(discordChannelID, content string) (*DiscordMessage, error)
	SendMessageWithButtons(discordChannelID, content string, buttons []DiscordButton) (*DiscordMessage, error)
	SendEmbed(discordChannelID string, embed DiscordEmbed) (*DiscordMessage, error)
	EditMessageEmbed(discordChannelID, discordMessageID string, embed DiscordEmbed) error
	UpdateMessageDropButtons(discordChannelID, discordMessageID, content string) error
	DeleteMessage(discordChannelID, discordMessageID string) error
	GetRecentMessages(discordChannelID string, limit int) ([]*DiscordMessage, error)

	// Reaction operations
	AddReaction(discordChannelID, discordMessageID, emoji string) error
	RemoveAllReactions(discordChannelID, discordMessageID string) error

	// Role operations
	AddMemberRole(discordServerID, discordUserID, discordRoleID string) error
	RemoveMemberRole(discordServerID, discordUserID, discordRoleID string) error
}
