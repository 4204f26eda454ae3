package discord

import (
	"github.com/stretchr/testify/mock"

	"guildbot/clients"
)

// MockDiscordClient implements the clients.DiscordClient interface for testing
type MockDiscordClient struct {
	mock.Mock
}

func (m *MockDiscordClient) GetBotUser() (*clients.DiscordUser, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.DiscordUser), args.Error(1)
}

func (m *MockDiscordClient) GetServerOwnerID(discordServerID string) (string, error) {
	args := m.Called(discordServerID)
	return args.String(0), args.Error(1)
}

func (m *MockDiscordClient) GetMember(discordServerID, discordUserID string) (*clients.DiscordMember, error) {
	args := m.Called(discordServerID, discordUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.DiscordMember), args.Error(1)
}

func (m *MockDiscordClient) ListPrivateThreads(discordChannelID string) ([]*clients.DiscordThread, error) {
	args := m.Called(discordChannelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*clients.DiscordThread), args.Error(1)
}

func (m *MockDiscordClient) CreatePrivateThread(
	discordChannelID, name string,
	autoArchiveMinutes int,
) (*clients.DiscordThread, error) {
	args := m.Called(discordChannelID, name, autoArchiveMinutes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.DiscordThread), args.Error(1)
}

func (m *MockDiscordClient) GetThread(discordThreadID string) (*clients.DiscordThread, error) {
	args := m.Called(discordThreadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.DiscordThread), args.Error(1)
}

func (m *MockDiscordClient) ArchiveThread(discordThreadID string) error {
	args := m.Called(discordThreadID)
	return args.Error(0)
}

func (m *MockDiscordClient) SendMessage(discordChannelID, content string) (*clients.DiscordMessage, error) {
	args := m.Called(discordChannelID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.DiscordMessage), args.Error(1)
}

func (m *MockDiscordClient) SendMessageWithButtons(
	discordChannelID, content string,
	buttons []clients.DiscordButton,
) (*clients.DiscordMessage, error) {
	args := m.Called(discordChannelID, content, buttons)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.DiscordMessage), args.Error(1)
}

func (m *MockDiscordClient) SendEmbed(
	discordChannelID string,
	embed clients.DiscordEmbed,
) (*clients.DiscordMessage, error) {
	args := m.Called(discordChannelID, embed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.DiscordMessage), args.Error(1)
}

func (m *MockDiscordClient) EditMessageEmbed(
	discordChannelID, discordMessageID string,
	embed clients.DiscordEmbed,
) error {
	args := m.Called(discordChannelID, discordMessageID, embed)
	return args.Error(0)
}

func (m *MockDiscordClient) UpdateMessageDropButtons(
	discordChannelID, discordMessageID, content string,
) error {
	args := m.Called(discordChannelID, discordMessageID, content)
	return args.Error(0)
}

func (m *MockDiscordClient) DeleteMessage(discordChannelID, discordMessageID string) error {
	args := m.Called(discordChannelID, discordMessageID)
	return args.Error(0)
}

func (m *MockDiscordClient) GetRecentMessages(
	discordChannelID string,
	limit int,
) ([]*clients.DiscordMessage, error) {
	args := m.Called(discordChannelID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*clients.DiscordMessage), args.Error(1)
}

func (m *MockDiscordClient) AddReaction(discordChannelID, discordMessageID, emoji string) error {
	args := m.Called(discordChannelID, discordMessageID, emoji)
	return args.Error(0)
}

func (m *MockDiscordClient) RemoveAllReactions(discordChannelID, discordMessageID string) error {
	args := m.Called(discordChannelID, discordMessageID)
	return args.Error(0)
}

func (m *MockDiscordClient) AddMemberRole(discordServerID, discordUserID, discordRoleID string) error {
	args := m.Called(discordServerID, discordUserID, discordRoleID)
	return args.Error(0)
}

func (m *MockDiscordClient) RemoveMemberRole(discordServerID, discordUserID, discordRoleID string) error {
	args := m.Called(discordServerID, discordUserID, discordRoleID)
	return args.Error(0)
}
