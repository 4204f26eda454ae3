package recruiting

import (
	"context"
	"strings"
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"guildbot/clients"
	"guildbot/models"
)

func botMessage(footer string) *clients.DiscordMessage {
	return &clients.DiscordMessage{
		ID:          "fwd-" + footer,
		AuthorID:    testBotUserID,
		AuthorIsBot: true,
		Embeds:      []clients.DiscordEmbed{{FooterText: footer}},
	}
}

func TestFindForwardedMessage(t *testing.T) {
	tests := []struct {
		name     string
		messages []*clients.DiscordMessage
		expectID string
	}{
		{
			name:     "matching forwarded copy",
			messages: []*clients.DiscordMessage{botMessage("msg-1")},
			expectID: "fwd-msg-1",
		},
		{
			name: "human-authored message with matching footer is skipped",
			messages: []*clients.DiscordMessage{
				{ID: "x", AuthorID: "someone", Embeds: []clients.DiscordEmbed{{FooterText: "msg-1"}}},
			},
		},
		{
			name: "bot message with two embeds is skipped",
			messages: []*clients.DiscordMessage{
				{
					ID:          "x",
					AuthorID:    testBotUserID,
					AuthorIsBot: true,
					Embeds:      []clients.DiscordEmbed{{FooterText: "msg-1"}, {FooterText: "msg-1"}},
				},
			},
		},
		{
			name:     "footer mismatch",
			messages: []*clients.DiscordMessage{botMessage("msg-2")},
		},
		{
			name: "first match wins among several",
			messages: []*clients.DiscordMessage{
				botMessage("msg-0"),
				botMessage("msg-1"),
				botMessage("msg-1"),
			},
			expectID: "fwd-msg-1",
		},
		{
			name: "empty history",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found := FindForwardedMessage(tt.messages, testBotUserID, "msg-1")
			if tt.expectID == "" {
				assert.Nil(t, found)
				return
			}
			assert.NotNil(t, found)
			assert.Equal(t, tt.expectID, found.ID)
		})
	}
}

func TestFindForwardedMessageRoundTrip(t *testing.T) {
	history := []*clients.DiscordMessage{botMessage("msg-1")}

	found := FindForwardedMessage(history, testBotUserID, "msg-1")
	assert.NotNil(t, found)
	assert.Equal(t, "msg-1", found.Embeds[0].FooterText)

	// After the forwarded copy is deleted from the target thread, a
	// subsequent scan finds nothing.
	assert.Nil(t, FindForwardedMessage(nil, testBotUserID, "msg-1"))
}

func TestEmbedDescription(t *testing.T) {
	t.Run("mention is stripped", func(t *testing.T) {
		assert.Equal(t, "hello", embedDescription("<@bot-1> hello", testBotUserID))
	})
	t.Run("nickname mention form is stripped", func(t *testing.T) {
		assert.Equal(t, "hello", embedDescription("<@!bot-1> hello", testBotUserID))
	})
	t.Run("empty content falls back to placeholder", func(t *testing.T) {
		assert.Equal(t, emptyContentPlaceholder, embedDescription("<@bot-1>", testBotUserID))
	})
}

// expectPairing wires the mocks for a full pairing resolution starting from
// the given source thread.
func (f *testFixture) expectPairing(
	sourcePurpose models.ChannelPurposeType,
	application mo.Option[*models.GuildApplicant],
	targetArchived bool,
) {
	sourceThreadID, sourceChannelID := testRecruitmentThreadID, testRecruitmentChannelID
	targetThreadID, targetChannelID := testApplicantThreadID, testApplicantChannelID
	if sourcePurpose == models.ChannelPurposeApplicant {
		sourceThreadID, sourceChannelID = testApplicantThreadID, testApplicantChannelID
		targetThreadID, targetChannelID = testRecruitmentThreadID, testRecruitmentChannelID
	}

	f.discordClient.On("GetThread", sourceThreadID).Return(&clients.DiscordThread{
		ID:       sourceThreadID,
		ParentID: sourceChannelID,
		Name:     "Alice|" + testApplicantDiscordID,
		Private:  true,
	}, nil)
	f.channelsService.On("GetThreadChannelByDiscordID", mock.Anything, sourceChannelID).
		Return(mo.Some(channelPurposeFixture(sourcePurpose, sourceChannelID)), nil)
	f.guildsService.On("GetGuildByID", mock.Anything, testPlaceholderGuildID).
		Return(mo.Some(placeholderGuildFixture()), nil)
	f.usersService.On("GetUserByDiscordID", mock.Anything, testApplicantDiscordID).
		Return(mo.Some(applicantUserFixture()), nil)
	f.applicantsService.On("GetOpenApplication", mock.Anything, testApplicantUserID, testGameID, testServerID).
		Return(application, nil)
	f.channelsService.On("GetChannelPurpose", mock.Anything, testServerID, testPlaceholderGuildID,
		sourcePurpose.Counterpart()).
		Return(mo.Some(channelPurposeFixture(sourcePurpose.Counterpart(), targetChannelID)), nil)
	f.discordClient.On("ListPrivateThreads", targetChannelID).Return([]*clients.DiscordThread{
		{
			ID:       targetThreadID,
			ParentID: targetChannelID,
			Name:     "Alice|" + testApplicantDiscordID,
			Archived: targetArchived,
		},
	}, nil)
}

func messageEventFixture(channelID string, mentions []string) models.DiscordMessageEvent {
	return models.DiscordMessageEvent{
		ServerID:          testDiscordServerID,
		ChannelID:         channelID,
		MessageID:         "msg-1",
		UserID:            testCallerDiscordID,
		AuthorDisplayName: "Recruiter",
		Content:           "<@" + testBotUserID + "> welcome aboard",
		Mentions:          mentions,
	}
}

func TestProcessMessageCreated(t *testing.T) {
	noApplication := mo.None[*models.GuildApplicant]()

	t.Run("recruitment message mentioning the bot is forwarded", func(t *testing.T) {
		f := newTestFixture()
		f.serversService.On("GetActiveServer", mock.Anything, testDiscordServerID, "").
			Return(mo.Some(activeServerFixture()), nil)
		f.expectPairing(models.ChannelPurposeRecruitment, noApplication, false)
		f.discordClient.On("GetBotUser").Return(&clients.DiscordUser{ID: testBotUserID}, nil)
		f.discordClient.On("SendEmbed", testApplicantThreadID, mock.MatchedBy(func(e clients.DiscordEmbed) bool {
			return e.FooterText == "msg-1" && e.Description == "welcome aboard"
		})).Return(&clients.DiscordMessage{ID: "fwd-1"}, nil)
		f.discordClient.On("AddReaction", testRecruitmentThreadID, "msg-1", reactionForwarded).Return(nil)

		err := f.useCase.ProcessMessageCreated(context.Background(),
			messageEventFixture(testRecruitmentThreadID, []string{testBotUserID}))

		assert.NoError(t, err)
		f.assertAllExpectations(t)
	})

	t.Run("recruitment message without mention is silently dropped", func(t *testing.T) {
		f := newTestFixture()
		f.serversService.On("GetActiveServer", mock.Anything, testDiscordServerID, "").
			Return(mo.Some(activeServerFixture()), nil)
		f.expectPairing(models.ChannelPurposeRecruitment, noApplication, false)
		f.discordClient.On("GetBotUser").Return(&clients.DiscordUser{ID: testBotUserID}, nil)

		err := f.useCase.ProcessMessageCreated(context.Background(),
			messageEventFixture(testRecruitmentThreadID, nil))

		assert.NoError(t, err)
		f.discordClient.AssertNotCalled(t, "SendEmbed", mock.Anything, mock.Anything)
		f.discordClient.AssertNotCalled(t, "AddReaction", mock.Anything, mock.Anything, mock.Anything)
		f.discordClient.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything)
		f.assertAllExpectations(t)
	})

	t.Run("applicant message without mention gets a nudge", func(t *testing.T) {
		f := newTestFixture()
		f.serversService.On("GetActiveServer", mock.Anything, testDiscordServerID, "").
			Return(mo.Some(activeServerFixture()), nil)
		f.expectPairing(models.ChannelPurposeApplicant, noApplication, false)
		f.discordClient.On("GetBotUser").Return(&clients.DiscordUser{ID: testBotUserID}, nil)
		f.discordClient.On("SendMessage", testApplicantThreadID, mock.Anything).
			Return(&clients.DiscordMessage{ID: "nudge-1"}, nil)

		err := f.useCase.ProcessMessageCreated(context.Background(),
			messageEventFixture(testApplicantThreadID, nil))

		assert.NoError(t, err)
		f.discordClient.AssertNotCalled(t, "SendEmbed", mock.Anything, mock.Anything)
		f.assertAllExpectations(t)
	})

	t.Run("archived recruitment counterpart is re-pinged before forwarding", func(t *testing.T) {
		f := newTestFixture()
		f.serversService.On("GetActiveServer", mock.Anything, testDiscordServerID, "").
			Return(mo.Some(activeServerFixture()), nil)
		f.expectPairing(models.ChannelPurposeApplicant, noApplication, true)
		f.discordClient.On("GetBotUser").Return(&clients.DiscordUser{ID: testBotUserID}, nil)
		f.rolesService.On("GetGuildRole", mock.Anything, testServerID, testPlaceholderGuildID,
			models.UserRoleGuildManagement).
			Return(mo.Some(&models.UserRole{DiscordRoleID: "mgmt-role"}), nil)
		f.discordClient.On("SendMessage", testRecruitmentThreadID, mock.MatchedBy(func(s string) bool {
			return s == "<@&mgmt-role> this thread has new activity."
		})).Return(&clients.DiscordMessage{ID: "ping-1"}, nil)
		f.discordClient.On("SendEmbed", testRecruitmentThreadID, mock.Anything).
			Return(&clients.DiscordMessage{ID: "fwd-1"}, nil)
		f.discordClient.On("AddReaction", testApplicantThreadID, "msg-1", reactionForwarded).Return(nil)

		err := f.useCase.ProcessMessageCreated(context.Background(),
			messageEventFixture(testApplicantThreadID, []string{testBotUserID}))

		assert.NoError(t, err)
		f.assertAllExpectations(t)
	})

	t.Run("bot messages are ignored", func(t *testing.T) {
		f := newTestFixture()

		event := messageEventFixture(testRecruitmentThreadID, []string{testBotUserID})
		event.AuthorIsBot = true
		err := f.useCase.ProcessMessageCreated(context.Background(), event)

		assert.NoError(t, err)
		f.assertAllExpectations(t)
	})

	t.Run("message outside recognized threads is ignored", func(t *testing.T) {
		f := newTestFixture()
		f.serversService.On("GetActiveServer", mock.Anything, testDiscordServerID, "").
			Return(mo.Some(activeServerFixture()), nil)
		f.discordClient.On("GetThread", "random-channel").Return(&clients.DiscordThread{
			ID:       "random-channel",
			ParentID: "parent-1",
			Name:     "general",
		}, nil)

		err := f.useCase.ProcessMessageCreated(context.Background(),
			messageEventFixture("random-channel", []string{testBotUserID}))

		assert.NoError(t, err)
		f.assertAllExpectations(t)
	})
}

func TestProcessMessageUpdated(t *testing.T) {
	t.Run("edit rewrites the forwarded embed", func(t *testing.T) {
		f := newTestFixture()
		f.serversService.On("GetActiveServer", mock.Anything, testDiscordServerID, "").
			Return(mo.Some(activeServerFixture()), nil)
		f.expectPairing(models.ChannelPurposeRecruitment, mo.None[*models.GuildApplicant](), false)
		f.discordClient.On("GetBotUser").Return(&clients.DiscordUser{ID: testBotUserID}, nil)
		f.discordClient.On("GetRecentMessages", testApplicantThreadID, editScanLimit).
			Return([]*clients.DiscordMessage{botMessage("msg-1")}, nil)
		f.discordClient.On("EditMessageEmbed", testApplicantThreadID, "fwd-msg-1",
			mock.MatchedBy(func(e clients.DiscordEmbed) bool {
				return e.Description == "welcome aboard" && e.FooterText == "msg-1"
			})).Return(nil)
		f.discordClient.On("RemoveAllReactions", testRecruitmentThreadID, "msg-1").Return(nil)
		f.discordClient.On("AddReaction", testRecruitmentThreadID, "msg-1", reactionEdited).Return(nil)

		err := f.useCase.ProcessMessageUpdated(context.Background(),
			messageEventFixture(testRecruitmentThreadID, []string{testBotUserID}))

		assert.NoError(t, err)
		f.assertAllExpectations(t)
	})

	t.Run("correlation miss degrades to forwarding as new", func(t *testing.T) {
		f := newTestFixture()
		f.serversService.On("GetActiveServer", mock.Anything, testDiscordServerID, "").
			Return(mo.Some(activeServerFixture()), nil)
		f.expectPairing(models.ChannelPurposeRecruitment, mo.None[*models.GuildApplicant](), false)
		f.discordClient.On("GetBotUser").Return(&clients.DiscordUser{ID: testBotUserID}, nil)
		f.discordClient.On("GetRecentMessages", testApplicantThreadID, editScanLimit).
			Return([]*clients.DiscordMessage{}, nil)
		f.discordClient.On("SendEmbed", testApplicantThreadID, mock.Anything).
			Return(&clients.DiscordMessage{ID: "fwd-new"}, nil)
		f.discordClient.On("AddReaction", testRecruitmentThreadID, "msg-1", reactionForwarded).Return(nil)

		err := f.useCase.ProcessMessageUpdated(context.Background(),
			messageEventFixture(testRecruitmentThreadID, []string{testBotUserID}))

		assert.NoError(t, err)
		f.assertAllExpectations(t)
	})
}

func TestProcessMessageDeleted(t *testing.T) {
	deleteEvent := models.DiscordMessageDeleteEvent{
		ServerID:  testDiscordServerID,
		ChannelID: testRecruitmentThreadID,
		MessageID: "msg-1",
	}

	t.Run("recruitment-side delete removes the forwarded copy", func(t *testing.T) {
		f := newTestFixture()
		f.serversService.On("GetActiveServer", mock.Anything, testDiscordServerID, "").
			Return(mo.Some(activeServerFixture()), nil)
		f.expectPairing(models.ChannelPurposeRecruitment, mo.None[*models.GuildApplicant](), false)
		f.discordClient.On("GetBotUser").Return(&clients.DiscordUser{ID: testBotUserID}, nil)
		f.discordClient.On("GetRecentMessages", testApplicantThreadID, deleteScanLimit).
			Return([]*clients.DiscordMessage{botMessage("msg-1")}, nil)
		f.discordClient.On("DeleteMessage", testApplicantThreadID, "fwd-msg-1").Return(nil)

		err := f.useCase.ProcessMessageDeleted(context.Background(), deleteEvent)

		assert.NoError(t, err)
		f.assertAllExpectations(t)
	})

	t.Run("applicant-side delete does not propagate", func(t *testing.T) {
		f := newTestFixture()
		f.serversService.On("GetActiveServer", mock.Anything, testDiscordServerID, "").
			Return(mo.Some(activeServerFixture()), nil)
		f.expectPairing(models.ChannelPurposeApplicant, mo.None[*models.GuildApplicant](), false)

		event := deleteEvent
		event.ChannelID = testApplicantThreadID
		err := f.useCase.ProcessMessageDeleted(context.Background(), event)

		assert.NoError(t, err)
		f.discordClient.AssertNotCalled(t, "DeleteMessage", mock.Anything, mock.Anything)
		f.assertAllExpectations(t)
	})

	t.Run("correlation miss posts a manual cleanup notice", func(t *testing.T) {
		f := newTestFixture()
		f.serversService.On("GetActiveServer", mock.Anything, testDiscordServerID, "").
			Return(mo.Some(activeServerFixture()), nil)
		f.expectPairing(models.ChannelPurposeRecruitment, mo.None[*models.GuildApplicant](), false)
		f.discordClient.On("GetBotUser").Return(&clients.DiscordUser{ID: testBotUserID}, nil)
		f.discordClient.On("GetRecentMessages", testApplicantThreadID, deleteScanLimit).
			Return([]*clients.DiscordMessage{}, nil)
		f.discordClient.On("SendMessage", testRecruitmentThreadID,
			mock.MatchedBy(func(notice string) bool {
				return strings.Contains(notice, "<#"+testApplicantThreadID+">")
			})).
			Return(&clients.DiscordMessage{ID: "notice-1"}, nil)

		err := f.useCase.ProcessMessageDeleted(context.Background(), deleteEvent)

		assert.NoError(t, err)
		f.discordClient.AssertNotCalled(t, "DeleteMessage", mock.Anything, mock.Anything)
		f.assertAllExpectations(t)
	})
}
