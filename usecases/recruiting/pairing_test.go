package recruiting

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"guildbot/clients"
)

func TestExtractApplicantID(t *testing.T) {
	tests := []struct {
		name       string
		threadName string
		expectedID string
		expectOK   bool
	}{
		{
			name:       "simple name",
			threadName: "Alice|12345",
			expectedID: "12345",
			expectOK:   true,
		},
		{
			name:       "display name containing pipes uses last separator",
			threadName: "Al|ice|12345",
			expectedID: "12345",
			expectOK:   true,
		},
		{
			name:       "no separator",
			threadName: "general-chat",
			expectOK:   false,
		},
		{
			name:       "trailing separator with no id",
			threadName: "Alice|",
			expectOK:   false,
		},
		{
			name:       "empty name",
			threadName: "",
			expectOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ExtractApplicantID(tt.threadName)
			assert.Equal(t, tt.expectOK, ok)
			assert.Equal(t, tt.expectedID, id)
		})
	}
}

func TestResolveThreadPairing(t *testing.T) {
	t.Run("public thread with an applicant-shaped name is ignored", func(t *testing.T) {
		f := newTestFixture()
		f.discordClient.On("GetThread", testRecruitmentThreadID).Return(&clients.DiscordThread{
			ID:       testRecruitmentThreadID,
			ParentID: testRecruitmentChannelID,
			Name:     "Alice|" + testApplicantDiscordID,
			Private:  false,
		}, nil)

		maybePairing, err := f.useCase.ResolveThreadPairing(
			context.Background(), activeServerFixture(), testRecruitmentThreadID)

		assert.NoError(t, err)
		assert.False(t, maybePairing.IsPresent())
		f.channelsService.AssertNotCalled(t, "GetThreadChannelByDiscordID", mock.Anything, mock.Anything)
		f.assertAllExpectations(t)
	})
}

func TestApplicantThreadName(t *testing.T) {
	t.Run("plain display name", func(t *testing.T) {
		assert.Equal(t, "Alice|12345", ApplicantThreadName("Alice", "12345"))
	})

	t.Run("pipes stripped from display name", func(t *testing.T) {
		name := ApplicantThreadName("Al|ice", "12345")
		assert.Equal(t, "Alice|12345", name)

		id, ok := ExtractApplicantID(name)
		assert.True(t, ok)
		assert.Equal(t, "12345", id)
	})
}
