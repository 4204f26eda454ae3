package recruiting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseConfirmCustomID(t *testing.T) {
	tests := []struct {
		name          string
		customID      string
		wantToken     string
		wantConfirmed bool
		wantOK        bool
	}{
		{
			name:          "yes answer",
			customID:      "confirm:cfm_abc:yes",
			wantToken:     "cfm_abc",
			wantConfirmed: true,
			wantOK:        true,
		},
		{
			name:          "no answer",
			customID:      "confirm:cfm_abc:no",
			wantToken:     "cfm_abc",
			wantConfirmed: false,
			wantOK:        true,
		},
		{
			name:     "foreign component",
			customID: "apply:gld_1",
			wantOK:   false,
		},
		{
			name:     "unknown answer",
			customID: "confirm:cfm_abc:maybe",
			wantOK:   false,
		},
		{
			name:     "empty",
			customID: "",
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, confirmed, ok := parseConfirmCustomID(tt.customID)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantToken, token)
				assert.Equal(t, tt.wantConfirmed, confirmed)
			}
		})
	}
}

func TestParseApplyButtonCustomID(t *testing.T) {
	tests := []struct {
		name        string
		customID    string
		wantGuildID string
		wantOK      bool
	}{
		{
			name:        "apply button",
			customID:    "apply:gld_1",
			wantGuildID: "gld_1",
			wantOK:      true,
		},
		{
			name:        "round trip",
			customID:    ApplyButtonCustomID("gld_2"),
			wantGuildID: "gld_2",
			wantOK:      true,
		},
		{
			name:     "foreign component",
			customID: "confirm:cfm_abc:yes",
			wantOK:   false,
		},
		{
			name:     "missing guild",
			customID: "apply:",
			wantOK:   false,
		},
		{
			name:     "empty",
			customID: "",
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guildID, ok := ParseApplyButtonCustomID(tt.customID)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantGuildID, guildID)
			}
		})
	}
}

func TestConfirmCustomIDRoundTrip(t *testing.T) {
	token, confirmed, ok := parseConfirmCustomID(confirmCustomID("cfm_xyz", confirmAnswerYes))
	assert.True(t, ok)
	assert.True(t, confirmed)
	assert.Equal(t, "cfm_xyz", token)
}

func TestConfirmationRegistry(t *testing.T) {
	t.Run("delivers to the registered waiter", func(t *testing.T) {
		r := newConfirmationRegistry()
		result := r.register("tok-1", "user-1")

		assert.True(t, r.deliver("tok-1", "user-1", true))
		assert.True(t, <-result)
	})

	t.Run("ignores answers from another user", func(t *testing.T) {
		r := newConfirmationRegistry()
		r.register("tok-1", "user-1")

		assert.False(t, r.deliver("tok-1", "user-2", true))
	})

	t.Run("ignores unknown tokens", func(t *testing.T) {
		r := newConfirmationRegistry()
		assert.False(t, r.deliver("tok-missing", "user-1", true))
	})

	t.Run("each prompt is one-shot", func(t *testing.T) {
		r := newConfirmationRegistry()
		r.register("tok-1", "user-1")

		assert.True(t, r.deliver("tok-1", "user-1", false))
		assert.False(t, r.deliver("tok-1", "user-1", false))
	})

	t.Run("dropped prompts no longer accept answers", func(t *testing.T) {
		r := newConfirmationRegistry()
		r.register("tok-1", "user-1")
		r.drop("tok-1")

		assert.False(t, r.deliver("tok-1", "user-1", true))
	})
}

func TestWaitForConfirmation(t *testing.T) {
	t.Run("cancelled context is an unanswered outcome", func(t *testing.T) {
		f := newTestFixture()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		start := time.Now()
		confirmed, answered := f.useCase.waitForConfirmation(ctx, "tok-1", testCallerDiscordID)

		assert.False(t, confirmed)
		assert.False(t, answered)
		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("delivered answer is returned", func(t *testing.T) {
		f := newTestFixture()
		go func() {
			time.Sleep(20 * time.Millisecond)
			f.useCase.confirmations.deliver("tok-1", testCallerDiscordID, true)
		}()

		confirmed, answered := f.useCase.waitForConfirmation(context.Background(), "tok-1", testCallerDiscordID)

		assert.True(t, confirmed)
		assert.True(t, answered)
	})
}
