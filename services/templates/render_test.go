package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"guildbot/models"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		values RenderValues
		want   string
	}{
		{
			name: "substitutes known tokens",
			text: "Welcome <{user}> to <{guildName}> on <{serverName}>!",
			values: RenderValues{
				UserMention: "<@12345>",
				GuildName:   "Night Owls",
				ServerName:  "Test Server",
			},
			want: "Welcome <@12345> to Night Owls on Test Server!",
		},
		{
			name:   "empty values leave their token in place",
			text:   "Ping <{guildManagement}> about <{user}>",
			values: RenderValues{UserMention: "<@12345>"},
			want:   "Ping <{guildManagement}> about <@12345>",
		},
		{
			name: "role mentions pass through",
			text: "<{guildMembers}> say hi, <{serverAdmin}> is watching",
			values: RenderValues{
				GuildMembersMention: "<@&111>",
				ServerAdminMention:  "<@&222>",
			},
			want: "<@&111> say hi, <@&222> is watching",
		},
		{
			name:   "text without tokens is unchanged",
			text:   "plain announcement",
			values: RenderValues{UserMention: "<@12345>"},
			want:   "plain announcement",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.text, tt.values))
		})
	}
}

func TestNewRenderValues(t *testing.T) {
	game := &models.Game{ID: "gm_1", Name: "Elden Realm"}

	t.Run("concrete guild keeps its name", func(t *testing.T) {
		guild := &models.Guild{ID: "gld_a", DiscordGuildID: "ext-a", Name: "Night Owls"}

		values := NewRenderValues(guild, game)

		assert.Equal(t, "Night Owls", values.GuildName)
		assert.Equal(t, "Elden Realm", values.GameName)
	})

	t.Run("placeholder guild gets a Guild suffix", func(t *testing.T) {
		guild := &models.Guild{ID: "gld_p", Name: "Elden Realm"}

		values := NewRenderValues(guild, game)

		assert.Equal(t, "Elden Realm Guild", values.GuildName)
	})

	t.Run("nil rows leave the values empty", func(t *testing.T) {
		values := NewRenderValues(nil, nil)

		assert.Empty(t, values.GuildName)
		assert.Empty(t, values.GameName)
	})
}

func TestExtractApplyMarker(t *testing.T) {
	t.Run("marker is stripped and reported", func(t *testing.T) {
		text, hasApply := ExtractApplyMarker("Join us today!\n[|apply|]")

		assert.True(t, hasApply)
		assert.Equal(t, "Join us today!", text)
	})

	t.Run("text without marker is unchanged", func(t *testing.T) {
		text, hasApply := ExtractApplyMarker("Join us today!")

		assert.False(t, hasApply)
		assert.Equal(t, "Join us today!", text)
	})
}
