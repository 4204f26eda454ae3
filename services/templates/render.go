package templates

import (
	"strings"

	"guildbot/models"
)

// ApplyMarker is the token template authors place in a text to request an
// apply button alongside the delivered message.
const ApplyMarker = "[|apply|]"

// RenderValues carries the substitutions available to template authors.
// Empty fields leave their token in place so a misconfigured template is
// visible rather than silently blanked.
type RenderValues struct {
	UserMention            string
	ServerName             string
	ServerAdminMention     string
	GuildName              string
	GameName               string
	GuildManagementMention string
	GuildMembersMention    string
}

// NewRenderValues derives the guild-related substitutions from persisted rows.
// Placeholder guilds render their name with a " Guild" suffix since the row
// is named after the game rather than an actual guild.
func NewRenderValues(guild *models.Guild, game *models.Game) RenderValues {
	values := RenderValues{}
	if guild != nil {
		values.GuildName = guild.Name
		if guild.IsPlaceholder() {
			values.GuildName = guild.Name + " Guild"
		}
	}
	if game != nil {
		values.GameName = game.Name
	}
	return values
}

// Render substitutes the known tokens in text. Tokens whose value is empty
// are left untouched.
func Render(text string, values RenderValues) string {
	pairs := make([]string, 0, 14)
	for token, value := range map[string]string{
		"<{user}>":            values.UserMention,
		"<{serverName}>":      values.ServerName,
		"<{serverAdmin}>":     values.ServerAdminMention,
		"<{guildName}>":       values.GuildName,
		"<{gameName}>":        values.GameName,
		"<{guildManagement}>": values.GuildManagementMention,
		"<{guildMembers}>":    values.GuildMembersMention,
	} {
		if value != "" {
			pairs = append(pairs, token, value)
		}
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// ExtractApplyMarker strips the apply marker from text and reports whether it
// was present so callers can attach an apply button to the delivered message.
func ExtractApplyMarker(text string) (string, bool) {
	if !strings.Contains(text, ApplyMarker) {
		return text, false
	}
	return strings.TrimSpace(strings.ReplaceAll(text, ApplyMarker, "")), true
}
