package models

import (
	"time"
)

type ChannelPurposeType string

const (
	ChannelPurposeRecruitment ChannelPurposeType = "RECRUITMENT"
	ChannelPurposeApplicant   ChannelPurposeType = "APPLICANT"
	ChannelPurposeBotLog      ChannelPurposeType = "BOT_LOG"
)

// Counterpart returns the paired purpose for the two thread-bearing
// purposes. BotLog has no counterpart and maps to itself.
func (t ChannelPurposeType) Counterpart() ChannelPurposeType {
	switch t {
	case ChannelPurposeRecruitment:
		return ChannelPurposeApplicant
	case ChannelPurposeApplicant:
		return ChannelPurposeRecruitment
	}
	return t
}

// ChannelPurpose binds a (server, guild, purpose) triple to a Discord
// channel. Recruitment and Applicant purposes always attach to a game's
// placeholder guild; BotLog is server-scoped and has no guild.
type ChannelPurpose struct {
	ID               string             `db:"id"                 json:"id"`
	ServerID         string             `db:"server_id"          json:"server_id"`
	GuildID          *string            `db:"guild_id"           json:"guild_id,omitempty"`
	Purpose          ChannelPurposeType `db:"purpose"            json:"purpose"`
	DiscordChannelID string             `db:"discord_channel_id" json:"discord_channel_id"`
	CreatedAt        time.Time          `db:"created_at"         json:"created_at"`
	UpdatedAt        time.Time          `db:"updated_at"         json:"updated_at"`
}
