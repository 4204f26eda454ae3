package models

import (
	"time"
)

type GuildEvent string

const (
	GuildEventApply    GuildEvent = "APPLY"
	GuildEventAccept   GuildEvent = "ACCEPT"
	GuildEventTransfer GuildEvent = "TRANSFER"
)

type ServerEvent string

const (
	ServerEventMemberAdd ServerEvent = "SERVER_MEMBER_ADD"
)

// GuildMessage is a freeform message template keyed by
// (server, guild, event). DiscordChannelID optionally names the channel
// the rendered message should be delivered to.
type GuildMessage struct {
	ID               string     `db:"id"                 json:"id"`
	ServerID         string     `db:"server_id"          json:"server_id"`
	GuildID          string     `db:"guild_id"           json:"guild_id"`
	Event            GuildEvent `db:"event"              json:"event"`
	Text             string     `db:"text"               json:"text"`
	DiscordChannelID string     `db:"discord_channel_id" json:"discord_channel_id"`
	CreatedAt        time.Time  `db:"created_at"         json:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"         json:"updated_at"`
}

// ServerMessage is a server-scoped message template keyed by
// (server, event).
type ServerMessage struct {
	ID               string      `db:"id"                 json:"id"`
	ServerID         string      `db:"server_id"          json:"server_id"`
	Event            ServerEvent `db:"event"              json:"event"`
	Text             string      `db:"text"               json:"text"`
	DiscordChannelID string      `db:"discord_channel_id" json:"discord_channel_id"`
	CreatedAt        time.Time   `db:"created_at"         json:"created_at"`
	UpdatedAt        time.Time   `db:"updated_at"         json:"updated_at"`
}
