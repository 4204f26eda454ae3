package models

import (
	"time"
)

// Guild is a recruitable sub-group for a game within a server. A guild
// whose DiscordGuildID is empty is the placeholder ("shared") guild for
// its game: channels and shared roles attach to it, and it stands for
// "this game, server-wide" rather than any concrete recruiting unit.
type Guild struct {
	ID             string    `db:"id"               json:"id"`
	ServerID       string    `db:"server_id"        json:"server_id"`
	GameID         string    `db:"game_id"          json:"game_id"`
	DiscordGuildID string    `db:"discord_guild_id" json:"discord_guild_id"`
	Name           string    `db:"name"             json:"name"`
	Active         bool      `db:"active"           json:"active"`
	CreatedAt      time.Time `db:"created_at"       json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"       json:"updated_at"`
}

// IsPlaceholder reports whether this guild is the game's shared
// placeholder rather than a concrete recruiting unit.
func (g *Guild) IsPlaceholder() bool {
	return g.DiscordGuildID == ""
}
