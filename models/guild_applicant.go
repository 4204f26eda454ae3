package models

import (
	"time"
)

// GuildApplicant is the single pending application for a
// (user, game, server) triple. Created by apply, deleted by accept or
// decline; re-applying retargets GuildID instead of creating a second
// row.
type GuildApplicant struct {
	ID        string    `db:"id"         json:"id"`
	UserID    string    `db:"user_id"    json:"user_id"`
	GuildID   string    `db:"guild_id"   json:"guild_id"`
	GameID    string    `db:"game_id"    json:"game_id"`
	ServerID  string    `db:"server_id"  json:"server_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
