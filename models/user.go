package models

import (
	"time"
)

// User caches the identity of a Discord user. DisplayName is refreshed
// on every resolve.
type User struct {
	ID            string    `db:"id"              json:"id"`
	DiscordUserID string    `db:"discord_user_id" json:"discord_user_id"`
	DisplayName   string    `db:"display_name"    json:"display_name"`
	CreatedAt     time.Time `db:"created_at"      json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"      json:"updated_at"`
}
