package models

import (
	"time"
)

type Server struct {
	ID              string    `db:"id"                json:"id"`
	DiscordServerID string    `db:"discord_server_id" json:"discord_server_id"`
	Name            string    `db:"name"              json:"name"`
	Active          bool      `db:"active"            json:"active"`
	Premium         bool      `db:"premium"           json:"premium"`
	CreatedAt       time.Time `db:"created_at"        json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"        json:"updated_at"`
}
