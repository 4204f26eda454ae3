package testutils

import (
	"github.com/google/uuid"
)

// RandomDiscordID returns a unique stand-in for a Discord snowflake so
// fixtures never collide across tests.
func RandomDiscordID() string {
	return uuid.NewString()
}
