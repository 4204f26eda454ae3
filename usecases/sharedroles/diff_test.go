package sharedroles

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"guildbot/models"
)

const (
	testServerID = "srv_1"
	testGameID   = "gm_1"
)

func ptr(s string) *string { return &s }

func guildFixture(id, discordGuildID string) *models.Guild {
	return &models.Guild{
		ID:             id,
		ServerID:       testServerID,
		GameID:         testGameID,
		DiscordGuildID: discordGuildID,
		Name:           id,
		Active:         true,
	}
}

func roleFixture(guildID string, roleType models.UserRoleType, discordRoleID string) *models.UserRole {
	return &models.UserRole{
		ID:            "rol_" + discordRoleID,
		ServerID:      testServerID,
		GuildID:       ptr(guildID),
		RoleType:      roleType,
		DiscordRoleID: discordRoleID,
	}
}

// placeholder guild P carries the shared roles; A and B are concrete guilds
// of the same game.
func fixtureMaps() SharedRoleMaps {
	guilds := []*models.Guild{
		guildFixture("gld_p", ""),
		guildFixture("gld_a", "ext-a"),
		guildFixture("gld_b", "ext-b"),
	}
	roles := []*models.UserRole{
		roleFixture("gld_p", models.UserRoleGuildMember, "shared-member"),
		roleFixture("gld_p", models.UserRoleGuildManagement, "shared-mgmt"),
		roleFixture("gld_a", models.UserRoleGuildMember, "a-member"),
		roleFixture("gld_a", models.UserRoleGuildManagement, "a-mgmt"),
		roleFixture("gld_b", models.UserRoleGuildMember, "b-member"),
	}
	return BuildSharedRoleMaps(guilds, roles)
}

func TestBuildSharedRoleMaps(t *testing.T) {
	maps := fixtureMaps()

	assert.Equal(t, "shared-member", maps.GameSharedRole[testGameID][models.UserRoleGuildMember])
	assert.Equal(t, "shared-mgmt", maps.GameSharedRole[testGameID][models.UserRoleGuildManagement])

	assert.Equal(t, "shared-member", maps.SharedEquivalentOf["a-member"])
	assert.Equal(t, "shared-member", maps.SharedEquivalentOf["b-member"])
	assert.Equal(t, "shared-mgmt", maps.SharedEquivalentOf["a-mgmt"])

	_, ok := maps.SharedEquivalentOf["shared-member"]
	assert.False(t, ok, "shared roles must not map onto themselves")
}

func TestBuildSharedRoleMapsSkipsUnassignedRoles(t *testing.T) {
	guilds := []*models.Guild{guildFixture("gld_p", "")}
	roles := []*models.UserRole{
		{ID: "rol_x", ServerID: testServerID, GuildID: ptr("gld_p"), RoleType: models.UserRoleGuildMember},
		{ID: "rol_y", ServerID: testServerID, RoleType: models.UserRoleGuildMember, DiscordRoleID: "no-guild"},
	}

	maps := BuildSharedRoleMaps(guilds, roles)
	assert.Empty(t, maps.GameSharedRole)
	assert.Empty(t, maps.SharedEquivalentOf)
}

func TestComputeSharedRoleDiff(t *testing.T) {
	maps := fixtureMaps()

	tests := []struct {
		name           string
		held           []string
		expectToAdd    []string
		expectToRemove []string
	}{
		{
			name:        "specific role implies missing shared role",
			held:        []string{"a-member"},
			expectToAdd: []string{"shared-member"},
		},
		{
			name: "already consistent",
			held: []string{"a-member", "shared-member"},
		},
		{
			name:           "shared role without backing specific role is removed",
			held:           []string{"shared-member"},
			expectToRemove: []string{"shared-member"},
		},
		{
			name:        "multiple role types",
			held:        []string{"a-member", "a-mgmt", "shared-member"},
			expectToAdd: []string{"shared-mgmt"},
		},
		{
			name: "two guilds of the same game imply one shared role",
			held: []string{"a-member", "b-member", "shared-member"},
		},
		{
			name: "unrelated roles are ignored",
			held: []string{"some-color-role"},
		},
		{
			name: "no roles held",
			held: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toAdd, toRemove := ComputeSharedRoleDiff(maps, tt.held)
			assert.Equal(t, tt.expectToAdd, toAdd)
			assert.Equal(t, tt.expectToRemove, toRemove)
		})
	}
}

func TestComputeSharedRoleDiffIdempotent(t *testing.T) {
	maps := fixtureMaps()
	held := []string{"a-member", "a-mgmt"}

	toAdd, toRemove := ComputeSharedRoleDiff(maps, held)
	assert.NotEmpty(t, toAdd)

	// Apply the diff to the held set and recompute.
	next := slices.Clone(held)
	next = append(next, toAdd...)
	for _, removed := range toRemove {
		next = slices.DeleteFunc(next, func(id string) bool { return id == removed })
	}

	toAdd, toRemove = ComputeSharedRoleDiff(maps, next)
	assert.Empty(t, toAdd)
	assert.Empty(t, toRemove)
}
