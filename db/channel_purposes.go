package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/samber/mo"

	dbtx "guildbot/db/tx"
	"guildbot/models"
)

type PostgresChannelPurposesRepository struct {
	db     *sqlx.DB
	schema string
}

// Column names for channel_purposes table
var channelPurposesColumns = []string{
	"id",
	"server_id",
	"guild_id",
	"purpose",
	"discord_channel_id",
	"created_at",
	"updated_at",
}

func NewPostgresChannelPurposesRepository(db *sqlx.DB, schema string) *PostgresChannelPurposesRepository {
	return &PostgresChannelPurposesRepository{db: db, schema: schema}
}

// GetChannelPurpose returns the channel bound to a
// (server, guild, purpose) triple. Recruitment and Applicant bindings
// are keyed by the game's placeholder guild.
func (r *PostgresChannelPurposesRepository) GetChannelPurpose(
	ctx context.Context,
	serverID, guildID string,
	purpose models.ChannelPurposeType,
) (mo.Option[*models.ChannelPurpose], error) {
	db := dbtx.GetTransactional(ctx, r.db)

	columnsStr := strings.Join(channelPurposesColumns, ", ")
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.channel_purposes
		WHERE server_id = $1 AND guild_id = $2 AND purpose = $3`, columnsStr, r.schema)

	var channel models.ChannelPurpose
	err := db.GetContext(ctx, &channel, query, serverID, guildID, purpose)
	if err != nil {
		if err == sql.ErrNoRows {
			return mo.None[*models.ChannelPurpose](), nil
		}
		return mo.None[*models.ChannelPurpose](), fmt.Errorf("failed to get channel purpose: %w", err)
	}

	return mo.Some(&channel), nil
}

// GetThreadChannelByDiscordID returns the Recruitment or Applicant
// binding whose channel matches the given Discord channel, if any. This
// is how a thread's parent is recognized as one side of a pairing.
func (r *PostgresChannelPurposesRepository) GetThreadChannelByDiscordID(
	ctx context.Context,
	discordChannelID string,
) (mo.Option[*models.ChannelPurpose], error) {
	db := dbtx.GetTransactional(ctx, r.db)

	columnsStr := strings.Join(channelPurposesColumns, ", ")
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.channel_purposes
		WHERE discord_channel_id = $1 AND purpose IN ($2, $3)`, columnsStr, r.schema)

	var channel models.ChannelPurpose
	err := db.GetContext(ctx, &channel, query,
		discordChannelID, models.ChannelPurposeRecruitment, models.ChannelPurposeApplicant)
	if err != nil {
		if err == sql.ErrNoRows {
			return mo.None[*models.ChannelPurpose](), nil
		}
		return mo.None[*models.ChannelPurpose](), fmt.Errorf(
			"failed to get thread channel by discord ID: %w", err)
	}

	return mo.Some(&channel), nil
}

// GetBotLogChannel returns the server-scoped bot log binding, if any.
func (r *PostgresChannelPurposesRepository) GetBotLogChannel(
	ctx context.Context,
	serverID string,
) (mo.Option[*models.ChannelPurpose], error) {
	db := dbtx.GetTransactional(ctx, r.db)

	columnsStr := strings.Join(channelPurposesColumns, ", ")
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.channel_purposes
		WHERE server_id = $1 AND purpose = $2 AND guild_id IS NULL`, columnsStr, r.schema)

	var channel models.ChannelPurpose
	err := db.GetContext(ctx, &channel, query, serverID, models.ChannelPurposeBotLog)
	if err != nil {
		if err == sql.ErrNoRows {
			return mo.None[*models.ChannelPurpose](), nil
		}
		return mo.None[*models.ChannelPurpose](), fmt.Errorf("failed to get bot log channel: %w", err)
	}

	return mo.Some(&channel), nil
}
