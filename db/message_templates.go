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

type PostgresMessageTemplatesRepository struct {
	db     *sqlx.DB
	schema string
}

// Column names for guild_messages table
var guildMessagesColumns = []string{
	"id",
	"server_id",
	"guild_id",
	"event",
	"text",
	"discord_channel_id",
	"created_at",
	"updated_at",
}

// Column names for server_messages table
var serverMessagesColumns = []string{
	"id",
	"server_id",
	"event",
	"text",
	"discord_channel_id",
	"created_at",
	"updated_at",
}

func NewPostgresMessageTemplatesRepository(db *sqlx.DB, schema string) *PostgresMessageTemplatesRepository {
	return &PostgresMessageTemplatesRepository{db: db, schema: schema}
}

func (r *PostgresMessageTemplatesRepository) GetGuildMessage(
	ctx context.Context,
	serverID, guildID string,
	event models.GuildEvent,
) (mo.Option[*models.GuildMessage], error) {
	db := dbtx.GetTransactional(ctx, r.db)

	columnsStr := strings.Join(guildMessagesColumns, ", ")
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.guild_messages
		WHERE server_id = $1 AND guild_id = $2 AND event = $3`, columnsStr, r.schema)

	var message models.GuildMessage
	err := db.GetContext(ctx, &message, query, serverID, guildID, event)
	if err != nil {
		if err == sql.ErrNoRows {
			return mo.None[*models.GuildMessage](), nil
		}
		return mo.None[*models.GuildMessage](), fmt.Errorf("failed to get guild message: %w", err)
	}

	return mo.Some(&message), nil
}

func (r *PostgresMessageTemplatesRepository) GetServerMessage(
	ctx context.Context,
	serverID string,
	event models.ServerEvent,
) (mo.Option[*models.ServerMessage], error) {
	db := dbtx.GetTransactional(ctx, r.db)

	columnsStr := strings.Join(serverMessagesColumns, ", ")
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.server_messages
		WHERE server_id = $1 AND event = $2`, columnsStr, r.schema)

	var message models.ServerMessage
	err := db.GetContext(ctx, &message, query, serverID, event)
	if err != nil {
		if err == sql.ErrNoRows {
			return mo.None[*models.ServerMessage](), nil
		}
		return mo.None[*models.ServerMessage](), fmt.Errorf("failed to get server message: %w", err)
	}

	return mo.Some(&message), nil
}
