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

type PostgresGuildsRepository struct {
	db     *sqlx.DB
	schema string
}

// Column names for guilds table
var guildsColumns = []string{
	"id",
	"server_id",
	"game_id",
	"discord_guild_id",
	"name",
	"active",
	"created_at",
	"updated_at",
}

func NewPostgresGuildsRepository(db *sqlx.DB, schema string) *PostgresGuildsRepository {
	return &PostgresGuildsRepository{db: db, schema: schema}
}

func (r *PostgresGuildsRepository) GetGuildByID(
	ctx context.Context,
	id string,
) (mo.Option[*models.Guild], error) {
	db := dbtx.GetTransactional(ctx, r.db)

	columnsStr := strings.Join(guildsColumns, ", ")
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.guilds
		WHERE id = $1`, columnsStr, r.schema)

	var guild models.Guild
	err := db.GetContext(ctx, &guild, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return mo.None[*models.Guild](), nil
		}
		return mo.None[*models.Guild](), fmt.Errorf("failed to get guild by ID: %w", err)
	}

	return mo.Some(&guild), nil
}

// GetPlaceholderGuild returns the active shared guild for a
// (server, game) pair, identified by an empty discord_guild_id.
func (r *PostgresGuildsRepository) GetPlaceholderGuild(
	ctx context.Context,
	serverID, gameID string,
) (mo.Option[*models.Guild], error) {
	db := dbtx.GetTransactional(ctx, r.db)

	columnsStr := strings.Join(guildsColumns, ", ")
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.guilds
		WHERE server_id = $1 AND game_id = $2 AND discord_guild_id = '' AND active = TRUE`,
		columnsStr, r.schema)

	var guild models.Guild
	err := db.GetContext(ctx, &guild, query, serverID, gameID)
	if err != nil {
		if err == sql.ErrNoRows {
			return mo.None[*models.Guild](), nil
		}
		return mo.None[*models.Guild](), fmt.Errorf("failed to get placeholder guild: %w", err)
	}

	return mo.Some(&guild), nil
}

// GetPlaceholderGuilds returns the active shared guilds of a server,
// one per supported game.
func (r *PostgresGuildsRepository) GetPlaceholderGuilds(
	ctx context.Context,
	serverID string,
) ([]*models.Guild, error) {
	db := dbtx.GetTransactional(ctx, r.db)

	columnsStr := strings.Join(guildsColumns, ", ")
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.guilds
		WHERE server_id = $1 AND discord_guild_id = '' AND active = TRUE
		ORDER BY name`, columnsStr, r.schema)

	var guilds []*models.Guild
	if err := db.SelectContext(ctx, &guilds, query, serverID); err != nil {
		return nil, fmt.Errorf("failed to get placeholder guilds: %w", err)
	}

	return guilds, nil
}

// GetConcreteGuildsByGame returns the active non-placeholder guilds of
// a game within a server.
func (r *PostgresGuildsRepository) GetConcreteGuildsByGame(
	ctx context.Context,
	serverID, gameID string,
) ([]*models.Guild, error) {
	db := dbtx.GetTransactional(ctx, r.db)

	columnsStr := strings.Join(guildsColumns, ", ")
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.guilds
		WHERE server_id = $1 AND game_id = $2 AND discord_guild_id != '' AND active = TRUE
		ORDER BY name`, columnsStr, r.schema)

	var guilds []*models.Guild
	if err := db.SelectContext(ctx, &guilds, query, serverID, gameID); err != nil {
		return nil, fmt.Errorf("failed to get concrete guilds by game: %w", err)
	}

	return guilds, nil
}

func (r *PostgresGuildsRepository) GetGuildsByServer(
	ctx context.Context,
	serverID string,
) ([]*models.Guild, error) {
	db := dbtx.GetTransactional(ctx, r.db)

	columnsStr := strings.Join(guildsColumns, ", ")
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.guilds
		WHERE server_id = $1 AND active = TRUE
		ORDER BY name`, columnsStr, r.schema)

	var guilds []*models.Guild
	if err := db.SelectContext(ctx, &guilds, query, serverID); err != nil {
		return nil, fmt.Errorf("failed to get guilds by server: %w", err)
	}

	return guilds, nil
}
