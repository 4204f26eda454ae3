package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/samber/mo"

	"guildbot/core"
	dbtx "guildbot/db/tx"
	"guildbot/models"
)

type PostgresServersRepository struct {
	db     *sqlx.DB
	schema string
}

// Column names for servers table
var serversColumns = []string{
	"id",
	"discord_server_id",
	"name",
	"active",
	"premium",
	"created_at",
	"updated_at",
}

func NewPostgresServersRepository(db *sqlx.DB, schema string) *PostgresServersRepository {
	return &PostgresServersRepository{db: db, schema: schema}
}

// UpsertServer creates the server row for a Discord server or refreshes
// its name if it already exists. The active flag is preserved on update
// so deactivated servers stay deactivated; an empty name leaves the
// stored name untouched.
func (r *PostgresServersRepository) UpsertServer(
	ctx context.Context,
	discordServerID, name string,
) (*models.Server, error) {
	db := dbtx.GetTransactional(ctx, r.db)

	serverID := core.NewID("srv")
	returningStr := strings.Join(serversColumns, ", ")

	query := fmt.Sprintf(`
		INSERT INTO %s.servers (id, discord_server_id, name, active, premium, created_at, updated_at)
		VALUES ($1, $2, $3, TRUE, FALSE, NOW(), NOW())
		ON CONFLICT (discord_server_id)
		DO UPDATE SET name = COALESCE(NULLIF(EXCLUDED.name, ''), servers.name), updated_at = NOW()
		RETURNING %s`, r.schema, returningStr)

	server := &models.Server{}
	if err := db.QueryRowxContext(ctx, query, serverID, discordServerID, name).StructScan(server); err != nil {
		return nil, fmt.Errorf("failed to upsert server: %w", err)
	}

	return server, nil
}

func (r *PostgresServersRepository) GetServerByDiscordID(
	ctx context.Context,
	discordServerID string,
) (mo.Option[*models.Server], error) {
	db := dbtx.GetTransactional(ctx, r.db)

	columnsStr := strings.Join(serversColumns, ", ")
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.servers
		WHERE discord_server_id = $1`, columnsStr, r.schema)

	var server models.Server
	err := db.GetContext(ctx, &server, query, discordServerID)
	if err != nil {
		if err == sql.ErrNoRows {
			return mo.None[*models.Server](), nil
		}
		return mo.None[*models.Server](), fmt.Errorf("failed to get server by discord ID: %w", err)
	}

	return mo.Some(&server), nil
}

func (r *PostgresServersRepository) GetServerByID(
	ctx context.Context,
	id string,
) (mo.Option[*models.Server], error) {
	db := dbtx.GetTransactional(ctx, r.db)

	columnsStr := strings.Join(serversColumns, ", ")
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.servers
		WHERE id = $1`, columnsStr, r.schema)

	var server models.Server
	err := db.GetContext(ctx, &server, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return mo.None[*models.Server](), nil
		}
		return mo.None[*models.Server](), fmt.Errorf("failed to get server by ID: %w", err)
	}

	return mo.Some(&server), nil
}
