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

type PostgresGuildApplicantsRepository struct {
	db     *sqlx.DB
	schema string
}

// Column names for guild_applicants table
var guildApplicantsColumns = []string{
	"id",
	"user_id",
	"guild_id",
	"game_id",
	"server_id",
	"created_at",
	"updated_at",
}

func NewPostgresGuildApplicantsRepository(db *sqlx.DB, schema string) *PostgresGuildApplicantsRepository {
	return &PostgresGuildApplicantsRepository{db: db, schema: schema}
}

// UpsertApplication creates the pending application for a
// (user, game, server) triple or retargets the existing one to the new
// guild. At most one open application per triple exists at a time.
func (r *PostgresGuildApplicantsRepository) UpsertApplication(
	ctx context.Context,
	userID, guildID, gameID, serverID string,
) (*models.GuildApplicant, error) {
	db := dbtx.GetTransactional(ctx, r.db)

	applicationID := core.NewID("app")
	returningStr := strings.Join(guildApplicantsColumns, ", ")

	query := fmt.Sprintf(`
		INSERT INTO %s.guild_applicants (id, user_id, guild_id, game_id, server_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (user_id, game_id, server_id)
		DO UPDATE SET guild_id = EXCLUDED.guild_id, updated_at = NOW()
		RETURNING %s`, r.schema, returningStr)

	application := &models.GuildApplicant{}
	err := db.QueryRowxContext(ctx, query, applicationID, userID, guildID, gameID, serverID).
		StructScan(application)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert application: %w", err)
	}

	return application, nil
}

func (r *PostgresGuildApplicantsRepository) GetOpenApplication(
	ctx context.Context,
	userID, gameID, serverID string,
) (mo.Option[*models.GuildApplicant], error) {
	db := dbtx.GetTransactional(ctx, r.db)

	columnsStr := strings.Join(guildApplicantsColumns, ", ")
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.guild_applicants
		WHERE user_id = $1 AND game_id = $2 AND server_id = $3`, columnsStr, r.schema)

	var application models.GuildApplicant
	err := db.GetContext(ctx, &application, query, userID, gameID, serverID)
	if err != nil {
		if err == sql.ErrNoRows {
			return mo.None[*models.GuildApplicant](), nil
		}
		return mo.None[*models.GuildApplicant](), fmt.Errorf("failed to get open application: %w", err)
	}

	return mo.Some(&application), nil
}

func (r *PostgresGuildApplicantsRepository) GetApplicationsByServer(
	ctx context.Context,
	serverID string,
) ([]*models.GuildApplicant, error) {
	db := dbtx.GetTransactional(ctx, r.db)

	columnsStr := strings.Join(guildApplicantsColumns, ", ")
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.guild_applicants
		WHERE server_id = $1
		ORDER BY created_at`, columnsStr, r.schema)

	var applications []*models.GuildApplicant
	if err := db.SelectContext(ctx, &applications, query, serverID); err != nil {
		return nil, fmt.Errorf("failed to get applications by server: %w", err)
	}

	return applications, nil
}

// DeleteApplication removes a consumed application. Returns whether a
// row was actually deleted.
func (r *PostgresGuildApplicantsRepository) DeleteApplication(
	ctx context.Context,
	id string,
) (bool, error) {
	db := dbtx.GetTransactional(ctx, r.db)

	query := fmt.Sprintf(`
		DELETE FROM %s.guild_applicants
		WHERE id = $1`, r.schema)

	result, err := db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete application: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows > 0, nil
}
