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

type PostgresUsersRepository struct {
	db     *sqlx.DB
	schema string
}

// Column names for users table
var usersColumns = []string{
	"id",
	"discord_user_id",
	"display_name",
	"created_at",
	"updated_at",
}

func NewPostgresUsersRepository(db *sqlx.DB, schema string) *PostgresUsersRepository {
	return &PostgresUsersRepository{db: db, schema: schema}
}

// UpsertUser creates the user row for a Discord user or refreshes the
// cached display name if it already exists.
func (r *PostgresUsersRepository) UpsertUser(
	ctx context.Context,
	discordUserID, displayName string,
) (*models.User, error) {
	db := dbtx.GetTransactional(ctx, r.db)

	userID := core.NewID("usr")
	returningStr := strings.Join(usersColumns, ", ")

	query := fmt.Sprintf(`
		INSERT INTO %s.users (id, discord_user_id, display_name, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (discord_user_id)
		DO UPDATE SET display_name = EXCLUDED.display_name, updated_at = NOW()
		RETURNING %s`, r.schema, returningStr)

	user := &models.User{}
	if err := db.QueryRowxContext(ctx, query, userID, discordUserID, displayName).StructScan(user); err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	return user, nil
}

func (r *PostgresUsersRepository) GetUserByDiscordID(
	ctx context.Context,
	discordUserID string,
) (mo.Option[*models.User], error) {
	db := dbtx.GetTransactional(ctx, r.db)

	columnsStr := strings.Join(usersColumns, ", ")
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.users
		WHERE discord_user_id = $1`, columnsStr, r.schema)

	var user models.User
	err := db.GetContext(ctx, &user, query, discordUserID)
	if err != nil {
		if err == sql.ErrNoRows {
			return mo.None[*models.User](), nil
		}
		return mo.None[*models.User](), fmt.Errorf("failed to get user by discord ID: %w", err)
	}

	return mo.Some(&user), nil
}

func (r *PostgresUsersRepository) GetUserByID(
	ctx context.Context,
	id string,
) (mo.Option[*models.User], error) {
	db := dbtx.GetTransactional(ctx, r.db)

	columnsStr := strings.Join(usersColumns, ", ")
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.users
		WHERE id = $1`, columnsStr, r.schema)

	var user models.User
	err := db.GetContext(ctx, &user, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return mo.None[*models.User](), nil
		}
		return mo.None[*models.User](), fmt.Errorf("failed to get user by ID: %w", err)
	}

	return mo.Some(&user), nil
}
