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

type PostgresGamesRepository struct {
	db     *sqlx.DB
	schema string
}

// Column names for games table
var gamesColumns = []string{
	"id",
	"name",
	"created_at",
	"updated_at",
}

func NewPostgresGamesRepository(db *sqlx.DB, schema string) *PostgresGamesRepository {
	return &PostgresGamesRepository{db: db, schema: schema}
}

func (r *PostgresGamesRepository) GetGameByID(
	ctx context.Context,
	id string,
) (mo.Option[*models.Game], error) {
	db := dbtx.GetTransactional(ctx, r.db)

	columnsStr := strings.Join(gamesColumns, ", ")
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.games
		WHERE id = $1`, columnsStr, r.schema)

	var game models.Game
	err := db.GetContext(ctx, &game, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return mo.None[*models.Game](), nil
		}
		return mo.None[*models.Game](), fmt.Errorf("failed to get game by ID: %w", err)
	}

	return mo.Some(&game), nil
}

func (r *PostgresGamesRepository) GetAllGames(ctx context.Context) ([]*models.Game, error) {
	db := dbtx.GetTransactional(ctx, r.db)

	columnsStr := strings.Join(gamesColumns, ", ")
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.games
		ORDER BY name`, columnsStr, r.schema)

	var games []*models.Game
	if err := db.SelectContext(ctx, &games, query); err != nil {
		return nil, fmt.Errorf("failed to get all games: %w", err)
	}

	return games, nil
}
