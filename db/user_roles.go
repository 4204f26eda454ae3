package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/samber/mo"

	dbtx "guildbot/db/tx"
	"guildbot/models"
)

type PostgresUserRolesRepository struct {
	db     *sqlx.DB
	schema string
}

// Column names for user_roles table
var userRolesColumns = []string{
	"id",
	"server_id",
	"guild_id",
	"role_type",
	"name",
	"discord_role_id",
	"created_at",
	"updated_at",
}

func NewPostgresUserRolesRepository(db *sqlx.DB, schema string) *PostgresUserRolesRepository {
	return &PostgresUserRolesRepository{db: db, schema: schema}
}

// GetGuildRole returns the role bound to a (server, guild, roleType)
// triple.
func (r *PostgresUserRolesRepository) GetGuildRole(
	ctx context.Context,
	serverID, guildID string,
	roleType models.UserRoleType,
) (mo.Option[*models.UserRole], error) {
	db := dbtx.GetTransactional(ctx, r.db)

	columnsStr := strings.Join(userRolesColumns, ", ")
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.user_roles
		WHERE server_id = $1 AND guild_id = $2 AND role_type = $3`, columnsStr, r.schema)

	var role models.UserRole
	err := db.GetContext(ctx, &role, query, serverID, guildID, roleType)
	if err != nil {
		if err == sql.ErrNoRows {
			return mo.None[*models.UserRole](), nil
		}
		return mo.None[*models.UserRole](), fmt.Errorf("failed to get guild role: %w", err)
	}

	return mo.Some(&role), nil
}

// GetServerRole returns a server-scoped role (ServerOwner or
// Administrator), which carries no guild.
func (r *PostgresUserRolesRepository) GetServerRole(
	ctx context.Context,
	serverID string,
	roleType models.UserRoleType,
) (mo.Option[*models.UserRole], error) {
	db := dbtx.GetTransactional(ctx, r.db)

	columnsStr := strings.Join(userRolesColumns, ", ")
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.user_roles
		WHERE server_id = $1 AND role_type = $2 AND guild_id IS NULL`, columnsStr, r.schema)

	var role models.UserRole
	err := db.GetContext(ctx, &role, query, serverID, roleType)
	if err != nil {
		if err == sql.ErrNoRows {
			return mo.None[*models.UserRole](), nil
		}
		return mo.None[*models.UserRole](), fmt.Errorf("failed to get server role: %w", err)
	}

	return mo.Some(&role), nil
}

// GetRolesByTypes returns every role of the given types within a
// server, guild-scoped and server-scoped alike.
func (r *PostgresUserRolesRepository) GetRolesByTypes(
	ctx context.Context,
	serverID string,
	roleTypes []models.UserRoleType,
) ([]*models.UserRole, error) {
	db := dbtx.GetTransactional(ctx, r.db)

	typeStrs := make([]string, len(roleTypes))
	for i, roleType := range roleTypes {
		typeStrs[i] = string(roleType)
	}

	columnsStr := strings.Join(userRolesColumns, ", ")
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.user_roles
		WHERE server_id = $1 AND role_type = ANY($2)`, columnsStr, r.schema)

	var roles []*models.UserRole
	if err := db.SelectContext(ctx, &roles, query, serverID, pq.Array(typeStrs)); err != nil {
		return nil, fmt.Errorf("failed to get roles by types: %w", err)
	}

	return roles, nil
}
