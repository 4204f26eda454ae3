package roles

import (
	"context"
	"fmt"
	"log"

	"github.com/samber/mo"

	"guildbot/db"
	"guildbot/models"
)

type RolesService struct {
	rolesRepo *db.PostgresUserRolesRepository
}

func NewRolesService(repo *db.PostgresUserRolesRepository) *RolesService {
	return &RolesService{rolesRepo: repo}
}

func (s *RolesService) GetGuildRole(
	ctx context.Context,
	serverID, guildID string,
	roleType models.UserRoleType,
) (mo.Option[*models.UserRole], error) {
	log.Printf("📋 Starting to get %s role for server: %s, guild: %s", roleType, serverID, guildID)

	if serverID == "" || guildID == "" {
		return mo.None[*models.UserRole](), fmt.Errorf("server ID and guild ID cannot be empty")
	}

	maybeRole, err := s.rolesRepo.GetGuildRole(ctx, serverID, guildID, roleType)
	if err != nil {
		return mo.None[*models.UserRole](), fmt.Errorf("failed to get guild role: %w", err)
	}

	log.Printf("📋 Completed successfully - %s role lookup for guild: %s", roleType, guildID)
	return maybeRole, nil
}

func (s *RolesService) GetServerRole(
	ctx context.Context,
	serverID string,
	roleType models.UserRoleType,
) (mo.Option[*models.UserRole], error) {
	log.Printf("📋 Starting to get %s role for server: %s", roleType, serverID)

	if serverID == "" {
		return mo.None[*models.UserRole](), fmt.Errorf("server ID cannot be empty")
	}

	maybeRole, err := s.rolesRepo.GetServerRole(ctx, serverID, roleType)
	if err != nil {
		return mo.None[*models.UserRole](), fmt.Errorf("failed to get server role: %w", err)
	}

	log.Printf("📋 Completed successfully - %s role lookup for server: %s", roleType, serverID)
	return maybeRole, nil
}

func (s *RolesService) GetRolesByTypes(
	ctx context.Context,
	serverID string,
	roleTypes []models.UserRoleType,
) ([]*models.UserRole, error) {
	log.Printf("📋 Starting to get roles by types for server: %s", serverID)

	if serverID == "" {
		return nil, fmt.Errorf("server ID cannot be empty")
	}
	if len(roleTypes) == 0 {
		return nil, fmt.Errorf("role types cannot be empty")
	}

	matched, err := s.rolesRepo.GetRolesByTypes(ctx, serverID, roleTypes)
	if err != nil {
		return nil, fmt.Errorf("failed to get roles by types: %w", err)
	}

	log.Printf("📋 Completed successfully - found %d roles for server: %s", len(matched), serverID)
	return matched, nil
}
