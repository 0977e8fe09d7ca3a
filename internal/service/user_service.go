package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"adminacl/internal/model"
	"adminacl/pkg/apperr"
)

// UnknownRoleLabel is shown for users whose role slug no longer resolves,
// e.g. after a custom role was deleted while still assigned.
const UnknownRoleLabel = "Unknown role"

// UserDirectory is the narrow read-only port onto the external Users
// collaborator. The projection depends on this capability instead of a
// concrete users module so it stays testable without real user data.
type UserDirectory interface {
	ListUsers(ctx context.Context) ([]model.User, error)
}

// UserService exposes the role-decorated user projection.
type UserService interface {
	ListUsersWithRoles(ctx context.Context) ([]model.UserWithRole, error)
}

type userService struct {
	directory UserDirectory
	roles     RoleService
	log       *zap.Logger
}

// NewUserService returns the read-only projection joining directory
// records with role display names.
func NewUserService(directory UserDirectory, roles RoleService, log *zap.Logger) UserService {
	if log == nil {
		log = zap.NewNop()
	}
	return &userService{directory: directory, roles: roles, log: log}
}

// ListUsersWithRoles resolves each user's role slug against the live role
// store so custom roles carry their real display name. Fails only when
// the directory fails.
func (s *userService) ListUsersWithRoles(ctx context.Context) ([]model.UserWithRole, error) {
	users, err := s.directory.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	out := make([]model.UserWithRole, 0, len(users))
	for _, user := range users {
		roleName := UnknownRoleLabel
		role, err := s.roles.GetRoleBySlug(ctx, user.Role)
		switch {
		case err == nil:
			roleName = role.Name
		case apperr.IsCode(err, apperr.CodeNotFound):
			s.log.Warn("user references unknown role",
				zap.String("user_id", user.ID),
				zap.String("role_slug", user.Role))
		default:
			return nil, fmt.Errorf("resolve role %q: %w", user.Role, err)
		}

		out = append(out, model.UserWithRole{User: user, RoleName: roleName})
	}
	return out, nil
}
