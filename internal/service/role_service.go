package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"adminacl/internal/catalog"
	"adminacl/internal/metrics"
	"adminacl/internal/model"
	"adminacl/internal/repository"
	"adminacl/pkg/apperr"
)

const (
	slugMinLen        = 2
	slugMaxLen        = 50
	nameMinLen        = 2
	descriptionMinLen = 10
)

var slugPattern = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

// RoleInput is the full editable surface of a role. Both create and
// update replace the whole surface in one call; there are no partial
// updates.
type RoleInput struct {
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
}

// RoleService is the CRUD and validation facade over the role store.
// Every failure is a typed, deterministic outcome of the input and the
// current store state; a rejected operation leaves the store unchanged.
type RoleService interface {
	ListRoles(ctx context.Context) ([]model.Role, error)
	GetRole(ctx context.Context, id string) (*model.Role, error)
	GetRoleBySlug(ctx context.Context, slug string) (*model.Role, error)
	CreateRole(ctx context.Context, input RoleInput) (*model.Role, error)
	UpdateRole(ctx context.Context, id string, input RoleInput) (*model.Role, error)
	DeleteRole(ctx context.Context, id string) error
	ListPermissionGroups(ctx context.Context) []catalog.Group
}

type roleService struct {
	repo    repository.RoleRepository
	audit   repository.AuditRepository
	log     *zap.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewRoleService returns a RoleService backed by the given store.
// The audit repository and metrics may be nil when the caller does not
// need a trail or instrumentation (tests, embedded use).
func NewRoleService(repo repository.RoleRepository, audit repository.AuditRepository, log *zap.Logger, m *metrics.Metrics) RoleService {
	if log == nil {
		log = zap.NewNop()
	}
	return &roleService{
		repo:    repo,
		audit:   audit,
		log:     log,
		metrics: m,
		now:     time.Now,
	}
}

func (s *roleService) ListRoles(ctx context.Context) ([]model.Role, error) {
	return s.repo.List(ctx)
}

func (s *roleService) GetRole(ctx context.Context, id string) (*model.Role, error) {
	role, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("role %q not found", id)
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	return role, nil
}

func (s *roleService) GetRoleBySlug(ctx context.Context, slug string) (*model.Role, error) {
	role, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("role with slug %q not found", slug)
		}
		return nil, fmt.Errorf("get role by slug: %w", err)
	}
	return role, nil
}

func (s *roleService) CreateRole(ctx context.Context, input RoleInput) (*model.Role, error) {
	input = input.normalized()

	perms, err := validateRoleInput(input)
	if err != nil {
		s.observe("create", "rejected")
		return nil, err
	}

	now := s.now()
	role := &model.Role{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
		Permissions: perms,
		IsSystem:    false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, role); err != nil {
		if errors.Is(err, repository.ErrSlugTaken) {
			s.observe("create", "rejected")
			return nil, apperr.Conflict("slug", "slug already in use")
		}
		s.observe("create", "error")
		return nil, fmt.Errorf("create role: %w", err)
	}

	s.observe("create", "success")
	s.recordAudit(ctx, model.ActionCreateRole, role)
	s.log.Info("role created",
		zap.String("role_id", role.ID),
		zap.String("slug", role.Slug),
		zap.Int("permissions", len(role.Permissions)))
	return role, nil
}

func (s *roleService) UpdateRole(ctx context.Context, id string, input RoleInput) (*model.Role, error) {
	input = input.normalized()

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.observe("update", "rejected")
			return nil, apperr.NotFound("role %q not found", id)
		}
		s.observe("update", "error")
		return nil, fmt.Errorf("get role: %w", err)
	}

	// The slug guard for system roles comes before field validation so a
	// form editing a system role sees the definitive refusal first.
	if existing.IsSystem && input.Slug != existing.Slug {
		s.observe("update", "rejected")
		return nil, apperr.ForbiddenField("slug", "system role slugs cannot be modified")
	}

	perms, err := validateRoleInput(input)
	if err != nil {
		s.observe("update", "rejected")
		return nil, err
	}

	updated := existing.Clone()
	updated.Name = input.Name
	updated.Slug = input.Slug
	updated.Description = input.Description
	updated.Permissions = perms
	updated.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, &updated); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			s.observe("update", "rejected")
			return nil, apperr.NotFound("role %q not found", id)
		case errors.Is(err, repository.ErrSlugTaken):
			s.observe("update", "rejected")
			return nil, apperr.Conflict("slug", "slug already in use")
		case errors.Is(err, repository.ErrSystemSlug):
			s.observe("update", "rejected")
			return nil, apperr.ForbiddenField("slug", "system role slugs cannot be modified")
		default:
			s.observe("update", "error")
			return nil, fmt.Errorf("update role: %w", err)
		}
	}

	s.observe("update", "success")
	s.recordAudit(ctx, model.ActionUpdateRole, &updated)
	s.log.Info("role updated",
		zap.String("role_id", updated.ID),
		zap.String("slug", updated.Slug))
	return &updated, nil
}

func (s *roleService) DeleteRole(ctx context.Context, id string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.observe("delete", "rejected")
			return apperr.NotFound("role %q not found", id)
		}
		s.observe("delete", "error")
		return fmt.Errorf("get role: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			s.observe("delete", "rejected")
			return apperr.NotFound("role %q not found", id)
		case errors.Is(err, repository.ErrSystemRole):
			s.observe("delete", "rejected")
			return apperr.Forbidden("system roles cannot be deleted")
		default:
			s.observe("delete", "error")
			return fmt.Errorf("delete role: %w", err)
		}
	}

	s.observe("delete", "success")
	s.recordAudit(ctx, model.ActionDeleteRole, existing)
	s.log.Info("role deleted",
		zap.String("role_id", existing.ID),
		zap.String("slug", existing.Slug))
	return nil
}

func (s *roleService) ListPermissionGroups(_ context.Context) []catalog.Group {
	return catalog.ListGroups()
}

// normalized trims the free-text fields so length checks and the system
// slug guard work on what would actually be stored.
func (in RoleInput) normalized() RoleInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Slug = strings.TrimSpace(in.Slug)
	in.Description = strings.TrimSpace(in.Description)
	return in
}

// validateRoleInput checks every field and collects all violations before
// reporting, so a form can render the complete set at once. On success it
// returns the permission set with duplicates removed, order preserved.
func validateRoleInput(input RoleInput) ([]catalog.Permission, error) {
	violations := apperr.Violations{}

	switch {
	case input.Name == "":
		violations.Add("name", "name is required")
	case utf8.RuneCountInString(input.Name) < nameMinLen:
		violations.Add("name", fmt.Sprintf("name must be at least %d characters", nameMinLen))
	}

	if input.Slug == "" {
		violations.Add("slug", "slug is required")
	} else {
		if n := len(input.Slug); n < slugMinLen || n > slugMaxLen {
			violations.Add("slug", fmt.Sprintf("slug must be between %d and %d characters", slugMinLen, slugMaxLen))
		}
		if !slugPattern.MatchString(input.Slug) {
			violations.Add("slug", "slug must start with a lowercase letter and contain only lowercase letters, digits, hyphens and underscores")
		}
	}

	switch {
	case input.Description == "":
		violations.Add("description", "description is required")
	case utf8.RuneCountInString(input.Description) < descriptionMinLen:
		violations.Add("description", fmt.Sprintf("description must be at least %d characters", descriptionMinLen))
	}

	perms := make([]catalog.Permission, 0, len(input.Permissions))
	seen := make(map[catalog.Permission]struct{}, len(input.Permissions))
	for _, raw := range input.Permissions {
		p := catalog.Permission(raw)
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		if !catalog.Valid(p) {
			violations.Add("permissions", fmt.Sprintf("unknown permission %q", raw))
			continue
		}
		perms = append(perms, p)
	}
	if len(input.Permissions) == 0 {
		violations.Add("permissions", "at least one permission is required")
	}

	if !violations.Empty() {
		return nil, apperr.Validation(violations)
	}
	return perms, nil
}

func (s *roleService) observe(operation, outcome string) {
	if s.metrics != nil {
		s.metrics.RoleMutations.WithLabelValues(operation, outcome).Inc()
	}
}

func (s *roleService) recordAudit(ctx context.Context, action string, role *model.Role) {
	if s.audit == nil {
		return
	}

	details, _ := json.Marshal(map[string]any{
		"slug":        role.Slug,
		"permissions": role.Permissions,
	})

	entry := model.AuditEntry{
		ID:         uuid.NewString(),
		Action:     action,
		EntityID:   role.ID,
		EntityName: role.Name,
		Details:    string(details),
		CreatedAt:  s.now(),
	}

	if err := s.audit.Append(ctx, entry); err != nil {
		// The mutation already committed; losing a trail entry must not
		// fail the request.
		s.log.Warn("audit append failed", zap.String("action", action), zap.Error(err))
	}
}
