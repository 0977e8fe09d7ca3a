package repository

import (
	"context"
	"sync"

	"adminacl/internal/model"
)

// RoleRepository owns the authoritative collection of Role records.
// The context parameters keep the contract ready for a transactional
// backend; the in-memory implementation never blocks on them.
type RoleRepository interface {
	List(ctx context.Context) ([]model.Role, error)
	GetByID(ctx context.Context, id string) (*model.Role, error)
	GetBySlug(ctx context.Context, slug string) (*model.Role, error)
	Create(ctx context.Context, role *model.Role) error
	Update(ctx context.Context, role *model.Role) error
	Delete(ctx context.Context, id string) error
}

// roleRepository keeps roles in insertion order behind a single lock.
// Uniqueness checks and the matching insert/rename happen under the same
// write lock, so no interleaved writer can break the slug invariant.
type roleRepository struct {
	mu    sync.RWMutex
	roles []model.Role
}

// NewRoleRepository returns a store pre-seeded with the system roles.
func NewRoleRepository() RoleRepository {
	repo := &roleRepository{}
	repo.roles = seedSystemRoles()
	return repo
}

func (r *roleRepository) List(_ context.Context) ([]model.Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Role, 0, len(r.roles))
	for _, role := range r.roles {
		out = append(out, role.Clone())
	}
	return out, nil
}

func (r *roleRepository) GetByID(_ context.Context, id string) (*model.Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, role := range r.roles {
		if role.ID == id {
			clone := role.Clone()
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (r *roleRepository) GetBySlug(_ context.Context, slug string) (*model.Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, role := range r.roles {
		if role.Slug == slug {
			clone := role.Clone()
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (r *roleRepository) Create(_ context.Context, role *model.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.roles {
		if existing.Slug == role.Slug {
			return ErrSlugTaken
		}
	}

	r.roles = append(r.roles, role.Clone())
	return nil
}

// Update replaces the editable surface (name, slug, description,
// permissions, updated-at) of the record matching role.ID. The stored
// ID, system flag and creation time always win over the passed values.
func (r *roleRepository) Update(_ context.Context, role *model.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, existing := range r.roles {
		if existing.ID == role.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}

	existing := &r.roles[idx]
	if existing.IsSystem && existing.Slug != role.Slug {
		return ErrSystemSlug
	}

	for i, other := range r.roles {
		if i != idx && other.Slug == role.Slug {
			return ErrSlugTaken
		}
	}

	clone := role.Clone()
	existing.Name = clone.Name
	existing.Slug = clone.Slug
	existing.Description = clone.Description
	existing.Permissions = clone.Permissions
	existing.UpdatedAt = clone.UpdatedAt
	return nil
}

func (r *roleRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.roles {
		if existing.ID != id {
			continue
		}
		if existing.IsSystem {
			return ErrSystemRole
		}
		r.roles = append(r.roles[:i], r.roles[i+1:]...)
		return nil
	}
	return ErrNotFound
}
