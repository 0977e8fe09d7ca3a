package model

import (
	"time"

	"adminacl/internal/catalog"
)

// Role is a named, sluggable bundle of permissions assignable to users.
type Role struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Slug        string               `json:"slug"` // stable external reference, unique across all roles
	Description string               `json:"description"`
	Permissions []catalog.Permission `json:"permissions"`
	IsSystem    bool                 `json:"is_system"` // system roles cannot be deleted or re-slugged
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// Clone returns a deep copy so store internals never leak to callers.
func (r Role) Clone() Role {
	out := r
	out.Permissions = make([]catalog.Permission, len(r.Permissions))
	copy(out.Permissions, r.Permissions)
	return out
}
