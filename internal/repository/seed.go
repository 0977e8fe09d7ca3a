package repository

import (
	"time"

	"github.com/google/uuid"

	"adminacl/internal/catalog"
	"adminacl/internal/model"
)

// systemRoleSeeds defines the four bootstrap roles. Their slugs and
// existence are protected for the lifetime of the process.
var systemRoleSeeds = []struct {
	Name        string
	Slug        string
	Description string
	Permissions []catalog.Permission
}{
	{
		Name:        "Administrator",
		Slug:        "admin",
		Description: "Full access to every area of the console, including role and API key management",
		Permissions: catalog.All(),
	},
	{
		Name:        "Manager",
		Slug:        "manager",
		Description: "Day-to-day partner and user management without destructive or credential operations",
		Permissions: []catalog.Permission{
			catalog.UsersView, catalog.UsersCreate, catalog.UsersEdit,
			catalog.PartnersView, catalog.PartnersCreate, catalog.PartnersEdit,
			catalog.AuditLogsView,
			catalog.SettingsView,
			catalog.ReportsView, catalog.ReportsExport,
			catalog.APIKeysView,
		},
	},
	{
		Name:        "Standard User",
		Slug:        "user",
		Description: "Works with partner records and reports assigned to their team",
		Permissions: []catalog.Permission{
			catalog.PartnersView, catalog.PartnersEdit,
			catalog.ReportsView,
			catalog.SettingsView,
		},
	},
	{
		Name:        "Viewer",
		Slug:        "viewer",
		Description: "Read-only access to partners and reports for stakeholders",
		Permissions: []catalog.Permission{
			catalog.PartnersView,
			catalog.ReportsView,
		},
	},
}

func seedSystemRoles() []model.Role {
	now := time.Now().UTC()
	roles := make([]model.Role, 0, len(systemRoleSeeds))
	for _, seed := range systemRoleSeeds {
		perms := make([]catalog.Permission, len(seed.Permissions))
		copy(perms, seed.Permissions)
		roles = append(roles, model.Role{
			ID:          uuid.NewString(),
			Name:        seed.Name,
			Slug:        seed.Slug,
			Description: seed.Description,
			Permissions: perms,
			IsSystem:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	return roles
}
