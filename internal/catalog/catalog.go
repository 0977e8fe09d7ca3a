package catalog

import "fmt"

// Permission identifies a single capability the console can gate on.
// The set is closed: permissions are compiled into the catalog and never
// created or destroyed at runtime.
type Permission string

const (
	UsersView   Permission = "users.view"
	UsersCreate Permission = "users.create"
	UsersEdit   Permission = "users.edit"
	UsersDelete Permission = "users.delete"

	PartnersView   Permission = "partners.view"
	PartnersCreate Permission = "partners.create"
	PartnersEdit   Permission = "partners.edit"
	PartnersDelete Permission = "partners.delete"

	AuditLogsView   Permission = "audit_logs.view"
	AuditLogsExport Permission = "audit_logs.export"

	SettingsView Permission = "settings.view"
	SettingsEdit Permission = "settings.edit"

	ReportsView   Permission = "reports.view"
	ReportsExport Permission = "reports.export"

	APIKeysView   Permission = "api_keys.view"
	APIKeysCreate Permission = "api_keys.create"
	APIKeysRevoke Permission = "api_keys.revoke"
)

// Group is a display category of related permissions. Groups are static
// configuration, read-only for the lifetime of the process.
type Group struct {
	Category    string       `json:"category"`
	Label       string       `json:"label"`
	Description string       `json:"description"`
	Permissions []Permission `json:"permissions"`
}

var groups = []Group{
	{
		Category:    "users",
		Label:       "User Management",
		Description: "Create, update and remove console user accounts",
		Permissions: []Permission{UsersView, UsersCreate, UsersEdit, UsersDelete},
	},
	{
		Category:    "partners",
		Label:       "Partner Management",
		Description: "Manage partner records and their campaign assignments",
		Permissions: []Permission{PartnersView, PartnersCreate, PartnersEdit, PartnersDelete},
	},
	{
		Category:    "audit_logs",
		Label:       "Audit Logs",
		Description: "Inspect and export the activity trail",
		Permissions: []Permission{AuditLogsView, AuditLogsExport},
	},
	{
		Category:    "settings",
		Label:       "Settings",
		Description: "View and change console-wide configuration",
		Permissions: []Permission{SettingsView, SettingsEdit},
	},
	{
		Category:    "reports",
		Label:       "Reports",
		Description: "View and export performance reports",
		Permissions: []Permission{ReportsView, ReportsExport},
	},
	{
		Category:    "api_keys",
		Label:       "API Keys",
		Description: "Issue and revoke partner API credentials",
		Permissions: []Permission{APIKeysView, APIKeysCreate, APIKeysRevoke},
	},
}

var labels = map[Permission]string{
	UsersView:   "View users",
	UsersCreate: "Create users",
	UsersEdit:   "Edit users",
	UsersDelete: "Delete users",

	PartnersView:   "View partners",
	PartnersCreate: "Create partners",
	PartnersEdit:   "Edit partners",
	PartnersDelete: "Delete partners",

	AuditLogsView:   "View audit logs",
	AuditLogsExport: "Export audit logs",

	SettingsView: "View settings",
	SettingsEdit: "Edit settings",

	ReportsView:   "View reports",
	ReportsExport: "Export reports",

	APIKeysView:   "View API keys",
	APIKeysCreate: "Create API keys",
	APIKeysRevoke: "Revoke API keys",
}

// ListGroups returns the static permission groups in display order.
// The result is a fresh slice so callers cannot reorder the catalog,
// though the group contents themselves are shared and must be treated
// as read-only.
func ListGroups() []Group {
	out := make([]Group, len(groups))
	copy(out, groups)
	return out
}

// All returns every permission in the catalog in group order.
func All() []Permission {
	var out []Permission
	for _, g := range groups {
		out = append(out, g.Permissions...)
	}
	return out
}

// Valid reports whether p is part of the catalog.
func Valid(p Permission) bool {
	_, ok := labels[p]
	return ok
}

// LabelOf returns the display label for a catalog permission. An unknown
// identifier indicates a data-integrity bug elsewhere, so it panics rather
// than returning an empty string.
func LabelOf(p Permission) string {
	label, ok := labels[p]
	if !ok {
		panic(fmt.Sprintf("catalog: unknown permission %q", p))
	}
	return label
}
