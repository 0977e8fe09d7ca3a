package service

import (
	"context"
	"reflect"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"adminacl/internal/catalog"
	"adminacl/internal/model"
	"adminacl/internal/repository"
	"adminacl/pkg/apperr"
)

// fakeClock advances one second per Now call so updated-at comparisons
// are strict without sleeping.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func newTestService(t *testing.T) (RoleService, repository.AuditRepository) {
	t.Helper()

	repo := repository.NewRoleRepository()
	audit := repository.NewAuditRepository()
	svc := NewRoleService(repo, audit, zaptest.NewLogger(t), nil).(*roleService)
	svc.now = (&fakeClock{t: time.Now().UTC()}).Now
	return svc, audit
}

func validInput() RoleInput {
	return RoleInput{
		Name:        "QA",
		Slug:        "qa",
		Description: "Quality assurance team role",
		Permissions: []string{"reports.view"},
	}
}

func roleBySlug(t *testing.T, svc RoleService, slug string) model.Role {
	t.Helper()
	role, err := svc.GetRoleBySlug(context.Background(), slug)
	if err != nil {
		t.Fatalf("GetRoleBySlug(%q): %v", slug, err)
	}
	return *role
}

func requireCode(t *testing.T, err error, code apperr.Code) *apperr.Error {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", code)
	}
	appErr, ok := apperr.From(err)
	if !ok {
		t.Fatalf("expected structured error, got %v", err)
	}
	if appErr.Code != code {
		t.Fatalf("expected code %s, got %s (%v)", code, appErr.Code, err)
	}
	return appErr
}

func TestCreateRoleRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateRole(ctx, validInput())
	if err != nil {
		t.Fatalf("CreateRole: %v", err)
	}
	if created.ID == "" {
		t.Error("expected assigned id")
	}
	if created.IsSystem {
		t.Error("custom role must not be a system role")
	}
	if !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Errorf("expected createdAt == updatedAt, got %v / %v", created.CreatedAt, created.UpdatedAt)
	}

	fetched, err := svc.GetRole(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetRole: %v", err)
	}
	if fetched.Name != "QA" || fetched.Slug != "qa" || fetched.Description != "Quality assurance team role" {
		t.Errorf("round trip mismatch: %+v", fetched)
	}
	if !reflect.DeepEqual(fetched.Permissions, []catalog.Permission{catalog.ReportsView}) {
		t.Errorf("unexpected permissions: %v", fetched.Permissions)
	}

	roles, err := svc.ListRoles(ctx)
	if err != nil {
		t.Fatalf("ListRoles: %v", err)
	}
	if len(roles) != 5 {
		t.Errorf("expected 5 roles after create, got %d", len(roles))
	}

	if got := roleBySlug(t, svc, "qa"); got.ID != created.ID {
		t.Errorf("GetRoleBySlug returned different role: %q vs %q", got.ID, created.ID)
	}
}

func TestCreateRoleValidation(t *testing.T) {
	cases := []struct {
		name       string
		mutate     func(*RoleInput)
		wantFields []string
	}{
		{
			name:       "all fields missing",
			mutate:     func(in *RoleInput) { *in = RoleInput{} },
			wantFields: []string{"name", "slug", "description", "permissions"},
		},
		{
			name:       "name too short",
			mutate:     func(in *RoleInput) { in.Name = "Q" },
			wantFields: []string{"name"},
		},
		{
			name:       "slug too short",
			mutate:     func(in *RoleInput) { in.Slug = "q" },
			wantFields: []string{"slug"},
		},
		{
			name:       "slug too long",
			mutate:     func(in *RoleInput) { in.Slug = strings.Repeat("a", 51) },
			wantFields: []string{"slug"},
		},
		{
			name:       "slug uppercase",
			mutate:     func(in *RoleInput) { in.Slug = "QA" },
			wantFields: []string{"slug"},
		},
		{
			name:       "slug starts with digit",
			mutate:     func(in *RoleInput) { in.Slug = "1qa" },
			wantFields: []string{"slug"},
		},
		{
			name:       "description too short",
			mutate:     func(in *RoleInput) { in.Description = "short" },
			wantFields: []string{"description"},
		},
		{
			name:       "permissions empty",
			mutate:     func(in *RoleInput) { in.Permissions = nil },
			wantFields: []string{"permissions"},
		},
		{
			name:       "permission outside catalog",
			mutate:     func(in *RoleInput) { in.Permissions = []string{"campaigns.launch"} },
			wantFields: []string{"permissions"},
		},
		{
			name: "violations collected across fields",
			mutate: func(in *RoleInput) {
				in.Name = "Q"
				in.Description = "short"
			},
			wantFields: []string{"name", "description"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newTestService(t)
			ctx := context.Background()

			input := validInput()
			tc.mutate(&input)

			_, err := svc.CreateRole(ctx, input)
			appErr := requireCode(t, err, apperr.CodeValidation)

			for _, field := range tc.wantFields {
				if len(appErr.Fields[field]) == 0 {
					t.Errorf("expected violation on field %q, got %v", field, appErr.Fields)
				}
			}

			roles, err := svc.ListRoles(ctx)
			if err != nil {
				t.Fatalf("ListRoles: %v", err)
			}
			if len(roles) != 4 {
				t.Errorf("rejected create must leave the store unchanged, got %d roles", len(roles))
			}
		})
	}
}

func TestCreateRoleDeduplicatesPermissions(t *testing.T) {
	svc, _ := newTestService(t)

	input := validInput()
	input.Permissions = []string{"reports.view", "reports.view", "partners.view"}

	created, err := svc.CreateRole(context.Background(), input)
	if err != nil {
		t.Fatalf("CreateRole: %v", err)
	}
	want := []catalog.Permission{catalog.ReportsView, catalog.PartnersView}
	if !reflect.DeepEqual(created.Permissions, want) {
		t.Errorf("expected deduplicated permissions %v, got %v", want, created.Permissions)
	}
}

func TestCreateRoleSlugConflict(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	input := validInput()
	input.Name = "Dup"
	input.Slug = "admin"
	input.Description = "Should collide with system role"

	_, err := svc.CreateRole(ctx, input)
	appErr := requireCode(t, err, apperr.CodeConflict)
	if len(appErr.Fields["slug"]) == 0 {
		t.Errorf("expected conflict keyed to slug, got %v", appErr.Fields)
	}

	roles, _ := svc.ListRoles(ctx)
	if len(roles) != 4 {
		t.Errorf("conflicting create must leave the store unchanged, got %d roles", len(roles))
	}
}

func TestUpdateRoleSystemSlugForbidden(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	admin := roleBySlug(t, svc, "admin")

	input := RoleInput{
		Name:        admin.Name,
		Slug:        "superadmin",
		Description: admin.Description,
		Permissions: []string{"users.view"},
	}

	_, err := svc.UpdateRole(ctx, admin.ID, input)
	appErr := requireCode(t, err, apperr.CodeForbidden)
	if len(appErr.Fields["slug"]) == 0 {
		t.Errorf("expected forbidden keyed to slug, got %v", appErr.Fields)
	}

	if after := roleBySlug(t, svc, "admin"); after.UpdatedAt != admin.UpdatedAt {
		t.Error("forbidden update must leave the role unchanged")
	}
}

func TestUpdateRoleSystemSlugGuardPrecedesValidation(t *testing.T) {
	svc, _ := newTestService(t)
	admin := roleBySlug(t, svc, "admin")

	// Invalid description as well, but the slug guard must win.
	input := RoleInput{Name: admin.Name, Slug: "superadmin", Description: "short"}

	_, err := svc.UpdateRole(context.Background(), admin.ID, input)
	requireCode(t, err, apperr.CodeForbidden)
}

func TestUpdateRoleSystemSameSlug(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	admin := roleBySlug(t, svc, "admin")

	input := RoleInput{
		Name:        "Super Administrator",
		Slug:        "admin",
		Description: "Renamed but still the root system role",
		Permissions: []string{"users.view", "users.create"},
	}

	updated, err := svc.UpdateRole(ctx, admin.ID, input)
	if err != nil {
		t.Fatalf("UpdateRole: %v", err)
	}
	if updated.Name != "Super Administrator" {
		t.Errorf("expected renamed role, got %q", updated.Name)
	}
	if !updated.IsSystem {
		t.Error("system flag must be preserved")
	}
	if updated.ID != admin.ID {
		t.Error("id must be preserved")
	}
	if !updated.CreatedAt.Equal(admin.CreatedAt) {
		t.Error("createdAt must be preserved")
	}
	if !updated.UpdatedAt.After(admin.UpdatedAt) {
		t.Errorf("updatedAt must strictly increase: %v -> %v", admin.UpdatedAt, updated.UpdatedAt)
	}
}

func TestUpdateRoleRefreshesUpdatedAt(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateRole(ctx, validInput())
	if err != nil {
		t.Fatalf("CreateRole: %v", err)
	}

	input := validInput()
	input.Description = "Quality assurance role with a new description"

	updated, err := svc.UpdateRole(ctx, created.ID, input)
	if err != nil {
		t.Fatalf("UpdateRole: %v", err)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Errorf("updatedAt must strictly increase: %v -> %v", created.UpdatedAt, updated.UpdatedAt)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("createdAt must be preserved across updates")
	}
}

func TestUpdateRoleNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UpdateRole(context.Background(), "role-does-not-exist", validInput())
	requireCode(t, err, apperr.CodeNotFound)
}

func TestUpdateRoleSlugConflict(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateRole(ctx, validInput())
	if err != nil {
		t.Fatalf("CreateRole: %v", err)
	}

	input := validInput()
	input.Slug = "viewer"

	_, err = svc.UpdateRole(ctx, created.ID, input)
	appErr := requireCode(t, err, apperr.CodeConflict)
	if len(appErr.Fields["slug"]) == 0 {
		t.Errorf("expected conflict keyed to slug, got %v", appErr.Fields)
	}
}

func TestUpdateRoleValidationLeavesStoreUnchanged(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateRole(ctx, validInput())
	if err != nil {
		t.Fatalf("CreateRole: %v", err)
	}

	input := validInput()
	input.Permissions = nil

	_, err = svc.UpdateRole(ctx, created.ID, input)
	appErr := requireCode(t, err, apperr.CodeValidation)
	if len(appErr.Fields["permissions"]) == 0 {
		t.Errorf("expected violation on permissions, got %v", appErr.Fields)
	}

	after, err := svc.GetRole(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetRole: %v", err)
	}
	if !reflect.DeepEqual(*after, *created) {
		t.Errorf("rejected update must leave the role unchanged:\nbefore %+v\nafter  %+v", *created, *after)
	}
}

func TestDeleteRole(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	t.Run("system role forbidden", func(t *testing.T) {
		admin := roleBySlug(t, svc, "admin")
		requireCode(t, svc.DeleteRole(ctx, admin.ID), apperr.CodeForbidden)
	})

	t.Run("missing role not found", func(t *testing.T) {
		requireCode(t, svc.DeleteRole(ctx, "role-does-not-exist"), apperr.CodeNotFound)
	})

	t.Run("custom role removed", func(t *testing.T) {
		created, err := svc.CreateRole(ctx, validInput())
		if err != nil {
			t.Fatalf("CreateRole: %v", err)
		}
		if err := svc.DeleteRole(ctx, created.ID); err != nil {
			t.Fatalf("DeleteRole: %v", err)
		}
		_, err = svc.GetRole(ctx, created.ID)
		requireCode(t, err, apperr.CodeNotFound)

		roles, _ := svc.ListRoles(ctx)
		if len(roles) != 4 {
			t.Errorf("expected 4 roles after delete, got %d", len(roles))
		}
	})
}

func TestListRolesIdempotent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.ListRoles(ctx)
	if err != nil {
		t.Fatalf("ListRoles: %v", err)
	}
	second, err := svc.ListRoles(ctx)
	if err != nil {
		t.Fatalf("ListRoles: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("consecutive reads without writes must be deep-equal")
	}
}

func TestMutationsRecordAuditTrail(t *testing.T) {
	svc, audit := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateRole(ctx, validInput())
	if err != nil {
		t.Fatalf("CreateRole: %v", err)
	}

	input := validInput()
	input.Name = "QA Team"
	if _, err := svc.UpdateRole(ctx, created.ID, input); err != nil {
		t.Fatalf("UpdateRole: %v", err)
	}
	if err := svc.DeleteRole(ctx, created.ID); err != nil {
		t.Fatalf("DeleteRole: %v", err)
	}

	entries, err := audit.List(ctx)
	if err != nil {
		t.Fatalf("audit List: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 audit entries, got %d", len(entries))
	}
	// Newest first.
	for i, action := range []string{model.ActionDeleteRole, model.ActionUpdateRole, model.ActionCreateRole} {
		if entries[i].Action != action {
			t.Errorf("entry %d: expected action %q, got %q", i, action, entries[i].Action)
		}
		if entries[i].EntityID != created.ID {
			t.Errorf("entry %d: expected entity %q, got %q", i, created.ID, entries[i].EntityID)
		}
	}
}

func TestListPermissionGroups(t *testing.T) {
	svc, _ := newTestService(t)

	groups := svc.ListPermissionGroups(context.Background())
	if len(groups) != 6 {
		t.Errorf("expected 6 permission groups, got %d", len(groups))
	}
}
