package directory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"adminacl/internal/model"
)

// StaticDirectory is a seeded stand-in for the external Users
// collaborator. The real console owns user records elsewhere; this
// implementation exists so the binary can serve the role projection.
type StaticDirectory struct {
	users []model.User
}

// NewStatic returns a directory seeded with a representative set of
// console users referencing the system role slugs.
func NewStatic() *StaticDirectory {
	now := time.Now().UTC()
	lastWeek := now.Add(-7 * 24 * time.Hour)

	return &StaticDirectory{users: []model.User{
		{
			ID: uuid.NewString(), Name: "Sarah Chen", Email: "sarah.chen@example.com",
			Role: "admin", Status: "active", Department: "Platform", Location: "Singapore",
			PartnerCount: 0, LastLogin: &now, CreatedAt: now.Add(-400 * 24 * time.Hour),
		},
		{
			ID: uuid.NewString(), Name: "Marcus Webb", Email: "marcus.webb@example.com",
			Role: "manager", Status: "active", Department: "Ad Operations", Location: "London",
			PartnerCount: 14, LastLogin: &now, CreatedAt: now.Add(-300 * 24 * time.Hour),
		},
		{
			ID: uuid.NewString(), Name: "Priya Nair", Email: "priya.nair@example.com",
			Role: "user", Status: "active", Department: "Partnerships", Location: "Bengaluru",
			PartnerCount: 22, LastLogin: &lastWeek, CreatedAt: now.Add(-200 * 24 * time.Hour),
		},
		{
			ID: uuid.NewString(), Name: "Tomás Rivera", Email: "tomas.rivera@example.com",
			Role: "user", Status: "suspended", Department: "Partnerships", Location: "Madrid",
			PartnerCount: 8, LastLogin: nil, CreatedAt: now.Add(-150 * 24 * time.Hour),
		},
		{
			ID: uuid.NewString(), Name: "Alex Morgan", Email: "alex.morgan@example.com",
			Role: "viewer", Status: "active", Department: "Finance", Location: "New York",
			PartnerCount: 0, LastLogin: &lastWeek, CreatedAt: now.Add(-90 * 24 * time.Hour),
		},
	}}
}

// ListUsers returns copies of the seeded records.
func (d *StaticDirectory) ListUsers(_ context.Context) ([]model.User, error) {
	out := make([]model.User, len(d.users))
	copy(out, d.users)
	return out, nil
}
