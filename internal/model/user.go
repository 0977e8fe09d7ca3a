package model

import "time"

// User is the raw directory record owned by the external Users
// collaborator. This module never mutates users; it only reads them to
// build the role projection.
type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Role         string     `json:"role"` // role slug, joined against Role.Slug
	Status       string     `json:"status"`
	Department   string     `json:"department"`
	Location     string     `json:"location"`
	PartnerCount int        `json:"partner_count"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// UserWithRole decorates a directory record with the role's display name.
// Computed fresh on every request; owns no state.
type UserWithRole struct {
	User
	RoleName string `json:"role_name"`
}
