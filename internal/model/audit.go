package model

import "time"

const (
	ActionCreateRole = "CREATE_ROLE"
	ActionUpdateRole = "UPDATE_ROLE"
	ActionDeleteRole = "DELETE_ROLE"
)

// AuditEntry tracks What and When for critical ACL changes.
type AuditEntry struct {
	ID         string    `json:"id"`
	Action     string    `json:"action"`
	EntityID   string    `json:"entity_id"`
	EntityName string    `json:"entity_name"` // human readable name at time of action
	Details    string    `json:"details"`
	CreatedAt  time.Time `json:"created_at"`
}
