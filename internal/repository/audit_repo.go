package repository

import (
	"context"
	"sync"

	"adminacl/internal/model"
)

// AuditRepository stores the trail of ACL mutations.
type AuditRepository interface {
	Append(ctx context.Context, entry model.AuditEntry) error
	List(ctx context.Context) ([]model.AuditEntry, error)
}

type auditRepository struct {
	mu      sync.RWMutex
	entries []model.AuditEntry
}

// NewAuditRepository returns an empty in-memory audit trail.
func NewAuditRepository() AuditRepository {
	return &auditRepository{}
}

func (r *auditRepository) Append(_ context.Context, entry model.AuditEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return nil
}

// List returns entries newest first.
func (r *auditRepository) List(_ context.Context) ([]model.AuditEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.AuditEntry, 0, len(r.entries))
	for i := len(r.entries) - 1; i >= 0; i-- {
		out = append(out, r.entries[i])
	}
	return out, nil
}
