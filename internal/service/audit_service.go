package service

import (
	"context"
	"fmt"

	"adminacl/internal/model"
	"adminacl/internal/repository"
)

// AuditService lists the trail of ACL mutations, newest first.
type AuditService interface {
	ListEntries(ctx context.Context) ([]model.AuditEntry, error)
}

type auditService struct {
	repo repository.AuditRepository
}

// NewAuditService creates a new AuditService instance.
func NewAuditService(repo repository.AuditRepository) AuditService {
	return &auditService{repo: repo}
}

func (s *auditService) ListEntries(ctx context.Context) ([]model.AuditEntry, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	return entries, nil
}
