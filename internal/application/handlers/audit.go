package handlers

import (
	"context"
	"fmt"

	"github.com/jkeenum/kindred-core/internal/domain/entities"
	"github.com/jkeenum/kindred-core/internal/domain/ports"
)

// AuditHandler handles audit log queries.
type AuditHandler struct {
	store ports.Store
}

// NewAuditHandler creates a new audit handler.
func NewAuditHandler(store ports.Store) *AuditHandler {
	return &AuditHandler{store: store}
}

// HandleForPerson returns the audit entries recorded against a person.
func (h *AuditHandler) HandleForPerson(ctx context.Context, personID int64) ([]entities.AuditEntry, error) {
	entries, err := h.store.FindAuditLog(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("finding audit log: %w", err)
	}
	return entries, nil
}

// HandleByAction returns the most recent audit entries for an action type.
func (h *AuditHandler) HandleByAction(ctx context.Context, action string, limit int) ([]entities.AuditEntry, error) {
	entries, err := h.store.FindAuditLogByAction(ctx, action, limit)
	if err != nil {
		return nil, fmt.Errorf("finding audit log: %w", err)
	}
	return entries, nil
}
