package store

import (
	"context"

	"safarsaathi/models"
)

// LeadStore persists leads to the backend row store. Usage is insert-only:
// the landing page never reads, updates or deletes rows, so the interface
// stays narrow and easy to fake in tests.
type LeadStore interface {
	// CreateLead inserts exactly one row and returns the persisted lead
	// with the server-assigned ID and CreatedAt. A failed insert returns
	// a *models.PersistenceError. There is no automatic retry and no
	// idempotency key: submitting the same payload twice makes two rows.
	CreateLead(ctx context.Context, lead *models.Lead) (*models.Lead, error)
}
