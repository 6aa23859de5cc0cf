package store

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"safarsaathi/models"
)

// PostgresStore writes leads straight into our own Postgres database. Used
// by self-hosted deployments that skip the hosted row store.
type PostgresStore struct {
	DB *gorm.DB
}

func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{DB: db}
}

func (p *PostgresStore) CreateLead(ctx context.Context, lead *models.Lead) (*models.Lead, error) {
	created := *lead
	// Mirror the hosted store's uuid primary keys.
	created.ID = uuid.NewString()

	if err := p.DB.WithContext(ctx).Create(&created).Error; err != nil {
		return nil, &models.PersistenceError{
			Message: err.Error(),
			Code:    "insert_failed",
		}
	}
	return &created, nil
}
