package repository

import (
	"context"
	"fmt"

	domain "github.com/mafiaidola/leads-manager-sub001/internal/domain/lead"
	"github.com/mafiaidola/leads-manager-sub001/internal/infrastructure/db/models"
	"gorm.io/gorm"
)

type AuditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

func (r *AuditLogRepository) Record(ctx context.Context, entry domain.AuditEntry) error {
	row := models.AuditLog{
		Action:     entry.Action,
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		ActorID:    nullableText(entry.ActorID),
		Detail:     entry.Detail,
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("create audit log entry: %w", err)
	}
	return nil
}
