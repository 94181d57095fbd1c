package repository

import (
	"context"
	"fmt"

	domain "github.com/mafiaidola/leads-manager-sub001/internal/domain/lead"
	"github.com/mafiaidola/leads-manager-sub001/internal/infrastructure/db/models"
	"gorm.io/gorm"
)

// LeadSnapshotRepository reads the contact identities of every
// non-deleted lead, used to seed the duplicate index at the start of an
// import. Soft-deleted leads are excluded by gorm's DeletedAt handling.
type LeadSnapshotRepository struct {
	db *gorm.DB
}

func NewLeadSnapshotRepository(db *gorm.DB) *LeadSnapshotRepository {
	return &LeadSnapshotRepository{db: db}
}

func (r *LeadSnapshotRepository) ListContactIdentities(ctx context.Context) ([]domain.ContactIdentity, error) {
	var rows []struct {
		Email string
		Phone string
	}

	err := r.db.WithContext(ctx).
		Model(&models.Lead{}).
		Select("email", "phone").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list contact identities: %w", err)
	}

	identities := make([]domain.ContactIdentity, 0, len(rows))
	for _, row := range rows {
		identities = append(identities, domain.ContactIdentity{
			Email: row.Email,
			Phone: row.Phone,
		})
	}
	return identities, nil
}
