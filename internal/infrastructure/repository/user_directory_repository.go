package repository

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/mafiaidola/leads-manager-sub001/internal/domain/lead"
	"github.com/mafiaidola/leads-manager-sub001/internal/infrastructure/db/models"
	"gorm.io/gorm"
)

// UserDirectoryRepository serves two lookups over the users table: the
// active-user index for assignee resolution, and token resolution for
// the admin gate on the import endpoints.
type UserDirectoryRepository struct {
	db *gorm.DB
}

func NewUserDirectoryRepository(db *gorm.DB) *UserDirectoryRepository {
	return &UserDirectoryRepository{db: db}
}

func (r *UserDirectoryRepository) ListActiveAssignees(ctx context.Context) ([]domain.Assignee, error) {
	var rows []models.User

	err := r.db.WithContext(ctx).
		Select("id", "email").
		Where("active = ?", true).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list active assignees: %w", err)
	}

	assignees := make([]domain.Assignee, 0, len(rows))
	for _, row := range rows {
		assignees = append(assignees, domain.Assignee{ID: row.ID, Email: row.Email})
	}
	return assignees, nil
}

func (r *UserDirectoryRepository) ResolveToken(ctx context.Context, token string) (domain.Actor, error) {
	var row models.User

	err := r.db.WithContext(ctx).
		Where("api_token = ? AND active = ?", token, true).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Actor{}, domain.ErrUnknownActor
		}
		return domain.Actor{}, fmt.Errorf("resolve token: %w", err)
	}

	return domain.Actor{ID: row.ID, Name: row.Name, Role: row.Role}, nil
}
