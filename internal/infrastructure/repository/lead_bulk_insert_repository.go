package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	domain "github.com/mafiaidola/leads-manager-sub001/internal/domain/lead"
)

// LeadBulkInsertRepository writes an import batch with pgx CopyFrom:
// one bulk insert for leads, one for their companion notes. The two
// inserts are not wrapped in a shared transaction across collections; a
// failure between them leaves leads without notes, which the caller
// treats as an accepted inconsistency window.
type LeadBulkInsertRepository struct {
	pool *pgxpool.Pool
}

func NewLeadBulkInsertRepository(pool *pgxpool.Pool) *LeadBulkInsertRepository {
	return &LeadBulkInsertRepository{pool: pool}
}

func (r *LeadBulkInsertRepository) InsertLeads(ctx context.Context, leads []domain.Lead) (int64, error) {
	if len(leads) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	rows := make([][]any, 0, len(leads))
	for _, l := range leads {
		rows = append(rows, []any{
			l.ID,
			l.Name,
			l.Email,
			l.Phone,
			l.Company,
			l.Position,
			l.Website,
			l.Source,
			l.Status,
			l.Product,
			l.Value,
			nullableText(l.AssignedTo),
			strings.Join(l.Tags, ","),
			l.Address,
			l.City,
			l.State,
			l.ZipCode,
			l.Country,
			l.DefaultLanguage,
			l.Description,
			now,
			now,
		})
	}

	inserted, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"leads"},
		[]string{
			"id", "name", "email", "phone", "company", "position", "website",
			"source", "status", "product", "value", "assigned_to", "tags",
			"address", "city", "state", "zip_code", "country",
			"default_language", "description", "created_at", "updated_at",
		},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, fmt.Errorf("copy leads: %w", err)
	}
	return inserted, nil
}

func (r *LeadBulkInsertRepository) InsertNotes(ctx context.Context, notes []domain.Note) error {
	if len(notes) == 0 {
		return nil
	}

	now := time.Now().UTC()
	rows := make([][]any, 0, len(notes))
	for _, n := range notes {
		rows = append(rows, []any{n.ID, n.LeadID, n.Body, n.System, nil, now})
	}

	if _, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"lead_notes"},
		[]string{"id", "lead_id", "body", "system", "author_id", "created_at"},
		pgx.CopyFromRows(rows),
	); err != nil {
		return fmt.Errorf("copy lead notes: %w", err)
	}
	return nil
}

func nullableText(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
