package lead

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domain "github.com/mafiaidola/leads-manager-sub001/internal/domain/lead"
	"github.com/mafiaidola/leads-manager-sub001/internal/tabular"
)

type identitySnapshotter interface {
	ListContactIdentities(ctx context.Context) ([]domain.ContactIdentity, error)
}

type assigneeDirectory interface {
	ListActiveAssignees(ctx context.Context) ([]domain.Assignee, error)
}

type bulkWriter interface {
	InsertLeads(ctx context.Context, leads []domain.Lead) (int64, error)
	InsertNotes(ctx context.Context, notes []domain.Note) error
}

type auditRecorder interface {
	Record(ctx context.Context, entry domain.AuditEntry) error
}

type listRevalidator interface {
	RevalidateLeads(ctx context.Context) error
}

type CommitImportInput struct {
	FileName string
	Data     []byte
	Mapping  map[string]string
	ActorID  string
}

type CommitImportOutput struct {
	ImportedCount  int        `json:"importedCount"`
	SkippedCount   int        `json:"skippedCount"`
	DuplicateCount int        `json:"duplicateCount"`
	Errors         []RowError `json:"errors"`
	ErrorsCSV      string     `json:"errorsCsv"`
}

type CommitImport interface {
	Execute(ctx context.Context, in CommitImportInput) (CommitImportOutput, error)
}

type commitImport struct {
	snapshots   identitySnapshotter
	assignees   assigneeDirectory
	writer      bulkWriter
	audit       auditRecorder
	revalidator listRevalidator
	logger      *zap.Logger
}

func NewCommitImport(
	snapshots identitySnapshotter,
	assignees assigneeDirectory,
	writer bulkWriter,
	audit auditRecorder,
	revalidator listRevalidator,
	logger *zap.Logger,
) CommitImport {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &commitImport{
		snapshots:   snapshots,
		assignees:   assignees,
		writer:      writer,
		audit:       audit,
		revalidator: revalidator,
		logger:      logger,
	}
}

// Execute runs the import as two phases: every row is classified in
// memory first, then the accepted candidates and their companion notes
// are written in one pass. Nothing touches storage until classification
// has finished, so a cancelled request leaves no partial batch behind.
func (uc *commitImport) Execute(ctx context.Context, in CommitImportInput) (CommitImportOutput, error) {
	mapping := make(domain.ColumnMapping, len(in.Mapping))
	for header, key := range in.Mapping {
		mapping[header] = domain.FieldKey(key)
	}
	if err := mapping.Validate(); err != nil {
		return CommitImportOutput{}, fmt.Errorf("%w: %v", ErrInvalidMapping, err)
	}

	csvText, err := tabular.NormalizeToCSV(in.Data, in.FileName)
	if err != nil {
		return CommitImportOutput{}, fmt.Errorf("%w: %v", ErrFileParse, err)
	}
	table, err := tabular.Parse(csvText)
	if err != nil {
		return CommitImportOutput{}, fmt.Errorf("%w: %v", ErrFileParse, err)
	}

	identities, err := uc.snapshots.ListContactIdentities(ctx)
	if err != nil {
		return CommitImportOutput{}, fmt.Errorf("%w: %v", ErrSnapshot, err)
	}
	index := domain.NewDuplicateIndex(identities)

	users, err := uc.assignees.ListActiveAssignees(ctx)
	if err != nil {
		return CommitImportOutput{}, fmt.Errorf("%w: %v", ErrSnapshot, err)
	}
	assigneeIndex := domain.NewAssigneeIndex(users)

	outcomes := make([]domain.RowOutcome, 0, len(table.Rows))
	candidates := make([]domain.Lead, 0, len(table.Rows))
	notes := make([]domain.Note, 0, len(table.Rows))

	// Rows are folded strictly in file order: the duplicate index is
	// mutated as rows are accepted, so the first occurrence of an
	// email or phone wins and later ones are duplicates.
	for i, row := range table.Rows {
		rowNumber := i + 2 // header line is row 1
		rec := projectRecord(table.Headers, row, mapping)
		name := strings.TrimSpace(rec[domain.FieldName])

		if name == "" {
			outcomes = append(outcomes, domain.RowOutcome{
				Row:    rowNumber,
				Kind:   domain.OutcomeSkippedMissingName,
				Reason: "Missing required field: Name",
			})
			continue
		}

		switch index.CheckAndAdd(rec[domain.FieldEmail], rec[domain.FieldPhone]) {
		case domain.VerdictDuplicateEmail:
			outcomes = append(outcomes, domain.RowOutcome{
				Row:    rowNumber,
				Kind:   domain.OutcomeDuplicateEmail,
				Name:   name,
				Reason: fmt.Sprintf("Duplicate email: %s", strings.TrimSpace(rec[domain.FieldEmail])),
			})
		case domain.VerdictDuplicatePhone:
			outcomes = append(outcomes, domain.RowOutcome{
				Row:    rowNumber,
				Kind:   domain.OutcomeDuplicatePhone,
				Name:   name,
				Reason: fmt.Sprintf("Duplicate phone: %s", strings.TrimSpace(rec[domain.FieldPhone])),
			})
		default:
			id := uuid.NewString()
			candidates = append(candidates, domain.NewImportedLead(id, rec, assigneeIndex))
			notes = append(notes, domain.NewImportNote(id))
			outcomes = append(outcomes, domain.RowOutcome{
				Row:  rowNumber,
				Kind: domain.OutcomeImported,
				Name: name,
			})
		}
	}

	if len(candidates) > 0 {
		if _, err := uc.writer.InsertLeads(ctx, candidates); err != nil {
			return CommitImportOutput{}, fmt.Errorf("%w: %v", ErrPersist, err)
		}
		// Leads and notes are two separate bulk inserts with no
		// cross-collection transaction; a failure here leaves leads
		// without their import notes.
		if err := uc.writer.InsertNotes(ctx, notes); err != nil {
			return CommitImportOutput{}, fmt.Errorf("%w: %v", ErrPersist, err)
		}
	}

	out := summarize(outcomes)

	entry := domain.AuditEntry{
		Action:     domain.AuditActionImport,
		EntityType: domain.AuditEntityLead,
		ActorID:    in.ActorID,
		Detail: fmt.Sprintf("Imported %d leads, skipped %d, duplicates %d",
			out.ImportedCount, out.SkippedCount, out.DuplicateCount),
	}
	if err := uc.audit.Record(ctx, entry); err != nil {
		uc.logger.Warn("record import audit entry failed", zap.Error(err))
	}

	if err := uc.revalidator.RevalidateLeads(ctx); err != nil {
		uc.logger.Warn("revalidate leads list failed", zap.Error(err))
	}

	uc.logger.Info("lead import completed",
		zap.String("file", in.FileName),
		zap.Int("imported", out.ImportedCount),
		zap.Int("skipped", out.SkippedCount),
		zap.Int("duplicates", out.DuplicateCount),
	)

	return out, nil
}

// projectRecord applies the committed mapping to one raw row. Headers
// are walked in file order, so when two columns map to the same field
// the first column wins. Skipped columns are dropped.
func projectRecord(headers []string, row map[string]string, mapping domain.ColumnMapping) domain.Record {
	rec := make(domain.Record, len(mapping))
	for _, header := range headers {
		key := mapping[header]
		if key == "" {
			continue
		}
		if _, taken := rec[key]; taken {
			continue
		}
		rec[key] = row[header]
	}
	return rec
}
