package lead

import (
	"encoding/csv"
	"strconv"
	"strings"

	domain "github.com/mafiaidola/leads-manager-sub001/internal/domain/lead"
)

// maxDisplayedErrors caps the row-error list returned for display; the
// downloadable CSV always carries every failed row.
const maxDisplayedErrors = 50

// RowError is one failed row rendered for the caller.
type RowError struct {
	Row    int    `json:"row"`
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

func summarize(outcomes []domain.RowOutcome) CommitImportOutput {
	out := CommitImportOutput{Errors: []RowError{}}

	failed := make([]domain.RowOutcome, 0, len(outcomes))
	for _, o := range outcomes {
		switch o.Kind {
		case domain.OutcomeImported:
			out.ImportedCount++
			continue
		case domain.OutcomeSkippedMissingName:
			out.SkippedCount++
		case domain.OutcomeDuplicateEmail, domain.OutcomeDuplicatePhone:
			out.DuplicateCount++
		}
		failed = append(failed, o)
	}

	for i, o := range failed {
		if i == maxDisplayedErrors {
			break
		}
		out.Errors = append(out.Errors, RowError{
			Row:    o.Row,
			Name:   displayName(o.Name),
			Reason: o.Reason,
		})
	}

	out.ErrorsCSV = errorsCSV(failed)
	return out
}

func errorsCSV(failed []domain.RowOutcome) string {
	var b strings.Builder
	w := csv.NewWriter(&b)
	_ = w.Write([]string{"Row", "Name", "Reason"})
	for _, o := range failed {
		_ = w.Write([]string{strconv.Itoa(o.Row), displayName(o.Name), o.Reason})
	}
	w.Flush()
	return b.String()
}

func displayName(name string) string {
	if name == "" {
		return "(empty)"
	}
	return name
}
