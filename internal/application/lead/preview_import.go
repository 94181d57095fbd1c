package lead

import (
	"context"
	"fmt"

	domain "github.com/mafiaidola/leads-manager-sub001/internal/domain/lead"
	"github.com/mafiaidola/leads-manager-sub001/internal/tabular"
)

const previewRowLimit = 5

type PreviewImportInput struct {
	FileName string
	Data     []byte
}

type PreviewImportOutput struct {
	Headers          []string            `json:"headers"`
	Preview          []map[string]string `json:"preview"`
	TotalRows        int                 `json:"totalRows"`
	SuggestedMapping map[string]string   `json:"suggestedMapping"`
}

type PreviewImport interface {
	Execute(ctx context.Context, in PreviewImportInput) (PreviewImportOutput, error)
}

type previewImport struct{}

func NewPreviewImport() PreviewImport {
	return &previewImport{}
}

func (uc *previewImport) Execute(ctx context.Context, in PreviewImportInput) (PreviewImportOutput, error) {
	csvText, err := tabular.NormalizeToCSV(in.Data, in.FileName)
	if err != nil {
		return PreviewImportOutput{}, fmt.Errorf("%w: %v", ErrFileParse, err)
	}

	preview, err := tabular.PreviewTable(csvText, previewRowLimit)
	if err != nil {
		return PreviewImportOutput{}, fmt.Errorf("%w: %v", ErrFileParse, err)
	}

	suggested := make(map[string]string, len(preview.Headers))
	for header, key := range domain.AutoMap(preview.Headers) {
		suggested[header] = string(key)
	}

	return PreviewImportOutput{
		Headers:          preview.Headers,
		Preview:          preview.Rows,
		TotalRows:        preview.TotalRows,
		SuggestedMapping: suggested,
	}, nil
}
