package tabular_test

import (
	"errors"
	"testing"

	"github.com/mafiaidola/leads-manager-sub001/internal/tabular"
)

func TestParseSkipsEmptyRows(t *testing.T) {
	t.Parallel()

	table, err := tabular.Parse("name,email\nAda,ada@x.com\n,\n\" \",\nBob,bob@x.com\n")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table.Rows))
	}
	if table.Rows[1]["name"] != "Bob" {
		t.Fatalf("unexpected second row: %#v", table.Rows[1])
	}
}

func TestParsePadsShortRows(t *testing.T) {
	t.Parallel()

	table, err := tabular.Parse("name,email,phone\nAda\n")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	row := table.Rows[0]
	if row["email"] != "" || row["phone"] != "" {
		t.Fatalf("expected padded cells, got %#v", row)
	}
}

func TestParseDuplicateHeaderFirstColumnWins(t *testing.T) {
	t.Parallel()

	table, err := tabular.Parse("name,name\nAda,Bob\n")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got := table.Rows[0]["name"]; got != "Ada" {
		t.Fatalf("expected first column to win, got %q", got)
	}
}

func TestParseStripsBOM(t *testing.T) {
	t.Parallel()

	table, err := tabular.Parse("\ufeffname,email\nAda,ada@x.com\n")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if table.Headers[0] != "name" {
		t.Fatalf("unexpected first header: %q", table.Headers[0])
	}
}

func TestParseMalformedCSV(t *testing.T) {
	t.Parallel()

	_, err := tabular.Parse("name,email\n\"unterminated\n")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, tabular.ErrFileParse) {
		t.Fatalf("expected ErrFileParse, got %v", err)
	}
}

func TestPreviewAgreesWithParseOnRowCount(t *testing.T) {
	t.Parallel()

	text := "name\nr1\nr2\n\nr3\nr4\nr5\nr6\nr7\n"

	table, err := tabular.Parse(text)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	preview, err := tabular.PreviewTable(text, 5)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if preview.TotalRows != len(table.Rows) {
		t.Fatalf("preview total %d != parsed rows %d", preview.TotalRows, len(table.Rows))
	}
	if len(preview.Rows) != 5 {
		t.Fatalf("expected 5 preview rows, got %d", len(preview.Rows))
	}
}

func TestPreviewShortTable(t *testing.T) {
	t.Parallel()

	preview, err := tabular.PreviewTable("name\nAda\n", 5)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(preview.Rows) != 1 || preview.TotalRows != 1 {
		t.Fatalf("unexpected preview: %+v", preview)
	}
}
