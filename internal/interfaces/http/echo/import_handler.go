package echo

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	app "github.com/mafiaidola/leads-manager-sub001/internal/application/lead"
)

type ImportHandler struct {
	preview app.PreviewImport
	commit  app.CommitImport
}

func NewImportHandler(preview app.PreviewImport, commit app.CommitImport) *ImportHandler {
	return &ImportHandler{preview: preview, commit: commit}
}

type previewFailure struct {
	Error string `json:"error"`
}

type commitFailure struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type commitResponse struct {
	Success        bool           `json:"success"`
	Message        string         `json:"message"`
	ImportedCount  int            `json:"importedCount"`
	SkippedCount   int            `json:"skippedCount"`
	DuplicateCount int            `json:"duplicateCount"`
	Errors         []app.RowError `json:"errors"`
	ErrorsCSV      string         `json:"errorsCsv"`
}

func (h *ImportHandler) PreviewLeadImport(c echo.Context) error {
	data, filename, err := readUpload(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, previewFailure{Error: "No file provided"})
	}

	out, err := h.preview.Execute(c.Request().Context(), app.PreviewImportInput{
		FileName: filename,
		Data:     data,
	})
	if err != nil {
		if errors.Is(err, app.ErrFileParse) {
			return c.JSON(http.StatusBadRequest, previewFailure{Error: "Failed to parse CSV file"})
		}
		return c.JSON(http.StatusInternalServerError, previewFailure{Error: "Failed to preview import"})
	}

	return c.JSON(http.StatusOK, out)
}

func (h *ImportHandler) CommitLeadImport(c echo.Context) error {
	data, filename, err := readUpload(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, commitFailure{Message: "No file provided"})
	}

	var mapping map[string]string
	if raw := c.FormValue("mapping"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &mapping); err != nil {
			return c.JSON(http.StatusBadRequest, commitFailure{Message: "Invalid column mapping"})
		}
	}

	out, err := h.commit.Execute(c.Request().Context(), app.CommitImportInput{
		FileName: filename,
		Data:     data,
		Mapping:  mapping,
		ActorID:  ActorFromContext(c).ID,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidMapping):
			return c.JSON(http.StatusBadRequest, commitFailure{Message: "Invalid column mapping"})
		case errors.Is(err, app.ErrFileParse):
			return c.JSON(http.StatusBadRequest, commitFailure{Message: "Failed to parse CSV file"})
		default:
			return c.JSON(http.StatusInternalServerError, commitFailure{Message: "Failed to import leads"})
		}
	}

	return c.JSON(http.StatusOK, commitResponse{
		Success: true,
		Message: fmt.Sprintf("Imported %d leads, skipped %d, duplicates %d",
			out.ImportedCount, out.SkippedCount, out.DuplicateCount),
		ImportedCount:  out.ImportedCount,
		SkippedCount:   out.SkippedCount,
		DuplicateCount: out.DuplicateCount,
		Errors:         out.Errors,
		ErrorsCSV:      out.ErrorsCSV,
	})
}

func readUpload(c echo.Context) ([]byte, string, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, "", err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, "", err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", err
	}
	return data, fileHeader.Filename, nil
}
