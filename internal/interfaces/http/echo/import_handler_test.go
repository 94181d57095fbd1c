package echo_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	app "github.com/mafiaidola/leads-manager-sub001/internal/application/lead"
	domain "github.com/mafiaidola/leads-manager-sub001/internal/domain/lead"
	httpecho "github.com/mafiaidola/leads-manager-sub001/internal/interfaces/http/echo"
)

type fakeResolver struct {
	actors map[string]domain.Actor
}

func (f *fakeResolver) ResolveToken(ctx context.Context, token string) (domain.Actor, error) {
	actor, ok := f.actors[token]
	if !ok {
		return domain.Actor{}, domain.ErrUnknownActor
	}
	return actor, nil
}

type fakePreviewUseCase struct {
	output app.PreviewImportOutput
	err    error
	input  app.PreviewImportInput
}

func (f *fakePreviewUseCase) Execute(ctx context.Context, in app.PreviewImportInput) (app.PreviewImportOutput, error) {
	f.input = in
	if f.err != nil {
		return app.PreviewImportOutput{}, f.err
	}
	return f.output, nil
}

type fakeCommitUseCase struct {
	output app.CommitImportOutput
	err    error
	input  app.CommitImportInput
}

func (f *fakeCommitUseCase) Execute(ctx context.Context, in app.CommitImportInput) (app.CommitImportOutput, error) {
	f.input = in
	if f.err != nil {
		return app.CommitImportOutput{}, f.err
	}
	return f.output, nil
}

func adminResolver() *fakeResolver {
	return &fakeResolver{actors: map[string]domain.Actor{
		"admin-token":  {ID: "admin-1", Role: "admin"},
		"viewer-token": {ID: "viewer-1", Role: "viewer"},
	}}
}

func newServer(preview app.PreviewImport, commit app.CommitImport, resolver httpecho.ActorResolver) *echo.Echo {
	e := echo.New()
	httpecho.RegisterRoutes(e, httpecho.NewImportHandler(preview, commit), resolver)
	return e
}

func multipartUpload(t *testing.T, filename string, contents []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(contents); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &body, writer.FormDataContentType()
}

func TestPreviewHandlerSuccess(t *testing.T) {
	t.Parallel()

	preview := &fakePreviewUseCase{output: app.PreviewImportOutput{
		Headers:          []string{"name"},
		Preview:          []map[string]string{{"name": "Ada"}},
		TotalRows:        1,
		SuggestedMapping: map[string]string{"name": "name"},
	}}
	e := newServer(preview, &fakeCommitUseCase{}, adminResolver())

	body, contentType := multipartUpload(t, "leads.csv", []byte("name\nAda\n"), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/leads/import/preview", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	req.Header.Set(echo.HeaderAuthorization, "Bearer admin-token")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unexpected json: %v", err)
	}
	if got["totalRows"] != float64(1) {
		t.Fatalf("unexpected totalRows: %#v", got["totalRows"])
	}
	if preview.input.FileName != "leads.csv" {
		t.Fatalf("unexpected filename: %q", preview.input.FileName)
	}
}

func TestPreviewHandlerNoFile(t *testing.T) {
	t.Parallel()

	e := newServer(&fakePreviewUseCase{}, &fakeCommitUseCase{}, adminResolver())

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/leads/import/preview", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	req.Header.Set(echo.HeaderAuthorization, "Bearer admin-token")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestPreviewHandlerParseError(t *testing.T) {
	t.Parallel()

	e := newServer(&fakePreviewUseCase{err: app.ErrFileParse}, &fakeCommitUseCase{}, adminResolver())

	body, contentType := multipartUpload(t, "leads.xlsx", []byte("junk"), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/leads/import/preview", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	req.Header.Set(echo.HeaderAuthorization, "Bearer admin-token")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unexpected json: %v", err)
	}
	if got["error"] != "Failed to parse CSV file" {
		t.Fatalf("unexpected error message: %#v", got["error"])
	}
}

func TestCommitHandlerSuccess(t *testing.T) {
	t.Parallel()

	commit := &fakeCommitUseCase{output: app.CommitImportOutput{
		ImportedCount:  2,
		SkippedCount:   1,
		DuplicateCount: 1,
		Errors:         []app.RowError{{Row: 3, Name: "(empty)", Reason: "Missing required field: Name"}},
		ErrorsCSV:      "Row,Name,Reason\n",
	}}
	e := newServer(&fakePreviewUseCase{}, commit, adminResolver())

	body, contentType := multipartUpload(t, "leads.csv", []byte("name\nAda\n"), map[string]string{
		"mapping": `{"name":"name"}`,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/leads/import", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	req.Header.Set(echo.HeaderAuthorization, "Bearer admin-token")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unexpected json: %v", err)
	}
	if got["success"] != true {
		t.Fatalf("expected success, got %#v", got)
	}
	if got["importedCount"] != float64(2) {
		t.Fatalf("unexpected importedCount: %#v", got["importedCount"])
	}

	if commit.input.Mapping["name"] != "name" {
		t.Fatalf("mapping not passed through: %#v", commit.input.Mapping)
	}
	if commit.input.ActorID != "admin-1" {
		t.Fatalf("unexpected actor id: %q", commit.input.ActorID)
	}
}

func TestCommitHandlerInvalidMappingJSON(t *testing.T) {
	t.Parallel()

	e := newServer(&fakePreviewUseCase{}, &fakeCommitUseCase{}, adminResolver())

	body, contentType := multipartUpload(t, "leads.csv", []byte("name\nAda\n"), map[string]string{
		"mapping": `{"name":`,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/leads/import", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	req.Header.Set(echo.HeaderAuthorization, "Bearer admin-token")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCommitHandlerPersistFailure(t *testing.T) {
	t.Parallel()

	e := newServer(&fakePreviewUseCase{}, &fakeCommitUseCase{err: app.ErrPersist}, adminResolver())

	body, contentType := multipartUpload(t, "leads.csv", []byte("name\nAda\n"), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/leads/import", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	req.Header.Set(echo.HeaderAuthorization, "Bearer admin-token")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unexpected json: %v", err)
	}
	if got["success"] != false {
		t.Fatalf("expected success=false, got %#v", got)
	}
}

func TestCommitHandlerUnknownMappingField(t *testing.T) {
	t.Parallel()

	e := newServer(&fakePreviewUseCase{}, &fakeCommitUseCase{err: app.ErrInvalidMapping}, adminResolver())

	body, contentType := multipartUpload(t, "leads.csv", []byte("name\nAda\n"), map[string]string{
		"mapping": `{"name":"fullName"}`,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/leads/import", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	req.Header.Set(echo.HeaderAuthorization, "Bearer admin-token")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
