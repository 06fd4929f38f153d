package v1

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/kurochkinivan/data_sweepers/internal/domain"
)

const (
	filesField      = "files"
	fileField       = "file"
	optionsField    = "options"
	optionsOverride = "options:"
	themeQuery      = "mode"
	multipartMemory = 32 << 20
)

var errBadRequest = errors.New("bad request")

type FileProcessor interface {
	Process(ctx context.Context, file domain.UploadedFile, opts domain.CleaningOptions, theme domain.Theme) *domain.FileResult
	ProcessBatch(
		ctx context.Context,
		files []domain.UploadedFile,
		optionsFor func(name string) (domain.CleaningOptions, error),
		theme domain.Theme,
	) ([]*domain.FileResult, error)
}

type ReportGenerator interface {
	GenerateReport(result *domain.FileResult, theme domain.Theme) ([]byte, error)
}

type FilesHandler struct {
	log             *slog.Logger
	processor       FileProcessor
	reportGenerator ReportGenerator
	maxUploadSize   int64
	theme           domain.Theme
}

func NewFilesHandler(
	log *slog.Logger,
	processor FileProcessor,
	reportGenerator ReportGenerator,
	maxUploadSize int64,
	theme domain.Theme,
) *FilesHandler {
	return &FilesHandler{
		log:             log,
		processor:       processor,
		reportGenerator: reportGenerator,
		maxUploadSize:   maxUploadSize,
		theme:           theme,
	}
}

type ArtifactResponse struct {
	Filename string `json:"filename"`
	MIMEType string `json:"mime_type"`
	Size     int    `json:"size"`
	Data     []byte `json:"data"`
}

type FileResponse struct {
	Filename string                `json:"filename"`
	Format   domain.Format         `json:"format"`
	State    domain.State          `json:"state"`
	Preview  *domain.Preview       `json:"preview,omitempty"`
	Final    *domain.Preview       `json:"final,omitempty"`
	Stats    *domain.CleaningStats `json:"stats,omitempty"`
	Chart    []byte                `json:"chart,omitempty"`
	Artifact *ArtifactResponse     `json:"artifact,omitempty"`
	Warnings []string              `json:"warnings,omitempty"`
	Error    *ErrorResponse        `json:"error,omitempty"`
}

type BatchResponse struct {
	BatchID string          `json:"batch_id"`
	Files   []*FileResponse `json:"files"`
}

func newFileResponse(result *domain.FileResult) *FileResponse {
	resp := &FileResponse{
		Filename: result.Filename,
		Format:   result.Format,
		State:    result.State,
		Preview:  result.Preview,
		Final:    result.Final,
		Stats:    result.Stats,
		Chart:    result.Chart,
		Warnings: result.Warnings,
	}

	if a := result.Artifact; a != nil {
		resp.Artifact = &ArtifactResponse{
			Filename: a.Filename,
			MIMEType: a.MIMEType,
			Size:     a.Size(),
			Data:     a.Data,
		}
	}

	if result.Error != nil {
		resp.Error = newErrorResponse(result.Error)
	}

	return resp
}

// Preview parses every uploaded file and returns its columns and first rows.
func (h *FilesHandler) Preview(w http.ResponseWriter, r *http.Request) {
	h.batch(w, r, func(*multipart.Form) (func(string) (domain.CleaningOptions, error), error) {
		return func(string) (domain.CleaningOptions, error) { return domain.CleaningOptions{}, nil }, nil
	})
}

// Process runs the cleaning pipeline over every uploaded file. The "options" part holds
// the defaults, an "options:<filename>" part overrides them for one file. A malformed
// override fails only its file, malformed defaults fail the request.
func (h *FilesHandler) Process(w http.ResponseWriter, r *http.Request) {
	h.batch(w, r, batchOptions)
}

func (h *FilesHandler) batch(
	w http.ResponseWriter,
	r *http.Request,
	options func(form *multipart.Form) (func(string) (domain.CleaningOptions, error), error),
) {
	theme, form, ok := h.parseRequest(w, r)
	if !ok {
		return
	}
	defer form.RemoveAll()

	files := uploadedFiles(form.File[filesField])
	if len(files) == 0 {
		renderError(w, r, http.StatusBadRequest, fmt.Errorf("%w: no %q parts", errBadRequest, filesField))
		return
	}

	optionsFor, err := options(form)
	if err != nil {
		renderError(w, r, statusCode(err), err)
		return
	}

	batchID := uuid.NewString()
	log := h.log.With(slog.String("batch_id", batchID), slog.Int("files", len(files)))

	log.InfoContext(r.Context(), "processing batch")

	results, err := h.processor.ProcessBatch(r.Context(), files, optionsFor, theme)
	if err != nil {
		log.WarnContext(r.Context(), "batch interrupted", slog.String("err", err.Error()))
		return
	}

	resp := &BatchResponse{BatchID: batchID, Files: make([]*FileResponse, len(results))}
	for i, result := range results {
		resp.Files[i] = newFileResponse(result)
	}

	render.JSON(w, r, resp)
}

// Convert exports one uploaded file and responds with the artifact itself.
// The export format defaults to CSV.
func (h *FilesHandler) Convert(w http.ResponseWriter, r *http.Request) {
	result, _, ok := h.single(w, r, func(opts *domain.CleaningOptions) {
		if opts.Format == "" {
			opts.Format = domain.FormatCSV
		}
	})
	if !ok {
		return
	}

	a := result.Artifact
	w.Header().Set("Content-Type", a.MIMEType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": a.Filename}))
	w.Header().Set("Content-Length", strconv.Itoa(a.Size()))
	w.Write(a.Data)
}

// Chart responds with the bar chart of one uploaded file as PNG.
func (h *FilesHandler) Chart(w http.ResponseWriter, r *http.Request) {
	result, _, ok := h.single(w, r, func(opts *domain.CleaningOptions) {
		opts.Chart = true
		opts.Format = ""
	})
	if !ok {
		return
	}

	if result.Chart == nil {
		err := result.ChartError
		if err == nil {
			err = domain.ErrNothingToChart
		}
		if !errors.Is(err, domain.ErrNothingToChart) {
			h.log.ErrorContext(r.Context(), "failed to render chart",
				slog.String("filename", result.Filename),
				slog.String("err", err.Error()),
			)
		}

		renderError(w, r, statusCode(err), domain.NewFileError(result.Filename, err))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(result.Chart)
}

// Report responds with a PDF summary of one uploaded file.
func (h *FilesHandler) Report(w http.ResponseWriter, r *http.Request) {
	result, theme, ok := h.single(w, r, func(opts *domain.CleaningOptions) {
		opts.Chart = true
	})
	if !ok {
		return
	}

	pdf, err := h.reportGenerator.GenerateReport(result, theme)
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to generate report",
			slog.String("filename", result.Filename),
			slog.String("err", err.Error()),
		)
		renderError(w, r, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Write(pdf)
}

// single processes the one "file" part of the request. The result is only returned
// when processing succeeded, otherwise the error response is already written.
func (h *FilesHandler) single(
	w http.ResponseWriter,
	r *http.Request,
	adjust func(opts *domain.CleaningOptions),
) (*domain.FileResult, domain.Theme, bool) {
	theme, form, ok := h.parseRequest(w, r)
	if !ok {
		return nil, "", false
	}
	defer form.RemoveAll()

	headers := form.File[fileField]
	if len(headers) != 1 {
		renderError(w, r, http.StatusBadRequest, fmt.Errorf("%w: expected exactly one %q part, got %d", errBadRequest, fileField, len(headers)))
		return nil, "", false
	}

	opts, err := decodeOptions(form.Value[optionsField])
	if err != nil {
		renderError(w, r, statusCode(err), err)
		return nil, "", false
	}
	adjust(&opts)

	result := h.processor.Process(r.Context(), uploadedFiles(headers)[0], opts, theme)
	if result.Error != nil {
		renderError(w, r, statusCode(result.Error), result.Error)
		return nil, "", false
	}

	return result, theme, true
}

func (h *FilesHandler) parseRequest(w http.ResponseWriter, r *http.Request) (domain.Theme, *multipart.Form, bool) {
	theme := h.theme
	if mode := r.URL.Query().Get(themeQuery); mode != "" {
		t, err := domain.ParseTheme(mode)
		if err != nil {
			renderError(w, r, http.StatusBadRequest, err)
			return "", nil, false
		}
		theme = t
	}

	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			renderError(w, r, http.StatusRequestEntityTooLarge, fmt.Errorf("upload exceeds %d bytes", maxErr.Limit))
			return "", nil, false
		}

		renderError(w, r, http.StatusBadRequest, fmt.Errorf("%w: %w", errBadRequest, err))
		return "", nil, false
	}

	return theme, r.MultipartForm, true
}

func uploadedFiles(headers []*multipart.FileHeader) []domain.UploadedFile {
	files := make([]domain.UploadedFile, len(headers))
	for i, fh := range headers {
		files[i] = domain.UploadedFile{
			Name: fh.Filename,
			Open: func() (io.ReadCloser, error) { return fh.Open() },
		}
	}
	return files
}

type fileOptions struct {
	opts domain.CleaningOptions
	err  error
}

func batchOptions(form *multipart.Form) (func(string) (domain.CleaningOptions, error), error) {
	defaults, err := decodeOptions(form.Value[optionsField])
	if err != nil {
		return nil, err
	}

	overrides := make(map[string]fileOptions)
	for key, values := range form.Value {
		name, ok := strings.CutPrefix(key, optionsOverride)
		if !ok || name == "" {
			continue
		}

		opts, err := decodeOptions(values)
		overrides[name] = fileOptions{opts: opts, err: err}
	}

	return func(name string) (domain.CleaningOptions, error) {
		if o, ok := overrides[name]; ok {
			return o.opts, o.err
		}
		return defaults, nil
	}, nil
}

func decodeOptions(values []string) (domain.CleaningOptions, error) {
	var opts domain.CleaningOptions
	if len(values) == 0 || values[0] == "" {
		return opts, nil
	}

	if err := json.Unmarshal([]byte(values[0]), &opts); err != nil {
		return opts, fmt.Errorf("%w: %w", domain.ErrInvalidOptions, err)
	}

	return opts, nil
}
