package v1_test

import (
	"bytes"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	v1 "github.com/kurochkinivan/data_sweepers/internal/controller/http/v1"
	"github.com/kurochkinivan/data_sweepers/internal/domain"
	"github.com/kurochkinivan/data_sweepers/internal/infrastructure/chart_renderer"
	"github.com/kurochkinivan/data_sweepers/internal/infrastructure/report_generator"
	"github.com/kurochkinivan/data_sweepers/internal/infrastructure/spreadsheet"
	"github.com/kurochkinivan/data_sweepers/internal/metrics"
	"github.com/kurochkinivan/data_sweepers/internal/pipeline"
	"github.com/stretchr/testify/require"
)

const sampleCSV = "x,y\n1,2\n1,2\n3,\n"

type part struct {
	field    string
	filename string
	content  string
}

func multipartBody(t *testing.T, parts ...part) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for _, p := range parts {
		if p.filename == "" {
			require.NoError(t, mw.WriteField(p.field, p.content))
			continue
		}

		w, err := mw.CreateFormFile(p.field, p.filename)
		require.NoError(t, err)
		_, err = w.Write([]byte(p.content))
		require.NoError(t, err)
	}

	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func newRouter(t *testing.T, repo v1.ConversionsRepository, maxUploadSize int64) http.Handler {
	t.Helper()

	log := slog.New(slog.DiscardHandler)
	m := metrics.New()

	processor := pipeline.NewProcessor(log, spreadsheet.New(), chart_renderer.New(50), m, 10)
	files := v1.NewFilesHandler(log, processor, report_generator.New(), maxUploadSize, domain.ThemeLight)
	conversions := v1.NewConversionsHandler(log, repo)

	return v1.NewRouter(log, files, conversions, m.Handler())
}

func newRouterWithProcessor(t *testing.T, processor v1.FileProcessor) http.Handler {
	t.Helper()

	log := slog.New(slog.DiscardHandler)
	m := metrics.New()

	files := v1.NewFilesHandler(log, processor, report_generator.New(), 0, domain.ThemeLight)
	conversions := v1.NewConversionsHandler(log, NewMockConversionsRepository(t))

	return v1.NewRouter(log, files, conversions, m.Handler())
}

func post(t *testing.T, h http.Handler, target string, parts ...part) *httptest.ResponseRecorder {
	t.Helper()

	body, contentType := multipartBody(t, parts...)

	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}
