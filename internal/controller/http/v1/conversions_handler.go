package v1

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/data_sweepers/internal/domain"
)

type ConversionsRepository interface {
	Conversions(ctx context.Context) ([]*domain.Conversion, error)
	ConversionsPage(ctx context.Context, limit, offset uint64) ([]*domain.Conversion, int, error)
	ConversionColumns(ctx context.Context, name string) ([]*domain.ConversionColumn, error)
}

type ConversionsHandler struct {
	log                   *slog.Logger
	conversionsRepository ConversionsRepository
}

func NewConversionsHandler(log *slog.Logger, conversionsRepository ConversionsRepository) *ConversionsHandler {
	return &ConversionsHandler{
		log:                   log,
		conversionsRepository: conversionsRepository,
	}
}

type ListConversionsResponse struct {
	Conversions []*domain.Conversion `json:"conversions"`
	Pagination  Pagination           `json:"pagination"`
}

func (h *ConversionsHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit, err := parsePagination(r)
	if err != nil {
		renderError(w, r, http.StatusBadRequest, err)
		return
	}

	offset := (page - 1) * limit

	conversions, total, err := h.conversionsRepository.ConversionsPage(r.Context(), limit, offset)
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to list conversions", slog.String("err", err.Error()))
		renderError(w, r, http.StatusInternalServerError, err)
		return
	}

	if conversions == nil {
		conversions = []*domain.Conversion{}
	}

	render.JSON(w, r, ListConversionsResponse{
		Conversions: conversions,
		Pagination:  newPagination(page, limit, total),
	})
}

// Export writes the whole ledger as CSV with a header row.
func (h *ConversionsHandler) Export(w http.ResponseWriter, r *http.Request) {
	conversions, err := h.conversionsRepository.Conversions(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to load conversions", slog.String("err", err.Error()))
		renderError(w, r, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", domain.MIMETypeCSV)
	w.Header().Set("Content-Disposition", `attachment; filename="conversions.csv"`)

	if err := writeConversions(csv.NewWriter(w), conversions); err != nil {
		h.log.ErrorContext(r.Context(), "failed to export conversions", slog.String("err", err.Error()))
	}
}

func writeConversions(writer *csv.Writer, conversions []*domain.Conversion) error {
	enc := csvutil.NewEncoder(writer)

	if err := enc.EncodeHeader(domain.Conversion{}); err != nil {
		return fmt.Errorf("failed to encode header: %w", err)
	}

	for _, c := range conversions {
		if err := enc.Encode(c); err != nil {
			return fmt.Errorf("failed to encode conversion %q: %w", c.Name, err)
		}
	}

	writer.Flush()

	return writer.Error()
}

func (h *ConversionsHandler) Columns(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	columns, err := h.conversionsRepository.ConversionColumns(r.Context(), name)
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to load conversion columns",
			slog.String("filename", name),
			slog.String("err", err.Error()),
		)
		renderError(w, r, http.StatusInternalServerError, err)
		return
	}

	if len(columns) == 0 {
		renderError(w, r, http.StatusNotFound, domain.NewFileError(name, errors.New("no columns recorded")))
		return
	}

	render.JSON(w, r, columns)
}
