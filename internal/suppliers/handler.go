package suppliers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/stockbook-erp/stockbook/internal/shared"
	"github.com/stockbook-erp/stockbook/internal/suppliers/format"
	"github.com/stockbook-erp/stockbook/jobs"
)

// maxImportBody caps uploaded CSV size at 10 MiB.
const maxImportBody = 10 << 20

// ExportEnqueuer submits background export jobs.
type ExportEnqueuer interface {
	EnqueueSupplierExport(ctx context.Context, payload jobs.SupplierExportPayload) (*asynq.TaskInfo, error)
}

type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
	enqueuer ExportEnqueuer
	archive  *jobs.ExportArchive
}

func NewHandler(logger *slog.Logger, service *Service, enqueuer ExportEnqueuer, archive *jobs.ExportArchive) *Handler {
	return &Handler{
		logger:   logger,
		service:  service,
		validate: validator.New(),
		enqueuer: enqueuer,
		archive:  archive,
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = shared.DefaultPage
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 {
		limit = shared.DefaultLimit
	}

	filters := shared.ListFilters{
		Page:    page,
		Limit:   limit,
		Search:  r.URL.Query().Get("search"),
		SortBy:  r.URL.Query().Get("sort"),
		SortDir: r.URL.Query().Get("dir"),
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filters.Status = &status
	}

	suppliers, total, err := h.service.List(r.Context(), filters)
	if err != nil {
		h.logger.Error("list suppliers failed", "error", err)
		h.respondError(w, err)
		return
	}
	if suppliers == nil {
		suppliers = []Supplier{}
	}

	h.respondJSON(w, http.StatusOK, ListResponse{
		Suppliers:  suppliers,
		Pagination: shared.NewPagination(page, limit, total),
	})
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.respondError(w, shared.ErrInvalidID)
		return
	}

	supplier, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, supplier)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req SupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, shared.ErrValidation)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.respondValidation(w, err)
		return
	}
	if req.Code == "" {
		req.Code = "SUP-" + uuid.NewString()[:8]
	}

	created, err := h.service.Create(r.Context(), req.supplier())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, created)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.respondError(w, shared.ErrInvalidID)
		return
	}

	var req SupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, shared.ErrValidation)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.respondValidation(w, err)
		return
	}

	if err := h.service.Update(r.Context(), id, req.supplier()); err != nil {
		h.respondError(w, err)
		return
	}

	supplier, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, supplier)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.respondError(w, shared.ErrInvalidID)
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.service.Settings(r.Context()))
}

func (h *Handler) PutSettings(w http.ResponseWriter, r *http.Request) {
	// Decode over defaults so a partial body still yields a full-shape object.
	settings := format.Defaults()
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		h.respondError(w, shared.ErrValidation)
		return
	}
	if !h.service.SaveSettings(r.Context(), settings) {
		h.logger.Error("save format settings failed")
		http.Error(w, "Failed to save settings", http.StatusInternalServerError)
		return
	}
	h.respondJSON(w, http.StatusOK, settings)
}

func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.ExportCSV(r.Context())
	if err != nil {
		h.logger.Error("supplier export failed", "error", err)
		h.respondError(w, err)
		return
	}
	writeCSVAttachment(w, "suppliers-"+time.Now().Format("2006-01-02")+".csv", data)
}

func (h *Handler) EnqueueExport(w http.ResponseWriter, r *http.Request) {
	if h.enqueuer == nil {
		http.Error(w, "Background exports unavailable", http.StatusServiceUnavailable)
		return
	}
	payload := jobs.SupplierExportPayload{
		BatchID:     uuid.NewString(),
		RequestedBy: r.Header.Get("X-Request-Id"),
	}
	if _, err := h.enqueuer.EnqueueSupplierExport(r.Context(), payload); err != nil {
		h.logger.Error("enqueue supplier export", "error", err)
		http.Error(w, "Failed to queue export", http.StatusInternalServerError)
		return
	}
	h.respondJSON(w, http.StatusAccepted, ExportQueuedResponse{BatchID: payload.BatchID, Status: "queued"})
}

func (h *Handler) DownloadExport(w http.ResponseWriter, r *http.Request) {
	batch := chi.URLParam(r, "batch")
	data, ready, err := h.archive.Get(r.Context(), batch)
	if err != nil {
		h.logger.Error("fetch export batch", "error", err, "batch", batch)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if !ready {
		h.respondJSON(w, http.StatusNotFound, ExportQueuedResponse{BatchID: batch, Status: "pending"})
		return
	}
	writeCSVAttachment(w, "suppliers-"+batch+".csv", data)
}

func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Import(r.Context(), http.MaxBytesReader(w, r.Body, maxImportBody))
	if err != nil {
		h.logger.Error("supplier import failed", "error", err)
		h.respondError(w, shared.ErrValidation)
		return
	}
	h.respondJSON(w, http.StatusOK, summary)
}

func writeCSVAttachment(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response", "error", err)
	}
}

func (h *Handler) respondValidation(w http.ResponseWriter, err error) {
	fields := map[string]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, f := range verrs {
			fields[f.Field()] = f.Tag()
		}
	}
	h.respondJSON(w, http.StatusUnprocessableEntity, map[string]any{
		"error":  "validation failed",
		"fields": fields,
	})
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, shared.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, shared.ErrDuplicate):
		status = http.StatusConflict
	case errors.Is(err, shared.ErrValidation), errors.Is(err, shared.ErrInvalidID):
		status = http.StatusBadRequest
	}
	h.respondJSON(w, status, map[string]string{"error": err.Error()})
}
