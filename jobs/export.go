package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"
)

// SupplierExporter renders the full supplier export.
type SupplierExporter interface {
	ExportCSV(ctx context.Context) ([]byte, error)
}

// NewSupplierExportHandler returns the handler for TaskTypeSupplierExport:
// render the export and park the bytes in the archive under the batch id.
func NewSupplierExportHandler(exporter SupplierExporter, archive *ExportArchive, logger *slog.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload SupplierExportPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return asynq.SkipRetry
		}
		data, err := exporter.ExportCSV(ctx)
		if err != nil {
			return fmt.Errorf("render supplier export: %w", err)
		}
		if err := archive.Put(ctx, payload.BatchID, data); err != nil {
			return fmt.Errorf("archive supplier export: %w", err)
		}
		logger.Info("supplier export ready",
			slog.String("batch", payload.BatchID),
			slog.Int("bytes", len(data)))
		return nil
	}
}
