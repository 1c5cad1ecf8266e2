package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskTypeSupplierExport is the task type for rendering a full supplier
	// export in the background.
	TaskTypeSupplierExport = "suppliers:export"
)

// SupplierExportPayload identifies one requested background export.
type SupplierExportPayload struct {
	BatchID     string `json:"batch_id"`
	RequestedBy string `json:"requested_by"`
}

// NewSupplierExportTask constructs an Asynq task.
func NewSupplierExportTask(payload SupplierExportPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypeSupplierExport, data), nil
}
