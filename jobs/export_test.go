package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubExporter struct {
	data []byte
	err  error
}

func (s *stubExporter) ExportCSV(ctx context.Context) ([]byte, error) {
	return s.data, s.err
}

func newTestArchive(t *testing.T) *ExportArchive {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewExportArchive(client, time.Hour)
}

func TestSupplierExportHandlerArchivesResult(t *testing.T) {
	ctx := context.Background()
	archive := newTestArchive(t)
	exporter := &stubExporter{data: []byte("Name\nAcme\n")}
	handler := NewSupplierExportHandler(exporter, archive, slog.Default())

	task, err := NewSupplierExportTask(SupplierExportPayload{BatchID: "batch-1"})
	require.NoError(t, err)
	require.NoError(t, handler(ctx, task))

	data, ready, err := archive.Get(ctx, "batch-1")
	require.NoError(t, err)
	assert.True(t, ready)
	assert.Equal(t, "Name\nAcme\n", string(data))
}

func TestSupplierExportHandlerSkipsBadPayload(t *testing.T) {
	archive := newTestArchive(t)
	handler := NewSupplierExportHandler(&stubExporter{}, archive, slog.Default())

	task := asynq.NewTask(TaskTypeSupplierExport, []byte("{not json"))
	err := handler(context.Background(), task)
	require.ErrorIs(t, err, asynq.SkipRetry)
}

func TestSupplierExportHandlerPropagatesExportError(t *testing.T) {
	archive := newTestArchive(t)
	exporter := &stubExporter{err: errors.New("db down")}
	handler := NewSupplierExportHandler(exporter, archive, slog.Default())

	task, err := NewSupplierExportTask(SupplierExportPayload{BatchID: "batch-2"})
	require.NoError(t, err)
	require.Error(t, handler(context.Background(), task))

	_, ready, err := archive.Get(context.Background(), "batch-2")
	require.NoError(t, err)
	assert.False(t, ready)
}

func TestSupplierExportTaskPayloadRoundTrip(t *testing.T) {
	task, err := NewSupplierExportTask(SupplierExportPayload{BatchID: "b", RequestedBy: "req-1"})
	require.NoError(t, err)
	assert.Equal(t, TaskTypeSupplierExport, task.Type())

	var payload SupplierExportPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &payload))
	assert.Equal(t, "b", payload.BatchID)
	assert.Equal(t, "req-1", payload.RequestedBy)
}

func TestExportArchiveMissingBatch(t *testing.T) {
	archive := newTestArchive(t)
	_, ready, err := archive.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, ready)
}
