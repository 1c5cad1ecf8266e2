package suppliers

import (
	"bytes"
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/stockbook-erp/stockbook/internal/shared"
	"github.com/stockbook-erp/stockbook/internal/suppliers/format"
)

type Service struct {
	repo     Repository
	settings *format.Store
}

func NewService(repo Repository, settings *format.Store) *Service {
	return &Service{repo: repo, settings: settings}
}

func (s *Service) List(ctx context.Context, filters shared.ListFilters) ([]Supplier, int, error) {
	return s.repo.List(ctx, filters)
}

func (s *Service) Get(ctx context.Context, id int64) (Supplier, error) {
	if id <= 0 {
		return Supplier{}, shared.ErrInvalidID
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, supplier Supplier) (Supplier, error) {
	if err := s.validate(supplier); err != nil {
		return Supplier{}, err
	}
	if supplier.Status == "" {
		supplier.Status = StatusActive
	}
	return s.repo.Create(ctx, supplier)
}

func (s *Service) Update(ctx context.Context, id int64, supplier Supplier) error {
	if id <= 0 {
		return shared.ErrInvalidID
	}
	if err := s.validate(supplier); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, supplier)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return shared.ErrInvalidID
	}
	return s.repo.Delete(ctx, id)
}

// Settings returns the stored format settings merged over defaults.
func (s *Service) Settings(ctx context.Context) format.Settings {
	return s.settings.Load(ctx)
}

// SaveSettings persists the format settings, reporting success.
func (s *Service) SaveSettings(ctx context.Context, settings format.Settings) bool {
	return s.settings.Save(ctx, settings)
}

// ExportRows loads settings and all suppliers concurrently and shapes them
// for an export writer.
func (s *Service) ExportRows(ctx context.Context) ([]format.Row, format.Settings, error) {
	var (
		records  []Supplier
		settings format.Settings
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.repo.ListAll(gctx)
		return err
	})
	g.Go(func() error {
		settings = s.settings.Load(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, format.Settings{}, fmt.Errorf("load export data: %w", err)
	}

	recs := make([]format.Record, 0, len(records))
	for _, supplier := range records {
		recs = append(recs, supplier.Record())
	}
	return format.GenerateExportData(recs, &settings), settings, nil
}

// ExportCSV renders the full supplier export as CSV bytes.
func (s *Service) ExportCSV(ctx context.Context) ([]byte, error) {
	rows, settings, err := s.ExportRows(ctx)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := WriteCSV(&buf, rows, &settings); err != nil {
		return nil, fmt.Errorf("write export csv: %w", err)
	}
	return buf.Bytes(), nil
}

// duplicateFunc adapts the repository email lookup into the validator's
// duplicate hook. Lookup failures count as "not a duplicate" so a storage
// blip cannot reject an import row.
func (s *Service) duplicateFunc(ctx context.Context) format.DuplicateFunc {
	return func(field, value string) bool {
		if field != format.FieldEmail {
			return false
		}
		exists, err := s.repo.ExistsByEmail(ctx, value)
		return err == nil && exists
	}
}
