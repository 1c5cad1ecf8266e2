package suppliers

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/stockbook-erp/stockbook/internal/shared"
)

type Repository interface {
	List(ctx context.Context, filters shared.ListFilters) ([]Supplier, int, error)
	ListAll(ctx context.Context) ([]Supplier, error)
	Get(ctx context.Context, id int64) (Supplier, error)
	Create(ctx context.Context, supplier Supplier) (Supplier, error)
	Update(ctx context.Context, id int64, supplier Supplier) error
	Delete(ctx context.Context, id int64) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

const supplierColumns = `id, code, name, company_name, email, phone, website,
	street, city, state, country, postal_code,
	contact_person, payment_terms,
	credit_limit, current_balance, total_spent, average_order_value,
	total_purchases, rating, delivery_time, quality_rating,
	status, is_preferred, custom_fields, last_purchase_date, created_at, updated_at`

func scanSupplier(scan func(dest ...any) error) (Supplier, error) {
	var s Supplier
	var creditLimit, currentBalance, totalSpent, avgOrder float64
	err := scan(
		&s.ID, &s.Code, &s.Name, &s.CompanyName, &s.Email, &s.Phone, &s.Website,
		&s.Address.Street, &s.Address.City, &s.Address.State, &s.Address.Country, &s.Address.PostalCode,
		&s.ContactPerson, &s.PaymentTerms,
		&creditLimit, &currentBalance, &totalSpent, &avgOrder,
		&s.TotalPurchases, &s.Rating, &s.DeliveryTime, &s.QualityRating,
		&s.Status, &s.IsPreferred, &s.CustomFields, &s.LastPurchaseDate,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return Supplier{}, err
	}
	s.CreditLimit = decimal.NewFromFloat(creditLimit)
	s.CurrentBalance = decimal.NewFromFloat(currentBalance)
	s.TotalSpent = decimal.NewFromFloat(totalSpent)
	s.AverageOrderValue = decimal.NewFromFloat(avgOrder)
	return s, nil
}

func (r *repository) List(ctx context.Context, filters shared.ListFilters) ([]Supplier, int, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE 1=1`
	args := []any{}
	argCount := 0

	if filters.Search != "" {
		argCount++
		p := `$` + strconv.Itoa(argCount)
		query += ` AND (name ILIKE ` + p + ` OR code ILIKE ` + p + ` OR email ILIKE ` + p + `)`
		args = append(args, "%"+filters.Search+"%")
	}
	if filters.Status != nil {
		argCount++
		query += ` AND status = $` + strconv.Itoa(argCount)
		args = append(args, *filters.Status)
	}

	countQuery := `SELECT COUNT(*) FROM suppliers WHERE 1=1`
	countArgs := []any{}
	if filters.Search != "" {
		countArgs = append(countArgs, "%"+filters.Search+"%")
		p := `$` + strconv.Itoa(len(countArgs))
		countQuery += ` AND (name ILIKE ` + p + ` OR code ILIKE ` + p + ` OR email ILIKE ` + p + `)`
	}
	if filters.Status != nil {
		countArgs = append(countArgs, *filters.Status)
		countQuery += ` AND status = $` + strconv.Itoa(len(countArgs))
	}

	var total int
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query += ` ORDER BY ` + sortOrder(filters.SortBy, filters.SortDir)

	if filters.Limit > 0 {
		argCount++
		query += ` LIMIT $` + strconv.Itoa(argCount)
		args = append(args, filters.Limit)

		argCount++
		query += ` OFFSET $` + strconv.Itoa(argCount)
		offset := (filters.Page - 1) * filters.Limit
		if offset < 0 {
			offset = 0
		}
		args = append(args, offset)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var suppliers []Supplier
	for rows.Next() {
		s, err := scanSupplier(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		suppliers = append(suppliers, s)
	}
	return suppliers, total, rows.Err()
}

func (r *repository) ListAll(ctx context.Context) ([]Supplier, error) {
	rows, err := r.db.Query(ctx, `SELECT `+supplierColumns+` FROM suppliers ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suppliers []Supplier
	for rows.Next() {
		s, err := scanSupplier(rows.Scan)
		if err != nil {
			return nil, err
		}
		suppliers = append(suppliers, s)
	}
	return suppliers, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (Supplier, error) {
	row := r.db.QueryRow(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE id = $1`, id)
	s, err := scanSupplier(row.Scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return Supplier{}, shared.ErrNotFound
	}
	return s, err
}

func (r *repository) Create(ctx context.Context, supplier Supplier) (Supplier, error) {
	query := `INSERT INTO suppliers (
		code, name, company_name, email, phone, website,
		street, city, state, country, postal_code,
		contact_person, payment_terms,
		credit_limit, current_balance, total_spent, average_order_value,
		total_purchases, rating, delivery_time, quality_rating,
		status, is_preferred, custom_fields, last_purchase_date, created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17,
		$18, $19, $20, $21, $22, $23, $24, $25, $26, $27) RETURNING id`
	now := time.Now()
	err := r.db.QueryRow(ctx, query,
		supplier.Code, supplier.Name, supplier.CompanyName, supplier.Email, supplier.Phone, supplier.Website,
		supplier.Address.Street, supplier.Address.City, supplier.Address.State, supplier.Address.Country, supplier.Address.PostalCode,
		supplier.ContactPerson, supplier.PaymentTerms,
		supplier.CreditLimit.InexactFloat64(), supplier.CurrentBalance.InexactFloat64(),
		supplier.TotalSpent.InexactFloat64(), supplier.AverageOrderValue.InexactFloat64(),
		supplier.TotalPurchases, supplier.Rating, supplier.DeliveryTime, supplier.QualityRating,
		supplier.Status, supplier.IsPreferred, supplier.CustomFields, supplier.LastPurchaseDate, now, now,
	).Scan(&supplier.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return Supplier{}, fmt.Errorf("%w: %s", shared.ErrDuplicate, pgErr.ConstraintName)
		}
		return Supplier{}, err
	}
	supplier.CreatedAt = now
	supplier.UpdatedAt = now
	return supplier, nil
}

func (r *repository) Update(ctx context.Context, id int64, supplier Supplier) error {
	query := `UPDATE suppliers SET
		code = $1, name = $2, company_name = $3, email = $4, phone = $5, website = $6,
		street = $7, city = $8, state = $9, country = $10, postal_code = $11,
		contact_person = $12, payment_terms = $13,
		credit_limit = $14, current_balance = $15, total_spent = $16, average_order_value = $17,
		total_purchases = $18, rating = $19, delivery_time = $20, quality_rating = $21,
		status = $22, is_preferred = $23, custom_fields = $24, last_purchase_date = $25, updated_at = $26
	WHERE id = $27`
	tag, err := r.db.Exec(ctx, query,
		supplier.Code, supplier.Name, supplier.CompanyName, supplier.Email, supplier.Phone, supplier.Website,
		supplier.Address.Street, supplier.Address.City, supplier.Address.State, supplier.Address.Country, supplier.Address.PostalCode,
		supplier.ContactPerson, supplier.PaymentTerms,
		supplier.CreditLimit.InexactFloat64(), supplier.CurrentBalance.InexactFloat64(),
		supplier.TotalSpent.InexactFloat64(), supplier.AverageOrderValue.InexactFloat64(),
		supplier.TotalPurchases, supplier.Rating, supplier.DeliveryTime, supplier.QualityRating,
		supplier.Status, supplier.IsPreferred, supplier.CustomFields, supplier.LastPurchaseDate, time.Now(), id,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: %s", shared.ErrDuplicate, pgErr.ConstraintName)
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *repository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM suppliers WHERE lower(email) = lower($1))`, email).Scan(&exists)
	return exists, err
}

func sortOrder(sortBy, sortDir string) string {
	dir := "ASC"
	if sortDir == shared.SortDesc {
		dir = "DESC"
	}
	switch sortBy {
	case "code":
		return "code " + dir
	case "name":
		return "name " + dir
	case "total_spent":
		return "total_spent " + dir
	case "rating":
		return "rating " + dir
	case "created_at":
		return "created_at " + dir
	default:
		return "name " + dir
	}
}
