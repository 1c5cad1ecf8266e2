package suppliers

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stockbook-erp/stockbook/internal/suppliers/format"
)

// Supplier statuses.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusBlocked  = "blocked"
)

// Supplier is the persisted supplier entity.
type Supplier struct {
	ID                int64             `json:"id"`
	Code              string            `json:"code"`
	Name              string            `json:"name"`
	CompanyName       string            `json:"companyName"`
	Email             string            `json:"email"`
	Phone             string            `json:"phone"`
	Website           string            `json:"website"`
	Address           format.Address    `json:"address"`
	ContactPerson     string            `json:"contactPerson"`
	PaymentTerms      string            `json:"paymentTerms"`
	CreditLimit       decimal.Decimal   `json:"creditLimit"`
	CurrentBalance    decimal.Decimal   `json:"currentBalance"`
	TotalPurchases    int               `json:"totalPurchases"`
	TotalSpent        decimal.Decimal   `json:"totalSpent"`
	AverageOrderValue decimal.Decimal   `json:"averageOrderValue"`
	Rating            float64           `json:"rating"`
	DeliveryTime      int               `json:"deliveryTime"`
	QualityRating     float64           `json:"qualityRating"`
	Status            string            `json:"status"`
	IsPreferred       bool              `json:"isPreferred"`
	CustomFields      map[string]string `json:"customFields,omitempty"`
	LastPurchaseDate  *time.Time        `json:"lastPurchaseDate,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}

// Record projects the supplier onto the formatting pipeline's record shape.
func (s Supplier) Record() format.Record {
	rec := format.Record{
		Name:          s.Name,
		CompanyName:   s.CompanyName,
		Email:         s.Email,
		Phone:         s.Phone,
		Website:       s.Website,
		ContactPerson: s.ContactPerson,
		PaymentTerms:  s.PaymentTerms,
		Status:        s.Status,
		IsPreferred:   s.IsPreferred,
	}
	if s.Address != (format.Address{}) {
		addr := s.Address
		rec.Address = &addr
	}
	creditLimit := s.CreditLimit
	currentBalance := s.CurrentBalance
	totalSpent := s.TotalSpent
	avgOrder := s.AverageOrderValue
	totalPurchases := s.TotalPurchases
	rating := s.Rating
	deliveryTime := s.DeliveryTime
	qualityRating := s.QualityRating
	createdAt := s.CreatedAt
	rec.CreditLimit = &creditLimit
	rec.CurrentBalance = &currentBalance
	rec.TotalSpent = &totalSpent
	rec.AverageOrderValue = &avgOrder
	rec.TotalPurchases = &totalPurchases
	rec.Rating = &rating
	rec.DeliveryTime = &deliveryTime
	rec.QualityRating = &qualityRating
	rec.CreatedAt = &createdAt
	if s.LastPurchaseDate != nil {
		last := *s.LastPurchaseDate
		rec.LastPurchaseDate = &last
	}
	if len(s.CustomFields) > 0 {
		rec.CustomFields = s.CustomFields
	}
	return rec
}
