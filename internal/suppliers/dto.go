package suppliers

import (
	"github.com/shopspring/decimal"

	"github.com/stockbook-erp/stockbook/internal/suppliers/format"
)

// SupplierRequest is the JSON body for creating or replacing a supplier.
type SupplierRequest struct {
	Code              string            `json:"code" validate:"omitempty,max=50"`
	Name              string            `json:"name" validate:"required,max=200"`
	CompanyName       string            `json:"companyName" validate:"omitempty,max=200"`
	Email             string            `json:"email" validate:"omitempty,email"`
	Phone             string            `json:"phone" validate:"omitempty,max=50"`
	Website           string            `json:"website" validate:"omitempty,max=200"`
	Address           format.Address    `json:"address"`
	ContactPerson     string            `json:"contactPerson" validate:"omitempty,max=200"`
	PaymentTerms      string            `json:"paymentTerms" validate:"omitempty,max=100"`
	CreditLimit       float64           `json:"creditLimit" validate:"gte=0"`
	CurrentBalance    float64           `json:"currentBalance"`
	TotalPurchases    int               `json:"totalPurchases" validate:"gte=0"`
	TotalSpent        float64           `json:"totalSpent" validate:"gte=0"`
	AverageOrderValue float64           `json:"averageOrderValue" validate:"gte=0"`
	Rating            float64           `json:"rating" validate:"gte=0,lte=5"`
	DeliveryTime      int               `json:"deliveryTime" validate:"gte=0"`
	QualityRating     float64           `json:"qualityRating" validate:"gte=0,lte=5"`
	Status            string            `json:"status" validate:"omitempty,oneof=active inactive blocked"`
	IsPreferred       bool              `json:"isPreferred"`
	CustomFields      map[string]string `json:"customFields"`
}

func (r SupplierRequest) supplier() Supplier {
	return Supplier{
		Code:              r.Code,
		Name:              r.Name,
		CompanyName:       r.CompanyName,
		Email:             r.Email,
		Phone:             r.Phone,
		Website:           r.Website,
		Address:           r.Address,
		ContactPerson:     r.ContactPerson,
		PaymentTerms:      r.PaymentTerms,
		CreditLimit:       decimal.NewFromFloat(r.CreditLimit),
		CurrentBalance:    decimal.NewFromFloat(r.CurrentBalance),
		TotalPurchases:    r.TotalPurchases,
		TotalSpent:        decimal.NewFromFloat(r.TotalSpent),
		AverageOrderValue: decimal.NewFromFloat(r.AverageOrderValue),
		Rating:            r.Rating,
		DeliveryTime:      r.DeliveryTime,
		QualityRating:     r.QualityRating,
		Status:            r.Status,
		IsPreferred:       r.IsPreferred,
		CustomFields:      r.CustomFields,
	}
}

// ListResponse is the paginated supplier listing.
type ListResponse struct {
	Suppliers  []Supplier `json:"suppliers"`
	Pagination any        `json:"pagination"`
}

// ExportQueuedResponse acknowledges a background export request.
type ExportQueuedResponse struct {
	BatchID string `json:"batchId"`
	Status  string `json:"status"`
}
