package format

import (
	"time"

	"github.com/shopspring/decimal"
)

// Address is the structured postal address carried by a supplier record.
type Address struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	Country    string `json:"country,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
}

// Record is the supplier projection the formatting pipeline operates on.
// Optional fields are pointers so absence is explicit rather than guessed
// from zero values.
type Record struct {
	Name              string            `json:"name,omitempty"`
	CompanyName       string            `json:"companyName,omitempty"`
	Email             string            `json:"email,omitempty"`
	Phone             string            `json:"phone,omitempty"`
	Website           string            `json:"website,omitempty"`
	Address           *Address          `json:"address,omitempty"`
	ContactPerson     string            `json:"contactPerson,omitempty"`
	PaymentTerms      string            `json:"paymentTerms,omitempty"`
	CreditLimit       *decimal.Decimal  `json:"creditLimit,omitempty"`
	CurrentBalance    *decimal.Decimal  `json:"currentBalance,omitempty"`
	TotalPurchases    *int              `json:"totalPurchases,omitempty"`
	TotalSpent        *decimal.Decimal  `json:"totalSpent,omitempty"`
	AverageOrderValue *decimal.Decimal  `json:"averageOrderValue,omitempty"`
	Rating            *float64          `json:"rating,omitempty"`
	DeliveryTime      *int              `json:"deliveryTime,omitempty"`
	QualityRating     *float64          `json:"qualityRating,omitempty"`
	Status            string            `json:"status,omitempty"`
	IsPreferred       bool              `json:"isPreferred"`
	CreatedAt         *time.Time        `json:"createdAt,omitempty"`
	LastPurchaseDate  *time.Time        `json:"lastPurchaseDate,omitempty"`
	CustomFields      map[string]string `json:"customFields,omitempty"`
}

// Row is a field-keyed projection of a Record. Shaping functions operate on
// rows so that export filtering and header derivation share one field
// vocabulary.
type Row map[string]any

// RecordRow projects a Record onto a Row. Absent fields contribute no key.
func RecordRow(rec Record) Row {
	row := Row{}
	setString := func(field, v string) {
		if v != "" {
			row[field] = v
		}
	}
	setString(FieldName, rec.Name)
	setString(FieldCompanyName, rec.CompanyName)
	setString(FieldEmail, rec.Email)
	setString(FieldPhone, rec.Phone)
	setString(FieldWebsite, rec.Website)
	setString(FieldContactPerson, rec.ContactPerson)
	setString(FieldPaymentTerms, rec.PaymentTerms)
	setString(FieldStatus, rec.Status)
	row[FieldIsPreferred] = rec.IsPreferred
	if rec.Address != nil {
		addr := *rec.Address
		row[FieldAddress] = &addr
	}
	if rec.CreditLimit != nil {
		row[FieldCreditLimit] = *rec.CreditLimit
	}
	if rec.CurrentBalance != nil {
		row[FieldCurrentBalance] = *rec.CurrentBalance
	}
	if rec.TotalSpent != nil {
		row[FieldTotalSpent] = *rec.TotalSpent
	}
	if rec.AverageOrderValue != nil {
		row[FieldAverageOrderValue] = *rec.AverageOrderValue
	}
	if rec.TotalPurchases != nil {
		row[FieldTotalPurchases] = *rec.TotalPurchases
	}
	if rec.Rating != nil {
		row[FieldRating] = *rec.Rating
	}
	if rec.DeliveryTime != nil {
		row[FieldDeliveryTime] = *rec.DeliveryTime
	}
	if rec.QualityRating != nil {
		row[FieldQualityRating] = *rec.QualityRating
	}
	if rec.CreatedAt != nil {
		row[FieldCreatedAt] = *rec.CreatedAt
	}
	if rec.LastPurchaseDate != nil {
		row[FieldLastPurchaseDate] = *rec.LastPurchaseDate
	}
	if len(rec.CustomFields) > 0 {
		custom := make(map[string]string, len(rec.CustomFields))
		for k, v := range rec.CustomFields {
			custom[k] = v
		}
		row[FieldCustomFields] = custom
	}
	return row
}
