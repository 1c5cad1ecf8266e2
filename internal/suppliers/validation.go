package suppliers

import (
	"fmt"
	"strings"

	"github.com/stockbook-erp/stockbook/internal/shared"
)

func (s *Service) validate(sup Supplier) error {
	if strings.TrimSpace(sup.Code) == "" {
		return fmt.Errorf("%w: supplier code is required", shared.ErrValidation)
	}
	if strings.TrimSpace(sup.Name) == "" {
		return fmt.Errorf("%w: supplier name is required", shared.ErrValidation)
	}
	if sup.CreditLimit.IsNegative() {
		return fmt.Errorf("%w: credit limit cannot be negative", shared.ErrValidation)
	}
	return nil
}
