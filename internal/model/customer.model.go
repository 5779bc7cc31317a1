package model

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/emwambold/order-automation/internal/errs"
)

// CustomerWithFirstOrder is the input for creating a customer together with
// its first order as one unit.
type CustomerWithFirstOrder struct {
	FirstName  string
	LastName   string
	Amount     decimal.Decimal
	MiddleName *string
	City       *string
}

func (p CustomerWithFirstOrder) Validate() error {
	if strings.TrimSpace(p.FirstName) == "" {
		return errs.NewValidation("first_name", "is required")
	}
	if strings.TrimSpace(p.LastName) == "" {
		return errs.NewValidation("last_name", "is required")
	}
	if p.Amount.IsNegative() {
		return errs.Validationf("amount", "must not be negative, got %s", p.Amount)
	}
	if p.MiddleName != nil && strings.TrimSpace(*p.MiddleName) == "" {
		return errs.NewValidation("middle_name", "must not be blank when set")
	}
	if p.City != nil && strings.TrimSpace(*p.City) == "" {
		return errs.NewValidation("city", "must not be blank when set")
	}
	return nil
}
