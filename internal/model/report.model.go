package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/emwambold/order-automation/internal/errs"
)

// UnknownCity is the display label substituted for a missing city. It is
// bound as a query parameter; the report queries and customer_revenue_view
// are the only places city shaping happens.
const UnknownCity = "unknown"

const reportDateLayout = "2006-01-02"

type CustomerRevenue struct {
	Name    string          `json:"name"`
	City    string          `json:"city"`
	Orders  int64           `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
}

type CityRevenue struct {
	City    string          `json:"city"`
	Orders  int64           `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
}

type StatusRevenue struct {
	Status  OrderStatus     `json:"status"`
	Orders  int64           `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
}

// DateRange is an inclusive calendar-date range received as text from the
// caller, the one boundary where runtime validation is still needed.
type DateRange struct {
	Start string
	End   string
}

func (p DateRange) Validate() error {
	start, err := time.Parse(reportDateLayout, p.Start)
	if err != nil {
		return errs.Validationf("start_date", "must be in YYYY-MM-DD format, got %q", p.Start)
	}
	end, err := time.Parse(reportDateLayout, p.End)
	if err != nil {
		return errs.Validationf("end_date", "must be in YYYY-MM-DD format, got %q", p.End)
	}
	if start.After(end) {
		return errs.Validationf("start_date", "%s must not be after end_date %s", p.Start, p.End)
	}
	return nil
}
