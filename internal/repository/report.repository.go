package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/emwambold/order-automation/internal/errs"
	"github.com/emwambold/order-automation/internal/model"
	"github.com/emwambold/order-automation/pkg/logger"
	"github.com/emwambold/order-automation/pkg/pg"
)

type ReportRepository struct {
	*pg.DB
}

func NewReportRepository(db *pg.DB) *ReportRepository {
	return &ReportRepository{
		db,
	}
}

// CustomerRevenue reads customer_revenue_view: every customer, including
// those with zero orders, with display name, city, order count and total
// amount, highest revenue first. Tie order among equal revenues is whatever
// the database returns; callers must not depend on it.
func (r *ReportRepository) CustomerRevenue(ctx context.Context) ([]model.CustomerRevenue, error) {
	var rows []model.CustomerRevenue
	err := r.Session(ctx).
		Raw(`
            SELECT name, city, orders, revenue
            FROM customer_revenue_view
            ORDER BY revenue DESC
        `).
		Scan(&rows).Error
	if err != nil {
		logger.Error("failed to build customer revenue report", "error", err)
		return nil, errs.WrapDatabase("customer revenue report", err)
	}

	return rows, nil
}

// CityRevenueFiltered aggregates per city, counting only shipped and
// arrived orders. Cities whose orders are all pending or cancelled still
// appear, with zero count and revenue.
func (r *ReportRepository) CityRevenueFiltered(ctx context.Context) ([]model.CityRevenue, error) {
	var rows []model.CityRevenue
	err := r.Session(ctx).
		Raw(`
            SELECT
                COALESCE(c.city, ?) AS city,
                COUNT(
                    CASE
                        WHEN o.status NOT IN (?, ?)
                        THEN o.id
                    END
                ) AS orders,
                COALESCE(
                    SUM(
                        CASE
                            WHEN o.status NOT IN (?, ?)
                            THEN o.amount
                        END
                    ), 0) AS revenue
            FROM customers c
            LEFT JOIN orders o ON o.customer_id = c.id
            GROUP BY c.city
            ORDER BY revenue DESC
        `,
			model.UnknownCity,
			model.OrderStatusPending, model.OrderStatusCancelled,
			model.OrderStatusPending, model.OrderStatusCancelled,
		).
		Scan(&rows).Error
	if err != nil {
		logger.Error("failed to build city revenue report", "error", err)
		return nil, errs.WrapDatabase("city revenue report", err)
	}

	return rows, nil
}

// StatusBreakdown aggregates order count and revenue per status actually
// present, highest revenue first.
func (r *ReportRepository) StatusBreakdown(ctx context.Context) ([]model.StatusRevenue, error) {
	var rows []model.StatusRevenue
	err := r.Session(ctx).
		Raw(`
            SELECT
                o.status AS status,
                COUNT(o.id) AS orders,
                COALESCE(SUM(o.amount), 0) AS revenue
            FROM orders o
            GROUP BY o.status
            ORDER BY revenue DESC
        `).
		Scan(&rows).Error
	if err != nil {
		logger.Error("failed to build status report", "error", err)
		return nil, errs.WrapDatabase("status report", err)
	}

	return rows, nil
}

// RevenueBetween sums order amounts with order_date inside the inclusive
// [start, end] range. Both dates must be YYYY-MM-DD text and start must not
// be after end.
func (r *ReportRepository) RevenueBetween(ctx context.Context, start, end string) (decimal.Decimal, error) {
	rng := model.DateRange{Start: start, End: end}
	if err := rng.Validate(); err != nil {
		return decimal.Zero, err
	}

	var row struct {
		Revenue decimal.Decimal
	}
	err := r.Session(ctx).
		Raw(`
            SELECT COALESCE(SUM(amount), 0) AS revenue
            FROM orders
            WHERE date(order_date) BETWEEN date(?) AND date(?)
        `, start, end).
		Scan(&row).Error
	if err != nil {
		logger.Error("failed to calculate revenue between dates", "start", start, "end", end, "error", err)
		return decimal.Zero, errs.WrapDatabase("revenue between report", err)
	}

	return row.Revenue, nil
}
