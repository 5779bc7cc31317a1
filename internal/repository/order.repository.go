package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/emwambold/order-automation/internal/errs"
	"github.com/emwambold/order-automation/internal/model"
	"github.com/emwambold/order-automation/pkg/logger"
	"github.com/emwambold/order-automation/pkg/pg"
)

type OrderRepository struct {
	*pg.DB
}

func NewOrderRepository(db *pg.DB) *OrderRepository {
	return &OrderRepository{
		db,
	}
}

// AddOrder inserts an order for an existing customer and returns the new
// order id. Status defaults to pending and order_date to the database's
// current date.
func (r *OrderRepository) AddOrder(ctx context.Context, customerID int64, amount decimal.Decimal) (int64, error) {
	if amount.IsNegative() {
		return 0, errs.Validationf("amount", "must not be negative, got %s", amount)
	}

	entity := &OrderEntity{
		CustomerID: customerID,
		Amount:     amount,
	}

	if err := r.Session(ctx).Create(entity).Error; err != nil {
		logger.Error("failed to add order", "customer_id", customerID, "amount", amount.String(), "error", err)
		return 0, errs.WrapDatabase("insert order", err)
	}

	return entity.ID, nil
}

// CreateCustomerWithFirstOrder inserts a customer and its first order in one
// transaction: a failed order insert rolls the customer back too, so the
// pair either persists together or not at all.
func (r *OrderRepository) CreateCustomerWithFirstOrder(ctx context.Context, p model.CustomerWithFirstOrder) (int64, int64, error) {
	if err := p.Validate(); err != nil {
		return 0, 0, err
	}

	var customerID, orderID int64
	err := r.WithinTransaction(ctx, func(ctx context.Context) error {
		entity := newCustomerEntity(p)
		if err := r.Session(ctx).Create(entity).Error; err != nil {
			logger.Error("failed to insert customer", "last_name", p.LastName, "error", err)
			return errs.WrapDatabase("insert customer", err)
		}
		customerID = entity.ID

		// Joins the surrounding transaction through ctx.
		id, err := r.AddOrder(ctx, customerID, p.Amount)
		if err != nil {
			return err
		}
		orderID = id
		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	return customerID, orderID, nil
}
