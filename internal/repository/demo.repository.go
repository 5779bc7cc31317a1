package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/emwambold/order-automation/internal/errs"
	"github.com/emwambold/order-automation/internal/model"
	"github.com/emwambold/order-automation/pkg/logger"
	"github.com/emwambold/order-automation/pkg/pg"
)

type DemoRepository struct {
	*pg.DB
}

func NewDemoRepository(db *pg.DB) *DemoRepository {
	return &DemoRepository{
		db,
	}
}

// Reset clears all customer and order rows, restarts the identity counters
// and bulk-inserts the seed tuples, customers before orders since seed
// orders reference customer ids by position. One transaction: any failure
// leaves the prior state intact.
func (r *DemoRepository) Reset(ctx context.Context, customers []model.SeedCustomer, orders []model.SeedOrder) error {
	err := r.WithinTransaction(ctx, func(ctx context.Context) error {
		tx := r.Session(ctx)

		if err := truncateAll(tx); err != nil {
			return errs.WrapDatabase("truncate tables", err)
		}

		if len(customers) > 0 {
			entities := toCustomerEntities(customers)
			if err := tx.Create(&entities).Error; err != nil {
				return errs.WrapDatabase("insert seed customers", err)
			}
		}

		if len(orders) > 0 {
			entities := toOrderEntities(orders)
			if err := tx.Create(&entities).Error; err != nil {
				return errs.WrapDatabase("insert seed orders", err)
			}
		}

		return nil
	})
	if err != nil {
		logger.Error("failed to reset demo data", "error", err)
		return err
	}

	logger.Info("demo data has been reset", "customers", len(customers), "orders", len(orders))
	return nil
}

func truncateAll(tx *gorm.DB) error {
	if tx.Dialector.Name() == "postgres" {
		return tx.Exec("TRUNCATE TABLE orders, customers RESTART IDENTITY CASCADE").Error
	}

	// The in-memory sqlite test database has no TRUNCATE; delete rows and
	// clear the autoincrement counters instead.
	if err := tx.Exec("DELETE FROM orders").Error; err != nil {
		return err
	}
	if err := tx.Exec("DELETE FROM customers").Error; err != nil {
		return err
	}
	err := tx.Exec("DELETE FROM sqlite_sequence WHERE name IN ('orders', 'customers')").Error
	if err != nil && !strings.Contains(err.Error(), "no such table") {
		// sqlite_sequence only exists once an autoincrement insert happened.
		return err
	}
	return nil
}
