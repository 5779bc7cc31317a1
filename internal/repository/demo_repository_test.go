package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emwambold/order-automation/internal/model"
	"github.com/emwambold/order-automation/internal/seed"
)

func TestDemoRepository_Reset(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds customers and orders", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewDemoRepository(db.DB)

		err := repo.Reset(ctx, seed.Customers, seed.Orders)
		require.NoError(t, err)

		var customers, orders int64
		require.NoError(t, db.rawDB.Model(&CustomerEntity{}).Count(&customers).Error)
		require.NoError(t, db.rawDB.Model(&OrderEntity{}).Count(&orders).Error)
		assert.EqualValues(t, len(seed.Customers), customers)
		assert.EqualValues(t, len(seed.Orders), orders)
	})

	t.Run("restarts identity counters on repeat resets", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewDemoRepository(db.DB)

		require.NoError(t, repo.Reset(ctx, seed.Customers, seed.Orders))
		require.NoError(t, repo.Reset(ctx, seed.Customers, seed.Orders))

		var maxID int64
		require.NoError(t, db.rawDB.Model(&CustomerEntity{}).Select("MAX(id)").Scan(&maxID).Error)
		assert.EqualValues(t, len(seed.Customers), maxID)

		// Seed orders reference customers positionally; after the second
		// reset every referenced id must still resolve.
		var orphans int64
		err := db.rawDB.Model(&OrderEntity{}).
			Where("customer_id NOT IN (?)", db.rawDB.Model(&CustomerEntity{}).Select("id")).
			Count(&orphans).Error
		require.NoError(t, err)
		assert.Zero(t, orphans)
	})

	t.Run("clears everything when given empty seeds", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewDemoRepository(db.DB)

		require.NoError(t, repo.Reset(ctx, seed.Customers, seed.Orders))
		require.NoError(t, repo.Reset(ctx, nil, nil))

		var customers, orders int64
		require.NoError(t, db.rawDB.Model(&CustomerEntity{}).Count(&customers).Error)
		require.NoError(t, db.rawDB.Model(&OrderEntity{}).Count(&orders).Error)
		assert.Zero(t, customers)
		assert.Zero(t, orders)
	})

	t.Run("view reflects exactly the seeded rows", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewDemoRepository(db.DB)
		require.NoError(t, repo.Reset(ctx, seed.Customers, seed.Orders))

		rows, err := NewReportRepository(db.DB).CustomerRevenue(ctx)
		require.NoError(t, err)
		require.Len(t, rows, len(seed.Customers))

		var totalOrders int64
		for _, row := range rows {
			totalOrders += row.Orders
		}
		assert.EqualValues(t, len(seed.Orders), totalOrders)
	})

	t.Run("view names match the seed display names", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewDemoRepository(db.DB)
		require.NoError(t, repo.Reset(ctx, seed.Customers, seed.Orders))

		rows, err := NewReportRepository(db.DB).CustomerRevenue(ctx)
		require.NoError(t, err)

		for _, c := range seed.Customers {
			_, ok := findCustomerRow(rows, c.FullName())
			assert.True(t, ok, c.FullName())
		}
	})

	t.Run("sentinel label in the view matches the model constant", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewDemoRepository(db.DB)
		require.NoError(t, repo.Reset(ctx, seed.Customers, seed.Orders))

		var cities []string
		require.NoError(t, db.rawDB.Table("customer_revenue_view").Where("name = ?", "Keine Stadt").Pluck("city", &cities).Error)
		require.Len(t, cities, 1)
		assert.Equal(t, model.UnknownCity, cities[0])
	})
}
