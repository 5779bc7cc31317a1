package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/emwambold/order-automation/pkg/pg"
)

// Same body as migrations/00003; the test database needs the view the
// customer revenue report reads.
const testViewDDL = `
CREATE VIEW customer_revenue_view AS
SELECT
    c.first_name
        || CASE WHEN c.middle_name IS NOT NULL THEN ' ' || c.middle_name ELSE '' END
        || ' ' || c.last_name AS name,
    COALESCE(c.city, 'unknown') AS city,
    COUNT(o.id) AS orders,
    COALESCE(SUM(o.amount), 0) AS revenue
FROM customers c
LEFT JOIN orders o ON o.customer_id = c.id
GROUP BY c.id, c.first_name, c.middle_name, c.last_name, c.city;
`

type testDB struct {
	*pg.DB
	rawDB *gorm.DB
}

func setupTestDB(t *testing.T) *testDB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&CustomerEntity{}, &OrderEntity{})
	require.NoError(t, err)

	err = db.Exec(testViewDDL).Error
	require.NoError(t, err)

	return &testDB{
		DB:    pg.New(db),
		rawDB: db,
	}
}
