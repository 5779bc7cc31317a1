package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// SeedCustomer and SeedOrder are the demo reset tuples. Seed orders
// reference seed customers by position: after an identity restart the n-th
// seed customer gets id n.
type SeedCustomer struct {
	FirstName  string
	MiddleName *string
	LastName   string
	City       *string
}

// FullName renders the console display name of a seed customer, matching
// the name column customer_revenue_view derives: first, optional middle and
// last name joined by single spaces.
func (c SeedCustomer) FullName() string {
	parts := []string{c.FirstName}
	if c.MiddleName != nil {
		parts = append(parts, *c.MiddleName)
	}
	parts = append(parts, c.LastName)
	return strings.Join(parts, " ")
}

type SeedOrder struct {
	CustomerID int64
	Amount     decimal.Decimal
	Status     OrderStatus
	OrderDate  time.Time
}
