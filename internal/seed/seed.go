// Package seed carries the fixed demo dataset inserted by every reset. The
// rows are chosen so the reports come out deterministic: every status
// appears, one customer has a middle name, one has no city and one has no
// orders beyond the reset.
package seed

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/emwambold/order-automation/internal/model"
)

var Customers = []model.SeedCustomer{
	{FirstName: "Max", LastName: "Mustermann", City: ptr("Karlsruhe")},
	{FirstName: "Emanuel", LastName: "Wambold", City: ptr("Woerth am Rhein")},
	{FirstName: "Fremder", MiddleName: ptr("Unbekannter"), LastName: "Kunde", City: ptr("Geheimstadt")},
	{FirstName: "Keine", LastName: "Stadt"},
}

var Orders = []model.SeedOrder{
	{CustomerID: 1, Amount: decimal.RequireFromString("299.99"), Status: model.OrderStatusCancelled, OrderDate: date(2026, 1, 26)},
	{CustomerID: 1, Amount: decimal.RequireFromString("450.00"), Status: model.OrderStatusArrived, OrderDate: date(2026, 1, 25)},
	{CustomerID: 2, Amount: decimal.RequireFromString("0.50"), Status: model.OrderStatusShipped, OrderDate: date(2025, 12, 31)},
	{CustomerID: 3, Amount: decimal.RequireFromString("1250.75"), Status: model.OrderStatusPending, OrderDate: date(2028, 1, 20)},
	{CustomerID: 4, Amount: decimal.RequireFromString("75.75"), Status: model.OrderStatusArrived, OrderDate: date(2026, 1, 30)},
}

func ptr(s string) *string {
	return &s
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
