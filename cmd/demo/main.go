package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/emwambold/order-automation/internal/config"
	"github.com/emwambold/order-automation/internal/model"
	"github.com/emwambold/order-automation/internal/repository"
	"github.com/emwambold/order-automation/internal/seed"
	"github.com/emwambold/order-automation/pkg/logger"
	"github.com/emwambold/order-automation/pkg/pg"
)

const (
	newOrderCustomerID = 1
	startDateRevenue   = "2025-12-01"
	endDateRevenue     = "2026-01-25"
)

func main() {
	err := config.Load(argContainsEnvPath())
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return
	}

	pgConf := pg.Config{
		User:     config.Get().PostgresUser,
		Host:     config.Get().PostgresHost,
		Port:     config.Get().PostgresPort,
		Password: config.Get().PostgresPassword,
		Database: config.Get().PostgresDatabase,
	}

	db, err := pg.Create(pgConf, config.Get().AppDebug)
	if err != nil {
		logger.Error("failed connecting to pg", "error", err)
		return
	}

	demoRepo := repository.NewDemoRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reportRepo := repository.NewReportRepository(db)

	ctx := context.Background()
	logger.Info("starting demo run", "run_id", uuid.NewString())

	runErr := run(ctx, demoRepo, orderRepo, reportRepo)

	// Close before exiting; os.Exit would skip a deferred close.
	if err := db.Close(); err != nil {
		logger.Error("failed closing pg", "error", err)
	}
	if runErr != nil {
		logger.Error("demo run failed", "error", runErr)
		os.Exit(1)
	}
}

func run(ctx context.Context, demoRepo *repository.DemoRepository, orderRepo *repository.OrderRepository, reportRepo *repository.ReportRepository) error {
	if err := demoRepo.Reset(ctx, seed.Customers, seed.Orders); err != nil {
		return err
	}

	amount := decimal.NewFromFloat(1 + rand.Float64()*99).Round(2)
	orderID, err := orderRepo.AddOrder(ctx, newOrderCustomerID, amount)
	if err != nil {
		return err
	}
	fmt.Printf("NEW ORDER: ID %d for %s\n", orderID, seed.Customers[newOrderCustomerID-1].FullName())

	customerID, firstOrderID, err := orderRepo.CreateCustomerWithFirstOrder(ctx, newCustomerRequest())
	if err != nil {
		return err
	}
	fmt.Printf("NEW ORDER: ID %d for the newly created customer with ID %d\n", firstOrderID, customerID)

	customerReport, err := reportRepo.CustomerRevenue(ctx)
	if err != nil {
		return err
	}
	fmt.Println("\nCUSTOMER SALES REPORT:")
	for _, row := range customerReport {
		fmt.Printf("   %s (%s): %d order(s), %s\n", row.Name, row.City, row.Orders, row.Revenue)
	}

	cityReport, err := reportRepo.CityRevenueFiltered(ctx)
	if err != nil {
		return err
	}
	fmt.Println("\nCITY SALES REPORT - only shipped and arrived orders included:")
	for _, row := range cityReport {
		fmt.Printf("   %s: %d order(s), %s\n", row.City, row.Orders, row.Revenue)
	}

	statusReport, err := reportRepo.StatusBreakdown(ctx)
	if err != nil {
		return err
	}
	fmt.Println("\nSTATUS SALES REPORT:")
	for _, row := range statusReport {
		fmt.Printf("   %s: %d order(s), %s\n", row.Status, row.Orders, row.Revenue)
	}

	revenue, err := reportRepo.RevenueBetween(ctx, startDateRevenue, endDateRevenue)
	if err != nil {
		return err
	}
	fmt.Printf("\nREVENUE BETWEEN %s AND %s: %s\n", startDateRevenue, endDateRevenue, revenue)

	return nil
}

func newCustomerRequest() model.CustomerWithFirstOrder {
	return model.CustomerWithFirstOrder{
		FirstName: "Neuer",
		LastName:  "Kunde",
		Amount:    decimal.RequireFromString("99.99"),
	}
}

func argContainsEnvPath() string {
	for _, v := range os.Args {
		if strings.Contains(v, "--env=") {
			s := strings.Split(v, "=")
			if _, err := os.Open(s[1]); err != nil {
				logger.Error("failed to open the passed env file, got error " + err.Error())
				return ""
			}
			return s[1]
		}
	}
	if _, err := os.Open(".env"); err != nil {
		return ""
	}
	return ".env"
}
