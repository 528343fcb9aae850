package main

import (
	"context"
	"fmt"

	"shopledger/internal/config"
	"shopledger/internal/core/id"
	"shopledger/internal/core/types"
	"shopledger/internal/domain/catalogs/customer"
	"shopledger/internal/domain/catalogs/product"
	"shopledger/internal/domain/catalogs/supplier"
	"shopledger/internal/domain/ledger"
	"shopledger/pkg/logger"
)

// checkDurable rejects drivers whose data would vanish when the seed process
// exits.
func checkDurable(cfg config.StorageConfig) error {
	if cfg.Driver == config.DriverMemory {
		return fmt.Errorf("STORAGE_DRIVER %q does not outlive the seed process; use %q or %q",
			cfg.Driver, config.DriverFile, config.DriverPostgres)
	}
	return nil
}

// seedDemoData fills a fresh ledger with two suppliers, four products and
// two customers. It reports false and does nothing when l is not fresh.
func seedDemoData(ctx context.Context, l *ledger.Ledger) (bool, error) {
	if !l.IsFresh() {
		return false, nil
	}

	hardware, err := l.AddSupplier(ctx, supplier.Input{
		Name:          "Hammerhead Hardware Ltd",
		Email:         "sales@hammerhead.example",
		Phone:         "01-234-5678",
		Address:       "123 Industrial Ave",
		TaxNumber:     "20123456789",
		ContactPerson: "John Parker",
		PaymentTerms:  "30 days",
	})
	if err != nil {
		return false, fmt.Errorf("add supplier: %w", err)
	}

	fasteners, err := l.AddSupplier(ctx, supplier.Input{
		Name:          "Fastener Distribution Co",
		Email:         "info@fasteners.example",
		Phone:         "01-876-5432",
		Address:       "456 Commerce St",
		TaxNumber:     "20987654321",
		ContactPerson: "Mary Garcia",
		PaymentTerms:  "Cash",
	})
	if err != nil {
		return false, fmt.Errorf("add supplier: %w", err)
	}

	products := []product.Input{
		{
			Name: "Claw Hammer 16oz", Category: "Tools", Price: types.MustMoney("35.50"),
			Stock: 25, MinStock: 5, MaxStock: 50, SupplierID: id.NewRef(hardware.ID),
			Description: "Carpenter's hammer, wooden handle, tempered steel head",
			Barcode:     "7891234567890",
		},
		{
			Name: "Phillips Screwdriver #2", Category: "Tools", Price: types.MustMoney("12.80"),
			Stock: 3, MinStock: 10, MaxStock: 40, SupplierID: id.NewRef(hardware.ID),
			Description: "Phillips #2 tip, ergonomic grip",
			Barcode:     "7891234567891",
		},
		{
			Name: `Self-tapping Screws 3/8"`, Category: "Fasteners", Price: types.MustMoney("0.25"),
			Stock: 500, MinStock: 100, MaxStock: 1000, SupplierID: id.NewRef(fasteners.ID),
			Description: "Flat-head wood screws",
			Barcode:     "7891234567892",
		},
		{
			Name: "White Latex Paint 1 Gallon", Category: "Paint", Price: types.MustMoney("78.90"),
			Stock: 2, MinStock: 5, MaxStock: 20, SupplierID: id.NewRef(hardware.ID),
			Description: "Interior latex paint, matte white",
			Barcode:     "7891234567893",
		},
	}
	for _, in := range products {
		if _, err := l.AddProduct(ctx, in); err != nil {
			return false, fmt.Errorf("add product %q: %w", in.Name, err)
		}
	}

	customers := []customer.Input{
		{
			Name: "Carlos Mendoza", Email: "carlos.mendoza@example.com", Phone: "987-654-321",
			Address: "789 Liberty Ave", DocumentType: customer.DocNationalID, DocumentNumber: "12345678",
		},
		{
			Name: "ABC Construction Inc", Email: "purchasing@abc.example", Phone: "01-555-0123",
			Address: "321 Builders Rd", DocumentType: customer.DocTaxID, DocumentNumber: "20555123456",
		},
	}
	for _, in := range customers {
		if _, err := l.AddCustomer(ctx, in); err != nil {
			return false, fmt.Errorf("add customer %q: %w", in.Name, err)
		}
	}

	logger.Info(ctx, "demo data seeded",
		"suppliers", 2,
		"products", len(products),
		"customers", len(customers))
	return true, nil
}
