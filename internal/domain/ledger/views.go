package ledger

import (
	"shopledger/internal/core/id"
	"shopledger/internal/domain/catalogs/product"
	"shopledger/internal/domain/catalogs/supplier"
	"shopledger/internal/domain/documents/sale"
	"shopledger/internal/domain/reports"
)

// LowStockProducts returns products with stock at or below their minimum.
func (l *Ledger) LowStockProducts() []product.Product {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.reports.LowStock()
}

// TopProducts ranks products by units sold, at most limit rows.
func (l *Ledger) TopProducts(limit int) []reports.ProductSales {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.reports.TopProducts(limit)
}

// RecentSales returns the newest sales first.
func (l *Ledger) RecentSales(limit int) []sale.Sale {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.reports.RecentSales(limit)
}

// CustomerHistory returns the sales attributed to a customer.
func (l *Ledger) CustomerHistory(customerID id.ID) reports.CustomerHistory {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.reports.CustomerHistory(customerID)
}

// Dashboard returns the headline figures.
func (l *Ledger) Dashboard() reports.Dashboard {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.reports.Dashboard()
}

// SupplierProducts returns the products supplied by supplierID.
func (l *Ledger) SupplierProducts(supplierID id.ID) []product.Product {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.reports.SupplierProducts(supplierID)
}

// ProductSupplier resolves a product's supplier; false when it cannot.
func (l *Ledger) ProductSupplier(productID id.ID) (supplier.Supplier, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.reports.ProductSupplier(productID)
}
