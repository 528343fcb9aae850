// Package reports derives read-only views from the current ledger state.
//
// Every view is recomputed from the source on each call; nothing is cached.
package reports

import (
	"cmp"
	"slices"
	"time"

	"shopledger/internal/core/id"
	"shopledger/internal/core/types"
	"shopledger/internal/domain/catalogs/customer"
	"shopledger/internal/domain/catalogs/product"
	"shopledger/internal/domain/catalogs/supplier"
	"shopledger/internal/domain/documents/purchase"
	"shopledger/internal/domain/documents/sale"
)

// Source exposes snapshots of the ledger collections in insertion order.
type Source interface {
	Products() []product.Product
	Customers() []customer.Customer
	Suppliers() []supplier.Supplier
	Sales() []sale.Sale
	Purchases() []purchase.Purchase
}

// Service computes derived views over a Source.
type Service struct {
	source Source
	clock  func() time.Time
	loc    *time.Location
}

// NewService creates a reports service. Calendar days and months are taken
// in loc (UTC when nil).
func NewService(source Source, clock func() time.Time, loc *time.Location) *Service {
	if clock == nil {
		clock = time.Now
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Service{source: source, clock: clock, loc: loc}
}

// LowStock returns the products with stock at or below their minimum,
// in catalog order.
func (s *Service) LowStock() []product.Product {
	out := make([]product.Product, 0)
	for _, p := range s.source.Products() {
		if p.IsLowStock() {
			out = append(out, p)
		}
	}
	return out
}

// TopProducts ranks every product by units sold, most first. Ties keep
// catalog order. At most limit rows are returned; limit <= 0 yields none.
func (s *Service) TopProducts(limit int) []ProductSales {
	sold := make(map[id.ID]int)
	for _, sl := range s.source.Sales() {
		for _, item := range sl.Items {
			sold[item.ProductID] += item.Quantity
		}
	}

	products := s.source.Products()
	ranked := make([]ProductSales, len(products))
	for i, p := range products {
		ranked[i] = ProductSales{Product: p, QuantitySold: sold[p.ID]}
	}
	slices.SortStableFunc(ranked, func(a, b ProductSales) int {
		return cmp.Compare(b.QuantitySold, a.QuantitySold)
	})
	return truncate(ranked, limit)
}

// RecentSales returns at most limit sales, newest first.
func (s *Service) RecentSales(limit int) []sale.Sale {
	sales := s.source.Sales()
	slices.SortStableFunc(sales, func(a, b sale.Sale) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return truncate(sales, limit)
}

// CustomerHistory returns the sales attributed to customerID with their
// count and summed total. An unknown customer yields an empty history.
func (s *Service) CustomerHistory(customerID id.ID) CustomerHistory {
	h := CustomerHistory{
		CustomerID: customerID,
		Sales:      make([]sale.Sale, 0),
		Total:      types.Zero(),
	}
	for _, sl := range s.source.Sales() {
		if id.RefEquals(sl.CustomerID, customerID) {
			h.Sales = append(h.Sales, sl)
			h.Total = h.Total.Add(sl.Total)
		}
	}
	h.Count = len(h.Sales)
	return h
}

// MonthlySales sums sale totals per calendar month, oldest month first.
func (s *Service) MonthlySales() []MonthlyAmount {
	byMonth := make(map[string]*MonthlyAmount)
	for _, sl := range s.source.Sales() {
		month := sl.CreatedAt.In(s.loc).Format("2006-01")
		m, ok := byMonth[month]
		if !ok {
			m = &MonthlyAmount{Month: month, Amount: types.Zero()}
			byMonth[month] = m
		}
		m.Amount = m.Amount.Add(sl.Total)
		m.Count++
	}

	out := make([]MonthlyAmount, 0, len(byMonth))
	for _, m := range byMonth {
		out = append(out, *m)
	}
	slices.SortFunc(out, func(a, b MonthlyAmount) int {
		return cmp.Compare(a.Month, b.Month)
	})
	return out
}

// Dashboard computes the headline figures. "Today" is the current calendar
// date in the service location.
func (s *Service) Dashboard() Dashboard {
	today := dateOf(s.clock(), s.loc)
	sales := s.source.Sales()

	d := Dashboard{
		TotalRevenue:     types.Zero(),
		TodayRevenue:     types.Zero(),
		TotalSales:       len(sales),
		TotalProducts:    len(s.source.Products()),
		TotalCustomers:   len(s.source.Customers()),
		TotalSuppliers:   len(s.source.Suppliers()),
		LowStockProducts: len(s.LowStock()),
		MonthlySales:     s.MonthlySales(),
	}
	for _, sl := range sales {
		d.TotalRevenue = d.TotalRevenue.Add(sl.Total)
		if dateOf(sl.CreatedAt, s.loc) == today {
			d.TodaySales++
			d.TodayRevenue = d.TodayRevenue.Add(sl.Total)
		}
	}
	for _, p := range s.source.Purchases() {
		if p.Status == purchase.StatusPending {
			d.PendingPurchases++
		}
	}
	return d
}

// SupplierProducts returns the products that reference supplierID.
func (s *Service) SupplierProducts(supplierID id.ID) []product.Product {
	out := make([]product.Product, 0)
	for _, p := range s.source.Products() {
		if id.RefEquals(p.SupplierID, supplierID) {
			out = append(out, p)
		}
	}
	return out
}

// ProductSupplier resolves the supplier of a product. ok is false when the
// product is unknown, has no supplier, or its supplier was deleted.
func (s *Service) ProductSupplier(productID id.ID) (supplier.Supplier, bool) {
	products := s.source.Products()
	i := slices.IndexFunc(products, func(p product.Product) bool {
		return p.ID == productID
	})
	if i < 0 {
		return supplier.Supplier{}, false
	}
	ref := products[i].SupplierID
	if ref == nil {
		return supplier.Supplier{}, false
	}
	for _, sup := range s.source.Suppliers() {
		if sup.ID == *ref {
			return sup, true
		}
	}
	return supplier.Supplier{}, false
}

type civilDate struct {
	year  int
	month time.Month
	day   int
}

func dateOf(t time.Time, loc *time.Location) civilDate {
	y, m, d := t.In(loc).Date()
	return civilDate{y, m, d}
}

func truncate[T any](items []T, limit int) []T {
	if limit <= 0 {
		return make([]T, 0)
	}
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
