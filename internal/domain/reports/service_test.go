package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopledger/internal/core/entity"
	"shopledger/internal/core/id"
	"shopledger/internal/core/types"
	"shopledger/internal/domain/catalogs/customer"
	"shopledger/internal/domain/catalogs/product"
	"shopledger/internal/domain/catalogs/supplier"
	"shopledger/internal/domain/documents/purchase"
	"shopledger/internal/domain/documents/sale"
)

type fakeSource struct {
	products  []product.Product
	customers []customer.Customer
	suppliers []supplier.Supplier
	sales     []sale.Sale
	purchases []purchase.Purchase
}

func (f *fakeSource) Products() []product.Product    { return append([]product.Product(nil), f.products...) }
func (f *fakeSource) Customers() []customer.Customer { return append([]customer.Customer(nil), f.customers...) }
func (f *fakeSource) Suppliers() []supplier.Supplier { return append([]supplier.Supplier(nil), f.suppliers...) }
func (f *fakeSource) Sales() []sale.Sale             { return append([]sale.Sale(nil), f.sales...) }
func (f *fakeSource) Purchases() []purchase.Purchase { return append([]purchase.Purchase(nil), f.purchases...) }

var lima = time.FixedZone("UTC-5", -5*60*60)

func prod(name string, stock, minStock int) product.Product {
	return product.New(product.Input{Name: name, Price: types.MustMoney("1"), Stock: stock, MinStock: minStock}, time.Now())
}

func saleAt(at time.Time, total string, customerID id.Ref, items ...sale.Item) sale.Sale {
	return sale.Sale{
		BaseEntity: entity.BaseEntity{ID: id.New(), CreatedAt: at},
		CustomerID: customerID,
		Items:      items,
		Total:      types.MustMoney(total),
		Status:     sale.StatusCompleted,
	}
}

func line(p product.Product, qty int) sale.Item {
	return sale.Item{ProductID: p.ID, ProductName: p.Name, Quantity: qty}
}

func TestLowStock(t *testing.T) {
	src := &fakeSource{products: []product.Product{
		prod("at threshold", 2, 2),
		prod("above", 3, 2),
		prod("oversold", -1, 0),
	}}
	svc := NewService(src, nil, nil)

	low := svc.LowStock()

	require.Len(t, low, 2)
	assert.Equal(t, "at threshold", low[0].Name)
	assert.Equal(t, "oversold", low[1].Name)
	assert.Equal(t, low, svc.LowStock(), "repeatable without mutation")
}

func TestTopProducts(t *testing.T) {
	a, b, c, d := prod("A", 10, 0), prod("B", 10, 0), prod("C", 10, 0), prod("D", 10, 0)
	now := time.Now()
	src := &fakeSource{
		products: []product.Product{a, b, c, d},
		sales: []sale.Sale{
			saleAt(now, "1", nil, line(b, 2), line(c, 1)),
			saleAt(now, "1", nil, line(c, 1), line(d, 2)),
		},
	}
	svc := NewService(src, nil, nil)

	top := svc.TopProducts(3)

	require.Len(t, top, 3)
	assert.Equal(t, []string{"B", "C", "D"}, []string{top[0].Product.Name, top[1].Product.Name, top[2].Product.Name},
		"ties keep catalog order")
	assert.Equal(t, 2, top[0].QuantitySold)

	all := svc.TopProducts(10)
	assert.Len(t, all, 4)
	assert.Equal(t, "A", all[3].Product.Name)
	assert.Equal(t, 0, all[3].QuantitySold)

	assert.Empty(t, svc.TopProducts(0))
}

func TestRecentSales(t *testing.T) {
	base := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	src := &fakeSource{sales: []sale.Sale{
		saleAt(base, "1", nil),
		saleAt(base.Add(2*time.Hour), "2", nil),
		saleAt(base.Add(time.Hour), "3", nil),
	}}
	svc := NewService(src, nil, nil)

	recent := svc.RecentSales(2)

	require.Len(t, recent, 2)
	assert.True(t, recent[0].Total.Equal(types.MustMoney("2")))
	assert.True(t, recent[1].Total.Equal(types.MustMoney("3")))
	assert.True(t, src.sales[0].Total.Equal(types.MustMoney("1")), "history order untouched")
	assert.Empty(t, svc.RecentSales(0))
	assert.NotNil(t, svc.RecentSales(-1))
}

func TestCustomerHistory(t *testing.T) {
	ana, luis := id.New(), id.New()
	now := time.Now()
	src := &fakeSource{sales: []sale.Sale{
		saleAt(now, "35.40", id.NewRef(ana)),
		saleAt(now, "10", id.NewRef(luis)),
		saleAt(now, "4.60", id.NewRef(ana)),
		saleAt(now, "7", nil),
	}}
	svc := NewService(src, nil, nil)

	h := svc.CustomerHistory(ana)
	assert.Equal(t, 2, h.Count)
	assert.True(t, h.Total.Equal(types.MustMoney("40")))

	empty := svc.CustomerHistory(id.New())
	assert.Equal(t, 0, empty.Count)
	assert.NotNil(t, empty.Sales)
}

func TestDashboard_TodayUsesLocation(t *testing.T) {
	// 23:30 local on June 1st is already June 2nd in UTC.
	now := time.Date(2026, 6, 1, 23, 30, 0, 0, lima)
	src := &fakeSource{
		products:  []product.Product{prod("A", 1, 2), prod("B", 9, 2)},
		customers: []customer.Customer{customer.New(customer.Input{Name: "Ana"}, now)},
		sales: []sale.Sale{
			saleAt(time.Date(2026, 6, 1, 14, 0, 0, 0, time.UTC), "10", nil),
			saleAt(time.Date(2026, 6, 2, 1, 0, 0, 0, time.UTC), "20", nil),
			saleAt(time.Date(2026, 6, 2, 6, 0, 0, 0, time.UTC), "5", nil),
			saleAt(time.Date(2026, 5, 20, 10, 0, 0, 0, time.UTC), "100", nil),
		},
		purchases: []purchase.Purchase{
			{Status: purchase.StatusPending},
			{Status: purchase.StatusReceived},
		},
	}
	src.sales[3].Status = sale.StatusCancelled
	svc := NewService(src, func() time.Time { return now }, lima)

	d := svc.Dashboard()

	assert.True(t, d.TotalRevenue.Equal(types.MustMoney("135")), "cancelled sales still count")
	assert.Equal(t, 4, d.TotalSales)
	assert.Equal(t, 2, d.TodaySales)
	assert.True(t, d.TodayRevenue.Equal(types.MustMoney("30")))
	assert.Equal(t, 2, d.TotalProducts)
	assert.Equal(t, 1, d.TotalCustomers)
	assert.Equal(t, 1, d.LowStockProducts)
	assert.Equal(t, 1, d.PendingPurchases)

	require.Len(t, d.MonthlySales, 2)
	assert.Equal(t, "2026-05", d.MonthlySales[0].Month)
	assert.Equal(t, "2026-06", d.MonthlySales[1].Month)
	assert.True(t, d.MonthlySales[1].Amount.Equal(types.MustMoney("35")))
	assert.Equal(t, 3, d.MonthlySales[1].Count)
}

func TestSupplierViews(t *testing.T) {
	acme := supplier.New(supplier.Input{Name: "Acme"}, time.Now())
	gone := id.New()

	linked := prod("Hammer", 5, 1)
	linked.SupplierID = id.NewRef(acme.ID)
	dangling := prod("Saw", 5, 1)
	dangling.SupplierID = id.NewRef(gone)
	orphan := prod("Tape", 5, 1)

	src := &fakeSource{
		products:  []product.Product{linked, dangling, orphan},
		suppliers: []supplier.Supplier{acme},
	}
	svc := NewService(src, nil, nil)

	got, ok := svc.ProductSupplier(linked.ID)
	require.True(t, ok)
	assert.Equal(t, "Acme", got.Name)

	_, ok = svc.ProductSupplier(dangling.ID)
	assert.False(t, ok)
	_, ok = svc.ProductSupplier(orphan.ID)
	assert.False(t, ok)
	_, ok = svc.ProductSupplier(id.New())
	assert.False(t, ok)

	products := svc.SupplierProducts(acme.ID)
	require.Len(t, products, 1)
	assert.Equal(t, linked.ID, products[0].ID)
	assert.Empty(t, svc.SupplierProducts(gone))
}
