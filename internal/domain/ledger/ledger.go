// Package ledger is the entry point collaborators use to read and mutate
// shop state: catalogs, purchases, sale posting and derived views.
//
// A Ledger serializes every operation behind one mutex. Sale numbering
// counts existing sales and then appends, and relies on that.
package ledger

import (
	"context"
	"sync"
	"time"

	"shopledger/internal/core/kv"
	"shopledger/internal/core/tx"
	"shopledger/internal/domain"
	"shopledger/internal/domain/catalogs/customer"
	"shopledger/internal/domain/catalogs/product"
	"shopledger/internal/domain/catalogs/supplier"
	"shopledger/internal/domain/documents/purchase"
	"shopledger/internal/domain/documents/sale"
	"shopledger/internal/domain/reports"
	"shopledger/pkg/logger"
)

// Observer is notified after state changes commit.
// Implementations must not call back into the Ledger.
type Observer interface {
	// SalePosted runs once per posted sale.
	SalePosted(ctx context.Context, s sale.Sale)

	// StockLevels runs after any change that can move stock or the catalog,
	// with the current number of low-stock products.
	StockLevels(ctx context.Context, lowStock int)
}

type nopObserver struct{}

func (nopObserver) SalePosted(context.Context, sale.Sale) {}
func (nopObserver) StockLevels(context.Context, int)      {}

// Options tune a Ledger. The zero value is usable.
type Options struct {
	// TxManager wraps the side effects of sale posting (default tx.Nop)
	TxManager tx.Manager

	// Clock supplies timestamps (default time.Now)
	Clock func() time.Time

	// Location is the calendar used for "today" and monthly views (default UTC)
	Location *time.Location

	// Observer receives change notifications (default none)
	Observer Observer
}

// Ledger owns the five entity collections.
type Ledger struct {
	mu sync.Mutex

	products  *domain.Collection[product.Product]
	customers *domain.Collection[customer.Customer]
	suppliers *domain.Collection[supplier.Supplier]
	sales     *domain.Collection[sale.Sale]
	purchases *domain.Collection[purchase.Purchase]

	engine   *sale.Engine
	reports  *reports.Service
	observer Observer
	clock    func() time.Time

	fresh bool
}

// Open loads every slot from store and returns a ready Ledger.
func Open(ctx context.Context, store kv.Store, opts Options) (*Ledger, error) {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.TxManager == nil {
		opts.TxManager = tx.Nop{}
	}
	if opts.Observer == nil {
		opts.Observer = nopObserver{}
	}

	l := &Ledger{
		products:  domain.NewCollection[product.Product](kv.SlotProducts, store),
		customers: domain.NewCollection[customer.Customer](kv.SlotCustomers, store),
		suppliers: domain.NewCollection[supplier.Supplier](kv.SlotSuppliers, store),
		sales:     domain.NewCollection[sale.Sale](kv.SlotSales, store),
		purchases: domain.NewCollection[purchase.Purchase](kv.SlotPurchases, store),
		observer:  opts.Observer,
		clock:     opts.Clock,
	}
	l.engine = sale.NewEngine(l.products, l.customers, l.sales, opts.TxManager, opts.Clock)
	l.reports = reports.NewService(source{l}, opts.Clock, opts.Location)

	loaders := []interface {
		Slot() string
		Load(ctx context.Context) (bool, error)
	}{l.products, l.customers, l.suppliers, l.sales, l.purchases}

	anyFound := false
	for _, c := range loaders {
		found, err := c.Load(ctx)
		if err != nil {
			logger.Error(ctx, "failed to load slot", "slot", c.Slot(), "error", err)
			return nil, err
		}
		anyFound = anyFound || found
	}
	l.fresh = !anyFound

	logger.Info(ctx, "ledger opened",
		"fresh", l.fresh,
		"products", l.products.Len(),
		"customers", l.customers.Len(),
		"suppliers", l.suppliers.Len(),
		"sales", l.sales.Len(),
		"purchases", l.purchases.Len())

	l.observer.StockLevels(ctx, len(l.reports.LowStock()))
	return l, nil
}

// IsFresh reports whether the store held none of the five slots when the
// ledger was opened and nothing has been written since.
func (l *Ledger) IsFresh() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fresh
}

func (l *Ledger) written() {
	l.fresh = false
}

func (l *Ledger) stockChanged(ctx context.Context) {
	l.observer.StockLevels(ctx, len(l.reports.LowStock()))
}

// source feeds reports from the collections. Callers hold l.mu.
type source struct {
	l *Ledger
}

func (s source) Products() []product.Product    { return s.l.products.List() }
func (s source) Customers() []customer.Customer { return s.l.customers.List() }
func (s source) Suppliers() []supplier.Supplier { return s.l.suppliers.List() }
func (s source) Sales() []sale.Sale             { return s.l.sales.List() }
func (s source) Purchases() []purchase.Purchase { return s.l.purchases.List() }

var _ reports.Source = source{}
