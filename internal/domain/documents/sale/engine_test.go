package sale

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopledger/internal/core/apperror"
	"shopledger/internal/core/id"
	"shopledger/internal/core/kv"
	"shopledger/internal/core/types"
	"shopledger/internal/domain"
	"shopledger/internal/domain/catalogs/customer"
	"shopledger/internal/domain/catalogs/product"
	"shopledger/internal/infrastructure/storage/memory"
)

var numberRE = regexp.MustCompile(`^(B001|F001)-\d{8}$`)

type fixture struct {
	store     *memory.Store
	products  *domain.Collection[product.Product]
	customers *domain.Collection[customer.Customer]
	sales     *domain.Collection[Sale]
	engine    *Engine
	now       time.Time
}

// rollbackTx restores the memory store when fn fails, the way a database
// transaction discards its writes.
type rollbackTx struct {
	store *memory.Store
}

func (r rollbackTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	snap := r.store.Snapshot()
	if err := fn(ctx); err != nil {
		r.store.Restore(snap)
		return err
	}
	return nil
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.New()
	f := &fixture{
		store:     store,
		products:  domain.NewCollection[product.Product](kv.SlotProducts, store),
		customers: domain.NewCollection[customer.Customer](kv.SlotCustomers, store),
		sales:     domain.NewCollection[Sale](kv.SlotSales, store),
		now:       time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
	}
	f.engine = NewEngine(f.products, f.customers, f.sales, nil, func() time.Time { return f.now })
	return f
}

func (f *fixture) addProduct(t *testing.T, name, price string, stock, minStock int) product.Product {
	t.Helper()
	p := product.New(product.Input{
		Name:     name,
		Price:    types.MustMoney(price),
		Stock:    stock,
		MinStock: minStock,
	}, f.now)
	require.NoError(t, f.products.Add(context.Background(), p))
	return p
}

func (f *fixture) addCustomer(t *testing.T, name string) customer.Customer {
	t.Helper()
	c := customer.New(customer.Input{Name: name}, f.now)
	require.NoError(t, f.customers.Add(context.Background(), c))
	return c
}

func candidateFor(t *testing.T, docType DocumentType, lines ...any) Candidate {
	t.Helper()
	cart := NewCart()
	for i := 0; i < len(lines); i += 2 {
		require.NoError(t, cart.Add(lines[i].(product.Product), lines[i+1].(int)))
	}
	return cart.Candidate(Checkout{
		CustomerName:  "Walk-in",
		PaymentMethod: PaymentCash,
		DocumentType:  docType,
	})
}

func TestPost_CheckoutScenario(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p1 := f.addProduct(t, "P1", "10", 5, 2)

	s, err := f.engine.Post(ctx, candidateFor(t, DocReceipt, p1, 3))
	require.NoError(t, err)

	assert.True(t, s.Subtotal.Equal(types.MustMoney("30")))
	assert.True(t, s.Tax.Equal(types.MustMoney("5.40")))
	assert.True(t, s.Total.Equal(types.MustMoney("35.40")))
	assert.Equal(t, "B001-00000001", s.DocumentNumber)
	assert.True(t, s.CreatedAt.Equal(f.now))

	got, ok := f.products.Get(p1.ID)
	require.True(t, ok)
	assert.Equal(t, 2, got.Stock)
	assert.True(t, got.IsLowStock())
	assert.True(t, got.UpdatedAt.Equal(f.now))

	assert.Equal(t, 1, f.sales.Len())
}

func TestPost_SequencesPerDocumentType(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.addProduct(t, "Nails", "0.50", 1000, 10)

	var receipts, invoices []string
	for i := 0; i < 3; i++ {
		r, err := f.engine.Post(ctx, candidateFor(t, DocReceipt, p, 1))
		require.NoError(t, err)
		receipts = append(receipts, r.DocumentNumber)

		if i < 2 {
			inv, err := f.engine.Post(ctx, candidateFor(t, DocInvoice, p, 1))
			require.NoError(t, err)
			invoices = append(invoices, inv.DocumentNumber)
		}
	}

	assert.Equal(t, []string{"B001-00000001", "B001-00000002", "B001-00000003"}, receipts)
	assert.Equal(t, []string{"F001-00000001", "F001-00000002"}, invoices)
	for _, n := range append(receipts, invoices...) {
		assert.Regexp(t, numberRE, n)
	}
	assert.Equal(t, 5, f.sales.Len())
}

func TestPost_DecrementsStock(t *testing.T) {
	f := newFixture(t)
	a := f.addProduct(t, "A", "3", 10, 1)
	b := f.addProduct(t, "B", "7", 4, 1)

	_, err := f.engine.Post(context.Background(), candidateFor(t, DocReceipt, a, 2, b, 1))
	require.NoError(t, err)

	gotA, _ := f.products.Get(a.ID)
	gotB, _ := f.products.Get(b.ID)
	assert.Equal(t, 8, gotA.Stock)
	assert.Equal(t, 3, gotB.Stock)
}

func TestPost_AllowsOverselling(t *testing.T) {
	f := newFixture(t)
	p := f.addProduct(t, "Rare", "100", 1, 0)

	_, err := f.engine.Post(context.Background(), candidateFor(t, DocReceipt, p, 3))
	require.NoError(t, err)

	got, _ := f.products.Get(p.ID)
	assert.Equal(t, -2, got.Stock)
}

func TestPost_UnmergedLinesUseObservedStock(t *testing.T) {
	f := newFixture(t)
	p := f.addProduct(t, "Tape", "2", 10, 0)

	c := candidateFor(t, DocReceipt, p, 2)
	c.Items = append(c.Items, Item{ProductID: p.ID, ProductName: p.Name, Quantity: 3, UnitPrice: p.Price, Total: types.LineTotal(3, p.Price)})

	_, err := f.engine.Post(context.Background(), c)
	require.NoError(t, err)

	got, _ := f.products.Get(p.ID)
	assert.Equal(t, 7, got.Stock, "each line decrements from the stock seen at posting time")
}

func TestPost_CreditsResolvedCustomer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.addProduct(t, "Hammer", "10", 5, 1)
	ana := f.addCustomer(t, "Ana")

	first := candidateFor(t, DocInvoice, p, 1)
	first.CustomerID = id.NewRef(ana.ID)
	first.CustomerName = ana.Name
	s1, err := f.engine.Post(ctx, first)
	require.NoError(t, err)

	second := candidateFor(t, DocInvoice, p, 2)
	second.CustomerID = id.NewRef(ana.ID)
	second.CustomerName = ana.Name
	s2, err := f.engine.Post(ctx, second)
	require.NoError(t, err)

	got, _ := f.customers.Get(ana.ID)
	assert.True(t, got.TotalPurchases.Equal(s1.Total.Add(s2.Total)), "got %s", got.TotalPurchases)
}

func TestPost_UnresolvedCustomerStillPosts(t *testing.T) {
	f := newFixture(t)
	p := f.addProduct(t, "Hammer", "10", 5, 1)
	ghost := id.New()

	c := candidateFor(t, DocReceipt, p, 1)
	c.CustomerID = &ghost

	s, err := f.engine.Post(context.Background(), c)
	require.NoError(t, err)
	assert.True(t, id.RefEquals(s.CustomerID, ghost))
	assert.Equal(t, 0, f.store.SaveCount(kv.SlotCustomers))
}

func TestPost_RejectsBeforeMutating(t *testing.T) {
	f := newFixture(t)
	p := f.addProduct(t, "Hammer", "10", 5, 1)
	missing := product.New(product.Input{Name: "Ghost", Price: types.MustMoney("1")}, f.now)

	tests := []struct {
		name   string
		mutate func(*Candidate)
	}{
		{"empty items", func(c *Candidate) { c.Items = nil }},
		{"missing product", func(c *Candidate) {
			c.Items = append(c.Items, Item{ProductID: missing.ID, Quantity: 1, UnitPrice: missing.Price, Total: missing.Price})
		}},
		{"zero quantity", func(c *Candidate) { c.Items[0].Quantity = 0 }},
		{"blank customer name", func(c *Candidate) { c.CustomerName = "  " }},
		{"unknown payment", func(c *Candidate) { c.PaymentMethod = "barter" }},
		{"unknown document", func(c *Candidate) { c.DocumentType = "credit_note" }},
		{"unknown status", func(c *Candidate) { c.Status = "draft" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := candidateFor(t, DocReceipt, p, 2)
			tt.mutate(&c)

			_, err := f.engine.Post(context.Background(), c)
			assert.True(t, apperror.IsInvalidSale(err), "got %v", err)

			got, _ := f.products.Get(p.ID)
			assert.Equal(t, 5, got.Stock)
			assert.Equal(t, 0, f.sales.Len())
		})
	}
}

func TestPost_SaveFailureSurfaces(t *testing.T) {
	f := newFixture(t)
	p := f.addProduct(t, "Hammer", "10", 5, 1)
	f.store.FailSaves(kv.SlotSales, errors.New("disk full"))

	_, err := f.engine.Post(context.Background(), candidateFor(t, DocReceipt, p, 1))

	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeStorage, appErr.Code)
	assert.Equal(t, 0, f.sales.Len())

	// Without a transaction the stock write stays, and readers see it.
	got, _ := f.products.Get(p.ID)
	assert.Equal(t, 4, got.Stock)
	assert.Equal(t, got.Stock, storedStock(t, f.store, p.ID))
}

func TestPost_RolledBackTransactionRestoresCollections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.engine = NewEngine(f.products, f.customers, f.sales, rollbackTx{store: f.store}, func() time.Time { return f.now })
	p := f.addProduct(t, "Hammer", "10", 5, 1)
	other := f.addProduct(t, "Nails", "1", 100, 10)
	ana := f.addCustomer(t, "Ana")
	f.store.FailSaves(kv.SlotSales, errors.New("connection reset"))

	c := candidateFor(t, DocInvoice, p, 3)
	c.CustomerID = id.NewRef(ana.ID)
	c.CustomerName = ana.Name
	_, err := f.engine.Post(ctx, c)
	require.Error(t, err)

	got, _ := f.products.Get(p.ID)
	assert.Equal(t, 5, got.Stock)
	assert.Equal(t, 5, storedStock(t, f.store, p.ID))
	gotAna, _ := f.customers.Get(ana.ID)
	assert.True(t, gotAna.TotalPurchases.IsZero(), "got %s", gotAna.TotalPurchases)
	assert.Equal(t, 0, f.sales.Len())

	// A later unrelated write must not persist the discarded decrement.
	_, err = f.products.Update(ctx, other.ID, func(p product.Product) product.Product {
		return product.WithStock(p, 90, f.now)
	})
	require.NoError(t, err)
	assert.Equal(t, 5, storedStock(t, f.store, p.ID))
}

func storedStock(t *testing.T, store *memory.Store, productID id.ID) int {
	t.Helper()
	reloaded := domain.NewCollection[product.Product](kv.SlotProducts, store)
	_, err := reloaded.Load(context.Background())
	require.NoError(t, err)
	p, ok := reloaded.Get(productID)
	require.True(t, ok)
	return p.Stock
}
