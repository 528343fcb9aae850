package ledger

import (
	"context"

	"shopledger/internal/core/apperror"
	"shopledger/internal/core/id"
	"shopledger/internal/domain/documents/purchase"
	"shopledger/internal/domain/documents/sale"
	"shopledger/pkg/logger"
)

// --- Sales ---

// ListSales returns sale history in posting order.
func (l *Ledger) ListSales() []sale.Sale {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sales.List()
}

// GetSale looks up a sale by ID.
func (l *Ledger) GetSale(saleID id.ID) (sale.Sale, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sales.Get(saleID)
}

// PostSale records c as a sale. See sale.Engine.Post for the rules.
func (l *Ledger) PostSale(ctx context.Context, c sale.Candidate) (sale.Sale, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s, err := l.engine.Post(ctx, c)
	if err != nil {
		return sale.Sale{}, err
	}
	l.written()
	l.observer.SalePosted(ctx, s)
	l.stockChanged(ctx)
	return s, nil
}

// --- Purchases ---

// ListPurchases returns all purchases in insertion order.
func (l *Ledger) ListPurchases() []purchase.Purchase {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.purchases.List()
}

// GetPurchase looks up a purchase by ID.
func (l *Ledger) GetPurchase(purchaseID id.ID) (purchase.Purchase, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.purchases.Get(purchaseID)
}

// AddPurchase records an order with an existing supplier. The supplier
// name is filled in from the catalog when not given.
func (l *Ledger) AddPurchase(ctx context.Context, in purchase.Input) (purchase.Purchase, error) {
	if err := in.Validate(ctx); err != nil {
		return purchase.Purchase{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	sup, ok := l.suppliers.Get(in.SupplierID)
	if !ok {
		return purchase.Purchase{}, apperror.NewValidation("supplier does not exist").
			WithDetail("field", "supplierId").
			WithDetail("value", in.SupplierID.String())
	}
	if in.SupplierName == "" {
		in.SupplierName = sup.Name
	}

	p := purchase.New(in, l.clock())
	if err := l.purchases.Add(ctx, p); err != nil {
		logger.Error(ctx, "failed to add purchase", "error", err)
		return purchase.Purchase{}, err
	}
	l.written()

	logger.Info(ctx, "purchase added", "id", p.ID, "supplier", p.SupplierName, "total", p.Total.StringFixed(2))
	return p, nil
}

// UpdatePurchase changes status and tracking dates. Stock is never
// touched, not even on receipt.
// A missing ID is not an error: found is false and nothing changes.
func (l *Ledger) UpdatePurchase(ctx context.Context, purchaseID id.ID, patch purchase.Patch) (p purchase.Purchase, found bool, err error) {
	if err := patch.Validate(ctx); err != nil {
		return purchase.Purchase{}, false, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock()
	found, err = l.purchases.Update(ctx, purchaseID, func(p purchase.Purchase) purchase.Purchase {
		return patch.Apply(p, now)
	})
	if err != nil || !found {
		return purchase.Purchase{}, false, err
	}
	l.written()

	p, _ = l.purchases.Get(purchaseID)
	return p, true, nil
}

// DeletePurchase removes a purchase.
func (l *Ledger) DeletePurchase(ctx context.Context, purchaseID id.ID) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	deleted, err := l.purchases.Delete(ctx, purchaseID)
	if err != nil || !deleted {
		return false, err
	}
	l.written()
	return true, nil
}
