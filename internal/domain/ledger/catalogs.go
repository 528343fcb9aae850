package ledger

import (
	"context"

	"shopledger/internal/core/id"
	"shopledger/internal/domain/catalogs/customer"
	"shopledger/internal/domain/catalogs/product"
	"shopledger/internal/domain/catalogs/supplier"
	"shopledger/pkg/logger"
)

// --- Products ---

// ListProducts returns all products in insertion order.
func (l *Ledger) ListProducts() []product.Product {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.products.List()
}

// GetProduct looks up a product by ID.
func (l *Ledger) GetProduct(productID id.ID) (product.Product, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.products.Get(productID)
}

// AddProduct validates in and appends a new product.
func (l *Ledger) AddProduct(ctx context.Context, in product.Input) (product.Product, error) {
	if err := in.Validate(ctx); err != nil {
		return product.Product{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	p := product.New(in, l.clock())
	if err := l.products.Add(ctx, p); err != nil {
		logger.Error(ctx, "failed to add product", "error", err)
		return product.Product{}, err
	}
	l.written()
	l.stockChanged(ctx)

	logger.Info(ctx, "product added", "id", p.ID, "name", p.Name)
	return p, nil
}

// UpdateProduct applies patch to the product and stamps UpdatedAt.
// A missing ID is not an error: found is false and nothing changes.
func (l *Ledger) UpdateProduct(ctx context.Context, productID id.ID, patch product.Patch) (p product.Product, found bool, err error) {
	if err := patch.Validate(ctx); err != nil {
		return product.Product{}, false, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock()
	found, err = l.products.Update(ctx, productID, func(p product.Product) product.Product {
		return patch.Apply(p, now)
	})
	if err != nil || !found {
		return product.Product{}, false, err
	}
	l.written()
	l.stockChanged(ctx)

	p, _ = l.products.Get(productID)
	return p, true, nil
}

// DeleteProduct removes a product. Sales that reference it keep their
// copied name and price.
func (l *Ledger) DeleteProduct(ctx context.Context, productID id.ID) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	deleted, err := l.products.Delete(ctx, productID)
	if err != nil || !deleted {
		return false, err
	}
	l.written()
	l.stockChanged(ctx)

	logger.Info(ctx, "product deleted", "id", productID)
	return true, nil
}

// --- Customers ---

// ListCustomers returns all customers in insertion order.
func (l *Ledger) ListCustomers() []customer.Customer {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.customers.List()
}

// GetCustomer looks up a customer by ID.
func (l *Ledger) GetCustomer(customerID id.ID) (customer.Customer, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.customers.Get(customerID)
}

// AddCustomer validates in and appends a new customer.
func (l *Ledger) AddCustomer(ctx context.Context, in customer.Input) (customer.Customer, error) {
	if err := in.Validate(ctx); err != nil {
		return customer.Customer{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	c := customer.New(in, l.clock())
	if err := l.customers.Add(ctx, c); err != nil {
		logger.Error(ctx, "failed to add customer", "error", err)
		return customer.Customer{}, err
	}
	l.written()

	logger.Info(ctx, "customer added", "id", c.ID)
	return c, nil
}

// UpdateCustomer applies patch to the customer.
// A missing ID is not an error: found is false and nothing changes.
func (l *Ledger) UpdateCustomer(ctx context.Context, customerID id.ID, patch customer.Patch) (c customer.Customer, found bool, err error) {
	if err := patch.Validate(ctx); err != nil {
		return customer.Customer{}, false, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	found, err = l.customers.Update(ctx, customerID, patch.Apply)
	if err != nil || !found {
		return customer.Customer{}, false, err
	}
	l.written()

	c, _ = l.customers.Get(customerID)
	return c, true, nil
}

// DeleteCustomer removes a customer. Sales keep the now dangling reference.
func (l *Ledger) DeleteCustomer(ctx context.Context, customerID id.ID) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	deleted, err := l.customers.Delete(ctx, customerID)
	if err != nil || !deleted {
		return false, err
	}
	l.written()

	logger.Info(ctx, "customer deleted", "id", customerID)
	return true, nil
}

// --- Suppliers ---

// ListSuppliers returns all suppliers in insertion order.
func (l *Ledger) ListSuppliers() []supplier.Supplier {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.suppliers.List()
}

// GetSupplier looks up a supplier by ID.
func (l *Ledger) GetSupplier(supplierID id.ID) (supplier.Supplier, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.suppliers.Get(supplierID)
}

// AddSupplier validates in and appends a new supplier.
func (l *Ledger) AddSupplier(ctx context.Context, in supplier.Input) (supplier.Supplier, error) {
	if err := in.Validate(ctx); err != nil {
		return supplier.Supplier{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	s := supplier.New(in, l.clock())
	if err := l.suppliers.Add(ctx, s); err != nil {
		logger.Error(ctx, "failed to add supplier", "error", err)
		return supplier.Supplier{}, err
	}
	l.written()

	logger.Info(ctx, "supplier added", "id", s.ID, "name", s.Name)
	return s, nil
}

// UpdateSupplier applies patch to the supplier.
// A missing ID is not an error: found is false and nothing changes.
func (l *Ledger) UpdateSupplier(ctx context.Context, supplierID id.ID, patch supplier.Patch) (s supplier.Supplier, found bool, err error) {
	if err := patch.Validate(ctx); err != nil {
		return supplier.Supplier{}, false, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	found, err = l.suppliers.Update(ctx, supplierID, patch.Apply)
	if err != nil || !found {
		return supplier.Supplier{}, false, err
	}
	l.written()

	s, _ = l.suppliers.Get(supplierID)
	return s, true, nil
}

// DeleteSupplier removes a supplier. Products and purchases keep the now
// dangling reference; lookups through it report not found.
func (l *Ledger) DeleteSupplier(ctx context.Context, supplierID id.ID) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	deleted, err := l.suppliers.Delete(ctx, supplierID)
	if err != nil || !deleted {
		return false, err
	}
	l.written()

	logger.Info(ctx, "supplier deleted", "id", supplierID)
	return true, nil
}
