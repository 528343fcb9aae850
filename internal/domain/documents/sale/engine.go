package sale

import (
	"context"
	"fmt"
	"slices"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"shopledger/internal/core/apperror"
	"shopledger/internal/core/entity"
	"shopledger/internal/core/tx"
	"shopledger/internal/domain"
	"shopledger/internal/domain/catalogs/customer"
	"shopledger/internal/domain/catalogs/product"
	"shopledger/pkg/logger"
)

var tracer = otel.Tracer("shopledger/sale")

// Engine posts sales: it numbers the sale, decrements stock, credits the
// customer and appends the record to sale history.
//
// Engine does no locking. Numbering counts existing sales and then appends,
// so callers must serialize Post calls.
type Engine struct {
	products  *domain.Collection[product.Product]
	customers *domain.Collection[customer.Customer]
	sales     *domain.Collection[Sale]
	txManager tx.Manager
	clock     func() time.Time
}

// NewEngine creates a posting engine over the given collections.
// A nil txManager runs the side effects without a transaction.
func NewEngine(
	products *domain.Collection[product.Product],
	customers *domain.Collection[customer.Customer],
	sales *domain.Collection[Sale],
	txManager tx.Manager,
	clock func() time.Time,
) *Engine {
	if txManager == nil {
		txManager = tx.Nop{}
	}
	if clock == nil {
		clock = time.Now
	}
	return &Engine{
		products:  products,
		customers: customers,
		sales:     sales,
		txManager: txManager,
		clock:     clock,
	}
}

// Post validates c and records it as a sale.
//
// Nothing is mutated when validation fails. Stock is decremented from the
// value each product had when Post was called; stock may go negative.
func (e *Engine) Post(ctx context.Context, c Candidate) (Sale, error) {
	ctx, span := tracer.Start(ctx, "sale.post",
		trace.WithAttributes(
			attribute.String("sale.document_type", string(c.DocumentType)),
			attribute.Int("sale.items", len(c.Items)),
		))
	defer span.End()

	observed, err := e.intake(ctx, c)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "rejected")
		logger.Warn(ctx, "sale rejected", "error", err)
		return Sale{}, err
	}

	number, err := NextDocumentNumber(e.sales.List(), c.DocumentType)
	if err != nil {
		return Sale{}, err
	}

	now := e.clock()
	s := Sale{
		BaseEntity:     entity.NewBaseEntity(now),
		CustomerID:     c.CustomerID,
		CustomerName:   c.CustomerName,
		Items:          slices.Clone(c.Items),
		Subtotal:       c.Subtotal,
		Tax:            c.Tax,
		Total:          c.Total,
		PaymentMethod:  c.PaymentMethod,
		DocumentType:   c.DocumentType,
		DocumentNumber: number,
		Status:         c.Status,
	}
	span.SetAttributes(attribute.String("sale.document_number", number))

	products, customers, sales := e.products.List(), e.customers.List(), e.sales.List()
	err = e.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		for i, item := range s.Items {
			stock := observed[i] - item.Quantity
			_, err := e.products.Update(ctx, item.ProductID, func(p product.Product) product.Product {
				return product.WithStock(p, stock, now)
			})
			if err != nil {
				return fmt.Errorf("decrement stock of %s: %w", item.ProductID, err)
			}
		}

		if s.CustomerID != nil {
			_, err := e.customers.Update(ctx, *s.CustomerID, func(cu customer.Customer) customer.Customer {
				return cu.AddPurchase(s.Total)
			})
			if err != nil {
				return fmt.Errorf("credit customer %s: %w", *s.CustomerID, err)
			}
		}

		if err := e.sales.Add(ctx, s); err != nil {
			return fmt.Errorf("append sale: %w", err)
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "post failed")
		logger.Error(ctx, "sale posting failed", "number", number, "error", err)
		resync(ctx, e.products, products)
		resync(ctx, e.customers, customers)
		resync(ctx, e.sales, sales)
		return Sale{}, err
	}

	logger.Info(ctx, "sale posted",
		"id", s.ID,
		"number", s.DocumentNumber,
		"total", s.Total.StringFixed(2),
		"items", len(s.Items))

	return s, nil
}

// resync reloads c after a failed posting so readers see what the store
// committed: nothing after a rollback, the partial writes otherwise. If the
// store cannot be read, c falls back to its state before the posting.
func resync[T entity.Identifiable](ctx context.Context, c *domain.Collection[T], before []T) {
	if _, err := c.Load(ctx); err != nil {
		c.Restore(before)
		logger.Error(ctx, "reload after failed posting", "slot", c.Slot(), "error", err)
	}
}

// intake checks c against the catalog and returns the stock each item's
// product has right now.
func (e *Engine) intake(ctx context.Context, c Candidate) ([]int, error) {
	if err := c.Validate(ctx); err != nil {
		return nil, err
	}

	observed := make([]int, len(c.Items))
	for i, item := range c.Items {
		p, ok := e.products.Get(item.ProductID)
		if !ok {
			return nil, apperror.NewInvalidSale("product not found").
				WithDetail("line", i+1).
				WithDetail("productId", item.ProductID.String())
		}
		observed[i] = p.Stock
	}
	return observed, nil
}
