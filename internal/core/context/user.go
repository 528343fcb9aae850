// Package context provides request-scoped values extraction.
package context

import (
	"context"
)

// OperatorContext identifies the authenticated till operator.
type OperatorContext struct {
	Username  string
	SessionID string
}

type operatorContextKey struct{}

// WithOperator adds OperatorContext to context.
func WithOperator(ctx context.Context, op *OperatorContext) context.Context {
	return context.WithValue(ctx, operatorContextKey{}, op)
}

// GetOperator returns OperatorContext from context.
func GetOperator(ctx context.Context) *OperatorContext {
	if v, ok := ctx.Value(operatorContextKey{}).(*OperatorContext); ok {
		return v
	}
	return nil
}

// GetUsername returns the operator username from context or empty string.
func GetUsername(ctx context.Context) string {
	if op := GetOperator(ctx); op != nil {
		return op.Username
	}
	return ""
}
