package sale

import (
	"shopledger/internal/core/apperror"
	"shopledger/pkg/numerator"
)

// series maps each document type to its printed numbering series.
var series = map[DocumentType]numerator.Config{
	DocReceipt: numerator.DefaultConfig("B001"),
	DocInvoice: numerator.DefaultConfig("F001"),
}

// NextDocumentNumber returns the number the next sale of docType receives:
// one past the count of existing sales of the same type.
//
// Deleting a sale would let a number repeat, which is why sales cannot be
// deleted.
func NextDocumentNumber(existing []Sale, docType DocumentType) (string, error) {
	cfg, ok := series[docType]
	if !ok {
		return "", apperror.NewInvalidSale("unknown document type").
			WithDetail("value", string(docType))
	}

	count := 0
	for _, s := range existing {
		if s.DocumentType == docType {
			count++
		}
	}
	return numerator.Next(cfg, count), nil
}
