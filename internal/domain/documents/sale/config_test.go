package sale

import (
	"testing"

	"shopledger/internal/core/apperror"
)

func TestNextDocumentNumber(t *testing.T) {
	history := []Sale{
		{DocumentType: DocReceipt},
		{DocumentType: DocInvoice},
		{DocumentType: DocReceipt},
	}

	tests := []struct {
		name    string
		history []Sale
		docType DocumentType
		want    string
	}{
		{"first receipt", nil, DocReceipt, "B001-00000001"},
		{"first invoice", nil, DocInvoice, "F001-00000001"},
		{"third receipt", history, DocReceipt, "B001-00000003"},
		{"second invoice", history, DocInvoice, "F001-00000002"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextDocumentNumber(tt.history, tt.docType)
			if err != nil {
				t.Fatalf("NextDocumentNumber() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("NextDocumentNumber() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNextDocumentNumber_UnknownType(t *testing.T) {
	_, err := NextDocumentNumber(nil, "credit_note")
	if !apperror.IsInvalidSale(err) {
		t.Errorf("expected invalid sale error, got %v", err)
	}
}
