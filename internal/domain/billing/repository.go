package billing

import "context"

// InvoiceRepository defines persistence for the invoice collection.
type InvoiceRepository interface {
	List(ctx context.Context) ([]Invoice, error)
	FindByID(ctx context.Context, id int) (*Invoice, error)

	// Count returns the number of invoices currently stored. Invoice numbers
	// are derived from this count at creation time.
	Count(ctx context.Context) (int, error)

	Add(ctx context.Context, invoice Invoice) (Invoice, error)
	Update(ctx context.Context, id int, patch InvoicePatch) (*Invoice, bool, error)
	Remove(ctx context.Context, id int) (bool, error)

	// SetStatus sets the status of the invoice with the given id. The flag
	// reports whether a matching invoice was found; the document is persisted
	// either way.
	SetStatus(ctx context.Context, id int, status string) (bool, error)
}

// PaymentRepository defines persistence for the payment collection.
type PaymentRepository interface {
	List(ctx context.Context) ([]Payment, error)
	Add(ctx context.Context, payment Payment) (Payment, error)
}
