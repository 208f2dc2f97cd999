package docstore

import (
	"context"

	"github.com/merza/backend/internal/domain/billing"
)

type invoiceDocument struct {
	Invoices []billing.Invoice `json:"invoices"`
}

// InvoiceRepository persists invoices as the {"invoices": [...]} document.
type InvoiceRepository struct {
	store *Store
}

// NewInvoiceRepository creates an invoice repository over the given store.
func NewInvoiceRepository(store *Store) *InvoiceRepository {
	return &InvoiceRepository{store: store}
}

func (r *InvoiceRepository) load() (invoiceDocument, error) {
	var doc invoiceDocument
	if err := r.store.Load(InvoiceDocument, &doc); err != nil {
		return doc, storageError(err)
	}
	return doc, nil
}

func (r *InvoiceRepository) save(doc invoiceDocument) error {
	if doc.Invoices == nil {
		doc.Invoices = []billing.Invoice{}
	}
	if err := r.store.Save(InvoiceDocument, doc); err != nil {
		return storageError(err)
	}
	return nil
}

// List returns all invoices in document order.
func (r *InvoiceRepository) List(ctx context.Context) ([]billing.Invoice, error) {
	release := r.store.Acquire(InvoiceDocument)
	defer release()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}
	if doc.Invoices == nil {
		return []billing.Invoice{}, nil
	}
	return doc.Invoices, nil
}

// FindByID returns the first invoice with the given id, or nil.
func (r *InvoiceRepository) FindByID(ctx context.Context, id int) (*billing.Invoice, error) {
	invoices, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range invoices {
		if invoices[i].ID == id {
			invoice := invoices[i]
			return &invoice, nil
		}
	}
	return nil, nil
}

// Count returns the number of stored invoices.
func (r *InvoiceRepository) Count(ctx context.Context) (int, error) {
	invoices, err := r.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(invoices), nil
}

// Add assigns the next id, appends and persists.
func (r *InvoiceRepository) Add(ctx context.Context, invoice billing.Invoice) (billing.Invoice, error) {
	release := r.store.Acquire(InvoiceDocument)
	defer release()

	doc, err := r.load()
	if err != nil {
		return billing.Invoice{}, err
	}
	maxID := 0
	for _, inv := range doc.Invoices {
		if inv.ID > maxID {
			maxID = inv.ID
		}
	}
	invoice.ID = maxID + 1
	if invoice.Items == nil {
		invoice.Items = []billing.InvoiceItem{}
	}
	doc.Invoices = append(doc.Invoices, invoice)
	if err := r.save(doc); err != nil {
		return billing.Invoice{}, err
	}
	return invoice, nil
}

// Update applies the patch to the matching invoice. The document is re-saved
// whether or not a match was found.
func (r *InvoiceRepository) Update(ctx context.Context, id int, patch billing.InvoicePatch) (*billing.Invoice, bool, error) {
	release := r.store.Acquire(InvoiceDocument)
	defer release()

	doc, err := r.load()
	if err != nil {
		return nil, false, err
	}
	var updated *billing.Invoice
	for i := range doc.Invoices {
		if doc.Invoices[i].ID == id {
			patch.Apply(&doc.Invoices[i])
			invoice := doc.Invoices[i]
			updated = &invoice
			break
		}
	}
	if err := r.save(doc); err != nil {
		return nil, false, err
	}
	return updated, updated != nil, nil
}

// SetStatus sets the matching invoice's status. The document is persisted
// either way.
func (r *InvoiceRepository) SetStatus(ctx context.Context, id int, status string) (bool, error) {
	release := r.store.Acquire(InvoiceDocument)
	defer release()

	doc, err := r.load()
	if err != nil {
		return false, err
	}
	found := false
	for i := range doc.Invoices {
		if doc.Invoices[i].ID == id {
			doc.Invoices[i].Status = status
			found = true
			break
		}
	}
	if err := r.save(doc); err != nil {
		return false, err
	}
	return found, nil
}

// Remove deletes the matching invoice, reporting whether anything was removed.
func (r *InvoiceRepository) Remove(ctx context.Context, id int) (bool, error) {
	release := r.store.Acquire(InvoiceDocument)
	defer release()

	doc, err := r.load()
	if err != nil {
		return false, err
	}
	kept := doc.Invoices[:0]
	for _, inv := range doc.Invoices {
		if inv.ID != id {
			kept = append(kept, inv)
		}
	}
	removed := len(kept) < len(doc.Invoices)
	doc.Invoices = kept
	if err := r.save(doc); err != nil {
		return false, err
	}
	return removed, nil
}
