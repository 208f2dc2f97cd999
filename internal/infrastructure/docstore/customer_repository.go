package docstore

import (
	"context"

	"github.com/merza/backend/internal/domain/crm"
)

type customerDocument struct {
	Customers []crm.Customer `json:"customers"`
}

// CustomerRepository persists customers as the {"customers": [...]} document.
type CustomerRepository struct {
	store *Store
}

// NewCustomerRepository creates a customer repository over the given store.
func NewCustomerRepository(store *Store) *CustomerRepository {
	return &CustomerRepository{store: store}
}

func (r *CustomerRepository) load() (customerDocument, error) {
	var doc customerDocument
	if err := r.store.Load(CustomerDocument, &doc); err != nil {
		return doc, storageError(err)
	}
	return doc, nil
}

func (r *CustomerRepository) save(doc customerDocument) error {
	if doc.Customers == nil {
		doc.Customers = []crm.Customer{}
	}
	if err := r.store.Save(CustomerDocument, doc); err != nil {
		return storageError(err)
	}
	return nil
}

// List returns all customers in document order.
func (r *CustomerRepository) List(ctx context.Context) ([]crm.Customer, error) {
	release := r.store.Acquire(CustomerDocument)
	defer release()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}
	if doc.Customers == nil {
		return []crm.Customer{}, nil
	}
	return doc.Customers, nil
}

// FindByID returns the first customer with the given id, or nil.
func (r *CustomerRepository) FindByID(ctx context.Context, id int) (*crm.Customer, error) {
	customers, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range customers {
		if customers[i].ID == id {
			customer := customers[i]
			return &customer, nil
		}
	}
	return nil, nil
}

// Add assigns the next id, appends and persists.
func (r *CustomerRepository) Add(ctx context.Context, customer crm.Customer) (crm.Customer, error) {
	release := r.store.Acquire(CustomerDocument)
	defer release()

	doc, err := r.load()
	if err != nil {
		return crm.Customer{}, err
	}
	maxID := 0
	for _, c := range doc.Customers {
		if c.ID > maxID {
			maxID = c.ID
		}
	}
	customer.ID = maxID + 1
	if customer.Invoices == nil {
		customer.Invoices = []crm.CustomerInvoiceRef{}
	}
	doc.Customers = append(doc.Customers, customer)
	if err := r.save(doc); err != nil {
		return crm.Customer{}, err
	}
	return customer, nil
}

// Update applies the patch to the matching customer. The document is re-saved
// whether or not a match was found.
func (r *CustomerRepository) Update(ctx context.Context, id int, patch crm.CustomerPatch) (*crm.Customer, bool, error) {
	release := r.store.Acquire(CustomerDocument)
	defer release()

	doc, err := r.load()
	if err != nil {
		return nil, false, err
	}
	var updated *crm.Customer
	for i := range doc.Customers {
		if doc.Customers[i].ID == id {
			patch.Apply(&doc.Customers[i])
			customer := doc.Customers[i]
			updated = &customer
			break
		}
	}
	if err := r.save(doc); err != nil {
		return nil, false, err
	}
	return updated, updated != nil, nil
}

// Save overwrites the customer with the matching id in place.
func (r *CustomerRepository) Save(ctx context.Context, customer crm.Customer) (bool, error) {
	release := r.store.Acquire(CustomerDocument)
	defer release()

	doc, err := r.load()
	if err != nil {
		return false, err
	}
	found := false
	for i := range doc.Customers {
		if doc.Customers[i].ID == customer.ID {
			doc.Customers[i] = customer
			found = true
			break
		}
	}
	if err := r.save(doc); err != nil {
		return false, err
	}
	return found, nil
}

// Remove deletes the matching customer, reporting whether anything was removed.
func (r *CustomerRepository) Remove(ctx context.Context, id int) (bool, error) {
	release := r.store.Acquire(CustomerDocument)
	defer release()

	doc, err := r.load()
	if err != nil {
		return false, err
	}
	kept := doc.Customers[:0]
	for _, c := range doc.Customers {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	removed := len(kept) < len(doc.Customers)
	doc.Customers = kept
	if err := r.save(doc); err != nil {
		return false, err
	}
	return removed, nil
}
