package crm

import "context"

// LeadRepository defines persistence for the lead collection.
// Every mutating call performs a full load-mutate-save cycle against the
// backing document; Update persists even when no record matched.
type LeadRepository interface {
	// List returns all leads in document order.
	List(ctx context.Context) ([]Lead, error)

	// FindByID returns the first lead with the given id, or nil.
	FindByID(ctx context.Context, id int) (*Lead, error)

	// Add assigns the next id, appends the lead and persists.
	Add(ctx context.Context, lead Lead) (Lead, error)

	// Update applies the patch to the lead with the given id. The returned
	// flag reports whether a matching lead was found.
	Update(ctx context.Context, id int, patch LeadPatch) (*Lead, bool, error)

	// Remove deletes the lead with the given id, reporting whether anything
	// was removed.
	Remove(ctx context.Context, id int) (bool, error)
}

// CustomerRepository defines persistence for the customer collection.
type CustomerRepository interface {
	List(ctx context.Context) ([]Customer, error)
	FindByID(ctx context.Context, id int) (*Customer, error)
	Add(ctx context.Context, customer Customer) (Customer, error)
	Update(ctx context.Context, id int, patch CustomerPatch) (*Customer, bool, error)
	Remove(ctx context.Context, id int) (bool, error)

	// Save overwrites the customer with the given id in place. Used by the
	// best-effort invoice cache update, which mutates a loaded customer.
	Save(ctx context.Context, customer Customer) (bool, error)
}
