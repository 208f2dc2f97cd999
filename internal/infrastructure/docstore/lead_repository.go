package docstore

import (
	"context"

	"github.com/merza/backend/internal/domain/crm"
)

type leadDocument struct {
	Leads []crm.Lead `json:"leads"`
}

// LeadRepository persists leads as the {"leads": [...]} document.
type LeadRepository struct {
	store *Store
}

// NewLeadRepository creates a lead repository over the given store.
func NewLeadRepository(store *Store) *LeadRepository {
	return &LeadRepository{store: store}
}

func (r *LeadRepository) load() (leadDocument, error) {
	var doc leadDocument
	if err := r.store.Load(LeadsDocument, &doc); err != nil {
		return doc, storageError(err)
	}
	return doc, nil
}

func (r *LeadRepository) save(doc leadDocument) error {
	if doc.Leads == nil {
		doc.Leads = []crm.Lead{}
	}
	if err := r.store.Save(LeadsDocument, doc); err != nil {
		return storageError(err)
	}
	return nil
}

// List returns all leads in document order.
func (r *LeadRepository) List(ctx context.Context) ([]crm.Lead, error) {
	release := r.store.Acquire(LeadsDocument)
	defer release()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}
	if doc.Leads == nil {
		return []crm.Lead{}, nil
	}
	return doc.Leads, nil
}

// FindByID returns the first lead with the given id, or nil.
func (r *LeadRepository) FindByID(ctx context.Context, id int) (*crm.Lead, error) {
	leads, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range leads {
		if leads[i].ID == id {
			lead := leads[i]
			return &lead, nil
		}
	}
	return nil, nil
}

// Add assigns the next id, appends and persists.
func (r *LeadRepository) Add(ctx context.Context, lead crm.Lead) (crm.Lead, error) {
	release := r.store.Acquire(LeadsDocument)
	defer release()

	doc, err := r.load()
	if err != nil {
		return crm.Lead{}, err
	}
	maxID := 0
	for _, l := range doc.Leads {
		if l.ID > maxID {
			maxID = l.ID
		}
	}
	lead.ID = maxID + 1
	doc.Leads = append(doc.Leads, lead)
	if err := r.save(doc); err != nil {
		return crm.Lead{}, err
	}
	return lead, nil
}

// Update applies the patch to the matching lead. The document is re-saved
// whether or not a match was found.
func (r *LeadRepository) Update(ctx context.Context, id int, patch crm.LeadPatch) (*crm.Lead, bool, error) {
	release := r.store.Acquire(LeadsDocument)
	defer release()

	doc, err := r.load()
	if err != nil {
		return nil, false, err
	}
	var updated *crm.Lead
	for i := range doc.Leads {
		if doc.Leads[i].ID == id {
			patch.Apply(&doc.Leads[i])
			lead := doc.Leads[i]
			updated = &lead
			break
		}
	}
	if err := r.save(doc); err != nil {
		return nil, false, err
	}
	return updated, updated != nil, nil
}

// Remove deletes the matching lead, reporting whether anything was removed.
func (r *LeadRepository) Remove(ctx context.Context, id int) (bool, error) {
	release := r.store.Acquire(LeadsDocument)
	defer release()

	doc, err := r.load()
	if err != nil {
		return false, err
	}
	kept := doc.Leads[:0]
	for _, l := range doc.Leads {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	removed := len(kept) < len(doc.Leads)
	doc.Leads = kept
	if err := r.save(doc); err != nil {
		return false, err
	}
	return removed, nil
}
