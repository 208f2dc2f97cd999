package docstore

import (
	"context"

	"github.com/merza/backend/internal/domain/accounting"
)

type accountDocument struct {
	COA []accounting.Account `json:"COA"`
}

// AccountRepository persists the chart of accounts as the {"COA": [...]}
// document. A missing document is treated as an empty chart. Accounts stored
// without ids are backfilled positionally on read.
type AccountRepository struct {
	store *Store
}

// NewAccountRepository creates an account repository over the given store.
func NewAccountRepository(store *Store) *AccountRepository {
	return &AccountRepository{store: store}
}

func (r *AccountRepository) load() (accountDocument, error) {
	var doc accountDocument
	if err := r.store.Load(AccountsDocument, &doc); err != nil {
		if IsNotExist(err) {
			return accountDocument{COA: []accounting.Account{}}, nil
		}
		return doc, storageError(err)
	}
	backfillIDs(doc.COA)
	return doc, nil
}

func (r *AccountRepository) save(doc accountDocument) error {
	if doc.COA == nil {
		doc.COA = []accounting.Account{}
	}
	if err := r.store.Save(AccountsDocument, doc); err != nil {
		return storageError(err)
	}
	return nil
}

// backfillIDs assigns 1-based positional ids to accounts missing one.
func backfillIDs(accounts []accounting.Account) {
	for i := range accounts {
		if accounts[i].ID == 0 {
			accounts[i].ID = i + 1
		}
	}
}

// List returns all accounts in document order.
func (r *AccountRepository) List(ctx context.Context) ([]accounting.Account, error) {
	release := r.store.Acquire(AccountsDocument)
	defer release()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}
	if doc.COA == nil {
		return []accounting.Account{}, nil
	}
	return doc.COA, nil
}

// Add assigns the next id, appends and persists.
func (r *AccountRepository) Add(ctx context.Context, account accounting.Account) (accounting.Account, error) {
	release := r.store.Acquire(AccountsDocument)
	defer release()

	doc, err := r.load()
	if err != nil {
		return accounting.Account{}, err
	}
	maxID := 0
	for _, a := range doc.COA {
		if a.ID > maxID {
			maxID = a.ID
		}
	}
	account.ID = maxID + 1
	doc.COA = append(doc.COA, account)
	if err := r.save(doc); err != nil {
		return accounting.Account{}, err
	}
	return account, nil
}

// Update applies the patch to the matching account, reporting whether it was
// found. The document is persisted only when a match exists.
func (r *AccountRepository) Update(ctx context.Context, id int, patch accounting.AccountPatch) (*accounting.Account, bool, error) {
	release := r.store.Acquire(AccountsDocument)
	defer release()

	doc, err := r.load()
	if err != nil {
		return nil, false, err
	}
	for i := range doc.COA {
		if doc.COA[i].ID == id {
			patch.Apply(&doc.COA[i])
			account := doc.COA[i]
			if err := r.save(doc); err != nil {
				return nil, false, err
			}
			return &account, true, nil
		}
	}
	return nil, false, nil
}

// Remove deletes the matching account, reporting whether anything was removed.
func (r *AccountRepository) Remove(ctx context.Context, id int) (bool, error) {
	release := r.store.Acquire(AccountsDocument)
	defer release()

	doc, err := r.load()
	if err != nil {
		return false, err
	}
	kept := doc.COA[:0]
	for _, a := range doc.COA {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	removed := len(kept) < len(doc.COA)
	doc.COA = kept
	if err := r.save(doc); err != nil {
		return false, err
	}
	return removed, nil
}
