package accounting

import "context"

// AccountRepository defines persistence for the chart of accounts.
// Unlike the other repositories, a missing backing document is treated as an
// empty chart rather than a storage failure.
type AccountRepository interface {
	List(ctx context.Context) ([]Account, error)
	Add(ctx context.Context, account Account) (Account, error)
	Update(ctx context.Context, id int, patch AccountPatch) (*Account, bool, error)
	Remove(ctx context.Context, id int) (bool, error)
}
