package docstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/merza/backend/internal/domain/accounting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepository_MissingDocumentIsEmptyChart(t *testing.T) {
	repo := NewAccountRepository(newTestStore(t))

	accounts, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestAccountRepository_BackfillsMissingIDs(t *testing.T) {
	store := newTestStore(t)
	doc := `{"COA": [
  {"accountCode": "1000", "accountName": "Cash", "accountType": "Asset", "vatApplicable": "No"},
  {"accountCode": "4000", "accountName": "Sales", "accountType": "Revenue", "vatApplicable": "Yes"}
]}`
	require.NoError(t, os.WriteFile(filepath.Join(store.Dir(), AccountsDocument), []byte(doc), 0o644))
	repo := NewAccountRepository(store)

	accounts, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, 1, accounts[0].ID)
	assert.Equal(t, 2, accounts[1].ID)
}

func TestAccountRepository_AddContinuesFromMaxID(t *testing.T) {
	repo := NewAccountRepository(newTestStore(t))
	ctx := context.Background()

	first, err := repo.Add(ctx, accounting.Account{AccountCode: "1000", AccountName: "Cash", AccountType: "Asset"})
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)

	second, err := repo.Add(ctx, accounting.Account{AccountCode: "2000", AccountName: "Payables", AccountType: "Liability"})
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)
}

func TestAccountRepository_UpdateMissingDoesNotPersist(t *testing.T) {
	store := newTestStore(t)
	repo := NewAccountRepository(store)
	ctx := context.Background()

	_, err := repo.Add(ctx, accounting.Account{AccountCode: "1000", AccountName: "Cash", AccountType: "Asset"})
	require.NoError(t, err)

	name := "Ghost"
	account, found, err := repo.Update(ctx, 99, accounting.AccountPatch{AccountName: &name})
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, account)
}

func TestAccountRepository_UpdatePatchesAccount(t *testing.T) {
	repo := NewAccountRepository(newTestStore(t))
	ctx := context.Background()

	created, err := repo.Add(ctx, accounting.Account{AccountCode: "1000", AccountName: "Cash", AccountType: "Asset", VATApplicable: "No"})
	require.NoError(t, err)

	vat := "Yes"
	updated, found, err := repo.Update(ctx, created.ID, accounting.AccountPatch{VATApplicable: &vat})
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Yes", updated.VATApplicable)
	assert.Equal(t, "Cash", updated.AccountName)
}

func TestAccountRepository_Remove(t *testing.T) {
	repo := NewAccountRepository(newTestStore(t))
	ctx := context.Background()

	created, err := repo.Add(ctx, accounting.Account{AccountCode: "1000", AccountName: "Cash", AccountType: "Asset"})
	require.NoError(t, err)

	removed, err := repo.Remove(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	accounts, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, accounts)
}
