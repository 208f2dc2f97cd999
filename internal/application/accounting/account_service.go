package accounting

import (
	"context"

	"github.com/merza/backend/internal/domain/accounting"
	"github.com/merza/backend/internal/domain/shared"
)

// AddAccountRequest carries the fields for creating a chart-of-accounts
// entry. VAT applicability arrives as a boolean and is stored as "Yes"/"No".
type AddAccountRequest struct {
	AccountCode   string `json:"accountCode" binding:"required"`
	AccountName   string `json:"accountName" binding:"required"`
	AccountType   string `json:"accountType" binding:"required"`
	Description   string `json:"description"`
	VATApplicable bool   `json:"vatApplicable"`
}

// EditAccountRequest carries a full replacement of an account's fields.
// Unlike the other entities, editing a missing account is a reported
// not-found, not a silent no-op.
type EditAccountRequest struct {
	AccountCode   string `json:"accountCode" binding:"required"`
	AccountName   string `json:"accountName" binding:"required"`
	AccountType   string `json:"accountType" binding:"required"`
	Description   string `json:"description"`
	VATApplicable bool   `json:"vatApplicable"`
}

// AccountService handles chart-of-accounts operations.
type AccountService struct {
	accountRepo accounting.AccountRepository
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo accounting.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

// List returns all accounts, backfilling missing ids positionally.
func (s *AccountService) List(ctx context.Context) ([]accounting.Account, error) {
	return s.accountRepo.List(ctx)
}

// Add creates an account.
func (s *AccountService) Add(ctx context.Context, req AddAccountRequest) (accounting.Account, error) {
	account := accounting.Account{
		AccountCode:   req.AccountCode,
		AccountName:   req.AccountName,
		AccountType:   req.AccountType,
		Description:   req.Description,
		VATApplicable: accounting.VATApplicableString(req.VATApplicable),
	}
	return s.accountRepo.Add(ctx, account)
}

// Edit replaces an account's fields.
func (s *AccountService) Edit(ctx context.Context, id int, req EditAccountRequest) (accounting.Account, error) {
	vat := accounting.VATApplicableString(req.VATApplicable)
	patch := accounting.AccountPatch{
		AccountCode:   &req.AccountCode,
		AccountName:   &req.AccountName,
		AccountType:   &req.AccountType,
		Description:   &req.Description,
		VATApplicable: &vat,
	}
	updated, found, err := s.accountRepo.Update(ctx, id, patch)
	if err != nil {
		return accounting.Account{}, err
	}
	if !found {
		return accounting.Account{}, shared.NewDomainError("NOT_FOUND", "Account not found")
	}
	return *updated, nil
}

// Delete removes an account, reporting not-found when nothing matched.
func (s *AccountService) Delete(ctx context.Context, id int) error {
	removed, err := s.accountRepo.Remove(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return shared.NewDomainError("NOT_FOUND", "Account not found")
	}
	return nil
}
