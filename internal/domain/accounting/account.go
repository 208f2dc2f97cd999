package accounting

// VAT applicability is stored as a display string, not a boolean.
const (
	VATApplicableYes = "Yes"
	VATApplicableNo  = "No"
)

// Account is one entry in the chart of accounts, independent of the other
// entities. Stored documents may predate ids; missing ids are backfilled
// positionally on read.
type Account struct {
	ID            int    `json:"id"`
	AccountCode   string `json:"accountCode"`
	AccountName   string `json:"accountName"`
	AccountType   string `json:"accountType"`
	Description   string `json:"description"`
	VATApplicable string `json:"vatApplicable"`
}

// VATApplicableString converts the boundary boolean into the stored form.
func VATApplicableString(applicable bool) string {
	if applicable {
		return VATApplicableYes
	}
	return VATApplicableNo
}

// AccountPatch carries the fields of a partial account update.
type AccountPatch struct {
	AccountCode   *string `json:"accountCode"`
	AccountName   *string `json:"accountName"`
	AccountType   *string `json:"accountType"`
	Description   *string `json:"description"`
	VATApplicable *string `json:"vatApplicable"`
}

// Apply merges the patch into the account.
func (p AccountPatch) Apply(a *Account) {
	if p.AccountCode != nil {
		a.AccountCode = *p.AccountCode
	}
	if p.AccountName != nil {
		a.AccountName = *p.AccountName
	}
	if p.AccountType != nil {
		a.AccountType = *p.AccountType
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.VATApplicable != nil {
		a.VATApplicable = *p.VATApplicable
	}
}
