package docstore

import (
	"fmt"

	"github.com/merza/backend/internal/domain/shared"
)

// Document names, one flat JSON file per collection.
const (
	LeadsDocument    = "leads.json"
	CustomerDocument = "customers.json"
	InvoiceDocument  = "invoices.json"
	PaymentDocument  = "payments.json"
	AccountsDocument = "chart_of_accounts.json"
)

// storageError converts a raw store failure into the STORAGE_FAILURE domain
// error surfaced to callers.
func storageError(err error) error {
	return shared.NewDomainError("STORAGE_FAILURE", fmt.Sprintf("document storage failed: %v", err))
}
