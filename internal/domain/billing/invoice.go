package billing

import "fmt"

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus = string

const (
	InvoiceStatusDraft InvoiceStatus = "draft"
	InvoiceStatusSent  InvoiceStatus = "sent"
	InvoiceStatusPaid  InvoiceStatus = "paid"
)

// CustomerIDCustom is the sentinel a caller passes for an ad-hoc invoice
// that is not tied to a stored customer.
const CustomerIDCustom = "custom"

// InvoiceItem is a single invoice line.
type InvoiceItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Price       float64 `json:"price"`
	Amount      float64 `json:"amount"`
}

// CustomDetails holds the embedded contact details of a custom invoice.
type CustomDetails struct {
	CompanyName   string `json:"companyName"`
	ContactPerson string `json:"contactPerson"`
	Title         string `json:"title"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	TRNNumber     string `json:"trnNumber"`
}

// Label returns the customer label composed from the custom details.
func (d CustomDetails) Label() string {
	return fmt.Sprintf("%s - %s", d.CompanyName, d.ContactPerson)
}

// Invoice represents a billing document, optionally tied to a customer.
// CustomerID is nil for custom/ad-hoc invoices and is never validated
// against the customer collection.
type Invoice struct {
	ID              int            `json:"id"`
	Number          string         `json:"number"`
	Customer        string         `json:"customer"`
	CustomerID      *int           `json:"customer_id"`
	CustomerCompany string         `json:"customer_company"`
	CustomDetails   *CustomDetails `json:"custom_details,omitempty"`
	Date            string         `json:"date"`
	DueDate         string         `json:"dueDate"`
	Status          string         `json:"status"`
	Items           []InvoiceItem  `json:"items"`
	Subtotal        float64        `json:"subtotal"`
	VAT             float64        `json:"vat"`
	Total           float64        `json:"total"`
}

// InvoiceNumber formats a sequential invoice number. The sequence is the
// invoice count at creation time, not the record id.
func InvoiceNumber(count int) string {
	return fmt.Sprintf("INV-%04d", count)
}

// CustomInvoiceNumber formats a sequential number for ad-hoc invoices.
func CustomInvoiceNumber(count int) string {
	return fmt.Sprintf("INV-CUST-%04d", count)
}

// InvoicePatch carries the fields of a partial invoice update.
type InvoicePatch struct {
	Customer *string        `json:"customer"`
	Date     *string        `json:"date"`
	DueDate  *string        `json:"dueDate"`
	Status   *string        `json:"status"`
	Items    *[]InvoiceItem `json:"items"`
	Subtotal *float64       `json:"subtotal"`
	VAT      *float64       `json:"vat"`
	Total    *float64       `json:"total"`
}

// Apply merges the patch into the invoice. Items are replaced wholesale.
func (p InvoicePatch) Apply(inv *Invoice) {
	if p.Customer != nil {
		inv.Customer = *p.Customer
	}
	if p.Date != nil {
		inv.Date = *p.Date
	}
	if p.DueDate != nil {
		inv.DueDate = *p.DueDate
	}
	if p.Status != nil {
		inv.Status = *p.Status
	}
	if p.Items != nil {
		inv.Items = *p.Items
	}
	if p.Subtotal != nil {
		inv.Subtotal = *p.Subtotal
	}
	if p.VAT != nil {
		inv.VAT = *p.VAT
	}
	if p.Total != nil {
		inv.Total = *p.Total
	}
}
