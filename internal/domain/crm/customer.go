package crm

import "fmt"

// CustomerInvoiceRef is the per-customer cached summary of one invoice.
type CustomerInvoiceRef struct {
	Number string  `json:"number"`
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
	Status string  `json:"status"`
}

// Customer represents a client record accumulating invoice history.
// TotalInvoices and TotalAmount are derived caches, recomputed whenever an
// invoice is attached to the customer.
type Customer struct {
	ID            int                  `json:"id"`
	Name          string               `json:"name"`
	Company       string               `json:"company"`
	Title         string               `json:"title"`
	Email         string               `json:"email"`
	Phone         string               `json:"phone"`
	Address       string               `json:"address"`
	TRN           string               `json:"trn,omitempty"`
	AddedDate     string               `json:"addedDate"`
	Notes         string               `json:"notes"`
	TotalInvoices int                  `json:"totalInvoices"`
	TotalAmount   float64              `json:"totalAmount"`
	Invoices      []CustomerInvoiceRef `json:"invoices"`
}

// Label returns the human-readable customer label used on invoices.
func (c *Customer) Label() string {
	return fmt.Sprintf("%s - %s", c.Company, c.Name)
}

// AttachInvoice appends an invoice summary and recomputes the derived caches.
func (c *Customer) AttachInvoice(ref CustomerInvoiceRef) {
	c.Invoices = append(c.Invoices, ref)
	c.TotalInvoices = len(c.Invoices)
	total := 0.0
	for _, inv := range c.Invoices {
		total += inv.Amount
	}
	c.TotalAmount = total
}

// ConvertedCustomer builds a customer from a won lead. Contact fields carry
// over; invoice caches start empty. The lead itself is not modified here.
func ConvertedCustomer(lead Lead, addedDate string) Customer {
	return Customer{
		Name:          lead.Name,
		Company:       lead.Company,
		Title:         lead.Title,
		Email:         lead.Email,
		Phone:         lead.Phone,
		Address:       lead.Address,
		AddedDate:     addedDate,
		Notes:         fmt.Sprintf("Converted from lead. Original notes: %s", lead.Notes),
		TotalInvoices: 0,
		TotalAmount:   0,
		Invoices:      []CustomerInvoiceRef{},
	}
}

// CustomerPatch carries the fields of a partial customer update.
type CustomerPatch struct {
	Name          *string               `json:"name"`
	Company       *string               `json:"company"`
	Title         *string               `json:"title"`
	Email         *string               `json:"email"`
	Phone         *string               `json:"phone"`
	Address       *string               `json:"address"`
	TRN           *string               `json:"trn"`
	AddedDate     *string               `json:"addedDate"`
	Notes         *string               `json:"notes"`
	TotalInvoices *int                  `json:"totalInvoices"`
	TotalAmount   *float64              `json:"totalAmount"`
	Invoices      *[]CustomerInvoiceRef `json:"invoices"`
}

// Apply merges the patch into the customer. Nested structures are replaced
// wholesale, not deep-merged.
func (p CustomerPatch) Apply(c *Customer) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Company != nil {
		c.Company = *p.Company
	}
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Address != nil {
		c.Address = *p.Address
	}
	if p.TRN != nil {
		c.TRN = *p.TRN
	}
	if p.AddedDate != nil {
		c.AddedDate = *p.AddedDate
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
	if p.TotalInvoices != nil {
		c.TotalInvoices = *p.TotalInvoices
	}
	if p.TotalAmount != nil {
		c.TotalAmount = *p.TotalAmount
	}
	if p.Invoices != nil {
		c.Invoices = *p.Invoices
	}
}
