package crm

import "github.com/merza/backend/internal/domain/crm"

// AddLeadRequest carries the fields for creating a lead. Absent optional
// fields fall back to empty strings; status defaults to "new".
type AddLeadRequest struct {
	Name          string `json:"name" binding:"required"`
	Company       string `json:"company" binding:"required"`
	Title         string `json:"title"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Source        string `json:"source"`
	Status        string `json:"status"`
	AddedDate     string `json:"addedDate"`
	LastContact   string `json:"lastContact"`
	Industry      string `json:"industry"`
	AnnualRevenue string `json:"annualRevenue"`
	Notes         string `json:"notes"`
}

// EditLeadRequest identifies a lead and the fields to patch.
type EditLeadRequest struct {
	ID int `json:"id" binding:"required"`
	crm.LeadPatch
}

// AddCustomerRequest carries the fields for creating a customer directly.
// Invoice caches may be seeded by the caller; they default to empty.
type AddCustomerRequest struct {
	Name          string                   `json:"name" binding:"required"`
	Company       string                   `json:"company" binding:"required"`
	Title         string                   `json:"title"`
	Email         string                   `json:"email"`
	Phone         string                   `json:"phone"`
	Address       string                   `json:"address"`
	AddedDate     string                   `json:"addedDate"`
	Notes         string                   `json:"notes"`
	TotalInvoices int                      `json:"totalInvoices"`
	TotalAmount   float64                  `json:"totalAmount"`
	Invoices      []crm.CustomerInvoiceRef `json:"invoices"`
}

// EditCustomerRequest identifies a customer and the fields to patch.
type EditCustomerRequest struct {
	ID int `json:"id" binding:"required"`
	crm.CustomerPatch
}
