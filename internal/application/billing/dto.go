package billing

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/merza/backend/internal/domain/billing"
)

// CustomerRef is the customer_id a caller attaches to an invoice. The wire
// value may be a number, a numeric string, the sentinel "custom", or null;
// all of them decode into this one type.
type CustomerRef struct {
	ID     *int
	Custom bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *CustomerRef) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == `""` {
		*r = CustomerRef{}
		return nil
	}
	if trimmed == fmt.Sprintf("%q", billing.CustomerIDCustom) {
		*r = CustomerRef{Custom: true}
		return nil
	}
	var id int
	if err := json.Unmarshal(data, &id); err == nil {
		*r = CustomerRef{ID: &id}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, convErr := strconv.Atoi(strings.TrimSpace(s))
		if convErr != nil {
			return fmt.Errorf("invalid customer_id %q", s)
		}
		*r = CustomerRef{ID: &parsed}
		return nil
	}
	return fmt.Errorf("invalid customer_id %s", trimmed)
}

// MarshalJSON implements json.Marshaler.
func (r CustomerRef) MarshalJSON() ([]byte, error) {
	if r.Custom {
		return json.Marshal(billing.CustomerIDCustom)
	}
	if r.ID == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*r.ID)
}

// AddInvoiceRequest carries the fields for creating a customer invoice.
// Both due_date and dueDate are accepted; due_date wins when both are set.
type AddInvoiceRequest struct {
	CustomerID      CustomerRef           `json:"customer_id"`
	CustomerName    string                `json:"customer_name"`
	CustomerCompany string                `json:"customer_company"`
	Date            string                `json:"date"`
	DueDate         string                `json:"due_date"`
	DueDateAlt      string                `json:"dueDate"`
	Status          string                `json:"status"`
	Items           []billing.InvoiceItem `json:"items"`
	Subtotal        float64               `json:"subtotal"`
	VAT             float64               `json:"vat"`
	Total           float64               `json:"total"`
}

func (r AddInvoiceRequest) dueDate() string {
	if r.DueDate != "" {
		return r.DueDate
	}
	return r.DueDateAlt
}

// AddCustomInvoiceRequest carries the fields for creating an ad-hoc invoice.
// AddAsCustomer defaults to true when omitted.
type AddCustomInvoiceRequest struct {
	CustomDetails billing.CustomDetails `json:"custom_details"`
	AddAsCustomer *bool                 `json:"add_as_customer"`
	Date          string                `json:"date"`
	DueDate       string                `json:"due_date"`
	DueDateAlt    string                `json:"dueDate"`
	Status        string                `json:"status"`
	Items         []billing.InvoiceItem `json:"items"`
	Subtotal      float64               `json:"subtotal"`
	VAT           float64               `json:"vat"`
	Total         float64               `json:"total"`
}

func (r AddCustomInvoiceRequest) dueDate() string {
	if r.DueDate != "" {
		return r.DueDate
	}
	return r.DueDateAlt
}

func (r AddCustomInvoiceRequest) addAsCustomer() bool {
	if r.AddAsCustomer == nil {
		return true
	}
	return *r.AddAsCustomer
}

// EditInvoiceRequest identifies an invoice and the fields to patch.
type EditInvoiceRequest struct {
	ID int `json:"id" binding:"required"`
	billing.InvoicePatch
}

// AddPaymentRequest carries the fields for recording a payment.
type AddPaymentRequest struct {
	InvoiceID     int     `json:"invoice_id" binding:"required"`
	InvoiceNumber string  `json:"invoice_number"`
	Customer      string  `json:"customer"`
	Date          string  `json:"date"`
	Amount        float64 `json:"amount"`
	Method        string  `json:"method"`
	Reference     string  `json:"reference"`
}
