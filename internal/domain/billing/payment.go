package billing

// PaymentMethodDefault is used when a payment arrives without a method.
const PaymentMethodDefault = "bank_transfer"

// Payment records funds received against an invoice. Creating a payment is
// defined to mark the referenced invoice paid, without reconciling amounts.
type Payment struct {
	ID            int     `json:"id"`
	InvoiceID     int     `json:"invoice_id"`
	InvoiceNumber string  `json:"invoice_number"`
	Customer      string  `json:"customer"`
	Date          string  `json:"date"`
	Amount        float64 `json:"amount"`
	Method        string  `json:"method"`
	Reference     string  `json:"reference"`
}
