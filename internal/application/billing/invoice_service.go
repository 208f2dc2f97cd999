package billing

import (
	"context"
	"time"

	"github.com/merza/backend/internal/domain/billing"
	"github.com/merza/backend/internal/domain/crm"
	"github.com/merza/backend/internal/domain/shared"
	"go.uber.org/zap"
)

const addedDateLayout = "January 2, 2006"

// InvoiceService handles invoice operations, including the best-effort
// second phase that keeps customer invoice caches in sync. The invoice write
// is the primary write: once it is persisted, a failure in the customer
// phase is logged and the operation still succeeds.
type InvoiceService struct {
	invoiceRepo  billing.InvoiceRepository
	customerRepo crm.CustomerRepository
	log          *zap.Logger
	now          func() time.Time
}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService(invoiceRepo billing.InvoiceRepository, customerRepo crm.CustomerRepository, log *zap.Logger) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		log:          log,
		now:          time.Now,
	}
}

// List returns all invoices in document order.
func (s *InvoiceService) List(ctx context.Context) ([]billing.Invoice, error) {
	return s.invoiceRepo.List(ctx)
}

// Add creates a customer invoice. The invoice number is derived from the
// invoice count at creation time, not from the record id. When the request
// names a stored customer, the customer label is resolved before the write
// and the customer's invoice cache is updated after it.
func (s *InvoiceService) Add(ctx context.Context, req AddInvoiceRequest) (billing.Invoice, error) {
	count, err := s.invoiceRepo.Count(ctx)
	if err != nil {
		return billing.Invoice{}, err
	}
	number := billing.InvoiceNumber(count + 1)

	customerName := req.CustomerName
	customerCompany := req.CustomerCompany
	customerID := req.CustomerID.ID

	var customer *crm.Customer
	if customerID != nil {
		customer, err = s.customerRepo.FindByID(ctx, *customerID)
		if err != nil || customer == nil {
			// Lookup failure leaves the invoice ad-hoc.
			if err != nil {
				s.log.Warn("customer lookup failed for invoice",
					zap.Int("customer_id", *customerID), zap.Error(err))
			}
			customerID = nil
		} else {
			customerName = customer.Label()
			customerCompany = customer.Company
		}
	}

	invoice := billing.Invoice{
		Number:          number,
		Customer:        customerName,
		CustomerID:      customerID,
		CustomerCompany: customerCompany,
		Date:            req.Date,
		DueDate:         req.dueDate(),
		Status:          defaultStatus(req.Status),
		Items:           req.Items,
		Subtotal:        req.Subtotal,
		VAT:             req.VAT,
		Total:           req.Total,
	}
	created, err := s.invoiceRepo.Add(ctx, invoice)
	if err != nil {
		return billing.Invoice{}, err
	}

	if customer != nil {
		s.attachToCustomer(ctx, *customer, crm.CustomerInvoiceRef{
			Number: created.Number,
			Date:   created.Date,
			Amount: created.Total,
			Status: created.Status,
		})
	}
	return created, nil
}

// AddCustom creates an ad-hoc invoice with embedded contact details and no
// customer_id. Unless disabled, a brand-new customer is also created from
// those details; no attempt is made to find an existing match.
func (s *InvoiceService) AddCustom(ctx context.Context, req AddCustomInvoiceRequest) (billing.Invoice, error) {
	count, err := s.invoiceRepo.Count(ctx)
	if err != nil {
		return billing.Invoice{}, err
	}
	details := req.CustomDetails

	invoice := billing.Invoice{
		Number:          billing.CustomInvoiceNumber(count + 1),
		Customer:        details.Label(),
		CustomerID:      nil,
		CustomerCompany: details.CompanyName,
		CustomDetails:   &details,
		Date:            req.Date,
		DueDate:         req.dueDate(),
		Status:          defaultStatus(req.Status),
		Items:           req.Items,
		Subtotal:        req.Subtotal,
		VAT:             req.VAT,
		Total:           req.Total,
	}
	created, err := s.invoiceRepo.Add(ctx, invoice)
	if err != nil {
		return billing.Invoice{}, err
	}

	if req.addAsCustomer() {
		customer := crm.Customer{
			Name:          details.ContactPerson,
			Company:       details.CompanyName,
			Title:         details.Title,
			Email:         details.Email,
			Phone:         details.Phone,
			Address:       details.Address,
			TRN:           details.TRNNumber,
			AddedDate:     s.now().Format(addedDateLayout),
			Notes:         "Added from custom invoice",
			TotalInvoices: 1,
			TotalAmount:   created.Total,
			Invoices: []crm.CustomerInvoiceRef{{
				Number: created.Number,
				Date:   created.Date,
				Amount: created.Total,
				Status: created.Status,
			}},
		}
		if _, err := s.customerRepo.Add(ctx, customer); err != nil {
			s.log.Warn("failed to add customer from custom invoice",
				zap.String("invoice_number", created.Number), zap.Error(err))
		}
	}
	return created, nil
}

// Edit patches an existing invoice; a false flag means no match and the
// caller echoes its payload unchanged.
func (s *InvoiceService) Edit(ctx context.Context, req EditInvoiceRequest) (*billing.Invoice, bool, error) {
	return s.invoiceRepo.Update(ctx, req.ID, req.InvoicePatch)
}

// Delete removes an invoice, reporting not-found when nothing matched.
func (s *InvoiceService) Delete(ctx context.Context, id int) error {
	removed, err := s.invoiceRepo.Remove(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return shared.NewDomainError("NOT_FOUND", "Invoice not found")
	}
	return nil
}

// MarkSent sets the invoice status to sent. A missing invoice is a no-op.
func (s *InvoiceService) MarkSent(ctx context.Context, id int) error {
	_, err := s.invoiceRepo.SetStatus(ctx, id, billing.InvoiceStatusSent)
	return err
}

// MarkPaid sets the invoice status to paid. A missing invoice is a no-op.
func (s *InvoiceService) MarkPaid(ctx context.Context, id int) error {
	_, err := s.invoiceRepo.SetStatus(ctx, id, billing.InvoiceStatusPaid)
	return err
}

// attachToCustomer is the best-effort second phase of Add: the customer's
// invoice list and derived totals are updated after the invoice document is
// already saved. Failures here never fail the operation.
func (s *InvoiceService) attachToCustomer(ctx context.Context, customer crm.Customer, ref crm.CustomerInvoiceRef) {
	customer.AttachInvoice(ref)
	found, err := s.customerRepo.Save(ctx, customer)
	if err != nil {
		s.log.Warn("failed to update customer invoice cache",
			zap.Int("customer_id", customer.ID),
			zap.String("invoice_number", ref.Number),
			zap.Error(err))
		return
	}
	if !found {
		s.log.Warn("customer disappeared before invoice cache update",
			zap.Int("customer_id", customer.ID),
			zap.String("invoice_number", ref.Number))
	}
}

func defaultStatus(status string) string {
	if status == "" {
		return billing.InvoiceStatusDraft
	}
	return status
}
