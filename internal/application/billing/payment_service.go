package billing

import (
	"context"

	"github.com/merza/backend/internal/domain/billing"
	"go.uber.org/zap"
)

// PaymentService records payments. Recording a payment cascades to marking
// the referenced invoice paid, without reconciling amounts. The payment is
// the primary write; a failure while marking the invoice is logged, not
// propagated, and the payment is never rolled back.
type PaymentService struct {
	paymentRepo billing.PaymentRepository
	invoiceRepo billing.InvoiceRepository
	log         *zap.Logger
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(paymentRepo billing.PaymentRepository, invoiceRepo billing.InvoiceRepository, log *zap.Logger) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		invoiceRepo: invoiceRepo,
		log:         log,
	}
}

// List returns all payments in document order.
func (s *PaymentService) List(ctx context.Context) ([]billing.Payment, error) {
	return s.paymentRepo.List(ctx)
}

// Add records a payment and marks the referenced invoice paid.
func (s *PaymentService) Add(ctx context.Context, req AddPaymentRequest) (billing.Payment, error) {
	method := req.Method
	if method == "" {
		method = billing.PaymentMethodDefault
	}
	payment := billing.Payment{
		InvoiceID:     req.InvoiceID,
		InvoiceNumber: req.InvoiceNumber,
		Customer:      req.Customer,
		Date:          req.Date,
		Amount:        req.Amount,
		Method:        method,
		Reference:     req.Reference,
	}
	created, err := s.paymentRepo.Add(ctx, payment)
	if err != nil {
		return billing.Payment{}, err
	}

	found, err := s.invoiceRepo.SetStatus(ctx, req.InvoiceID, billing.InvoiceStatusPaid)
	if err != nil {
		s.log.Warn("failed to mark invoice paid after payment",
			zap.Int("invoice_id", req.InvoiceID),
			zap.Int("payment_id", created.ID),
			zap.Error(err))
	} else if !found {
		s.log.Warn("payment references unknown invoice",
			zap.Int("invoice_id", req.InvoiceID),
			zap.Int("payment_id", created.ID))
	}
	return created, nil
}
