package crm

import (
	"context"

	"github.com/merza/backend/internal/domain/crm"
	"github.com/merza/backend/internal/domain/shared"
)

// CustomerService handles direct customer CRUD.
type CustomerService struct {
	customerRepo crm.CustomerRepository
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(customerRepo crm.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// List returns all customers in document order.
func (s *CustomerService) List(ctx context.Context) ([]crm.Customer, error) {
	return s.customerRepo.List(ctx)
}

// Add creates a customer from the request, defaulting the invoice caches.
func (s *CustomerService) Add(ctx context.Context, req AddCustomerRequest) (crm.Customer, error) {
	invoices := req.Invoices
	if invoices == nil {
		invoices = []crm.CustomerInvoiceRef{}
	}
	customer := crm.Customer{
		Name:          req.Name,
		Company:       req.Company,
		Title:         req.Title,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		AddedDate:     req.AddedDate,
		Notes:         req.Notes,
		TotalInvoices: req.TotalInvoices,
		TotalAmount:   req.TotalAmount,
		Invoices:      invoices,
	}
	return s.customerRepo.Add(ctx, customer)
}

// Edit patches an existing customer; a false flag means no match and the
// caller echoes its payload unchanged.
func (s *CustomerService) Edit(ctx context.Context, req EditCustomerRequest) (*crm.Customer, bool, error) {
	return s.customerRepo.Update(ctx, req.ID, req.CustomerPatch)
}

// Delete removes a customer, reporting not-found when nothing matched.
func (s *CustomerService) Delete(ctx context.Context, id int) error {
	removed, err := s.customerRepo.Remove(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return shared.NewDomainError("NOT_FOUND", "Customer not found")
	}
	return nil
}
