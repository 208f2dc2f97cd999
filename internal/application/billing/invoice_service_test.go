package billing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/merza/backend/internal/domain/billing"
	"github.com/merza/backend/internal/domain/crm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockInvoiceRepository is a mock implementation of billing.InvoiceRepository
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) List(ctx context.Context) ([]billing.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindByID(ctx context.Context, id int) (*billing.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockInvoiceRepository) Add(ctx context.Context, invoice billing.Invoice) (billing.Invoice, error) {
	args := m.Called(ctx, invoice)
	return args.Get(0).(billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) Update(ctx context.Context, id int, patch billing.InvoicePatch) (*billing.Invoice, bool, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*billing.Invoice), args.Bool(1), args.Error(2)
}

func (m *MockInvoiceRepository) Remove(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockInvoiceRepository) SetStatus(ctx context.Context, id int, status string) (bool, error) {
	args := m.Called(ctx, id, status)
	return args.Bool(0), args.Error(1)
}

// MockCustomerRepository is a mock implementation of crm.CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) List(ctx context.Context) ([]crm.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]crm.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id int) (*crm.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crm.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Add(ctx context.Context, customer crm.Customer) (crm.Customer, error) {
	args := m.Called(ctx, customer)
	return args.Get(0).(crm.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Update(ctx context.Context, id int, patch crm.CustomerPatch) (*crm.Customer, bool, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*crm.Customer), args.Bool(1), args.Error(2)
}

func (m *MockCustomerRepository) Remove(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer crm.Customer) (bool, error) {
	args := m.Called(ctx, customer)
	return args.Bool(0), args.Error(1)
}

func intPtr(i int) *int { return &i }

// =============================================================================
// Tests
// =============================================================================

func TestInvoiceService_Add_NumbersFromCount(t *testing.T) {
	invoiceRepo := new(MockInvoiceRepository)
	customerRepo := new(MockCustomerRepository)
	service := NewInvoiceService(invoiceRepo, customerRepo, zap.NewNop())

	ctx := context.Background()
	customer := crm.Customer{ID: 4, Name: "Omar", Company: "Globex"}

	invoiceRepo.On("Count", ctx).Return(2, nil)
	customerRepo.On("FindByID", ctx, 4).Return(&customer, nil)
	invoiceRepo.On("Add", ctx, mock.MatchedBy(func(inv billing.Invoice) bool {
		return inv.Number == "INV-0003" &&
			inv.Customer == "Globex - Omar" &&
			inv.CustomerCompany == "Globex" &&
			inv.CustomerID != nil && *inv.CustomerID == 4 &&
			inv.Status == billing.InvoiceStatusDraft
	})).Return(billing.Invoice{ID: 3, Number: "INV-0003", Date: "2025-11-10", Total: 150, Status: billing.InvoiceStatusDraft}, nil)
	customerRepo.On("Save", ctx, mock.MatchedBy(func(c crm.Customer) bool {
		return c.TotalInvoices == 1 && c.TotalAmount == 150 && len(c.Invoices) == 1 &&
			c.Invoices[0].Number == "INV-0003"
	})).Return(true, nil)

	invoice, err := service.Add(ctx, AddInvoiceRequest{
		CustomerID: CustomerRef{ID: intPtr(4)},
		Date:       "2025-11-10",
		Total:      150,
	})

	assert.NoError(t, err)
	assert.Equal(t, "INV-0003", invoice.Number)
	invoiceRepo.AssertExpectations(t)
	customerRepo.AssertExpectations(t)
}

func TestInvoiceService_Add_UnknownCustomerGoesAdHoc(t *testing.T) {
	invoiceRepo := new(MockInvoiceRepository)
	customerRepo := new(MockCustomerRepository)
	service := NewInvoiceService(invoiceRepo, customerRepo, zap.NewNop())

	ctx := context.Background()
	invoiceRepo.On("Count", ctx).Return(0, nil)
	customerRepo.On("FindByID", ctx, 77).Return(nil, nil)
	invoiceRepo.On("Add", ctx, mock.MatchedBy(func(inv billing.Invoice) bool {
		return inv.CustomerID == nil && inv.Customer == "Walk-in"
	})).Return(billing.Invoice{ID: 1, Number: "INV-0001"}, nil)

	invoice, err := service.Add(ctx, AddInvoiceRequest{
		CustomerID:   CustomerRef{ID: intPtr(77)},
		CustomerName: "Walk-in",
	})

	assert.NoError(t, err)
	assert.Equal(t, "INV-0001", invoice.Number)
	customerRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestInvoiceService_Add_CustomSentinelSkipsCustomerLookup(t *testing.T) {
	invoiceRepo := new(MockInvoiceRepository)
	customerRepo := new(MockCustomerRepository)
	service := NewInvoiceService(invoiceRepo, customerRepo, zap.NewNop())

	ctx := context.Background()
	invoiceRepo.On("Count", ctx).Return(0, nil)
	invoiceRepo.On("Add", ctx, mock.MatchedBy(func(inv billing.Invoice) bool {
		return inv.CustomerID == nil && inv.Customer == "One-off buyer"
	})).Return(billing.Invoice{ID: 1, Number: "INV-0001"}, nil)

	invoice, err := service.Add(ctx, AddInvoiceRequest{
		CustomerID:   CustomerRef{Custom: true},
		CustomerName: "One-off buyer",
	})

	assert.NoError(t, err)
	assert.Nil(t, invoice.CustomerID)
	assert.Equal(t, "INV-0001", invoice.Number)
	// No expectations were set on customerRepo, so any call fails the test.
	customerRepo.AssertExpectations(t)
	customerRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	customerRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestInvoiceService_Add_CacheUpdateFailureStillSucceeds(t *testing.T) {
	invoiceRepo := new(MockInvoiceRepository)
	customerRepo := new(MockCustomerRepository)
	service := NewInvoiceService(invoiceRepo, customerRepo, zap.NewNop())

	ctx := context.Background()
	customer := crm.Customer{ID: 2, Name: "Lina", Company: "Initech"}

	invoiceRepo.On("Count", ctx).Return(5, nil)
	customerRepo.On("FindByID", ctx, 2).Return(&customer, nil)
	invoiceRepo.On("Add", ctx, mock.AnythingOfType("billing.Invoice")).
		Return(billing.Invoice{ID: 6, Number: "INV-0006"}, nil)
	customerRepo.On("Save", ctx, mock.AnythingOfType("crm.Customer")).
		Return(false, errors.New("disk full"))

	invoice, err := service.Add(ctx, AddInvoiceRequest{CustomerID: CustomerRef{ID: intPtr(2)}})

	assert.NoError(t, err)
	assert.Equal(t, "INV-0006", invoice.Number)
	customerRepo.AssertExpectations(t)
}

func TestInvoiceService_AddCustom_CreatesCustomerByDefault(t *testing.T) {
	invoiceRepo := new(MockInvoiceRepository)
	customerRepo := new(MockCustomerRepository)
	service := NewInvoiceService(invoiceRepo, customerRepo, zap.NewNop())
	service.now = func() time.Time {
		return time.Date(2025, time.November, 10, 9, 0, 0, 0, time.UTC)
	}

	ctx := context.Background()
	details := billing.CustomDetails{
		CompanyName:   "Hooli",
		ContactPerson: "Nadia",
		Email:         "nadia@hooli.example",
		TRNNumber:     "100200300",
	}

	invoiceRepo.On("Count", ctx).Return(3, nil)
	invoiceRepo.On("Add", ctx, mock.MatchedBy(func(inv billing.Invoice) bool {
		return inv.Number == "INV-CUST-0004" &&
			inv.CustomerID == nil &&
			inv.CustomDetails != nil &&
			inv.CustomDetails.CompanyName == "Hooli"
	})).Return(billing.Invoice{ID: 4, Number: "INV-CUST-0004", Date: "2025-11-10", Total: 500, Status: billing.InvoiceStatusDraft}, nil)
	customerRepo.On("Add", ctx, mock.MatchedBy(func(c crm.Customer) bool {
		return c.Company == "Hooli" &&
			c.TRN == "100200300" &&
			c.Notes == "Added from custom invoice" &&
			c.AddedDate == "November 10, 2025" &&
			c.TotalInvoices == 1 && c.TotalAmount == 500
	})).Return(crm.Customer{ID: 9}, nil)

	invoice, err := service.AddCustom(ctx, AddCustomInvoiceRequest{
		CustomDetails: details,
		Date:          "2025-11-10",
		Total:         500,
	})

	assert.NoError(t, err)
	assert.Equal(t, "INV-CUST-0004", invoice.Number)
	assert.Nil(t, invoice.CustomerID)
	invoiceRepo.AssertExpectations(t)
	customerRepo.AssertExpectations(t)
}

func TestInvoiceService_AddCustom_SkipsCustomerWhenDisabled(t *testing.T) {
	invoiceRepo := new(MockInvoiceRepository)
	customerRepo := new(MockCustomerRepository)
	service := NewInvoiceService(invoiceRepo, customerRepo, zap.NewNop())

	ctx := context.Background()
	disabled := false

	invoiceRepo.On("Count", ctx).Return(0, nil)
	invoiceRepo.On("Add", ctx, mock.AnythingOfType("billing.Invoice")).
		Return(billing.Invoice{ID: 1, Number: "INV-CUST-0001"}, nil)

	_, err := service.AddCustom(ctx, AddCustomInvoiceRequest{
		CustomDetails: billing.CustomDetails{CompanyName: "Hooli"},
		AddAsCustomer: &disabled,
	})

	assert.NoError(t, err)
	customerRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestInvoiceService_MarkPaid_MissingInvoiceIsNoop(t *testing.T) {
	invoiceRepo := new(MockInvoiceRepository)
	service := NewInvoiceService(invoiceRepo, new(MockCustomerRepository), zap.NewNop())

	ctx := context.Background()
	invoiceRepo.On("SetStatus", ctx, 12, billing.InvoiceStatusPaid).Return(false, nil)

	assert.NoError(t, service.MarkPaid(ctx, 12))
	invoiceRepo.AssertExpectations(t)
}
