package crm

import (
	"context"
	"time"

	"github.com/merza/backend/internal/domain/crm"
	"github.com/merza/backend/internal/domain/shared"
)

// addedDateLayout matches the display dates already present in documents,
// e.g. "November 10, 2025".
const addedDateLayout = "January 2, 2006"

// LeadService handles lead operations, including the lead-to-customer
// conversion that spans the lead and customer documents.
type LeadService struct {
	leadRepo     crm.LeadRepository
	customerRepo crm.CustomerRepository
	now          func() time.Time
}

// NewLeadService creates a new LeadService.
func NewLeadService(leadRepo crm.LeadRepository, customerRepo crm.CustomerRepository) *LeadService {
	return &LeadService{
		leadRepo:     leadRepo,
		customerRepo: customerRepo,
		now:          time.Now,
	}
}

// List returns all leads in document order.
func (s *LeadService) List(ctx context.Context) ([]crm.Lead, error) {
	return s.leadRepo.List(ctx)
}

// Add creates a lead with defaults applied for absent fields.
func (s *LeadService) Add(ctx context.Context, req AddLeadRequest) (crm.Lead, error) {
	status := req.Status
	if status == "" {
		status = crm.LeadStatusNew
	}
	lead := crm.Lead{
		Name:          req.Name,
		Company:       req.Company,
		Title:         req.Title,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		Source:        req.Source,
		Status:        status,
		AddedDate:     req.AddedDate,
		LastContact:   req.LastContact,
		Industry:      req.Industry,
		AnnualRevenue: req.AnnualRevenue,
		Notes:         req.Notes,
	}
	return s.leadRepo.Add(ctx, lead)
}

// Edit patches an existing lead. When no lead matches, the returned flag is
// false and the caller echoes its own payload; this mirrors the silent no-op
// contract of the lead edit endpoint.
func (s *LeadService) Edit(ctx context.Context, req EditLeadRequest) (*crm.Lead, bool, error) {
	return s.leadRepo.Update(ctx, req.ID, req.LeadPatch)
}

// Delete removes a lead, reporting not-found when nothing matched.
func (s *LeadService) Delete(ctx context.Context, id int) error {
	removed, err := s.leadRepo.Remove(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return shared.NewDomainError("NOT_FOUND", "Lead not found")
	}
	return nil
}

// ConvertToCustomer turns a lead into a new customer record and marks the
// lead won. The lead itself is not deleted. The customer document is saved
// first, then the lead document; neither write is rolled back on a later
// failure.
func (s *LeadService) ConvertToCustomer(ctx context.Context, leadID int) (crm.Customer, error) {
	lead, err := s.leadRepo.FindByID(ctx, leadID)
	if err != nil {
		return crm.Customer{}, err
	}
	if lead == nil {
		return crm.Customer{}, shared.NewDomainError("NOT_FOUND", "Lead not found")
	}

	customer := crm.ConvertedCustomer(*lead, s.now().Format(addedDateLayout))
	created, err := s.customerRepo.Add(ctx, customer)
	if err != nil {
		return crm.Customer{}, err
	}

	// Reuse the id from the first lookup rather than re-deriving it.
	status := crm.LeadStatusWon
	if _, _, err := s.leadRepo.Update(ctx, lead.ID, crm.LeadPatch{Status: &status}); err != nil {
		return crm.Customer{}, err
	}
	return created, nil
}
