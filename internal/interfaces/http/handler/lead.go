package handler

import (
	"github.com/gin-gonic/gin"
	crmapp "github.com/merza/backend/internal/application/crm"
	"github.com/merza/backend/internal/domain/crm"
	"github.com/merza/backend/internal/interfaces/http/dto"
)

// LeadHandler handles lead-related API endpoints
type LeadHandler struct {
	BaseHandler
	leadService *crmapp.LeadService
}

// NewLeadHandler creates a new LeadHandler
func NewLeadHandler(leadService *crmapp.LeadService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

// List returns all leads
func (h *LeadHandler) List(c *gin.Context) {
	leads, err := h.leadService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, leads)
}

// Add creates a new lead
func (h *LeadHandler) Add(c *gin.Context) {
	var req crmapp.AddLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	lead, err := h.leadService.Add(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, lead)
}

// Edit patches a lead identified by the id in the request body. When no lead
// matches, the caller's payload is echoed back unchanged.
func (h *LeadHandler) Edit(c *gin.Context) {
	var req crmapp.EditLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	lead, found, err := h.leadService.Edit(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if !found {
		echo := crm.Lead{ID: req.ID}
		req.LeadPatch.Apply(&echo)
		h.Success(c, echo)
		return
	}
	h.Success(c, lead)
}

// Delete removes a lead by id
func (h *LeadHandler) Delete(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid lead ID")
		return
	}

	if err := h.leadService.Delete(c.Request.Context(), req.ID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Message(c, "Lead deleted")
}

// Convert turns a lead into a customer and marks the lead won
func (h *LeadHandler) Convert(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid lead ID")
		return
	}

	customer, err := h.leadService.ConvertToCustomer(c.Request.Context(), req.ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, customer)
}
