package handler

import (
	"github.com/gin-gonic/gin"
	crmapp "github.com/merza/backend/internal/application/crm"
	"github.com/merza/backend/internal/domain/crm"
	"github.com/merza/backend/internal/interfaces/http/dto"
)

// CustomerHandler handles customer-related API endpoints
type CustomerHandler struct {
	BaseHandler
	customerService *crmapp.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService *crmapp.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// List returns all customers
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.customerService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, customers)
}

// Add creates a new customer
func (h *CustomerHandler) Add(c *gin.Context) {
	var req crmapp.AddCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	customer, err := h.customerService.Add(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, customer)
}

// Edit patches a customer identified by the id in the request body. When no
// customer matches, the caller's payload is echoed back unchanged.
func (h *CustomerHandler) Edit(c *gin.Context) {
	var req crmapp.EditCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	customer, found, err := h.customerService.Edit(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if !found {
		echo := crm.Customer{ID: req.ID}
		req.CustomerPatch.Apply(&echo)
		h.Success(c, echo)
		return
	}
	h.Success(c, customer)
}

// Delete removes a customer by id
func (h *CustomerHandler) Delete(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	if err := h.customerService.Delete(c.Request.Context(), req.ID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Message(c, "Customer deleted")
}
