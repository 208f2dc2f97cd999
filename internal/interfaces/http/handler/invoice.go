package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	billingapp "github.com/merza/backend/internal/application/billing"
	"github.com/merza/backend/internal/application/reporting"
	"github.com/merza/backend/internal/domain/billing"
	"github.com/merza/backend/internal/interfaces/http/dto"
)

// InvoiceHandler handles invoice-related API endpoints
type InvoiceHandler struct {
	BaseHandler
	invoiceService   *billingapp.InvoiceService
	dashboardService *reporting.DashboardService
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(invoiceService *billingapp.InvoiceService, dashboardService *reporting.DashboardService) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService:   invoiceService,
		dashboardService: dashboardService,
	}
}

// List returns all invoices
func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.invoiceService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, invoices)
}

// Add creates a new customer invoice
func (h *InvoiceHandler) Add(c *gin.Context) {
	var req billingapp.AddInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	invoice, err := h.invoiceService.Add(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, invoice)
}

// AddCustom creates an ad-hoc invoice from one-off customer details
func (h *InvoiceHandler) AddCustom(c *gin.Context) {
	var req billingapp.AddCustomInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	invoice, err := h.invoiceService.AddCustom(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, invoice)
}

// Edit patches an invoice identified by the id in the request body. When no
// invoice matches, the caller's payload is echoed back unchanged.
func (h *InvoiceHandler) Edit(c *gin.Context) {
	var req billingapp.EditInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	invoice, found, err := h.invoiceService.Edit(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if !found {
		echo := billing.Invoice{ID: req.ID}
		req.InvoicePatch.Apply(&echo)
		h.Success(c, echo)
		return
	}
	h.Success(c, invoice)
}

// Delete removes an invoice by id
func (h *InvoiceHandler) Delete(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	if err := h.invoiceService.Delete(c.Request.Context(), req.ID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Message(c, "Invoice deleted")
}

// MarkSent sets an invoice's status to sent
func (h *InvoiceHandler) MarkSent(c *gin.Context) {
	h.setStatus(c, h.invoiceService.MarkSent, "Invoice marked as sent")
}

// MarkPaid sets an invoice's status to paid
func (h *InvoiceHandler) MarkPaid(c *gin.Context) {
	h.setStatus(c, h.invoiceService.MarkPaid, "Invoice marked as paid")
}

func (h *InvoiceHandler) setStatus(c *gin.Context, op func(ctx context.Context, id int) error, msg string) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	if err := op(c.Request.Context(), req.ID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Message(c, msg)
}

// Summary returns the aggregate sales/receivables/cash figures
func (h *InvoiceHandler) Summary(c *gin.Context) {
	summary, err := h.dashboardService.InvoiceSummary(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}
