package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/merza/backend/internal/application/contact"
)

// ContactHandler handles the contact form endpoint
type ContactHandler struct {
	BaseHandler
	contactService *contact.ContactService
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contactService *contact.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Submit validates the contact form and sends the notification email
func (h *ContactHandler) Submit(c *gin.Context) {
	var req contact.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.contactService.Submit(c.Request.Context(), req); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Message(c, contact.SubmittedMessage)
}
