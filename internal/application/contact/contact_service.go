package contact

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/merza/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// SubmitRequest is a contact form submission.
type SubmitRequest struct {
	Name    string `json:"name" validate:"required"`
	Company string `json:"company" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	Message string `json:"message"`
}

// Message is a composed email ready for delivery.
type Message struct {
	Subject string
	Body    string
	ReplyTo string
}

// Sender delivers a composed message to the configured recipient.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SubmittedMessage is returned to the caller after a successful submission.
const SubmittedMessage = "Thank you! We received your request."

// ContactService validates contact form submissions and hands them to the
// mail sender.
type ContactService struct {
	sender   Sender
	validate *validator.Validate
	log      *zap.Logger
}

// NewContactService creates a new ContactService.
func NewContactService(sender Sender, log *zap.Logger) *ContactService {
	return &ContactService{
		sender:   sender,
		validate: validator.New(),
		log:      log,
	}
}

// Submit validates the request and sends the notification email.
func (s *ContactService) Submit(ctx context.Context, req SubmitRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return shared.NewDomainError("VALIDATION_FAILED", "Name, company, email and phone are required")
	}

	msg := Message{
		Subject: fmt.Sprintf("New contact request from %s", req.Company),
		ReplyTo: req.Email,
		Body: fmt.Sprintf(
			"Name: %s\nCompany: %s\nEmail: %s\nPhone: %s\n\nMessage:\n%s\n",
			req.Name, req.Company, req.Email, req.Phone, req.Message,
		),
	}

	if err := s.sender.Send(ctx, msg); err != nil {
		s.log.Error("contact mail delivery failed", zap.Error(err))
		return shared.ErrMailFailure
	}
	return nil
}
