package docstore

import (
	"context"

	"github.com/merza/backend/internal/domain/billing"
)

type paymentDocument struct {
	Payments []billing.Payment `json:"payments"`
}

// PaymentRepository persists payments as the {"payments": [...]} document.
type PaymentRepository struct {
	store *Store
}

// NewPaymentRepository creates a payment repository over the given store.
func NewPaymentRepository(store *Store) *PaymentRepository {
	return &PaymentRepository{store: store}
}

// List returns all payments in document order.
func (r *PaymentRepository) List(ctx context.Context) ([]billing.Payment, error) {
	release := r.store.Acquire(PaymentDocument)
	defer release()

	var doc paymentDocument
	if err := r.store.Load(PaymentDocument, &doc); err != nil {
		return nil, storageError(err)
	}
	if doc.Payments == nil {
		return []billing.Payment{}, nil
	}
	return doc.Payments, nil
}

// Add assigns the next id, appends and persists.
func (r *PaymentRepository) Add(ctx context.Context, payment billing.Payment) (billing.Payment, error) {
	release := r.store.Acquire(PaymentDocument)
	defer release()

	var doc paymentDocument
	if err := r.store.Load(PaymentDocument, &doc); err != nil {
		return billing.Payment{}, storageError(err)
	}
	maxID := 0
	for _, p := range doc.Payments {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	payment.ID = maxID + 1
	doc.Payments = append(doc.Payments, payment)
	if err := r.store.Save(PaymentDocument, doc); err != nil {
		return billing.Payment{}, storageError(err)
	}
	return payment, nil
}
