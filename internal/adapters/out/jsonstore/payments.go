package jsonstore

import (
	"context"
	"time"

	"domicilios/internal/core/domain/model/order"
	"domicilios/internal/core/domain/model/payment"
	"domicilios/internal/pkg/errs"
)

// paymentDTO mirrors the legacy on-disk payment ledger entry.
type paymentDTO struct {
	ID            int       `json:"id"`
	OrderID       int       `json:"order_id"`
	Amount        float64   `json:"amount"`
	TipAmount     int       `json:"tip_amount"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

func paymentToDTO(r *payment.Record) paymentDTO {
	return paymentDTO{
		ID:            r.ID(),
		OrderID:       r.OrderID(),
		Amount:        r.Amount(),
		TipAmount:     r.TipAmount(),
		PaymentMethod: string(r.Method()),
		Status:        string(r.Status()),
		CreatedAt:     r.CreatedAt(),
	}
}

func paymentFromDTO(dto paymentDTO) (*payment.Record, error) {
	return payment.NewRecord(
		dto.ID, dto.OrderID, dto.Amount, dto.TipAmount,
		order.PaymentMethod(dto.PaymentMethod), order.PaymentStatus(dto.Status),
		dto.CreatedAt,
	)
}

// PaymentRepository is the standalone ledger repository over the store.
// The ledger is append-only; records are never updated or removed.
type PaymentRepository struct {
	store *Store
}

// NewPaymentRepository creates a payment ledger repository.
func NewPaymentRepository(store *Store) *PaymentRepository {
	return &PaymentRepository{store: store}
}

func (r *PaymentRepository) Add(_ context.Context, record *payment.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var dtos []paymentDTO
	if err := r.store.readCollection(paymentsFile, &dtos); err != nil {
		return err
	}
	dtos = append(dtos, paymentToDTO(record))
	return r.store.writeCollection(paymentsFile, dtos)
}

func (r *PaymentRepository) GetAll(_ context.Context) ([]*payment.Record, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var dtos []paymentDTO
	if err := r.store.readCollection(paymentsFile, &dtos); err != nil {
		return nil, err
	}
	return paymentsFromDTOs(dtos)
}

func (r *PaymentRepository) GetLastByOrder(_ context.Context, orderID int) (*payment.Record, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var dtos []paymentDTO
	if err := r.store.readCollection(paymentsFile, &dtos); err != nil {
		return nil, err
	}
	return lastPaymentByOrder(dtos, orderID)
}

func (r *PaymentRepository) NextID(_ context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var dtos []paymentDTO
	if err := r.store.readCollection(paymentsFile, &dtos); err != nil {
		return 0, err
	}
	// Ledger ids are count based: records are never deleted.
	return len(dtos) + 1, nil
}

func paymentsFromDTOs(dtos []paymentDTO) ([]*payment.Record, error) {
	records := make([]*payment.Record, 0, len(dtos))
	for _, dto := range dtos {
		record, err := paymentFromDTO(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// lastPaymentByOrder scans backwards: the file is append-ordered.
func lastPaymentByOrder(dtos []paymentDTO, orderID int) (*payment.Record, error) {
	for i := len(dtos) - 1; i >= 0; i-- {
		if dtos[i].OrderID == orderID {
			return paymentFromDTO(dtos[i])
		}
	}
	return nil, errs.NewObjectNotFoundError("payment", orderID)
}
