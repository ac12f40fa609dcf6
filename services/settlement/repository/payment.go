package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/nebengjek-settlement/internal/pkg/logger"
	"github.com/piresc/nebengjek-settlement/internal/pkg/models"
	"github.com/piresc/nebengjek-settlement/services/settlement"
)

const paymentColumns = `p.id, p.public_id, p.title, p.description, p.category, p.amount, p.user_id, p.created_at`

// PaymentRepo implements settlement.PaymentRepo on Postgres
type PaymentRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(cfg *models.Config, db *sqlx.DB) *PaymentRepo {
	logger.Debug("Initializing payment repository")
	return &PaymentRepo{cfg: cfg, db: db}
}

// CreatePayment inserts a payment and fills its id and creation time
func (r *PaymentRepo) CreatePayment(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	query := `
		INSERT INTO payments (public_id, title, description, category, amount, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		payment.PublicID,
		payment.Title,
		payment.Description,
		payment.Category,
		payment.Amount,
		payment.UserID,
	).Scan(&payment.ID, &payment.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}
	return payment, nil
}

// GetPaymentByPublicID retrieves a payment by its public id
func (r *PaymentRepo) GetPaymentByPublicID(ctx context.Context, publicID uuid.UUID) (*models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments p WHERE p.public_id = $1`

	var payment models.Payment
	if err := r.db.GetContext(ctx, &payment, query, publicID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, settlement.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return &payment, nil
}

// GetPaymentByID retrieves a payment by its serial id
func (r *PaymentRepo) GetPaymentByID(ctx context.Context, id int64) (*models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments p WHERE p.id = $1`

	var payment models.Payment
	if err := r.db.GetContext(ctx, &payment, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, settlement.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return &payment, nil
}

// GetPaymentWithReceiver retrieves a payment together with its owner's wallet
func (r *PaymentRepo) GetPaymentWithReceiver(ctx context.Context, publicID uuid.UUID) (*models.PaymentWithReceiver, error) {
	query := `
		SELECT ` + paymentColumns + `, u.wallet_address
		FROM payments p
		JOIN users u ON u.id = p.user_id
		WHERE p.public_id = $1
	`

	var payment models.PaymentWithReceiver
	if err := r.db.GetContext(ctx, &payment, query, publicID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, settlement.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment with receiver: %w", err)
	}
	return &payment, nil
}
