package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/nebengjek-settlement/internal/pkg/logger"
	"github.com/piresc/nebengjek-settlement/internal/pkg/models"
	"github.com/piresc/nebengjek-settlement/services/settlement"
)

const uniqueViolation = "23505"

// TransferRepo implements settlement.TransferRepo on Postgres
type TransferRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTransferRepository creates a new transfer repository
func NewTransferRepository(cfg *models.Config, db *sqlx.DB) *TransferRepo {
	logger.Debug("Initializing transfer repository")
	return &TransferRepo{cfg: cfg, db: db}
}

// CreateTransfer inserts a Pending transfer. A reused reference key is
// reported as settlement.ErrReferenceReused.
func (r *TransferRepo) CreateTransfer(ctx context.Context, transfer *models.Transfer) (*models.Transfer, error) {
	query := `
		INSERT INTO transfers (reference_key, payment_id, status, sender_wallet_address)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		transfer.ReferenceKey,
		transfer.PaymentID,
		transfer.Status,
		transfer.SenderWalletAddress,
	).Scan(&transfer.ID, &transfer.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, fmt.Errorf("%w: %s", settlement.ErrReferenceReused, transfer.ReferenceKey)
		}
		return nil, fmt.Errorf("failed to create transfer: %w", err)
	}
	return transfer, nil
}

// GetTransferByReference retrieves a transfer by reference key
func (r *TransferRepo) GetTransferByReference(ctx context.Context, reference string) (*models.Transfer, error) {
	query := `
		SELECT id, reference_key, payment_id, signature, status, sender_wallet_address, created_at
		FROM transfers
		WHERE reference_key = $1
	`

	var transfer models.Transfer
	if err := r.db.GetContext(ctx, &transfer, query, reference); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, settlement.ErrTransferNotFound
		}
		return nil, fmt.Errorf("failed to get transfer: %w", err)
	}
	return &transfer, nil
}

// ListPendingTransfers returns the oldest Pending transfers first
func (r *TransferRepo) ListPendingTransfers(ctx context.Context, limit int) ([]*models.Transfer, error) {
	query := `
		SELECT id, reference_key, payment_id, signature, status, sender_wallet_address, created_at
		FROM transfers
		WHERE status = $1
		ORDER BY created_at ASC
		LIMIT $2
	`

	var transfers []*models.Transfer
	if err := r.db.SelectContext(ctx, &transfers, query, models.TransferStatusPending, limit); err != nil {
		return nil, fmt.Errorf("failed to list pending transfers: %w", err)
	}
	return transfers, nil
}

// FinalizeTransfer writes a terminal state guarded on the row still being
// Pending. When no row changes, an identical stored state counts as success.
func (r *TransferRepo) FinalizeTransfer(ctx context.Context, reference string, result models.TransferResult) error {
	if !result.Status.IsTerminal() {
		return fmt.Errorf("cannot finalize transfer with status %s", result.Status)
	}

	query := `
		UPDATE transfers
		SET status = $1, signature = $2
		WHERE reference_key = $3 AND status = 'Pending'
	`

	res, err := r.db.ExecContext(ctx, query, result.Status, result.Signature, reference)
	if err != nil {
		return fmt.Errorf("failed to finalize transfer: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows > 0 {
		return nil
	}

	current, err := r.GetTransferByReference(ctx, reference)
	if err != nil {
		return err
	}
	if current.Status == result.Status && sameSignature(current.Signature, result.Signature) {
		return nil
	}
	return fmt.Errorf("%w: %s is %s", settlement.ErrAlreadyFinalized, reference, current.Status)
}

func sameSignature(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
