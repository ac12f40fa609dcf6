package repository_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/piresc/nebengjek-settlement/internal/pkg/models"
	"github.com/piresc/nebengjek-settlement/services/settlement"
	"github.com/piresc/nebengjek-settlement/services/settlement/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var transferCols = []string{"id", "reference_key", "payment_id", "signature", "status", "sender_wallet_address", "created_at"}

const finalizeQuery = "UPDATE transfers"

func strPtr(s string) *string { return &s }

func TestCreateTransfer(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransferRepository(&models.Config{}, db)

	tr := &models.Transfer{ReferenceKey: "ref", PaymentID: 3, Status: models.TransferStatusPending, SenderWalletAddress: "sender"}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO transfers")).
		WithArgs("ref", int64(3), models.TransferStatusPending, "sender").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, time.Now()))

	created, err := repo.CreateTransfer(context.Background(), tr)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTransfer_ReferenceReused(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransferRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO transfers")).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value"})

	_, err := repo.CreateTransfer(context.Background(), &models.Transfer{ReferenceKey: "ref"})
	assert.ErrorIs(t, err, settlement.ErrReferenceReused)
}

func TestGetTransferByReference_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransferRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM transfers")).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetTransferByReference(context.Background(), "missing")
	assert.ErrorIs(t, err, settlement.ErrTransferNotFound)
}

func TestListPendingTransfers(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransferRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE status = $1")).
		WithArgs(models.TransferStatusPending, 50).
		WillReturnRows(sqlmock.NewRows(transferCols).
			AddRow(1, "a", 3, nil, "Pending", "s1", time.Now()).
			AddRow(2, "b", 4, nil, "Pending", "s2", time.Now()))

	list, err := repo.ListPendingTransfers(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[1].ReferenceKey)
	assert.Nil(t, list[0].Signature)
}

func TestFinalizeTransfer_UpdatesPending(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransferRepository(&models.Config{}, db)
	sig := strPtr("sig-1")

	mock.ExpectExec(regexp.QuoteMeta(finalizeQuery)).
		WithArgs(models.TransferStatusCompleted, sig, "ref").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.FinalizeTransfer(context.Background(), "ref", models.TransferResult{Status: models.TransferStatusCompleted, Signature: sig})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFinalizeTransfer_Idempotent(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransferRepository(&models.Config{}, db)
	sig := strPtr("sig-1")
	result := models.TransferResult{Status: models.TransferStatusCompleted, Signature: sig}

	mock.ExpectExec(regexp.QuoteMeta(finalizeQuery)).
		WithArgs(models.TransferStatusCompleted, sig, "ref").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(finalizeQuery)).
		WithArgs(models.TransferStatusCompleted, sig, "ref").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("FROM transfers")).
		WithArgs("ref").
		WillReturnRows(sqlmock.NewRows(transferCols).AddRow(1, "ref", 3, "sig-1", "Completed", "s", time.Now()))

	require.NoError(t, repo.FinalizeTransfer(context.Background(), "ref", result))
	require.NoError(t, repo.FinalizeTransfer(context.Background(), "ref", result))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFinalizeTransfer_ConflictingTerminalState(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransferRepository(&models.Config{}, db)

	mock.ExpectExec(regexp.QuoteMeta(finalizeQuery)).
		WithArgs(models.TransferStatusRejected, nil, "ref").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("FROM transfers")).
		WithArgs("ref").
		WillReturnRows(sqlmock.NewRows(transferCols).AddRow(1, "ref", 3, "sig-1", "Completed", "s", time.Now()))

	err := repo.FinalizeTransfer(context.Background(), "ref", models.TransferResult{Status: models.TransferStatusRejected})
	assert.ErrorIs(t, err, settlement.ErrAlreadyFinalized)
}

func TestFinalizeTransfer_MissingRow(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransferRepository(&models.Config{}, db)

	mock.ExpectExec(regexp.QuoteMeta(finalizeQuery)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("FROM transfers")).
		WithArgs("ref").
		WillReturnError(sql.ErrNoRows)

	err := repo.FinalizeTransfer(context.Background(), "ref", models.TransferResult{Status: models.TransferStatusRejected})
	assert.ErrorIs(t, err, settlement.ErrTransferNotFound)
}

func TestFinalizeTransfer_RejectsNonTerminal(t *testing.T) {
	db, _ := setupMockDB(t)
	repo := repository.NewTransferRepository(&models.Config{}, db)

	err := repo.FinalizeTransfer(context.Background(), "ref", models.TransferResult{Status: models.TransferStatusPending})
	assert.Error(t, err)
}
