package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/rpc/v2/json2"
	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengjek-settlement/internal/pkg/ledger"
	"github.com/piresc/nebengjek-settlement/internal/pkg/ledger/rpc"
	"github.com/piresc/nebengjek-settlement/internal/pkg/logger"
	"github.com/piresc/nebengjek-settlement/internal/pkg/models"
	nrpkg "github.com/piresc/nebengjek-settlement/internal/pkg/newrelic"
	"github.com/piresc/nebengjek-settlement/internal/utils"
	"github.com/piresc/nebengjek-settlement/services/settlement"
)

// HeaderUserID carries the authenticated user id set by the API gateway
const HeaderUserID = "X-User-ID"

// SettlementHandler handles HTTP requests for payments and transfers
type SettlementHandler struct {
	settlementUC settlement.SettlementUC
}

// NewSettlementHandler creates a new settlement HTTP handler
func NewSettlementHandler(settlementUC settlement.SettlementUC) *SettlementHandler {
	return &SettlementHandler{
		settlementUC: settlementUC,
	}
}

// CreatePayment handles payment creation for the calling user
func (h *SettlementHandler) CreatePayment(c echo.Context) error {
	userID, ok := userIDFrom(c)
	if !ok {
		return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Missing or invalid user id")
	}

	var req models.CreatePaymentRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for payment creation",
			logger.Err(err),
			logger.String("endpoint", "CreatePayment"))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	payment, err := h.settlementUC.CreatePayment(c.Request().Context(), userID, req)
	if err != nil {
		return errorResponse(c, err, "Failed to create payment")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Payment created successfully", payment)
}

// GetPayment returns a payment by public id
func (h *SettlementHandler) GetPayment(c echo.Context) error {
	publicID, err := uuid.Parse(c.Param("publicID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid payment ID")
	}

	payment, err := h.settlementUC.GetPayment(c.Request().Context(), publicID)
	if err != nil {
		return errorResponse(c, err, "Failed to retrieve payment")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment retrieved successfully", payment)
}

// BuildTransfer creates a transfer for the payment and returns the
// partially signed transaction
func (h *SettlementHandler) BuildTransfer(c echo.Context) error {
	publicID, err := uuid.Parse(c.Param("publicID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid payment ID")
	}

	var req models.CreateTransferRequest
	if err := c.Bind(&req); err != nil || req.SenderAddress == "" {
		return utils.BadRequestResponse(c, "sender_address is required")
	}

	nrpkg.AddTransactionAttribute(nrpkg.FromEchoContext(c), "payment_id", publicID.String())

	resp, err := h.settlementUC.BuildTransfer(c.Request().Context(), publicID, req.SenderAddress)
	if err != nil {
		return errorResponse(c, err, "Failed to build transfer")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Transfer created successfully", resp)
}

// SubmitTransfer broadcasts a sender-signed transaction and waits for the outcome
func (h *SettlementHandler) SubmitTransfer(c echo.Context) error {
	publicID, err := uuid.Parse(c.Param("publicID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid payment ID")
	}

	var req models.SubmitTransferRequest
	if err := c.Bind(&req); err != nil || req.Transaction == "" {
		return utils.BadRequestResponse(c, "transaction is required")
	}

	nrpkg.AddTransactionAttribute(nrpkg.FromEchoContext(c), "payment_id", publicID.String())

	transfer, err := h.settlementUC.SubmitTransfer(c.Request().Context(), publicID, req.Transaction)
	if err != nil {
		return errorResponse(c, err, "Failed to submit transfer")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transfer "+string(transfer.Status), transfer)
}

// GetTransfer returns a transfer by reference key
func (h *SettlementHandler) GetTransfer(c echo.Context) error {
	reference := c.Param("reference")
	if _, err := ledger.ParsePublicKey(reference); err != nil {
		return utils.BadRequestResponse(c, "Invalid reference")
	}

	transfer, err := h.settlementUC.GetTransfer(c.Request().Context(), reference)
	if err != nil {
		return errorResponse(c, err, "Failed to retrieve transfer")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transfer retrieved successfully", transfer)
}

func userIDFrom(c echo.Context) (int64, bool) {
	if id, ok := c.Get("user_id").(int64); ok {
		return id, true
	}
	id, err := strconv.ParseInt(c.Request().Header.Get(HeaderUserID), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// errorResponse maps use case errors to HTTP statuses
func errorResponse(c echo.Context, err error, fallback string) error {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		nrpkg.NoticeTransactionError(nrpkg.FromEchoContext(c), err)
		logger.ErrorCtx(c.Request().Context(), fallback,
			logger.String("path", c.Path()),
			logger.Err(err))
	}

	switch status {
	case http.StatusBadRequest:
		return utils.BadRequestResponse(c, err.Error())
	case http.StatusNotFound:
		return utils.NotFoundResponse(c, err.Error())
	case http.StatusConflict:
		return utils.ConflictResponse(c, err.Error())
	case http.StatusUnprocessableEntity:
		return utils.UnprocessableEntityResponse(c, err.Error())
	case http.StatusServiceUnavailable:
		return utils.ServiceUnavailableResponse(c, "Ledger unavailable")
	case http.StatusInternalServerError:
		return utils.InternalServerErrorResponse(c, fallback)
	default:
		return utils.ErrorResponseHandler(c, status, err.Error())
	}
}

func statusFor(err error) int {
	var nodeErr *json2.Error

	switch {
	case errors.Is(err, settlement.ErrInvalidAmount),
		errors.Is(err, settlement.ErrInvalidCategory),
		errors.Is(err, ledger.ErrAddressFormat),
		errors.Is(err, ledger.ErrSignatureFormat),
		errors.Is(err, ledger.ErrMalformedTransaction):
		return http.StatusBadRequest
	case errors.Is(err, settlement.ErrPaymentNotFound),
		errors.Is(err, settlement.ErrTransferNotFound):
		return http.StatusNotFound
	case errors.Is(err, settlement.ErrAlreadyFinalized),
		errors.Is(err, settlement.ErrReferenceReused):
		return http.StatusConflict
	case errors.Is(err, settlement.ErrUntrustedSigner),
		errors.Is(err, settlement.ErrUntrustedFeePayer),
		errors.Is(err, ledger.ErrSignatureVerification),
		errors.Is(err, settlement.ErrTransactionMismatch),
		errors.Is(err, settlement.ErrReceiverWalletMissing),
		errors.Is(err, settlement.ErrArithmeticOverflow),
		errors.Is(err, settlement.ErrArithmeticUnderflow),
		errors.As(err, &nodeErr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, settlement.ErrConfirmationTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, rpc.ErrNetworkUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
