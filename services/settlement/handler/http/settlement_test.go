package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/gorilla/rpc/v2/json2"
	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengjek-settlement/internal/pkg/ledger"
	"github.com/piresc/nebengjek-settlement/internal/pkg/ledger/rpc"
	"github.com/piresc/nebengjek-settlement/internal/pkg/models"
	"github.com/piresc/nebengjek-settlement/services/settlement"
	"github.com/piresc/nebengjek-settlement/services/settlement/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testReference = "7SMfVRrJw75vPzHCQ3ckUCT9igMRre8VHmodTbaVv4R"

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCreatePayment_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUC := mocks.NewMockSettlementUC(ctrl)
	h := NewSettlementHandler(mockUC)

	c, rec := newContext(http.MethodPost, "/api/v1/payments", `{"title":"Coffee","category":"OneTime","amount":25000}`)
	c.Request().Header.Set(HeaderUserID, "7")

	mockUC.EXPECT().
		CreatePayment(gomock.Any(), int64(7), models.CreatePaymentRequest{Title: "Coffee", Category: models.PaymentCategoryOneTime, Amount: 25000}).
		Return(&models.Payment{PublicID: uuid.New(), Title: "Coffee", Amount: 25000}, nil)

	// Act
	err := h.CreatePayment(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, true, decode(t, rec)["success"])
}

func TestCreatePayment_MissingUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h := NewSettlementHandler(mocks.NewMockSettlementUC(ctrl))

	c, rec := newContext(http.MethodPost, "/api/v1/payments", `{"amount":1}`)

	assert.NoError(t, h.CreatePayment(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreatePayment_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUC := mocks.NewMockSettlementUC(ctrl)
	h := NewSettlementHandler(mockUC)

	c, rec := newContext(http.MethodPost, "/api/v1/payments", `{"category":"OneTime","amount":0}`)
	c.Set("user_id", int64(3))
	mockUC.EXPECT().CreatePayment(gomock.Any(), int64(3), gomock.Any()).
		Return(nil, fmt.Errorf("%w: 0", settlement.ErrInvalidAmount))

	assert.NoError(t, h.CreatePayment(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPayment_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUC := mocks.NewMockSettlementUC(ctrl)
	h := NewSettlementHandler(mockUC)
	id := uuid.New()

	c, rec := newContext(http.MethodGet, "/", "")
	c.SetParamNames("publicID")
	c.SetParamValues(id.String())
	mockUC.EXPECT().GetPayment(gomock.Any(), id).Return(nil, settlement.ErrPaymentNotFound)

	assert.NoError(t, h.GetPayment(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetPayment_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h := NewSettlementHandler(mocks.NewMockSettlementUC(ctrl))

	c, rec := newContext(http.MethodGet, "/", "")
	c.SetParamNames("publicID")
	c.SetParamValues("not-a-uuid")

	assert.NoError(t, h.GetPayment(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBuildTransfer_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUC := mocks.NewMockSettlementUC(ctrl)
	h := NewSettlementHandler(mockUC)
	id := uuid.New()

	c, rec := newContext(http.MethodPost, "/", `{"sender_address":"`+testReference+`"}`)
	c.SetParamNames("publicID")
	c.SetParamValues(id.String())

	mockUC.EXPECT().BuildTransfer(gomock.Any(), id, testReference).Return(&models.BuildTransferResponse{
		Transaction:    "AQID",
		Reference:      "ref",
		Fee:            10_000,
		AmountAfterFee: 990_000,
	}, nil)

	// Act
	err := h.BuildTransfer(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	data := decode(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, "AQID", data["transaction"])
	assert.Equal(t, float64(10_000), data["fee"])
	assert.Equal(t, float64(990_000), data["amount_after_fee"])
}

func TestBuildTransfer_MissingSender(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h := NewSettlementHandler(mocks.NewMockSettlementUC(ctrl))

	c, rec := newContext(http.MethodPost, "/", `{}`)
	c.SetParamNames("publicID")
	c.SetParamValues(uuid.NewString())

	assert.NoError(t, h.BuildTransfer(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitTransfer_Completed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUC := mocks.NewMockSettlementUC(ctrl)
	h := NewSettlementHandler(mockUC)
	id := uuid.New()
	sig := "sig"

	c, rec := newContext(http.MethodPost, "/", `{"transaction":"AQID"}`)
	c.SetParamNames("publicID")
	c.SetParamValues(id.String())
	mockUC.EXPECT().SubmitTransfer(gomock.Any(), id, "AQID").Return(&models.Transfer{
		ReferenceKey: testReference,
		Status:       models.TransferStatusCompleted,
		Signature:    &sig,
	}, nil)

	assert.NoError(t, h.SubmitTransfer(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Transfer Completed", body["message"])
}

func TestSubmitTransfer_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"malformed", fmt.Errorf("%w: eof", ledger.ErrMalformedTransaction), http.StatusBadRequest},
		{"payment missing", settlement.ErrPaymentNotFound, http.StatusNotFound},
		{"finalized", settlement.ErrAlreadyFinalized, http.StatusConflict},
		{"untrusted fee payer", settlement.ErrUntrustedFeePayer, http.StatusUnprocessableEntity},
		{"bad signature", ledger.ErrSignatureVerification, http.StatusUnprocessableEntity},
		{"node rejected", &json2.Error{Code: -32002, Message: "simulation failed"}, http.StatusUnprocessableEntity},
		{"confirmation timeout", settlement.ErrConfirmationTimeout, http.StatusGatewayTimeout},
		{"network", fmt.Errorf("sendTransaction: %w", rpc.ErrNetworkUnavailable), http.StatusServiceUnavailable},
		{"unknown", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			mockUC := mocks.NewMockSettlementUC(ctrl)
			h := NewSettlementHandler(mockUC)

			c, rec := newContext(http.MethodPost, "/", `{"transaction":"AQID"}`)
			c.SetParamNames("publicID")
			c.SetParamValues(uuid.NewString())
			mockUC.EXPECT().SubmitTransfer(gomock.Any(), gomock.Any(), "AQID").Return(nil, tt.err)

			assert.NoError(t, h.SubmitTransfer(c))
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, false, decode(t, rec)["success"])
		})
	}
}

func TestGetTransfer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUC := mocks.NewMockSettlementUC(ctrl)
	h := NewSettlementHandler(mockUC)

	c, rec := newContext(http.MethodGet, "/", "")
	c.SetParamNames("reference")
	c.SetParamValues(testReference)
	mockUC.EXPECT().GetTransfer(gomock.Any(), testReference).
		Return(&models.Transfer{ReferenceKey: testReference, Status: models.TransferStatusPending}, nil)

	assert.NoError(t, h.GetTransfer(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newContext(http.MethodGet, "/", "")
	c.SetParamNames("reference")
	c.SetParamValues("0OIl")
	assert.NoError(t, h.GetTransfer(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
