package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengjek-settlement/internal/pkg/models"
	"github.com/piresc/nebengjek-settlement/services/settlement/mocks"
	"github.com/stretchr/testify/assert"
)

func TestRegisterRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUC := mocks.NewMockSettlementUC(ctrl)

	limited := 0
	limiter := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			limited++
			return next(c)
		}
	}

	e := echo.New()
	NewHandler(mockUC).RegisterRoutes(e, limiter)

	ref := "7SMfVRrJw75vPzHCQ3ckUCT9igMRre8VHmodTbaVv4R"
	mockUC.EXPECT().GetTransfer(gomock.Any(), ref).Return(&models.Transfer{ReferenceKey: ref}, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/transfers/"+ref, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, limited)

	// rejected by the handler before reaching the use case, after the limiter
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/payments/not-a-uuid/transfers", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 1, limited)

	paths := map[string]bool{}
	for _, r := range e.Routes() {
		paths[r.Method+" "+r.Path] = true
	}
	assert.True(t, paths["POST /api/v1/payments"])
	assert.True(t, paths["GET /api/v1/payments/:publicID"])
	assert.True(t, paths["POST /api/v1/payments/:publicID/transfers/submit"])
}
