package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengjek-settlement/services/settlement"
	httpHandler "github.com/piresc/nebengjek-settlement/services/settlement/handler/http"
)

// Handler combines all handlers for the settlement service
type Handler struct {
	settlementHTTP *httpHandler.SettlementHandler
}

// NewHandler creates a new combined handler
func NewHandler(settlementUC settlement.SettlementUC) *Handler {
	return &Handler{
		settlementHTTP: httpHandler.NewSettlementHandler(settlementUC),
	}
}

// RegisterRoutes registers all HTTP routes. Transfer creation and
// submission go through limiter when it is set.
func (h *Handler) RegisterRoutes(e *echo.Echo, limiter echo.MiddlewareFunc) {
	var limited []echo.MiddlewareFunc
	if limiter != nil {
		limited = append(limited, limiter)
	}

	api := e.Group("/api/v1")

	payments := api.Group("/payments")
	payments.POST("", h.settlementHTTP.CreatePayment)
	payments.GET("/:publicID", h.settlementHTTP.GetPayment)
	payments.POST("/:publicID/transfers", h.settlementHTTP.BuildTransfer, limited...)
	payments.POST("/:publicID/transfers/submit", h.settlementHTTP.SubmitTransfer, limited...)

	api.GET("/transfers/:reference", h.settlementHTTP.GetTransfer)
}
