package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/nebengjek-settlement/internal/pkg/logger"
)

// PanicRecovery turns a handler panic into a 500 response, logs the stack
// and reports it on the New Relic transaction when one is attached
func PanicRecovery(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}
				err = handlePanic(c, r, zapLogger)
			}()
			return next(c)
		}
	}
}

func handlePanic(c echo.Context, r interface{}, zapLogger *logger.ZapLogger) error {
	stack := string(debug.Stack())
	requestID := RequestID(c)
	panicType := fmt.Sprintf("%T", r)

	fields := []logger.Field{
		logger.Any("panic_value", r),
		logger.String("panic_type", panicType),
		logger.String("stack_trace", stack),
		logger.String("method", c.Request().Method),
		logger.String("path", c.Request().URL.Path),
		logger.String("client_ip", c.RealIP()),
		logger.String("request_id", requestID),
	}

	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.NoticeError(newrelic.Error{
			Message: fmt.Sprintf("Panic recovered: %v", r),
			Class:   "PanicError",
			Attributes: map[string]interface{}{
				"panic.type": panicType,
				"request_id": requestID,
			},
		})
		txn.AddAttribute("panic.recovered", true)
	}
	zapLogger.WithNewRelicContext(txn).Error("Panic recovered during request processing", fields...)

	if c.Response().Committed {
		return nil
	}
	return c.JSON(http.StatusInternalServerError, map[string]interface{}{
		"error":      "Internal Server Error",
		"message":    "An unexpected error occurred while processing your request",
		"request_id": requestID,
	})
}
