package middleware

import (
	"fmt"
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/trip-planner/trip-offer-aggregation-service/internal/adapter/http/response"
)

// stackSize bounds the stack trace captured on panic.
const stackSize = 4 << 10

// RecoveryConfig controls what the recovery middleware logs about a panic.
type RecoveryConfig struct {
	// DisableStackAll limits the stack trace to the panicking goroutine
	DisableStackAll bool

	// DisablePrintStack drops the stack trace from the log entry entirely
	DisablePrintStack bool
}

// DefaultRecoveryConfig returns the default recovery configuration.
func DefaultRecoveryConfig() RecoveryConfig {
	return RecoveryConfig{
		DisableStackAll:   false,
		DisablePrintStack: false,
	}
}

// Recover returns middleware that recovers from panics in the handler chain.
// The panic is logged with its stack trace and the client receives the same
// internal-error payload the handlers produce, so a panicking search looks no
// different to callers than any other server fault.
func Recover(log zerolog.Logger) echo.MiddlewareFunc {
	return RecoverWithConfig(log, DefaultRecoveryConfig())
}

// RecoverWithConfig returns recovery middleware with custom configuration.
func RecoverWithConfig(log zerolog.Logger, config RecoveryConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					reqID := GetRequestID(c)

					var panicMsg string
					if err, ok := r.(error); ok {
						panicMsg = err.Error()
					} else {
						panicMsg = fmt.Sprintf("%v", r)
					}

					event := log.Error().
						Str("request_id", reqID).
						Str("panic", panicMsg)

					if !config.DisablePrintStack {
						buf := make([]byte, stackSize)
						n := runtime.Stack(buf, !config.DisableStackAll)
						event = event.Str("stack", string(buf[:n]))
					}

					event.Msg("Panic recovered")

					// Generic payload only: panic values never reach clients.
					if !c.Response().Committed {
						c.JSON(http.StatusInternalServerError, &response.ErrorDetail{
							Code:    response.CodeInternalError,
							Message: response.MsgInternalError,
						})
					}
				}
			}()

			return next(c)
		}
	}
}
