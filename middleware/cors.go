package middleware

import (
	"net/http"

	"github.com/gorilla/handlers"
	"go.uber.org/zap"
)

// AllowedMethods are the methods browsers may use cross-origin. PATCH is
// included because the cart quantity routes use it.
var AllowedMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// CORS restricts cross-origin callers to origins and allows credentials
func CORS(origins []string) func(http.Handler) http.Handler {
	return handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods(AllowedMethods),
		handlers.AllowedHeaders([]string{"Content-Type"}),
		handlers.AllowCredentials(),
	)
}

type recoveryLogger struct{}

func (recoveryLogger) Println(v ...interface{}) {
	zap.S().Error(v...)
}

// Recover turns handler panics into 500 responses and logs them
func Recover(next http.Handler) http.Handler {
	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{}),
		handlers.PrintRecoveryStack(true),
	)(next)
}
