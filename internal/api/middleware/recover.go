package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	apperrors "github.com/nubecart/storefront/internal/errors"
	"github.com/nubecart/storefront/internal/utils/response"
)

// Recover converts a panicking handler into a 500-class JSON response
// instead of tearing down the connection.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				LoggerFromContext(r.Context()).Error("Handler panic",
					slog.String("http_path", r.URL.Path),
					slog.Any("panic", rec),
				)

				response.Error(w, apperrors.InternalError(fmt.Sprintf("unexpected error: %v", rec)))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
