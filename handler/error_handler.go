package handler

import (
	"fmt"
	"net/http"

	"card-wallet-api/common"
)

// ErrorHandlingMiddleware adapts handlers that return *common.AppError into
// plain http.Handlers, centralizing the error response path.
func ErrorHandlingMiddleware(next func(http.ResponseWriter, *http.Request) *common.AppError) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := next(w, r); err != nil {
			err.Send(w)
		}
	}
}

// RecoveryMiddleware converts any panic escaping the request pipeline into a
// generic 500 response. The cause is logged, never sent to the client.
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				appErr := common.NewAppError(http.StatusInternalServerError, "something went wrong", fmt.Errorf("panic: %v", rec))
				appErr.Send(w)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
