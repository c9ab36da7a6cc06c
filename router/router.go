package router

import (
	"net/http"

	"card-wallet-api/common"
	"card-wallet-api/handler"

	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// NewRouter wires all routes. Card and transaction routes sit behind the
// auth middleware; auth and health routes are public.
func NewRouter(authHandler *handler.AuthHandler, cardHandler *handler.CardHandler, transactionHandler *handler.TransactionHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.Handle("GET /swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	mux.Handle("POST /api/auth/register", handler.ErrorHandlingMiddleware(authHandler.Register))
	mux.Handle("POST /api/auth/login", handler.ErrorHandlingMiddleware(authHandler.Login))

	protected := func(h func(http.ResponseWriter, *http.Request) *common.AppError) http.Handler {
		return handler.AuthMiddleware(handler.ErrorHandlingMiddleware(h))
	}

	mux.Handle("GET /api/auth/me", protected(authHandler.Me))

	mux.Handle("GET /api/cards", protected(cardHandler.ListCards))
	mux.Handle("POST /api/cards", protected(cardHandler.CreateCard))
	mux.Handle("GET /api/cards/{id}", protected(cardHandler.GetCard))
	mux.Handle("PUT /api/cards/{id}", protected(cardHandler.UpdateCard))
	mux.Handle("DELETE /api/cards/{id}", protected(cardHandler.DeleteCard))

	mux.Handle("GET /api/cards/{id}/transactions", protected(transactionHandler.ListTransactions))
	mux.Handle("POST /api/cards/{id}/transactions", protected(transactionHandler.CreateTransaction))

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	return handler.RecoveryMiddleware(c.Handler(mux))
}
