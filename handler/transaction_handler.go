package handler

import (
	"encoding/json"
	"net/http"

	"card-wallet-api/common"
	"card-wallet-api/model"
	"card-wallet-api/service"
)

// TransactionHandler holds dependencies for transaction-related handlers.
type TransactionHandler struct {
	service *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler with its dependencies.
func NewTransactionHandler(s *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: s}
}

// CreateTransaction godoc
// @Summary      Record a transaction against a card
// @Description  Records a credit or debit and atomically updates the card balance. A debit exceeding the balance is rejected.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Card ID"
// @Param        transaction body model.CreateTransactionRequest true "Transaction payload"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  common.AppError "Invalid type/amount or insufficient funds"
// @Failure      401  {object}  common.AppError
// @Failure      404  {object}  common.AppError "Card not found or not owned by the caller"
// @Failure      500  {object}  common.AppError
// @Router       /api/cards/{id}/transactions [post]
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, appErr := authenticatedUserID(r)
	if appErr != nil {
		return appErr
	}
	cardID, appErr := cardIDFromPath(r)
	if appErr != nil {
		return appErr
	}

	var req model.CreateTransactionRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	transaction, newBalance, err := h.service.CreateTransaction(r.Context(), userID, cardID, req)
	if err != nil {
		switch err {
		case service.ErrCardNotFound:
			return common.NewAppError(http.StatusNotFound, err.Error(), nil)
		case service.ErrInvalidTransactionType, service.ErrInvalidAmount, service.ErrInsufficientFunds:
			return common.NewAppError(http.StatusBadRequest, err.Error(), nil)
		default:
			return common.NewAppError(http.StatusInternalServerError, "could not create transaction", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message":     "transaction created successfully",
		"transaction": transaction,
		"newBalance":  newBalance,
	})
	return nil
}

// ListTransactions godoc
// @Summary      List a card's transactions
// @Description  Returns the transaction history of a card owned by the caller, newest first.
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Card ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  common.AppError
// @Failure      401  {object}  common.AppError
// @Failure      404  {object}  common.AppError "Card not found or not owned by the caller"
// @Failure      500  {object}  common.AppError
// @Router       /api/cards/{id}/transactions [get]
func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, appErr := authenticatedUserID(r)
	if appErr != nil {
		return appErr
	}
	cardID, appErr := cardIDFromPath(r)
	if appErr != nil {
		return appErr
	}

	transactions, err := h.service.ListTransactions(r.Context(), userID, cardID)
	if err != nil {
		if err == service.ErrCardNotFound {
			return common.NewAppError(http.StatusNotFound, err.Error(), nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "could not retrieve transactions", err)
	}
	if transactions == nil {
		transactions = []*model.Transaction{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{"transactions": transactions})
	return nil
}
