package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"card-wallet-api/logger"
	"card-wallet-api/model"
	"card-wallet-api/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidTransactionType = errors.New("transaction type must be credit or debit")
	ErrInvalidAmount          = errors.New("transaction amount must be greater than zero")
	ErrInsufficientFunds      = errors.New("insufficient funds")
)

// TransactionService owns the balance-affecting core: it records ledger
// entries and updates card balances as one atomic unit, serialized per card
// by a row lock.
type TransactionService struct {
	db       *sql.DB
	cardRepo repository.ICardRepository
	txnRepo  repository.ITransactionRepository
	cache    ICacheClient
}

func NewTransactionService(db *sql.DB, cardRepo repository.ICardRepository, txnRepo repository.ITransactionRepository, cache ICacheClient) *TransactionService {
	return &TransactionService{
		db:       db,
		cardRepo: cardRepo,
		txnRepo:  txnRepo,
		cache:    cache,
	}
}

// CreateTransaction records a credit or debit against a card owned by the
// caller and returns the created transaction with the resulting balance.
//
// The card row is locked for the duration of the database transaction, so
// two concurrent debits cannot both pass the sufficiency check; the ledger
// insert and the balance write commit or roll back together.
func (s *TransactionService) CreateTransaction(ctx context.Context, userID, cardID int, req model.CreateTransactionRequest) (*model.Transaction, float64, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"user_id": userID,
		"card_id": cardID,
		"type":    req.Type,
		"amount":  req.Amount,
	})
	log.Info("Starting transaction creation")

	if req.Type != model.TransactionTypeCredit && req.Type != model.TransactionTypeDebit {
		return nil, 0, ErrInvalidTransactionType
	}
	if req.Amount <= 0 {
		return nil, 0, ErrInvalidAmount
	}

	ctx, cancel := context.WithTimeout(ctx, persistenceTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	card, err := s.cardRepo.GetCardForUpdate(tx, cardID, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, 0, ErrCardNotFound
		}
		return nil, 0, err
	}

	if req.Type == model.TransactionTypeDebit && card.Balance < req.Amount {
		return nil, 0, ErrInsufficientFunds
	}

	transaction := &model.Transaction{
		CardID:      cardID,
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
	}

	if err := s.txnRepo.CreateTransaction(tx, transaction); err != nil {
		return nil, 0, fmt.Errorf("could not create transaction record: %w", err)
	}

	newBalance := card.Balance + req.Amount
	if req.Type == model.TransactionTypeDebit {
		newBalance = card.Balance - req.Amount
	}

	if err := s.cardRepo.UpdateCardBalance(tx, cardID, newBalance); err != nil {
		return nil, 0, fmt.Errorf("could not update card balance: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, 0, fmt.Errorf("could not commit transaction: %w", err)
	}

	if err := s.cache.Del(ctx, cardCacheKey(userID)).Err(); err != nil {
		log.WithError(err).Warn("Failed to invalidate card cache")
	}

	log.WithField("new_balance", newBalance).Info("Transaction completed successfully")
	return transaction, newBalance, nil
}

// ListTransactions retrieves the ledger for a card owned by the caller,
// newest first.
func (s *TransactionService) ListTransactions(ctx context.Context, userID, cardID int) ([]*model.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, persistenceTimeout)
	defer cancel()

	if _, err := s.cardRepo.GetCardByID(ctx, cardID, userID); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrCardNotFound
		}
		return nil, err
	}

	return s.txnRepo.GetTransactionsByCardID(ctx, cardID)
}
