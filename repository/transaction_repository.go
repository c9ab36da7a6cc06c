package repository

import (
	"context"
	"database/sql"

	"card-wallet-api/logger"
	"card-wallet-api/model"

	"github.com/sirupsen/logrus"
)

// ITransactionRepository defines the contract for transaction database
// operations. Transactions are immutable once created.
type ITransactionRepository interface {
	CreateTransaction(tx *sql.Tx, transaction *model.Transaction) error
	GetTransactionsByCardID(ctx context.Context, cardID int) ([]*model.Transaction, error)
}

// TransactionRepository implements ITransactionRepository.
type TransactionRepository struct {
	DB *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{DB: db}
}

// CreateTransaction inserts a ledger record inside the given database
// transaction so the insert commits together with the balance write.
func (r *TransactionRepository) CreateTransaction(tx *sql.Tx, transaction *model.Transaction) error {
	log := logger.Log.WithFields(logrus.Fields{
		"card_id": transaction.CardID,
		"type":    transaction.Type,
		"amount":  transaction.Amount,
	})
	log.Info("Executing query to create a new transaction")

	query := `INSERT INTO transactions (card_id, type, amount, description) VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	err := tx.QueryRow(query, transaction.CardID, transaction.Type, transaction.Amount, transaction.Description).
		Scan(&transaction.ID, &transaction.CreatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create transaction query")
		return err
	}
	return nil
}

// GetTransactionsByCardID retrieves the ledger for a card, newest first.
// History remains readable after the card itself is deactivated.
func (r *TransactionRepository) GetTransactionsByCardID(ctx context.Context, cardID int) ([]*model.Transaction, error) {
	log := logger.Log.WithField("card_id", cardID)
	log.Info("Executing query to get transactions by card ID")

	query := `
		SELECT id, card_id, type, amount, COALESCE(description, ''), created_at
		FROM transactions
		WHERE card_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.DB.QueryContext(ctx, query, cardID)
	if err != nil {
		log.WithError(err).Error("Failed to execute query for transactions by card ID")
		return nil, err
	}
	defer rows.Close()

	var transactions []*model.Transaction
	for rows.Next() {
		var t model.Transaction
		if err := rows.Scan(&t.ID, &t.CardID, &t.Type, &t.Amount, &t.Description, &t.CreatedAt); err != nil {
			log.WithError(err).Error("Failed to scan transaction row")
			return nil, err
		}
		transactions = append(transactions, &t)
	}

	return transactions, rows.Err()
}
