package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"card-wallet-api/logger"
	"card-wallet-api/model"

	"github.com/sirupsen/logrus"
)

// ICardRepository defines the contract for card database operations. Reads
// are always scoped by the owning user; ownership authorization beyond that
// is the service's job.
type ICardRepository interface {
	CreateCard(ctx context.Context, card *model.Card) error
	GetCardsByUserID(ctx context.Context, userID int) ([]*model.Card, error)
	GetCardByID(ctx context.Context, cardID, userID int) (*model.Card, error)
	GetCardForUpdate(tx *sql.Tx, cardID, userID int) (*model.Card, error)
	UpdateCardFields(ctx context.Context, cardID, userID int, updates map[string]interface{}) (int64, error)
	UpdateCardBalance(tx *sql.Tx, cardID int, newBalance float64) error
	DeactivateCard(ctx context.Context, cardID, userID int) (int64, error)
}

// CardRepository implements ICardRepository.
type CardRepository struct {
	DB *sql.DB
}

func NewCardRepository(db *sql.DB) *CardRepository {
	return &CardRepository{DB: db}
}

const cardColumns = `id, user_id, card_number, card_holder, expiry_date, cvv, card_type, balance, currency, is_active, created_at`

func scanCard(row interface{ Scan(...interface{}) error }, card *model.Card) error {
	return row.Scan(&card.ID, &card.UserID, &card.CardNumber, &card.CardHolder, &card.ExpiryDate,
		&card.CVV, &card.CardType, &card.Balance, &card.Currency, &card.IsActive, &card.CreatedAt)
}

// CreateCard inserts a new card record owned by card.UserID.
func (r *CardRepository) CreateCard(ctx context.Context, card *model.Card) error {
	log := logger.Log.WithFields(logrus.Fields{
		"user_id":   card.UserID,
		"card_type": card.CardType,
		"currency":  card.Currency,
	})
	log.Info("Executing query to create a new card")

	query := `INSERT INTO cards (user_id, card_number, card_holder, expiry_date, cvv, card_type, balance, currency)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, is_active, created_at`
	err := r.DB.QueryRowContext(ctx, query,
		card.UserID, card.CardNumber, card.CardHolder, card.ExpiryDate,
		card.CVV, card.CardType, card.Balance, card.Currency,
	).Scan(&card.ID, &card.IsActive, &card.CreatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create card query")
		return err
	}
	return nil
}

// GetCardsByUserID retrieves all active cards owned by the given user.
func (r *CardRepository) GetCardsByUserID(ctx context.Context, userID int) ([]*model.Card, error) {
	log := logger.Log.WithField("user_id", userID)
	log.Info("Executing query to get cards by user ID")

	query := `SELECT ` + cardColumns + ` FROM cards WHERE user_id = $1 AND is_active = TRUE ORDER BY id`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		log.WithError(err).Error("Failed to execute query for cards by user ID")
		return nil, err
	}
	defer rows.Close()

	var cards []*model.Card
	for rows.Next() {
		var card model.Card
		if err := scanCard(rows, &card); err != nil {
			log.WithError(err).Error("Failed to scan card row")
			return nil, err
		}
		cards = append(cards, &card)
	}
	return cards, rows.Err()
}

// GetCardByID retrieves a single active card scoped to its owner. Returns
// sql.ErrNoRows when the card is absent, inactive or owned by someone else.
func (r *CardRepository) GetCardByID(ctx context.Context, cardID, userID int) (*model.Card, error) {
	card := &model.Card{}
	query := `SELECT ` + cardColumns + ` FROM cards WHERE id = $1 AND user_id = $2 AND is_active = TRUE`
	err := scanCard(r.DB.QueryRowContext(ctx, query, cardID, userID), card)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.WithError(err).WithField("card_id", cardID).Error("Failed to execute get card query")
		}
		return nil, err
	}
	return card, nil
}

// GetCardForUpdate locks the card row for the duration of the surrounding
// database transaction, serializing balance mutations per card.
func (r *CardRepository) GetCardForUpdate(tx *sql.Tx, cardID, userID int) (*model.Card, error) {
	log := logger.Log.WithField("card_id", cardID)
	log.Info("Executing query to get card for update")

	card := &model.Card{}
	query := `SELECT ` + cardColumns + ` FROM cards WHERE id = $1 AND user_id = $2 AND is_active = TRUE FOR UPDATE`
	err := scanCard(tx.QueryRow(query, cardID, userID), card)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Info("Card not found for update")
		} else {
			log.WithError(err).Error("Failed to execute get card for update query")
		}
		return nil, err
	}
	return card, nil
}

// UpdateCardFields applies the given column/value pairs to a card scoped to
// its owner and reports the number of affected rows. Callers must restrict
// the keys to a vetted allow-list before reaching this point; only the
// values are bound as query parameters.
func (r *CardRepository) UpdateCardFields(ctx context.Context, cardID, userID int, updates map[string]interface{}) (int64, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"card_id": cardID,
		"user_id": userID,
	})
	log.Info("Executing query to update card fields")

	columns := make([]string, 0, len(updates))
	for column := range updates {
		columns = append(columns, column)
	}
	sort.Strings(columns)

	setClauses := make([]string, 0, len(columns))
	args := make([]interface{}, 0, len(columns)+2)
	for i, column := range columns {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, i+1))
		args = append(args, updates[column])
	}
	args = append(args, cardID, userID)

	query := fmt.Sprintf(`UPDATE cards SET %s WHERE id = $%d AND user_id = $%d AND is_active = TRUE`,
		strings.Join(setClauses, ", "), len(columns)+1, len(columns)+2)

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.WithError(err).Error("Failed to execute update card query")
		return 0, err
	}
	return result.RowsAffected()
}

// UpdateCardBalance writes the new balance inside the given database
// transaction, paired with the FOR UPDATE read that computed it.
func (r *CardRepository) UpdateCardBalance(tx *sql.Tx, cardID int, newBalance float64) error {
	log := logger.Log.WithFields(logrus.Fields{
		"card_id":     cardID,
		"new_balance": newBalance,
	})
	log.Info("Executing query to update card balance")

	query := `UPDATE cards SET balance = $1 WHERE id = $2`
	_, err := tx.Exec(query, newBalance, cardID)
	if err != nil {
		log.WithError(err).Error("Failed to execute update card balance query")
		return err
	}
	return nil
}

// DeactivateCard soft-deletes a card scoped to its owner and reports the
// number of affected rows. Transaction history is left untouched.
func (r *CardRepository) DeactivateCard(ctx context.Context, cardID, userID int) (int64, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"card_id": cardID,
		"user_id": userID,
	})
	log.Info("Executing query to deactivate card")

	query := `UPDATE cards SET is_active = FALSE WHERE id = $1 AND user_id = $2 AND is_active = TRUE`
	result, err := r.DB.ExecContext(ctx, query, cardID, userID)
	if err != nil {
		log.WithError(err).Error("Failed to execute deactivate card query")
		return 0, err
	}
	return result.RowsAffected()
}
