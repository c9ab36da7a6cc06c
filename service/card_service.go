// file: service/card_service.go

package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"card-wallet-api/common"
	"card-wallet-api/logger"
	"card-wallet-api/model"
	"card-wallet-api/repository"
)

var (
	ErrCardNotFound      = errors.New("card not found")
	ErrInvalidCardNumber = errors.New("invalid card number")
	ErrNoUpdatableFields = errors.New("no updatable fields provided")
)

// cardUpdateColumns is the full set of card fields a client may change.
// Anything outside this allow-list is silently dropped before the update
// reaches the repository.
var cardUpdateColumns = map[string]bool{
	"card_holder": true,
	"expiry_date": true,
	"card_type":   true,
}

const cardCacheTTL = 10 * time.Minute

// persistenceTimeout bounds every storage sequence so a stuck database
// surfaces an error instead of hanging the request.
const persistenceTimeout = 5 * time.Second

// CardService enforces ownership and card business rules on top of the
// repository, with a cache-aside Redis layer for card listings.
type CardService struct {
	repo  repository.ICardRepository
	cache ICacheClient
}

func NewCardService(repo repository.ICardRepository, cache ICacheClient) *CardService {
	return &CardService{
		repo:  repo,
		cache: cache,
	}
}

func cardCacheKey(userID int) string {
	return fmt.Sprintf("cards:%d", userID)
}

func (s *CardService) invalidateCache(ctx context.Context, userID int) {
	if err := s.cache.Del(ctx, cardCacheKey(userID)).Err(); err != nil {
		logger.Log.WithError(err).WithField("user_id", userID).Warn("Failed to invalidate card cache")
	}
}

// ListCards returns the user's active cards with the number and CVV masked,
// utilizing a cache-aside strategy. Only masked data is ever written to the
// cache.
func (s *CardService) ListCards(ctx context.Context, userID int) ([]*model.Card, error) {
	ctx, cancel := context.WithTimeout(ctx, persistenceTimeout)
	defer cancel()

	cacheKey := cardCacheKey(userID)

	if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
		var cards []*model.Card
		if err := json.Unmarshal([]byte(cached), &cards); err == nil {
			return cards, nil
		}
	}

	cards, err := s.repo.GetCardsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	masked := make([]*model.Card, 0, len(cards))
	for _, card := range cards {
		m := card.Masked()
		masked = append(masked, &m)
	}

	if data, err := json.Marshal(masked); err == nil {
		s.cache.Set(ctx, cacheKey, data, cardCacheTTL)
	}

	return masked, nil
}

// GetCard returns a single card scoped to its owner, masked for display.
func (s *CardService) GetCard(ctx context.Context, cardID, userID int) (*model.Card, error) {
	ctx, cancel := context.WithTimeout(ctx, persistenceTimeout)
	defer cancel()

	card, err := s.repo.GetCardByID(ctx, cardID, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrCardNotFound
		}
		return nil, err
	}

	masked := card.Masked()
	return &masked, nil
}

// CreateCard validates the card number with the Luhn checksum, applies the
// defaults and persists the card. The returned copy is masked.
func (s *CardService) CreateCard(ctx context.Context, userID int, req model.CreateCardRequest) (*model.Card, error) {
	number := strings.ReplaceAll(req.CardNumber, " ", "")
	if !common.ValidateCardNumber(number) {
		return nil, ErrInvalidCardNumber
	}

	ctx, cancel := context.WithTimeout(ctx, persistenceTimeout)
	defer cancel()

	cardType := req.CardType
	if cardType == "" {
		cardType = model.DefaultCardType
	}

	card := &model.Card{
		UserID:     userID,
		CardNumber: number,
		CardHolder: req.CardHolder,
		ExpiryDate: req.ExpiryDate,
		CVV:        req.CVV,
		CardType:   cardType,
		Balance:    req.Balance,
		Currency:   model.DefaultCurrency,
	}

	if err := s.repo.CreateCard(ctx, card); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx, userID)

	masked := card.Masked()
	return &masked, nil
}

// UpdateCard applies a partial update restricted to the allow-listed
// columns. Unknown fields are dropped, not rejected.
func (s *CardService) UpdateCard(ctx context.Context, cardID, userID int, updates map[string]interface{}) error {
	filtered := make(map[string]interface{}, len(updates))
	for column, value := range updates {
		if cardUpdateColumns[column] {
			filtered[column] = value
		}
	}

	if len(filtered) == 0 {
		return ErrNoUpdatableFields
	}

	ctx, cancel := context.WithTimeout(ctx, persistenceTimeout)
	defer cancel()

	affected, err := s.repo.UpdateCardFields(ctx, cardID, userID, filtered)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCardNotFound
	}

	s.invalidateCache(ctx, userID)
	return nil
}

// DeleteCard soft-deletes a card scoped to its owner. The card's transaction
// history stays intact and queryable.
func (s *CardService) DeleteCard(ctx context.Context, cardID, userID int) error {
	ctx, cancel := context.WithTimeout(ctx, persistenceTimeout)
	defer cancel()

	affected, err := s.repo.DeactivateCard(ctx, cardID, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCardNotFound
	}

	s.invalidateCache(ctx, userID)
	return nil
}
