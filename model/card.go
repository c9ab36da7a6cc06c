package model

import (
	"time"

	"card-wallet-api/common"
)

// MaskedCVV is the fixed placeholder used wherever a CVV is rendered.
const MaskedCVV = "***"

// DefaultCardType is applied when a card is created without an explicit type.
const DefaultCardType = "Universal"

// DefaultCurrency is the currency assigned to newly created cards.
const DefaultCurrency = "UAH"

type Card struct {
	ID         int       `json:"id"`
	UserID     int       `json:"user_id"`
	CardNumber string    `json:"card_number"`
	CardHolder string    `json:"card_holder"`
	ExpiryDate string    `json:"expiry_date"`
	CVV        string    `json:"cvv"`
	CardType   string    `json:"card_type"`
	Balance    float64   `json:"balance"`
	Currency   string    `json:"currency"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

// Masked returns a display copy of the card with the number reduced to its
// last four digits and the CVV replaced by the fixed placeholder. Every
// externally visible card must go through this before serialization.
func (c Card) Masked() Card {
	c.CardNumber = common.MaskCardNumber(c.CardNumber)
	c.CVV = MaskedCVV
	return c
}
