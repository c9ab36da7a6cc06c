package model

import "time"

// Transaction types. A credit increases the card balance, a debit decreases it.
const (
	TransactionTypeCredit = "credit"
	TransactionTypeDebit  = "debit"
)

type Transaction struct {
	ID          int       `json:"id"`
	CardID      int       `json:"card_id"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
