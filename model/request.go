// file: model/request.go

package model

// RegisterRequest defines the payload for creating a new user.
// It includes validation tags to ensure data integrity at the entry point.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest defines the payload for user authentication.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateCardRequest defines the payload for adding a new card. The card
// number may contain spaces; they are stripped before the Luhn check.
type CreateCardRequest struct {
	CardNumber string  `json:"cardNumber" validate:"required"`
	CardHolder string  `json:"cardHolder" validate:"required"`
	ExpiryDate string  `json:"expiryDate" validate:"required"`
	CVV        string  `json:"cvv" validate:"required"`
	CardType   string  `json:"cardType"`
	Balance    float64 `json:"balance" validate:"gte=0"`
}

// CreateTransactionRequest defines the payload for recording a balance
// movement against a card.
type CreateTransactionRequest struct {
	Type        string  `json:"type" validate:"required,oneof=credit debit"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description"`
}
