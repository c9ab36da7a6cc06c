// file: handler/router_flow_test.go

package handler_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"card-wallet-api/handler"
	"card-wallet-api/model"
	"card-wallet-api/repository"
	"card-wallet-api/router"
	"card-wallet-api/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Repository and cache doubles ---

type stubUserRepo struct{ mock.Mock }

func (m *stubUserRepo) CreateUser(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *stubUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *stubUserRepo) GetUserByID(ctx context.Context, id int) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type stubCardRepo struct{ mock.Mock }

func (m *stubCardRepo) CreateCard(ctx context.Context, card *model.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *stubCardRepo) GetCardsByUserID(ctx context.Context, userID int) ([]*model.Card, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Card), args.Error(1)
}

func (m *stubCardRepo) GetCardByID(ctx context.Context, cardID, userID int) (*model.Card, error) {
	args := m.Called(ctx, cardID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Card), args.Error(1)
}

func (m *stubCardRepo) GetCardForUpdate(tx *sql.Tx, cardID, userID int) (*model.Card, error) {
	args := m.Called(tx, cardID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Card), args.Error(1)
}

func (m *stubCardRepo) UpdateCardFields(ctx context.Context, cardID, userID int, updates map[string]interface{}) (int64, error) {
	args := m.Called(ctx, cardID, userID, updates)
	return args.Get(0).(int64), args.Error(1)
}

func (m *stubCardRepo) UpdateCardBalance(tx *sql.Tx, cardID int, newBalance float64) error {
	args := m.Called(tx, cardID, newBalance)
	return args.Error(0)
}

func (m *stubCardRepo) DeactivateCard(ctx context.Context, cardID, userID int) (int64, error) {
	args := m.Called(ctx, cardID, userID)
	return args.Get(0).(int64), args.Error(1)
}

type stubTxnRepo struct{ mock.Mock }

func (m *stubTxnRepo) CreateTransaction(tx *sql.Tx, transaction *model.Transaction) error {
	args := m.Called(tx, transaction)
	return args.Error(0)
}

func (m *stubTxnRepo) GetTransactionsByCardID(ctx context.Context, cardID int) ([]*model.Transaction, error) {
	args := m.Called(ctx, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Transaction), args.Error(1)
}

type stubCache struct{ mock.Mock }

func (m *stubCache) Get(ctx context.Context, key string) *redis.StringCmd {
	args := m.Called(ctx, key)
	return args.Get(0).(*redis.StringCmd)
}

func (m *stubCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	args := m.Called(ctx, key, value, expiration)
	return args.Get(0).(*redis.StatusCmd)
}

func (m *stubCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	args := m.Called(ctx, keys)
	return args.Get(0).(*redis.IntCmd)
}

// testEnv bundles the routed application with its mocked collaborators.
type testEnv struct {
	router   http.Handler
	dbMock   sqlmock.Sqlmock
	userRepo *stubUserRepo
	cardRepo *stubCardRepo
	txnRepo  *stubTxnRepo
	cache    *stubCache
	auth     *service.AuthService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	userRepo := new(stubUserRepo)
	cardRepo := new(stubCardRepo)
	txnRepo := new(stubTxnRepo)
	cache := new(stubCache)
	cache.On("Get", mock.Anything, mock.Anything).Return(redis.NewStringResult("", redis.Nil)).Maybe()
	cache.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(redis.NewStatusResult("OK", nil)).Maybe()
	cache.On("Del", mock.Anything, mock.Anything).Return(redis.NewIntResult(1, nil)).Maybe()

	var _ repository.IUserRepository = userRepo
	var _ repository.ICardRepository = cardRepo
	var _ repository.ITransactionRepository = txnRepo

	authService := service.NewAuthService(userRepo)
	authHandler := handler.NewAuthHandler(authService)
	cardService := service.NewCardService(cardRepo, cache)
	cardHandler := handler.NewCardHandler(cardService)
	transactionService := service.NewTransactionService(db, cardRepo, txnRepo, cache)
	transactionHandler := handler.NewTransactionHandler(transactionService)

	return &testEnv{
		router:   router.NewRouter(authHandler, cardHandler, transactionHandler),
		dbMock:   dbMock,
		userRepo: userRepo,
		cardRepo: cardRepo,
		txnRepo:  txnRepo,
		cache:    cache,
		auth:     authService,
	}
}

func (env *testEnv) request(t *testing.T, method, target, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)
	return rr
}

func TestRegisterAndLogin(t *testing.T) {
	t.Run("register issues a token", func(t *testing.T) {
		env := newTestEnv(t)

		env.userRepo.On("GetUserByEmail", mock.Anything, "jane@example.com").Return(nil, sql.ErrNoRows).Once()
		env.userRepo.On("CreateUser", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			args.Get(1).(*model.User).ID = 7
		}).Return(nil).Once()

		rr := env.request(t, "POST", "/api/auth/register", "",
			`{"username":"jane","email":"jane@example.com","password":"password123"}`)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var resp struct {
			Token string     `json:"token"`
			User  model.User `json:"user"`
		}
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, 7, resp.User.ID)
		env.userRepo.AssertExpectations(t)
	})

	t.Run("register rejects a short password", func(t *testing.T) {
		env := newTestEnv(t)

		rr := env.request(t, "POST", "/api/auth/register", "",
			`{"username":"jane","email":"jane@example.com","password":"short"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		env.userRepo.AssertNotCalled(t, "CreateUser")
	})

	t.Run("register rejects a duplicate email", func(t *testing.T) {
		env := newTestEnv(t)

		env.userRepo.On("GetUserByEmail", mock.Anything, "jane@example.com").Return(&model.User{ID: 7}, nil).Once()

		rr := env.request(t, "POST", "/api/auth/register", "",
			`{"username":"jane","email":"jane@example.com","password":"password123"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"user with this email already exists"}`, rr.Body.String())
	})

	t.Run("login rejects a wrong password", func(t *testing.T) {
		env := newTestEnv(t)

		hashed, err := env.auth.HashPassword("password123")
		assert.NoError(t, err)
		env.userRepo.On("GetUserByEmail", mock.Anything, "jane@example.com").
			Return(&model.User{ID: 7, Email: "jane@example.com", Password: hashed}, nil).Once()

		rr := env.request(t, "POST", "/api/auth/login", "",
			`{"email":"jane@example.com","password":"wrongpassword"}`)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"error":"invalid email or password"}`, rr.Body.String())
	})

	t.Run("me reports a vanished user as not found", func(t *testing.T) {
		env := newTestEnv(t)
		token, err := env.auth.GenerateJWT(7, "jane@example.com")
		assert.NoError(t, err)

		env.userRepo.On("GetUserByID", mock.Anything, 7).Return(nil, sql.ErrNoRows).Once()

		rr := env.request(t, "GET", "/api/auth/me", token, "")

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

// TestCardLedgerFlow walks the full journey: create a card with an opening
// balance, debit part of it, then attempt a debit exceeding the remainder.
func TestCardLedgerFlow(t *testing.T) {
	env := newTestEnv(t)
	userID := 7

	token, err := env.auth.GenerateJWT(userID, "jane@example.com")
	assert.NoError(t, err)

	// Create a card with an opening balance of 100.
	env.cardRepo.On("CreateCard", mock.Anything, mock.MatchedBy(func(card *model.Card) bool {
		return card.UserID == userID && card.Balance == 100 && card.CardNumber == "4532015112830366"
	})).Run(func(args mock.Arguments) {
		card := args.Get(1).(*model.Card)
		card.ID = 1
		card.IsActive = true
	}).Return(nil).Once()

	rr := env.request(t, "POST", "/api/cards", token,
		`{"cardNumber":"4532 0151 1283 0366","cardHolder":"JANE DOE","expiryDate":"12/27","cvv":"123","balance":100}`)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var created struct {
		Card model.Card `json:"card"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, "************0366", created.Card.CardNumber)
	assert.Equal(t, model.MaskedCVV, created.Card.CVV)

	// Debit 30: the balance drops to 70.
	env.dbMock.ExpectBegin()
	env.cardRepo.On("GetCardForUpdate", mock.Anything, 1, userID).
		Return(&model.Card{ID: 1, UserID: userID, Balance: 100, IsActive: true}, nil).Once()
	env.txnRepo.On("CreateTransaction", mock.Anything, mock.AnythingOfType("*model.Transaction")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.Transaction).ID = 10
		}).Return(nil).Once()
	env.cardRepo.On("UpdateCardBalance", mock.Anything, 1, 70.0).Return(nil).Once()
	env.dbMock.ExpectCommit()

	rr = env.request(t, "POST", "/api/cards/1/transactions", token,
		`{"type":"debit","amount":30,"description":"groceries"}`)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var debited struct {
		Transaction model.Transaction `json:"transaction"`
		NewBalance  float64           `json:"newBalance"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &debited))
	assert.Equal(t, 70.0, debited.NewBalance)
	assert.Equal(t, 10, debited.Transaction.ID)

	// Debit 80: rejected, the balance stays at 70.
	env.dbMock.ExpectBegin()
	env.cardRepo.On("GetCardForUpdate", mock.Anything, 1, userID).
		Return(&model.Card{ID: 1, UserID: userID, Balance: 70, IsActive: true}, nil).Once()
	env.dbMock.ExpectRollback()

	rr = env.request(t, "POST", "/api/cards/1/transactions", token,
		`{"type":"debit","amount":80}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"insufficient funds"}`, rr.Body.String())

	env.cardRepo.AssertExpectations(t)
	env.txnRepo.AssertExpectations(t)
	assert.NoError(t, env.dbMock.ExpectationsWereMet())
}

func TestOwnershipIsolation(t *testing.T) {
	env := newTestEnv(t)

	otherToken, err := env.auth.GenerateJWT(8, "john@example.com")
	assert.NoError(t, err)

	t.Run("foreign card id is not found", func(t *testing.T) {
		env.cardRepo.On("GetCardByID", mock.Anything, 1, 8).Return(nil, sql.ErrNoRows).Once()

		rr := env.request(t, "GET", "/api/cards/1", otherToken, "")

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error":"card not found"}`, rr.Body.String())
	})

	t.Run("card listing only covers the caller", func(t *testing.T) {
		env.cardRepo.On("GetCardsByUserID", mock.Anything, 8).Return([]*model.Card{}, nil).Once()

		rr := env.request(t, "GET", "/api/cards", otherToken, "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"cards":[]}`, rr.Body.String())
	})

	t.Run("foreign transaction listing is not found", func(t *testing.T) {
		env.cardRepo.On("GetCardByID", mock.Anything, 1, 8).Return(nil, sql.ErrNoRows).Once()

		rr := env.request(t, "GET", "/api/cards/1/transactions", otherToken, "")

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestUpdateAndDeleteCard(t *testing.T) {
	env := newTestEnv(t)
	userID := 7

	token, err := env.auth.GenerateJWT(userID, "jane@example.com")
	assert.NoError(t, err)

	t.Run("update filters to the allow-list", func(t *testing.T) {
		env.cardRepo.On("UpdateCardFields", mock.Anything, 1, userID, map[string]interface{}{
			"card_holder": "JANE A DOE",
		}).Return(int64(1), nil).Once()

		rr := env.request(t, "PUT", "/api/cards/1", token,
			`{"card_holder":"JANE A DOE","balance":99999}`)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("update with nothing allowed is a bad request", func(t *testing.T) {
		rr := env.request(t, "PUT", "/api/cards/1", token, `{"balance":99999}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"no updatable fields provided"}`, rr.Body.String())
	})

	t.Run("delete is a soft-delete scoped to the owner", func(t *testing.T) {
		env.cardRepo.On("DeactivateCard", mock.Anything, 1, userID).Return(int64(1), nil).Once()

		rr := env.request(t, "DELETE", "/api/cards/1", token, "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"message":"card deleted successfully"}`, rr.Body.String())
	})

	t.Run("delete of a missing card is not found", func(t *testing.T) {
		env.cardRepo.On("DeactivateCard", mock.Anything, 2, userID).Return(int64(0), nil).Once()

		rr := env.request(t, "DELETE", "/api/cards/2", token, "")

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("non-numeric card id is a bad request", func(t *testing.T) {
		rr := env.request(t, "GET", "/api/cards/abc", token, "")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	env.cardRepo.AssertExpectations(t)
}
