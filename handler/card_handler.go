package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"card-wallet-api/common"
	"card-wallet-api/logger"
	"card-wallet-api/model"
	"card-wallet-api/service"

	"github.com/sirupsen/logrus"
)

// CardHandler holds dependencies for card CRUD endpoints.
type CardHandler struct {
	service *service.CardService
}

func NewCardHandler(s *service.CardService) *CardHandler {
	return &CardHandler{service: s}
}

// authenticatedUserID extracts the user identity the auth middleware
// attached to the request context.
func authenticatedUserID(r *http.Request) (int, *common.AppError) {
	userID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return 0, common.NewAppError(http.StatusUnauthorized, "invalid user ID in token", nil)
	}
	return userID, nil
}

// cardIDFromPath parses the {id} path segment.
func cardIDFromPath(r *http.Request) (int, *common.AppError) {
	cardID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return 0, common.NewAppError(http.StatusBadRequest, "invalid card ID in URL path", err)
	}
	return cardID, nil
}

// ListCards godoc
// @Summary      List the user's cards
// @Description  Returns the authenticated user's active cards with the card number and CVV masked.
// @Tags         cards
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  common.AppError
// @Failure      500  {object}  common.AppError
// @Router       /api/cards [get]
func (h *CardHandler) ListCards(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, appErr := authenticatedUserID(r)
	if appErr != nil {
		return appErr
	}

	cards, err := h.service.ListCards(r.Context(), userID)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "could not retrieve cards", err)
	}
	if cards == nil {
		cards = []*model.Card{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{"cards": cards})
	return nil
}

// GetCard godoc
// @Summary      Get one card
// @Tags         cards
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Card ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  common.AppError
// @Failure      401  {object}  common.AppError
// @Failure      404  {object}  common.AppError "Card absent, inactive or owned by another user"
// @Router       /api/cards/{id} [get]
func (h *CardHandler) GetCard(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, appErr := authenticatedUserID(r)
	if appErr != nil {
		return appErr
	}
	cardID, appErr := cardIDFromPath(r)
	if appErr != nil {
		return appErr
	}

	card, err := h.service.GetCard(r.Context(), cardID, userID)
	if err != nil {
		if err == service.ErrCardNotFound {
			return common.NewAppError(http.StatusNotFound, err.Error(), nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "could not retrieve card", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{"card": card})
	return nil
}

// CreateCard godoc
// @Summary      Add a new card
// @Description  The card number must pass the Luhn check after whitespace is stripped.
// @Tags         cards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        card body model.CreateCardRequest true "Card payload"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  common.AppError "Missing fields or invalid card number"
// @Failure      401  {object}  common.AppError
// @Failure      500  {object}  common.AppError
// @Router       /api/cards [post]
func (h *CardHandler) CreateCard(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, appErr := authenticatedUserID(r)
	if appErr != nil {
		return appErr
	}

	var req model.CreateCardRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	log := logger.Log.WithFields(logrus.Fields{
		"user_id":   userID,
		"card_type": req.CardType,
	})
	log.Info("Create card request received")

	card, err := h.service.CreateCard(r.Context(), userID, req)
	if err != nil {
		if err == service.ErrInvalidCardNumber {
			return common.NewAppError(http.StatusBadRequest, err.Error(), nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "could not create card", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "card created successfully",
		"card":    card,
	})
	return nil
}

// UpdateCard godoc
// @Summary      Update a card
// @Description  Accepts any subset of card_holder, expiry_date and card_type; other fields are dropped.
// @Tags         cards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Card ID"
// @Param        updates body object true "Fields to update"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  common.AppError "No updatable fields in the payload"
// @Failure      401  {object}  common.AppError
// @Failure      404  {object}  common.AppError
// @Router       /api/cards/{id} [put]
func (h *CardHandler) UpdateCard(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, appErr := authenticatedUserID(r)
	if appErr != nil {
		return appErr
	}
	cardID, appErr := cardIDFromPath(r)
	if appErr != nil {
		return appErr
	}

	var updates map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		return common.NewAppError(http.StatusBadRequest, "invalid request body", err)
	}

	if err := h.service.UpdateCard(r.Context(), cardID, userID, updates); err != nil {
		switch err {
		case service.ErrNoUpdatableFields:
			return common.NewAppError(http.StatusBadRequest, err.Error(), nil)
		case service.ErrCardNotFound:
			return common.NewAppError(http.StatusNotFound, err.Error(), nil)
		default:
			return common.NewAppError(http.StatusInternalServerError, "could not update card", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "card updated successfully"})
	return nil
}

// DeleteCard godoc
// @Summary      Delete a card
// @Description  Soft-deletes the card; its transaction history is preserved.
// @Tags         cards
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Card ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  common.AppError
// @Failure      401  {object}  common.AppError
// @Failure      404  {object}  common.AppError
// @Router       /api/cards/{id} [delete]
func (h *CardHandler) DeleteCard(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, appErr := authenticatedUserID(r)
	if appErr != nil {
		return appErr
	}
	cardID, appErr := cardIDFromPath(r)
	if appErr != nil {
		return appErr
	}

	if err := h.service.DeleteCard(r.Context(), cardID, userID); err != nil {
		if err == service.ErrCardNotFound {
			return common.NewAppError(http.StatusNotFound, err.Error(), nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "could not delete card", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "card deleted successfully"})
	return nil
}
