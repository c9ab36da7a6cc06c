package handler

import (
	"encoding/json"
	"net/http"

	"card-wallet-api/common"
	"card-wallet-api/logger"
	"card-wallet-api/model"
	"card-wallet-api/service"
)

// AuthHandler holds dependencies for authentication endpoints.
type AuthHandler struct {
	service *service.AuthService
}

func NewAuthHandler(s *service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

// Register godoc
// @Summary      Register a new user
// @Description  Creates a user account and returns a bearer token for it.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        register body model.RegisterRequest true "Registration payload"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  common.AppError "Missing fields, short password or duplicate email/username"
// @Failure      500  {object}  common.AppError
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.RegisterRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	user, token, err := h.service.Register(r.Context(), req)
	if err != nil {
		switch err {
		case service.ErrEmailTaken, service.ErrUsernameTaken:
			return common.NewAppError(http.StatusBadRequest, err.Error(), nil)
		default:
			return common.NewAppError(http.StatusInternalServerError, "could not register user", err)
		}
	}

	logger.Log.WithField("user_id", user.ID).Info("Register request completed")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "user registered successfully",
		"token":   token,
		"user":    user,
	})
	return nil
}

// Login godoc
// @Summary      Authenticate a user
// @Description  Verifies the credentials and returns a bearer token. Unknown
// @Description  email and wrong password produce the same error.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login body model.LoginRequest true "Login payload"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  common.AppError "Missing email or password"
// @Failure      401  {object}  common.AppError "Invalid email or password"
// @Failure      500  {object}  common.AppError
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.LoginRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	user, token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if err == service.ErrInvalidCredentials {
			return common.NewAppError(http.StatusUnauthorized, err.Error(), nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "could not log in", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "login successful",
		"token":   token,
		"user":    user,
	})
	return nil
}

// Me godoc
// @Summary      Get the authenticated user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  common.AppError
// @Failure      404  {object}  common.AppError "User record no longer exists"
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "invalid user ID in token", nil)
	}

	user, err := h.service.GetCurrentUser(r.Context(), userID)
	if err != nil {
		if err == service.ErrUserNotFound {
			return common.NewAppError(http.StatusNotFound, err.Error(), nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "could not retrieve user", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{"user": user})
	return nil
}
