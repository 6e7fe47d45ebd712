package user

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gesteasy/GestEasy/internal/auth"
)

type Handler struct {
	userService Service
	jwtManager  auth.JWTManagerInterface
}

func NewHandler(userService Service, jwtManager auth.JWTManagerInterface) *Handler {
	return &Handler{
		userService: userService,
		jwtManager:  jwtManager,
	}
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		log.Printf("JSON encoding error: %v", err)
		return
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	})
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	registered, err := h.userService.Register(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			respondError(w, http.StatusConflict, err.Error())
			return
		} else if errors.Is(err, ErrInvalidEmail) || errors.Is(err, ErrNameRequired) ||
			errors.Is(err, ErrNameTooLong) || errors.Is(err, ErrPasswordTooShort) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "Could not register user")
		return
	}

	token, err := h.jwtManager.GenerateAccessJWT(registered.ID, auth.DefaultJWTDuration)
	if err != nil {
		log.Printf("Error generating access token: %v", err)
		respondError(w, http.StatusInternalServerError, "Could not register user")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status": "success",
		"data": map[string]interface{}{
			"token": token,
			"user":  registered,
		},
	})
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	loggedIn, err := h.userService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, err.Error())
			return
		} else if errors.Is(err, ErrUserInactive) {
			respondError(w, http.StatusForbidden, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "Could not log in")
		return
	}

	token, err := h.jwtManager.GenerateAccessJWT(loggedIn.ID, auth.DefaultJWTDuration)
	if err != nil {
		log.Printf("Error generating access token: %v", err)
		respondError(w, http.StatusInternalServerError, "Could not log in")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data": map[string]interface{}{
			"token": token,
			"user":  loggedIn,
		},
	})
}
