package handlers

import (
	"errors"
	"log"
	"net/http"

	"founditBack/internal/models"
	"founditBack/internal/services"
)

type UserHandler struct {
	Service *services.UserService
}

func (h *UserHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := decodeJSON(r, &req); err != nil {
		failCRUD(w, err)
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Name, Email and Password are required")
		return
	}

	user, err := h.Service.SignUp(r.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateEmail) {
			respondError(w, http.StatusConflict, "Email already registered")
			return
		}
		log.Printf("SignUp error: %v", err)
		failCRUD(w, err)
		return
	}
	respond(w, http.StatusCreated, "User registered", envelope{"user": user})
}

func (h *UserHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := decodeJSON(r, &req); err != nil {
		failCRUD(w, err)
		return
	}

	tokens, user, err := h.Service.SignIn(r.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) || errors.Is(err, models.ErrUserNotFound) {
			respondError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		log.Printf("SignIn error: %v", err)
		failCRUD(w, err)
		return
	}
	respond(w, http.StatusOK, "Signed in", envelope{"tokens": tokens, "user": user})
}

func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	user, err := h.Service.GetUserByID(r.Context(), userID)
	if err != nil {
		log.Printf("GetProfile error: %v", err)
		failCRUD(w, err)
		return
	}
	respond(w, http.StatusOK, "Profile fetched", envelope{"user": user})
}

func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.GetUsers(r.Context())
	if err != nil {
		log.Printf("GetUsers error: %v", err)
		failCRUD(w, err)
		return
	}
	respond(w, http.StatusOK, "Users fetched", envelope{"users": users})
}

func (h *UserHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseEntityID(getParam(r, "id"))
	if err != nil {
		failCRUD(w, err)
		return
	}
	user, err := h.Service.GetUserByID(r.Context(), id)
	if err != nil {
		log.Printf("GetUserByID error: %v", err)
		failCRUD(w, err)
		return
	}
	respond(w, http.StatusOK, "User fetched", envelope{"user": user})
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var user models.User
	if err := decodeJSON(r, &user); err != nil {
		failCRUD(w, err)
		return
	}
	user.ID = userID

	updated, err := h.Service.UpdateUser(r.Context(), user)
	if err != nil {
		log.Printf("UpdateUser error: %v", err)
		failCRUD(w, err)
		return
	}
	respond(w, http.StatusOK, "User updated", envelope{"user": updated})
}

func (h *UserHandler) LogOut(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if err := h.Service.LogOut(r.Context(), userID); err != nil {
		log.Printf("LogOut error: %v", err)
		failCRUD(w, err)
		return
	}
	respond(w, http.StatusOK, "Logged out", nil)
}
