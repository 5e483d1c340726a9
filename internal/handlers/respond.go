package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"founditBack/internal/models"
)

// envelope is the response body shape every endpoint emits. Payload keys are
// spread next to success and message rather than nested under a data field.
type envelope map[string]any

func respond(w http.ResponseWriter, status int, message string, data envelope) {
	body := envelope{
		"success": true,
		"message": message,
	}
	for k, v := range data {
		body[k] = v
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("response encode error: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope{
		"success": false,
		"message": message,
	}); err != nil {
		log.Printf("response encode error: %v", err)
	}
}

// failCRUD maps service errors to statuses for the plain CRUD endpoints:
// validation errors are 400, missing records 404, everything else a
// generic 500.
func failCRUD(w http.ResponseWriter, err error) {
	var ve *models.ValidationError
	switch {
	case errors.As(err, &ve):
		respondError(w, http.StatusBadRequest, ve.Error())
	case errors.Is(err, models.ErrItemNotFound):
		respondError(w, http.StatusNotFound, "Item not found")
	case errors.Is(err, models.ErrCategoryNotFound):
		respondError(w, http.StatusNotFound, "Category not found")
	case errors.Is(err, models.ErrPersonNotFound):
		respondError(w, http.StatusNotFound, "Person not found")
	case errors.Is(err, models.ErrUserNotFound):
		respondError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, models.ErrItemAlreadyReturned):
		respondError(w, http.StatusConflict, "Item has already been returned")
	default:
		log.Printf("internal error: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}

// sessionUserID pulls the authenticated user id out of the request context.
func sessionUserID(r *http.Request) (models.EntityID, bool) {
	id, ok := r.Context().Value("user_id").(int)
	if !ok || id <= 0 {
		return 0, false
	}
	return models.EntityID(id), true
}

func sessionRole(r *http.Request) string {
	role, _ := r.Context().Value("role").(string)
	return role
}

func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return models.NewValidationError("Invalid request body")
	}
	return nil
}
