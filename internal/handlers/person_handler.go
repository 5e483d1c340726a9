package handlers

import (
	"log"
	"net/http"
	"strconv"

	"founditBack/internal/models"
	"founditBack/internal/services"
)

type PersonHandler struct {
	Service *services.PersonService
}

func (h *PersonHandler) CreatePerson(w http.ResponseWriter, r *http.Request) {
	reporter, ok := sessionUserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req models.PersonRequest
	if err := decodeJSON(r, &req); err != nil {
		failCRUD(w, err)
		return
	}

	person, err := h.Service.ReportPerson(r.Context(), req, reporter)
	if err != nil {
		log.Printf("CreatePerson error: %v", err)
		failCRUD(w, err)
		return
	}
	respond(w, http.StatusCreated, "Person reported", envelope{"person": person})
}

func (h *PersonHandler) GetPersonByID(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseEntityID(getParam(r, "id"))
	if err != nil {
		failCRUD(w, err)
		return
	}
	person, err := h.Service.GetPersonByID(r.Context(), id)
	if err != nil {
		log.Printf("GetPersonByID error: %v", err)
		failCRUD(w, err)
		return
	}
	respond(w, http.StatusOK, "Person fetched", envelope{"person": person})
}

// CreateFoundPerson records a person who was found before anyone reported
// them missing. Same shape as CreatePerson with the status forced.
func (h *PersonHandler) CreateFoundPerson(w http.ResponseWriter, r *http.Request) {
	reporter, ok := sessionUserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req models.PersonRequest
	if err := decodeJSON(r, &req); err != nil {
		failCRUD(w, err)
		return
	}
	req.Status = models.StatusFound

	person, err := h.Service.ReportPerson(r.Context(), req, reporter)
	if err != nil {
		log.Printf("CreateFoundPerson error: %v", err)
		failCRUD(w, err)
		return
	}
	respond(w, http.StatusCreated, "Person reported", envelope{"person": person})
}

func (h *PersonHandler) SearchPersons(w http.ResponseWriter, r *http.Request) {
	persons, err := h.Service.SearchPersons(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		log.Printf("SearchPersons error: %v", err)
		failCRUD(w, err)
		return
	}
	respond(w, http.StatusOK, "Persons fetched", envelope{"persons": persons})
}

func (h *PersonHandler) GetPersons(w http.ResponseWriter, r *http.Request) {
	persons, err := h.Service.GetPersons(r.Context())
	if err != nil {
		log.Printf("GetPersons error: %v", err)
		failCRUD(w, err)
		return
	}
	respond(w, http.StatusOK, "Persons fetched", envelope{"persons": persons})
}

func (h *PersonHandler) GetMyPersons(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	persons, err := h.Service.GetPersonsByUser(r.Context(), userID)
	if err != nil {
		log.Printf("GetMyPersons error: %v", err)
		failCRUD(w, err)
		return
	}
	respond(w, http.StatusOK, "Persons fetched", envelope{"persons": persons})
}

// GetNearby answers radius queries against the last-seen geo index.
// Query params: lon, lat (required), radius in meters and limit (optional).
func (h *PersonHandler) GetNearby(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lon, lonErr := strconv.ParseFloat(q.Get("lon"), 64)
	lat, latErr := strconv.ParseFloat(q.Get("lat"), 64)
	if lonErr != nil || latErr != nil {
		respondError(w, http.StatusBadRequest, "lon and lat are required")
		return
	}
	radius, err := strconv.ParseFloat(q.Get("radius"), 64)
	if err != nil || radius <= 0 {
		radius = 5000
	}
	limit, _ := strconv.Atoi(q.Get("limit"))

	persons, err := h.Service.Nearby(r.Context(), lon, lat, radius, limit)
	if err != nil {
		log.Printf("GetNearby error: %v", err)
		failCRUD(w, err)
		return
	}
	respond(w, http.StatusOK, "Persons fetched", envelope{"persons": persons})
}

func (h *PersonHandler) UpdatePersonStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := models.ParseEntityID(getParam(r, "id"))
	if err != nil {
		failCRUD(w, err)
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := decodeJSON(r, &req); err != nil {
		failCRUD(w, err)
		return
	}

	person, err := h.Service.UpdateStatus(r.Context(), id, req.Status, userID)
	if err != nil {
		log.Printf("UpdatePersonStatus error: %v", err)
		failCRUD(w, err)
		return
	}
	respond(w, http.StatusOK, "Person status updated", envelope{"person": person})
}

// DeletePerson is allowed for the original reporter or an admin.
func (h *PersonHandler) DeletePerson(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := models.ParseEntityID(getParam(r, "id"))
	if err != nil {
		failCRUD(w, err)
		return
	}

	if sessionRole(r) != models.RoleAdmin {
		person, err := h.Service.GetPersonByID(r.Context(), id)
		if err != nil {
			log.Printf("DeletePerson error: %v", err)
			failCRUD(w, err)
			return
		}
		if person.ReportedBy != userID {
			respondError(w, http.StatusForbidden, "Forbidden")
			return
		}
	}

	if err := h.Service.DeletePerson(r.Context(), id); err != nil {
		log.Printf("DeletePerson error: %v", err)
		failCRUD(w, err)
		return
	}
	respond(w, http.StatusOK, "Person deleted", nil)
}
