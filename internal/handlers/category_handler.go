package handlers

import (
	"log"
	"net/http"

	"founditBack/internal/models"
	"founditBack/internal/services"
)

type CategoryHandler struct {
	Service *services.CategoryService
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var category models.Category
	if err := decodeJSON(r, &category); err != nil {
		failCRUD(w, err)
		return
	}
	created, err := h.Service.CreateCategory(r.Context(), category)
	if err != nil {
		log.Printf("CreateCategory error: %v", err)
		failCRUD(w, err)
		return
	}
	respond(w, http.StatusCreated, "Category created", envelope{"category": created})
}

func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Service.GetCategories(r.Context())
	if err != nil {
		log.Printf("GetCategories error: %v", err)
		failCRUD(w, err)
		return
	}
	respond(w, http.StatusOK, "Categories fetched", envelope{"categories": categories})
}

func (h *CategoryHandler) GetCategoryByID(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseEntityID(getParam(r, "id"))
	if err != nil {
		failCRUD(w, err)
		return
	}
	category, err := h.Service.GetCategoryByID(r.Context(), id)
	if err != nil {
		log.Printf("GetCategoryByID error: %v", err)
		failCRUD(w, err)
		return
	}
	respond(w, http.StatusOK, "Category fetched", envelope{"category": category})
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseEntityID(getParam(r, "id"))
	if err != nil {
		failCRUD(w, err)
		return
	}
	var category models.Category
	if err := decodeJSON(r, &category); err != nil {
		failCRUD(w, err)
		return
	}
	category.ID = id
	updated, err := h.Service.UpdateCategory(r.Context(), category)
	if err != nil {
		log.Printf("UpdateCategory error: %v", err)
		failCRUD(w, err)
		return
	}
	respond(w, http.StatusOK, "Category updated", envelope{"category": updated})
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseEntityID(getParam(r, "id"))
	if err != nil {
		failCRUD(w, err)
		return
	}
	if err := h.Service.DeleteCategory(r.Context(), id); err != nil {
		log.Printf("DeleteCategory error: %v", err)
		failCRUD(w, err)
		return
	}
	respond(w, http.StatusOK, "Category deleted", nil)
}
