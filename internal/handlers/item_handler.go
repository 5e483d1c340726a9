package handlers

import (
	"log"
	"net/http"
	"strconv"

	"founditBack/internal/models"
	"founditBack/internal/services"
)

type ItemHandler struct {
	Service *services.ItemService
}

func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	reporter, ok := sessionUserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req models.ItemRequest
	if err := decodeJSON(r, &req); err != nil {
		failCRUD(w, err)
		return
	}

	item, err := h.Service.ReportItem(r.Context(), req, reporter)
	if err != nil {
		log.Printf("CreateItem error: %v", err)
		failCRUD(w, err)
		return
	}
	respond(w, http.StatusCreated, "Item reported", envelope{"item": item})
}

func (h *ItemHandler) GetItemByID(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseEntityID(getParam(r, "id"))
	if err != nil {
		failCRUD(w, err)
		return
	}
	item, err := h.Service.GetItemByID(r.Context(), id)
	if err != nil {
		log.Printf("GetItemByID error: %v", err)
		failCRUD(w, err)
		return
	}
	respond(w, http.StatusOK, "Item fetched", envelope{"item": item})
}

func (h *ItemHandler) GetItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.GetItems(r.Context())
	if err != nil {
		log.Printf("GetItems error: %v", err)
		failCRUD(w, err)
		return
	}
	respond(w, http.StatusOK, "Items fetched", envelope{"items": items})
}

// SearchItems serves the paginated browser. Query params: q (search text),
// page and limit; all optional.
func (h *ItemHandler) SearchItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	search := q.Get("q")
	if search == "" {
		search = q.Get("search")
	}
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	result, err := h.Service.SearchItems(r.Context(), search, page, limit)
	if err != nil {
		log.Printf("SearchItems error: %v", err)
		failCRUD(w, err)
		return
	}
	respond(w, http.StatusOK, "Items fetched", envelope{
		"items":      result.Items,
		"totalItems": result.TotalItems,
		"totalPages": result.TotalPages,
		"page":       result.Page,
		"limit":      result.Limit,
	})
}

func (h *ItemHandler) GetItemsByCategory(w http.ResponseWriter, r *http.Request) {
	groups, err := h.Service.GetItemsByCategory(r.Context())
	if err != nil {
		log.Printf("GetItemsByCategory error: %v", err)
		failCRUD(w, err)
		return
	}
	respond(w, http.StatusOK, "Items fetched", envelope{"categories": groups})
}

func (h *ItemHandler) GetItemsOfCategory(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseEntityID(getParam(r, "id"))
	if err != nil {
		failCRUD(w, err)
		return
	}
	group, err := h.Service.GetItemsOfCategory(r.Context(), id)
	if err != nil {
		log.Printf("GetItemsOfCategory error: %v", err)
		failCRUD(w, err)
		return
	}
	respond(w, http.StatusOK, "Items fetched", envelope{
		"categoryDetails": group.Category,
		"items":           group.Items,
		"totalItems":      group.TotalItems,
	})
}

func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseEntityID(getParam(r, "id"))
	if err != nil {
		failCRUD(w, err)
		return
	}
	var req models.ItemRequest
	if err := decodeJSON(r, &req); err != nil {
		failCRUD(w, err)
		return
	}
	item, err := h.Service.UpdateItem(r.Context(), id, req)
	if err != nil {
		log.Printf("UpdateItem error: %v", err)
		failCRUD(w, err)
		return
	}
	respond(w, http.StatusOK, "Item updated", envelope{"item": item})
}

func (h *ItemHandler) UpdateItemStatus(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseEntityID(getParam(r, "id"))
	if err != nil {
		failCRUD(w, err)
		return
	}
	var req models.ItemStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		failCRUD(w, err)
		return
	}
	item, err := h.Service.UpdateStatus(r.Context(), id, req)
	if err != nil {
		log.Printf("UpdateItemStatus error: %v", err)
		failCRUD(w, err)
		return
	}
	respond(w, http.StatusOK, "Item status updated", envelope{"item": item})
}

func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseEntityID(getParam(r, "id"))
	if err != nil {
		failCRUD(w, err)
		return
	}
	if err := h.Service.DeleteItem(r.Context(), id); err != nil {
		log.Printf("DeleteItem error: %v", err)
		failCRUD(w, err)
		return
	}
	respond(w, http.StatusOK, "Item deleted", nil)
}
