package http

import (
	"net/http"
	"strconv"

	"github.com/proyectocucea9-hash/proyectocucea/internal/domain"
	"github.com/proyectocucea9-hash/proyectocucea/internal/dto"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type itemHandler struct {
	svcs Services
}

func itemIDFromRequest(r *http.Request) (domain.ItemID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	return id, err == nil
}

func (h *itemHandler) list(w http.ResponseWriter, r *http.Request) {
	var filter dto.ItemFilter
	if c := r.URL.Query().Get("category"); c != "" {
		filter.Category = &c
	}
	// A malformed year is ignored, not rejected.
	if y := r.URL.Query().Get("year"); y != "" {
		if year, err := strconv.Atoi(y); err == nil {
			filter.Year = &year
		}
	}
	items, err := h.svcs.Catalog.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *itemHandler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := itemIDFromRequest(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid item id"})
		return
	}
	item, err := h.svcs.Catalog.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *itemHandler) create(w http.ResponseWriter, r *http.Request) {
	var in dto.ItemInput
	if err := decodeJSON(r, &in); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid json"})
		return
	}
	item, err := h.svcs.Catalog.Create(r.Context(), accountFromContext(r.Context()), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *itemHandler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := itemIDFromRequest(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid item id"})
		return
	}
	var in dto.ItemInput
	if err := decodeJSON(r, &in); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid json"})
		return
	}
	item, err := h.svcs.Catalog.Update(r.Context(), accountFromContext(r.Context()), id, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *itemHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := itemIDFromRequest(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid item id"})
		return
	}
	if err := h.svcs.Catalog.Delete(r.Context(), accountFromContext(r.Context()), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
