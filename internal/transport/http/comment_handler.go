package http

import (
	"net/http"

	"github.com/proyectocucea9-hash/proyectocucea/internal/dto"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type commentHandler struct {
	svcs Services
}

func (h *commentHandler) list(w http.ResponseWriter, r *http.Request) {
	id, ok := itemIDFromRequest(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid item id"})
		return
	}
	comments, err := h.svcs.Comments.ListByItem(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, comments)
}

func (h *commentHandler) create(w http.ResponseWriter, r *http.Request) {
	id, ok := itemIDFromRequest(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid item id"})
		return
	}
	var in dto.CommentInput
	if err := decodeJSON(r, &in); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid json"})
		return
	}
	comment, err := h.svcs.Comments.Create(r.Context(), id, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, comment)
}

func (h *commentHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid comment id"})
		return
	}
	if err := h.svcs.Comments.Delete(r.Context(), accountFromContext(r.Context()), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
