package http

import (
	"net/http"

	"github.com/proyectocucea9-hash/proyectocucea/internal/dto"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type contentHandler struct {
	svcs Services
}

func (h *contentHandler) listSlides(w http.ResponseWriter, r *http.Request) {
	slides, err := h.svcs.Content.ListSlides(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, slides)
}

func (h *contentHandler) createSlide(w http.ResponseWriter, r *http.Request) {
	var in dto.SlideInput
	if err := decodeJSON(r, &in); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid json"})
		return
	}
	slide, err := h.svcs.Content.CreateSlide(r.Context(), accountFromContext(r.Context()), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, slide)
}

func (h *contentHandler) updateSlide(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid slide id"})
		return
	}
	var in dto.SlideInput
	if err := decodeJSON(r, &in); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid json"})
		return
	}
	slide, err := h.svcs.Content.UpdateSlide(r.Context(), accountFromContext(r.Context()), id, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, slide)
}

func (h *contentHandler) deleteSlide(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid slide id"})
		return
	}
	if err := h.svcs.Content.DeleteSlide(r.Context(), accountFromContext(r.Context()), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *contentHandler) getContent(w http.ResponseWriter, r *http.Request) {
	content, err := h.svcs.Content.GetContent(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, content)
}

func (h *contentHandler) setContent(w http.ResponseWriter, r *http.Request) {
	var in dto.ContentInput
	if err := decodeJSON(r, &in); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid json"})
		return
	}
	content, err := h.svcs.Content.SetContent(r.Context(), accountFromContext(r.Context()), chi.URLParam(r, "key"), in.Value)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, content)
}
