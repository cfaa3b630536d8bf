package http

import (
	"net/http"

	"github.com/proyectocucea9-hash/proyectocucea/internal/domain"
	"github.com/proyectocucea9-hash/proyectocucea/internal/dto"
)

type voteHandler struct {
	svcs Services
}

func (h *voteHandler) cast(w http.ResponseWriter, r *http.Request) {
	id, ok := itemIDFromRequest(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid item id"})
		return
	}
	var req dto.CastVoteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid json"})
		return
	}
	acc := accountFromContext(r.Context())
	counts, err := h.svcs.Votes.Cast(r.Context(), acc.ID, id, domain.VoteType(req.Type))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, counts)
}

func (h *voteHandler) current(w http.ResponseWriter, r *http.Request) {
	id, ok := itemIDFromRequest(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid item id"})
		return
	}
	acc := accountFromContext(r.Context())
	t, err := h.svcs.Votes.Current(r.Context(), acc.ID, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.CurrentVoteResponse{Type: string(t)})
}
