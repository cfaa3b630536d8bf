package http

import (
	"log/slog"
	"net/http"

	"github.com/proyectocucea9-hash/proyectocucea/internal/dto"
)

type authHandler struct {
	svcs       Services
	trustProxy bool
}

func (h *authHandler) register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid json"})
		return
	}
	res, err := h.svcs.Registration.Submit(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	slog.Info("registration accepted", "email", res.Email, "client_ip", clientIP(r, h.trustProxy))
	writeJSON(w, http.StatusAccepted, res)
}

func (h *authHandler) verify(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid json"})
		return
	}
	acc, err := h.svcs.Registration.Verify(r.Context(), req.Email, req.Code)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.VerifyResponse{
		AccountID: acc.ID.String(),
		Email:     acc.Email,
		Name:      acc.Name,
	})
}

func (h *authHandler) login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid json"})
		return
	}
	res, err := h.svcs.Auth.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	slog.Info("login", "email", req.Email, "client_ip", clientIP(r, h.trustProxy))
	writeJSON(w, http.StatusOK, res)
}
