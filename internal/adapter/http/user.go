package httpadapter

import (
	"net/http"

	"stormy/internal/core/domain"
	"stormy/internal/core/port"
)

type registerRequest struct {
	Email    looseString `json:"email"`
	Password looseString `json:"password"`
	FullName looseString `json:"fullName"`
	Company  looseString `json:"company"`
}

type registerResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

// handleRegister creates an account. A duplicate email results in HTTP 400.
func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	u, err := h.svc.Users.Register(r.Context(), port.RegisterReq{
		Email:    string(req.Email),
		Password: string(req.Password),
		FullName: string(req.FullName),
		Company:  string(req.Company),
	})
	if err != nil {
		h.writeDomainError(w, r, "register", err)
		return
	}
	h.writeJSON(w, http.StatusOK, registerResponse{Message: "User registered successfully", User: u})
}
