package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"cuptrace/internal/core/port"
)

type brandOut struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// handleBrandCreate registers a brand account. The password is hashed before
// storage and never echoed back.
func (h *Handler) handleBrandCreate(w http.ResponseWriter, r *http.Request) {
	var req port.RegisterReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		http.Error(w, "name, email and password are required", http.StatusBadRequest)
		return
	}
	brand, err := h.brands.Register(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, brandOut{
		ID:        brand.ID,
		Name:      brand.Name,
		Email:     brand.Email,
		CreatedAt: brand.CreatedAt,
	})
}

// handleToken exchanges form credentials (username = email) for a bearer
// token, mirroring the password grant shape.
func (h *Handler) handleToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	email := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if email == "" || password == "" {
		http.Error(w, "username and password are required", http.StatusBadRequest)
		return
	}
	token, err := h.brands.Login(r.Context(), email, password)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{
		"access_token": token,
		"token_type":   "bearer",
	})
}
