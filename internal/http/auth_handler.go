package httpapi

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/auth"
)

type AuthHandler struct {
	svc    *auth.Service
	logger *log.Logger
}

func NewAuthHandler(svc *auth.Service, logger *log.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, logger: logger}
}

// Login accepts any credentials and returns a fabricated session.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.svc.Login(req)
	if err != nil {
		h.logger.Printf("login: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to create session")
		return
	}

	writeJSON(w, http.StatusOK, session)
}
