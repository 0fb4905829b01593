package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"contestboard/pkg/admin"
)

type LoginForm struct {
	Password string `json:"password"`
}

type AdminHandler struct {
	Service admin.ServiceInterface
	Logger  *slog.Logger
}

func NewAdminHandler(service admin.ServiceInterface, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		Service: service,
		Logger:  logger,
	}
}

func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginForm
	if ok := DecodeJSONBody(w, r, &req); !ok {
		return
	}

	token, err := h.Service.Login(req.Password)
	if err != nil {
		if errors.Is(err, admin.ErrInvalidPassword) {
			writeError(w, http.StatusUnauthorized, "Invalid password")
			return
		}
		h.Logger.Error("login", "error", err)
		writeError(w, http.StatusInternalServerError, "An error occurred while logging in.")
		return
	}

	if ok := writeJSON(w, h.Logger, map[string]any{"success": true, "sessionId": token}); ok {
		h.Logger.Info("admin login")
	}
}

// Logout always reports success, whether or not the token was known.
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get(headerSessionID)

	if err := h.Service.Logout(token); err != nil {
		h.Logger.Error("logout", "error", err)
	}

	writeJSON(w, h.Logger, map[string]any{"success": true})
}
