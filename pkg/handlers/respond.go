package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

const (
	headerSessionID = "X-Session-Id"
	muxVarCategory  = "category"

	msgGenericError = "An error occurred while processing the file."
)

func writeJSON(w http.ResponseWriter, logger *slog.Logger, data any) bool {
	resp, err := json.Marshal(data)
	if err != nil {
		logger.Error("Failed to serialize JSON response", "error", err)
		writeError(w, http.StatusInternalServerError, "failed json marshal")
		return false
	}

	w.Header().Set("Content-Type", "application/json")

	if _, err := w.Write(resp); err != nil {
		logger.Error("Failed to write response to client", "error", err)
		return false
	}
	return true
}

// writeError emits the {success:false, message} shape the front-end
// expects on every failure.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]any{"success": false, "message": msg}); err != nil {
		return
	}
}

func DecodeJSONBody(w http.ResponseWriter, r *http.Request, req any) bool {
	if r.Header.Get("Content-Type") != "application/json" {
		writeError(w, http.StatusBadRequest, "invalid Content-Type")
		return false
	}

	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return false
	}

	return true
}
