package handlers

import (
	"log/slog"
	"net/http"

	"contestboard/pkg/participant"
	"contestboard/pkg/upload"

	"github.com/gorilla/mux"
)

type ParticipantHandler struct {
	Service participant.ServiceInterface
	Logger  *slog.Logger
}

func NewParticipantHandler(service participant.ServiceInterface, logger *slog.Logger) *ParticipantHandler {
	return &ParticipantHandler{
		Service: service,
		Logger:  logger,
	}
}

// List answers with the category's current records. Always 200; an
// unknown category or missing data yields an empty array.
func (h *ParticipantHandler) List(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	category, err := upload.ParseCategory(vars[muxVarCategory])
	if err != nil {
		// the route pattern keeps this unreachable
		writeJSON(w, h.Logger, []participant.Record{})
		return
	}

	writeJSON(w, h.Logger, h.Service.List(category))
}
