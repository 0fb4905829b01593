package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"contestboard/pkg/upload"

	"github.com/gorilla/mux"
)

// Storer is the slice of the upload store the handler needs.
type Storer interface {
	Store(category upload.Category, src io.Reader) (string, error)
}

// RowCounter reports the data-row count of a stored file, used purely
// as upload confirmation.
type RowCounter interface {
	Count(path string) (int, error)
}

type UploadHandler struct {
	Store   Storer
	Counter RowCounter
	Logger  *slog.Logger
}

func NewUploadHandler(store Storer, counter RowCounter, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{
		Store:   store,
		Counter: counter,
		Logger:  logger,
	}
}

// Upload persists the file from the category's form field and answers
// with the number of data rows found. Session checking happens in
// middleware before this handler runs.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	category, err := upload.ParseCategory(vars[muxVarCategory])
	if err != nil {
		writeError(w, http.StatusBadRequest, "unknown upload category")
		return
	}

	file, _, err := r.FormFile(category.FileField())
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file was uploaded.")
		return
	}
	defer file.Close()

	path, err := h.Store.Store(category, file)
	if err != nil {
		h.Logger.Error("store upload", "category", string(category), "error", err)
		writeError(w, http.StatusInternalServerError, msgGenericError)
		return
	}

	count, err := h.Counter.Count(path)
	if err != nil {
		h.Logger.Error("count upload", "category", string(category), "path", path, "error", err)
		writeError(w, http.StatusInternalServerError, msgGenericError)
		return
	}

	if ok := writeJSON(w, h.Logger, map[string]any{"success": true, "count": count}); ok {
		h.Logger.Info("upload stored", "category", string(category), "count", count)
	}
}
