package participant

import (
	"log/slog"

	"contestboard/pkg/spreadsheet"
	"contestboard/pkg/upload"
)

type ServiceInterface interface {
	List(category upload.Category) []Record
	Count(path string) (int, error)
}

// Locator resolves the current spreadsheet file for a category.
type Locator interface {
	CurrentPath(category upload.Category) (string, bool)
}

// Service turns the current file of a category into Records. It owns
// no state of its own.
type Service struct {
	Store  Locator
	Reader spreadsheet.Reader
	Logger *slog.Logger
}

func NewService(store Locator, reader spreadsheet.Reader, logger *slog.Logger) *Service {
	return &Service{Store: store, Reader: reader, Logger: logger}
}

// List returns one Record per data row of the category's current file,
// in file order. A missing or unreadable file degrades to an empty
// list; read failures are logged, never surfaced to the caller.
func (s *Service) List(category upload.Category) []Record {
	records := make([]Record, 0)

	path, ok := s.Store.CurrentPath(category)
	if !ok {
		return records
	}

	rows, err := s.Reader.Rows(path)
	if err != nil {
		s.Logger.Error("failed to read spreadsheet",
			"category", string(category), "path", path, "error", err)
		return records
	}

	for _, row := range rows {
		records = append(records, FromRow(row))
	}
	return records
}

// Count reports how many data rows a freshly stored upload contains.
// Used for upload confirmation only.
func (s *Service) Count(path string) (int, error) {
	rows, err := s.Reader.Rows(path)
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}
