package participant_test

import (
	"errors"
	"log/slog"
	"os"
	"testing"

	"contestboard/pkg/participant"
	"contestboard/pkg/spreadsheet"
	"contestboard/pkg/upload"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockLocator struct {
	mock.Mock
}

func (m *mockLocator) CurrentPath(category upload.Category) (string, bool) {
	args := m.Called(category)
	return args.String(0), args.Bool(1)
}

type mockReader struct {
	mock.Mock
}

func (m *mockReader) Rows(path string) ([]spreadsheet.Row, error) {
	args := m.Called(path)
	if rows := args.Get(0); rows != nil {
		return rows.([]spreadsheet.Row), args.Error(1)
	}
	return nil, args.Error(1)
}

func newService(locator *mockLocator, reader *mockReader) *participant.Service {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{}))
	return participant.NewService(locator, reader, logger)
}

func TestService_List(t *testing.T) {
	t.Run("maps rows in file order", func(t *testing.T) {
		locator := new(mockLocator)
		reader := new(mockReader)

		locator.On("CurrentPath", upload.Registered).Return("uploads/registered.xlsx", true)
		reader.On("Rows", "uploads/registered.xlsx").Return([]spreadsheet.Row{
			{"Name": "A", "Roll No": "1", "Year": "2", "Section": "CS"},
			{"Name": "B"},
		}, nil)

		records := newService(locator, reader).List(upload.Registered)

		assert.Equal(t, []participant.Record{
			{Name: "A", RollNo: "1", Year: "2", Section: "CS"},
			{Name: "B", RollNo: "N/A", Year: "N/A", Section: "N/A"},
		}, records)
	})

	t.Run("no upload yet", func(t *testing.T) {
		locator := new(mockLocator)
		reader := new(mockReader)

		locator.On("CurrentPath", upload.Winners).Return("", false)

		records := newService(locator, reader).List(upload.Winners)

		assert.NotNil(t, records)
		assert.Empty(t, records)
		reader.AssertNotCalled(t, "Rows")
	})

	t.Run("read error degrades to empty list", func(t *testing.T) {
		locator := new(mockLocator)
		reader := new(mockReader)

		locator.On("CurrentPath", upload.Round1).Return("uploads/round1.xlsx", true)
		reader.On("Rows", "uploads/round1.xlsx").Return(nil, errors.New("corrupt workbook"))

		records := newService(locator, reader).List(upload.Round1)

		assert.NotNil(t, records)
		assert.Empty(t, records)
	})
}

func TestService_Count(t *testing.T) {
	locator := new(mockLocator)
	reader := new(mockReader)
	svc := newService(locator, reader)

	reader.On("Rows", "uploads/registered.xlsx").Return([]spreadsheet.Row{
		{"Name": "A"}, {"Name": "B"}, {"Name": "C"},
	}, nil)

	count, err := svc.Count("uploads/registered.xlsx")
	assert.NoError(t, err)
	assert.Equal(t, 3, count)

	reader.On("Rows", "uploads/broken.xlsx").Return(nil, errors.New("corrupt workbook"))

	_, err = svc.Count("uploads/broken.xlsx")
	assert.Error(t, err)
}

func TestFromRow_Defaults(t *testing.T) {
	record := participant.FromRow(spreadsheet.Row{"Roll No": "7", "Section": ""})

	assert.Equal(t, participant.Record{
		Name:    participant.NotAvailable,
		RollNo:  "7",
		Year:    participant.NotAvailable,
		Section: participant.NotAvailable,
	}, record)
}
