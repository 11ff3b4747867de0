package sheets

import (
	"context"
	"fmt"
	"sync"

	"github.com/hahaha-network/revsync/internal/common"
	"github.com/hahaha-network/revsync/internal/model"
	"github.com/hahaha-network/revsync/internal/service"
	"github.com/shopspring/decimal"
)

// MockWriter is a mock implementation of SheetWriter for testing. It keeps
// the written cells in memory, keyed by (header, month).
type MockWriter struct {
	// Headers simulates the sheet's header row; writes to other headers
	// fail with ErrColumnNotFound.
	Headers []string
	// MonthRows simulates the populated month rows; writes to other
	// months fail with ErrRowNotFound.
	MonthRows []model.Month

	// WriteErr, when set, is returned by every WriteValue call.
	WriteErr error
	// LoadErr, when set, is returned by Load.
	LoadErr error

	Cells          map[string]decimal.Decimal
	WriteCallCount int
	EnsuredMonths  []model.Month
	mu             sync.Mutex
}

var _ service.SheetWriter = (*MockWriter)(nil)

// NewMockWriter creates a new mock writer.
func NewMockWriter(headers []string, months []model.Month) *MockWriter {
	return &MockWriter{
		Headers:   headers,
		MonthRows: months,
		Cells:     make(map[string]decimal.Decimal),
	}
}

// CellKey is the map key for a written cell.
func CellKey(header string, month model.Month) string {
	return fmt.Sprintf("%s|%s", header, month)
}

// Load implements the SheetWriter interface.
func (m *MockWriter) Load(_ context.Context) error {
	return m.LoadErr
}

// EnsureMonthRows implements the SheetWriter interface.
func (m *MockWriter) EnsureMonthRows(_ context.Context, months []model.Month) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, month := range months {
		if !m.hasMonth(month) {
			m.MonthRows = append(m.MonthRows, month)
			m.EnsuredMonths = append(m.EnsuredMonths, month)
		}
	}
	return nil
}

// MissingHeaders implements the SheetWriter interface.
func (m *MockWriter) MissingHeaders(headers []string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	var missing []string
	for _, h := range headers {
		if !m.hasHeader(h) {
			missing = append(missing, h)
		}
	}
	return missing
}

// WriteValue implements the SheetWriter interface.
func (m *MockWriter) WriteValue(_ context.Context, header string, month model.Month, amount decimal.Decimal) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.WriteErr != nil {
		return m.WriteErr
	}
	if !m.hasHeader(header) {
		return fmt.Errorf("%w: no header %q", common.ErrColumnNotFound, header)
	}
	if !m.hasMonth(month) {
		return fmt.Errorf("%w: no row for month %s", common.ErrRowNotFound, month)
	}

	m.WriteCallCount++
	m.Cells[CellKey(header, month)] = amount
	return nil
}

// Value returns the cell value written for (header, month), if any.
func (m *MockWriter) Value(header string, month model.Month) (decimal.Decimal, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.Cells[CellKey(header, month)]
	return v, ok
}

func (m *MockWriter) hasHeader(header string) bool {
	for _, h := range m.Headers {
		if h == header {
			return true
		}
	}
	return false
}

func (m *MockWriter) hasMonth(month model.Month) bool {
	for _, existing := range m.MonthRows {
		if existing == month {
			return true
		}
	}
	return false
}
