package sheets

import (
	"log/slog"
	"testing"
	"time"

	"github.com/hahaha-network/revsync/internal/common"
	"github.com/hahaha-network/revsync/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func indexedWriter() *Writer {
	march := model.Month{Year: 2024, Month: time.March}
	april := model.Month{Year: 2024, Month: time.April}

	return &Writer{
		logger: slog.Default(),
		config: Config{WorksheetName: "Revenue"},
		headerCols: map[string]int64{
			"HaHaHa Channels":    2,
			"HaHaHa Channels US": 3,
		},
		monthRows: map[model.Month]int64{
			march: 2,
			april: 3,
		},
		loaded: true,
	}
}

func TestWriter_Resolve(t *testing.T) {
	w := indexedWriter()
	march := model.Month{Year: 2024, Month: time.March}

	row, col, err := w.resolve("HaHaHa Channels US", march)
	require.NoError(t, err)
	assert.Equal(t, int64(2), row)
	assert.Equal(t, int64(3), col)
}

func TestWriter_Resolve_MissingColumn(t *testing.T) {
	w := indexedWriter()
	march := model.Month{Year: 2024, Month: time.March}

	_, _, err := w.resolve("Unknown Group", march)
	assert.ErrorIs(t, err, common.ErrColumnNotFound)
	assert.Contains(t, err.Error(), "Unknown Group")
}

func TestWriter_Resolve_MissingRow(t *testing.T) {
	w := indexedWriter()
	june := model.Month{Year: 2024, Month: time.June}

	_, _, err := w.resolve("HaHaHa Channels", june)
	assert.ErrorIs(t, err, common.ErrRowNotFound)
	assert.Contains(t, err.Error(), "2024-06")
}

func TestWriter_Resolve_NotLoaded(t *testing.T) {
	w := &Writer{config: Config{WorksheetName: "Revenue"}}

	_, _, err := w.resolve("HaHaHa Channels", model.Month{Year: 2024, Month: time.March})
	assert.Error(t, err)
}

func TestWriter_MissingHeaders(t *testing.T) {
	w := indexedWriter()

	missing := w.MissingHeaders([]string{"HaHaHa Channels", "HaHaHa Art Tracks", "HaHaHa Channels US", "HaHaHa Art Tracks US"})
	assert.Equal(t, []string{"HaHaHa Art Tracks", "HaHaHa Art Tracks US"}, missing)

	assert.Nil(t, w.MissingHeaders([]string{"HaHaHa Channels"}))
}

func TestColumnLetter(t *testing.T) {
	tests := []struct {
		want string
		col  int64
	}{
		{col: 1, want: "A"},
		{col: 2, want: "B"},
		{col: 26, want: "Z"},
		{col: 27, want: "AA"},
		{col: 52, want: "AZ"},
		{col: 53, want: "BA"},
		{col: 702, want: "ZZ"},
		{col: 703, want: "AAA"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, columnLetter(tt.col), "column %d", tt.col)
	}
}
