// Package tui provides the interactive month-range picker shown before a
// sync run when --interactive is set.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hahaha-network/revsync/internal/model"
)

// PickResult is the outcome of the picker.
type PickResult struct {
	From      model.Month
	To        model.Month
	Confirmed bool
}

// PickMonthRange runs the picker with the given defaults and blocks until
// the user confirms or cancels.
func PickMonthRange(defaultFrom, defaultTo model.Month) (PickResult, error) {
	m := newPicker(defaultFrom, defaultTo)
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return PickResult{}, fmt.Errorf("month picker: %w", err)
	}

	picker, ok := final.(pickerModel)
	if !ok {
		return PickResult{}, fmt.Errorf("month picker: unexpected model type %T", final)
	}

	return PickResult{From: picker.from, To: picker.to, Confirmed: picker.confirmed}, nil
}

const (
	fieldFrom = iota
	fieldTo
)

var (
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	activeStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ECDC4"))
	inactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#444444")).MarginTop(1)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E63946")).MarginBottom(1)
)

type pickerModel struct {
	from      model.Month
	to        model.Month
	field     int
	confirmed bool
}

func newPicker(from, to model.Month) pickerModel {
	if to.Before(from) {
		from, to = to, from
	}
	return pickerModel{from: from, to: to, field: fieldFrom}
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit

	case "enter":
		m.confirmed = true
		return m, tea.Quit

	case "tab", "left", "right", "h", "l":
		if m.field == fieldFrom {
			m.field = fieldTo
		} else {
			m.field = fieldFrom
		}

	case "up", "k":
		m = m.adjust(1)

	case "down", "j":
		m = m.adjust(-1)

	case "pgup":
		m = m.adjust(12)

	case "pgdown":
		m = m.adjust(-12)
	}

	return m, nil
}

// adjust moves the active field by delta months, dragging the other bound
// along when the range would invert.
func (m pickerModel) adjust(delta int) pickerModel {
	shift := func(month model.Month, by int) model.Month {
		return model.MonthOf(month.First().AddDate(0, by, 0))
	}

	if m.field == fieldFrom {
		m.from = shift(m.from, delta)
		if m.to.Before(m.from) {
			m.to = m.from
		}
	} else {
		m.to = shift(m.to, delta)
		if m.to.Before(m.from) {
			m.from = m.to
		}
	}
	return m
}

func (m pickerModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Select months to sync"))
	b.WriteByte('\n')

	b.WriteString(renderField("From", m.from, m.field == fieldFrom))
	b.WriteString("   ")
	b.WriteString(renderField("To", m.to, m.field == fieldTo))
	b.WriteByte('\n')

	months := len(model.MonthsBetween(m.from, m.to))
	b.WriteString(labelStyle.Render(fmt.Sprintf("%d month(s) selected", months)))

	b.WriteString(helpStyle.Render("\n↑/↓ change month · pgup/pgdn change year · tab switch field · enter run · q cancel"))

	return b.String()
}

func renderField(label string, month model.Month, active bool) string {
	value := month.First().Format("January 2006")
	if active {
		return labelStyle.Render(label+": ") + activeStyle.Render("‹ "+value+" ›")
	}
	return labelStyle.Render(label+": ") + inactiveStyle.Render(value)
}
