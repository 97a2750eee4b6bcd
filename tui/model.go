// Package tui is the terminal front end of the calculator.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"interest-calculator/domain"
	"interest-calculator/format"
	"interest-calculator/session"
)

type field struct {
	label string
	input textinput.Model
}

// Model is the bubbletea model wrapping one calculator session.
type Model struct {
	ctx       context.Context
	session   *session.Session
	formatter *format.Formatter
	logger    *zap.Logger
	keys      KeyMap
	help      help.Model

	fields  map[domain.Mode][]field
	focus   map[domain.Mode]int
	history []domain.HistoryEntry

	// notice blocks input until the next key press
	notice string
	width  int
}

func New(ctx context.Context, s *session.Session, f *format.Formatter, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Model{
		ctx:       ctx,
		session:   s,
		formatter: f,
		logger:    logger,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		fields:    make(map[domain.Mode][]field),
		focus:     make(map[domain.Mode]int),
	}
	sym := f.Symbol()
	m.fields[domain.ModeDateRange] = []field{
		newField("Principal Amount ("+sym+")", "Enter principal amount"),
		newField("Interest Rate", "Enter interest rate"),
		newField("From Date", "YYYY-MM-DD"),
		newField("To Date", "YYYY-MM-DD"),
	}
	m.fields[domain.ModeMonthly] = []field{
		newField("Principal Amount ("+sym+")", "Enter principal amount"),
		newField("Rate per 100"+sym+" per month", "e.g. 2"),
		newField("Time (months)", "e.g. 12"),
	}
	m.fields[domain.ModeOneTime] = []field{
		newField("Principal Amount ("+sym+")", "Enter principal amount"),
		newField("Rate per 10,000"+sym, "e.g. 500"),
	}
	m.applyFocus()
	m.refreshHistory()
	return m
}

func newField(label, placeholder string) field {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Width = 30
	return field{label: label, input: ti}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.notice != "" {
			m.notice = ""
			return m, nil
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	mode := m.session.Active

	switch {
	case key.Matches(msg, m.keys.NextTab):
		m.switchTab(1)
		return m, nil
	case key.Matches(msg, m.keys.PrevTab):
		m.switchTab(-1)
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		m.moveFocus(1)
		return m, nil
	case key.Matches(msg, m.keys.PrevField):
		m.moveFocus(-1)
		return m, nil
	case key.Matches(msg, m.keys.Calculate):
		m.calculate()
		return m, nil
	case key.Matches(msg, m.keys.Reset):
		m.session.Reset(mode)
		for i := range m.fields[mode] {
			m.fields[mode][i].input.SetValue("")
		}
		m.focus[mode] = 0
		m.applyFocus()
		return m, nil
	case key.Matches(msg, m.keys.ClearHistory):
		if err := m.session.ClearHistory(m.ctx); err != nil {
			m.logger.Warn("failed to clear history", zap.Error(err))
			m.notice = err.Error()
		}
		m.refreshHistory()
		return m, nil
	case key.Matches(msg, m.keys.ToggleUnit):
		// the toggles only apply to the date tab; elsewhere the key is
		// swallowed so the text input does not treat it as a line kill
		if mode != domain.ModeDateRange {
			return m, nil
		}
		if m.session.DateRange.RateUnit == domain.RateMonthly {
			m.session.DateRange.RateUnit = domain.RateAnnual
		} else {
			m.session.DateRange.RateUnit = domain.RateMonthly
		}
		return m, nil
	case key.Matches(msg, m.keys.ToggleBasis):
		if mode != domain.ModeDateRange {
			return m, nil
		}
		if m.session.DateRange.Basis == domain.BasisPercentage {
			m.session.DateRange.Basis = domain.BasisPerHundred
		} else {
			m.session.DateRange.Basis = domain.BasisPercentage
		}
		return m, nil
	}

	fields := m.fields[mode]
	i := m.focus[mode]
	var cmd tea.Cmd
	fields[i].input, cmd = fields[i].input.Update(msg)
	m.syncSession()
	return m, cmd
}

func (m *Model) switchTab(step int) {
	idx := 0
	for i, mode := range domain.Modes {
		if mode == m.session.Active {
			idx = i
		}
	}
	n := len(domain.Modes)
	m.session.SetActive(domain.Modes[(idx+step+n)%n])
	m.applyFocus()
}

func (m *Model) moveFocus(step int) {
	mode := m.session.Active
	n := len(m.fields[mode])
	m.focus[mode] = (m.focus[mode] + step + n) % n
	m.applyFocus()
}

func (m *Model) applyFocus() {
	for mode, fields := range m.fields {
		for i := range fields {
			if mode == m.session.Active && i == m.focus[mode] {
				fields[i].input.Focus()
			} else {
				fields[i].input.Blur()
			}
		}
	}
}

// syncSession copies the text inputs of the active calculator into the
// session.
func (m *Model) syncSession() {
	f := m.fields[m.session.Active]
	switch m.session.Active {
	case domain.ModeDateRange:
		m.session.DateRange.Principal = f[0].input.Value()
		m.session.DateRange.Rate = f[1].input.Value()
		m.session.SetDates(f[2].input.Value(), f[3].input.Value())
	case domain.ModeMonthly:
		m.session.Monthly.Principal = f[0].input.Value()
		m.session.Monthly.Rate = f[1].input.Value()
		m.session.Monthly.Months = f[2].input.Value()
	case domain.ModeOneTime:
		m.session.OneTime.Principal = f[0].input.Value()
		m.session.OneTime.Rate = f[1].input.Value()
	}
}

func (m *Model) calculate() {
	mode := m.session.Active
	m.syncSession()
	if err := m.session.Calculate(m.ctx, mode); err != nil {
		m.notice = err.Error()
		return
	}
	if mode == domain.ModeDateRange {
		m.refreshHistory()
	}
}

func (m *Model) refreshHistory() {
	history, err := m.session.History(m.ctx)
	if err != nil {
		m.logger.Warn("failed to load history", zap.Error(err))
		return
	}
	m.history = history
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Interest Calculator"))
	b.WriteString("\n")
	b.WriteString(m.tabsView())
	b.WriteString("\n\n")

	mode := m.session.Active
	if mode == domain.ModeDateRange {
		b.WriteString(m.optionsView())
		b.WriteString("\n")
	}
	for _, f := range m.fields[mode] {
		b.WriteString(labelStyle.Render(f.label))
		b.WriteString(f.input.View())
		b.WriteString("\n")
	}
	if mode == domain.ModeDateRange {
		b.WriteString(labelStyle.Render("Number of Days"))
		b.WriteString(fmt.Sprintf("%d", m.session.DateRange.Days))
		b.WriteString("\n")
	}

	if r := m.result(mode); r != nil {
		b.WriteString(m.resultView(mode, *r))
		b.WriteString("\n")
	}
	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice + "  (press any key)"))
		b.WriteString("\n")
	}
	if mode == domain.ModeDateRange && len(m.history) > 0 {
		b.WriteString(m.historyView())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) tabsView() string {
	tabs := make([]string, 0, len(domain.Modes))
	for _, mode := range domain.Modes {
		if mode == m.session.Active {
			tabs = append(tabs, activeTabStyle.Render(mode.Title()))
		} else {
			tabs = append(tabs, tabStyle.Render(mode.Title()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) optionsView() string {
	basis := "Per 100" + m.formatter.Symbol()
	if m.session.DateRange.Basis == domain.BasisPercentage {
		basis = "Percentage (%)"
	}
	unit := "Annual"
	if m.session.DateRange.RateUnit == domain.RateMonthly {
		unit = "Monthly"
	}
	return labelStyle.Render("Interest Type") + basis + hintStyle.Render("  ctrl+b") + "\n" +
		labelStyle.Render("Rate Type") + unit + hintStyle.Render("  ctrl+u")
}

func (m *Model) result(mode domain.Mode) *domain.CalculationResult {
	switch mode {
	case domain.ModeMonthly:
		return m.session.Monthly.Result
	case domain.ModeOneTime:
		return m.session.OneTime.Result
	default:
		return m.session.DateRange.Result
	}
}

func (m *Model) resultView(mode domain.Mode, r domain.CalculationResult) string {
	f := m.formatter
	lines := []string{
		labelStyle.Render("Principal Amount") + f.Money(r.Principal),
		labelStyle.Render("Interest Amount") + f.Money(r.InterestAmount),
	}
	total := "Total Amount"
	if mode == domain.ModeOneTime {
		total = "Amount after Deduction"
	}
	lines = append(lines, labelStyle.Render(total)+totalStyle.Render(f.Money(r.TotalAmount)))
	return resultStyle.Render(strings.Join(lines, "\n"))
}

func (m *Model) historyView() string {
	f := m.formatter
	lines := []string{labelStyle.Render("Calculation History") + hintStyle.Render("ctrl+x to clear")}
	for _, e := range m.history {
		lines = append(lines, fmt.Sprintf("%s - %s (%d days)  %s @ %g %s %s  interest %s  total %s",
			f.Date(e.FromDate),
			f.Date(e.ToDate),
			e.Days,
			f.Money(e.Principal),
			e.Rate,
			e.Basis,
			e.RateUnit,
			f.Money(e.InterestAmount),
			f.Money(e.TotalAmount),
		))
	}
	return historyStyle.Render(strings.Join(lines, "\n"))
}
