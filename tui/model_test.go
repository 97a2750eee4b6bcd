package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"interest-calculator/domain"
	"interest-calculator/format"
	"interest-calculator/repository"
	"interest-calculator/service"
	"interest-calculator/session"
)

func newTestModel() (*Model, *session.Session) {
	svc := service.NewInterestService(repository.NewHistoryRepositoryMemory(), zap.NewNop())
	s := session.New(svc)
	return New(context.Background(), s, format.New("₹", "en-US", ""), zap.NewNop()), s
}

func typeText(m *Model, text string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func press(m *Model, t tea.KeyType) {
	m.Update(tea.KeyMsg{Type: t})
}

func TestModel_DateRangeFlow(t *testing.T) {
	m, s := newTestModel()

	typeText(m, "1000")
	press(m, tea.KeyTab)
	typeText(m, "5")
	press(m, tea.KeyTab)
	typeText(m, "2023-01-01")
	press(m, tea.KeyTab)
	typeText(m, "2024-01-01")

	assert.Equal(t, 365, s.DateRange.Days)

	press(m, tea.KeyEnter)
	require.NotNil(t, s.DateRange.Result)
	assert.Equal(t, 1050.0, s.DateRange.Result.TotalAmount)
	require.Len(t, m.history, 1)

	view := m.View()
	assert.Contains(t, view, "₹1,050.00")
	assert.Contains(t, view, "Calculation History")
}

func TestModel_ValidationNoticeBlocksUntilKey(t *testing.T) {
	m, s := newTestModel()

	press(m, tea.KeyEnter)
	assert.NotEmpty(t, m.notice)
	assert.Contains(t, m.View(), "please fill all fields")

	typeText(m, "9")
	assert.Empty(t, m.notice)
	assert.Equal(t, "", s.DateRange.Principal, "dismissing key must not be typed")
}

func TestModel_SwitchTabsAndMonthly(t *testing.T) {
	m, s := newTestModel()

	press(m, tea.KeyCtrlN)
	assert.Equal(t, domain.ModeMonthly, s.Active)

	typeText(m, "1000")
	press(m, tea.KeyTab)
	typeText(m, "2")
	press(m, tea.KeyTab)
	typeText(m, "3")
	press(m, tea.KeyEnter)

	require.NotNil(t, s.Monthly.Result)
	assert.Equal(t, 1060.0, s.Monthly.Result.TotalAmount)
	assert.Empty(t, m.history)

	press(m, tea.KeyCtrlR)
	assert.Nil(t, s.Monthly.Result)
	assert.Equal(t, "", m.fields[domain.ModeMonthly][0].input.Value())

	press(m, tea.KeyCtrlN)
	assert.Equal(t, domain.ModeOneTime, s.Active)
	press(m, tea.KeyCtrlN)
	assert.Equal(t, domain.ModeDateRange, s.Active)
	press(m, tea.KeyCtrlP)
	assert.Equal(t, domain.ModeOneTime, s.Active)
}

func TestModel_OneTimeView(t *testing.T) {
	m, s := newTestModel()
	s.SetActive(domain.ModeOneTime)
	m.applyFocus()

	typeText(m, "10000")
	press(m, tea.KeyTab)
	typeText(m, "500")
	press(m, tea.KeyEnter)

	view := m.View()
	assert.Contains(t, view, "Amount after Deduction")
	assert.Contains(t, view, "₹9,500.00")
}

func TestModel_Toggles(t *testing.T) {
	m, s := newTestModel()

	press(m, tea.KeyCtrlU)
	assert.Equal(t, domain.RateMonthly, s.DateRange.RateUnit)
	press(m, tea.KeyCtrlB)
	assert.Equal(t, domain.BasisPercentage, s.DateRange.Basis)
	assert.Contains(t, m.View(), "Percentage (%)")

	press(m, tea.KeyCtrlU)
	assert.Equal(t, domain.RateAnnual, s.DateRange.RateUnit)
}

func TestModel_TogglesIgnoredOutsideDateTab(t *testing.T) {
	m, s := newTestModel()
	press(m, tea.KeyCtrlN)
	require.Equal(t, domain.ModeMonthly, s.Active)

	typeText(m, "1000")
	press(m, tea.KeyCtrlU)
	press(m, tea.KeyCtrlB)

	assert.Equal(t, "1000", s.Monthly.Principal)
	assert.Equal(t, "1000", m.fields[domain.ModeMonthly][0].input.Value())
	assert.Equal(t, domain.RateAnnual, s.DateRange.RateUnit)
	assert.Equal(t, domain.BasisPerHundred, s.DateRange.Basis)
}

func TestModel_ClearHistory(t *testing.T) {
	m, s := newTestModel()
	s.DateRange.Principal = "1000"
	s.DateRange.Rate = "5"
	s.SetDates("2024-01-01", "2024-02-01")
	require.NoError(t, s.CalculateDateRange(context.Background()))
	m.refreshHistory()
	require.Len(t, m.history, 1)

	press(m, tea.KeyCtrlX)
	assert.Empty(t, m.history)
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
