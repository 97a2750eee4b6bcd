// Package session holds the state of one interactive calculator session:
// the raw field values of each calculator, their latest results and the
// shared calculation history.
package session

import (
	"context"

	"interest-calculator/domain"
	"interest-calculator/service"
)

type DateRangeForm struct {
	Principal string
	Rate      string
	RateUnit  domain.RateUnit
	Basis     domain.InterestBasis
	FromDate  string
	ToDate    string
	Days      int
	Result    *domain.CalculationResult
}

type MonthlyForm struct {
	Principal string
	Rate      string
	Months    string
	Result    *domain.CalculationResult
}

type OneTimeForm struct {
	Principal string
	Rate      string
	Result    *domain.CalculationResult
}

// Session is owned by a single presentation layer and is not safe for
// concurrent use.
type Session struct {
	Active    domain.Mode
	DateRange DateRangeForm
	Monthly   MonthlyForm
	OneTime   OneTimeForm

	service *service.InterestService
}

func New(svc *service.InterestService) *Session {
	s := &Session{
		Active:  domain.ModeDateRange,
		service: svc,
	}
	s.ResetDateRange()
	return s
}

// SetActive switches the visible calculator. Unknown modes are ignored.
func (s *Session) SetActive(m domain.Mode) {
	if m.Valid() {
		s.Active = m
	}
}

// SetDates updates the date fields and recomputes the day count. The count
// drops to zero while either date is empty or unparseable.
func (s *Session) SetDates(from, to string) {
	s.DateRange.FromDate = from
	s.DateRange.ToDate = to
	s.DateRange.Days = 0

	fromDate, err := service.ParseDate("from_date", from)
	if err != nil {
		return
	}
	toDate, err := service.ParseDate("to_date", to)
	if err != nil {
		return
	}
	if days, ok := service.DeriveDayCount(fromDate, toDate); ok {
		s.DateRange.Days = days
	}
}

// CalculateDateRange parses the date-range form and records the result in
// history. On error the previous result is left in place.
func (s *Session) CalculateDateRange(ctx context.Context) error {
	f := &s.DateRange
	input, err := service.ParseDateRange(service.DateRangeFields{
		Principal: f.Principal,
		Rate:      f.Rate,
		RateUnit:  string(f.RateUnit),
		Basis:     string(f.Basis),
		FromDate:  f.FromDate,
		ToDate:    f.ToDate,
	})
	if err != nil {
		return err
	}

	result, days, err := s.service.CalculateDateRange(ctx, input)
	if err != nil {
		return err
	}
	f.Days = days
	f.Result = &result
	return nil
}

func (s *Session) CalculateMonthly(ctx context.Context) error {
	f := &s.Monthly
	principal, err := service.ParseAmount("principal", f.Principal)
	if err != nil {
		return err
	}
	rate, err := service.ParseAmount("rate", f.Rate)
	if err != nil {
		return err
	}
	months, err := service.ParseAmount("months", f.Months)
	if err != nil {
		return err
	}

	result, err := s.service.CalculateMonthly(ctx, principal, rate, months)
	if err != nil {
		return err
	}
	f.Result = &result
	return nil
}

func (s *Session) CalculateOneTime(ctx context.Context) error {
	f := &s.OneTime
	principal, err := service.ParseAmount("principal", f.Principal)
	if err != nil {
		return err
	}
	rate, err := service.ParseAmount("rate", f.Rate)
	if err != nil {
		return err
	}

	result, err := s.service.CalculateOneTime(ctx, principal, rate)
	if err != nil {
		return err
	}
	f.Result = &result
	return nil
}

// ResetDateRange restores the date-range form to its initial state. History
// is kept.
func (s *Session) ResetDateRange() {
	s.DateRange = DateRangeForm{
		RateUnit: domain.RateAnnual,
		Basis:    domain.BasisPerHundred,
	}
}

func (s *Session) ResetMonthly() {
	s.Monthly = MonthlyForm{}
}

func (s *Session) ResetOneTime() {
	s.OneTime = OneTimeForm{}
}

// Reset clears the form of the given calculator only.
func (s *Session) Reset(m domain.Mode) {
	switch m {
	case domain.ModeDateRange:
		s.ResetDateRange()
	case domain.ModeMonthly:
		s.ResetMonthly()
	case domain.ModeOneTime:
		s.ResetOneTime()
	}
}

// Calculate runs the calculator of the given mode.
func (s *Session) Calculate(ctx context.Context, m domain.Mode) error {
	switch m {
	case domain.ModeMonthly:
		return s.CalculateMonthly(ctx)
	case domain.ModeOneTime:
		return s.CalculateOneTime(ctx)
	default:
		return s.CalculateDateRange(ctx)
	}
}

func (s *Session) History(ctx context.Context) ([]domain.HistoryEntry, error) {
	return s.service.ListHistory(ctx)
}

func (s *Session) ClearHistory(ctx context.Context) error {
	return s.service.ClearHistory(ctx)
}
