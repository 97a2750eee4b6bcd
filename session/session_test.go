package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"interest-calculator/domain"
	"interest-calculator/repository"
	"interest-calculator/service"
)

func newTestSession() *Session {
	svc := service.NewInterestService(repository.NewHistoryRepositoryMemory(), zap.NewNop())
	return New(svc)
}

func TestNew_InitialState(t *testing.T) {
	s := newTestSession()

	assert.Equal(t, domain.ModeDateRange, s.Active)
	assert.Equal(t, domain.RateAnnual, s.DateRange.RateUnit)
	assert.Equal(t, domain.BasisPerHundred, s.DateRange.Basis)
	assert.Nil(t, s.DateRange.Result)
}

func TestSetDates(t *testing.T) {
	s := newTestSession()

	s.SetDates("2024-01-01", "2024-12-31")
	assert.Equal(t, 365, s.DateRange.Days)

	s.SetDates("2024-12-31", "2024-01-01")
	assert.Equal(t, 365, s.DateRange.Days)

	s.SetDates("2024-01-01", "")
	assert.Equal(t, 0, s.DateRange.Days)

	s.SetDates("2024-01-01", "2024-13-01")
	assert.Equal(t, 0, s.DateRange.Days)
}

func TestCalculateDateRange(t *testing.T) {
	s := newTestSession()
	ctx := context.Background()

	s.DateRange.Principal = "1000"
	s.DateRange.Rate = "5"
	s.SetDates("2023-01-01", "2024-01-01")

	require.NoError(t, s.CalculateDateRange(ctx))
	require.NotNil(t, s.DateRange.Result)
	assert.Equal(t, 50.0, s.DateRange.Result.InterestAmount)
	assert.Equal(t, 1050.0, s.DateRange.Result.TotalAmount)

	history, err := s.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 365, history[0].Days)
}

func TestCalculateDateRange_ErrorKeepsPreviousResult(t *testing.T) {
	s := newTestSession()
	ctx := context.Background()

	s.DateRange.Principal = "1000"
	s.DateRange.Rate = "5"
	s.SetDates("2023-01-01", "2024-01-01")
	require.NoError(t, s.CalculateDateRange(ctx))
	previous := s.DateRange.Result

	s.DateRange.Rate = "five"
	err := s.CalculateDateRange(ctx)
	assert.ErrorIs(t, err, service.ErrValidation)
	assert.Same(t, previous, s.DateRange.Result)

	history, _ := s.History(ctx)
	assert.Len(t, history, 1)
}

func TestCalculateMonthly(t *testing.T) {
	s := newTestSession()
	ctx := context.Background()

	s.Monthly = MonthlyForm{Principal: "1000", Rate: "2", Months: "3"}
	require.NoError(t, s.Calculate(ctx, domain.ModeMonthly))
	assert.Equal(t, 60.0, s.Monthly.Result.InterestAmount)
	assert.Equal(t, 1060.0, s.Monthly.Result.TotalAmount)

	s.Monthly.Months = ""
	assert.ErrorIs(t, s.CalculateMonthly(ctx), service.ErrValidation)

	history, _ := s.History(ctx)
	assert.Empty(t, history)
}

func TestCalculateOneTime(t *testing.T) {
	s := newTestSession()
	ctx := context.Background()

	s.OneTime = OneTimeForm{Principal: "10000", Rate: "500"}
	require.NoError(t, s.Calculate(ctx, domain.ModeOneTime))
	assert.Equal(t, 500.0, s.OneTime.Result.InterestAmount)
	assert.Equal(t, 9500.0, s.OneTime.Result.TotalAmount)

	s.OneTime.Principal = "abc"
	assert.ErrorIs(t, s.CalculateOneTime(ctx), service.ErrValidation)
}

func TestResetIsIndependent(t *testing.T) {
	s := newTestSession()
	ctx := context.Background()

	s.DateRange.Principal = "1000"
	s.DateRange.Rate = "5"
	s.DateRange.RateUnit = domain.RateMonthly
	s.DateRange.Basis = domain.BasisPercentage
	s.SetDates("2023-01-01", "2023-02-01")
	require.NoError(t, s.CalculateDateRange(ctx))

	s.Monthly = MonthlyForm{Principal: "1000", Rate: "2", Months: "3"}
	require.NoError(t, s.CalculateMonthly(ctx))
	s.OneTime = OneTimeForm{Principal: "10000", Rate: "500"}
	require.NoError(t, s.CalculateOneTime(ctx))

	s.Reset(domain.ModeMonthly)
	assert.Equal(t, MonthlyForm{}, s.Monthly)
	assert.NotNil(t, s.OneTime.Result)
	assert.NotNil(t, s.DateRange.Result)

	s.Reset(domain.ModeDateRange)
	assert.Equal(t, "", s.DateRange.Principal)
	assert.Equal(t, 0, s.DateRange.Days)
	assert.Equal(t, domain.RateAnnual, s.DateRange.RateUnit)
	assert.Equal(t, domain.BasisPerHundred, s.DateRange.Basis)
	assert.Nil(t, s.DateRange.Result)
	assert.NotNil(t, s.OneTime.Result)

	history, _ := s.History(ctx)
	assert.Len(t, history, 1, "reset must not touch history")

	s.Reset(domain.ModeOneTime)
	assert.Equal(t, OneTimeForm{}, s.OneTime)
}

func TestClearHistory(t *testing.T) {
	s := newTestSession()
	ctx := context.Background()

	s.DateRange.Principal = "1000"
	s.DateRange.Rate = "5"
	s.SetDates("2023-01-01", "2023-02-01")
	require.NoError(t, s.CalculateDateRange(ctx))

	require.NoError(t, s.ClearHistory(ctx))
	history, _ := s.History(ctx)
	assert.Empty(t, history)
	assert.NotNil(t, s.DateRange.Result)
}

func TestSetActive(t *testing.T) {
	s := newTestSession()
	s.SetActive(domain.ModeOneTime)
	assert.Equal(t, domain.ModeOneTime, s.Active)

	s.SetActive("bogus")
	assert.Equal(t, domain.ModeOneTime, s.Active)
}
