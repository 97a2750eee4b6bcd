package service

import (
	"fmt"
	"math"
	"time"

	"interest-calculator/domain"
)

const secondsPerDay = int64(24 * time.Hour / time.Second)

// roundTo2Decimals rounds a float64 to 2 decimal places
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// DeriveDayCount returns the whole days between two dates, rounded up.
// The order of the dates does not matter. ok is false when either date is
// absent.
func DeriveDayCount(from, to time.Time) (days int, ok bool) {
	if from.IsZero() || to.IsZero() {
		return 0, false
	}
	if to.Before(from) {
		from, to = to, from
	}
	// Unix seconds rather than Sub, which saturates past ~292 years.
	secs := to.Unix() - from.Unix()
	nanos := to.Nanosecond() - from.Nanosecond()
	if nanos < 0 {
		secs--
		nanos += int(time.Second)
	}
	days = int(secs / secondsPerDay)
	if secs%secondsPerDay != 0 || nanos > 0 {
		days++
	}
	return days, true
}

// AnnualRate normalizes a rate to its yearly equivalent.
func AnnualRate(rate float64, unit domain.RateUnit) float64 {
	if unit == domain.RateMonthly {
		return rate * MonthsPerYear
	}
	return rate
}

// DateRangeInterest computes simple interest accrued over days.
func DateRangeInterest(
	input domain.CalculationInput,
	days int,
) (domain.CalculationResult, error) {

	if input.Principal == 0 {
		return domain.CalculationResult{}, missing("principal")
	}
	if input.Rate == 0 {
		return domain.CalculationResult{}, missing("rate")
	}
	if days == 0 {
		return domain.CalculationResult{}, missing("days")
	}
	if !input.RateUnit.Valid() {
		return domain.CalculationResult{}, &ValidationError{
			Field:  "rate_unit",
			Reason: fmt.Sprintf("must be %q or %q", domain.RateAnnual, domain.RateMonthly),
		}
	}
	if !input.Basis.Valid() {
		return domain.CalculationResult{}, &ValidationError{
			Field:  "basis",
			Reason: fmt.Sprintf("must be %q or %q", domain.BasisPerHundred, domain.BasisPercentage),
		}
	}

	annualRate := AnnualRate(input.Rate, input.RateUnit)
	d := float64(days)

	var interest float64
	if input.Basis == domain.BasisPerHundred {
		interest = (input.Principal * annualRate * d) / (PerHundred * DaysPerYear)
	} else {
		interest = (input.Principal * (annualRate / 100) * d) / DaysPerYear
	}

	return domain.CalculationResult{
		Principal:      input.Principal,
		InterestAmount: roundTo2Decimals(interest),
		TotalAmount:    roundTo2Decimals(input.Principal + interest),
	}, nil
}

// MonthlyInterest computes interest at rate units per 100 per month.
func MonthlyInterest(principal, ratePerHundred, months float64) (domain.CalculationResult, error) {
	if principal == 0 {
		return domain.CalculationResult{}, missing("principal")
	}
	if ratePerHundred == 0 {
		return domain.CalculationResult{}, missing("rate")
	}
	if months == 0 {
		return domain.CalculationResult{}, missing("months")
	}

	interest := (principal * ratePerHundred * months) / PerHundred

	return domain.CalculationResult{
		Principal:      principal,
		InterestAmount: roundTo2Decimals(interest),
		TotalAmount:    roundTo2Decimals(principal + interest),
	}, nil
}

// OneTimeDeduction computes a single charge at rate units per 10,000 and
// subtracts it from the principal.
func OneTimeDeduction(principal, ratePerTenThousand float64) (domain.CalculationResult, error) {
	if principal == 0 {
		return domain.CalculationResult{}, missing("principal")
	}
	if ratePerTenThousand == 0 {
		return domain.CalculationResult{}, missing("rate")
	}

	interest := (principal * ratePerTenThousand) / PerTenThousand

	return domain.CalculationResult{
		Principal:      principal,
		InterestAmount: roundTo2Decimals(interest),
		TotalAmount:    roundTo2Decimals(principal - interest),
	}, nil
}
