package service

import (
	"math"
	"strconv"
	"strings"
	"time"

	"interest-calculator/domain"
)

// ParseAmount reads a numeric form field. Empty and non-numeric values are
// both reported as validation errors.
func ParseAmount(field, raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, missing(field)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, notNumeric(field)
	}
	return v, nil
}

// ParseDate reads a YYYY-MM-DD form field. An empty field yields the zero
// time with no error; 0001-01-01 itself is rejected.
func ParseDate(field, raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, &ValidationError{Field: field, Reason: "must be a date (YYYY-MM-DD)"}
	}
	// 0001-01-01 is the zero time, which stands for an absent date.
	if t.IsZero() {
		return time.Time{}, &ValidationError{Field: field, Reason: "must be after 0001-01-01"}
	}
	return t, nil
}

func parseRateUnit(raw string) (domain.RateUnit, error) {
	u, err := domain.ParseRateUnit(strings.TrimSpace(raw))
	if err != nil {
		return "", &ValidationError{Field: "rate_unit", Reason: err.Error()}
	}
	return u, nil
}

func parseBasis(raw string) (domain.InterestBasis, error) {
	b, err := domain.ParseBasis(strings.TrimSpace(raw))
	if err != nil {
		return "", &ValidationError{Field: "basis", Reason: err.Error()}
	}
	return b, nil
}

// DateRangeFields are the raw values of the date-range form.
type DateRangeFields struct {
	Principal string
	Rate      string
	RateUnit  string
	Basis     string
	FromDate  string
	ToDate    string
}

// ParseDateRange converts raw form values into a CalculationInput.
func ParseDateRange(f DateRangeFields) (domain.CalculationInput, error) {
	var (
		in  domain.CalculationInput
		err error
	)
	if in.Principal, err = ParseAmount("principal", f.Principal); err != nil {
		return domain.CalculationInput{}, err
	}
	if in.Rate, err = ParseAmount("rate", f.Rate); err != nil {
		return domain.CalculationInput{}, err
	}
	if in.RateUnit, err = parseRateUnit(f.RateUnit); err != nil {
		return domain.CalculationInput{}, err
	}
	if in.Basis, err = parseBasis(f.Basis); err != nil {
		return domain.CalculationInput{}, err
	}
	if in.FromDate, err = ParseDate("from_date", f.FromDate); err != nil {
		return domain.CalculationInput{}, err
	}
	if in.ToDate, err = ParseDate("to_date", f.ToDate); err != nil {
		return domain.CalculationInput{}, err
	}
	return in, nil
}
