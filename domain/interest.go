package domain

import (
	"fmt"
	"time"
)

// HistoryCapacity is the number of date-range calculations kept in history.
const HistoryCapacity = 10

type RateUnit string

const (
	RateAnnual  RateUnit = "annual"
	RateMonthly RateUnit = "monthly"
)

func (u RateUnit) Valid() bool {
	return u == RateAnnual || u == RateMonthly
}

// ParseRateUnit converts a form value into a RateUnit. An empty value
// selects the annual rate, which is the form's initial state.
func ParseRateUnit(s string) (RateUnit, error) {
	if s == "" {
		return RateAnnual, nil
	}
	u := RateUnit(s)
	if !u.Valid() {
		return "", fmt.Errorf("unknown rate unit %q", s)
	}
	return u, nil
}

type InterestBasis string

const (
	BasisPerHundred InterestBasis = "per100"
	BasisPercentage InterestBasis = "percentage"
)

func (b InterestBasis) Valid() bool {
	return b == BasisPerHundred || b == BasisPercentage
}

// ParseBasis converts a form value into an InterestBasis, defaulting to
// the per-100 basis when empty.
func ParseBasis(s string) (InterestBasis, error) {
	if s == "" {
		return BasisPerHundred, nil
	}
	b := InterestBasis(s)
	if !b.Valid() {
		return "", fmt.Errorf("unknown interest basis %q", s)
	}
	return b, nil
}

// Mode identifies one of the three calculators.
type Mode string

const (
	ModeDateRange Mode = "date-range"
	ModeMonthly   Mode = "monthly"
	ModeOneTime   Mode = "one-time"
)

// Modes lists the calculators in tab order.
var Modes = []Mode{ModeDateRange, ModeMonthly, ModeOneTime}

func (m Mode) Valid() bool {
	return m == ModeDateRange || m == ModeMonthly || m == ModeOneTime
}

func (m Mode) Title() string {
	switch m {
	case ModeDateRange:
		return "Date-based Calculator"
	case ModeMonthly:
		return "Monthly Calculator"
	case ModeOneTime:
		return "One-time Calculator"
	}
	return string(m)
}

// CalculationInput holds the parsed fields of one date-range calculation.
// Zero dates mean the field was left empty.
type CalculationInput struct {
	Principal  float64
	Rate       float64
	RateUnit   RateUnit
	Basis      InterestBasis
	FromDate   time.Time
	ToDate     time.Time
	TimeMonths float64
}

type CalculationResult struct {
	Principal      float64 `json:"principal"`
	InterestAmount float64 `json:"interest_amount"`
	TotalAmount    float64 `json:"total_amount"`
}

// HistoryEntry records one completed date-range calculation.
type HistoryEntry struct {
	ID             string        `json:"id"`
	CreatedAt      time.Time     `json:"created_at"`
	Principal      float64       `json:"principal"`
	Rate           float64       `json:"rate"`
	RateUnit       RateUnit      `json:"rate_unit"`
	Basis          InterestBasis `json:"basis"`
	FromDate       time.Time     `json:"from_date"`
	ToDate         time.Time     `json:"to_date"`
	Days           int           `json:"days"`
	InterestAmount float64       `json:"interest_amount"`
	TotalAmount    float64       `json:"total_amount"`
}
