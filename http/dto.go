package http

import (
	"interest-calculator/domain"
	"interest-calculator/format"
)

// Request fields are raw form values; numbers arrive as text so they are
// parsed with the same rules as the interactive calculator.

type dateRangeRequest struct {
	Principal string `json:"principal" binding:"required"`
	Rate      string `json:"rate" binding:"required"`
	RateUnit  string `json:"rate_unit" binding:"omitempty,oneof=annual monthly"`
	Basis     string `json:"basis" binding:"omitempty,oneof=per100 percentage"`
	FromDate  string `json:"from_date"`
	ToDate    string `json:"to_date"`
}

type monthlyRequest struct {
	Principal string `json:"principal" binding:"required"`
	Rate      string `json:"rate" binding:"required"`
	Months    string `json:"months" binding:"required"`
}

type oneTimeRequest struct {
	Principal string `json:"principal" binding:"required"`
	Rate      string `json:"rate" binding:"required"`
}

type daysRequest struct {
	FromDate string `json:"from_date" binding:"required"`
	ToDate   string `json:"to_date" binding:"required"`
}

type daysResponse struct {
	Days int `json:"days"`
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

type resultDisplay struct {
	Principal string `json:"principal"`
	Interest  string `json:"interest_amount"`
	Total     string `json:"total_amount"`
}

type resultResponse struct {
	Mode domain.Mode `json:"mode"`
	domain.CalculationResult
	Days    int           `json:"days,omitempty"`
	Display resultDisplay `json:"display"`
}

type historyDisplay struct {
	resultDisplay
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
}

type historyEntryResponse struct {
	domain.HistoryEntry
	Display historyDisplay `json:"display"`
}

type historyResponse struct {
	Entries []historyEntryResponse `json:"entries"`
}

func newResultResponse(
	f *format.Formatter,
	mode domain.Mode,
	r domain.CalculationResult,
	days int,
) resultResponse {
	return resultResponse{
		Mode:              mode,
		CalculationResult: r,
		Days:              days,
		Display: resultDisplay{
			Principal: f.Money(r.Principal),
			Interest:  f.Money(r.InterestAmount),
			Total:     f.Money(r.TotalAmount),
		},
	}
}

func newHistoryResponse(f *format.Formatter, entries []domain.HistoryEntry) historyResponse {
	out := historyResponse{Entries: make([]historyEntryResponse, 0, len(entries))}
	for _, e := range entries {
		out.Entries = append(out.Entries, historyEntryResponse{
			HistoryEntry: e,
			Display: historyDisplay{
				resultDisplay: resultDisplay{
					Principal: f.Money(e.Principal),
					Interest:  f.Money(e.InterestAmount),
					Total:     f.Money(e.TotalAmount),
				},
				FromDate: f.Date(e.FromDate),
				ToDate:   f.Date(e.ToDate),
			},
		})
	}
	return out
}
