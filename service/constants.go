package service

const (
	DaysPerYear    = 365
	MonthsPerYear  = 12
	PerHundred     = 100.0
	PerTenThousand = 10_000.0

	// DateLayout is the value format of an HTML date input.
	DateLayout = "2006-01-02"
)
