package cmd

import (
	"bytes"
	"io"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interest-calculator/service"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCalcDateRange(t *testing.T) {
	t.Setenv("INTEREST_LOG_LEVEL", "error")
	out, err := run(t, "calc", "date-range",
		"--principal", "1000", "--rate", "5",
		"--unit", "annual", "--basis", "per100",
		"--from", "2023-01-01", "--to", "2024-01-01")
	require.NoError(t, err)
	assert.Contains(t, out, "(365 days)")
	assert.Contains(t, out, "50.00")
	assert.Contains(t, out, "1,050.00")
}

func TestCalcDateRange_MissingDates(t *testing.T) {
	t.Setenv("INTEREST_LOG_LEVEL", "error")
	_, err := run(t, "calc", "date-range",
		"--principal", "1000", "--rate", "5",
		"--unit", "annual", "--basis", "per100",
		"--from", "", "--to", "")
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestCalcMonthly(t *testing.T) {
	out, err := run(t, "calc", "monthly", "--principal", "1000", "--rate", "2", "--months", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "60.00")
	assert.Contains(t, out, "1,060.00")
}

func TestCalcOneTime(t *testing.T) {
	out, err := run(t, "calc", "one-time", "--principal", "10000", "--rate", "500")
	require.NoError(t, err)
	assert.Contains(t, out, "After Deduction:")
	assert.Contains(t, out, "9,500.00")

	_, err = run(t, "calc", "one-time", "--principal", "abc", "--rate", "500")
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestDays(t *testing.T) {
	out, err := run(t, "days", "--from", "2024-12-31", "--to", "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, "365\n", out)

	_, err = run(t, "days", "--from", "2024-12-31", "--to", "")
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestHistory_RedisBackend(t *testing.T) {
	mr := miniredis.RunT(t)
	t.Setenv("INTEREST_HISTORY_BACKEND", "redis")
	t.Setenv("INTEREST_REDIS_ADDR", mr.Addr())
	t.Setenv("INTEREST_LOG_LEVEL", "error")

	_, err := run(t, "calc", "date-range",
		"--principal", "2000", "--rate", "5",
		"--unit", "annual", "--basis", "per100",
		"--from", "2024-01-01", "--to", "2024-01-31")
	require.NoError(t, err)

	out, err := run(t, "history", "--clear=false")
	require.NoError(t, err)
	assert.Contains(t, out, "30 days")
	assert.Contains(t, out, "2,000.00")

	out, err = run(t, "history", "--clear")
	require.NoError(t, err)
	assert.Contains(t, out, "history cleared")

	out, err = run(t, "history", "--clear=false")
	require.NoError(t, err)
	assert.Contains(t, out, "no calculations yet")
}
