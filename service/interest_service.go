package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"interest-calculator/domain"
	"interest-calculator/repository"
)

type InterestService struct {
	history repository.HistoryRepository
	logger  *zap.Logger
	now     func() time.Time
	newID   func() (string, error)
}

type Option func(*InterestService)

// WithClock overrides the clock used to stamp history entries.
func WithClock(now func() time.Time) Option {
	return func(s *InterestService) { s.now = now }
}

// WithIDGenerator overrides how history entry identifiers are created.
func WithIDGenerator(newID func() (string, error)) Option {
	return func(s *InterestService) { s.newID = newID }
}

// NewInterestService creates a new InterestService with the given history repository.
func NewInterestService(history repository.HistoryRepository,
	logger *zap.Logger,
	opts ...Option,
) *InterestService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &InterestService{
		history: history,
		logger:  logger,
		now:     time.Now,
		newID:   newEntryID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// newEntryID returns a UUIDv7, whose leading bits carry the creation time
// in Unix milliseconds.
func newEntryID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// CalculateDateRange computes date-range interest and records it in history.
func (s *InterestService) CalculateDateRange(
	ctx context.Context,
	input domain.CalculationInput,
) (domain.CalculationResult, int, error) {

	days, _ := DeriveDayCount(input.FromDate, input.ToDate)

	result, err := DateRangeInterest(input, days)
	if err != nil {
		s.logger.Debug("date-range calculation rejected", zap.Error(err))
		return domain.CalculationResult{}, 0, err
	}

	entry := domain.HistoryEntry{
		CreatedAt:      s.now(),
		Principal:      input.Principal,
		Rate:           input.Rate,
		RateUnit:       input.RateUnit,
		Basis:          input.Basis,
		FromDate:       input.FromDate,
		ToDate:         input.ToDate,
		Days:           days,
		InterestAmount: result.InterestAmount,
		TotalAmount:    result.TotalAmount,
	}

	// Recording history is not critical to the calculation
	if err := s.AddHistoryEntry(ctx, entry); err != nil {
		s.logger.Warn("failed to record calculation history", zap.Error(err))
	}

	return result, days, nil
}

// CalculateMonthly computes interest per 100 per month. It is not recorded.
func (s *InterestService) CalculateMonthly(
	_ context.Context,
	principal, ratePerHundred, months float64,
) (domain.CalculationResult, error) {
	result, err := MonthlyInterest(principal, ratePerHundred, months)
	if err != nil {
		s.logger.Debug("monthly calculation rejected", zap.Error(err))
	}
	return result, err
}

// CalculateOneTime computes the one-time deduction per 10,000. It is not recorded.
func (s *InterestService) CalculateOneTime(
	_ context.Context,
	principal, ratePerTenThousand float64,
) (domain.CalculationResult, error) {
	result, err := OneTimeDeduction(principal, ratePerTenThousand)
	if err != nil {
		s.logger.Debug("one-time calculation rejected", zap.Error(err))
	}
	return result, err
}

// AddHistoryEntry stores entry at the head of the history, assigning an ID
// and creation time when they are missing.
func (s *InterestService) AddHistoryEntry(ctx context.Context, entry domain.HistoryEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.now()
	}
	if entry.ID == "" {
		id, err := s.newID()
		if err != nil {
			return fmt.Errorf("generate history id: %w", err)
		}
		entry.ID = id
	}
	return s.history.Add(ctx, entry)
}

// ListHistory returns the recorded calculations, newest first.
func (s *InterestService) ListHistory(ctx context.Context) ([]domain.HistoryEntry, error) {
	return s.history.List(ctx)
}

func (s *InterestService) ClearHistory(ctx context.Context) error {
	if err := s.history.Clear(ctx); err != nil {
		return err
	}
	s.logger.Info("calculation history cleared")
	return nil
}
