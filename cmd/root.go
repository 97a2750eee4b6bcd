package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"interest-calculator/config"
	"interest-calculator/format"
	"interest-calculator/logger"
	"interest-calculator/repository"
	"interest-calculator/service"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "interest-calculator",
	Short: "Simple interest, monthly per-100 and one-time per-10,000 calculators",
	Long: `interest-calculator computes interest three ways:

  date-range  simple interest between two dates, per 100 or percentage,
              annual or monthly rate; results are kept in a 10-entry history
  monthly     interest per 100 per month over a number of months
  one-time    a single charge per 10,000 deducted from the principal

Run "serve" for the JSON API, "tui" for the interactive calculator, or
"calc" and "days" for one-shot computations.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (yaml, toml or json)")
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func newFormatter(cfg *config.Config) *format.Formatter {
	return format.New(cfg.Display.CurrencySymbol, cfg.Display.Locale, cfg.Display.DateLayout)
}

// newHistoryRepository picks the history store configured by history.backend.
func newHistoryRepository(cfg *config.Config, log *zap.Logger) (repository.HistoryRepository, func() error) {
	if cfg.History.Backend == config.BackendRedis {
		client := repository.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		log.Info("using redis history", zap.String("addr", cfg.Redis.Addr), zap.String("key", cfg.Redis.Key))
		return repository.NewRedisHistory(client, cfg.Redis.Key), client.Close
	}
	return repository.NewHistoryRepositoryMemory(), func() error { return nil }
}

func newService(cfg *config.Config, log *zap.Logger) (*service.InterestService, func() error) {
	repo, closeRepo := newHistoryRepository(cfg, log)
	return service.NewInterestService(repo, log), closeRepo
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(cfg.Log.Level, cfg.Log.Development)
}
