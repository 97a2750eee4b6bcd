package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"interest-calculator/logger"
	"interest-calculator/session"
	"interest-calculator/tui"
)

var tuiLogFile string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive terminal calculator",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	tuiCmd.Flags().StringVar(&tuiLogFile, "log-file", "", "write logs to this file (default: log.file, else discarded)")
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The terminal belongs to the UI, so logs go to a file or nowhere.
	log := zap.NewNop()
	path := tuiLogFile
	if path == "" {
		path = cfg.Log.File
	}
	if path != "" {
		if log, err = logger.NewFile(path, cfg.Log.Level); err != nil {
			return err
		}
	}
	defer func() { _ = log.Sync() }()

	interestService, closeRepo := newService(cfg, log)
	defer func() { _ = closeRepo() }()

	model := tui.New(cmd.Context(), session.New(interestService), newFormatter(cfg), log)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
