// Package main provides the CLI entry point for duebot.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kiransada/duebot/pkg/config"
	"github.com/kiransada/duebot/pkg/history"
	"github.com/kiransada/duebot/pkg/logger"
	"github.com/kiransada/duebot/pkg/metrics"
	"github.com/kiransada/duebot/pkg/telegram"
	"github.com/kiransada/duebot/pkg/waha"
)

var (
	envFile string
	mode    string
	port    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "duebot",
		Short: "Telegram-driven loan collection reminder dispatcher",
		Long: `duebot receives loan account spreadsheets from an administrator over
Telegram, computes the payable amount per row and sends templated
collection reminders to each customer over a WhatsApp gateway.`,
		RunE: run,
	}

	rootCmd.Flags().StringVar(&envFile, "env", "", "Path to .env file (default: .env in the working dir)")
	rootCmd.Flags().StringVar(&mode, "mode", "", "Update delivery mode: polling or webhook (overrides BOT_MODE)")
	rootCmd.Flags().StringVar(&port, "port", "", "Webhook listen port (overrides PORT)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	if mode != "" {
		if mode != config.ModePolling && mode != config.ModeWebhook {
			return fmt.Errorf("invalid mode: %s (must be polling or webhook)", mode)
		}
		cfg.Mode = mode
	}
	if port != "" {
		cfg.Port = port
	}

	logger.Init(cfg.LogLevel)
	log := logger.Log

	store, err := history.NewSQLite(cfg.HistoryDB)
	if err != nil {
		return fmt.Errorf("open history store: %w", err)
	}
	defer store.Close()

	sink := waha.New(cfg.WAHAURL, cfg.WAHAAPIKey)

	bot, err := telegram.New(cfg, sink, store, log)
	if err != nil {
		return err
	}

	metrics.StartServer(cfg.MetricsAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := bot.Run(ctx); err != nil {
		return err
	}
	log.Info().Msg("shutdown complete")
	return nil
}
