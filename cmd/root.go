package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cloud-ru/loan-goals-go/internal/config"
	"github.com/cloud-ru/loan-goals-go/internal/goals"
	"github.com/cloud-ru/loan-goals-go/internal/logger"
	"github.com/cloud-ru/loan-goals-go/internal/planner"
	"github.com/cloud-ru/loan-goals-go/internal/storage"
	"github.com/cloud-ru/loan-goals-go/internal/tracing"
	"github.com/cloud-ru/loan-goals-go/internal/tracker"
)

var version = "1.0.0"

var (
	cfg    *config.Config
	slot   storage.Slot
	app    *planner.Planner
	asJSON bool
)

var rootCmd = &cobra.Command{
	Use:   "loangoals",
	Short: "Кредитный калькулятор и финансовые цели",
	Long: `loangoals рассчитывает кредиты (аннуитет и дифференцированный платеж),
ведет список финансовых целей и журнал доходов и расходов.

Цели и транзакции хранятся в выбранном хранилище (STORAGE_BACKEND):
memory, file, sqlite или redis.`,
	Version:            version,
	SilenceUsage:       true,
	PersistentPreRunE:  openApp,
	PersistentPostRunE: closeApp,
}

// Execute запускает CLI с загруженной конфигурацией
func Execute(c *config.Config) {
	log := logger.WithComponent("cmd")
	cfg = c

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "Вывод в формате JSON")
	rootCmd.PersistentFlags().String("storage", "", "Хранилище: memory, file, sqlite, redis (по умолчанию из STORAGE_BACKEND)")
}

func openApp(cmd *cobra.Command, args []string) error {
	if cfg == nil {
		cfg = config.Default()
	}
	if backend, _ := cmd.Flags().GetString("storage"); backend != "" {
		cfg.StorageBackend = backend
	}

	var err error
	slot, err = storage.Open(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("не удалось открыть хранилище: %w", err)
	}

	store, err := goals.Open(slot,
		goals.WithKey(cfg.GoalsKey),
		goals.WithLogger(logger.WithComponent("goals")),
	)
	if err != nil {
		return err
	}
	ledger, err := tracker.Open(slot, cfg.TransactionsKey, logger.WithComponent("tracker"))
	if err != nil {
		return err
	}

	app = planner.New(cfg, tracing.Tracer, store, ledger, logger.WithComponent("planner"))
	return nil
}

func closeApp(cmd *cobra.Command, args []string) error {
	if slot == nil {
		return nil
	}
	return storage.Close(slot)
}

func ctxOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
