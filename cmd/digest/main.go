package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tirasundara/statement-digest/internal/config"
	"github.com/tirasundara/statement-digest/internal/logging"
)

var (
	cfgFile   string
	version   = "dev"
	appCfg    *config.Config
	logger    = slog.Default()
	logCloser io.Closer
	rootCmd   = &cobra.Command{
		Use:   "digest",
		Short: "Financial digests from a bank statement",
		Long: `digest reads a bank statement export and builds a home page digest,
a cashback estimate per category and category spending reports.`,
		PersistentPreRunE:  initConfig,
		PersistentPostRunE: closeLogging,
		SilenceUsage:       true,
	}
)

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./digest.yaml or $HOME/.config/digest/digest.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().String("statement", "", "statement file (overrides statement.path)")

	// Bind flags to viper
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.AddCommand(homeCmd())
	rootCmd.AddCommand(cashbackCmd())
	rootCmd.AddCommand(spendingCmd())
	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	// Set up signal handling
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("Received interrupt signal, shutting down gracefully...")
		cancel()
	}()

	err := rootCmd.ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(cmd *cobra.Command, _ []string) error {
	// A missing .env is fine
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "digest"))
		}
		viper.SetConfigName("digest")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("DIGEST")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	if statement, _ := cmd.Flags().GetString("statement"); statement != "" {
		viper.Set("statement.path", statement)
	}

	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}
	appCfg = cfg

	if err := setupLogging(cfg.Log); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	logger.Debug("configuration loaded", "config_file", viper.ConfigFileUsed(), "statement", cfg.Statement.Path, "source", cfg.ResolveSource())
	return nil
}

func setupLogging(opts logging.Options) error {
	l, closer, err := logging.New(opts, os.Stderr)
	if err != nil {
		return err
	}

	logger = l
	logCloser = closer
	slog.SetDefault(l)
	return nil
}

func closeLogging(_ *cobra.Command, _ []string) error {
	if logCloser == nil {
		return nil
	}
	return logCloser.Close()
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "digest version %s\n", version)
		},
	}
}
