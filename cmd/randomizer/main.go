// Package main is the entry point for the kingdom randomizer CLI
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/kingdom-randomizer/internal/config"
	"github.com/KirkDiggler/kingdom-randomizer/internal/errors"
)

var (
	redisAddr   string
	catalogPath string
	logLevel    string
	jsonOutput  bool
	envFile     string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "kingdom-randomizer",
	Short: "Dominion kingdom randomizer",
	Long: `Draws kingdoms of ten supply cards plus optional events, landmarks,
projects and ways from the sets you own, honoring card requirements and
letting you lock cards between redraws.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis", "", "Redis address for sessions (default: embedded, not persisted)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "YAML card catalog (default: bundled)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print kingdoms as JSON")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")

	rootCmd.AddCommand(randomizeCmd)
	rootCmd.AddCommand(setsCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(playCmd)
}

// loadConfig reads the environment and lets flags override it. Variables
// already set win over the dotenv file.
func loadConfig(cmd *cobra.Command, _ []string) error {
	dotenvErr := godotenv.Load(envFile)

	loaded, err := config.ParseEnv()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("redis") {
		loaded.RedisAddr = redisAddr
	}
	if flags.Changed("catalog") {
		loaded.CatalogPath = catalogPath
	}
	if flags.Changed("log-level") {
		loaded.LogLevel = logLevel
	}

	level, err := config.ParseLevel(loaded.LogLevel)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	if dotenvErr != nil {
		slog.Debug("No dotenv file loaded", "path", envFile, "error", dotenvErr)
	}

	cfg = loaded
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.GetCode(err).ExitCode())
	}
}
