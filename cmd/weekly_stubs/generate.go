package main

import (
	"fmt"
	"log/slog"

	"github.com/jonathan/weekly-stubs/internal/config"
	"github.com/jonathan/weekly-stubs/internal/logging"
	"github.com/jonathan/weekly-stubs/internal/profiles"
	"github.com/jonathan/weekly-stubs/internal/repo"
	"github.com/jonathan/weekly-stubs/internal/stubs"
	"github.com/jonathan/weekly-stubs/internal/weeks"
	"github.com/spf13/cobra"
)

var (
	generateRepoRoot   string
	generateStart      string
	generateEndYear    int
	generateForce      bool
	generateDryRun     bool
	generateConfigFile string
	generateVerbose    bool
	generateLogLevel   string
	generateLogFormat  string
)

func init() {
	rootCmd.Flags().StringVar(&generateRepoRoot, "repo-root", "", "Path to repo root (defaults to auto-detected)")
	rootCmd.Flags().StringVar(&generateStart, "start", config.DefaultStart, "First week start date (YYYY-MM-DD)")
	rootCmd.Flags().IntVar(&generateEndYear, "end-year", config.DefaultEndYear, "Generate up to end of this year (inclusive)")
	rootCmd.Flags().BoolVar(&generateForce, "force", false, "Overwrite existing files")
	rootCmd.Flags().BoolVar(&generateDryRun, "dry-run", false, "Report what would be created without writing files")
	rootCmd.Flags().StringVarP(&generateConfigFile, "config", "c", "", "Path to JSON config file")
	rootCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Log every created and skipped file")
	rootCmd.Flags().StringVar(&generateLogLevel, "log-level", config.DefaultLogLevel, "Log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&generateLogFormat, "log-format", config.DefaultLogFormat, "Log format (text or json)")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if generateVerbose {
		level = slog.LevelDebug
	}
	logger, err := logging.New(cmd.ErrOrStderr(), level, cfg.LogFormat)
	if err != nil {
		return err
	}

	start, err := weeks.ParseDate(cfg.Start)
	if err != nil {
		return fmt.Errorf("invalid --start: %w", err)
	}

	repoRoot := cfg.RepoRoot
	if repoRoot == "" {
		repoRoot, err = repo.DetectRootFromWorkingDir()
		if err != nil {
			return fmt.Errorf("failed to detect repo root: %w", err)
		}
		logger.Debug("detected repo root", "path", repoRoot)
	}

	langs, err := profiles.Default()
	if err != nil {
		return err
	}

	counters, err := stubs.NewGenerator(langs, logger).Run(stubs.Options{
		RepoRoot: repoRoot,
		Start:    start,
		EndYear:  cfg.EndYear,
		Force:    generateForce,
		DryRun:   generateDryRun,
	})
	if err != nil {
		return err
	}

	if generateDryRun {
		logger.Info("dry run: no files were written")
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), counters.Summary())
	return nil
}

// resolveConfig layers explicit flags over the config file, the environment
// and the built-in defaults, in that order.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	var flags config.Config
	if cmd.Flags().Changed("repo-root") {
		flags.RepoRoot = generateRepoRoot
	}
	if cmd.Flags().Changed("start") {
		flags.Start = generateStart
	}
	if cmd.Flags().Changed("end-year") {
		// Zero means "unset" when merging, so it has to be rejected here.
		if generateEndYear <= 0 {
			return config.Config{}, fmt.Errorf("invalid --end-year %d: must be between 1 and 9999", generateEndYear)
		}
		flags.EndYear = generateEndYear
	}
	if cmd.Flags().Changed("log-level") {
		flags.LogLevel = generateLogLevel
	}
	if cmd.Flags().Changed("log-format") {
		flags.LogFormat = generateLogFormat
	}

	merged := flags
	if generateConfigFile != "" {
		fileCfg, err := config.LoadConfig(generateConfigFile)
		if err != nil {
			return config.Config{}, err
		}
		if err := fileCfg.Validate(); err != nil {
			return config.Config{}, err
		}
		merged = merged.MergeWithDefaults(*fileCfg)
	}

	envCfg, err := config.FromEnv()
	if err != nil {
		return config.Config{}, err
	}
	merged = merged.MergeWithDefaults(envCfg)
	merged = merged.MergeWithDefaults(config.Defaults())

	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}
