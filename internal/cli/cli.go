// Package cli wires the command-line interface together.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/mohdjaved291/File-Commander/internal/config"
	"github.com/mohdjaved291/File-Commander/internal/interpret"
	"github.com/mohdjaved291/File-Commander/internal/launcher"
	"github.com/mohdjaved291/File-Commander/internal/logging"
	"github.com/mohdjaved291/File-Commander/internal/ops"
	"github.com/mohdjaved291/File-Commander/internal/runner"
	"github.com/mohdjaved291/File-Commander/internal/shared/paths"
	"github.com/mohdjaved291/File-Commander/internal/shared/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var flags struct {
	plan  string
	model string
	cwd   string
}

var rootCmd = &cobra.Command{
	Use:   "commander [command...]",
	Short: "Natural language file management",
	Long: `File Commander turns everyday language into file operations.

Example commands:
  commander "create folder reports on Desktop"
  commander "move document.txt from Downloads to Documents"
  commander "search for budget files in Documents"
  commander "play movie Inception"`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringVar(&flags.plan, "plan", "", "execute a raw JSON plan instead of interpreting a command")
	rootCmd.Flags().StringVar(&flags.model, "model", "", "override the interpreter model")
	rootCmd.Flags().StringVar(&flags.cwd, "cwd", "", "override the current working location")
	rootCmd.AddCommand(opsCmd)
}

func run(cmd *cobra.Command, args []string) error {
	command := strings.TrimSpace(strings.Join(args, " "))
	if command == "" && flags.plan == "" {
		return fmt.Errorf("nothing to do: pass a command or --plan")
	}

	cfg := config.LoadOrDefault()
	log, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("home directory: %w", err)
	}

	current := flags.cwd
	if current == "" {
		current = home
	}

	moviesRoot := cfg.Media.Root
	if moviesRoot == "" {
		moviesRoot = defaultMoviesRoot(home)
	}

	volumes := paths.VolumeRoots()
	entries := paths.Seed(home, moviesRoot, volumes)
	if cfg.Aliases.File != "" {
		overlay, err := paths.LoadOverlay(cfg.Aliases.File)
		if err != nil {
			log.Warn("alias overlay ignored", zap.String("file", cfg.Aliases.File), zap.Error(err))
		} else {
			entries = paths.Merge(entries, overlay)
		}
	}
	resolver := paths.NewResolver(paths.NewTable(entries), volumes)

	provider := ops.New(ops.Config{
		Resolver:    resolver,
		Launcher:    launcher.New(log),
		Logger:      log,
		CurrentPath: current,
		MediaRoot:   moviesRoot,
	})

	plan, err := buildPlan(ctx, cfg, log, command)
	if err != nil {
		return err
	}

	results := runner.New(provider, log).Run(ctx, plan)
	fmt.Print(renderRun(command, results))

	for _, result := range results {
		if !result.Success {
			os.Exit(1)
		}
	}
	return nil
}

// buildPlan prefers an explicit --plan; otherwise it asks the
// interpreter. Interpreter failures degrade to an unrecognized
// operation so the user gets the clarification reply, not a stack of
// transport errors.
func buildPlan(ctx context.Context, cfg *config.Config, log *logging.Logger, command string) (types.Plan, error) {
	if flags.plan != "" {
		plan, err := interpret.DecodePlan(flags.plan)
		if err != nil {
			return types.Plan{}, fmt.Errorf("--plan: %w", err)
		}
		return plan, nil
	}

	model := cfg.AI.Model
	if flags.model != "" {
		model = flags.model
	}

	client, err := interpret.NewClient(interpret.ClientConfig{
		APIKey:  cfg.AI.APIKey,
		Model:   model,
		BaseURL: cfg.AI.BaseURL,
		Timeout: time.Duration(cfg.AI.TimeoutSeconds) * time.Second,
		RPS:     cfg.AI.RPS,
	}, log)
	if err != nil {
		return types.Plan{}, fmt.Errorf("interpreter: %w (set OPENROUTER_API_KEY or use --plan)", err)
	}

	plan, err := client.Interpret(ctx, command)
	if err != nil {
		log.Warn("interpretation failed", zap.Error(err))
		return types.Single(types.Operation{Kind: types.KindUnrecognized}), nil
	}
	return plan, nil
}

// defaultMoviesRoot mirrors the platform convention: a dedicated
// drive on Windows, a home folder elsewhere.
func defaultMoviesRoot(home string) string {
	if runtime.GOOS == "windows" {
		return `D:\Movies`
	}
	return filepath.Join(home, "Movies")
}
