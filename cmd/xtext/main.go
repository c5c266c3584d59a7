// A command line shell for the xtext library and its self-tests
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

func init() {
	rootCmd.RunE = runShell
	settingsFlags(rootCmd.PersistentFlags())
}

var rootCmd = struct {
	cobra.Command
}{
	Command: cobra.Command{
		Use:   "xtext",
		Short: "Interactive shell for the xtext library",
		Long: `Reads command lines from stdin and executes them. Enter 'help' in
the shell to see the available commands.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func settingsFlags(flags *pflag.FlagSet) {
	flags.String("config", "",
		"Read settings from a TOML or YAML config file")
	flags.BoolP("verbose", "v", false,
		"Log debug messages to stderr")
	flags.String("prompt", "",
		"Set the shell prompt")
	flags.Bool("debug", false,
		"Mark the version as debug build")
	flags.IntP("fail-limit", "l", 0,
		"Stop a test run after this number of failed units")
	flags.Int("retries", 0,
		"Run a failed unit up to this number of times again")
}

func newLogger(flags *pflag.FlagSet) *slog.Logger {
	lvl := slog.LevelInfo
	if verbose, _ := flags.GetBool("verbose"); verbose {
		lvl = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	return slog.New(h).With("session", uuid.NewString())
}

// settings merges defaults, the config file and explicitly set flags in this
// order. Color is only kept if colored is true.
func settings(flags *pflag.FlagSet, interactive, colored bool) (cfg config, err error) {
	cfg = defaultConfig(interactive)
	if file, _ := flags.GetString("config"); file != "" {
		if err = loadConfig(file, &cfg); err != nil {
			return cfg, err
		}
	}
	if flags.Changed("prompt") {
		if cfg.Prompt, err = flags.GetString("prompt"); err != nil {
			return cfg, err
		}
	}
	if flags.Changed("debug") {
		if cfg.Debug, err = flags.GetBool("debug"); err != nil {
			return cfg, err
		}
	}
	if flags.Changed("fail-limit") {
		if cfg.FailLimit, err = flags.GetInt("fail-limit"); err != nil {
			return cfg, err
		}
	}
	if flags.Changed("retries") {
		if cfg.Retries, err = flags.GetInt("retries"); err != nil {
			return cfg, err
		}
	}
	switch {
	case cfg.FailLimit < 0:
		return cfg, fmt.Errorf("negative fail limit %d", cfg.FailLimit)
	case cfg.Retries < 0:
		return cfg, fmt.Errorf("negative retries %d", cfg.Retries)
	}
	if !colored {
		cfg.Color = false
	}
	return cfg, nil
}

func stdoutColored() bool { return term.IsTerminal(int(os.Stdout.Fd())) }

func runShell(cmd *cobra.Command, _ []string) error {
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	log := newLogger(cmd.Flags())
	cfg, err := settings(cmd.Flags(), interactive, stdoutColored())
	if err != nil {
		log.Error("settings", "error", err)
		return err
	}
	log.Debug("start shell", "interactive", interactive)
	return newShell(cfg, cmd.OutOrStdout(), log).run(cmd.InOrStdin())
}
