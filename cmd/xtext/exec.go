package main

import (
	"strings"

	"github.com/fractalqb/xtext"
	"github.com/spf13/cobra"
)

func init() {
	execCmd.RunE = execLine
	rootCmd.AddCommand(&execCmd.Command)
}

var execCmd = struct {
	cobra.Command
}{
	Command: cobra.Command{
		Use:   "exec <command line>",
		Short: "Execute one shell command line and exit",
		Long: `Execute one shell command line and exit. Quote the command line if it
has arguments starting with '-', e.g.

   xtext exec 'test -s text/*'`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
	},
}

func execLine(cmd *cobra.Command, args []string) error {
	log := newLogger(cmd.Flags())
	cfg, err := settings(cmd.Flags(), false, stdoutColored())
	if err != nil {
		log.Error("settings", "error", err)
		return err
	}
	line := xtext.New(strings.Join(args, " "))
	return newShell(cfg, cmd.OutOrStdout(), log).execLine(line)
}
