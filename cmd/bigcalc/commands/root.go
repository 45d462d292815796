// Package commands implements the bigcalc command tree.
package commands

import (
	"fmt"
	"strings"

	"github.com/govalues/bigint"
	"github.com/govalues/bigint/internal/config"
	"github.com/govalues/bigint/internal/log"
	"github.com/inconshreveable/log15"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type app struct {
	cfg *config.Config
	log log15.Logger
}

// RootCmd returns the bigcalc root command with all subcommands attached.
func RootCmd() *cobra.Command {
	a := &app{cfg: config.Default(), log: log.New("module", "bigcalc")}
	cmd := &cobra.Command{
		Use:               "bigcalc",
		Short:             "arbitrary-precision integer calculator",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	cmd.PersistentFlags().StringP("config", "c", "", "path to the TOML config file")
	cmd.PersistentFlags().String("log-level", "", "console log level (crit, error, warn, info, debug)")

	cmd.AddCommand(
		a.evalCmd(),
		a.incCmd(),
		a.decCmd(),
		a.halveCmd(),
		a.digitCmd(),
		a.lenCmd(),
		a.cmpCmd(),
		a.convertCmd(),
	)
	return cmd
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Log.LogConsoleLevel = lvl
	}
	log.SetFileLog(cfg.Log)
	a.cfg = cfg
	a.log.Debug("setup", "config", path, "command", cmd.Name())
	return nil
}

// format renders x according to the output section of the config.
func (a *app) format(x bigint.BigInt) string {
	var b strings.Builder
	b.WriteByte('%')
	out := a.cfg.Output
	if out.Plus {
		b.WriteByte('+')
	}
	if out.ZeroPad {
		b.WriteByte('0')
	}
	if out.Width > 0 {
		fmt.Fprintf(&b, "%d", out.Width)
	}
	b.WriteByte('d')
	return fmt.Sprintf(b.String(), x)
}

func (a *app) print(cmd *cobra.Command, xs ...bigint.BigInt) {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = a.format(x)
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, " "))
}

func parseArg(s string) (bigint.BigInt, error) {
	x, err := bigint.Parse(s)
	if err != nil {
		return bigint.BigInt{}, errors.Wrapf(err, "argument %q", s)
	}
	return x, nil
}
