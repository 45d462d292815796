package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/govalues/bigint"
	"github.com/govalues/bigint/internal/calc"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func (a *app) evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "eval EXPR",
		Short:   "Evaluate a prefix expression, e.g. \"+ 1 * 2 3\"",
		Args:    cobra.MinimumNArgs(1),
		Example: "  bigcalc eval '^ 2 100'\n  bigcalc eval -- - 5 neg 3",
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := strings.Join(args, " ")
			z, err := calc.Evaluate(expr)
			if err != nil {
				return err
			}
			a.log.Info("eval", "expr", expr, "result", z)
			a.print(cmd, z)
			return nil
		},
	}
}

// stepCmd builds inc and dec, which differ only in the step functions.
func (a *app) stepCmd(use, short string, pre func(*bigint.BigInt) *bigint.BigInt, post func(*bigint.BigInt) bigint.BigInt) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " N",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseArg(args[0])
			if err != nil {
				return err
			}
			times, _ := cmd.Flags().GetInt("times")
			if times < 1 {
				return errors.Errorf("times must be positive, got %d", times)
			}
			postfix, _ := cmd.Flags().GetBool("post")
			if postfix {
				var old bigint.BigInt
				for i := 0; i < times; i++ {
					old = post(&x)
				}
				a.log.Info(use, "input", args[0], "times", times, "last", old, "result", x)
				a.print(cmd, old, x)
				return nil
			}
			for i := 0; i < times; i++ {
				pre(&x)
			}
			a.log.Info(use, "input", args[0], "times", times, "result", x)
			a.print(cmd, x)
			return nil
		},
	}
	cmd.Flags().IntP("times", "n", 1, "number of steps")
	cmd.Flags().Bool("post", false, "print the value before the last step followed by the result")
	return cmd
}

func (a *app) incCmd() *cobra.Command {
	return a.stepCmd("inc", "Add 1 to N", (*bigint.BigInt).Inc, (*bigint.BigInt).PostInc)
}

func (a *app) decCmd() *cobra.Command {
	return a.stepCmd("dec", "Subtract 1 from N", (*bigint.BigInt).Dec, (*bigint.BigInt).PostDec)
}

func (a *app) halveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "halve N",
		Short: "Divide N by 2, rounding towards zero",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseArg(args[0])
			if err != nil {
				return err
			}
			times, _ := cmd.Flags().GetInt("times")
			if times < 1 {
				return errors.Errorf("times must be positive, got %d", times)
			}
			for i := 0; i < times && !x.IsZero(); i++ {
				x.Halve()
			}
			a.log.Info("halve", "input", args[0], "times", times, "result", x)
			a.print(cmd, x)
			return nil
		},
	}
	cmd.Flags().IntP("times", "n", 1, "number of halvings")
	return cmd
}

func (a *app) digitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "digit N I",
		Short: "Print digit I of N, 0 is the least significant digit",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseArg(args[0])
			if err != nil {
				return err
			}
			i, err := strconv.Atoi(args[1])
			if err != nil {
				return errors.Wrapf(err, "position %q", args[1])
			}
			d, err := x.Digit(i)
			if err != nil {
				return errors.Wrapf(err, "digit of %v", x)
			}
			fmt.Fprintln(cmd.OutOrStdout(), d)
			return nil
		},
	}
}

func (a *app) lenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "len N",
		Short: "Print the number of digits of N",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseArg(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), x.Len())
			return nil
		},
	}
}

func (a *app) cmpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cmp A B",
		Short: "Print -1, 0 or 1 as A is less than, equal to or greater than B",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseArg(args[0])
			if err != nil {
				return err
			}
			y, err := parseArg(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), x.Cmp(y))
			return nil
		},
	}
}

func (a *app) convertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert N",
		Short: "Round-trip N through another numeric type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseArg(args[0])
			if err != nil {
				return err
			}
			to, _ := cmd.Flags().GetString("to")
			var out string
			switch to {
			case "big":
				out = x.BigInt().String()
			case "decimal":
				d, err := x.Decimal()
				if err != nil {
					return errors.Wrap(err, "convert")
				}
				out = d.String()
			case "int64":
				i, ok := x.Int64()
				if !ok {
					return errors.Wrapf(bigint.ErrOverflow, "%v does not fit into int64", x)
				}
				out = strconv.FormatInt(i, 10)
			case "uint64":
				u, ok := x.Uint64()
				if !ok {
					return errors.Wrapf(bigint.ErrOverflow, "%v does not fit into uint64", x)
				}
				out = strconv.FormatUint(u, 10)
			default:
				return errors.Errorf("unknown target type %q", to)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().String("to", "big", "target type: big, decimal, int64 or uint64")
	return cmd
}
