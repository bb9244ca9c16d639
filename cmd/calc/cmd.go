package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsatke/calc"
	"github.com/tsatke/calc/internal/batch"
	"github.com/tsatke/calc/internal/config"
)

type app struct {
	fs     afero.Fs
	stdout io.Writer

	configPath    string
	negativeStyle string
	division      string
	explain       bool
	verbose       bool

	cfg  config.Config
	log  *zap.Logger
	calc *calc.Calculator
}

func newRootCmd(fs afero.Fs, stdout io.Writer) *cobra.Command {
	a := &app{
		fs:     fs,
		stdout: stdout,
	}

	rootCmd := &cobra.Command{
		Use:   AppName + " <a> <operation> <b>",
		Short: "Fixed-point decimal calculator",
		Long: `Computes the sum, difference, product or quotient of two decimal numbers
with six fractional digits. The integer part may be grouped in thousands by
spaces, e.g. "1 234,5". Put "--" before a negative first operand.`,
		Example: AppName + ` "1 234,5" mul 2
` + AppName + ` -- -7 / 3`,
		Args:              cobra.ExactArgs(3),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: a.teardown,
		RunE:              a.runCalculate,
	}
	rootCmd.SetOut(stdout)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "configuration file (toml or yaml)")
	flags.StringVar(&a.negativeStyle, "negative-style", "", "how negative results are shown: minus or parens")
	flags.StringVar(&a.division, "division", "", "division algorithm: float or exact")
	flags.BoolVar(&a.explain, "explain", false, "print the calculation steps")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "validate <text>...",
			Short: "Validate numbers and print them formatted",
			Args:  cobra.MinimumNArgs(1),
			RunE:  a.runValidate,
		},
		&cobra.Command{
			Use:   "normalize <text>...",
			Short: "Print the input cleaned up as it would be validated",
			Args:  cobra.MinimumNArgs(1),
			RunE:  a.runNormalize,
		},
		&cobra.Command{
			Use:   "batch <file>...",
			Short: "Evaluate files with one calculation per line, like 1;+;2",
			Args:  cobra.MinimumNArgs(1),
			RunE:  a.runBatch,
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the version",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, _ []string) {
				_, _ = fmt.Fprintf(a.stdout, "%s version %s\n", AppName, Version)
			},
		},
	)

	return rootCmd
}

// setup loads the configuration, applies the flags on top and creates the
// logger and the calculator.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var err error
	if a.verbose {
		a.log, err = zap.NewDevelopment()
	} else {
		a.log, err = zap.NewProduction()
	}
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	a.cfg = config.Default()
	if a.configPath != "" {
		a.cfg, err = config.Load(a.fs, a.configPath)
		if err != nil {
			return err
		}
		a.log.Debug("loaded config", zap.String("path", a.configPath))
	}

	flags := cmd.Flags()
	if flags.Changed("negative-style") {
		a.cfg.NegativeStyle = a.negativeStyle
	}
	if flags.Changed("division") {
		a.cfg.Division = a.division
	}
	if flags.Changed("explain") {
		a.cfg.Explain = a.explain
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	opts := append(a.cfg.Options(), calc.WithLogger(a.log))
	a.calc = calc.New(opts...)
	return nil
}

func (a *app) teardown(*cobra.Command, []string) {
	if a.log != nil {
		_ = a.log.Sync()
	}
}

func (a *app) runCalculate(_ *cobra.Command, args []string) error {
	op, err := calc.ParseOperation(args[1])
	if err != nil {
		return err
	}

	res, err := a.calc.Calculate(op, args[0], args[2])
	if err != nil {
		return failure(err)
	}

	if a.cfg.Explain {
		_, err = fmt.Fprintln(a.stdout, res.Explanation)
	} else {
		_, err = fmt.Fprintln(a.stdout, res.Text)
	}
	return err
}

var errInvalidInput = errors.New("invalid input")

func (a *app) runValidate(_ *cobra.Command, args []string) error {
	invalid := 0
	for _, arg := range args {
		n, err := a.calc.Validate(arg)
		if err != nil {
			invalid++
			_, _ = fmt.Fprintf(a.stdout, "error: %s (%v)\n", calc.Code(err), err)
			continue
		}
		_, _ = fmt.Fprintln(a.stdout, a.calc.Format(n))
	}
	if invalid > 0 {
		return fmt.Errorf("%w: %d of %d", errInvalidInput, invalid, len(args))
	}
	return nil
}

func (a *app) runNormalize(_ *cobra.Command, args []string) error {
	for _, arg := range args {
		if _, err := fmt.Fprintf(a.stdout, "%q\n", a.calc.Normalize(arg)); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) runBatch(cmd *cobra.Command, args []string) error {
	return batch.Run(cmd.Context(), a.fs, a.calc, args, a.stdout, batch.WithExplain(a.cfg.Explain))
}

// failure adds the code of a calculation error to its message.
func failure(err error) error {
	return fmt.Errorf("error: %s: %w", calc.Code(err), err)
}
