package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/arith/frontend"
	"github.com/npillmayer/arith/internal/config"
	"github.com/npillmayer/arith/internal/locale"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/logrusadapter"
	"github.com/spf13/cobra"
)

var (
	cfgFile    string
	debug      bool
	strict     bool
	localeName string
)

// set up by PersistentPreRunE
var (
	fe  *frontend.Frontend
	out *locale.Formatter
)

var rootCmd = &cobra.Command{
	Use:   "arith [expression ...]",
	Short: "Evaluate arithmetic expressions",
	Long: `arith evaluates arithmetic expressions with numbers, + - * / and
parentheses. Operators of equal precedence group to the right, i.e.
1-2-3 is evaluated as 1-(2-3).

Without arguments, every non-empty line of standard input is evaluated.

Examples:
  arith "(1 + 2) * 3"
  arith --locale de-DE 1234.5*2
  echo "8/4/2" | arith`,
	Args:              cobra.ArbitraryArgs,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runEval,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $"+config.EnvConfig+")")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "trace lexing, parsing and evaluation")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "numerals need a fractional part, e.g. 1.0")
	rootCmd.PersistentFlags().StringVar(&localeName, "locale", "", "locale for printing results (default: from environment)")
}

// setup reads the configuration, initializes tracing and creates the
// frontend.
func setup(cmd *cobra.Command, args []string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	tracing.RegisterTraceAdapter("logrus", logrusadapter.GetAdapter(), false)
	var conf *config.Config
	var err error
	if cfgFile != "" {
		conf, err = config.Load(cfgFile)
	} else {
		conf, err = config.LoadFromEnv()
	}
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}
	if cmd.Flags().Changed("strict") {
		conf.Frontend.StrictNumerals = strict
	}
	if localeName != "" {
		conf.Output.Locale = localeName
	}
	gconf.Initialize(conf)
	if debug {
		gtrace.CommandTracer.SetTraceLevel(tracing.LevelDebug)
	}
	gtrace.CommandTracer.Debugf("command %q with args %v", cmd.Name(), args)
	fe = frontend.New(
		frontend.StrictNumerals(conf.Frontend.StrictNumerals),
		frontend.Debug(debug),
	)
	out = locale.New(conf.Output.Locale, conf.Output.MaxFractionDigits)
	return nil
}

func runEval(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return eval(cmd.OutOrStdout(), strings.Join(args, " "))
	}
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := eval(cmd.OutOrStdout(), line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func eval(w io.Writer, expr string) error {
	v, err := fe.Compile(expr)
	if err != nil {
		return fmt.Errorf("%q: %w", expr, err)
	}
	fmt.Fprintln(w, out.Format(v))
	return nil
}
