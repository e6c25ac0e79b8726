package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pwgo/paycheck-waterfall/internal/calculation"
	"github.com/pwgo/paycheck-waterfall/internal/config"
	"github.com/pwgo/paycheck-waterfall/internal/domain"
	"github.com/pwgo/paycheck-waterfall/internal/output"
)

// logrusLogger implements calculation.Logger on top of logrus.
type logrusLogger struct{ log *logrus.Logger }

func (l logrusLogger) Debugf(format string, args ...any) { l.log.Debugf(format, args...) }
func (l logrusLogger) Infof(format string, args ...any)  { l.log.Infof(format, args...) }
func (l logrusLogger) Warnf(format string, args ...any)  { l.log.Warnf(format, args...) }
func (l logrusLogger) Errorf(format string, args ...any) { l.log.Errorf(format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "pwgo %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(os.Stdout, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

var rootCmd = &cobra.Command{
	Use:   "pwgo",
	Short: "Paycheck Waterfall CLI",
	Long:  "Allocates a single paycheck across bills, savings goals, and guilt-free spending",
}

var allocateCmd = &cobra.Command{
	Use:   "allocate [plan-file]",
	Short: "Run the waterfall allocation for a paycheck plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := runPlan(cmd, args[0])
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")
		return output.GenerateReport(result, format)
	},
}

var breakdownCmd = &cobra.Command{
	Use:   "breakdown [plan-file]",
	Short: "Show the detailed per-bill and per-goal breakdown",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := runPlan(cmd, args[0])
		if err != nil {
			return err
		}
		return output.NewReportGenerator().GenerateBreakdownReport(result)
	},
}

// runPlan loads a plan file, applies command-line overrides, and runs the
// engine once.
func runPlan(cmd *cobra.Command, planFile string) (*domain.AllocationResult, error) {
	parser := config.NewInputParser()
	plan, err := parser.LoadFromFile(planFile)
	if err != nil {
		return nil, err
	}

	if dateStr, _ := cmd.Flags().GetString("date"); dateStr != "" {
		current, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid --date %q: %w", dateStr, err)
		}
		plan.Settings.CurrentDate = current
	}

	paycheck := plan.PaycheckAmount
	if paycheckStr, _ := cmd.Flags().GetString("paycheck"); paycheckStr != "" {
		paycheck, err = decimal.NewFromString(paycheckStr)
		if err != nil {
			return nil, fmt.Errorf("invalid --paycheck %q: %w", paycheckStr, err)
		}
	}

	engine := calculation.NewEngine()
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		log := logrus.New()
		log.SetLevel(logrus.DebugLevel)
		engine.SetLogger(logrusLogger{log: log})
	}

	return engine.Allocate(paycheck, plan.Bills, plan.Goals, plan.Settings)
}

func init() {
	for _, cmd := range []*cobra.Command{allocateCmd, breakdownCmd} {
		cmd.Flags().String("date", "", "Override the reference current date (YYYY-MM-DD)")
		cmd.Flags().String("paycheck", "", "Override the plan's paycheck amount")
		cmd.Flags().Bool("verbose", false, "Enable debug logging")
	}
	allocateCmd.Flags().String("format", "console", "Output format: console, json, csv")

	rootCmd.AddCommand(allocateCmd)
	rootCmd.AddCommand(breakdownCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
