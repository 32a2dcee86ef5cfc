package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/rgehrsitz/mpgo/internal/calculation"
	"github.com/rgehrsitz/mpgo/internal/compare"
	"github.com/rgehrsitz/mpgo/internal/config"
	"github.com/rgehrsitz/mpgo/internal/domain"
	"github.com/rgehrsitz/mpgo/internal/output"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "mpgo",
	Short: "Mortgage, tax and investment projection CLI",
	Long: `Year-by-year household projection: mortgage amortization, federal and
state taxes, and investment of the annual surplus, across one or more
what-if scenarios.`,
}

// newEngine builds the calculation engine for a command, wiring a zap
// development logger when --debug is set.
func newEngine(cmd *cobra.Command) *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine()
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		zapLogger, err := zap.NewDevelopment()
		if err != nil {
			log.Fatal(err)
		}
		engine.SetLogger(zapLogger.Sugar())
	}
	return engine
}

// loadConfiguration reads the configuration file argument, falling back to
// the built-in example when no file is given.
func loadConfiguration(args []string) (*domain.Configuration, string, error) {
	parser := config.NewInputParser()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "No configuration file given, running the built-in example")
		return parser.CreateExampleConfiguration(), "", nil
	}
	configData, err := parser.LoadFromFile(args[0])
	if err != nil {
		return nil, "", err
	}
	return configData, args[0], nil
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [config-file]",
	Short: "Run the configured scenarios and report the projections",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configData, _, err := loadConfiguration(args)
		if err != nil {
			log.Fatal(err)
		}

		engine := newEngine(cmd)

		var results *domain.ProjectionSet
		if scenarioName, _ := cmd.Flags().GetString("scenario"); scenarioName != "" {
			summary, err := engine.RunScenarioNamed(context.Background(), configData, scenarioName)
			if err != nil {
				log.Fatal(err)
			}
			results = &domain.ProjectionSet{
				GeneratedAt: time.Now(),
				Scenarios:   []domain.ScenarioSummary{*summary},
			}
		} else {
			results, err = engine.RunScenarios(context.Background(), configData)
			if err != nil {
				log.Fatal(err)
			}
		}

		outputFormat, _ := cmd.Flags().GetString("format")
		if outputFormat == "" {
			outputFormat = configData.Output.Format
		}
		if outputFormat == "" {
			outputFormat = "console"
		}

		if outputPath, _ := cmd.Flags().GetString("output"); outputPath != "" {
			formatter := output.GetFormatterByName(outputFormat)
			if formatter == nil {
				log.Fatalf("unknown output format %q (valid formats: %s)",
					outputFormat, strings.Join(output.AvailableFormatterNames(), ", "))
			}
			data, err := formatter.Format(results)
			if err != nil {
				log.Fatal(err)
			}
			if err := os.WriteFile(outputPath, data, 0644); err != nil {
				log.Fatal(err)
			}
			fmt.Printf("Report written to %s\n", outputPath)
			return
		}

		// Console formats print to stdout, file formats get an auto-named
		// report in the working directory.
		if err := output.GenerateReport(results, outputFormat); err != nil {
			log.Fatal(err)
		}
	},
}

var sweepCmd = &cobra.Command{
	Use:   "sweep [config-file]",
	Short: "Run every scenario and compare them against a base scenario",
	Long: `Run every configured scenario, each on its own simulation, and report
headline metrics and deltas against the base scenario.

Examples:
  mpgo sweep config.yaml
  mpgo sweep config.yaml --base "30-year mortgage" --format csv
  mpgo sweep config.yaml --parallel 4
`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configData, configPath, err := loadConfiguration(args)
		if err != nil {
			log.Fatal(err)
		}

		engine := newEngine(cmd)
		sweepEngine := compare.NewSweepEngine(engine)

		baseName, _ := cmd.Flags().GetString("base")
		parallelism, _ := cmd.Flags().GetInt("parallel")

		sweepSet, err := sweepEngine.Sweep(context.Background(), configData, compare.SweepOptions{
			BaseScenarioName: baseName,
			Parallelism:      parallelism,
		})
		if err != nil {
			log.Fatalf("Sweep failed: %v", err)
		}

		sweepSet.ConfigPath = configPath

		outputFormat, _ := cmd.Flags().GetString("format")
		switch strings.ToLower(outputFormat) {
		case "csv":
			formatter := &compare.CSVFormatter{}
			out, err := formatter.Format(sweepSet)
			if err != nil {
				log.Fatalf("Failed to format CSV: %v", err)
			}
			fmt.Print(out)

		case "json":
			formatter := &compare.JSONFormatter{Pretty: true}
			out, err := formatter.Format(sweepSet)
			if err != nil {
				log.Fatalf("Failed to format JSON: %v", err)
			}
			fmt.Print(out)

		case "table", "console", "":
			formatter := &compare.TableFormatter{}
			fmt.Print(formatter.Format(sweepSet))

		default:
			log.Fatalf("Unknown output format: %s (valid: table, csv, json)", outputFormat)
		}
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [config-file]",
	Short: "Validate a configuration file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := args[0]

		parser := config.NewInputParser()
		if _, err := parser.LoadFromFile(inputFile); err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Configuration file %s is valid\n", inputFile)
	},
}

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Print an example configuration",
	Run: func(cmd *cobra.Command, args []string) {
		exampleConfig := config.NewInputParser().CreateExampleConfiguration()

		if outputPath, _ := cmd.Flags().GetString("output"); outputPath != "" {
			if err := output.SaveConfiguration(exampleConfig, outputPath); err != nil {
				log.Fatal(err)
			}
			fmt.Printf("Example configuration written to %s\n", outputPath)
			return
		}

		data, err := yaml.Marshal(exampleConfig)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(string(data))
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "mpgo %s (commit %s, built %s)\n", version, commit, date)
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

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging for detailed calculations")

	calculateCmd.Flags().StringP("format", "f", "", "Output format (default: the configuration's output.format, else console)")
	calculateCmd.Flags().StringP("output", "o", "", "Write the report to this file instead of the default destination")
	calculateCmd.Flags().String("scenario", "", "Run a single scenario by name")

	sweepCmd.Flags().String("base", "", "Base scenario name to compare against (default: the first scenario)")
	sweepCmd.Flags().IntP("parallel", "p", 1, "Maximum scenarios to run concurrently")
	sweepCmd.Flags().StringP("format", "f", "table", "Output format (table, csv, json)")

	exampleCmd.Flags().StringP("output", "o", "", "Write the example configuration to a file instead of stdout")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(exampleCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
