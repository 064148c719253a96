package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/coolbeans/meetcheck/pkg/check"
	"github.com/coolbeans/meetcheck/pkg/geo"
	"github.com/coolbeans/meetcheck/pkg/report"
	"github.com/coolbeans/meetcheck/pkg/watch"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "meetcheck",
		Short: "Meet data validator",
		Long: `Meetcheck validates a curated tree of meet.csv files against the
database schema before the data is admitted.

It checks:
  - The exact, positional meet.csv header contract
  - Per-row field grammars, including Country and Country-State codes
  - The restricted-character meet path naming convention`,
		Version: version,
	}

	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(watchCmd())
	rootCmd.AddCommand(statesCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <path>",
		Short: "Validate meet.csv files",
		Long: `Validate meet data. The path may be a single meet.csv, one meet
directory, or a tree root; trees are validated in parallel.

Example:
  meetcheck check meet-data/
  meetcheck check meet-data/wrpf/bob3 --rules rules.yaml --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rulesPath, _ := cmd.Flags().GetString("rules")
			workers, _ := cmd.Flags().GetInt("workers")
			asJSON, _ := cmd.Flags().GetBool("json")
			quiet, _ := cmd.Flags().GetBool("quiet")

			rules, err := loadRules(rulesPath)
			if err != nil {
				return err
			}

			result, err := runCheck(args[0], workers, rules)
			if err != nil {
				return err
			}

			for _, r := range result.Reports {
				errs, warns := r.CountMessages()
				if quiet || (errs == 0 && warns == 0) {
					continue
				}
				if asJSON {
					data, err := report.FormatJSON(r)
					if err != nil {
						return err
					}
					fmt.Println(string(data))
				} else {
					fmt.Print(report.FormatText(r))
				}
			}

			if !asJSON {
				fmt.Printf("Checked %d files: %d errors, %d warnings\n",
					len(result.Reports), result.Errors, result.Warnings)
			}
			if result.Errors > 0 {
				return fmt.Errorf("validation failed with %d errors", result.Errors)
			}
			return nil
		},
	}

	cmd.Flags().String("rules", "", "YAML rules file overriding the built-in field grammars")
	cmd.Flags().Int("workers", 0, "parallel validation workers (0 = one per CPU)")
	cmd.Flags().Bool("json", false, "emit per-file reports as JSON")
	cmd.Flags().Bool("quiet", false, "suppress per-file findings, print only the summary")
	return cmd
}

// runCheck dispatches on what the path names: a file, a meet directory, or
// a tree root.
func runCheck(path string, workers int, rules *check.Rules) (*check.TreeResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	if !info.IsDir() {
		r, err := check.CheckMeetFile(path, rules)
		if err != nil {
			return nil, err
		}
		result := &check.TreeResult{Reports: []*report.Report{r}}
		result.Errors, result.Warnings = r.CountMessages()
		return result, nil
	}

	// A directory holding meet.csv directly is a single meet.
	single := filepath.Join(path, "meet.csv")
	if _, err := os.Stat(single); err == nil {
		r, err := check.CheckMeetFile(single, rules)
		if err != nil {
			return nil, err
		}
		result := &check.TreeResult{Reports: []*report.Report{r}}
		result.Errors, result.Warnings = r.CountMessages()
		return result, nil
	}

	return check.CheckTree(path, workers, rules)
}

func watchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <root>",
		Short: "Re-validate meet.csv files as they change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rulesPath, _ := cmd.Flags().GetString("rules")

			rules, err := loadRules(rulesPath)
			if err != nil {
				return err
			}

			watcher, err := watch.New(args[0], rules)
			if err != nil {
				return err
			}
			watcher.OnResult(func(r *report.Report) {
				errs, warns := r.CountMessages()
				if errs == 0 && warns == 0 {
					fmt.Printf("%s: ok\n", r.Path())
					return
				}
				fmt.Print(report.FormatText(r))
			})

			if err := watcher.Start(); err != nil {
				return err
			}
			fmt.Printf("Watching %s (ctrl-c to stop)\n", args[0])

			interrupt := make(chan os.Signal, 1)
			signal.Notify(interrupt, os.Interrupt)
			<-interrupt

			return watcher.Stop()
		},
	}

	cmd.Flags().String("rules", "", "YAML rules file overriding the built-in field grammars")
	return cmd
}

func statesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "states [country]",
		Short: "List modeled countries or one country's subdivision codes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, country := range geo.ModeledCountries() {
					fmt.Printf("%-16s %d subdivisions\n", country, len(geo.SubdivisionsOf(country)))
				}
				return nil
			}

			country, err := geo.ParseCountry(args[0])
			if err != nil {
				return err
			}
			codes := geo.SubdivisionsOf(country)
			if codes == nil {
				return fmt.Errorf("country %s has no modeled subdivisions", country)
			}
			for _, code := range codes {
				fmt.Printf("%s-%s\n", country, code)
			}
			return nil
		},
	}
}

func loadRules(path string) (*check.Rules, error) {
	if path == "" {
		return check.DefaultRules(), nil
	}
	return check.LoadRules(path)
}
