package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lexilens/lexilens/internal/rules"
)

var (
	rulesPath   string
	rulesFormat string
)

func init() {
	rootCmd.AddCommand(rulesCmd)
	rulesCmd.PersistentFlags().StringVar(&rulesPath, "rules", "", "Path to ruleset YAML (default: built-in table)")
	rulesCmd.AddCommand(rulesListCmd)
	rulesCmd.AddCommand(rulesCheckCmd)
	rulesListCmd.Flags().StringVarP(&rulesFormat, "format", "f", "text", "Output format (text|json)")
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect and validate the risk rule table",
}

var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the active rule table",
	RunE: func(cmd *cobra.Command, args []string) error {
		rs, err := rules.Load(rulesPath)
		if err != nil {
			return err
		}

		if rulesFormat == "json" {
			out, err := json.MarshalIndent(rs.Def(), "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSEVERITY\tTYPE\tTITLE")
		for _, r := range rs.Rules() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.ID, r.Severity, r.Type, r.Title)
		}
		w.Flush()

		for _, ov := range rs.Overrides() {
			fmt.Printf("\noverride: %s suppresses %s\n", ov.When, ov.Remove)
		}
		return nil
	},
}

var rulesCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a ruleset file",
	Long: "Compiles the ruleset and reports the first problem found: duplicate ids,\n" +
		"unknown severities, empty pattern groups, or overrides referencing\n" +
		"undeclared rules. Exit code 0 means the file is usable.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Load falls back to defaults on a missing file; checking a path
		// that does not exist is an error here.
		if _, err := os.Stat(args[0]); err != nil {
			return err
		}
		rs, err := rules.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s: ok (%d rules, %d overrides, %d fillers)\n",
			args[0], len(rs.Rules()), len(rs.Overrides()), len(rs.Fillers()))
		return nil
	},
}
