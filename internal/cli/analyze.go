package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lexilens/lexilens/internal/classifier"
	"github.com/lexilens/lexilens/internal/extract"
	"github.com/lexilens/lexilens/internal/gemini"
	"github.com/lexilens/lexilens/internal/model"
	"github.com/lexilens/lexilens/internal/rules"
)

var (
	analyzeRules  string
	analyzeHTML   bool
	analyzeEngine string
	analyzeFormat string
)

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVar(&analyzeRules, "rules", "", "Path to ruleset YAML (default: built-in table)")
	analyzeCmd.Flags().BoolVar(&analyzeHTML, "html", false, "Treat input as webpage HTML and extract text first")
	analyzeCmd.Flags().StringVar(&analyzeEngine, "engine", "rules", "Analysis engine (rules|gemini)")
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "text", "Output format (text|json)")
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Analyze terms-of-service text for user risks",
	Long: "Reads document text from a file (or stdin when omitted), classifies it\n" +
		"against the risk rule table, and prints 5 risk points plus a verdict.\n\n" +
		"With --engine gemini the text is sent to the generative-language API\n" +
		"instead; set " + geminiKeyEnv + " for the API key.",
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	var input []byte
	var err error
	if len(args) == 1 {
		input, err = os.ReadFile(args[0])
		if err != nil {
			return err
		}
	} else {
		input, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
	}

	text := string(input)
	if analyzeHTML {
		text, err = extract.ReadableText(strings.NewReader(text))
		if err != nil {
			return fmt.Errorf("extract html: %w", err)
		}
	}

	var result model.Result
	switch analyzeEngine {
	case "rules":
		rs, err := rules.Load(analyzeRules)
		if err != nil {
			return err
		}
		result = classifier.New(rs).Analyze(text)

	case "gemini":
		client := gemini.New(geminiConfigFromFlags())
		result, err = client.Analyze(context.Background(), text)
		if err != nil {
			return fmt.Errorf("gemini analysis: %w", err)
		}

	default:
		return fmt.Errorf("unknown engine %q", analyzeEngine)
	}

	switch analyzeFormat {
	case "json":
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	default:
		printResult(result)
	}
	return nil
}

// printResult renders a Result for terminal reading.
func printResult(r model.Result) {
	fmt.Printf("Verdict: %s (%s)\n", r.Verdict.Title, r.Verdict.Color)
	fmt.Printf("  %s\n\n", r.Verdict.Reason)
	for i, p := range r.Points {
		fmt.Printf("%d. [%s] %s (%s)\n", i+1, p.Severity, p.Title, p.Type)
		explanation := p.Explanation
		if explanation == "" {
			explanation = p.ExplanationEN
		}
		if explanation != "" {
			fmt.Printf("   %s\n", explanation)
		}
	}
}
