package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/mark3labs/rddi/internal/rdd"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var renderFlags struct {
	style string
}

var renderCmd = &cobra.Command{
	Use:   "render <answers.yml>",
	Short: "Render command lines from a saved answers file",
	Long: `Render rdd command lines from a YAML answers file without prompting.

The file holds the fields of a wizard session, for example:

  mode: client
  progress: "5"
  hash: md5
  source: /dev/sda
  host: backup
  port: "4832"
  destination: sda.img

The answers are checked against the same rules the wizard enforces.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderFlags.style, "style", "s", "both", "Which command line to print: short, long or both")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	answers, err := loadAnswers(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch renderFlags.style {
	case "short":
		fmt.Fprintln(out, rdd.RenderStyle(answers, cfg.Program, rdd.Short))
	case "long":
		fmt.Fprintln(out, rdd.RenderStyle(answers, cfg.Program, rdd.Long))
	case "both":
		short, long := rdd.Render(answers, cfg.Program)
		fmt.Fprintf(out, "Command lines:\n\n\t%s\n\n\t%s\n", short, long)
	default:
		return fmt.Errorf("invalid style %q: must be short, long or both", renderFlags.style)
	}
	return nil
}

// loadAnswers reads and validates a YAML answers file.
func loadAnswers(path string) (rdd.Configuration, error) {
	var answers rdd.Configuration

	data, err := os.ReadFile(path)
	if err != nil {
		return answers, fmt.Errorf("failed to read answers: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&answers); err != nil {
		return answers, fmt.Errorf("failed to parse answers %s: %w", path, err)
	}
	if err := answers.Validate(); err != nil {
		return answers, fmt.Errorf("invalid answers in %s: %w", path, err)
	}
	return answers, nil
}
