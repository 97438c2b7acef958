package cmd

import (
	"github.com/razmans/devlog/internal/cli/handlers"
	"github.com/spf13/cobra"
)

// compileCmd represents the compile command
var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Compile a performance self-assessment",
	Long: `Compile a year-end performance self-assessment from logged entries.

By default a structured template is printed to stdout. With --ai the
entries are sent to the external completion service instead, which
requires an API key (devlog settings set --api-key ...).

Usage:
  devlog compile                      Template assessment for the configured year
  devlog compile --year 2025          Assessment for another year
  devlog compile --ai                 AI-written assessment
  devlog compile --out                Write Performance_Eval_<Name>_<year>.txt
  devlog compile --out-file eval.txt  Write to a specific file
  devlog compile --show-prompt        Print the AI prompt without sending it`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		year, _ := cmd.Flags().GetString("year")
		ai, _ := cmd.Flags().GetBool("ai")
		out, _ := cmd.Flags().GetBool("out")
		outFile, _ := cmd.Flags().GetString("out-file")
		showPrompt, _ := cmd.Flags().GetBool("show-prompt")

		if showPrompt {
			handlers.ShowPrompt(deps, year)
			return
		}

		handlers.Compile(deps, handlers.CompileOptions{
			Year:    year,
			AI:      ai,
			Out:     out,
			OutPath: outFile,
		})
	},
}

func init() {
	compileCmd.Flags().StringP("year", "y", "", "Year to compile (YYYY, default: configured year)")
	compileCmd.Flags().Bool("ai", false, "Compile via the external completion service")
	compileCmd.Flags().Bool("out", false, "Write to the conventional evaluation file instead of stdout")
	compileCmd.Flags().String("out-file", "", "Write to the given file")
	compileCmd.Flags().Bool("show-prompt", false, "Print the AI prompt without calling the service")
}
