package handlers

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/razmans/devlog/internal/aiclient"
	"github.com/razmans/devlog/internal/backup"
	"github.com/razmans/devlog/internal/cli"
	"github.com/razmans/devlog/internal/report"
	"github.com/razmans/devlog/internal/service"
)

// CompileOptions controls evaluation compilation
type CompileOptions struct {
	Year    string // Evaluation year; defaults to the settings year
	AI      bool   // Use the external completion service instead of the template
	Out     bool   // Write to the conventional .txt file instead of stdout
	OutPath string // Explicit output path (implies writing to file)
}

// Compile renders the year's entries into an evaluation document
func Compile(deps *cli.Deps, opts CompileOptions) {
	cfg := deps.Services.Settings.Get()

	year := opts.Year
	if year == "" {
		year = cfg.Year
	}

	var text string
	var err error
	if opts.AI {
		text, err = deps.Services.Compile.AI(context.Background(), cfg, year)
	} else {
		text, err = deps.Services.Compile.Template(cfg, year)
	}
	if err != nil {
		printCompileError(deps, err, year)
		deps.Exit(1)
		return
	}

	if !opts.Out && opts.OutPath == "" {
		_, _ = fmt.Fprintln(deps.Stdout, text)
		return
	}

	path := opts.OutPath
	if path == "" {
		path = backup.EvaluationFilename(cfg, year)
	}

	doc := backup.EvaluationDocument(text, cfg, year, deps.Now())
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to write %s: %v\n", path, err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Wrote %s\n", path)
}

// ShowPrompt prints the prompt AI compilation would send, without calling the
// external service
func ShowPrompt(deps *cli.Deps, year string) {
	cfg := deps.Services.Settings.Get()
	if year == "" {
		year = cfg.Year
	}

	prompt, err := deps.Services.Compile.Prompt(cfg, year)
	if err != nil {
		printCompileError(deps, err, year)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, prompt)
}

func printCompileError(deps *cli.Deps, err error, year string) {
	var apiErr *aiclient.APIError
	switch {
	case errors.Is(err, report.ErrNoEntries):
		_, _ = fmt.Fprintf(deps.Stderr, "Error: No entries found for %s\n", year)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Pick another year with --year, or log entries first")
	case errors.Is(err, service.ErrMissingAPIKey):
		_, _ = fmt.Fprintln(deps.Stderr, "Error: API key is required for AI compilation")
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Set it with 'devlog settings set --api-key <key>'")
	case errors.As(err, &apiErr):
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", apiErr)
	default:
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
	}
}
