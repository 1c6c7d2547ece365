package main

import (
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"csfuse/fusion"
)

var (
	rootFlag             string
	recursiveFlag        bool
	annotateFlag         bool
	includeGeneratedFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "csfuse <input-dir> [output-file]",
	Short: "csfuse fuses a directory of C# sources into a single file",
	Long: `csfuse parses every C# source file under a directory, flattens all
namespace scopes into one root namespace, deduplicates and orders the using
directives, and writes a single fused source file with per-declaration
provenance comments.`,
	Version:       fusion.Version,
	Args:          argCount,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runFuse,
}

func init() {
	rootCmd.Flags().StringVar(&rootFlag, "root", "", "force the root namespace instead of inferring it")
	rootCmd.Flags().BoolVar(&recursiveFlag, "recursive", true, "descend into subdirectories")
	rootCmd.Flags().BoolVar(&annotateFlag, "annotate", true, "prefix each declaration with its originating file name")
	rootCmd.Flags().BoolVar(&includeGeneratedFlag, "include-generated", false, "fuse generated files (*.g.cs, *.Designer.cs, ...) as well")
}

func argCount(cmd *cobra.Command, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return &fusion.UsageError{Msg: "usage: csfuse <input-dir> [output-file] [--root=<name>]"}
	}
	return nil
}

func runFuse(cmd *cobra.Command, args []string) error {
	options, err := buildOptions(cmd, args)
	if err != nil {
		return err
	}

	result, err := fusion.New().Fuse(cmd.Context(), options)
	if err != nil {
		return err
	}

	green := color.New(color.FgGreen).SprintFunc()
	cmd.Printf("%s fused %d files into %s\n", green("ok:"), result.Files, result.OutputPath)
	cmd.Printf("  root namespace: %s\n", result.RootNamespace)
	cmd.Printf("  declarations:   %d\n", result.Declarations)
	cmd.Printf("  imports:        %d\n", result.Imports)
	cmd.Printf("  fingerprint:    %016x\n", result.Fingerprint)
	return nil
}

// buildOptions merges command-line arguments with the optional .csfuse.yaml
// found in the input directory. Explicit flags win over file values.
func buildOptions(cmd *cobra.Command, args []string) (fusion.Options, error) {
	options := fusion.Options{
		InputDir:         args[0],
		Root:             rootFlag,
		Recursive:        recursiveFlag,
		Annotate:         annotateFlag,
		IncludeGenerated: includeGeneratedFlag,
		Banner: fusion.Banner{
			Tool:        fusion.Tool,
			Version:     fusion.Version,
			GeneratedAt: time.Now(),
		},
	}
	if len(args) > 1 {
		options.OutputPath = args[1]
	}

	config, err := fusion.LoadConfig(cmd.Context(), options.InputDir)
	if err != nil {
		return options, err
	}
	if options.Root == "" {
		options.Root = config.Root
	}
	if options.OutputPath == "" {
		options.OutputPath = config.Output
	}
	if config.Recursive != nil && !cmd.Flags().Changed("recursive") {
		options.Recursive = *config.Recursive
	}
	if config.Annotate != nil && !cmd.Flags().Changed("annotate") {
		options.Annotate = *config.Annotate
	}
	if config.IncludeGenerated != nil && !cmd.Flags().Changed("include-generated") {
		options.IncludeGenerated = *config.IncludeGenerated
	}
	options.ExcludeSuffixes = config.ExcludeSuffixes
	return options, nil
}
