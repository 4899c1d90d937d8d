package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/c360studio/lv2ttl/config"
	"github.com/c360studio/lv2ttl/generator"
)

func generateCmd(flags *globalFlags) *cobra.Command {
	var (
		outDir       string
		toStdout     bool
		jobs         int
		indentSize   int
		startIndent  int
		noBlankLines bool
	)

	cmd := &cobra.Command{
		Use:   "generate [files|dirs|globs...]",
		Short: "Write the manifest of each plugin description",
		Long: `Generate writes "<name>.ttl" for every description file given.
Directories are searched recursively and doublestar globs (e.g.
"plugins/**/*.yaml") are expanded. Without arguments the current
directory is used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, cfg, err := setup(cmd, flags)
			if err != nil {
				return err
			}

			fs := cmd.Flags()
			if fs.Changed("out-dir") {
				cfg.Output.Dir = outDir
			}
			if fs.Changed("jobs") {
				cfg.Output.Jobs = jobs
			}
			if fs.Changed("indent-size") {
				cfg.Render.IndentSize = indentSize
			}
			if fs.Changed("start-indent") {
				cfg.Render.StartIndentLevel = startIndent
			}
			if noBlankLines {
				cfg.Render.BlankLineBetweenStatements = false
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			renderer, err := newRenderer(cfg)
			if err != nil {
				return err
			}
			g, err := generator.New(generator.Config{
				Renderer: renderer,
				OutDir:   cfg.Output.Dir,
				Exclude:  []string{config.ProjectConfigFile},
				Logger:   logger,
			})
			if err != nil {
				return err
			}

			if len(args) == 0 {
				args = []string{"."}
			}

			if toStdout {
				sources, err := generator.Expand(args, []string{config.ProjectConfigFile})
				if err != nil {
					return err
				}
				if len(sources) == 0 {
					return generator.ErrNoSources
				}
				for _, source := range sources {
					doc, err := g.RenderFile(source)
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), doc)
				}
				return nil
			}

			results, err := g.GenerateAll(cmd.Context(), args, cfg.Output.Jobs)
			if err != nil {
				return err
			}
			for _, res := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", res.Source, res.Output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out-dir", "o", "", "Directory for the generated manifests (default: next to each description)")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "Print the manifests instead of writing files")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "Descriptions processed in parallel (0 = number of CPUs)")
	cmd.Flags().IntVar(&indentSize, "indent-size", 0, "Spaces per indentation level")
	cmd.Flags().IntVar(&startIndent, "start-indent", 0, "Indentation level of top-level statements")
	cmd.Flags().BoolVar(&noBlankLines, "no-blank-lines", false, "Do not separate top-level statements with an empty line")

	return cmd
}
