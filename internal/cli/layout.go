package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wordfield/wordfield/pkg/cloud"
	"github.com/wordfield/wordfield/pkg/pipeline"
	"github.com/wordfield/wordfield/pkg/words"
)

// layoutCommand creates the layout command for computing cloud layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	opts := pipeline.Options{}
	opts.SetLayoutDefaults()

	cmd := &cobra.Command{
		Use:   "layout [words.json]",
		Short: "Compute a word-cloud layout from a word list",
		Long: `Compute a word-cloud layout from a word list.

The layout command takes a words.json or words.toml file (produced by
'count') and places every word collision-free on a spiral. The output is
a layout.json file that can be rendered to SVG/PNG/PDF using the
'render' command.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadProjectConfig()
			if err != nil {
				return err
			}
			applyProjectConfig(cmd, cfg, &opts)
			return c.runLayout(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even if cached")

	// Layout flags
	cmd.Flags().Float64Var(&opts.Width, "width", opts.Width, "target viewport width")
	cmd.Flags().Float64Var(&opts.Height, "height", opts.Height, "target viewport height")
	cmd.Flags().StringVar(&opts.Strategy, "strategy", opts.Strategy, "placement strategy: random (default), center")
	cmd.Flags().StringVar(&opts.Spiral, "spiral", opts.Spiral, "spiral: archimedean (default), rectangular")
	cmd.Flags().Float64Var(&opts.RotationFrom, "rotation-from", opts.RotationFrom, "minimum rotation angle in degrees")
	cmd.Flags().Float64Var(&opts.RotationTo, "rotation-to", opts.RotationTo, "maximum rotation angle in degrees")
	cmd.Flags().IntVar(&opts.Orientations, "orientations", opts.Orientations, "number of rotation steps")
	cmd.Flags().Float64Var(&opts.MaxFontSize, "max-font-size", opts.MaxFontSize, "font size of the heaviest word")
	cmd.Flags().StringVar(&opts.FontFamily, "font-family", opts.FontFamily, "font family for measuring and rendering")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", opts.Seed, "random seed for reproducible layouts")
	cmd.Flags().StringVar(&opts.Style, "style", opts.Style, "visual style recorded in the layout: simple (default), ink")

	return cmd
}

// runLayout loads the word list, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	list, err := words.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load words %s: %w", input, err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Placing %d words...", len(list)))
	spinner.Start()

	layout, cacheHit, err := runner.ComputeLayoutWithCacheInfo(ctx, list, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		base = strings.TrimSuffix(base, ".words")
		outputPath = base + ".layout.json"
	}

	if err := cloud.WriteLayoutFile(layout, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(len(layout.Words), len(layout.Discarded), cacheHit)
	printNewline()
	printNextStep("Render", "wordfield render "+outputPath)

	return nil
}
