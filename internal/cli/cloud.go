package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wordfield/wordfield/pkg/pipeline"
)

// cloudCommand creates the cloud command, a one-shot pipeline from text
// to rendered output.
func (c *CLI) cloudCommand() *cobra.Command {
	var (
		formatsStr string
		co         countOptions
	)
	opts := pipeline.Options{}
	opts.SetLayoutDefaults()

	cmd := &cobra.Command{
		Use:   "cloud [text.txt]",
		Short: "Build a word cloud from text in one step",
		Long: `Build a word cloud from text in one step.

The cloud command runs the complete pipeline: it counts word frequencies,
computes a collision-free layout, and renders the result. It is equivalent
to running 'count', 'layout', and 'render' in sequence.

Text is read from a file, from stdin ("-"), or from a URL (--url).

Results are cached locally for faster subsequent runs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) > 0 {
				input = args[0]
			}
			if input == "" && co.url == "" {
				input = "-"
			}
			cfg, err := loadProjectConfig()
			if err != nil {
				return err
			}
			applyProjectConfig(cmd, cfg, &opts)
			opts.Formats = parseFormats(formatsStr)
			opts.StopWords = co.stopWords
			return c.runCloud(cmd.Context(), input, opts, co)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&co.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&co.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&co.refresh, "refresh", false, "bypass caches and recompute")

	// Count flags
	cmd.Flags().StringVar(&co.url, "url", "", "fetch text from a URL instead of a file")
	cmd.Flags().IntVar(&opts.Top, "top", pipeline.DefaultTop, "keep only the N most frequent words")
	cmd.Flags().IntVar(&opts.MinLength, "min-len", 0, "minimum word length (default 2)")
	cmd.Flags().StringSliceVar(&co.stopWords, "stop-words", nil, "additional stop words to filter")
	cmd.Flags().BoolVar(&opts.KeepCase, "keep-case", false, "preserve the original casing of words")

	// Layout flags
	cmd.Flags().Float64Var(&opts.Width, "width", opts.Width, "target viewport width")
	cmd.Flags().Float64Var(&opts.Height, "height", opts.Height, "target viewport height")
	cmd.Flags().StringVar(&opts.Strategy, "strategy", opts.Strategy, "placement strategy: random (default), center")
	cmd.Flags().StringVar(&opts.Spiral, "spiral", opts.Spiral, "spiral: archimedean (default), rectangular")
	cmd.Flags().Float64Var(&opts.MaxFontSize, "max-font-size", opts.MaxFontSize, "font size of the heaviest word")
	cmd.Flags().StringVar(&opts.FontFamily, "font-family", opts.FontFamily, "font family for measuring and rendering")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", opts.Seed, "random seed for reproducible layouts")

	// Render flags
	cmd.Flags().StringVar(&opts.Style, "style", opts.Style, "visual style: simple (default), ink")
	cmd.Flags().Float64Var(&opts.Scale, "scale", opts.Scale, "raster scale for PNG output")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")

	return cmd
}

// runCloud runs the full pipeline and writes artifacts.
func (c *CLI) runCloud(ctx context.Context, input string, opts pipeline.Options, co countOptions) error {
	text, sourceName, err := c.readText(ctx, input, co)
	if err != nil {
		return err
	}
	opts.Text = text
	opts.Refresh = co.refresh
	opts.Logger = c.Logger

	runner, err := c.newRunner(co.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Building cloud from "+sourceName+"...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Cloud failed")
		return fmt.Errorf("build cloud: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	return writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		input:     defaultCloudBase(input, co.url),
		output:    co.output,
		placed:    result.Stats.PlacedCount,
		discarded: result.Stats.DiscardedCount,
		cacheHit:  result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit,
	})
}

// defaultCloudBase derives a base path for artifacts when no output is set.
func defaultCloudBase(input, url string) string {
	if input == "" || input == "-" || url != "" {
		return "cloud.out"
	}
	return input
}
