package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wordfield/wordfield/pkg/httputil"
	"github.com/wordfield/wordfield/pkg/pipeline"
	"github.com/wordfield/wordfield/pkg/words"
)

// countOptions holds flags for the count command.
type countOptions struct {
	url         string
	output      string
	interactive bool
	noCache     bool
	refresh     bool
	stopWords   []string
}

// countCommand creates the count command for building a word list from text.
func (c *CLI) countCommand() *cobra.Command {
	var co countOptions
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "count [text.txt]",
		Short: "Count word frequencies in text",
		Long: `Count word frequencies in text.

The count command reads plain text from a file, from stdin ("-"), or from
a URL (--url) and produces a weighted word list. Tokens are lowercased
(unless --keep-case), filtered against a stop word list, and ranked by
frequency. The output is a words.json file consumed by the 'layout' command.

URL fetches are cached locally for faster subsequent runs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) > 0 {
				input = args[0]
			}
			if input == "" && co.url == "" {
				input = "-"
			}
			opts.StopWords = co.stopWords
			return c.runCount(cmd.Context(), input, opts, co)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&co.output, "output", "o", "", "output file (default: <input>.words.json, or words.json)")
	cmd.Flags().BoolVar(&co.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&co.refresh, "refresh", false, "bypass the URL cache and refetch")

	// Count flags
	cmd.Flags().StringVar(&co.url, "url", "", "fetch text from a URL instead of a file")
	cmd.Flags().IntVar(&opts.Top, "top", pipeline.DefaultTop, "keep only the N most frequent words")
	cmd.Flags().IntVar(&opts.MinLength, "min-len", 0, "minimum word length (default 2)")
	cmd.Flags().StringSliceVar(&co.stopWords, "stop-words", nil, "additional stop words to filter")
	cmd.Flags().BoolVar(&opts.KeepCase, "keep-case", false, "preserve the original casing of words")
	cmd.Flags().BoolVarP(&co.interactive, "interactive", "i", false, "review the word list interactively")

	return cmd
}

// runCount reads the text source, counts words, and writes the word list.
func (c *CLI) runCount(ctx context.Context, input string, opts pipeline.Options, co countOptions) error {
	text, sourceName, err := c.readText(ctx, input, co)
	if err != nil {
		return err
	}

	list, err := words.Count(strings.NewReader(text), opts.CountOptions())
	if err != nil {
		return fmt.Errorf("count words: %w", err)
	}
	if len(list) == 0 {
		return fmt.Errorf("no words found in %s", sourceName)
	}

	if co.interactive {
		selected, err := runWordPicker(list)
		if err != nil {
			return err
		}
		if selected == nil {
			printInfo("Aborted, nothing written")
			return nil
		}
		list = selected
	}

	outputPath := co.output
	if outputPath == "" {
		outputPath = defaultWordsPath(input, co.url)
	}

	if err := words.WriteFile(outputPath, list); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Counted %d words from %s", len(list), sourceName)
	printFile(outputPath)
	printNewline()
	printNextStep("Lay out", "wordfield layout "+outputPath)

	return nil
}

// readText resolves the text source: URL, stdin, or file.
func (c *CLI) readText(ctx context.Context, input string, co countOptions) (text, sourceName string, err error) {
	if co.url != "" {
		cc, cerr := newCache(co.noCache)
		if cerr != nil {
			return "", "", cerr
		}
		defer cc.Close()

		client := httputil.NewClient(httputil.WithCache(cc, nil))

		spinner := newSpinnerWithContext(ctx, "Fetching "+co.url+"...")
		spinner.Start()
		data, ferr := client.FetchText(ctx, co.url, co.refresh)
		if ferr != nil {
			spinner.StopWithError("Fetch failed")
			return "", "", fmt.Errorf("fetch %s: %w", co.url, ferr)
		}
		spinner.Stop()
		return string(data), co.url, nil
	}

	if input == "-" {
		data, rerr := io.ReadAll(os.Stdin)
		if rerr != nil {
			return "", "", fmt.Errorf("read stdin: %w", rerr)
		}
		return string(data), "stdin", nil
	}

	data, rerr := os.ReadFile(input)
	if rerr != nil {
		return "", "", fmt.Errorf("read %s: %w", input, rerr)
	}
	return string(data), input, nil
}

// defaultWordsPath derives the output path from the input source.
func defaultWordsPath(input, url string) string {
	if input == "" || input == "-" || url != "" {
		return "words.json"
	}
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + ".words.json"
}
