package words

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/wordfield/wordfield/pkg/engine"
)

// CountOptions controls plain-text frequency counting.
type CountOptions struct {
	// Top keeps only the N most frequent words. Zero keeps all.
	Top int

	// MinLength drops tokens shorter than this many runes.
	MinLength int

	// StopWords are filtered out in addition to the built-in English
	// stop list. Comparison happens after case folding.
	StopWords []string

	// KeepCase disables case folding, counting "Go" and "go" separately.
	KeepCase bool

	// NoDefaultStopWords disables the built-in English stop list.
	NoDefaultStopWords bool
}

// Count tokenizes plain text and returns one Word per distinct token,
// weighted by its occurrence count. The result is sorted by descending
// weight with ties broken alphabetically, so it is deterministic for a
// given input.
func Count(r io.Reader, opts CountOptions) ([]engine.Word, error) {
	if opts.MinLength <= 0 {
		opts.MinLength = 2
	}

	stop := make(map[string]struct{})
	if !opts.NoDefaultStopWords {
		for _, s := range englishStopWords {
			stop[s] = struct{}{}
		}
	}
	folder := cases.Fold()
	for _, s := range opts.StopWords {
		stop[folder.String(s)] = struct{}{}
	}

	counts := make(map[string]float64)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		for _, tok := range splitToken(scanner.Text()) {
			if len([]rune(tok)) < opts.MinLength {
				continue
			}
			key := tok
			if !opts.KeepCase {
				key = folder.String(tok)
			}
			if _, skip := stop[folder.String(tok)]; skip {
				continue
			}
			counts[key]++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan input: %w", err)
	}

	list := make([]engine.Word, 0, len(counts))
	for text, n := range counts {
		list = append(list, engine.Word{Text: text, Weight: n})
	}
	slices.SortFunc(list, func(a, b engine.Word) int {
		if c := cmp.Compare(b.Weight, a.Weight); c != 0 {
			return c
		}
		return strings.Compare(a.Text, b.Text)
	})

	if opts.Top > 0 && len(list) > opts.Top {
		list = list[:opts.Top]
	}
	return list, nil
}

// splitToken strips punctuation around and inside a whitespace-separated
// chunk, keeping letters, digits and in-word apostrophes and hyphens.
func splitToken(chunk string) []string {
	parts := strings.FieldsFunc(chunk, func(r rune) bool {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return false
		}
		return r != '\'' && r != '-'
	})
	toks := parts[:0]
	for _, p := range parts {
		if p = strings.Trim(p, "'-"); p != "" {
			toks = append(toks, p)
		}
	}
	return toks
}

// NewCaser returns a title caser for the given BCP 47 tag, falling back
// to English when the tag does not parse. Used by callers that want
// display-cased labels after counting.
func NewCaser(tag string) cases.Caser {
	t, err := language.Parse(tag)
	if err != nil {
		t = language.English
	}
	return cases.Title(t)
}
