package pipeline

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/wordfield/wordfield/pkg/cache"
	"github.com/wordfield/wordfield/pkg/engine"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func testWords() []engine.Word {
	return []engine.Word{
		{Text: "alpha", Weight: 10},
		{Text: "beta", Weight: 5},
		{Text: "gamma", Weight: 1},
	}
}

func TestValidateFormat(t *testing.T) {
	for _, f := range []string{"svg", "png", "pdf", "json"} {
		if err := ValidateFormat(f); err != nil {
			t.Errorf("ValidateFormat(%q) error: %v", f, err)
		}
	}
	if err := ValidateFormat("gif"); err == nil {
		t.Error("ValidateFormat(gif) should fail")
	}
}

func TestValidateStyle(t *testing.T) {
	if err := ValidateStyle("simple"); err != nil {
		t.Errorf("ValidateStyle(simple) error: %v", err)
	}
	if err := ValidateStyle("neon"); err == nil {
		t.Error("ValidateStyle(neon) should fail")
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{Text: "hello world hello"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error: %v", err)
	}

	if opts.Width != DefaultWidth || opts.Height != DefaultHeight {
		t.Errorf("viewport defaults not applied: %gx%g", opts.Width, opts.Height)
	}
	if opts.Strategy == "" || opts.Spiral == "" {
		t.Error("strategy and spiral defaults not applied")
	}
	if opts.Seed != DefaultSeed {
		t.Errorf("Seed = %d, want %d", opts.Seed, DefaultSeed)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v, want [svg]", opts.Formats)
	}
	if opts.Style != "simple" {
		t.Errorf("Style = %q, want simple", opts.Style)
	}
	if opts.Orientations == 0 {
		t.Error("rotation defaults not applied")
	}
}

func TestOptionsValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"no word source", Options{}},
		{"negative width", Options{Text: "x", Width: -1}},
		{"unknown spiral", Options{Text: "x", Spiral: "helix"}},
		{"unknown strategy", Options{Text: "x", Strategy: "corners"}},
		{"unknown format", Options{Text: "x", Formats: []string{"gif"}}},
		{"unknown style", Options{Text: "x", Style: "neon"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.opts.ValidateAndSetDefaults(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestRunnerExecute(t *testing.T) {
	runner := NewRunner(nil, nil, testLogger())
	defer runner.Close()

	opts := Options{
		Words:   testWords(),
		Formats: []string{FormatSVG, FormatJSON},
		Logger:  testLogger(),
	}

	result, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if result.Stats.WordCount != 3 {
		t.Errorf("WordCount = %d, want 3", result.Stats.WordCount)
	}
	if result.Stats.PlacedCount == 0 {
		t.Error("expected placed words")
	}
	if result.WordsHash == "" {
		t.Error("WordsHash should be set")
	}

	svg, ok := result.Artifacts[FormatSVG]
	if !ok || !strings.Contains(string(svg), "<svg") {
		t.Errorf("svg artifact missing or malformed")
	}
	if _, ok := result.Artifacts[FormatJSON]; !ok {
		t.Error("json artifact missing")
	}
}

func TestRunnerExecuteFromText(t *testing.T) {
	runner := NewRunner(nil, nil, testLogger())
	defer runner.Close()

	opts := Options{
		Text:   "go gopher go go words words",
		Logger: testLogger(),
	}

	result, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if result.Stats.WordCount == 0 {
		t.Fatal("counting should produce words")
	}
	// "go" occurs most often and should lead the list
	if result.Words[0].Text != "go" {
		t.Errorf("first word = %q, want go", result.Words[0].Text)
	}
}

func TestRunnerCaching(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	runner := NewRunner(fc, nil, testLogger())
	defer runner.Close()

	opts := Options{
		Words:   testWords(),
		Formats: []string{FormatSVG},
		Logger:  testLogger(),
	}

	ctx := context.Background()
	first, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("first Execute() error: %v", err)
	}
	if first.CacheInfo.LayoutHit || first.CacheInfo.RenderHit {
		t.Error("first run should not hit the cache")
	}

	second, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("second Execute() error: %v", err)
	}
	if !second.CacheInfo.LayoutHit {
		t.Error("second run should hit the layout cache")
	}
	if !second.CacheInfo.RenderHit {
		t.Error("second run should hit the artifact cache")
	}
	if string(first.Artifacts[FormatSVG]) != string(second.Artifacts[FormatSVG]) {
		t.Error("cached artifact should match the original")
	}

	// Refresh recomputes the layout
	opts.Refresh = true
	third, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("refresh Execute() error: %v", err)
	}
	if third.CacheInfo.LayoutHit {
		t.Error("refresh run should bypass the layout cache")
	}
}

func TestComputeLayoutDeterministic(t *testing.T) {
	opts := Options{Words: testWords(), Logger: testLogger()}
	opts.SetLayoutDefaults()
	opts.SetRenderDefaults()

	ctx := context.Background()
	a, err := ComputeLayout(ctx, testWords(), opts)
	if err != nil {
		t.Fatalf("ComputeLayout() error: %v", err)
	}
	b, err := ComputeLayout(ctx, testWords(), opts)
	if err != nil {
		t.Fatalf("ComputeLayout() error: %v", err)
	}

	if len(a.Words) != len(b.Words) {
		t.Fatalf("placed counts differ: %d vs %d", len(a.Words), len(b.Words))
	}
	for i := range a.Words {
		if a.Words[i] != b.Words[i] {
			t.Errorf("word %d differs: %+v vs %+v", i, a.Words[i], b.Words[i])
		}
	}
}

func TestRenderFromLayoutData(t *testing.T) {
	opts := Options{Words: testWords(), Logger: testLogger()}
	opts.SetLayoutDefaults()
	opts.SetRenderDefaults()

	ctx := context.Background()
	layout, err := ComputeLayout(ctx, testWords(), opts)
	if err != nil {
		t.Fatalf("ComputeLayout() error: %v", err)
	}
	data, err := Render(ctx, layout, Options{Formats: []string{FormatJSON}, Logger: testLogger()})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	artifacts, err := RenderFromLayoutData(ctx, data[FormatJSON], Options{
		Formats: []string{FormatSVG},
		Logger:  testLogger(),
	})
	if err != nil {
		t.Fatalf("RenderFromLayoutData() error: %v", err)
	}
	if !strings.Contains(string(artifacts[FormatSVG]), "<svg") {
		t.Error("re-rendered svg missing")
	}
}

func TestRenderFromLayoutDataInvalid(t *testing.T) {
	_, err := RenderFromLayoutData(context.Background(), []byte("{"), Options{Logger: testLogger()})
	if err == nil {
		t.Error("invalid layout data should fail")
	}
}
