package engine_test

import (
	"context"
	"fmt"

	"github.com/wordfield/wordfield/pkg/engine"
	"github.com/wordfield/wordfield/pkg/geom"
	"github.com/wordfield/wordfield/pkg/placement"
)

func ExampleEngine_Layout() {
	// A stub measurer sizing each word by its text length.
	measurer := engine.MeasurerFunc(func(text string, fontSize float64, family string, rotation float64) geom.Rect {
		w := float64(len(text)) * fontSize * 0.6
		h := fontSize
		return geom.Rect{Left: -w / 2, Right: w / 2, Top: -h / 2, Bottom: h / 2}
	})

	strategy, err := placement.New("center", 1)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	eng := engine.New(measurer,
		engine.WithStrategy(strategy),
		engine.WithRotation(placement.Rotation{Orientations: 1}),
	)

	words := []engine.Word{
		{Text: "cloud", Weight: 10},
		{Text: "word", Weight: 5},
	}

	res, err := eng.Layout(context.Background(), words, 800, 600)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	for _, pw := range res.Placed {
		fmt.Printf("%s: font size %.0f\n", pw.Text, pw.FontSize)
	}
	fmt.Printf("discarded: %d\n", len(res.Discarded))
	// Output:
	// cloud: font size 60
	// word: font size 30
	// discarded: 0
}
