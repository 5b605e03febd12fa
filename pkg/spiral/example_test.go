package spiral_test

import (
	"fmt"

	"github.com/wordfield/wordfield/pkg/spiral"
)

func ExampleArchimedean() {
	for _, attempt := range []int{0, 10, 20} {
		x, y := spiral.Archimedean(attempt)
		fmt.Printf("attempt %d: (%.2f, %.2f)\n", attempt, x, y)
	}
	// Output:
	// attempt 0: (0.00, 0.00)
	// attempt 10: (0.54, 0.84)
	// attempt 20: (-0.83, 1.82)
}

func ExampleRectangular() {
	for attempt := 0; attempt <= 4; attempt++ {
		x, y := spiral.Rectangular(attempt)
		fmt.Printf("attempt %d: (%.0f, %.0f)\n", attempt, x, y)
	}
	// Output:
	// attempt 0: (0, 0)
	// attempt 1: (1, 0)
	// attempt 2: (1, 1)
	// attempt 3: (0, 1)
	// attempt 4: (-1, 1)
}

func ExampleRegister() {
	// Register a custom spiral that moves straight along the x axis.
	spiral.Register("line", func(attempt int) (x, y float64) {
		return float64(attempt), 0
	})

	fn, err := spiral.Lookup("line")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	x, y := fn(3)
	fmt.Printf("(%.0f, %.0f)\n", x, y)
	// Output:
	// (3, 0)
}
