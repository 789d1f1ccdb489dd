package lessons

import (
	"fmt"
	"io"
)

// Loops covers every shape of Go's single loop keyword, for.
func Loops(w io.Writer) {
	/*
	 * for i := 0; i < 10; i++ { ... }
	 *
	 * Three parts:
	 *   - init, runs once:                 i := 0
	 *   - condition, checked before each pass: i < 10
	 *   - post, runs after each pass:      i++
	 */

	for i := 0; i < 10; i++ {
		fmt.Fprintf(w, "Loops - Basic for loop: %d\n", i)
	}

	// The post statement can be any statement: here every other number.
	for i := 0; i < 10; i += 2 {
		fmt.Fprintf(w, "Loops - Step over for loop: %d\n", i)
	}

	// Drop init and post and for becomes a while loop.
	i := 0
	for i < 10 {
		fmt.Fprintf(w, "Loops - While loop: %d\n", i)

		i++
	}

	/*
	 * Go has no do-while. A bare for with the test at the bottom runs the
	 * body once before checking anything.
	 */
	i = 0
	for {
		fmt.Fprintf(w, "Loops - Do while loop: %d\n", i)

		i++
		if i != 1 {
			break
		}
	}

	// break leaves the loop entirely, continue skips to the next pass.
	for i := 0; i < 100; i++ {
		// No remainder when dividing by 2 means i is even.
		if i%2 == 0 {
			continue
		}

		// Only odd numbers reach this point.

		if i == 7 {
			break
		}

		fmt.Fprintf(w, "Loops - Break/Continue loop: %d\n", i)
	}

	// Since Go 1.22 an integer can be ranged over directly.
	for n := range 3 {
		fmt.Fprintf(w, "Loops - Range over int: %d\n", n)
	}
}
