package lessons

import (
	"fmt"
	"io"
)

// Arrays indexes and iterates a fixed-size array.
func Arrays(w io.Writer) {
	/*
	 * An array's length is part of its type: [10]int and [11]int are
	 * different types, and the length never changes. Slices ([]int) are
	 * the growable view most Go code uses instead.
	 */

	myArray := [10]int{20, 21, 22, 23, 24, 25, 26, 27, 28, 29}

	fmt.Fprintf(w, "Arrays - First value: %d\n", myArray[0])
	fmt.Fprintf(w, "Arrays - Second value: %d\n", myArray[1])

	// len keeps the index in bounds. Going past it panics at run time.
	for i := 0; i < len(myArray); i++ {
		fmt.Fprintf(w, "Arrays - Standard for loop: %d\n", myArray[i])
	}

	// range yields index and value; the index is discarded with _.
	for _, val := range myArray {
		fmt.Fprintf(w, "Arrays - Range loop: %d\n", val)
	}

	// Arrays are values: assigning copies every element.
	copied := myArray
	copied[0] = 99
	fmt.Fprintf(w, "Arrays - Original after copy changed: %d\n", myArray[0])

	// A slice of the array shares its memory.
	view := myArray[:2]
	view[0] = 99
	fmt.Fprintf(w, "Arrays - Original after slice changed: %d\n", myArray[0])
}
