package lessons

import (
	"fmt"
	"io"
)

// Operators applies the arithmetic and assignment operators to one number.
func Operators(w io.Writer) {
	/*
	 * =  assignment
	 * +  -  *  /  arithmetic
	 * %  remainder
	 *
	 * op= applies the operator and assigns: num += 3 is num = num + 3.
	 *
	 * ++ and -- are statements in Go, not expressions. `x := num++` does
	 * not compile and there is no prefix form.
	 */

	num := 5
	fmt.Fprintf(w, "Operators - Num: %d\n", num)

	// Add 3
	num = num + 3
	fmt.Fprintf(w, "Operators - Num: %d\n", num)

	// Add 2
	num += 2
	fmt.Fprintf(w, "Operators - Num: %d\n", num)

	num++
	fmt.Fprintf(w, "Operators - Num: %d\n", num)

	num--
	fmt.Fprintf(w, "Operators - Num: %d\n", num)

	// Subtract 2
	num -= 2
	fmt.Fprintf(w, "Operators - Num: %d\n", num)

	// Subtract 3
	num = num - 3
	fmt.Fprintf(w, "Operators - Num: %d\n", num)
}
