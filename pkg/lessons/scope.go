package lessons

import (
	"fmt"
	"io"
)

// Scope shows how blocks limit where a name is visible.
func Scope(w io.Writer) {
	// Every function body is its own block, so other lessons can reuse the
	// name num without conflict.
	num := 0

	// Braces open a block.
	{
		num2 := 10
		fmt.Fprintf(w, "Scope - inner num2: %d\n", num2)
	}

	// num2 does not exist here.

	{
		// num is visible from the enclosing block. num2 can be declared
		// again because the first one ended with its block.
		num2 := num + 1
		fmt.Fprintf(w, "Scope - sibling num2: %d\n", num2)

		{
			{
				{
					// Blocks nest as deep as you like.
					num3 := num2 * 3
					fmt.Fprintf(w, "Scope - nested num3: %d\n", num3)
				}
			}
		}
	}

	/*
	 * := inside a block declares a new variable even if an outer one has
	 * the same name. The inner num shadows the outer one until the block
	 * ends; assigning to it leaves the outer num alone.
	 */
	{
		num := 42
		num++
		fmt.Fprintf(w, "Scope - shadowed num: %d\n", num)
	}

	// if, for and switch open an implicit block, so v is gone after the if.
	if v := num + 5; v > 0 {
		fmt.Fprintf(w, "Scope - if-scoped v: %d\n", v)
	}

	fmt.Fprintf(w, "Scope - outer num: %d\n", num)
}
