package lessons

import (
	"fmt"
	"io"
)

// Route returns the lines the Flow switch prints for num. Case 8 falls
// through into case 5; 13 and 14 share a case.
func Route(num int) []string {
	var lines []string

	/*
	 * A switch compares its tag against each case from top to bottom and
	 * runs the first match. Go cases do not fall through on their own: the
	 * fallthrough keyword has to ask for it. default is optional.
	 */
	switch num {
	case 1:
		lines = append(lines, "Flow - Switch 1")

	case 3:
		lines = append(lines, "Flow - Switch 3")

	case 8:
		lines = append(lines, "Flow - Switch 8")
		// Continues into the body of case 5 without testing it.
		fallthrough

	case 5:
		lines = append(lines, "Flow - Switch 5")

	case 13, 14:
		lines = append(lines, "Flow - Switch 13 14")

	default:
		lines = append(lines, "Flow - Switch default")
	}

	return lines
}

// Flow branches with if/else and switch.
func Flow(w io.Writer) {
	// The body runs when the condition is true. Braces are mandatory and
	// the condition has no parentheses.
	if 3 > 2 {
		fmt.Fprintln(w, "Flow - if")
	}

	// else runs when the condition is false.
	if 10 < 2 {
		fmt.Fprintln(w, "Flow - if - true")
	} else {
		fmt.Fprintln(w, "Flow - if - else")
	}

	// Any number of else-if branches, else optional.
	if 10 < 2 {
		fmt.Fprintln(w, "Flow - if - true")
	} else if 55 > 2 {
		fmt.Fprintln(w, "Flow - if - else if")
	} else {
		fmt.Fprintln(w, "Flow - if - else")
	}

	num := 5
	for _, line := range Route(num) {
		fmt.Fprintln(w, line)
	}

	// A switch with no tag is a cleaner if/else-if chain.
	switch {
	case num < 0:
		fmt.Fprintln(w, "Flow - Tagless switch negative")
	case num%2 == 1:
		fmt.Fprintln(w, "Flow - Tagless switch odd")
	default:
		fmt.Fprintln(w, "Flow - Tagless switch even")
	}
}
