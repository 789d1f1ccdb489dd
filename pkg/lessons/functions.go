package lessons

import (
	"fmt"
	"io"
)

// VoidReturnValue returns nothing.
func VoidReturnValue(w io.Writer) {
	fmt.Fprintln(w, "Hello World!")
}

// QuickMaths returns a single int.
func QuickMaths() int {
	return 2 + 2 - 1
}

// Multi multiplies its parameters.
func Multi(num1, num2 int) int {
	return num1 * num2
}

// PassByValue receives a copy. Assigning to it never reaches the caller.
func PassByValue(num int) {
	num = 2
}

// PassByReference receives the address of the caller's variable, so the
// write lands in the caller's memory.
func PassByReference(num *int) {
	*num = 2
}

// MultipleReturn returns two results directly instead of writing through
// out-parameters.
func MultipleReturn() (four, three int) {
	four = 4
	three = 3
	return four, three
}

// ConstantParameter takes a value it only reads. Go has no const
// parameters; passing by value already guarantees the caller is unaffected,
// and a small value is as cheap to copy as a pointer.
func ConstantParameter(num int) int {
	return num
}

// Functions calls functions with different shapes of parameters and results.
func Functions(w io.Writer) {
	// Functions are called with the () operator.

	// No result.
	VoidReturnValue(w)

	// Result assigned to an explicitly typed variable.
	var result int = QuickMaths()
	fmt.Fprintf(w, "Functions - Quick maths int variable: %d\n", result)

	// Result assigned with inference.
	result2 := QuickMaths()
	fmt.Fprintf(w, "Functions - Quick maths inferred variable: %d\n", result2)

	// Result used directly.
	fmt.Fprintf(w, "Functions - Quick maths return value: %d\n", QuickMaths())

	fmt.Fprintf(w, "Functions - Multi return value: %d\n", Multi(5, 4))

	// Pass by value vs pass by pointer.
	myNum := 8

	PassByValue(myNum)
	fmt.Fprintf(w, "Functions - After PassByValue: %d\n", myNum)

	// & takes the address of myNum.
	PassByReference(&myNum)
	fmt.Fprintf(w, "Functions - After PassByReference: %d\n", myNum)

	fmt.Fprintf(w, "Functions - ConstantParameter: %d\n", ConstantParameter(myNum))

	// Multiple results come back as a tuple.
	multiReturn1, multiReturn2 := MultipleReturn()
	fmt.Fprintf(w, "Functions - After MultipleReturn: %d %d\n", multiReturn1, multiReturn2)
}
