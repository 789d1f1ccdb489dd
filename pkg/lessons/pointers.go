package lessons

import (
	"fmt"
	"io"

	"github.com/amirkhaki/gofordummies/pkg/dummy"
)

// Pointers takes addresses, dereferences them and writes through them.
func Pointers(w io.Writer) {
	/*
	 * A pointer holds a memory address, not the data stored there. You have
	 * seen addresses before: 0xc000012345.
	 *
	 * *T is the type "pointer to T".
	 * &x takes the address of x.
	 * *p dereferences p: reads or writes the data it points to.
	 *
	 * Go has no pointer arithmetic; p + 1 does not compile.
	 */

	num := 5

	numPtr := &num

	fmt.Fprintf(w, "Pointers - Original num: %d\n", num)
	fmt.Fprintf(w, "Pointers - Pointer num: %p\n", numPtr)
	fmt.Fprintf(w, "Pointers - Pointer num data: %d\n", *numPtr)

	*numPtr = 112

	fmt.Fprintf(w, "Pointers - Original num: %d\n", num)
	fmt.Fprintf(w, "Pointers - Pointer num: %p\n", numPtr)
	fmt.Fprintf(w, "Pointers - Pointer num data: %d\n", *numPtr)

	// numPtr points at num, so the write above changed num itself.

	/*
	 * new(T) allocates a zeroed T and returns its address. There is no
	 * delete: the garbage collector frees it once nothing points to it.
	 * Taking the address of a local is just as safe; the compiler moves it
	 * to the heap when it outlives the function.
	 */
	allocated := new(int)
	fmt.Fprintf(w, "Pointers - new(int) data: %d\n", *allocated)
	*allocated = num
	fmt.Fprintf(w, "Pointers - new(int) data after write: %d\n", *allocated)

	// The zero value of a pointer is nil. Dereferencing nil panics.
	var nothing *int
	fmt.Fprintf(w, "Pointers - Nil pointer is nil: %t\n", nothing == nil)

	// A struct value this time, so & has something to point at.
	myDummy := *dummy.NewDummy(w)
	defer myDummy.Destroy()

	dummyPtr := &myDummy

	// Dereference, then use the value with dot notation.
	(*dummyPtr).SetPrivateNum(1)

	// Go dereferences automatically for field and method access, so this
	// is the same call.
	dummyPtr.SetPrivateNum(1)

	fmt.Fprintf(w, "Pointers - Dummy private num: %d\n", dummyPtr.PrivateNum())
}
