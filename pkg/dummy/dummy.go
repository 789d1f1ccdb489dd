// Package dummy holds the two value types used by the Classes and Pointers
// lessons: Dummy, a plain type with public and restricted fields, and
// BetterDummy, which embeds Dummy and overrides its setter.
package dummy

import (
	"fmt"
	"io"
)

// Value is the capability shared by Dummy and BetterDummy: reading and
// setting the restricted number. Holding a *BetterDummy in a Value and
// calling SetPrivateNum runs the BetterDummy override.
type Value interface {
	PrivateNum() int
	SetPrivateNum(newNum int)
}

// Dummy is the base type.
//
// Exported fields are visible to every package. Unexported fields are
// visible only inside package dummy, which is how Go expresses both
// "private" and "protected": BetterDummy lives in this package and can read
// protectedNum directly, callers outside cannot.
type Dummy struct {
	// Num is public.
	Num int

	// privateNum is only reachable through PrivateNum and SetPrivateNum.
	privateNum int

	// protectedNum is read directly by BetterDummy.
	protectedNum int

	out io.Writer
}

// NewDummy creates a Dummy reporting to w. Go has no constructors, a New
// function is the convention.
func NewDummy(w io.Writer) *Dummy {
	fmt.Fprintln(w, "Creating Dummy!")
	return &Dummy{
		Num:          5,
		privateNum:   3,
		protectedNum: 2,
		out:          w,
	}
}

// Destroy reports the end of the Dummy's life. Go has no destructors, so
// callers pair NewDummy with a deferred Destroy.
func (d *Dummy) Destroy() {
	fmt.Fprintln(d.out, "Destroying Dummy!")
}

// PrivateNum returns the restricted number.
func (d *Dummy) PrivateNum() int {
	return d.privateNum
}

// SetPrivateNum assigns the restricted number.
func (d *Dummy) SetPrivateNum(newNum int) {
	// d is the receiver, Go's spelling of "this".
	d.privateNum = newNum
}

// BetterDummy embeds Dummy and overrides SetPrivateNum. Every other method
// and field is promoted from the embedded Dummy.
type BetterDummy struct {
	*Dummy
}

// NewBetterDummy builds the embedded Dummy first, so the Dummy creation
// notice is printed.
func NewBetterDummy(w io.Writer) *BetterDummy {
	return &BetterDummy{Dummy: NewDummy(w)}
}

// SetPrivateNum delegates to the embedded Dummy, then reads the protected
// field it inherited.
func (b *BetterDummy) SetPrivateNum(newNum int) {
	b.Dummy.SetPrivateNum(newNum)

	fmt.Fprintf(b.out, "Just because, here's the protected variable: %d\n", b.protectedNum)
}

var (
	_ Value = (*Dummy)(nil)
	_ Value = (*BetterDummy)(nil)
)
