package lessons

import (
	"fmt"
	"io"
	"math"
)

// Variables walks through Go's primitive types.
func Variables(w io.Writer) {
	/*
	 * Binary and bytes
	 *
	 * There are 8 bits in 1 byte. Each bit doubles the value of the one to
	 * its right:
	 *
	 * |  128  |  64  |  32  |  16  |  8  |  4  |  2  |  1  |
	 *     0       0      0      0     0     1     0     1     =    4 + 1 = 5
	 *     1       1      1      1     1     1     1     1     =    255
	 *
	 * (2^bits) - 1 is the largest unsigned value. Signed types spend the top
	 * bit on the sign, so int8 runs from -128 to 127.
	 */

	// bool is true or false. The zero value is false.
	yes := true
	fmt.Fprintf(w, "Variables - bool: %v (%T)\n", yes, yes)

	/*
	 * A single quoted literal is a rune, an alias for int32 holding a
	 * Unicode code point. byte is an alias for uint8 and holds one ASCII
	 * character.
	 */
	character := 'p'
	var ascii byte = 'p'
	fmt.Fprintf(w, "Variables - rune: %c = %d (%T)\n", character, character, character)
	fmt.Fprintf(w, "Variables - byte: %c = %d (%T)\n", ascii, ascii, ascii)

	// Strings are immutable byte sequences, double quoted.
	str := "yay"
	fmt.Fprintf(w, "Variables - string: %s, %d bytes (%T)\n", str, len(str), str)

	// ==== Numbers ====

	// int16 is 2 bytes. Rarely needed unless memory layout matters.
	var shortNumber int16 = 8987
	fmt.Fprintf(w, "Variables - int16: %d (%d to %d)\n", shortNumber, math.MinInt16, math.MaxInt16)

	/*
	 * int is the default for whole numbers. Its size follows the platform:
	 * 8 bytes on every 64-bit target.
	 */
	intNumber := 8489
	fmt.Fprintf(w, "Variables - int: %d (%d to %d)\n", intNumber, math.MinInt, math.MaxInt)

	// int64 is always 8 bytes regardless of platform.
	var longNumber int64 = 1337
	fmt.Fprintf(w, "Variables - int64: %d (%d to %d)\n", longNumber, int64(math.MinInt64), int64(math.MaxInt64))

	// Unsigned types drop the sign bit and double the positive range.
	var portNumber uint16 = 8080
	fmt.Fprintf(w, "Variables - uint16: %d (0 to %d)\n", portNumber, math.MaxUint16)

	/*
	 * float32 has about 7 decimal digits of precision. Large values skip
	 * whole numbers entirely: that is floating-point error.
	 */
	var floatNumber float32 = 5.89
	fmt.Fprintf(w, "Variables - float32: %v (max %g)\n", floatNumber, math.MaxFloat32)

	// float64 has about 15 digits and is what an untyped float literal becomes.
	doubleNumber := 98.45
	fmt.Fprintf(w, "Variables - float64: %v (max %g)\n", doubleNumber, math.MaxFloat64)

	// Go has no long double. Wider precision lives in math/big.

	// === Type inference ===

	/*
	 * := declares and infers the type from the right-hand side. Untyped
	 * constants pick their default type: bool, rune, int, float64.
	 */
	autoBool := false
	autoChar := 'w'
	autoInt := 5
	autoFloat := float32(5.5)
	autoDouble := 5.5
	fmt.Fprintf(w, "Variables - inferred: %T %T %T %T %T\n", autoBool, autoChar, autoInt, autoFloat, autoDouble)

	// === Constants ===

	// A const cannot be reassigned. `gravity = 7.0` does not compile.
	const gravity = 9.8

	nonConstantGravity := gravity
	nonConstantGravity = 7.0
	fmt.Fprintf(w, "Variables - const gravity: %v, copy after change: %v\n", gravity, nonConstantGravity)
}
