package lessons

import (
	"fmt"
	"io"

	"github.com/amirkhaki/gofordummies/pkg/dummy"
)

// Classes uses Dummy and BetterDummy to show fields, methods, embedding and
// overriding.
func Classes(w io.Writer) {
	// A function literal called immediately gives the Dummy its own scope,
	// and the deferred Destroy runs when that scope returns.
	func() {
		myDummy := dummy.NewDummy(w)
		defer myDummy.Destroy()

		fmt.Fprintf(w, "Classes - Num value before setting: %d\n", myDummy.Num)
		myDummy.Num = 20
		fmt.Fprintf(w, "Classes - Num value after setting: %d\n", myDummy.Num)

		fmt.Fprintf(w, "Classes - Private num value before setting: %d\n", myDummy.PrivateNum())
		myDummy.SetPrivateNum(99)
		fmt.Fprintf(w, "Classes - Private num value after setting: %d\n", myDummy.PrivateNum())
	}()

	// The Dummy is gone now; Destroy already printed.

	/*
	 * BetterDummy embeds Dummy, so creating one prints the Dummy creation
	 * notice too. Stored in a dummy.Value, the call below still reaches
	 * BetterDummy.SetPrivateNum: methods are dispatched on the dynamic type
	 * held by the interface.
	 */
	better := dummy.NewBetterDummy(w)
	defer better.Destroy()

	var myValue dummy.Value = better
	myValue.SetPrivateNum(11)
}
