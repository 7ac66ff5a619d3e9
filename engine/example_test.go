package engine_test

import (
	"fmt"

	"github.com/ezrec/bfvm/engine"
)

func ExampleInterpret() {
	res, err := engine.Interpret("+++>++<[->+<]")
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(res.Tape, res.Pointer, res.HighWater)
	// Output: [0 5] 0 1
}

func ExampleRunString() {
	out, err := engine.RunString(",+.,+.", "HV")
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(out)
	// Output: IW
}
