// File: taxicab/example_test.go
package taxicab_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/infinity/taxicab"
)

// ExampleWalk follows the instructions of the crossing sample and reports
// both answers.
//
//   - Final point is (-4,4): 8 blocks away.
//   - The fourth segment passes (-4,0), first visited on the first segment.
func ExampleWalk() {
	instrs, _ := taxicab.ParseInstructions("R8, R4, R4, R8")
	res, _ := taxicab.Walk(instrs)

	fmt.Println("final:", res.Final, res.Distance())
	if d, ok := res.CrossingDistance(); ok {
		fmt.Println("crossing:", res.Crossing, d)
	}
	// Output:
	// final: (-4,4) 8
	// crossing: (-4,0) 4
}

// ExampleHeading_Next walks the heading machine through four right turns.
func ExampleHeading_Next() {
	h := taxicab.North
	var seq []string
	for i := 0; i < 4; i++ {
		h, _ = h.Next(taxicab.Right)
		seq = append(seq, h.String())
	}
	fmt.Println(strings.Join(seq, " "))
	// Output:
	// axis1- axis0- axis1+ axis0+
}
